package domain

import (
	"errors"
	"time"
)

var ErrInvalidLONTransition = errors.New("invalid LON authorization transition")

// LONStatus is the lifecycle state of an inward-processing authorization.
type LONStatus string

const (
	LONStatusActive    LONStatus = "active"
	LONStatusSuspended LONStatus = "suspended"
	LONStatusRevoked   LONStatus = "revoked"
	LONStatusExpired   LONStatus = "expired"
)

var lonTransitions = map[LONStatus][]LONStatus{
	LONStatusActive:    {LONStatusSuspended, LONStatusRevoked, LONStatusExpired},
	LONStatusSuspended: {LONStatusActive},
}

// CanTransition reports whether from → to is allowed. Revoked and Expired are terminal.
func (s LONStatus) CanTransition(to LONStatus) bool {
	for _, next := range lonTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s LONStatus) IsTerminal() bool {
	return len(lonTransitions[s]) == 0
}

// LONAuthorization is a permission to import raw materials duty-suspended for
// processing and re-export.
type LONAuthorization struct {
	Number     string
	Status     LONStatus
	ValidUntil time.Time
	UpdatedBy  string
	UpdatedAt  time.Time
}

// Transition moves the authorization to status on behalf of actor.
func (a *LONAuthorization) Transition(to LONStatus, actor string, at time.Time) error {
	if !a.Status.CanTransition(to) {
		return ErrInvalidLONTransition
	}
	a.Status = to
	a.UpdatedBy = actor
	a.UpdatedAt = at
	return nil
}

// ExpireIfDue applies the time-driven Active → Expired transition.
func (a *LONAuthorization) ExpireIfDue(now time.Time, actor string) bool {
	if a.Status != LONStatusActive || now.Before(a.ValidUntil) {
		return false
	}
	a.Status = LONStatusExpired
	a.UpdatedBy = actor
	a.UpdatedAt = now
	return true
}
