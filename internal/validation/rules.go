package validation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/iho/customscore/internal/domain"
)

// Standard rule codes.
const (
	RuleRequiredFields = "REQUIRED_FIELDS"
	RuleTariffFormat   = "TARIFF_FORMAT"
	RuleTariffExists   = "TARIFF_EXISTS"
	RuleProcedureCode  = "PROCEDURE_CODE"
)

const (
	// MaxSuggestions caps the did-you-mean list of a not-found tariff code.
	MaxSuggestions = 3
	// SuggestionPrefixLength is how many leading characters a suggestion must share.
	SuggestionPrefixLength = 4
)

var tariffCodePattern = regexp.MustCompile(`^[0-9]{10}$`)

// IsWellFormedTariffCode reports whether code is exactly ten digits.
func IsWellFormedTariffCode(code string) bool {
	return tariffCodePattern.MatchString(code)
}

// StandardRules returns the built-in declaration rules.
func StandardRules() []Rule {
	return []Rule{
		{
			Code:      RuleRequiredFields,
			Field:     "declaration",
			Priority:  10,
			Active:    true,
			Reference: "UCC Art. 162; UCC-DA Annex B",
			Check:     checkRequiredFields,
		},
		{
			Code:      RuleTariffFormat,
			Field:     "lines.tariff_code",
			Priority:  20,
			Active:    true,
			Reference: "Council Regulation (EEC) No 2658/87, Art. 3",
			Check:     checkTariffFormat,
		},
		{
			Code:      RuleTariffExists,
			Field:     "lines.tariff_code",
			Priority:  30,
			Active:    true,
			Reference: "TARIC database, Council Regulation (EEC) No 2658/87",
			Check:     checkTariffExists,
		},
		{
			Code:      RuleProcedureCode,
			Field:     "procedure_code",
			Priority:  40,
			Active:    true,
			Reference: "UCC-DA Annex B, Title II, D.E. 1/10",
			Check:     checkProcedureCode,
		},
	}
}

func lineField(i int) string {
	return fmt.Sprintf("lines[%d].tariff_code", i)
}

func checkRequiredFields(_ context.Context, d *domain.Declaration, _ ReferenceLookup) ([]domain.RuleError, error) {
	var errs []domain.RuleError

	switch {
	case strings.TrimSpace(string(d.Type)) == "":
		errs = append(errs, domain.RuleError{Field: "declaration_type", Message: "declaration type is required"})
	case !d.Type.IsValid():
		errs = append(errs, domain.RuleError{
			Field:   "declaration_type",
			Message: fmt.Sprintf("unknown declaration type %q, expected import or export", d.Type),
		})
	}
	if strings.TrimSpace(d.ExporterID) == "" {
		errs = append(errs, domain.RuleError{Field: "exporter_id", Message: "sender/exporter identity is required"})
	}
	if len(d.Lines) == 0 {
		errs = append(errs, domain.RuleError{Field: "lines", Message: "at least one declaration line is required"})
	}
	for i, l := range d.Lines {
		if strings.TrimSpace(l.TariffCode) == "" {
			errs = append(errs, domain.RuleError{
				Field:   lineField(i),
				Message: fmt.Sprintf("line %d: tariff code is required", lineNumber(l, i)),
			})
		}
	}

	return errs, nil
}

func checkTariffFormat(_ context.Context, d *domain.Declaration, _ ReferenceLookup) ([]domain.RuleError, error) {
	var errs []domain.RuleError

	for i, l := range d.Lines {
		if l.TariffCode == "" || IsWellFormedTariffCode(l.TariffCode) {
			continue
		}
		errs = append(errs, domain.RuleError{
			Field:   lineField(i),
			Message: fmt.Sprintf("line %d: tariff code %q must be exactly 10 digits", lineNumber(l, i), l.TariffCode),
		})
	}

	return errs, nil
}

func checkTariffExists(ctx context.Context, d *domain.Declaration, ref ReferenceLookup) ([]domain.RuleError, error) {
	var errs []domain.RuleError

	for i, l := range d.Lines {
		if !IsWellFormedTariffCode(l.TariffCode) {
			continue
		}

		tc, err := ref.GetTariffCode(ctx, l.TariffCode)
		switch {
		case errors.Is(err, domain.ErrReferenceNotFound):
		case err != nil:
			return nil, fmt.Errorf("lookup tariff code %s: %w", l.TariffCode, err)
		case tc.Active:
			continue
		}

		suggestions, err := Suggest(ctx, ref, l.TariffCode)
		if err != nil {
			return nil, err
		}

		reason := "was not found in the tariff reference table"
		if tc != nil {
			reason = "is not active in the tariff reference table"
		}
		errs = append(errs, domain.RuleError{
			Field:       lineField(i),
			Message:     fmt.Sprintf("line %d: tariff code %s %s", lineNumber(l, i), l.TariffCode, reason),
			Suggestions: suggestions,
		})
	}

	return errs, nil
}

func checkProcedureCode(ctx context.Context, d *domain.Declaration, ref ReferenceLookup) ([]domain.RuleError, error) {
	codes, err := ref.ListProcedureCodes(ctx, domain.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("list procedure codes: %w", err)
	}

	valid := make([]string, 0, len(codes))
	for _, c := range codes {
		if c.Code == d.ProcedureCode {
			return nil, nil
		}
		valid = append(valid, c.Code)
	}

	return []domain.RuleError{{
		Field:   "procedure_code",
		Message: fmt.Sprintf("procedure code %q is not valid; valid codes: %s", d.ProcedureCode, strings.Join(valid, ", ")),
	}}, nil
}

// Suggest returns up to MaxSuggestions active tariff codes sharing the first
// SuggestionPrefixLength characters of code, excluding code itself.
func Suggest(ctx context.Context, ref ReferenceLookup, code string) ([]string, error) {
	if len(code) < SuggestionPrefixLength {
		return nil, nil
	}

	candidates, err := ref.ListTariffCodesByPrefix(ctx, code[:SuggestionPrefixLength], MaxSuggestions+1)
	if err != nil {
		return nil, fmt.Errorf("suggest tariff codes for %s: %w", code, err)
	}

	var out []string
	for _, c := range candidates {
		if c.Code == code {
			continue
		}
		out = append(out, c.Code)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out, nil
}

func lineNumber(l domain.DeclarationLine, i int) int {
	if l.LineNumber > 0 {
		return l.LineNumber
	}
	return i + 1
}
