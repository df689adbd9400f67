package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/validation"
)

var (
	baseURL string
	timeout time.Duration
	actor   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "customs-cli",
		Short:         "Customs core CLI tool",
		Long:          `A command line interface for validating declarations and querying the customs core API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the customs API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&actor, "actor", "", "Actor sent in the X-Actor-ID header")

	rootCmd.AddCommand(validateCmd(), exposureCmd(), traceCmd(), dutyCmd(), mrnCmd())
	return rootCmd
}

func validateCmd() *cobra.Command {
	var referencePath string

	cmd := &cobra.Command{
		Use:   "validate <declaration.json>",
		Short: "Validate a declaration file offline",
		Long: `Runs the standard rule pipeline against a declaration file using
reference data from a local JSON file. Exits non-zero when the declaration is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := loadReference(referencePath)
			if err != nil {
				return err
			}

			var req dto.SubmitDeclarationRequest
			if err := readJSONFile(args[0], &req); err != nil {
				return err
			}

			pipeline := validation.NewPipeline(validation.DefaultRegistry(), ref, nil)
			result, err := pipeline.Validate(cmd.Context(), req.ToDomain())
			if err != nil {
				return err
			}

			if err := printJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("declaration is invalid: %d error(s)", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&referencePath, "reference", "reference.json", "Reference data file with tariffs and procedures")
	return cmd
}

func exposureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exposure <account-id>",
		Short: "Show the exposure of a guarantee account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(cmd, "/guarantee/accounts/"+url.PathEscape(args[0])+"/exposure", nil)
		},
	}
}

func traceCmd() *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "trace <batch-number>",
		Short: "Walk the full trace path of a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(cmd, "/traceability/trace-full", url.Values{
				"batchNumber": {args[0]},
				"direction":   {direction},
			})
		},
	}

	cmd.Flags().StringVar(&direction, "direction", "forward", "Traversal direction: forward or backward")
	return cmd
}

func dutyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duty <mrn>",
		Short: "Show how the duty of an MRN is allocated to its consumers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(cmd, "/traceability/duty-allocation/"+url.PathEscape(args[0]), nil)
		},
	}
}

func mrnCmd() *cobra.Command {
	var (
		mrn        string
		activeOnly bool
	)

	cmd := &cobra.Command{
		Use:   "mrn",
		Short: "List MRN registry rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if mrn != "" {
				q.Set("mrn", mrn)
			}
			if activeOnly {
				q.Set("isActive", "true")
			}
			return getAndPrint(cmd, "/customs/mrn-registry", q)
		},
	}

	cmd.Flags().StringVar(&mrn, "mrn", "", "Filter by MRN")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only active rows")
	return cmd
}

// getAndPrint fetches path from the API and pretty-prints the JSON body.
func getAndPrint(cmd *cobra.Command, path string, query url.Values) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	target := baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	if actor != "" {
		req.Header.Set("X-Actor-ID", actor)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 512))
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), v)
}

type referenceFile struct {
	Tariffs []struct {
		Code        string          `json:"code"`
		Description string          `json:"description"`
		DutyRate    decimal.Decimal `json:"duty_rate"`
		Active      *bool           `json:"active"`
	} `json:"tariffs"`
	Procedures []struct {
		Code              string `json:"code"`
		Description       string `json:"description"`
		RequiresGuarantee bool   `json:"requires_guarantee"`
		Active            *bool  `json:"active"`
	} `json:"procedures"`
}

// loadReference reads tariff and procedure codes. Rows without an active
// flag are active.
func loadReference(path string) (*validation.MemoryReference, error) {
	var f referenceFile
	if err := readJSONFile(path, &f); err != nil {
		return nil, err
	}

	tariffs := make([]domain.TariffCode, len(f.Tariffs))
	for i, t := range f.Tariffs {
		tariffs[i] = domain.TariffCode{
			Code:        t.Code,
			Description: t.Description,
			DutyRate:    t.DutyRate,
			Active:      t.Active == nil || *t.Active,
		}
	}

	procedures := make([]domain.ProcedureCode, len(f.Procedures))
	for i, p := range f.Procedures {
		procedures[i] = domain.ProcedureCode{
			Code:              p.Code,
			Description:       p.Description,
			RequiresGuarantee: p.RequiresGuarantee,
			Active:            p.Active == nil || *p.Active,
		}
	}

	return validation.NewMemoryReference(tariffs, procedures), nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
