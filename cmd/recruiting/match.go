package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/OnnIInnO/Recruiting2.0/internal/config"
	"github.com/OnnIInnO/Recruiting2.0/internal/matching"
	"github.com/OnnIInnO/Recruiting2.0/internal/observability"
	"github.com/OnnIInnO/Recruiting2.0/internal/schemas"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/spf13/cobra"
)

var (
	matchUserFile    string
	matchJobFile     string
	matchCompanyFile string
	matchOutput      string
	matchVerbose     bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a user against a job and company offline",
	Long: `Read user profiles, job requirements and (optionally) company profiles from
JSON files, validate them and print the resulting match as JSON.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchUserFile, "user", "u", "", "Path to user profiles JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job requirements JSON file (required)")
	matchCmd.Flags().StringVar(&matchCompanyFile, "company", "", "Path to company profiles JSON file")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a readable summary to stderr")

	if err := matchCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

// readDocument validates a JSON file against a schema and decodes it into out.
func readDocument(path string, schema schemas.Name, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := schemas.Validate(schema, data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func runMatch(cmd *cobra.Command, _ []string) error {
	var user types.UserProfiles
	if err := readDocument(matchUserFile, schemas.UserProfiles, &user); err != nil {
		return err
	}
	var job types.JobRequirements
	if err := readDocument(matchJobFile, schemas.JobRequirements, &job); err != nil {
		return err
	}
	var company types.CompanyProfiles
	if matchCompanyFile != "" {
		if err := readDocument(matchCompanyFile, schemas.CompanyProfiles, &company); err != nil {
			return err
		}
	}

	for _, c := range types.Categories {
		if err := types.ValidateProfile(c, user.Get(c)); err != nil {
			return fmt.Errorf("user %s: %w", c.ProfileKey(), err)
		}
		if err := types.ValidateRequirements(c, job.Get(c)); err != nil {
			return fmt.Errorf("job %s: %w", c, err)
		}
		if err := types.ValidateProfile(c, company.Get(c)); err != nil {
			return fmt.Errorf("company %s: %w", c, err)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return err
	}

	result := matching.NewEngine(engineCfg).Match(user, job, company)
	if matchVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintUserDimensions(user)
		printer.PrintMatchResult(&result)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := schemas.Validate(schemas.MatchResult, out); err != nil {
		return fmt.Errorf("match result failed schema validation: %w", err)
	}

	if matchOutput == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	if err := os.WriteFile(matchOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Match written to %s (overall %.2f)\n", matchOutput, result.OverallMatch)
	return nil
}
