package main

import (
	"encoding/json"
	"fmt"

	"github.com/OnnIInnO/Recruiting2.0/internal/assessment"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/spf13/cobra"
)

var questionsJSON bool

var questionsCmd = &cobra.Command{
	Use:       "questions <wellbeing|skills|values>",
	Short:     "Print the questions of an assessment",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"wellbeing", "skills", "values"},
	RunE:      runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Print the questions as JSON")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, args []string) error {
	category, err := types.ParseCategory(args[0])
	if err != nil {
		return err
	}
	questions := assessment.Questions(category)

	w := cmd.OutOrStdout()
	if questionsJSON {
		out, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal questions: %w", err)
		}
		_, _ = fmt.Fprintln(w, string(out))
		return nil
	}

	var current types.Dimension
	for _, q := range questions {
		if q.Dimension != current {
			current = q.Dimension
			_, _ = fmt.Fprintf(w, "\n%s (%s)\n", q.DimensionTitle, q.Dimension)
		}
		_, _ = fmt.Fprintf(w, "  %-14s %s\n", q.ID, q.QuestionText)
	}
	return nil
}
