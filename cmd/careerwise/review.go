package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careerwise/careerwise/internal/analysis"
	"github.com/careerwise/careerwise/internal/config"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Get an LLM review of a resume",
	Long:  "Ask the model for strengths, weaknesses, suggestions, and an overall score for a resume. Requires a Gemini API key.",
	RunE:  runReview,
}

var reviewResumePath string

func init() {
	reviewCmd.Flags().StringVarP(&reviewResumePath, "resume", "r", "", "Path to resume file (PDF or text)")
	reviewCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	resumeText, err := readResume(reviewResumePath)
	if err != nil {
		return err
	}

	client := maybeClient(ctx, config.Config{})
	if client == nil {
		return fmt.Errorf("resume review requires GEMINI_API_KEY to be set")
	}
	defer client.Close()

	review, err := analysis.ReviewResume(ctx, client, resumeText)
	if err != nil {
		return fmt.Errorf("resume review failed: %w", err)
	}

	fmt.Fprintln(os.Stdout, review)
	return nil
}
