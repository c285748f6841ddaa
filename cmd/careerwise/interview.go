package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careerwise/careerwise/internal/config"
	"github.com/careerwise/careerwise/internal/interview"
	"github.com/careerwise/careerwise/internal/observability"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview in the terminal",
	Long:  "Generate interview questions for a role and critique your typed answers one at a time. Works without an API key using the built-in question bank and rubric.",
	RunE:  runInterview,
}

var (
	interviewJobTitle string
	interviewJobPath  string
	interviewMode     string
	interviewLevel    string
	interviewCount    int
)

func init() {
	interviewCmd.Flags().StringVar(&interviewJobTitle, "job-title", "", "Job title to tailor questions to")
	interviewCmd.Flags().StringVarP(&interviewJobPath, "job", "j", "", "Path to job description text file")
	interviewCmd.Flags().StringVarP(&interviewMode, "mode", "m", interview.ModeBehavioral, "Question mode: behavioral or technical")
	interviewCmd.Flags().StringVar(&interviewLevel, "level", "", "Seniority level, e.g. Entry, Mid, Senior")
	interviewCmd.Flags().IntVarP(&interviewCount, "count", "n", 0, "Number of questions (default 5)")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	if interviewMode != interview.ModeBehavioral && interviewMode != interview.ModeTechnical {
		return fmt.Errorf("--mode must be %q or %q", interview.ModeBehavioral, interview.ModeTechnical)
	}

	ctx := cmd.Context()

	var jdText string
	if interviewJobPath != "" {
		data, err := os.ReadFile(interviewJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jdText = string(data)
	}

	client := maybeClient(ctx, config.Config{})
	if client != nil {
		defer client.Close()
	}

	questions := interview.GenerateQuestions(ctx, client, interview.QuestionOptions{
		JobTitle:       interviewJobTitle,
		JobDescription: jdText,
		Mode:           interviewMode,
		Level:          interviewLevel,
		Count:          interviewCount,
	})

	printer := observability.NewPrinter(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for i, question := range questions {
		fmt.Fprintf(os.Stdout, "\nQuestion %d of %d:\n%s\n\n", i+1, len(questions), question)
		fmt.Fprint(os.Stdout, "Your answer (finish with an empty line):\n> ")

		answer, err := readAnswer(scanner)
		if err != nil {
			return err
		}
		if strings.TrimSpace(answer) == "" {
			fmt.Fprintln(os.Stdout, "Skipped.")
			continue
		}

		critique := interview.CritiqueAnswer(ctx, client, interview.CritiqueRequest{
			Question:       question,
			Answer:         answer,
			Mode:           interviewMode,
			JobDescription: jdText,
		})
		printer.PrintCritique(critique)
	}

	fmt.Fprintln(os.Stdout, "\nInterview complete.")
	return nil
}

// readAnswer collects stdin lines until a blank line or EOF.
func readAnswer(scanner *bufio.Scanner) (string, error) {
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}
