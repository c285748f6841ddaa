package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careerwise/careerwise/internal/analysis"
	"github.com/careerwise/careerwise/internal/config"
	"github.com/careerwise/careerwise/internal/extraction"
	"github.com/careerwise/careerwise/internal/ingestion"
	"github.com/careerwise/careerwise/internal/llm"
	"github.com/careerwise/careerwise/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Compute the deterministic match score between a resume and a job description, and, when an API key is configured, ask the model for a narrative comparison.",
	RunE:  runMatch,
}

var (
	matchConfigPath  string
	matchResumePath  string
	matchJobPath     string
	matchJobURL      string
	matchExtraSkills []string
	matchScoresOnly  bool
	matchVerbose     bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchConfigPath, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchResumePath, "resume", "r", "", "Path to resume file (PDF or text)")
	matchCmd.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to job description text file")
	matchCmd.Flags().StringVarP(&matchJobURL, "job-url", "u", "", "URL to fetch the job description from")
	matchCmd.Flags().StringSliceVar(&matchExtraSkills, "extra-skills", nil, "Additional skill keywords to match")
	matchCmd.Flags().BoolVar(&matchScoresOnly, "scores-only", false, "Skip the LLM comparison even when an API key is set")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed score breakdown")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(matchConfigPath, config.Config{
		Resume:      matchResumePath,
		Job:         matchJobPath,
		JobURL:      matchJobURL,
		ExtraSkills: matchExtraSkills,
		Verbose:     matchVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}

	ctx := cmd.Context()

	resumeText, err := readResume(cfg.Resume)
	if err != nil {
		return err
	}

	jdText, err := readJob(ctx, cfg)
	if err != nil {
		return err
	}

	var client llm.Client
	if !matchScoresOnly {
		client = maybeClient(ctx, cfg)
		if client != nil {
			defer client.Close()
		}
	}

	analyzer := analysis.NewAnalyzer(client, nil)
	comparison, err := analyzer.Compare(ctx, resumeText, jdText, cfg.ExtraSkills)
	if err != nil {
		return fmt.Errorf("match analysis failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintScoreBreakdown(comparison.Scores)
	} else {
		printer.PrintScoreSummary(comparison.Scores)
	}

	if comparison.Narrative != "" {
		printer.PrintComparison(comparison)
	} else if comparison.LLMError != "" && !matchScoresOnly {
		fmt.Fprintf(os.Stderr, "LLM comparison unavailable: %s\n", comparison.LLMError)
	}

	return nil
}

// resolveConfig merges an optional config file with CLI flag values. Flags
// take precedence over the file.
func resolveConfig(path string, flags config.Config) (config.Config, error) {
	if path == "" {
		if err := flags.Validate(); err != nil {
			return config.Config{}, err
		}
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}

	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// readResume loads resume text from a PDF or plain-text file.
func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := extraction.Text(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from PDF: %w", err)
		}
		return text, nil
	}
	return string(data), nil
}

// readJob loads the job description from a file or by fetching a URL.
func readJob(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	text, err := ingestion.FetchJobDescription(ctx, cfg.JobURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}

// maybeClient builds a Gemini client when an API key is available, from the
// config file or the GEMINI_API_KEY environment variable. Returns nil when
// no key is set so callers degrade to deterministic-only behavior.
func maybeClient(ctx context.Context, cfg config.Config) llm.Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil
	}

	client, err := llm.NewGeminiClient(ctx, nil, apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM client unavailable: %v\n", err)
		return nil
	}
	return client
}
