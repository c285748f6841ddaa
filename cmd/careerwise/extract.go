package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careerwise/careerwise/internal/extraction"
)

var extractCmd = &cobra.Command{
	Use:   "extract <resume.pdf>",
	Short: "Extract text from a resume PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	text, err := extraction.Text(data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	fmt.Fprintln(os.Stdout, text)
	return nil
}
