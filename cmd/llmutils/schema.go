package main

import (
	"fmt"

	"github.com/boat-builder/llmutils"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [inference|vectorize|transcribe]",
	Short:     "Print the JSON Schema of a command's --json output",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"inference", "vectorize", "transcribe"},
	// No configuration or credentials needed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		var schema any
		switch args[0] {
		case "inference":
			schema = llmutils.GenerateSchema[llmutils.InferenceResult]()
		case "vectorize":
			schema = llmutils.GenerateSchema[llmutils.VectorizeResult]()
		case "transcribe":
			schema = llmutils.GenerateSchema[llmutils.TranscriptionResult]()
		default:
			return fmt.Errorf("unknown command %q: want inference, vectorize or transcribe", args[0])
		}
		return writeJSON(cmd.OutOrStdout(), schema)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
