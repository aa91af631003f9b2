package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var transcribeJSON bool

var transcribeCmd = &cobra.Command{
	Use:   "transcribe PATH",
	Short: "Transcribe an audio file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		llm, err := newClient()
		if err != nil {
			return err
		}

		result, err := llm.Transcribe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if transcribeJSON {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Transcript)
		return nil
	},
}

func init() {
	transcribeCmd.Flags().BoolVar(&transcribeJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(transcribeCmd)
}
