package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/boat-builder/llmutils"
	"github.com/spf13/cobra"
)

var (
	vectorizeModel string
	vectorizeJSON  bool
)

var vectorizeCmd = &cobra.Command{
	Use:   "vectorize TEXT...",
	Short: "Embed one or more texts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVectorize,
}

func init() {
	vectorizeCmd.Flags().StringVar(&vectorizeModel, "model", "", "embedding model or Azure deployment (default: configured embedding model)")
	vectorizeCmd.Flags().BoolVar(&vectorizeJSON, "json", false, "print the vectors and usage as JSON")
	rootCmd.AddCommand(vectorizeCmd)
}

func runVectorize(cmd *cobra.Command, args []string) error {
	llm, err := newClient()
	if err != nil {
		return err
	}

	model := vectorizeModel
	if model == "" {
		model = llm.Models.Embedding
	}
	logger.Info("vectorizing", "texts", len(args), "model", model)

	result, err := llm.Vectorize(cmd.Context(), args, model)
	if err != nil {
		return err
	}

	if vectorizeJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	printVectorizeResult(cmd.OutOrStdout(), result)
	return nil
}

func printVectorizeResult(w io.Writer, result *llmutils.VectorizeResult) {
	fmt.Fprintln(w, "--- Result ---")
	fmt.Fprintf(w, "Vectors: %d\n", len(result.Vectors))
	if len(result.Vectors) > 0 {
		first := result.Vectors[0]
		fmt.Fprintf(w, "Dimensions: %d\n", len(first))
		fmt.Fprintf(w, "First 5 values of the first vector: [%s]\n", formatValues(first[:min(5, len(first))]))
	}
	fmt.Fprintf(w, "Tokens used: %d\n", result.Usage.TotalTokens)
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
