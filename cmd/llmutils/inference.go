package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/boat-builder/llmutils"
	"github.com/spf13/cobra"
)

var (
	inferenceModel  string
	inferenceSystem string
	inferenceCutoff string
	inferenceJSON   bool
)

var inferenceCmd = &cobra.Command{
	Use:   "inference [prompt]",
	Short: "Stream a chat completion to stdout",
	Long: `Stream a chat completion to stdout, five fragments at a time, then print
the full response and its usage.

The prompt is read from stdin when no argument is given. With --cutoff, every
flush after the marker appears prints " ..." instead of the text; the final
response is printed in full.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInference,
}

func init() {
	inferenceCmd.Flags().StringVar(&inferenceModel, "model", "", "chat model or Azure deployment (default: configured chat model)")
	inferenceCmd.Flags().StringVar(&inferenceSystem, "system", "", "system prompt")
	inferenceCmd.Flags().StringVar(&inferenceCutoff, "cutoff", "", "marker after which streamed output is hidden")
	inferenceCmd.Flags().BoolVar(&inferenceJSON, "json", false, "print the result as JSON instead of streaming")
	rootCmd.AddCommand(inferenceCmd)
}

func runInference(cmd *cobra.Command, args []string) error {
	prompt, err := readPrompt(cmd, args)
	if err != nil {
		return err
	}

	llm, err := newClient()
	if err != nil {
		return err
	}

	var messages []llmutils.Message
	if inferenceSystem != "" {
		messages = append(messages, llmutils.SystemMessage(inferenceSystem))
	}
	messages = append(messages, llmutils.UserMessage(prompt))

	out := cmd.OutOrStdout()
	sink := llmutils.Sink{Writer: out, Cutoff: inferenceCutoff}
	if inferenceJSON {
		sink.Writer = io.Discard
	}

	result, err := llm.Inference(cmd.Context(), inferenceModel, messages, sink)
	if err != nil {
		return err
	}

	if inferenceJSON {
		return writeJSON(out, result)
	}
	printInferenceResult(out, result)
	return nil
}

func printInferenceResult(w io.Writer, result *llmutils.InferenceResult) {
	fmt.Fprintln(w, "\n--- Result ---")
	fmt.Fprintf(w, "Response: %s\n", result.Text)
	fmt.Fprintf(w, "Usage: model=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d\n",
		result.Usage.Model, result.Usage.PromptTokens, result.Usage.CompletionTokens, result.Usage.TotalTokens)
	if cost, ok := result.Usage.Cost(); ok {
		fmt.Fprintf(w, "Cost: $%.6f\n", cost.TotalCost)
	}
}

// readPrompt returns the prompt argument, or stdin when there is none.
func readPrompt(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading prompt: %w", err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", fmt.Errorf("no prompt given")
	}
	return prompt, nil
}
