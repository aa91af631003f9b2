// Command llmutils runs streaming inference, embeddings and transcription
// against the configured provider.
//
// Configuration is read from a YAML file (--config or LLMUTILS_CONFIG), a .env
// file (--env-file) and the environment:
//
//	LLMUTILS_PROVIDER      - "openai" (default) or "azure"
//	OPENAI_API_KEY         - OpenAI API key
//	OPENAI_BASE_URL        - OpenAI-compatible base URL (optional)
//	AZURE_OPENAI_API_KEY   - Azure OpenAI API key
//	AZURE_OPENAI_ENDPOINT  - Azure OpenAI endpoint
//	OPENAI_API_VERSION     - Azure API version (default: 2024-05-01-preview)
//	EMBEDDING_MODEL        - Default embedding model
//
// Streamed output goes to stdout; logs go to stderr.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boat-builder/llmutils"
	"github.com/boat-builder/llmutils/config"
	"github.com/boat-builder/llmutils/observability"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	envFile     string
	configPath  string
	logLevel    string
	metricsAddr string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "llmutils",
	Short: "llmutils - streaming inference, embeddings and transcription",
	Long: `llmutils talks to OpenAI or Azure OpenAI with the same client the library uses.

  llmutils inference "say hello"                  Stream a completion
  llmutils inference --cutoff "##" < prompt.txt   Hide output after a marker
  llmutils vectorize "first text" "second text"   Embed texts
  llmutils transcribe note.wav                    Transcribe an audio file
  llmutils schema inference                       Print the --json output schema`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: $LLMUTILS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while the command runs")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and installs the run's logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(envFile, configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	level, err := loaded.SlogLevel()
	if err != nil {
		return err
	}

	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)
	cfg = loaded

	if metricsAddr != "" {
		startMetricsServer(cmd.Context(), metricsAddr)
	}
	return nil
}

// newClient builds the client handle for this run.
func newClient() (*llmutils.LLM, error) {
	llm, err := llmutils.NewLLM(cfg)
	if err != nil {
		return nil, err
	}
	llm.SetLogger(logger)
	logger.Debug("client ready", "provider", llm.Provider, "chat_model", llm.Models.Chat)
	return llm, nil
}

func startMetricsServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
