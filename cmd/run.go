package cmd

import (
	"fmt"
	"os"

	"github.com/clulus/clulus/internal/anim"
	"github.com/clulus/clulus/internal/app"
	"github.com/clulus/clulus/internal/capture"
	"github.com/clulus/clulus/internal/hintgen"
	"github.com/clulus/clulus/internal/llm"
	"github.com/clulus/clulus/internal/problems"
	"github.com/clulus/clulus/internal/sentiment"
	"github.com/clulus/clulus/internal/speech"
	"github.com/clulus/clulus/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo: eventRepo,
		Capture:   capture.NewRasterizer(),
		Speech:    speech.NewClientFromEnv(),
		Anim:      anim.NewClientFromEnv(),
	}

	// The confusion trigger only runs when a sentiment backend is
	// configured; polling a default URL would just spam errors.
	if os.Getenv(sentiment.EnvBaseURL) != "" {
		opts.Classifier = sentiment.NewClientFromEnv()
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Hints and problem generation will be unavailable.")
	} else {
		opts.HintService = hintgen.New(provider, hintgen.DefaultConfig())
		opts.Generator = problems.NewGenerator(provider, problems.DefaultConfig())
	}

	return app.Run(opts)
}
