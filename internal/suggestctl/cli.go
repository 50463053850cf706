package suggestctl

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Config carries the CLI-wide settings resolved from flags and environment.
type Config struct {
	BackendURL  string
	Suggestions int
	LogLvl      string
}

// DefaultConfig resolves settings from environment with sane fallbacks.
func DefaultConfig() *Config {
	return &Config{
		BackendURL:  envStr("SUGGESTD_BACKEND_URL", "http://localhost:8000"),
		Suggestions: envInt("SUGGESTCTL_SUGGESTIONS", 3),
		LogLvl:      envStr("SUGGESTCTL_LOG_LEVEL", "info"),
	}
}

// buildRootCmd constructs the Cobra command tree wired to the action funcs.
func buildRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "suggestctl",
		Short:         "Exercise a completions backend from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().String("backend-url", cfg.BackendURL, "Completions backend base URL (defaults SUGGESTD_BACKEND_URL or http://localhost:8000)")
	root.PersistentFlags().Int("suggestions", cfg.Suggestions, "Number of suggestions to request")
	root.PersistentFlags().String("log-level", cfg.LogLvl, "Log level: debug|info|warn|error")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := cmd.InheritedFlags().Lookup("backend-url"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.BackendURL = v
			}
		}
		if f := cmd.InheritedFlags().Lookup("suggestions"); f != nil {
			var n int
			_, _ = fmt.Sscanf(f.Value.String(), "%d", &n)
			if n != 0 {
				cfg.Suggestions = n
			}
		}
		if f := cmd.InheritedFlags().Lookup("log-level"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.LogLvl = v
			}
		}
		SetLogLevel(cfg.LogLvl)
	}

	demoCmd := &cobra.Command{
		Use:     "demo",
		Short:   "Run the fixed demo prompts against the backend",
		Example: "  suggestctl demo --backend-url http://localhost:8000",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnDemo(cfg)
		},
	}

	completeCmd := &cobra.Command{
		Use:     "complete <text>",
		Short:   "Fetch completions for one input",
		Example: "  suggestctl complete \"The weather today is\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnComplete(cfg, strings.Join(args, " "))
		},
	}

	interactiveCmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Read lines from stdin and complete each (quit/exit/q to stop)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnInteractive(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(demoCmd, completeCmd, interactiveCmd)
	return root
}

// Main is the CLI entrypoint.
func Main() {
	cfg := DefaultConfig()
	if err := buildRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
