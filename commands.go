package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/takoeight0821/shade/config"
	"github.com/takoeight0821/shade/driver"
	"github.com/takoeight0821/shade/eval"
)

var version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "shade",
	Short: "shade - a small expression language",
	Long: `shade evaluates arithmetic, functions and lists one statement at a time.

Without a subcommand it starts the interactive prompt.`,
	SilenceUsage: true,
	RunE:         runRepl,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Evaluate a file line by line",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [SOURCE]",
	Short: "Print the tokens of SOURCE, or of stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

var traceFlat bool

var parseCmd = &cobra.Command{
	Use:   "parse [SOURCE]",
	Short: "Print the syntax tree of SOURCE, or of stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "shade %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/shade/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stages to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	parseCmd.Flags().BoolVar(&traceFlat, "trace", false, "print the flat node stream instead of the tree")

	rootCmd.AddCommand(replCmd, runCmd, tokensCmd, parseCmd, versionCmd)
}

// loadConfig merges the config file with command-line flags.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}
	if noColor {
		cfg.Color = false
	}

	return cfg, nil
}

func newSession(cfg *config.Config) *driver.Session {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return driver.NewSession(logger)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return RunPrompt(cfg, newSession(cfg))
}

func runFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	st := newStyles(cfg.Color)
	out := cmd.OutOrStdout()
	err = newSession(cfg).RunScript(f, func(v eval.Value) {
		printValue(out, st, v)
	})
	if err != nil {
		printError(cmd.ErrOrStderr(), st, err)
		return errors.New("evaluation failed")
	}

	return nil
}

// readSource takes SOURCE from args, or all of stdin.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(b), "\n"), nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	buf, err := newSession(cfg).Tokens(source)
	// The buffer holds everything before a lexing failure.
	if buf != nil {
		for _, t := range buf.Tokens() {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
	}

	return err
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	session := newSession(cfg)
	out := cmd.OutOrStdout()

	if traceFlat {
		nodes, buf, err := session.Trace(source)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			fmt.Fprintf(out, "%-28s %q\n", n.Kind, buf.Text(n.Token))
		}
		return nil
	}

	stmt, err := session.Parse(source)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, stmt)

	return nil
}
