package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/savings-advisor/internal/calculation"
	"github.com/rgehrsitz/savings-advisor/internal/config"
	"github.com/rgehrsitz/savings-advisor/internal/logging"
	"github.com/rgehrsitz/savings-advisor/internal/report"
	"github.com/rgehrsitz/savings-advisor/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Populated by the root command before any subcommand runs
var (
	settings *config.Settings
	logger   = zap.NewNop()
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "advisor %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Savings advisor CLI",
	Long: "Recommends a savings product for a profile, compares the APV tax regimes " +
		"and projects fund allocations over the savings horizon.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settingsPath, _ := cmd.Flags().GetString("config")
		if settingsPath == "" && fileExists(config.DefaultSettingsFile) {
			settingsPath = config.DefaultSettingsFile
		}

		loaded, err := config.LoadSettings(settingsPath)
		if err != nil {
			return err
		}
		settings = loaded

		levelOverride, _ := cmd.Flags().GetString("log-level")
		l, err := logging.NewLogger(settings.Logging, levelOverride)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// newSession builds a session whose engine logs through zap
func newSession() *session.Session {
	engine := calculation.NewEngine()
	engine.SetLogger(logger.Sugar())
	return session.New(engine)
}

// loadProfile parses a profile file and applies it to a fresh session
func loadProfile(path string) (*config.ProfileInput, *session.Session, error) {
	input, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}

	sess := newSession()
	sess.SetProfile(input.Profile)

	percentages, err := input.FundPercentages()
	if err != nil {
		return nil, nil, err
	}
	if len(percentages) > 0 {
		sess.SetAllocation(percentages)
	}

	override, err := input.Override()
	if err != nil {
		return nil, nil, err
	}
	if override != nil {
		sess.SelectRegime(*override)
	}

	logger.Debug("profile loaded",
		zap.String("op", "loadProfile"),
		zap.String("path", path),
		zap.String("goal", string(input.Profile.Goal)),
		zap.Int("horizon", input.Profile.Horizon),
	)
	return input, sess, nil
}

// renderer picks the output format: the --format flag first, then settings
func renderer(cmd *cobra.Command) (*report.Renderer, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = settings.Output.Format
	}
	if err := config.ValidateOutputFormat(format); err != nil {
		return nil, err
	}
	return report.NewRenderer(format, settings.Output.Pretty), nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to settings file (default: advisor.yaml if it exists)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format (table, json, csv)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(fundsCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
