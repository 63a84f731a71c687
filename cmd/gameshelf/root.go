// Root command for the gameshelf CLI.
package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dukaforge/gameshelf/internal/logging"
	"github.com/dukaforge/gameshelf/internal/paths"
)

// Version is the gameshelf release version.
const Version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE, available to all
// subcommands.
var (
	configDataDir string
	configLogFile string
)

// log is the process logger, configured in PersistentPreRunE.
var log *slog.Logger = slog.Default()

// closeLog releases the log file, when one is open.
var closeLog = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:     "gameshelf",
	Short:   "Gameshelf is a local-first play-log tracker",
	Version: Version,
	Long: `Gameshelf tracks games, play sessions, chapters, memos, and uploads in a
local store, and moves that data in and out through portable export files
(JSON, CSV, or SQL statements).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configLogFile = cfg.GetString(cfgKeyLogFile)

		log, closeLog = logging.Setup(configLogFile, parseLogLevel(cfg.GetString(cfgKeyLogLevel)))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.gameshelf-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(statsCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > GAMESHELF_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence
// flag > config.yaml data_dir > GAMESHELF_DATA_DIR env > CWD default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
