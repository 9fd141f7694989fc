package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LavenderBridge/jazzdrill/internal/config"
	"github.com/LavenderBridge/jazzdrill/internal/db"
	"github.com/LavenderBridge/jazzdrill/internal/drill"
	"github.com/LavenderBridge/jazzdrill/internal/logging"
)

var (
	cfgFile     string
	profileFlag string
	verbose     bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "jazzdrill",
	Short: "Jazz harmony drills with spaced repetition",
	Long: `Jazzdrill quizzes you on chord tones, scale degrees, intervals,
ii-V-I cadences and longer progressions in all twelve keys.

Every answer feeds a per-drill rating, a top-10 leaderboard and an
SM-2 review schedule so weak spots come back when they are due.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if profileFlag != "" {
			cfg.Profile = profileFlag
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.JSON)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.jazzdrill/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "profile whose progress is used")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// openEngine opens the configured store and loads the profile into an engine.
// The caller closes the store.
func openEngine() (*drill.Engine, *db.Store, error) {
	store, err := db.Open(cfg.DatabaseDriver, cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("database error: %w", err)
	}
	engine, err := drill.NewEngine(drill.Options{
		Gateway: store.Gateway(cfg.Profile),
		Logger:  logger.Named("drill"),
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return engine, store, nil
}

// parseModeArg accepts an optional mode; "" means every drill.
func parseModeArg(s string) (drill.Mode, error) {
	if s == "" || s == "all" {
		return "", nil
	}
	return drill.ParseMode(s)
}
