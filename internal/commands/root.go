package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cleared-dev/statementlab/internal/buildinfo"
	"github.com/cleared-dev/statementlab/internal/catalog"
	"github.com/cleared-dev/statementlab/internal/config"
	"github.com/cleared-dev/statementlab/internal/model"
	"github.com/cleared-dev/statementlab/internal/zones"
)

// state is filled in by the root command before any subcommand runs.
type state struct {
	cfg      *config.Config
	catalog  *catalog.Service
	registry *zones.Registry
	logger   *log.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	st := &state{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:     "statementlab",
		Short:   "Practice sorting accounts into financial statement sections",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.load(cmd, v)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default ./"+config.FileName+" if present)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	v.SetEnvPrefix("STATEMENTLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newZonesCommand(st))
	rootCmd.AddCommand(newAccountsCommand(st))
	rootCmd.AddCommand(newSolveCommand(st))
	rootCmd.AddCommand(newDrillCommand(st))
	rootCmd.AddCommand(newFlashcardsCommand(st))

	return rootCmd
}

func (st *state) load(cmd *cobra.Command, v *viper.Viper) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := loadConfig(v.GetString("config"))
	if err != nil {
		return err
	}
	if lvl := v.GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "statementlab",
	})

	cat := catalog.DefaultChart()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}

	reg := zones.Default()
	if cfg.Zones.Path != "" {
		reg, err = zones.Load(cfg.Zones.Path)
		if err != nil {
			return fmt.Errorf("loading zones: %w", err)
		}
	}

	logger.Debug("loaded", "accounts", len(cat.All()), "catalog", orBuiltin(cfg.Catalog.Path), "zones", orBuiltin(cfg.Zones.Path))

	st.cfg = cfg
	st.catalog = cat
	st.registry = reg
	st.logger = logger
	return nil
}

// loadConfig reads path, or ./statementlab.yaml when path is empty and that
// file exists, or falls back to defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.FileName); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = config.FileName
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// statementArg returns the statement named by args[0], or the configured
// default when there is no argument.
func (st *state) statementArg(args []string) (model.StatementType, error) {
	if len(args) == 0 {
		return st.cfg.DefaultStatement(), nil
	}
	return model.ParseStatementType(args[0])
}

func orBuiltin(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
