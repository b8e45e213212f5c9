package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/avherb/herbdb/internal/iofs"
	"github.com/avherb/herbdb/internal/iologger"
	"github.com/avherb/herbdb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd builds the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", Version, Build),
		Use:     "herbdb",
		Short:   "Manage the herbarium species database",
		Long: `herbdb turns scraped species documents into a normalized
PostgreSQL database that backs the herbarium web UI.

Typical workflow:
  1. herbdb create              initialize the schema
  2. herbdb import --all        import all scraped documents
  3. herbdb show <species-id>   inspect an imported species`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for herbdb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getImportCmd(),
		getShowCmd(),
		getListCmd(),
	)
	return rootCmd
}

// bootstrap prepares directories, config and logging before any
// subcommand runs.
func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Logging starts with defaults and is reconfigured once the
	// user's config is loaded.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var fileCfg *config.Config
	if fileCfg, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(fileCfg.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))
	return nil
}

// initConfig reads config.yaml and environment overrides through
// viper.
func initConfig(home string) (*config.Config, error) {
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, iofs.ErrReadFile(cfgPath, err)
	}

	var res config.Config
	if err := v.Unmarshal(&res); err != nil {
		return nil, iofs.ErrReadFile(cfgPath, err)
	}

	return &res, nil
}

// initEnvVars binds the allowed environment variables explicitly, so
// it is clear which ones exist. They match the fields persisted in
// config.yaml.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("HERBDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("database.host", "HERBDB_DATABASE_HOST")
	v.BindEnv("database.port", "HERBDB_DATABASE_PORT")
	v.BindEnv("database.user", "HERBDB_DATABASE_USER")
	v.BindEnv("database.password", "HERBDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "HERBDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "HERBDB_DATABASE_SSL_MODE")

	v.BindEnv("import.documents_dir", "HERBDB_IMPORT_DOCUMENTS_DIR")
	v.BindEnv("import.category", "HERBDB_IMPORT_CATEGORY")

	v.BindEnv("log.level", "HERBDB_LOG_LEVEL")
	v.BindEnv("log.format", "HERBDB_LOG_FORMAT")
	v.BindEnv("log.destination", "HERBDB_LOG_DESTINATION")

	v.BindEnv("jobs_number", "HERBDB_JOBS_NUMBER")

	v.AutomaticEnv()
}
