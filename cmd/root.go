package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/internal/iofs"
	"github.com/sakemonkey/sakedb/internal/iologger"
	"github.com/sakemonkey/sakedb/pkg/config"
	"github.com/sakemonkey/sakedb/pkg/sakedb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config

	// per-run overrides for the sync commands
	spreadsheetIDFlag string
	credentialsFlag   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s",
		sakedb.Version, sakedb.Build),
	Use:   "sakedb",
	Short: "Sync a local sake-brewing database with Google Sheets",
	Long: `SakeDB keeps a local SQLite database of sake-brewing records in
sync with a Google Sheets spreadsheet.

The database tracks four entities: ingredients, yeast starters, recipe
batches and publish notes. 'pull' merges remote rows into the local
database without clobbering locally entered values; 'push' appends
local-only records to the sheets and never rewrites existing rows.

Start with:
  sakedb init
  sakedb verify
  sakedb sync`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

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

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	err = iologger.Init(config.LogDir(homeDir), defaultLog, true)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// CLI flags take precedence over env vars and config.yaml
	if spreadsheetIDFlag != "" {
		cfg.Update([]config.Option{
			config.OptSheetsSpreadsheetID(spreadsheetIDFlag),
		})
	}
	if credentialsFlag != "" {
		cfg.Update([]config.Option{
			config.OptSheetsCredentialsFile(credentialsFlag),
		})
	}

	// Reconfigure logging with user's settings and proper log file
	// location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded
// configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "sakedb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for sakedb")

	rootCmd.PersistentFlags().StringVar(
		&spreadsheetIDFlag, "spreadsheet-id", "",
		"override the configured spreadsheet ID",
	)
	rootCmd.PersistentFlags().StringVar(
		&credentialsFlag, "credentials", "",
		"override the configured service-account JSON path",
	)

	rootCmd.AddCommand(
		getInitCmd(),
		getVerifyCmd(),
		getPullCmd(),
		getPushCmd(),
		getSyncCmd(),
		getBackupCmd(),
		getCalcCmd(),
		getConfigCmd(),
	)
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. These match the fields included in
	// config.ToOptions(), i.e. persistent configuration that can be
	// stored in config.yaml.
	v.SetEnvPrefix("SAKEDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.path")
	v.BindEnv("database.batch_size")

	// Sheets configuration
	v.BindEnv("sheets.spreadsheet_id")
	v.BindEnv("sheets.credentials_file")

	// Log configuration
	v.BindEnv("log.level")
	v.BindEnv("log.format")
	v.BindEnv("log.destination")

	v.AutomaticEnv()
}
