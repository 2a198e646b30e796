/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/internal/iofs"
	"github.com/gnames/gnradial/internal/iologger"
	app "github.com/gnames/gnradial/pkg"
	"github.com/gnames/gnradial/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	var flags dataFlags

	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnradial",
		Short:   "Radial views of taxonomic classifications",
		Long: `GNradial draws a taxonomic classification as a radial tree.

The center of the picture is a chosen taxon (Chordata by default), rings
are taxonomic ranks from phylum to species. Big subtrees are cut by rank,
so the picture stays readable. A companion pie chart shows how species
are distributed among children of the center taxon.

Taxa are read from a CSV file with id,parent,name,common_name,rank,area
columns, or from an SFGA SQLite file.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNRADIAL_*)
  3. Config file (~/.config/gnradial/config.yaml)
  4. Built-in defaults

Examples:
  gnradial render --data chordata.csv -o chordata.svg
  gnradial render --data chordata.csv --common cats --pie cats-pie.svg
  gnradial frame --data chordata.csv --rank class --name Mammalia
  gnradial explore --data 0001-col.sqlite
  gnradial lineage --data chordata.csv "Homo sapiens"`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bootstrap(cmd, args); err != nil {
				return err
			}
			cfg.Update(flags.options(cmd))
			return nil
		},
		RunE:          runRoot,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gnradial version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnradial")

	flags.add(rootCmd)

	rootCmd.AddCommand(getRenderCmd())
	rootCmd.AddCommand(getFrameCmd())
	rootCmd.AddCommand(getExploreCmd())
	rootCmd.AddCommand(getLineageCmd())
	rootCmd.AddCommand(getConfigCmd())

	return rootCmd
}

// runRoot shows help when no subcommand is given.
func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
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

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
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

	// Reconfigure logging with user's settings
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
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

// envVars maps config keys to environment variables. They match the
// fields included in config.ToOptions(), i.e. persistent configuration
// that can be stored in config.yaml.
var envVars = [][2]string{
	// Data configuration
	{"data.path", "GNRADIAL_DATA_PATH"},
	{"data.format", "GNRADIAL_DATA_FORMAT"},

	// View configuration
	{"view.root_name", "GNRADIAL_VIEW_ROOT_NAME"},
	{"view.budget", "GNRADIAL_VIEW_BUDGET"},
	{"view.label_limit", "GNRADIAL_VIEW_LABEL_LIMIT"},
	{"view.inner_label_limit", "GNRADIAL_VIEW_INNER_LABEL_LIMIT"},
	{"view.outer_radius", "GNRADIAL_VIEW_OUTER_RADIUS"},
	{"view.width", "GNRADIAL_VIEW_WIDTH"},
	{"view.height", "GNRADIAL_VIEW_HEIGHT"},

	// Log configuration
	{"log.level", "GNRADIAL_LOG_LEVEL"},
	{"log.format", "GNRADIAL_LOG_FORMAT"},
	{"log.destination", "GNRADIAL_LOG_DESTINATION"},

	// General configuration
	{"jobs_number", "GNRADIAL_JOBS_NUMBER"},
}

func initEnvVars(v *viper.Viper) {
	// We bind variables manually so we can see clearly which env
	// variables are allowed.
	v.SetEnvPrefix("GNRADIAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, kv := range envVars {
		_ = v.BindEnv(kv[0], kv[1])
	}

	v.AutomaticEnv()
}
