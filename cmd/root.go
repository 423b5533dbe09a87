package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Used for flags.
	cfgFile string

	deviceIn = &DeviceInput{}
	logLevel string

	rootCmd = &cobra.Command{
		Use:          "nxview",
		Short:        "Browse NX-API switch interfaces from a web page",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// You can bind cobra and viper in a few locations, but PersistencePreRunE on the root command works well
			return initConfig(cmd)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI",
	Args:  cobra.NoArgs,
	Run:   serve,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./nxview.config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log.level", "info", "log level (debug, info, warn, error)")
	bindDeviceInput(rootCmd, deviceIn)

	serveCmd.Flags().String("addr", "127.0.0.1:5000", "listen address")
	serveCmd.Flags().String("db.path", "file::memory:?cache=shared", "sqlite database for the NX-API call history")
	serveCmd.Flags().String("ui.username", "", "require this user for the web UI")
	serveCmd.Flags().String("ui.passwordHash", "", "bcrypt hash of the web UI password (see hash-password)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initQueryCmd(deviceIn))
	rootCmd.AddCommand(initHashPasswordCmd())
}

func initConfig(cmd *cobra.Command) error {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Set the base name of the config file, without the file extension.
		v.SetConfigName("nxview.config")
		v.AddConfigPath(".")
	}

	// It's okay if there isn't a config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	// --nxapi.url binds to NXVIEW_NXAPI_URL
	v.SetEnvPrefix("NXVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// Bind the current command's flags to viper
	return bindFlags(cmd, v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Viper compares keys case-insensitively, so only the hyphens need removing.
		configName := strings.ReplaceAll(f.Name, "-", "")

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				errs = append(errs, fmt.Errorf("config %s: %w", configName, err))
			}
		}
	})

	if len(errs) > 0 {
		return errs[0]
	}

	return nil
}

func newLogger(level string) (*logrus.Logger, error) {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	l.Level = lvl

	return l, nil
}

func printTable(w io.Writer, rows []map[string]string, order []string) {
	tw := tabwriter.NewWriter(w, 4, 8, 1, '\t', 0)

	fmt.Fprintln(tw, strings.Join(order, "\t"))
	for _, row := range rows {
		var output []string
		for _, column := range order {
			output = append(output, row[column])
		}

		fmt.Fprintln(tw, strings.Join(output, "\t"))
	}

	tw.Flush()
}
