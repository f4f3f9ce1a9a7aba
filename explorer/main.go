package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bikeshare/dataset"
	"bikeshare/explorer/config"
	"bikeshare/input"
	"bikeshare/reporter"
	"bikeshare/session"
)

const (
	configFlag   = "config"
	dataDirFlag  = "data-dir"
	logLevelFlag = "log-level"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare data interactively",
		Long:          "Asks for a city, month and day, prints statistics about the trips of the selection and shows the raw rows on demand.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExplorer,
	}

	cmd.Flags().String(configFlag, "", "path to a YAML config file, the embedded config is used if empty")
	cmd.Flags().String(dataDirFlag, "", "directory with the city files")
	cmd.Flags().String(logLevelFlag, "", "log level: trace, debug, info, warn, error")
	return cmd
}

// loadConfig reads the config file, then the environment, then the flags
func loadConfig(cmd *cobra.Command) (*config.ExplorerConfig, error) {
	configPath, _ := cmd.Flags().GetString(configFlag)
	explorerConfig, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(dataDirFlag) {
		explorerConfig.DataDir, _ = cmd.Flags().GetString(dataDirFlag)
	}
	if cmd.Flags().Changed(logLevelFlag) {
		explorerConfig.LogLevel, _ = cmd.Flags().GetString(logLevelFlag)
	}

	if err = explorerConfig.Validate(); err != nil {
		return nil, err
	}
	return explorerConfig, nil
}

func runExplorer(cmd *cobra.Command, _ []string) error {
	explorerConfig, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err = InitLogger(explorerConfig.LogLevel); err != nil {
		return err
	}

	reporters, err := reporter.NewReporters()
	if err != nil {
		return err
	}

	log.Debugf("Starting explorer with data dir %s", explorerConfig.DataDir)
	explorerSession := session.NewSession(
		input.NewCollector(cmd.InOrStdin(), cmd.OutOrStdout()),
		dataset.NewLoader(explorerConfig.LoaderConfig()),
		reporters,
		input.NewEnumeration(explorerConfig.Cities),
		cmd.OutOrStdout(),
	)
	return explorerSession.Run()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}
