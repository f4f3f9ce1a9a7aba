package config

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"bikeshare/dataset"
	"bikeshare/utils"
)

const envPrefix = "BIKESHARE"

//go:embed config.yaml
var defaultConfig []byte

type ExplorerConfig struct {
	LogLevel                string            `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"required"`
	DataDir                 string            `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	DayFilterIncludesSunday bool              `yaml:"day_filter_includes_sunday" envconfig:"DAY_FILTER_INCLUDES_SUNDAY"`
	Cities                  map[string]string `yaml:"cities" ignored:"true" validate:"required,min=1,dive,keys,required,endkeys,required"`
	Stations                map[string]string `yaml:"stations" ignored:"true"`
	Columns                 dataset.Columns   `yaml:"columns" ignored:"true"`
}

// LoadConfig reads the config file in configFilepath, or the default config if
// configFilepath is empty. Values can be overridden with BIKESHARE_* environment variables.
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile := defaultConfig
	if configFilepath != "" {
		var err error
		configFile, err = utils.GetConfigFile(configFilepath)
		if err != nil {
			return nil, err
		}
	}

	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	err = envconfig.Process(envPrefix, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error reading explorer config from environment: %w", err)
	}

	return &explorerConfig, nil
}

// Validate checks that every required value is set
func (ec *ExplorerConfig) Validate() error {
	if err := validator.New().Struct(ec); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}
	return nil
}

// LoaderConfig returns the config of the dataset loader
func (ec *ExplorerConfig) LoaderConfig() dataset.LoaderConfig {
	return dataset.LoaderConfig{
		DataDir:                 ec.DataDir,
		Columns:                 ec.Columns,
		Stations:                ec.Stations,
		DayFilterIncludesSunday: ec.DayFilterIncludesSunday,
	}
}
