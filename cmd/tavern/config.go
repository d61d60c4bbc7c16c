// Config loading for the tavern CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = ".tavern"
	configFileType = "yaml"

	cfgKeyOutput  = "output"
	cfgKeyVerbose = "verbose"

	defaultOutput = "text"
)

// loadConfig reads the optional CLI config with Viper. An explicit path
// must exist; the default .tavern.yaml in the working directory may be
// absent, in which case defaults apply.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyVerbose, false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
