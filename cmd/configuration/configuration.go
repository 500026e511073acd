// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const (
	// DefaultConfigFileName is the name of the configuration file in HomeDir
	DefaultConfigFileName = "config"
	// HomeDir is the directory under the user home holding the configuration
	HomeDir = ".slackmarkdown"
	// ConfigEnv is the environment variable overriding the configuration file path
	ConfigEnv = "SLACKMARKDOWNCONFIG"
)

// Loader loads the configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader loads the file named by ConfigEnv or,
// if the variable is not set, $HOME/.slackmarkdown/config
type DefaultConfigurationLoader struct{}

// Load implements Loader. A missing configuration file results in an
// empty configuration.
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(ConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", ConfigEnv)
		}
		return load(configFilePath)
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return load(filepath.Join(userHomeDir, HomeDir, DefaultConfigFileName))
}

func load(configFilePath string) (*Config, error) {
	if configFilePath == "" {
		return &Config{}, nil
	}
	stat, err := os.Stat(configFilePath)
	if errors.Is(err, os.ErrNotExist) {
		klog.V(6).Infof("configuration file %s not found\n", configFilePath)
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %w", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configFilePath, err)
	}
	return config, nil
}
