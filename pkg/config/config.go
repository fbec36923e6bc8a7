// Copyright 2025 AgentNet, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// CLIConfig holds user-level defaults persisted between invocations.
// Command-line flags and environment variables take precedence over it.
type CLIConfig struct {
	CondaBase      string `yaml:"conda_base,omitempty"`
	EnvName        string `yaml:"env_name,omitempty"`
	PackageManager string `yaml:"package_manager,omitempty"`
	// absent from YAML
	hasPersisted bool
	configPath   string
}

// LoadOrCreate loads config file from ~/.agentnet/cli-config.yaml
// if it doesn't exist, it'll return an empty config file
func LoadOrCreate() (*CLIConfig, error) {
	configPath, err := getConfigLocation()
	if err != nil {
		return nil, err
	}
	return loadOrCreateAt(configPath)
}

func loadOrCreateAt(configPath string) (*CLIConfig, error) {
	c := &CLIConfig{configPath: configPath}
	if s, err := os.Stat(configPath); os.IsNotExist(err) {
		return c, nil
	} else if err != nil {
		return nil, err
	} else if s.Mode().Perm()&0077 != 0 {
		// config may reference credential files, keep it owner-only
		fmt.Fprintf(os.Stderr, "WARNING: config file %s should have permissions %o\n", configPath, 0600)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if err = yaml.Unmarshal(content, c); err != nil {
		return nil, err
	}
	c.hasPersisted = true

	return c, nil
}

func (c *CLIConfig) PersistIfNeeded() error {
	if c.CondaBase == "" && c.EnvName == "" && c.PackageManager == "" && !c.hasPersisted {
		// doesn't need to be persisted
		return nil
	}

	configPath := c.configPath
	if configPath == "" {
		var err error
		if configPath, err = getConfigLocation(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(path.Dir(configPath), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err = os.WriteFile(configPath, data, 0600); err != nil {
		return err
	}
	c.hasPersisted = true
	return nil
}

func getConfigLocation() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return path.Join(dir, ".agentnet", "cli-config.yaml"), nil
}
