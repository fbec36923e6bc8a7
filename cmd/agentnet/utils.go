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

package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/agentnet/agentnet-cli/pkg/bootstrap"
	"github.com/agentnet/agentnet-cli/pkg/config"
)

const (
	defaultAppDir       = "agentnet-annotator"
	defaultRequirements = "requirements.txt"
)

var (
	condaBase    string
	envName      string = bootstrap.DefaultEnvName
	appDir       string = defaultAppDir
	requirements string = defaultRequirements
	envFile      string = config.EnvFile

	globalFlags = []cli.Flag{
		&cli.StringFlag{
			Name:        "conda-base",
			Usage:       "`PATH` to the conda base installation",
			Sources:     cli.EnvVars("AGENTNET_CONDA_BASE"),
			Destination: &condaBase,
		},
		&cli.StringFlag{
			Name:        "env-name",
			Usage:       "`NAME` of the conda environment",
			Value:       bootstrap.DefaultEnvName,
			Destination: &envName,
		},
		&cli.StringFlag{
			Name:        "app-dir",
			Usage:       "`DIR` containing the annotator application",
			Value:       defaultAppDir,
			Destination: &appDir,
		},
		&cli.StringFlag{
			Name:        "requirements",
			Usage:       "Python requirements `FILE`",
			Value:       defaultRequirements,
			Destination: &requirements,
		},
		&cli.StringFlag{
			Name:        "env-file",
			Usage:       "Credentials `FILE` loaded before launching the app",
			Value:       config.EnvFile,
			Destination: &envFile,
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Assume yes for all confirmation prompts, including destructive recreation",
		},
		&cli.BoolFlag{
			Name:     "verbose",
			Required: false,
		},
	}
)

// loadDefaults overlays persisted CLI config under anything the user did
// not set explicitly on the command line.
func loadDefaults(cmd *cli.Command) (*config.CLIConfig, error) {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return nil, err
	}
	if condaBase == "" && cfg.CondaBase != "" {
		condaBase = cfg.CondaBase
	}
	if !cmd.IsSet("env-name") && cfg.EnvName != "" {
		envName = cfg.EnvName
	}
	return cfg, nil
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// confirmer returns the destructive-operation confirmer: interactive when
// attached to a terminal, otherwise a canned "no" so existing state is
// preserved by default.
func confirmer(cmd *cli.Command) bootstrap.Confirmer {
	if cmd.Bool("yes") {
		return bootstrap.StaticConfirmer(true)
	}
	if !interactive() {
		return bootstrap.StaticConfirmer(false)
	}
	return bootstrap.NewConfirmer()
}

func resolvePackageManager(cfg *config.CLIConfig) (bootstrap.WebPackageManager, error) {
	if cfg != nil && cfg.PackageManager != "" {
		return bootstrap.ParseWebPackageManager(cfg.PackageManager)
	}
	pms, err := bootstrap.AutodetectWebPackageManagers()
	if err != nil {
		return "", err
	}
	return pms[0], nil
}
