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
	"context"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/agentnet/agentnet-cli/pkg/bootstrap"
	"github.com/agentnet/agentnet-cli/pkg/config"
)

var StartCommands = []*cli.Command{
	{
		Name:   "start",
		Usage:  "Activate the provisioned environment and launch the annotator",
		Action: runStart,
	},
}

func runStart(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadDefaults(cmd)
	if err != nil {
		return err
	}

	cmdr := bootstrap.NewCommander(cmd.Bool("verbose"))

	var (
		dotEnv   map[string]string
		tc       *bootstrap.Toolchain
		envCtx   *bootstrap.EnvContext
		exitCode int
	)

	runner := bootstrap.NewRunner(
		bootstrap.Step{State: bootstrap.StateLoadConfig, Run: func(ctx context.Context) error {
			env, found, err := config.LoadDotEnv(envFile)
			if err != nil {
				return err
			}
			if !found {
				log.Warn("No credentials file found, cloud upload disabled", "file", envFile)
			}
			dotEnv = env
			return nil
		}},
		bootstrap.Step{State: bootstrap.StateLocateToolchain, Run: func(ctx context.Context) error {
			// no installer at start time; setup owns installation
			located, err := bootstrap.LocateToolchain(ctx, bootstrap.CandidateBases(condaBaseOverride(dotEnv)), nil)
			if err != nil {
				return err
			}
			tc = located
			return nil
		}},
		bootstrap.Step{State: bootstrap.StateActivateEnv, Run: func(ctx context.Context) error {
			activated, err := bootstrap.Activate(tc, envName)
			if err != nil {
				return err
			}
			activated.Merge(dotEnv)
			envCtx = activated
			return nil
		}},
		bootstrap.Step{State: bootstrap.StateVerifyRuntime, Run: func(ctx context.Context) error {
			return bootstrap.VerifyNode(ctx, cmdr, envCtx)
		}},
		bootstrap.Step{State: bootstrap.StateLaunch, Run: func(ctx context.Context) error {
			pm, err := resolvePackageManager(cfg)
			if err != nil {
				return err
			}
			log.Info("Launching annotator", "dir", appDir, "env", envName)
			code, err := bootstrap.Launch(ctx, cmdr, appDir, pm, envCtx)
			exitCode = code
			return err
		}},
	)

	if err := runner.Run(ctx); err != nil {
		return err
	}
	if exitCode != 0 {
		// inherit the child's exit code
		return cli.Exit("", exitCode)
	}
	return nil
}

// condaBaseOverride resolves the toolchain base override for start: the
// flag, env var, or persisted config wins; otherwise a value from the
// credentials file applies, matching what .env.example documents.
func condaBaseOverride(dotEnv map[string]string) string {
	if condaBase != "" {
		return condaBase
	}
	return dotEnv["AGENTNET_CONDA_BASE"]
}
