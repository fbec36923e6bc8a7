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
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/agentnet/agentnet-cli/pkg/bootstrap"
	"github.com/agentnet/agentnet-cli/pkg/util"
)

var SetupCommands = []*cli.Command{
	{
		Name:   "setup",
		Usage:  "Provision the local development environment for the annotator",
		Action: runSetup,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "recreate",
				Usage: "Remove and recreate the conda environment (asks for confirmation)",
			},
		},
	},
}

func runSetup(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadDefaults(cmd)
	if err != nil {
		return err
	}

	cmdr := bootstrap.NewCommander(cmd.Bool("verbose"))

	// The installer targets the override when one is set, else the
	// conventional user-local prefix.
	installPrefix := condaBase
	if installPrefix == "" {
		installPrefix = "~/miniconda3"
	}
	tc, err := bootstrap.LocateToolchain(ctx,
		bootstrap.CandidateBases(condaBase),
		bootstrap.MinicondaInstaller(cmdr, installPrefix),
	)
	if err != nil {
		return err
	}
	log.Info("Using conda toolchain", "base", tc.Base)

	prov := &bootstrap.Provisioner{
		Toolchain: tc,
		Exec:      cmdr,
		Confirm:   confirmer(cmd),
	}
	opts := bootstrap.ProvisionOpts{
		EnvName:  envName,
		Recreate: cmd.Bool("recreate"),
	}
	if err := withSpinner(ctx, fmt.Sprintf("Provisioning environment [%s]...", envName), func() error {
		return prov.Provision(ctx, opts)
	}); err != nil {
		return err
	}
	if err := withSpinner(ctx, "Ensuring Node.js runtime...", func() error {
		return prov.EnsureNode(ctx, envName)
	}); err != nil {
		return err
	}

	if err := checkLayout(); err != nil {
		return err
	}

	pm, err := resolvePackageManager(cfg)
	if err != nil {
		return err
	}
	inst := &bootstrap.Installer{
		Toolchain: tc,
		Exec:      cmdr,
		EnvName:   envName,
	}
	if err := inst.InstallAll(ctx, requirements, appDir, pm); err != nil {
		return err
	}

	// remember the located base for subsequent runs
	if cfg.CondaBase != tc.Base {
		cfg.CondaBase = tc.Base
		if err := cfg.PersistIfNeeded(); err != nil {
			log.Warn("Failed to persist CLI config", "err", err)
		}
	}

	log.Info("Setup complete", "env", envName)
	fmt.Println("Run " + util.Accented("agentnet start") + " to launch the annotator")
	return nil
}

// checkLayout verifies the expected filesystem layout: a Python project
// around the requirements manifest and a Node project in the app dir.
func checkLayout() error {
	manifestDir := filepath.Dir(requirements)
	if pt, err := bootstrap.DetectProjectType(os.DirFS(manifestDir)); err != nil {
		return fmt.Errorf("no project manifests found in %s: %w", manifestDir, err)
	} else if !pt.IsPython() {
		return fmt.Errorf("%s does not look like a Python project (detected %s)", manifestDir, pt)
	}

	if pt, err := bootstrap.DetectProjectType(os.DirFS(appDir)); err != nil {
		return fmt.Errorf("annotator app not found in %s: %w", appDir, err)
	} else if !pt.IsNode() {
		return fmt.Errorf("%s does not look like a Node.js project (detected %s)", appDir, pt)
	}
	return nil
}

func withSpinner(ctx context.Context, title string, action func() error) error {
	if !interactive() {
		return action()
	}
	var actionErr error
	if err := spinner.New().
		Title(title).
		Action(func() {
			actionErr = action()
		}).
		Style(util.Theme.Focused.Title).
		Run(); err != nil {
		return err
	}
	return actionErr
}
