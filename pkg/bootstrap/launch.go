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

package bootstrap

import (
	"context"
	"fmt"

	"github.com/agentnet/agentnet-cli/pkg/util"
)

// Launch starts the annotator app via its package manager's start script,
// with the activated environment materialized for the child. Output is a
// pure passthrough; the returned code is the child's own exit code and
// becomes the CLI's exit code.
func Launch(ctx context.Context, cmdr Commander, appDir string, pm WebPackageManager, envCtx *EnvContext) (int, error) {
	if !util.DirExists(appDir) {
		return 1, fmt.Errorf("app directory %s does not exist", appDir)
	}
	return cmdr.RunInteractive(ctx, ProcOpts{
		Dir:  appDir,
		Env:  envCtx.Environ(),
		Name: string(pm),
		Args: []string{"run", "start"},
	})
}
