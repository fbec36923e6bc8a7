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
	"os"

	"github.com/joho/godotenv"
)

const EnvFile = ".env"

// LoadDotEnv reads a flat KEY=VALUE file. A missing file is not an error:
// it returns (nil, false, nil) so dependent features can degrade instead
// of failing the run. The entries are returned to the caller rather than
// exported into the process environment; they only reach a real
// environment at the launch boundary.
func LoadDotEnv(path string) (map[string]string, bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return nil, true, err
	}
	return env, true, nil
}
