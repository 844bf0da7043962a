// Copyright 2022 Board of Trustees of the University of Illinois.
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
	"path/filepath"
	"testing"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFilesSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DIRECTORY_TEST_ENV_FILE=loaded\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("DIRECTORY_TEST_ENV_FILE") })

	loaded := loadEnvFiles(logs.NewLogger("test", nil), filepath.Join(dir, "config", "config.env"), envFile)

	assert.Equal(t, []string{envFile}, loaded)
	assert.Equal(t, "loaded", os.Getenv("DIRECTORY_TEST_ENV_FILE"))
}
