// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// UnreachableDatabase is the config section of a MySQL server nothing listens on.
const UnreachableDatabase = `database:
  host: 127.0.0.1
  port: 1
  database: movies
  username: test
`

// SetupTestConfig writes a config file pointing at an unreachable database and OMDb,
// and returns its path. storeLines are appended to the store section, which comes last.
func SetupTestConfig(t *testing.T, tmpDir string, storeLines ...string) string {
	t.Helper()
	return writeConfig(t, tmpDir, "", storeLines)
}

// SetupTestConfigWithAPIKey is SetupTestConfig with a fake OMDb API key in the file.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string, storeLines ...string) string {
	t.Helper()
	return writeConfig(t, tmpDir, "  api_key: fake-key-for-testing\n", storeLines)
}

func writeConfig(t *testing.T, tmpDir, omdbLines string, storeLines []string) string {
	t.Helper()

	content := UnreachableDatabase + `omdb:
  base_url: http://127.0.0.1:1
  retry_attempts: 0
` + omdbLines + `store:
  query_timeout_seconds: 1
`
	for _, line := range storeLines {
		content += line
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}
