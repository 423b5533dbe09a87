package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configuredCommand finds `query version`, parses args and applies config the
// way PersistentPreRunE does. Flag state is restored when the test ends.
func configuredCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd, _, err := rootCmd.Find([]string{"query", "version"})
	require.NoError(t, err)

	t.Cleanup(func() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		cfgFile = ""
	})

	require.NoError(t, cmd.ParseFlags(args))
	require.NoError(t, initConfig(cmd))

	return cmd
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("NXVIEW_NXAPI_URL", "https://env-switch/ins")
	t.Setenv("NXVIEW_NXAPI_INSECURESKIPVERIFY", "false")
	t.Setenv("NXVIEW_NXAPI_TIMEOUT", "3s")

	configuredCommand(t)

	assert.Equal(t, "https://env-switch/ins", deviceIn.URL)
	assert.False(t, deviceIn.InsecureSkipVerify)
	assert.Equal(t, 3*time.Second, deviceIn.Timeout)
}

func TestConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("NXVIEW_NXAPI_URL", "https://env-switch/ins")
	t.Setenv("NXVIEW_NXAPI_USERNAME", "env-user")

	configuredCommand(t, "--nxapi.url", "https://flag-switch/ins")

	assert.Equal(t, "https://flag-switch/ins", deviceIn.URL)
	assert.Equal(t, "env-user", deviceIn.Username)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nxapi:
  url: https://file-switch/ins
  username: operator
  insecureSkipVerify: false
  timeout: 5s
log:
  level: debug
`), 0600))

	configuredCommand(t, "--config", path, "--nxapi.username", "flag-user")

	assert.Equal(t, "https://file-switch/ins", deviceIn.URL)
	assert.Equal(t, "flag-user", deviceIn.Username)
	assert.False(t, deviceIn.InsecureSkipVerify)
	assert.Equal(t, 5*time.Second, deviceIn.Timeout)
	assert.Equal(t, "debug", logLevel)
}

func TestConfigFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nxview.config.yaml"), []byte("nxapi:\n  url: https://cwd-switch/ins\n"), 0600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	configuredCommand(t)

	assert.Equal(t, "https://cwd-switch/ins", deviceIn.URL)
}

func TestConfigMissingFile(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"query", "version"})
	require.NoError(t, err)
	t.Cleanup(func() { cfgFile = "" })

	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	assert.Error(t, initConfig(cmd))
}

func TestConfigDefaults(t *testing.T) {
	configuredCommand(t)

	assert.Equal(t, "https://sbx-nxos-mgmt.cisco.com:443/ins", deviceIn.URL)
	assert.True(t, deviceIn.InsecureSkipVerify)
	assert.Equal(t, "info", logLevel)
}
