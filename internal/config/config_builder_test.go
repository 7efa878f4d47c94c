package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func parseCLIFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("neuprint", pflag.ContinueOnError)
	flags := BindCLIFlags(fs)
	require.NoError(t, fs.Parse(args))
	return flags
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigWins verifies that non-zero fields of later configs
// override earlier ones while zero fields leave them untouched.
func TestBuild_LaterConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Client: Client{Server: "first", Token: "keep-me"}},
		&StructuredConfig{Client: Client{Server: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Client.Server)
	assert.Equal(t, "keep-me", cfg.Client.Token)
}

// TestBuild_ValidatesResult verifies that an invalid merged config is
// reported.
func TestBuild_ValidatesResult(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Output: Output{Format: "xml"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidOutputFormat)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultRequestTimeout, cfg.Client.RequestTimeout)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, DefaultSandboxAddress, cfg.Sandbox.Address)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Sandbox.ShutdownTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("NEUPRINT_SERVER", "env-server")
	t.Setenv("NEUPRINT_OUTPUT_FORMAT", "json")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-server", b.configs[0].Client.Server)
	assert.Equal(t, "json", b.configs[0].Output.Format)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed variable is
// recorded on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("NEUPRINT_REQUEST_TIMEOUT", "forever")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilIsNoOp verifies that a nil *Flags adds nothing.
func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// neither the argument nor any config names a file.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON("")

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_UsesPathFromConfigs verifies that the path collected from an
// earlier source (e.g. NEUPRINT_CONFIG) is used when no explicit path is
// given.
func TestWithJSON_UsesPathFromConfigs(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Client.Server = "from-json"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON("")

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-json", b.configs[2].Client.Server)
}

// TestWithJSON_ExplicitPathWins verifies that an explicit path overrides any
// collected JSONFilePath.
func TestWithJSON_ExplicitPathWins(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Client.Server = "explicit"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "does-not-exist.json"})
	b.withJSON(path)

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "explicit", b.configs[1].Client.Server)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.withJSON(f.Name())

	assert.Error(t, b.err)
}

// ── priority ──────────────────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies flags > JSON > env > defaults.
func TestGetStructuredConfig_Priority(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.Client.Server = "json-server"
	payload.Client.Token = "json-token"
	payload.Output.Format = "json"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("NEUPRINT_SERVER", "env-server")
	t.Setenv("NEUPRINT_APPLICATION_CREDENTIALS", "env-token")
	t.Setenv("NEUPRINT_HISTORY_DSN", "env.db")
	t.Setenv("NEUPRINT_CONFIG", path)

	flags := parseCLIFlags(t, "--server", "flag-server")

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "flag-server", cfg.Client.Server)
	assert.Equal(t, "json-token", cfg.Client.Token)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "env.db", cfg.Storage.HistoryDSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Client.RequestTimeout)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestGetCLIConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("NEUPRINT_REQUEST_TIMEOUT", "5s")

	flags := parseCLIFlags(t, "-s", "neuprint.janelia.org", "-f", "csv", "--debug", "--history-dsn", "h.db")

	cfg, err := GetCLIConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "neuprint.janelia.org", cfg.Server)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "csv", cfg.OutputFormat)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "h.db", cfg.Storage.HistoryDSN)
	assert.NoError(t, cfg.RequireServer())
}

func TestGetCLIConfig_InvalidFormat(t *testing.T) {
	clearEnvVars(t)

	_, err := GetCLIConfig(parseCLIFlags(t, "--format", "yaml"))
	assert.ErrorIs(t, err, ErrInvalidOutputFormat)
}

func TestCLIConfig_RequireServer(t *testing.T) {
	cfg := &CLIConfig{}
	assert.ErrorIs(t, cfg.RequireServer(), ErrMissingServer)
}

func TestGetSandboxConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("NEUPRINT_SANDBOX_SIGN_KEY", "env-key")

	fs := pflag.NewFlagSet("neuprint-sandbox", pflag.ContinueOnError)
	flags := BindSandboxFlags(fs)
	require.NoError(t, fs.Parse([]string{"--fixtures", "f.json"}))

	cfg, err := GetSandboxConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, DefaultSandboxAddress, cfg.Address)
	assert.Equal(t, "f.json", cfg.FixturesPath)
	assert.Equal(t, "env-key", cfg.SignKey)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
}

func TestGetSandboxConfig_InvalidAddress(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("NEUPRINT_SANDBOX_ADDRESS", "nowhere")

	_, err := GetSandboxConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidSandboxAddress)
}

func TestGetSandboxConfig_IncompleteTLSPair(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("NEUPRINT_SANDBOX_TLS_CERT", "cert.pem")

	_, err := GetSandboxConfig(nil)
	assert.ErrorIs(t, err, ErrIncompleteTLSPair)
}
