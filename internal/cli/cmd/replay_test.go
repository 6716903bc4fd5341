package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lrucache/internal/application/usecase"
	"github.com/bnema/lrucache/internal/cli"
	"github.com/bnema/lrucache/internal/domain/trace"
)

const evictingTrace = `# capacity 2
put a 1
put b 2
get a
put c 3
get b
`

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LRUCACHE_LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		appOpts = cli.Options{}
		replayPlain, replayVerbose = false, false
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestReplay_PlainFromStdin(t *testing.T) {
	out, err := runRoot(t, evictingTrace, "replay", "--plain", "--capacity", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "capacity=2 ops=5 hits=1 misses=1 inserts=3 updates=0 evictions=1")
	assert.Contains(t, out, "order: c a\n")
	assert.Contains(t, out, "a=1\nc=3\n")
	assert.NotContains(t, out, "b=2")
}

func TestReplay_PlainFromFileVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.trace")
	require.NoError(t, os.WriteFile(path, []byte(evictingTrace), 0o600))

	out, err := runRoot(t, "", "replay", path, "--plain", "--verbose", "-c", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "5\tput c 3\tinserted\tevicted=b\n")
	assert.Contains(t, out, "6\tget b\tmiss\n")
	assert.Contains(t, out, "4\tget a\thit\t1\n")
}

func TestReplay_InvalidTrace(t *testing.T) {
	_, err := runRoot(t, "put a\n", "replay", "--plain")
	require.Error(t, err)
	assert.ErrorIs(t, err, trace.ErrInvalidTrace)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReplay_InvalidCapacity(t *testing.T) {
	_, err := runRoot(t, evictingTrace, "replay", "--plain", "--capacity=-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity")
}

func TestReplay_MissingFile(t *testing.T) {
	_, err := runRoot(t, "", "replay", filepath.Join(t.TempDir(), "missing.trace"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWritePlainReplay_SummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	writePlainReplay(&buf, 3, &usecase.ReplayTraceOutput{
		Steps:    []usecase.Step{{Op: trace.Op{Line: 1, Kind: trace.KindPut, Key: "k", Value: "v"}, Outcome: usecase.OutcomeInserted}},
		Inserts:  1,
		Order:    []string{"k"},
		Contents: map[string]string{"k": "v"},
	}, false)

	assert.Equal(t,
		"capacity=3 ops=1 hits=0 misses=0 inserts=1 updates=0 evictions=0\norder: k\nk=v\n",
		buf.String())
}

func TestConfigSchema_SkipsAppInit(t *testing.T) {
	out, err := runRoot(t, "", "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"capacity"`)
}

func TestConfigKeys_FiltersSection(t *testing.T) {
	out, err := runRoot(t, "", "config", "keys", "--section", "cache")
	t.Cleanup(func() { configKeysSection = "" })
	require.NoError(t, err)
	assert.Contains(t, out, "cache.capacity")
	assert.Contains(t, out, "cache.synchronized")
	assert.NotContains(t, out, "logging.level")
}
