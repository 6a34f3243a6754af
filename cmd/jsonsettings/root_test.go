package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/jsonsettings/internal/prompt"
	testutil "github.com/wizzomafizzo/jsonsettings/internal/testing"
)

const testConfigPath = "/config/jsonsettings.yml"

// scriptedPrompter replays canned answers, then cancels
type scriptedPrompter struct {
	answers []string
	closed  bool
}

func (p *scriptedPrompter) Prompt(string) (string, error) {
	if len(p.answers) == 0 {
		return "", prompt.ErrCancelled
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Close() error {
	p.closed = true
	return nil
}

type testHarness struct {
	fs       afero.Fs
	logs     *testutil.LogBuffer
	prompter *scriptedPrompter
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	return &testHarness{
		fs:       afero.NewMemMapFs(),
		logs:     &testutil.LogBuffer{},
		prompter: &scriptedPrompter{},
	}
}

func (h *testHarness) deps() dependencies {
	return dependencies{
		fs:        h.fs,
		logWriter: h.logs,
		prompter: func([]string) prompt.Prompter {
			return h.prompter
		},
	}
}

func (h *testHarness) writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, h.fs.MkdirAll(filepath.Dir(name), 0o750))
	require.NoError(t, afero.WriteFile(h.fs, name, []byte(content), 0o600))
}

func (h *testHarness) readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := afero.ReadFile(h.fs, name)
	require.NoError(t, err)
	return string(data)
}

// run executes the root command with args and returns stdout
func (h *testHarness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := buildRootCommand(h.deps())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", testConfigPath}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	t.Parallel()

	rootCmd := createNewRootCommand()
	for _, name := range []string{"get", "set", "unset", "keys", "edit", "backup", "restore", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
		assert.NotEmpty(t, cmd.Short, name)
	}
}

func TestRootCommand_ShowsHelp(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	out, err := h.run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Read and write JSON settings files")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	h.writeFile(t, testConfigPath, "indent: 42\n")
	h.writeFile(t, "/cfg.json", `{"volume": 5}`)

	_, err := h.run(t, "get", "/cfg.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRootCommand_LogLevelOverride(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	h.writeFile(t, "/cfg.json", `{"volume": 5}`)

	_, err := h.run(t, "--log-level", "debug", "get", "/cfg.json")
	require.NoError(t, err)
	assert.Contains(t, h.logs.String(), "loaded settings")

	_, err = h.run(t, "--log-level", "nonsense", "get", "/cfg.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
