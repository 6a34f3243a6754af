package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter replays canned answers
type scriptedPrompter struct {
	err     error
	prompts []string
	answers []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		if p.err != nil {
			return "", p.err
		}
		return "", ErrCancelled
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (*scriptedPrompter) Close() error { return nil }

func TestTextInputWithPrompter_TrimsInput(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: []string{"  volume  "}}
	got, err := TextInputWithPrompter(p, "key>")

	require.NoError(t, err)
	assert.Equal(t, "volume", got)
	require.Len(t, p.prompts, 1)
	assert.Contains(t, p.prompts[0], "key>")
}

func TestTextInputWithPrompter_Cancelled(t *testing.T) {
	t.Parallel()

	_, err := TextInputWithPrompter(&scriptedPrompter{}, "key>")
	require.ErrorIs(t, err, ErrCancelled)
}

func TestTextInputWithPrompter_OtherError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := TextInputWithPrompter(&scriptedPrompter{err: boom}, "key>")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "text input with prompter failed")
}

func TestComplete(t *testing.T) {
	t.Parallel()

	candidates := []string{"audio", "audio.volume", "brightness"}
	assert.Equal(t, []string{"audio", "audio.volume"}, complete(candidates, "au"))
	assert.Equal(t, candidates, complete(candidates, ""))
	assert.Empty(t, complete(candidates, "z"))
}
