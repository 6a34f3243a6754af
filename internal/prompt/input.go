// Package prompt provides interactive line input for the edit command.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter. Completions, when
// given, are offered on Tab for lines they start with.
func NewLinerPrompter(completions []string) *LinerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if len(completions) > 0 {
		line.SetCompleter(func(input string) []string {
			return complete(completions, input)
		})
	}
	return &LinerPrompter{State: line}
}

// Prompt reads one line, mapping aborts to ErrCancelled
func (p *LinerPrompter) Prompt(prompt string) (string, error) {
	result, err := p.State.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}

// Close restores the terminal
func (p *LinerPrompter) Close() error {
	return p.State.Close() //nolint:wrapcheck // terminal cleanup
}

// TextInputWithPrompter provides simple text input using a custom prompter
func TextInputWithPrompter(prompter Prompter, prompt string) (string, error) {
	coloredPrompt := color.CyanString(prompt + " ")
	result, err := prompter.Prompt(coloredPrompt)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input with prompter failed: %w", err)
	}
	return strings.TrimSpace(result), nil
}

func complete(candidates []string, input string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, input) {
			matches = append(matches, c)
		}
	}
	return matches
}
