// Package settings loads a JSON settings document from disk and writes it
// back on request without blocking the caller.
package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/jsonsettings/internal/logging"
)

const (
	// DefaultIndent is the number of spaces used per nesting level when saving.
	DefaultIndent = 2

	// DefaultFileMode is the permission used when save has to create the file.
	DefaultFileMode os.FileMode = 0o600

	component = "settings"
)

// ErrNotObject is returned when a document or path segment is not a JSON object.
var ErrNotObject = errors.New("value is not a JSON object")

// ErrNotLoaded is reported by Save on a Settings that did not come from Load.
var ErrNotLoaded = errors.New("settings were not loaded from a file")

type options struct {
	logger *zerolog.Logger
	indent int
	perm   os.FileMode
}

// Option customizes a loaded Settings.
type Option func(*options)

// WithLogger sets the logger that receives save failures. Without it the
// logger attached to the Load context is used.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIndent sets the number of spaces per nesting level used by Save.
func WithIndent(spaces int) Option {
	return func(o *options) {
		if spaces >= 0 {
			o.indent = spaces
		}
	}
}

// WithFileMode sets the permission used when Save creates the file.
func WithFileMode(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// Settings is a parsed JSON object bound to the file it was read from.
// Data is owned by the caller and is not guarded against concurrent use.
// Obtain one from Load; a literal has no file to save to.
type Settings struct {
	Data map[string]any

	fs      afero.Fs
	path    string
	opts    options
	pending sync.WaitGroup
}

// Load reads and parses the JSON object stored at path. Any read or parse
// failure is returned to the caller.
func Load(ctx context.Context, fs afero.Fs, path string, opts ...Option) (*Settings, error) {
	o := options{indent: DefaultIndent, perm: DefaultFileMode}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Get(ctx)
	}

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	data, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON from %s: %w", path, err)
	}

	o.logger.Debug().
		Str("component", component).
		Str("path", path).
		Int("keys", len(data)).
		Msg("loaded settings")

	return &Settings{
		Data: data,
		fs:   fs,
		path: path,
		opts: o,
	}, nil
}

// Path returns the file the settings were loaded from.
func (s *Settings) Path() string {
	return s.path
}

// Save writes a snapshot of Data back to the originating file in the
// background and returns immediately. Failures are logged once at error
// level and never retried. The returned channel yields the outcome and is
// then closed; callers that do not care may drop it.
func (s *Settings) Save() <-chan error {
	done := make(chan error, 1)

	// Snapshot now so later mutations of Data do not race the writer.
	encoded, encodeErr := s.encode()

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer close(done)

		err := encodeErr
		if err == nil {
			err = s.write(encoded)
		}
		if err != nil {
			s.logger().Error().
				Err(err).
				Str("component", component).
				Str("path", s.path).
				Msg("failed to save settings")
		}
		done <- err
	}()

	return done
}

// Wait blocks until every Save started so far has finished.
func (s *Settings) Wait() {
	s.pending.Wait()
}

// Bytes returns Data serialized the same way Save writes it.
func (s *Settings) Bytes() ([]byte, error) {
	return s.encode()
}

func (s *Settings) encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", s.opts.indent))
	if err := enc.Encode(s.Data); err != nil {
		return nil, fmt.Errorf("failed to marshal settings to JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Settings) logger() *zerolog.Logger {
	if s.opts.logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return s.opts.logger
}

func (s *Settings) write(data []byte) error {
	if s.fs == nil || s.path == "" {
		return ErrNotLoaded
	}
	if err := afero.WriteFile(s.fs, s.path, data, s.opts.perm); err != nil {
		return fmt.Errorf("failed to write settings to file %s: %w", s.path, err)
	}
	return nil
}

func decode(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level %w", ErrNotObject)
	}
	return obj, nil
}
