package settings

import (
	"fmt"
	"sort"
	"strings"
)

// KeySeparator splits nested keys, so "audio.volume" addresses
// {"audio": {"volume": ...}}.
const KeySeparator = "."

// Get returns the value stored under the dotted key.
func (s *Settings) Get(key string) (any, bool) {
	parts := strings.Split(key, KeySeparator)

	var current any = s.Data
	for _, part := range parts {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set stores value under the dotted key, creating intermediate objects as
// needed. It fails if an intermediate value exists and is not an object.
func (s *Settings) Set(key string, value any) error {
	if s.Data == nil {
		s.Data = make(map[string]any)
	}

	parts := strings.Split(key, KeySeparator)
	obj := s.Data
	for i, part := range parts[:len(parts)-1] {
		next, exists := obj[part]
		if !exists {
			child := make(map[string]any)
			obj[part] = child
			obj = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %q: %q is %w", key, strings.Join(parts[:i+1], KeySeparator), ErrNotObject)
		}
		obj = child
	}

	obj[parts[len(parts)-1]] = value
	return nil
}

// Delete removes the dotted key and reports whether it was present.
func (s *Settings) Delete(key string) bool {
	parts := strings.Split(key, KeySeparator)

	parent := s.Data
	for _, part := range parts[:len(parts)-1] {
		child, ok := parent[part].(map[string]any)
		if !ok {
			return false
		}
		parent = child
	}

	last := parts[len(parts)-1]
	if _, ok := parent[last]; !ok {
		return false
	}
	delete(parent, last)
	return true
}

// Keys returns the top-level keys in sorted order.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.Data))
	for k := range s.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
