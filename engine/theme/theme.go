// Package theme holds the color dictionaries templated controls seed their
// resources from.
package theme

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"maps"
	"sort"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

//go:embed default.toml
var defaultTOML []byte

// Dictionary maps resource keys such as "Button.Normal.Background" to colors.
type Dictionary map[string]colors.Color

func (d Dictionary) Clone() Dictionary { return maps.Clone(d) }

// Theme is a set of dictionaries keyed by control name.
type Theme map[string]Dictionary

// Default returns a fresh copy of the built-in theme.
func Default() Theme {
	t, err := Decode(bytes.NewReader(defaultTOML))
	if err != nil {
		panic(fmt.Errorf("theme: built-in theme: %w", err))
	}
	return t
}

// Load decodes a theme file and overlays it on the built-in theme.
func Load(r io.Reader) (Theme, error) {
	over, err := Decode(r)
	if err != nil {
		return nil, err
	}
	t := Default()
	t.Merge(over)
	return t, nil
}

// Decode reads a theme: one table per control, hex color strings as values.
func Decode(r io.Reader) (Theme, error) {
	var raw map[string]map[string]string
	if err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	t := make(Theme, len(raw))
	for name, entries := range raw {
		d := make(Dictionary, len(entries))
		for key, hex := range entries {
			c, err := colors.FromHex(hex)
			if err != nil {
				return nil, fmt.Errorf("theme %s.%q: %w", name, key, err)
			}
			d[key] = c
		}
		t[name] = d
	}
	return t, nil
}

// Merge copies every entry of o into t, key by key.
func (t Theme) Merge(o Theme) {
	for name, d := range o {
		dst, ok := t[name]
		if !ok {
			dst = make(Dictionary, len(d))
			t[name] = dst
		}
		maps.Copy(dst, d)
	}
}

// Dictionary returns a private copy of the named dictionary, never nil.
func (t Theme) Dictionary(name string) Dictionary {
	if d, ok := t[name]; ok {
		return d.Clone()
	}
	return Dictionary{}
}

// Names lists the controls the theme styles, sorted.
func (t Theme) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
