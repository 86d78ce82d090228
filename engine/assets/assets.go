// Package assets resolves shaders, fonts and themes by name below an asset
// root, falling back to the files built into the binary.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/theme"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed builtin
var builtin embed.FS

// Builtin is the asset tree compiled into the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "builtin")
	if err != nil {
		panic(err)
	}
	return sub
}

// Store looks names up in each of its layers in order.
type Store struct {
	layers []fs.FS
}

// New returns a store reading from the given roots, then from Builtin.
func New(roots ...fs.FS) *Store {
	s := &Store{}
	for _, r := range roots {
		if r != nil {
			s.layers = append(s.layers, r)
		}
	}
	s.layers = append(s.layers, Builtin())
	return s
}

// ReadFile returns the first layer's copy of name.
func (s *Store) ReadFile(name string) ([]byte, error) {
	for _, l := range s.layers {
		b, err := fs.ReadFile(l, name)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %q: %w", name, err)
		}
	}
	return nil, fmt.Errorf("read %q: %w", name, fs.ErrNotExist)
}

// LoadShader reads a GLSL file from shaders/ into a null-terminated string
// for OpenGL.
func (s *Store) LoadShader(name string) (string, error) {
	b, err := s.ReadFile(path.Join("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader: %w", err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// LoadFont parses a TrueType/OpenType file from fonts/ at sizePx. An empty
// name selects the Go Regular face.
func (s *Store) LoadFont(name string, sizePx float32) (*text.FaceFont, error) {
	data := goregular.TTF
	if name != "" {
		b, err := s.ReadFile(path.Join("fonts", name))
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
		data = b
	}
	f, err := text.ParseFont(data, sizePx)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	return f, nil
}

// LoadTheme overlays the theme file at name on the built-in theme. An empty
// name returns the built-in theme.
func (s *Store) LoadTheme(name string) (theme.Theme, error) {
	if name == "" {
		return theme.Default(), nil
	}
	f, err := s.open(name)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	defer f.Close()
	t, err := theme.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load theme %q: %w", name, err)
	}
	return t, nil
}

func (s *Store) open(name string) (fs.File, error) {
	for _, l := range s.layers {
		f, err := l.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
