package ui

import (
	"sync"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/theme"
)

// Resources is an element's own key/value overrides. Lookups that miss fall
// back to the element's style section of the tree's theme.
type Resources map[string]any

var defaultTheme = sync.OnceValue(theme.Default)

// Resources returns the element's override map, creating it on first use.
func (b *Base) Resources() Resources {
	if b.resources == nil {
		b.resources = Resources{}
	}
	return b.resources
}

// Resource looks key up in the element's overrides, then in the theme.
func (b *Base) Resource(key string) (any, bool) {
	if v, ok := b.resources[key]; ok {
		return v, true
	}
	if b.style == "" {
		return nil, false
	}
	t := defaultTheme()
	if ctx := b.Context(); ctx != nil && ctx.Theme != nil {
		t = ctx.Theme
	}
	c, ok := t[b.style][key]
	return c, ok
}

// ResourceColor is Resource for colors. A missing or mistyped key panics
// with a *ResourceError.
func (b *Base) ResourceColor(key string) colors.Color {
	v, ok := b.Resource(key)
	if !ok {
		panic(&ResourceError{Key: key, Style: b.style})
	}
	c, ok := v.(colors.Color)
	if !ok {
		panic(&ResourceError{Key: key, Style: b.style})
	}
	return c
}
