package ui

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrWrongGoroutine is the panic value of a layout pass started off the
// goroutine that owns the element's Context.
var ErrWrongGoroutine = errors.New("ui: layout outside the owning goroutine")

// ParentError reports an element attached while it still belongs to
// another parent.
type ParentError struct {
	Child   Element
	Parent  Element // current parent
	Request Element // parent that tried to attach it
}

func (e *ParentError) Error() string {
	return fmt.Sprintf("ui: %T already has parent %T, cannot attach to %T", e.Child, e.Parent, e.Request)
}

// TemplateError reports a template applied to a control of the wrong type.
type TemplateError struct {
	Want string
	Got  Element
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("ui: template for %s applied to %T", e.Want, e.Got)
}

// ResourceError reports a resource key that neither the element nor the
// theme defines.
type ResourceError struct {
	Key   string
	Style string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("ui: missing resource %q (style %q)", e.Key, e.Style)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
