package ui

import (
	"bytes"
	"runtime"
	"strconv"
	"time"

	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/theme"
)

// Context is what one UI tree shares: focus and input managers, the host's
// text-input hook and defaults for fonts and resources. Layout of the tree
// must run on the goroutine that created the Context.
type Context struct {
	Focus    *input.FocusManager
	Pointer  *input.PointerManager
	Keyboard *input.KeyboardManager
	Touch    *input.TouchManager

	TextInput   core.TextInput
	DefaultFont text.FontFamily
	Theme       theme.Theme
	CaretBlink  time.Duration

	owner uint64
}

// NewContext wraps the managers of sys. The calling goroutine becomes the
// owner of every tree bound to the context.
func NewContext(sys *input.System) *Context {
	return &Context{
		Focus:      sys.Focus,
		Pointer:    sys.Pointer,
		Keyboard:   sys.Keyboard,
		Touch:      sys.Touch,
		TextInput:  nopTextInput{},
		CaretBlink: 530 * time.Millisecond,
		owner:      goid(),
	}
}

func (c *Context) checkOwner() {
	if goid() != c.owner {
		panic(ErrWrongGoroutine)
	}
}

func (c *Context) textInput() core.TextInput {
	if c == nil || c.TextInput == nil {
		return nopTextInput{}
	}
	return c.TextInput
}

type nopTextInput struct{}

func (nopTextInput) StartTextInput()                 {}
func (nopTextInput) StopTextInput()                  {}
func (nopTextInput) SetTextInputRect(x, y, w, h int) {}

// goid parses the current goroutine id out of the stack header
// ("goroutine 42 [running]:").
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	id, _ := strconv.ParseUint(string(s), 10, 64)
	return id
}
