package ui

import "reflect"

// ContentControl is a Control whose template shows one content value.
// Elements are shown as they are, strings as a TextBlock, and anything
// else through the ContentTemplate.
type ContentControl struct {
	Control
	Common[*ContentControl]
	content         any
	contentTemplate DataTemplate
}

// contentHost is satisfied by every type embedding ContentControl.
type contentHost interface {
	Element
	contentNode() *ContentControl
}

func NewContentControl(content any) *ContentControl {
	c := &ContentControl{}
	c.Init(c)
	c.Common = NewCommon(c)
	c.initContent(content)
	return c
}

func (c *ContentControl) initContent(content any) {
	c.content = content
	c.template = defaultContentTemplate
}

var defaultContentTemplate = TemplateFunc[contentHost](func(o contentHost) Element {
	return o.contentNode().contentVisual(o)
})

func (c *ContentControl) contentNode() *ContentControl { return c }

func (c *ContentControl) Content() any                  { return c.content }
func (c *ContentControl) ContentTemplate() DataTemplate { return c.contentTemplate }

func (c *ContentControl) SetContent(v any) {
	if sameValue(c.content, v) {
		return
	}
	c.content = v
	c.invalidateTemplate()
}

func (c *ContentControl) SetContentTemplate(t DataTemplate) {
	c.contentTemplate = t
	c.invalidateTemplate()
}

// contentVisual builds the element that shows the content inside owner's
// template.
func (c *ContentControl) contentVisual(owner Element) Element {
	if c.content == nil {
		return nil
	}
	if c.contentTemplate != nil {
		return c.contentTemplate.Build(owner, c.content)
	}
	switch v := c.content.(type) {
	case Element:
		claim(owner, v)
		return v
	case string:
		return NewTextBlock(v)
	}
	return nil
}

// claim frees el from owner's previous template so the new one can adopt
// it. An element parented anywhere else panics with *ParentError.
func claim(owner, el Element) {
	p := el.Node().parent
	if p == nil {
		return
	}
	if p != owner && isAncestor(owner, p) {
		detach(el)
		return
	}
	if p != owner {
		panic(&ParentError{Child: el, Parent: p, Request: owner})
	}
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
