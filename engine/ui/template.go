package ui

// Template builds the visual subtree of a control. Build receives the
// control the template is applied to.
type Template interface {
	Build(owner Element) Element
}

// TemplateFunc is a Template for owners of type T. Applying it to any
// other owner panics with *TemplateError.
type TemplateFunc[T Element] func(owner T) Element

func (f TemplateFunc[T]) Build(owner Element) Element {
	o, ok := owner.(T)
	if !ok {
		panic(&TemplateError{Want: typeName[T](), Got: owner})
	}
	return f(o)
}

// DataTemplate builds the visual for a content value.
type DataTemplate interface {
	Build(owner Element, data any) Element
}

// DataTemplateFunc is a DataTemplate for content values of type D.
type DataTemplateFunc[D any] func(owner Element, data D) Element

func (f DataTemplateFunc[D]) Build(owner Element, data any) Element {
	d, ok := data.(D)
	if !ok {
		panic(&TemplateError{Want: typeName[D](), Got: owner})
	}
	return f(owner, d)
}
