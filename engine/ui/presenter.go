package ui

import "github.com/hubastard/groveui/engine/geom"

// ScrollContentPresenter shows its content through a viewport. On a
// scrollable axis the content is measured without limit and shifted by the
// offset on that axis.
type ScrollContentPresenter struct {
	ContentControl
	Common[*ScrollContentPresenter]
	canH, canV bool
	hOffset    float32
	vOffset    float32

	extent     geom.Size
	viewport   geom.Size
	scrollable geom.Size
	changed    []func()
}

func NewScrollContentPresenter(content any) *ScrollContentPresenter {
	p := &ScrollContentPresenter{}
	p.Init(p)
	p.Common = NewCommon(p)
	p.initContent(content)
	return p
}

func (p *ScrollContentPresenter) CanScrollHorizontally() bool { return p.canH }
func (p *ScrollContentPresenter) CanScrollVertically() bool   { return p.canV }
func (p *ScrollContentPresenter) HorizontalOffset() float32   { return p.hOffset }
func (p *ScrollContentPresenter) VerticalOffset() float32     { return p.vOffset }

// Extent is the arranged size of the content.
func (p *ScrollContentPresenter) Extent() geom.Size { return p.extent }

// Viewport is the area the content is shown through.
func (p *ScrollContentPresenter) Viewport() geom.Size { return p.viewport }

// Scrollable is how far the content can be offset on each axis.
func (p *ScrollContentPresenter) Scrollable() geom.Size { return p.scrollable }

// OnScrollInfoChanged registers fn to run when Extent, Viewport or
// Scrollable change. These are notifications and do not invalidate layout.
func (p *ScrollContentPresenter) OnScrollInfoChanged(fn func()) {
	p.changed = append(p.changed, fn)
}

func (p *ScrollContentPresenter) SetCanScrollHorizontally(v bool) {
	if p.canH != v {
		p.canH = v
		p.InvalidateVisual()
	}
}

func (p *ScrollContentPresenter) SetCanScrollVertically(v bool) {
	if p.canV != v {
		p.canV = v
		p.InvalidateVisual()
	}
}

func (p *ScrollContentPresenter) SetHorizontalOffset(v float32) {
	if p.hOffset != v {
		p.hOffset = v
		p.offsetChanged()
	}
}

func (p *ScrollContentPresenter) SetVerticalOffset(v float32) {
	if p.vOffset != v {
		p.vOffset = v
		p.offsetChanged()
	}
}

// offsetChanged moves the content right away when the presenter is laid
// out and nothing else is pending; an offset never changes its own size.
func (p *ScrollContentPresenter) offsetChanged() {
	if p.hasMeasure && p.hasArrange && !p.invalidated {
		p.Arrange(p.lastArrange)
		return
	}
	p.InvalidateVisual()
}

func (p *ScrollContentPresenter) MeasureOverride(avail geom.Size) geom.Size {
	inner := p.childAvailable(avail)
	p.ApplyTemplate()
	if p.canH {
		inner.W = geom.Inf
	}
	if p.canV {
		inner.H = geom.Inf
	}
	var content geom.Size
	if p.root != nil {
		n := p.root.Node()
		n.Measure(inner)
		content = n.outer()
	}
	return p.resolveDesired(content, avail)
}

func (p *ScrollContentPresenter) ArrangeOverride(final geom.Rect) geom.Rect {
	bounds := p.Base.ArrangeOverride(final)
	inner := bounds.Shrink(p.padding)
	var extent geom.Size
	if p.root != nil {
		n := p.root.Node()
		r := inner.Shrink(n.margin).Offset(-int(p.hOffset), -int(p.vOffset))
		if p.canH {
			r.W = int(n.desired.W)
		}
		if p.canV {
			r.H = int(n.desired.H)
		}
		n.Arrange(r)
		extent = geom.Size{W: n.actualW, H: n.actualH}
	}
	viewport := geom.Size{W: float32(max(0, inner.W)), H: float32(max(0, inner.H))}
	scrollable := geom.Size{
		W: max(0, extent.W-viewport.W),
		H: max(0, extent.H-viewport.H),
	}
	if extent != p.extent || viewport != p.viewport || scrollable != p.scrollable {
		p.extent, p.viewport, p.scrollable = extent, viewport, scrollable
		for _, fn := range p.changed {
			fn()
		}
	}
	return bounds
}
