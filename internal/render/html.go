package render

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error so component
// bodies can stay linear.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

// raw writes trusted markup through templ.Raw.
func (h *htmlWriter) raw(s string) {
	h.render(h.ctx, templ.Raw(s))
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// tag writes a start tag; attributes render in the given order and are escaped by templ.
func (h *htmlWriter) tag(name string, attrs templ.OrderedAttributes) {
	h.raw("<" + name)
	if h.err == nil && len(attrs) > 0 {
		h.err = templ.RenderAttributes(h.ctx, h.w, attrs)
	}
	h.raw(">")
}

// open writes a start tag with an optional id and class.
func (h *htmlWriter) open(tag, id, class string) {
	var attrs templ.OrderedAttributes
	if id != "" {
		attrs = append(attrs, templ.KV[string, any]("id", id))
	}
	if class != "" {
		attrs = append(attrs, templ.KV[string, any]("class", class))
	}
	h.tag(tag, attrs)
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

// element writes <tag class="...">text</tag>.
func (h *htmlWriter) element(tag, class, text string) {
	h.open(tag, "", class)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component adapts a body function into a templ.Component.
func component(body func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		body(ctx, h)
		return h.err
	})
}

// Join renders the components in order.
func Join(components ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		for _, c := range components {
			h.render(ctx, c)
		}
	})
}
