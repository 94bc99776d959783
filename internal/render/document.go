package render

import (
	"context"

	"github.com/a-h/templ"

	"github.com/preston-bernstein/money-dungeon-web/internal/domain"
)

// Head renders metadata entries as title, meta and link elements.
func Head(entries []domain.MetadataEntry) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		for _, e := range entries {
			switch e.Kind {
			case domain.KindTitle:
				h.element("title", "", e.Value)
			case domain.KindMeta:
				h.tag("meta", templ.OrderedAttributes{
					templ.KV[string, any](string(e.Attr), e.Key),
					templ.KV[string, any]("content", e.Value),
				})
			case domain.KindLink:
				h.tag("link", templ.OrderedAttributes{
					templ.KV[string, any](string(e.Attr), e.Key),
					templ.KV[string, any]("href", e.Value),
				})
			}
		}
	})
}

// StructuredDataScript embeds pre-encoded JSON-LD. The payload must already be
// escaped for script context (encoding/json does this by default).
func StructuredDataScript(payload []byte) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		if len(payload) == 0 {
			return
		}
		h.tag("script", templ.OrderedAttributes{templ.KV[string, any]("type", "application/ld+json")})
		h.render(ctx, templ.Raw(string(payload)))
		h.close("script")
	})
}

// Document renders the full HTML document around body.
func Document(lang string, head templ.Component, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<!DOCTYPE html>")
		var attrs templ.OrderedAttributes
		if lang != "" {
			attrs = append(attrs, templ.KV[string, any]("lang", lang))
		}
		h.tag("html", attrs)
		h.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.render(ctx, head)
		h.raw("</head><body>")
		h.render(ctx, body)
		h.raw("</body></html>")
	})
}
