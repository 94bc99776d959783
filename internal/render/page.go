// Package render assembles the landing page: head metadata, JSON-LD and the
// body sections, expressed as templ components.
package render

import (
	"context"
	"fmt"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/money-dungeon-web/internal/content"
	"github.com/preston-bernstein/money-dungeon-web/internal/domain"
	"github.com/preston-bernstein/money-dungeon-web/internal/loader"
	"github.com/preston-bernstein/money-dungeon-web/internal/seo"
	"github.com/preston-bernstein/money-dungeon-web/internal/timeutil"
)

// View is everything the page needs for one render.
type View struct {
	Lang           string
	Metadata       []domain.MetadataEntry
	StructuredData []byte
	Loaded         domain.LoaderResult
	Locale         language.Tag
	Hero           content.HeroCopy
	Sections       []domain.Section
	FAQs           []domain.FAQEntry
}

// NewView assembles a View from the site content and a loader result.
func NewView(result domain.LoaderResult, locale language.Tag) (View, error) {
	faqs := content.FAQs()
	ld, err := seo.BuildStructuredData(faqs, content.GameListings()).Marshal()
	if err != nil {
		return View{}, fmt.Errorf("encode structured data: %w", err)
	}
	return View{
		Lang:           "en",
		Metadata:       seo.BuildMetadata(),
		StructuredData: ld,
		Loaded:         result,
		Locale:         locale,
		Hero:           content.Hero(),
		Sections:       content.Sections(),
		FAQs:           faqs,
	}, nil
}

// SectionCount is the number of top-level blocks Body renders.
func (v View) SectionCount() int {
	// announcement, hero, FAQ and footer wrap the body sections
	return len(v.Sections) + 4
}

// Body renders the main element in the fixed section order.
func Body(v View) templ.Component {
	stamp := loader.Timestamp(v.Loaded)
	parts := make([]templ.Component, 0, v.SectionCount()+1)
	parts = append(parts,
		StructuredDataScript(v.StructuredData),
		Announcement(timeutil.DisplayDate(stamp, v.Locale)),
		Hero(v.Hero),
	)
	for _, s := range v.Sections {
		parts = append(parts, Section(s))
	}
	parts = append(parts,
		FAQ(v.FAQs),
		Footer(stamp.UTC().Year(), loader.FooterText(v.Loaded), v.Loaded.HasMessage()),
	)
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("main", "", "bg-white text-neutral-900")
		h.render(ctx, Join(parts...))
		h.close("main")
	})
}

// Page renders the whole document for v.
func Page(v View) templ.Component {
	return Document(v.Lang, Head(v.Metadata), Body(v))
}
