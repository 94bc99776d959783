package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/money-dungeon-web/internal/content"
	"github.com/preston-bernstein/money-dungeon-web/internal/domain"
)

const fixedISO = "2026-10-16T12:00:00Z"

func renderPage(t *testing.T, result domain.LoaderResult) string {
	t.Helper()
	view, err := NewView(result, language.AmericanEnglish)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}
	var buf bytes.Buffer
	if err := Page(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func extractJSONLD(t *testing.T, html string) []byte {
	t.Helper()
	const open = `<script type="application/ld+json">`
	start := strings.Index(html, open)
	if start < 0 {
		t.Fatalf("json-ld script missing")
	}
	rest := html[start+len(open):]
	end := strings.Index(rest, "</script>")
	if end < 0 {
		t.Fatalf("json-ld script not terminated")
	}
	return []byte(rest[:end])
}

func TestPageFooterShowsMessage(t *testing.T) {
	html := renderPage(t, domain.LoaderResult{Message: "Hello", NowISO: fixedISO})

	if !strings.Contains(html, `<span aria-live="polite">Hello</span>`) {
		t.Fatalf("expected footer message, got %s", html[strings.Index(html, "<footer"):])
	}
	if strings.Contains(html, content.FooterFallback) {
		t.Fatalf("fallback should not render when a message is present")
	}
}

func TestPageFooterFallsBack(t *testing.T) {
	html := renderPage(t, domain.LoaderResult{NowISO: fixedISO})

	if !strings.Contains(html, "<span>Built for clear financial literacy</span>") {
		t.Fatalf("expected fallback footer text")
	}
	if !strings.Contains(html, "© 2026 Money Dungeon") {
		t.Fatalf("expected copyright year from loader timestamp")
	}
}

func TestPageAnnouncementUsesLocaleDate(t *testing.T) {
	html := renderPage(t, domain.LoaderResult{NowISO: fixedISO})
	if !strings.Contains(html, "New lessons arriving soon. Last updated 10/16/2026.") {
		t.Fatalf("expected announcement with display date")
	}
}

func TestPageHeadContainsMetadata(t *testing.T) {
	html := renderPage(t, domain.LoaderResult{NowISO: fixedISO})
	head := html[:strings.Index(html, "</head>")]

	want := []string{
		"<title>Money Dungeon | Money Learning Games and Financial Education</title>",
		`<meta property="og:url" content="https://moneydungeon.com/">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta name="theme-color" content="#0E7A5F">`,
		`<link rel="canonical" href="https://moneydungeon.com/">`,
	}
	for _, w := range want {
		if !strings.Contains(head, w) {
			t.Fatalf("expected head to contain %s", w)
		}
	}
}

func TestPageFAQMatchesStructuredData(t *testing.T) {
	html := renderPage(t, domain.LoaderResult{NowISO: fixedISO})

	var ld struct {
		Graph []struct {
			Type       string `json:"@type"`
			MainEntity []struct {
				Name           string `json:"name"`
				AcceptedAnswer struct {
					Text string `json:"text"`
				} `json:"acceptedAnswer"`
			} `json:"mainEntity"`
		} `json:"@graph"`
	}
	if err := json.Unmarshal(extractJSONLD(t, html), &ld); err != nil {
		t.Fatalf("decode json-ld: %v", err)
	}
	faqNode := ld.Graph[2]
	if faqNode.Type != "FAQPage" {
		t.Fatalf("expected FAQPage node, got %s", faqNode.Type)
	}

	faqs := content.FAQs()
	if len(faqNode.MainEntity) != len(faqs) {
		t.Fatalf("expected %d structured questions, got %d", len(faqs), len(faqNode.MainEntity))
	}

	faqSection := html[strings.Index(html, `<section id="faq"`):]
	last := -1
	for i, f := range faqs {
		summary := "<summary class=\"cursor-pointer list-none px-5 py-4 font-medium\">" + f.Question + "</summary>"
		pos := strings.Index(faqSection, summary)
		if pos <= last {
			t.Fatalf("faq %d rendered out of order or missing", i)
		}
		last = pos
		if faqNode.MainEntity[i].Name != f.Question || faqNode.MainEntity[i].AcceptedAnswer.Text != f.Answer {
			t.Fatalf("structured faq %d mismatch", i)
		}
	}
}

func TestPageSectionsRenderInDeclaredOrder(t *testing.T) {
	html := renderPage(t, domain.LoaderResult{NowISO: fixedISO})

	last := strings.Index(html, "Today’s Quest")
	if last < 0 {
		t.Fatalf("expected hero quest card")
	}
	for _, s := range content.Sections() {
		var marker string
		switch {
		case s.ID != "":
			marker = `<section id="` + s.ID + `"`
		case s.Heading != "":
			marker = s.Heading
		case len(s.Highlights) > 0:
			marker = s.Highlights[0].Headline
		default:
			marker = s.Cards[0].Label
		}
		pos := strings.Index(html, marker)
		if pos <= last {
			t.Fatalf("section %q out of order", marker)
		}
		last = pos
	}
	if faq := strings.Index(html, `<section id="faq"`); faq <= last {
		t.Fatalf("expected faq after body sections")
	}
	if footer := strings.Index(html, "<footer"); footer <= strings.Index(html, `<section id="faq"`) {
		t.Fatalf("expected footer last")
	}
}

func TestSectionEscapesText(t *testing.T) {
	var buf bytes.Buffer
	s := domain.Section{
		ID:      "x",
		Kind:    domain.SectionCards,
		Heading: `<script>alert("x")</script>`,
		Cards:   []domain.Card{{Label: "a&b", Description: `"quoted"`}},
	}
	if err := Section(s).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected heading to be escaped: %s", out)
	}
	if !strings.Contains(out, "a&amp;b") || !strings.Contains(out, "&#34;quoted&#34;") {
		t.Fatalf("expected card text to be escaped: %s", out)
	}
}

func TestSectionKinds(t *testing.T) {
	cases := []struct {
		name    string
		section domain.Section
		want    []string
	}{
		{
			name:    "bullets with tip",
			section: domain.Section{ID: "b", Kind: domain.SectionBullets, Heading: "H", Bullets: []string{"one", "two"}, Tip: "tip"},
			want:    []string{"<li>one</li>", "<li>two</li>", ">tip</div>"},
		},
		{
			name:    "lesson paths",
			section: domain.Section{ID: "l", Kind: domain.SectionLessonPaths, Groups: []domain.CardGroup{{Title: "G", Items: []string{"i"}}}},
			want:    []string{">G</h3>", "<li>i</li>"},
		},
		{
			name:    "myth facts",
			section: domain.Section{ID: "m", Kind: domain.SectionMythFacts, Pairs: []domain.MythFact{{Myth: "wrong", Fact: "right"}}},
			want:    []string{">Myth</h3>", ">wrong</p>", ">Fact</h3>", ">right</p>"},
		},
		{
			name:    "call to action",
			section: domain.Section{Kind: domain.SectionCallToAction, Heading: "Go", Intro: "now"},
			want:    []string{">Go</h2>", ">now</p>"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Section(tc.section).Render(context.Background(), &buf); err != nil {
				t.Fatalf("render: %v", err)
			}
			for _, w := range tc.want {
				if !strings.Contains(buf.String(), w) {
					t.Fatalf("expected %q in %s", w, buf.String())
				}
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPageRenderPropagatesWriteErrors(t *testing.T) {
	view, err := NewView(domain.LoaderResult{NowISO: fixedISO}, language.AmericanEnglish)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}
	if err := Page(view).Render(context.Background(), failingWriter{}); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestViewSectionCount(t *testing.T) {
	view, _ := NewView(domain.LoaderResult{NowISO: fixedISO}, language.AmericanEnglish)
	if got := view.SectionCount(); got != len(content.Sections())+4 {
		t.Fatalf("unexpected section count %d", got)
	}
}

func TestMythFactAndFooterStyling(t *testing.T) {
	var buf bytes.Buffer
	section := domain.Section{ID: "myths", Kind: domain.SectionMythFacts, Pairs: []domain.MythFact{{Myth: "wrong", Fact: "right"}}}
	if err := Join(Section(section), Footer(2026, "Hello", true)).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<article class="rounded-2xl border border-amber-300 bg-amber-50 p-4 shadow-sm">`,
		`<h3 class="font-semibold text-amber-800">Myth</h3>`,
		`<p class="mt-1 text-neutral-800">wrong</p>`,
		`<h3 class="mt-3 font-semibold text-emerald-900">Fact</h3>`,
		`<p class="mt-1 text-neutral-700">right</p>`,
		`<footer class="border-t border-neutral-200 bg-amber-50"><div class="mx-auto max-w-6xl px-4 py-6 text-sm text-neutral-700">`,
		`<div class="flex flex-col items-start justify-between gap-3 sm:flex-row sm:items-center"><div>© 2026 Money Dungeon</div>`,
		`<div class="text-neutral-500"><span aria-live="polite">Hello</span></div>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
}

func TestHeadEscapesAttributeValues(t *testing.T) {
	var buf bytes.Buffer
	entries := []domain.MetadataEntry{
		{Kind: domain.KindMeta, Attr: domain.AttrName, Key: "description", Value: `Save "now" & grow`},
		{Kind: domain.KindLink, Attr: domain.AttrRel, Key: "canonical", Value: "https://moneydungeon.com/?a=1&b=2"},
	}
	if err := Head(entries).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<meta name="description" content="Save &#34;now&#34; &amp; grow">`) {
		t.Fatalf("expected escaped meta content: %s", out)
	}
	if !strings.Contains(out, `<link rel="canonical" href="https://moneydungeon.com/?a=1&amp;b=2">`) {
		t.Fatalf("expected escaped link href: %s", out)
	}
}
