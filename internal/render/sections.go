package render

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/preston-bernstein/money-dungeon-web/internal/content"
	"github.com/preston-bernstein/money-dungeon-web/internal/domain"
)

const (
	sectionClass = "mx-auto max-w-6xl px-4 py-12"
	headingClass = "text-2xl font-bold text-emerald-900"
	introClass   = "mt-2 text-neutral-700"
	gridClass    = "mt-6 grid gap-4 sm:grid-cols-2 lg:grid-cols-3"
	bulletsClass = "mt-4 list-inside list-disc space-y-1 text-neutral-800"
	tipClass     = "mt-4 rounded-xl border border-amber-300 bg-amber-50 p-4 text-sm text-amber-900"
)

type cardStyle struct {
	article, title, body string
}

var cardStyles = map[domain.Tone]cardStyle{
	domain.ToneEmerald: {
		article: "rounded-2xl border border-emerald-200 bg-white p-5 shadow-sm",
		title:   "text-base font-semibold text-emerald-900",
		body:    "mt-2 text-sm text-neutral-700",
	},
	domain.ToneAmber: {
		article: "rounded-2xl border border-amber-300 bg-amber-50 p-5 shadow-sm",
		title:   "text-base font-semibold text-amber-800",
		body:    "mt-2 text-sm text-neutral-800",
	},
	domain.ToneNeutral: {
		article: "rounded-2xl border border-neutral-200 bg-white p-5 shadow-sm",
		title:   "text-base font-semibold text-neutral-900",
		body:    "mt-1 text-sm text-neutral-700",
	},
}

func styleFor(tone domain.Tone) cardStyle {
	if s, ok := cardStyles[tone]; ok {
		return s
	}
	return cardStyles[domain.ToneEmerald]
}

// Announcement renders the top bar with the last-updated date.
func Announcement(displayDate string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("div", "", "w-full border-b border-neutral-200 bg-emerald-50")
		h.open("div", "", "mx-auto max-w-6xl px-4 py-2 text-sm text-neutral-700")
		h.text(content.AnnouncementLead + " " + displayDate + ".")
		h.close("div")
		h.close("div")
	})
}

// Hero renders the headline banner and the quest card.
func Hero(hero content.HeroCopy) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("section", "", "mx-auto max-w-6xl px-4 pt-12 pb-10")
		h.open("div", "", "flex flex-col items-start gap-8 md:flex-row md:items-center md:justify-between")

		h.open("div", "", "max-w-2xl")
		h.open("h1", "", "text-4xl font-extrabold tracking-tight")
		h.element("span", "text-emerald-800", hero.Brand)
		h.raw(" ")
		h.element("span", "text-amber-600", hero.Tagline)
		h.close("h1")
		h.element("p", "mt-4 text-lg text-neutral-700", hero.Lead)
		h.open("div", "", "mt-6 flex flex-wrap gap-3")
		for _, a := range hero.Actions {
			class := "inline-flex items-center rounded-xl border border-amber-500 bg-amber-100 px-4 py-2 text-sm font-semibold text-amber-800 hover:bg-amber-200"
			if a.Primary {
				class = "inline-flex items-center rounded-xl border border-emerald-700 bg-emerald-700 px-4 py-2 text-sm font-semibold text-white hover:opacity-90"
			}
			h.tag("a", templ.OrderedAttributes{
				templ.KV[string, any]("href", a.Href),
				templ.KV[string, any]("class", class),
			})
			h.text(a.Label)
			h.close("a")
		}
		h.close("div")
		h.close("div")

		h.open("div", "", "w-full max-w-md")
		h.open("div", "", "rounded-2xl border border-amber-300 bg-white p-5 shadow-[0_4px_20px_rgba(0,0,0,0.06)]")
		h.element("h2", "text-base font-semibold text-emerald-900", hero.QuestTitle)
		h.open("ol", "", "mt-3 list-inside list-decimal space-y-2 text-sm text-neutral-800")
		for _, step := range hero.QuestSteps {
			h.element("li", "", step)
		}
		h.close("ol")
		h.element("p", "mt-2 text-xs text-neutral-500", hero.QuestNote)
		h.close("div")
		h.close("div")

		h.close("div")
		h.close("section")
	})
}

// Section renders one body section according to its kind.
func Section(s domain.Section) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		switch s.Kind {
		case domain.SectionHighlights:
			writeHighlights(h, s)
		case domain.SectionCallToAction:
			writeCallToAction(h, s)
		default:
			h.open("section", s.ID, sectionClass)
			if s.Heading != "" {
				h.element("h2", headingClass, s.Heading)
			}
			if s.Intro != "" {
				h.element("p", introClass, s.Intro)
			}
			writeSectionBody(h, s)
			h.close("section")
		}
	})
}

func writeSectionBody(h *htmlWriter, s domain.Section) {
	switch s.Kind {
	case domain.SectionCards:
		writeCards(h, s.Cards, styleFor(s.Tone))
	case domain.SectionLessonPaths:
		writeLessonPaths(h, s.Groups)
	case domain.SectionMythFacts:
		writeMythFacts(h, s.Pairs)
	}
	if len(s.Bullets) > 0 {
		h.open("ul", "", bulletsClass)
		for _, b := range s.Bullets {
			h.element("li", "", b)
		}
		h.close("ul")
	}
	if s.Tip != "" {
		h.element("div", tipClass, s.Tip)
	}
}

func writeCards(h *htmlWriter, cards []domain.Card, style cardStyle) {
	h.open("div", "", gridClass)
	for _, c := range cards {
		h.open("article", "", style.article)
		h.element("h3", style.title, c.Label)
		h.element("p", style.body, c.Description)
		h.close("article")
	}
	h.close("div")
}

func writeLessonPaths(h *htmlWriter, groups []domain.CardGroup) {
	h.open("div", "", gridClass)
	for _, g := range groups {
		h.open("article", "", "rounded-2xl border border-emerald-200 bg-emerald-50 p-5 shadow-sm")
		h.element("h3", "text-base font-semibold text-emerald-900", g.Title)
		h.open("ul", "", "mt-2 list-inside list-disc space-y-1 text-sm text-neutral-800")
		for _, item := range g.Items {
			h.element("li", "", item)
		}
		h.close("ul")
		h.close("article")
	}
	h.close("div")
}

func writeMythFacts(h *htmlWriter, pairs []domain.MythFact) {
	h.open("div", "", "mt-6 grid gap-4 sm:grid-cols-2")
	for _, p := range pairs {
		h.open("article", "", "rounded-2xl border border-amber-300 bg-amber-50 p-4 shadow-sm")
		h.element("h3", "font-semibold text-amber-800", "Myth")
		h.element("p", "mt-1 text-neutral-800", p.Myth)
		h.element("h3", "mt-3 font-semibold text-emerald-900", "Fact")
		h.element("p", "mt-1 text-neutral-700", p.Fact)
		h.close("article")
	}
	h.close("div")
}

func writeHighlights(h *htmlWriter, s domain.Section) {
	h.open("section", s.ID, "mx-auto max-w-6xl px-4 py-10")
	h.open("div", "", "rounded-2xl border border-neutral-200 bg-white p-6 shadow-sm")
	h.open("div", "", "grid gap-6 text-center sm:grid-cols-3")
	for _, hl := range s.Highlights {
		h.raw("<div>")
		h.element("div", "text-3xl font-extrabold text-emerald-800", hl.Headline)
		h.element("div", "mt-1 text-sm text-neutral-600", hl.Caption)
		h.raw("</div>")
	}
	h.close("div")
	h.close("div")
	h.close("section")
}

func writeCallToAction(h *htmlWriter, s domain.Section) {
	h.open("section", s.ID, "mx-auto max-w-6xl px-4 pb-10")
	h.open("div", "", "rounded-2xl border border-emerald-700 bg-emerald-700 p-6 shadow-sm")
	h.raw("<div>")
	h.element("h2", "text-xl font-bold text-white", s.Heading)
	h.element("p", "mt-1 text-sm text-emerald-50", s.Intro)
	h.raw("</div>")
	h.close("div")
	h.close("section")
}

// FAQ renders the questions as native disclosure widgets.
func FAQ(entries []domain.FAQEntry) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("section", "faq", "mx-auto max-w-6xl px-4 pb-16")
		h.element("h2", headingClass, content.FAQHeading)
		h.open("div", "", "mt-6 divide-y divide-neutral-200 rounded-2xl border border-neutral-200 bg-white shadow-sm")
		for _, f := range entries {
			h.open("details", "", "group open:bg-emerald-50")
			h.element("summary", "cursor-pointer list-none px-5 py-4 font-medium", f.Question)
			h.element("div", "px-5 pb-5 text-neutral-700", f.Answer)
			h.close("details")
		}
		h.close("div")
		h.close("section")
	})
}

// Footer renders the copyright line and the environment message. A present
// message is announced politely to assistive technology.
func Footer(year int, text string, live bool) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("footer", "", "border-t border-neutral-200 bg-amber-50")
		h.open("div", "", "mx-auto max-w-6xl px-4 py-6 text-sm text-neutral-700")
		h.open("div", "", "flex flex-col items-start justify-between gap-3 sm:flex-row sm:items-center")
		h.raw("<div>")
		h.text("© " + strconv.Itoa(year) + " " + content.SiteName)
		h.raw("</div>")
		h.open("div", "", "text-neutral-500")
		var attrs templ.OrderedAttributes
		if live {
			attrs = append(attrs, templ.KV[string, any]("aria-live", "polite"))
		}
		h.tag("span", attrs)
		h.text(text)
		h.close("span")
		h.close("div")
		h.close("div")
		h.close("div")
		h.close("footer")
	})
}
