package domain

// MetaKind mirrors the document-head element a metadata entry renders as.
type MetaKind string

const (
	KindTitle MetaKind = "title"
	KindMeta  MetaKind = "meta"
	KindLink  MetaKind = "link"
)

// MetaAttr names the attribute that carries an entry's key.
type MetaAttr string

const (
	AttrNone     MetaAttr = ""
	AttrName     MetaAttr = "name"
	AttrProperty MetaAttr = "property"
	AttrRel      MetaAttr = "rel"
)

// MetadataEntry is a single document-head directive.
type MetadataEntry struct {
	Kind  MetaKind `json:"kind"`
	Attr  MetaAttr `json:"attr,omitempty"`
	Key   string   `json:"key,omitempty"`
	Value string   `json:"value"`
}

// FAQEntry is one question shown in the FAQ section and the FAQPage graph.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Game is a money learning game card.
type Game struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GameListing is the ItemList view of a game.
type GameListing struct {
	Name string `json:"name"`
}

// Card is a label/description pair; slices of cards keep insertion order.
type Card struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// CardGroup is a titled list of short items (lesson paths).
type CardGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// MythFact pairs a common misconception with its correction.
type MythFact struct {
	Myth string `json:"myth"`
	Fact string `json:"fact"`
}

// Highlight is a headline stat with a caption.
type Highlight struct {
	Headline string `json:"headline"`
	Caption  string `json:"caption"`
}

// SectionKind selects how a section is rendered.
type SectionKind string

const (
	SectionCards        SectionKind = "cards"
	SectionLessonPaths  SectionKind = "lesson_paths"
	SectionHighlights   SectionKind = "highlights"
	SectionBullets      SectionKind = "bullets"
	SectionCallout      SectionKind = "callout"
	SectionMythFacts    SectionKind = "myth_facts"
	SectionCallToAction SectionKind = "cta"
)

// Tone picks the palette of a card grid.
type Tone string

const (
	ToneEmerald Tone = "emerald"
	ToneAmber   Tone = "amber"
	ToneNeutral Tone = "neutral"
)

// Section is one block of the landing page body.
type Section struct {
	ID         string      `json:"id,omitempty"`
	Kind       SectionKind `json:"kind"`
	Tone       Tone        `json:"tone,omitempty"`
	Heading    string      `json:"heading,omitempty"`
	Intro      string      `json:"intro,omitempty"`
	Cards      []Card      `json:"cards,omitempty"`
	Groups     []CardGroup `json:"groups,omitempty"`
	Bullets    []string    `json:"bullets,omitempty"`
	Tip        string      `json:"tip,omitempty"`
	Pairs      []MythFact  `json:"pairs,omitempty"`
	Highlights []Highlight `json:"highlights,omitempty"`
}

// LoaderResult is the per-request payload consumed by the renderer.
// An empty Message means the environment did not provide one.
type LoaderResult struct {
	Message string `json:"message,omitempty"`
	NowISO  string `json:"nowISO"`
}

// HasMessage reports whether an environment message is present.
func (r LoaderResult) HasMessage() bool {
	return r.Message != ""
}
