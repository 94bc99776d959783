// Package seo builds the document-head metadata and the JSON-LD graph for the
// landing page. Both builders are pure functions of the content tables.
package seo

import (
	"github.com/preston-bernstein/money-dungeon-web/internal/content"
	"github.com/preston-bernstein/money-dungeon-web/internal/domain"
)

// Meta is the view of the head directives, shaped like a typical SEO model.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	Robots      string
	Canonical   string
	ThemeColor  string
	OG          OpenGraph
	Twitter     Twitter
}

type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
	Image       string
}

type Twitter struct {
	Card        string
	Title       string
	Description string
}

// SiteMeta returns the landing page head model.
func SiteMeta() Meta {
	return Meta{
		Title:       content.Title,
		Description: content.Description,
		Keywords:    content.Keywords,
		Robots:      content.Robots,
		Canonical:   content.SiteURL,
		ThemeColor:  content.ThemeColor,
		OG: OpenGraph{
			Title:       content.Title,
			Description: content.Description,
			Type:        "website",
			URL:         content.SiteURL,
			Image:       content.OGImageURL(),
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       content.Title,
			Description: content.Description,
		},
	}
}

// BuildMetadata returns the ordered head directives for the landing page.
func BuildMetadata() []domain.MetadataEntry {
	return SiteMeta().Entries()
}

// Entries flattens the model into head directives in document order.
func (m Meta) Entries() []domain.MetadataEntry {
	return []domain.MetadataEntry{
		{Kind: domain.KindTitle, Value: m.Title},
		named("description", m.Description),
		named("keywords", m.Keywords),
		named("robots", m.Robots),
		property("og:title", m.OG.Title),
		property("og:description", m.OG.Description),
		property("og:type", m.OG.Type),
		property("og:url", m.OG.URL),
		property("og:image", m.OG.Image),
		named("twitter:card", m.Twitter.Card),
		named("twitter:title", m.Twitter.Title),
		named("twitter:description", m.Twitter.Description),
		named("theme-color", m.ThemeColor),
		{Kind: domain.KindLink, Attr: domain.AttrRel, Key: "canonical", Value: m.Canonical},
	}
}

func named(key, value string) domain.MetadataEntry {
	return domain.MetadataEntry{Kind: domain.KindMeta, Attr: domain.AttrName, Key: key, Value: value}
}

func property(key, value string) domain.MetadataEntry {
	return domain.MetadataEntry{Kind: domain.KindMeta, Attr: domain.AttrProperty, Key: key, Value: value}
}

// Lookup returns the value of the first entry with the given key.
func Lookup(entries []domain.MetadataEntry, key string) (string, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}
