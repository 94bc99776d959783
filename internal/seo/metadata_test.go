package seo

import (
	"reflect"
	"testing"

	"github.com/preston-bernstein/money-dungeon-web/internal/content"
	"github.com/preston-bernstein/money-dungeon-web/internal/domain"
)

func TestBuildMetadataIncludesRequiredDirectives(t *testing.T) {
	entries := BuildMetadata()

	if entries[0].Kind != domain.KindTitle || entries[0].Value != content.Title {
		t.Fatalf("expected title first, got %+v", entries[0])
	}

	required := []string{
		"description", "keywords", "robots",
		"og:title", "og:description", "og:type", "og:url", "og:image",
		"twitter:card", "twitter:title", "twitter:description",
		"theme-color", "canonical",
	}
	for _, key := range required {
		if _, ok := Lookup(entries, key); !ok {
			t.Fatalf("missing metadata entry %q", key)
		}
	}
}

func TestBuildMetadataAttributes(t *testing.T) {
	for _, e := range BuildMetadata() {
		switch {
		case e.Kind == domain.KindTitle:
			if e.Attr != domain.AttrNone {
				t.Fatalf("title should not carry an attribute, got %q", e.Attr)
			}
		case e.Key == "canonical":
			if e.Kind != domain.KindLink || e.Attr != domain.AttrRel {
				t.Fatalf("canonical should be a rel link, got %+v", e)
			}
		case len(e.Key) > 3 && e.Key[:3] == "og:":
			if e.Attr != domain.AttrProperty {
				t.Fatalf("open graph %q should use property, got %q", e.Key, e.Attr)
			}
		default:
			if e.Attr != domain.AttrName {
				t.Fatalf("%q should use name, got %q", e.Key, e.Attr)
			}
		}
	}
}

func TestBuildMetadataIsIdempotent(t *testing.T) {
	first := BuildMetadata()
	second := BuildMetadata()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical metadata across calls")
	}
}

func TestCanonicalMatchesOpenGraphAndWebSite(t *testing.T) {
	entries := BuildMetadata()
	canonical, _ := Lookup(entries, "canonical")
	ogURL, _ := Lookup(entries, "og:url")

	site, ok := SiteStructuredData().Graph[0].(WebSite)
	if !ok {
		t.Fatalf("expected WebSite as first graph node")
	}

	if canonical != content.SiteURL || ogURL != content.SiteURL || site.URL != content.SiteURL {
		t.Fatalf("expected identical site roots, got canonical=%q og=%q website=%q", canonical, ogURL, site.URL)
	}
}

func TestOpenGraphImageAndRobots(t *testing.T) {
	entries := BuildMetadata()
	if img, _ := Lookup(entries, "og:image"); img != "https://moneydungeon.com/og-image.jpg" {
		t.Fatalf("unexpected og:image %q", img)
	}
	if robots, _ := Lookup(entries, "robots"); robots != "index, follow, max-image-preview:large" {
		t.Fatalf("unexpected robots %q", robots)
	}
	if color, _ := Lookup(entries, "theme-color"); color != "#0E7A5F" {
		t.Fatalf("unexpected theme color %q", color)
	}
}

func TestLookupMissingKey(t *testing.T) {
	if _, ok := Lookup(BuildMetadata(), "nope"); ok {
		t.Fatalf("expected lookup miss")
	}
}
