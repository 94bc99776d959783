// Package export writes a prerendered copy of the landing page to disk.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/money-dungeon-web/internal/domain"
	"github.com/preston-bernstein/money-dungeon-web/internal/render"
	"github.com/preston-bernstein/money-dungeon-web/internal/timeutil"
)

const (
	PageFile           = "index.html"
	StructuredDataFile = "structured-data.json"
	ManifestFile       = "manifest.json"
)

// Writer renders the page once and persists it under basePath.
type Writer struct {
	basePath string
	locale   language.Tag
}

// NewWriter constructs a writer rooted at basePath using the default locale.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath, locale: timeutil.DefaultLocale}
}

// WithLocale changes the locale used for the announcement date.
func (w *Writer) WithLocale(locale language.Tag) *Writer {
	w.locale = locale
	return w
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// Export renders result and writes the page, its JSON-LD and a manifest.
func (w *Writer) Export(ctx context.Context, result domain.LoaderResult) (Manifest, error) {
	if w == nil || w.basePath == "" {
		return Manifest{}, fmt.Errorf("export writer not configured")
	}
	if err := os.MkdirAll(w.basePath, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("create %s: %w", w.basePath, err)
	}

	view, err := render.NewView(result, w.locale)
	if err != nil {
		return Manifest{}, err
	}
	var page bytes.Buffer
	if err := render.Page(view).Render(ctx, &page); err != nil {
		return Manifest{}, fmt.Errorf("render page: %w", err)
	}

	var ld bytes.Buffer
	if err := json.Indent(&ld, view.StructuredData, "", "  "); err != nil {
		return Manifest{}, fmt.Errorf("indent structured data: %w", err)
	}

	m := Manifest{
		Version:  1,
		NowISO:   result.NowISO,
		Locale:   w.locale.String(),
		Fallback: !result.HasMessage(),
	}
	for _, f := range []struct {
		name string
		data []byte
	}{
		{PageFile, page.Bytes()},
		{StructuredDataFile, ld.Bytes()},
	} {
		changed, err := w.writeFile(f.name, f.data)
		if err != nil {
			return Manifest{}, err
		}
		m.Files = append(m.Files, FileEntry{Name: f.name, Bytes: len(f.data), Changed: changed})
	}

	if err := writeManifest(w.basePath, m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// writeFile replaces name atomically and reports whether its content changed.
func (w *Writer) writeFile(name string, data []byte) (bool, error) {
	target := filepath.Join(w.basePath, name)
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return false, fmt.Errorf("rename %s: %w", name, err)
	}
	return true, nil
}
