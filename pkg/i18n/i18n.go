package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

const DefaultLocale = "es"

//go:embed locales/*.json
var localesFS embed.FS

// Catalog is a nested tree of translation strings.
type Catalog map[string]interface{}

// Bundle holds every embedded catalog, keyed by locale.
type Bundle struct {
	catalogs map[string]Catalog
}

func Load() (*Bundle, error) {
	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}

	b := &Bundle{catalogs: make(map[string]Catalog, len(entries))}
	for _, entry := range entries {
		data, err := localesFS.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", entry.Name(), err)
		}
		var catalog Catalog
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", entry.Name(), err)
		}
		b.catalogs[strings.TrimSuffix(entry.Name(), ".json")] = catalog
	}

	if _, ok := b.catalogs[DefaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q is missing", DefaultLocale)
	}
	return b, nil
}

func (b *Bundle) Supported(locale string) bool {
	_, ok := b.catalogs[locale]
	return ok
}

func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.catalogs))
	for locale := range b.catalogs {
		out = append(out, locale)
	}
	return out
}

// Catalog returns the catalog for locale, falling back to es. The second
// value is the locale actually served.
func (b *Bundle) Catalog(locale string) (Catalog, string) {
	if c, ok := b.catalogs[locale]; ok {
		return c, locale
	}
	return b.catalogs[DefaultLocale], DefaultLocale
}

// Translate resolves a dotted key such as "donation.donation_success".
// Keys missing from the locale are looked up in es.
func (b *Bundle) Translate(locale, key string) (string, bool) {
	catalog, served := b.Catalog(locale)
	if s, ok := lookup(catalog, key); ok {
		return s, true
	}
	if served != DefaultLocale {
		return lookup(b.catalogs[DefaultLocale], key)
	}
	return "", false
}

func lookup(catalog Catalog, key string) (string, bool) {
	var node interface{} = map[string]interface{}(catalog)
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]interface{})
		if !ok {
			return "", false
		}
		if node, ok = m[part]; !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}

// Format fills {name} placeholders.
func Format(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
