package messages

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Message keys understood by the form.
const (
	KeyNameInvalid                = "field.name.invalid"
	KeyEmailInvalid               = "field.email.invalid"
	KeyPasswordInvalid            = "field.password.invalid"
	KeyConfirmationPrimaryInvalid = "field.confirmation.primary_invalid"
	KeyConfirmationMismatch       = "field.confirmation.mismatch"
	KeyAgeInvalid                 = "field.age.invalid"
	KeySubmitBlocked              = "notice.submit.blocked"
	KeySubmitSuccess              = "notice.submit.success"
	KeySubmitFailed               = "notice.submit.failed"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

var (
	// ErrMissingTranslation is returned when neither the requested locale nor
	// the fallback locale defines a key.
	ErrMissingTranslation = errors.New("messages: missing translation")
	// ErrMissingTranslator signals that no translator was configured.
	ErrMissingTranslator = errors.New("messages: translator is nil")
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Translator resolves a message key for a locale. Args are applied with
// fmt.Sprintf semantics when present.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// Catalog is a Translator backed by an in-memory locale → key → message map.
type Catalog struct {
	fallback string
	locales  map[string]map[string]string
}

type catalogDocument struct {
	Fallback string                       `yaml:"fallback"`
	Locales  map[string]map[string]string `yaml:"locales"`
}

var embeddedCatalog = sync.OnceValue(func() *Catalog {
	catalog, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("messages: embedded catalog: %v", err))
	}
	return catalog
})

// Default returns the embedded catalog. It is parsed once and shared, so it
// must be treated as read-only; Merge returns a new catalog.
func Default() *Catalog {
	return embeddedCatalog()
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("messages: decode catalog: %w", err)
	}
	if len(doc.Locales) == 0 {
		return nil, errors.New("messages: catalog defines no locales")
	}

	catalog := &Catalog{
		fallback: normalizeLocale(doc.Fallback),
		locales:  make(map[string]map[string]string, len(doc.Locales)),
	}
	if catalog.fallback == "" {
		catalog.fallback = DefaultLocale
	}
	for locale, entries := range doc.Locales {
		id := normalizeLocale(locale)
		if id == "" {
			return nil, errors.New("messages: catalog defines an empty locale")
		}
		clean := make(map[string]string, len(entries))
		for key, msg := range entries {
			if k := strings.TrimSpace(key); k != "" {
				clean[k] = msg
			}
		}
		catalog.locales[id] = clean
	}
	return catalog, nil
}

// LoadCatalog reads and parses a catalog file from fsys.
func LoadCatalog(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("messages: read %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// Merge overlays entries from other onto a copy of c. Keys present in other
// win; the fallback locale of c is kept.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	out := &Catalog{fallback: DefaultLocale, locales: make(map[string]map[string]string)}
	for _, src := range []*Catalog{c, other} {
		if src == nil {
			continue
		}
		for locale, entries := range src.locales {
			dst := out.locales[locale]
			if dst == nil {
				dst = make(map[string]string, len(entries))
				out.locales[locale] = dst
			}
			for key, msg := range entries {
				dst[key] = msg
			}
		}
	}
	if c != nil && c.fallback != "" {
		out.fallback = c.fallback
	}
	return out
}

// HasLocale reports whether the catalog defines locale.
func (c *Catalog) HasLocale(locale string) bool {
	if c == nil {
		return false
	}
	_, ok := c.lookupLocale(normalizeLocale(locale))
	return ok
}

// Translate implements Translator. A regional locale such as "es-MX" falls
// back to its base language before the catalog fallback locale is tried.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	key = strings.TrimSpace(key)

	candidates := []string{normalizeLocale(locale)}
	if base, _, found := strings.Cut(candidates[0], "-"); found {
		candidates = append(candidates, base)
	}
	candidates = append(candidates, c.fallback)

	for _, candidate := range candidates {
		entries, ok := c.lookupLocale(candidate)
		if !ok {
			continue
		}
		msg, ok := entries[key]
		if !ok || strings.TrimSpace(msg) == "" {
			continue
		}
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...), nil
		}
		return msg, nil
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
}

func (c *Catalog) lookupLocale(locale string) (map[string]string, bool) {
	if locale == "" {
		return nil, false
	}
	entries, ok := c.locales[locale]
	return entries, ok
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.ToLower(locale)
}
