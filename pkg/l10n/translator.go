package l10n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var embeddedCatalogs embed.FS

// Translator resolves message keys to localized text.
type Translator struct {
	catalogs    map[string]map[string]string
	tags        []language.Tag
	matcher     language.Matcher
	defaultLang language.Tag
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the fallback language for missing translations.
// The default is English.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(t *Translator) {
		t.defaultLang = tag
	}
}

// New creates a Translator from the embedded catalogs.
func New(opts ...Option) (*Translator, error) {
	return NewFromFS(embeddedCatalogs, "catalogs", opts...)
}

// NewFromFS creates a Translator from YAML catalogs in dir of fsys. Each file
// name (without extension) is parsed as a BCP 47 language tag; file contents
// are a flat key/value map.
func NewFromFS(fsys fs.FS, dir string, opts ...Option) (*Translator, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	t := &Translator{
		catalogs:    make(map[string]map[string]string),
		defaultLang: language.English,
	}
	for _, opt := range opts {
		opt(t)
	}

	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ext))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidLanguage, entry.Name(), err)
		}

		raw, err := fs.ReadFile(fsys, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadCatalog, err)
		}

		catalog := make(map[string]string)
		if err := yaml.Unmarshal(raw, &catalog); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFailedToLoadCatalog, entry.Name(), err)
		}

		t.catalogs[tag.String()] = catalog
		t.tags = append(t.tags, tag)
	}

	if len(t.catalogs) == 0 {
		return nil, ErrNoCatalogs
	}

	// The matcher falls back to the first tag in the list, so the default
	// language must lead it.
	for i, tag := range t.tags {
		if tag == t.defaultLang && i > 0 {
			t.tags[0], t.tags[i] = t.tags[i], t.tags[0]
			break
		}
	}

	t.matcher = language.NewMatcher(t.tags)
	return t, nil
}

// MustNew creates a Translator from the embedded catalogs, panicking on failure.
func MustNew(opts ...Option) *Translator {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// T returns the localized text for key in the closest supported language.
// Optional args are interpolated with fmt.Sprintf. Missing keys fall back to
// the default language, then to the key itself.
func (t *Translator) T(lang language.Tag, key string, args ...any) string {
	text, ok := t.lookup(lang, key)
	if !ok {
		text, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		text = key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Supports reports whether lang resolves to one of the loaded catalogs with
// reasonable confidence.
func (t *Translator) Supports(lang language.Tag) bool {
	_, _, conf := t.matcher.Match(lang)
	return conf >= language.High
}

func (t *Translator) lookup(lang language.Tag, key string) (string, bool) {
	_, idx, _ := t.matcher.Match(lang)
	catalog, ok := t.catalogs[t.tags[idx].String()]
	if !ok {
		return "", false
	}
	text, ok := catalog[key]
	return text, ok
}
