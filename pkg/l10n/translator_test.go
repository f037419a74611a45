package l10n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/storekit/pkg/l10n"
)

func TestTranslatorEmbedded(t *testing.T) {
	t.Parallel()

	tr, err := l10n.New()
	require.NoError(t, err)

	t.Run("english status text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Processing", tr.T(language.English, "status.processing"))
	})

	t.Run("german status text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "In Bearbeitung", tr.T(language.German, "status.processing"))
	})

	t.Run("regional variant resolves to base language", func(t *testing.T) {
		t.Parallel()
		austrian := language.MustParse("de-AT")
		assert.Equal(t, "Zahlung ausstehend", tr.T(austrian, "status.pending"))
	})

	t.Run("unsupported language falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Processing", tr.T(language.French, "status.processing"))
	})

	t.Run("sprintf arguments", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Ihre Bestellbestätigung #1001", tr.T(language.German, "email.subject", int64(1001)))
	})

	t.Run("missing key returns key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "nope.missing", tr.T(language.English, "nope.missing"))
	})

	t.Run("supports", func(t *testing.T) {
		t.Parallel()
		assert.True(t, tr.Supports(language.German))
		assert.False(t, tr.Supports(language.Japanese))
	})
}

func TestTranslatorFromFS(t *testing.T) {
	t.Parallel()

	t.Run("custom catalogs", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"catalogs/en.yaml": {Data: []byte("greeting: \"Hi\"\n")},
			"catalogs/nl.yaml": {Data: []byte("greeting: \"Hoi\"\n")},
		}
		tr, err := l10n.NewFromFS(fsys, "catalogs")
		require.NoError(t, err)
		assert.Equal(t, "Hoi", tr.T(language.Dutch, "greeting"))
		assert.Equal(t, "Hi", tr.T(language.Spanish, "greeting"))
	})

	t.Run("key missing in language falls back to default", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"catalogs/en.yaml": {Data: []byte("greeting: \"Hi\"\nfarewell: \"Bye\"\n")},
			"catalogs/nl.yaml": {Data: []byte("greeting: \"Hoi\"\n")},
		}
		tr, err := l10n.NewFromFS(fsys, "catalogs")
		require.NoError(t, err)
		assert.Equal(t, "Bye", tr.T(language.Dutch, "farewell"))
	})

	t.Run("empty dir", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"catalogs/readme.txt": {Data: []byte("not a catalog")},
		}
		_, err := l10n.NewFromFS(fsys, "catalogs")
		assert.ErrorIs(t, err, l10n.ErrNoCatalogs)
	})

	t.Run("bad language file name", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"catalogs/not a lang.yaml": {Data: []byte("k: v\n")},
		}
		_, err := l10n.NewFromFS(fsys, "catalogs")
		assert.ErrorIs(t, err, l10n.ErrInvalidLanguage)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"catalogs/en.yaml": {Data: []byte("key: [unclosed")},
		}
		_, err := l10n.NewFromFS(fsys, "catalogs")
		assert.ErrorIs(t, err, l10n.ErrFailedToLoadCatalog)
	})
}
