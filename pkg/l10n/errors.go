package l10n

import "errors"

var (
	ErrNoCatalogs          = errors.New("l10n.errors.no_catalogs")
	ErrFailedToLoadCatalog = errors.New("l10n.errors.failed_to_load_catalog")
	ErrInvalidLanguage     = errors.New("l10n.errors.invalid_language")
)
