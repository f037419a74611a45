// Package l10n provides the small translation layer the confirmation
// pipeline needs for localized order status text and email copy.
//
// Catalogs are flat key/value YAML files, one per language, embedded into the
// binary by default. Language selection uses golang.org/x/text matching, so a
// request for "de-AT" resolves to the German catalog. Missing keys fall back
// to the default language and finally to the key itself, so a gap in a
// catalog never produces an empty string in customer-facing output.
package l10n
