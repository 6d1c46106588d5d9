// Package canonical maps free-form province names to stable join keys.
//
// Two datasets produced by different authorities rarely spell a province the
// same way ("DI. ACEH" against "Aceh", "NTB" against "Nusa Tenggara Barat").
// Canonicalize normalizes a name and resolves it through a synonym table so
// both spellings produce one key. Names with no synonym entry map to their
// normalized form.
//
// Canonicalization is pure and idempotent:
//
//	canonical.Canonicalize(canonical.Canonicalize(s)) == canonical.Canonicalize(s)
package canonical

import (
	"fmt"
	"strings"
)

// Normalize upper-cases and trims a name. It is the identity fallback used
// when a name has no synonym entry.
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToUpper(raw))
}

// Canonicalize returns the canonical key for raw using the default table.
func Canonicalize(raw string) string {
	return Default().Canonicalize(raw)
}

// CanonicalizeValue is Canonicalize for untyped cell values. Non-string values
// are formatted first; nil becomes the empty key.
func CanonicalizeValue(v any) string {
	return Default().CanonicalizeValue(v)
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
