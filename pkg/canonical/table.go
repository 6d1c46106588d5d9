package canonical

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

//go:embed synonyms.yaml
var synonymsYAML []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded synonyms.yaml.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = MustParse(synonymsYAML)
	})
	return defaultTable
}

// Table resolves normalized aliases to canonical keys. A Table is immutable
// once built and safe for concurrent use.
type Table struct {
	aliases map[string]string
}

// NewTable builds a table from canonical keys to their aliases. Aliases are
// normalized; canonical keys must already be normalized.
func NewTable(groups map[string][]string) (*Table, error) {
	t := &Table{aliases: make(map[string]string)}

	// Sorted so that conflict errors are reproducible.
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, canonicalKey := range keys {
		for _, alias := range groups[canonicalKey] {
			if err := t.add(Normalize(alias), canonicalKey); err != nil {
				return nil, err
			}
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Parse builds a table from a YAML document mapping canonical keys to lists
// of aliases.
func Parse(data []byte) (*Table, error) {
	var groups map[string][]string
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return NewTable(groups)
}

// MustParse is like Parse but panics on error. It is meant for embedded data.
func MustParse(data []byte) *Table {
	t, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("canonical: invalid synonym table: %v", err))
	}
	return t
}

// LoadTable reads a synonym YAML file from disk.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}
	return t, nil
}

func (t *Table) add(alias, canonicalKey string) error {
	if alias == "" || alias == canonicalKey {
		return nil
	}
	if existing, ok := t.aliases[alias]; ok && existing != canonicalKey {
		return errors.NewValidationError("alias", alias,
			fmt.Sprintf("maps to both %q and %q", existing, canonicalKey))
	}
	t.aliases[alias] = canonicalKey
	return nil
}

// Canonicalize returns the canonical key for raw.
func (t *Table) Canonicalize(raw string) string {
	key := Normalize(raw)
	if t == nil {
		return key
	}
	if canonicalKey, ok := t.aliases[key]; ok {
		return canonicalKey
	}
	return key
}

// CanonicalizeValue is Canonicalize for untyped values.
func (t *Table) CanonicalizeValue(v any) string {
	return t.Canonicalize(stringify(v))
}

// Lookup reports the canonical key for an alias. The second result is false
// when the normalized name has no synonym entry.
func (t *Table) Lookup(raw string) (string, bool) {
	if t == nil {
		return "", false
	}
	canonicalKey, ok := t.aliases[Normalize(raw)]
	return canonicalKey, ok
}

// Len returns the number of aliases in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.aliases)
}

// Aliases returns a copy of the alias to canonical key mapping.
func (t *Table) Aliases() map[string]string {
	out := make(map[string]string, t.Len())
	if t == nil {
		return out
	}
	for alias, canonicalKey := range t.aliases {
		out[alias] = canonicalKey
	}
	return out
}

// Merge returns a new table holding the aliases of t and other. An alias
// defined in both tables must resolve to the same key.
func (t *Table) Merge(other *Table) (*Table, error) {
	merged := &Table{aliases: t.Aliases()}
	if other != nil {
		aliases := make([]string, 0, len(other.aliases))
		for alias := range other.aliases {
			aliases = append(aliases, alias)
		}
		slices.Sort(aliases)
		for _, alias := range aliases {
			if err := merged.add(alias, other.aliases[alias]); err != nil {
				return nil, err
			}
		}
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate checks that every canonical key is normalized and is a fixed point
// of the table. A canonical key that is itself an alias of another key would
// make canonicalization non-idempotent.
func (t *Table) Validate() error {
	if t == nil {
		return nil
	}
	aliases := make([]string, 0, len(t.aliases))
	for alias := range t.aliases {
		aliases = append(aliases, alias)
	}
	slices.Sort(aliases)

	for _, alias := range aliases {
		canonicalKey := t.aliases[alias]
		if canonicalKey == "" {
			return errors.NewValidationError("canonical", alias, "empty canonical key")
		}
		if Normalize(canonicalKey) != canonicalKey {
			return errors.NewValidationError("canonical", canonicalKey, "canonical key is not upper-case and trimmed")
		}
		if next, ok := t.aliases[canonicalKey]; ok && next != canonicalKey {
			return errors.NewValidationError("canonical", canonicalKey,
				fmt.Sprintf("canonical key is itself an alias of %q", next))
		}
	}
	return nil
}
