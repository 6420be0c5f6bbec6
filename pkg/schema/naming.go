package schema

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// synonyms maps snake_case upstream names to the names used in normalized
// responses.
var synonyms = map[string]string{
	"created_on":      "created_at",
	"last_changed_on": "updated_at",
}

// NormalizeName converts an upstream key to its normalized field name.
func NormalizeName(key string) string {
	name := strcase.ToSnake(key)
	if target, ok := synonyms[name]; ok {
		return target
	}
	return name
}

// RecordName derives the record name for a nested object stored under key.
// List elements are named after the singular form of the key.
func RecordName(key string, list bool) string {
	if list {
		key = inflection.Singular(key)
	}
	return strcase.ToCamel(key)
}

// GoName returns the exported Go identifier for a normalized field name.
func GoName(normalized string) string {
	return strcase.ToCamel(normalized)
}

func validateIdent(name string) error {
	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return fmt.Errorf("%q is not an exported Go identifier", name)
	}
	return nil
}

// validateTagName reports whether key can be used verbatim as an
// encoding/json struct tag name.
func validateTagName(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	for _, c := range key {
		switch {
		case strings.ContainsRune("!#$%&()*+-./:;<=>?@[]^_{|}~ ", c):
		case unicode.IsLetter(c) || unicode.IsDigit(c):
		default:
			return fmt.Errorf("key %q cannot be used as a JSON tag name", key)
		}
	}
	return nil
}
