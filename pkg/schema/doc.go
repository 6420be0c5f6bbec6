// Package schema synthesizes record definitions from sample upstream payloads.
//
// The upstream API names fields inconsistently (kebab-case, camelCase, and the
// occasional all-caps key) and omits or nulls fields freely. Rather than
// hand-maintaining Go types for every resource, one representative JSON object
// per resource is fed to a Builder, which infers a closed set of records:
//
//	b := schema.NewBuilder()
//	if err := b.Add("Task", taskSample); err != nil {
//	    return err
//	}
//	src, err := schema.Render("teamwork", b.Records())
//
// # Naming
//
// Keys are normalized to snake_case and then passed through a small synonym
// table (created_on becomes created_at, last_changed_on becomes updated_at).
// The original key is kept on every field so decoding can still match the
// upstream wire name.
//
// # Types
//
// Strings, integers, floats and booleans map to their Go equivalents. Nested
// objects become records named after the key, arrays of objects become lists
// of records named after the singular form of the key, and anything whose
// shape cannot be known from one sample (empty arrays, arrays of scalars,
// nulls) is kept as raw JSON. Every field is optional.
//
// # Limitations
//
// Records are cached by name, not by shape. When two resources contain a
// nested object with the same derived name, the first shape seen wins and the
// later one reuses it. A single sample may also not cover every field or type
// the upstream produces in practice.
package schema
