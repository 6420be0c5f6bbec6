package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Builder accumulates records across one generation run. Record names are
// unique within a Builder; a nested object whose derived name is already
// known reuses that record instead of generating a new one.
type Builder struct {
	records []*RecordSpec
	byName  map[string]*RecordSpec
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]*RecordSpec)}
}

// Synthesize infers the records for a single resource sample.
func Synthesize(resourceName string, sample []byte) ([]RecordSpec, error) {
	b := NewBuilder()
	if err := b.Add(resourceName, sample); err != nil {
		return nil, err
	}
	return b.Records(), nil
}

// Add infers a top-level record named resourceName from sample, plus any
// records nested within it. Malformed samples and samples that are not JSON
// objects are rejected.
func (b *Builder) Add(resourceName string, sample []byte) error {
	obj, err := parseObject(sample)
	if err != nil {
		return fmt.Errorf("error parsing %s sample: %w", resourceName, err)
	}

	name := RecordName(resourceName, false)
	if err := validateIdent(name); err != nil {
		return fmt.Errorf("invalid resource name: %w", err)
	}
	if _, ok := b.byName[name]; ok {
		return fmt.Errorf("record %q is already defined", name)
	}

	if err := b.build(name, "", obj); err != nil {
		return fmt.Errorf("error synthesizing %s: %w", name, err)
	}
	return nil
}

// Records returns the synthesized records in the order they were first
// named. Parents come before the records they contain.
func (b *Builder) Records() []RecordSpec {
	out := make([]RecordSpec, 0, len(b.records))
	for _, r := range b.records {
		fields := make([]FieldSpec, len(r.Fields))
		copy(fields, r.Fields)
		out = append(out, RecordSpec{Name: r.Name, Fields: fields, Origin: r.Origin})
	}
	return out
}

// build registers name before visiting its fields so a self-referencing or
// repeated nested name resolves to the same record.
func (b *Builder) build(name, origin string, obj object) error {
	rec := &RecordSpec{Name: name, Origin: origin}
	b.records = append(b.records, rec)
	b.byName[name] = rec

	seen := make(map[string]string, len(obj))
	for _, m := range obj {
		if err := validateTagName(m.Key); err != nil {
			return err
		}

		normalized := NormalizeName(m.Key)
		goName := GoName(normalized)
		if err := validateIdent(goName); err != nil {
			return fmt.Errorf("key %q: %w", m.Key, err)
		}
		if prev, ok := seen[goName]; ok {
			return fmt.Errorf("keys %q and %q both normalize to %q", prev, m.Key, normalized)
		}
		seen[goName] = m.Key

		ty, err := b.infer(name, m.Key, m.Value)
		if err != nil {
			return err
		}

		rec.Fields = append(rec.Fields, FieldSpec{
			OriginalName:   m.Key,
			NormalizedName: normalized,
			GoName:         goName,
			Type:           ty,
			Optional:       true,
		})
	}
	return nil
}

func (b *Builder) infer(parent, key string, value any) (TypeRef, error) {
	switch v := value.(type) {
	case string:
		return String, nil
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return Float, nil
		}
		return Integer, nil
	case bool:
		return Boolean, nil
	case object:
		name, err := b.nested(parent, key, false, v)
		if err != nil {
			return TypeRef{}, err
		}
		return RecordRef(name), nil
	case []any:
		if len(v) == 0 {
			return RawJSON, nil
		}
		first, ok := v[0].(object)
		if !ok {
			return RawJSON, nil
		}
		name, err := b.nested(parent, key, true, first)
		if err != nil {
			return TypeRef{}, err
		}
		return ListOf(RecordRef(name)), nil
	default:
		return RawJSON, nil
	}
}

func (b *Builder) nested(parent, key string, list bool, obj object) (string, error) {
	name := RecordName(key, list)
	if err := validateIdent(name); err != nil {
		return "", fmt.Errorf("key %q: %w", key, err)
	}
	if _, ok := b.byName[name]; ok {
		return name, nil
	}
	if err := b.build(name, parent+"."+key, obj); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return name, nil
}
