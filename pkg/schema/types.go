package schema

import "fmt"

// Kind identifies the inferred shape of a field value.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
	KindBoolean Kind = "boolean"
	KindRecord  Kind = "record"
	KindList    Kind = "list"
	KindRawJSON Kind = "raw"
)

// TypeRef is the inferred type of a field.
type TypeRef struct {
	Kind Kind

	// Record is the referenced record name when Kind is KindRecord.
	Record string

	// Elem is the element type when Kind is KindList.
	Elem *TypeRef
}

var (
	String  = TypeRef{Kind: KindString}
	Integer = TypeRef{Kind: KindInteger}
	Float   = TypeRef{Kind: KindFloat}
	Boolean = TypeRef{Kind: KindBoolean}
	RawJSON = TypeRef{Kind: KindRawJSON}
)

// RecordRef returns a reference to the named record.
func RecordRef(name string) TypeRef {
	return TypeRef{Kind: KindRecord, Record: name}
}

// ListOf returns a list type with the given element type.
func ListOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindList, Elem: &elem}
}

func (t TypeRef) String() string {
	switch t.Kind {
	case KindRecord:
		return fmt.Sprintf("RecordRef(%s)", t.Record)
	case KindList:
		if t.Elem == nil {
			return "ListOf(?)"
		}
		return fmt.Sprintf("ListOf(%s)", t.Elem)
	default:
		return string(t.Kind)
	}
}

// FieldSpec describes one field of a record.
type FieldSpec struct {
	// OriginalName is the key as the upstream sends it.
	OriginalName string

	// NormalizedName is the snake_case name used in normalized responses.
	NormalizedName string

	// GoName is the exported Go identifier derived from NormalizedName.
	GoName string

	Type TypeRef

	// Optional is always true; upstream payloads omit and null fields
	// inconsistently.
	Optional bool
}

// RecordSpec is a named, ordered set of fields.
type RecordSpec struct {
	Name   string
	Fields []FieldSpec

	// Origin is "Parent.key" for records discovered inside another record,
	// and empty for top-level resources.
	Origin string
}

// References returns the names of records referenced by r's fields.
func (r RecordSpec) References() []string {
	var refs []string
	for _, f := range r.Fields {
		t := f.Type
		if t.Kind == KindList && t.Elem != nil {
			t = *t.Elem
		}
		if t.Kind == KindRecord {
			refs = append(refs, t.Record)
		}
	}
	return refs
}
