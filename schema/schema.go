// Package schema defines a neutral, library-agnostic representation of tool
// parameter schemas and derives human-readable parameter documentation from it.
//
// Adapters for concrete schema libraries (JSON Schema, protobuf descriptors,
// validation frameworks) translate their own representation into this form
// before handing it to promptforge. The type set is intentionally closed to
// keep documentation output stable.
package schema

// Kind identifies the type category of a schema node.
// The set of kinds is intentionally small and closed.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindEnum    Kind = "enum"
	KindUnion   Kind = "union"
	KindLiteral Kind = "literal"
	KindUnknown Kind = "unknown"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

var validKinds = map[Kind]struct{}{
	KindString:  {},
	KindNumber:  {},
	KindBoolean: {},
	KindArray:   {},
	KindObject:  {},
	KindEnum:    {},
	KindUnion:   {},
	KindLiteral: {},
	KindUnknown: {},
}

// Type is a schema node. Exactly one shape applies depending on Kind:
// Fields for objects, Elem for arrays, Variants for unions, Values for enums,
// Value for literals. Optional marks the node as wrapped in an optional
// marker; fields whose type is optional are documented as not required.
type Type struct {
	Kind        Kind    `json:"kind" yaml:"kind"`
	Optional    bool    `json:"optional,omitempty" yaml:"optional,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	Elem        *Type   `json:"elem,omitempty" yaml:"elem,omitempty"`
	Variants    []Type  `json:"variants,omitempty" yaml:"variants,omitempty"`
	Values      []string `json:"values,omitempty" yaml:"values,omitempty"`
	Value       string  `json:"value,omitempty" yaml:"value,omitempty"`
}

// Field is one named member of an object type. Field order is significant:
// documentation is emitted in declaration order.
type Field struct {
	Name string `json:"name" yaml:"name"`
	Type Type   `json:"type" yaml:"type"`
}

// String returns a string type with the given description.
func String(description string) Type {
	return Type{Kind: KindString, Description: description}
}

// Number returns a numeric type with the given description.
func Number(description string) Type {
	return Type{Kind: KindNumber, Description: description}
}

// Boolean returns a boolean type with the given description.
func Boolean(description string) Type {
	return Type{Kind: KindBoolean, Description: description}
}

// Array returns an array type with the given element type.
func Array(elem Type) Type {
	return Type{Kind: KindArray, Elem: &elem}
}

// Object returns an object type with the given fields, in declaration order.
func Object(fields ...Field) Type {
	return Type{Kind: KindObject, Fields: fields}
}

// Enum returns an enum type over the given values.
func Enum(values ...string) Type {
	return Type{Kind: KindEnum, Values: values}
}

// Union returns a union type over the given variants.
func Union(variants ...Type) Type {
	return Type{Kind: KindUnion, Variants: variants}
}

// Literal returns a literal type for a single fixed value.
func Literal(value string) Type {
	return Type{Kind: KindLiteral, Value: value}
}

// Optional wraps a type in an optional marker. Fields with an optional type
// are documented as not required.
func Optional(t Type) Type {
	t.Optional = true
	return t
}

// WithDescription returns a copy of the type carrying the given description.
func (t Type) WithDescription(description string) Type {
	t.Description = description
	return t
}

// F constructs a named field for use with Object.
func F(name string, t Type) Field {
	return Field{Name: name, Type: t}
}
