package schema

// NoDescription is the placeholder used when a field carries no description.
const NoDescription = "No description provided"

// FieldDoc describes one parameter for documentation purposes.
type FieldDoc struct {
	Name        string `json:"name"`
	Type        Kind   `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// opaqueDoc is the sentinel descriptor returned for schemas whose root is not
// an object. Field-level documentation is only derivable for object roots;
// anything else is documented as a single opaque parameter block rather than
// treated as an error.
var opaqueDoc = FieldDoc{
	Name:        "parameters",
	Type:        KindUnknown,
	Required:    true,
	Description: "Opaque schema; no field-level documentation available",
}

// Describe converts a parameter schema into an ordered list of field
// descriptors. It never fails: non-object roots yield the fixed sentinel
// descriptor, unrecognized kinds map to unknown, and missing descriptions
// fall back to NoDescription. Output order equals field declaration order.
func Describe(t *Type) []FieldDoc {
	if t == nil || t.Kind != KindObject {
		return []FieldDoc{opaqueDoc}
	}

	docs := make([]FieldDoc, 0, len(t.Fields))
	for _, f := range t.Fields {
		docs = append(docs, describeField(f))
	}
	return docs
}

func describeField(f Field) FieldDoc {
	doc := FieldDoc{
		Name:        f.Name,
		Type:        resolveKind(f.Type.Kind),
		Required:    !f.Type.Optional,
		Description: f.Type.Description,
	}
	if doc.Description == "" {
		doc.Description = NoDescription
	}
	return doc
}

// resolveKind maps anything outside the closed kind set to unknown.
func resolveKind(k Kind) Kind {
	if _, ok := validKinds[k]; !ok {
		return KindUnknown
	}
	return k
}
