package schema

import "testing"

func TestDescribe_NilSchema(t *testing.T) {
	docs := Describe(nil)
	if len(docs) != 1 {
		t.Fatalf("expected the sentinel descriptor, got %d docs", len(docs))
	}
	assertOpaque(t, docs[0])
}

func TestDescribe_NonObjectRoots(t *testing.T) {
	tests := []struct {
		name string
		root Type
	}{
		{"string", String("a plain string")},
		{"number", Number("")},
		{"array", Array(String(""))},
		{"enum", Enum("a", "b")},
		{"union", Union(String(""), Number(""))},
		{"literal", Literal("fixed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := Describe(&tt.root)
			if len(docs) != 1 {
				t.Fatalf("expected the sentinel descriptor, got %d docs", len(docs))
			}
			assertOpaque(t, docs[0])
		})
	}
}

func assertOpaque(t *testing.T, doc FieldDoc) {
	t.Helper()
	if doc.Name != "parameters" {
		t.Errorf("expected name %q, got %q", "parameters", doc.Name)
	}
	if doc.Type != KindUnknown {
		t.Errorf("expected kind unknown, got %q", doc.Type)
	}
	if !doc.Required {
		t.Error("expected the opaque descriptor to be required")
	}
	if doc.Description != "Opaque schema; no field-level documentation available" {
		t.Errorf("unexpected description: %q", doc.Description)
	}
}

func TestDescribe_ObjectFieldsInDeclarationOrder(t *testing.T) {
	root := Object(
		F("zebra", String("last alphabetically")),
		F("apple", Number("first alphabetically")),
		F("mango", Boolean("middle")),
	)

	docs := Describe(&root)
	want := []string{"zebra", "apple", "mango"}
	if len(docs) != len(want) {
		t.Fatalf("expected %d docs, got %d", len(want), len(docs))
	}
	for i, name := range want {
		if docs[i].Name != name {
			t.Errorf("doc %d: expected %q, got %q", i, name, docs[i].Name)
		}
	}
}

func TestDescribe_OptionalFieldsNotRequired(t *testing.T) {
	root := Object(
		F("required_field", String("present")),
		F("optional_field", Optional(String("maybe"))),
	)

	docs := Describe(&root)
	if !docs[0].Required {
		t.Error("plain field should be required")
	}
	if docs[1].Required {
		t.Error("optional field should not be required")
	}
	if docs[1].Type != KindString {
		t.Errorf("optional wrapper should not change the kind, got %q", docs[1].Type)
	}
}

func TestDescribe_MissingDescriptionFallback(t *testing.T) {
	root := Object(F("q", String("")))

	docs := Describe(&root)
	if docs[0].Description != NoDescription {
		t.Errorf("expected %q, got %q", NoDescription, docs[0].Description)
	}
}

func TestDescribe_UnrecognizedKindMapsToUnknown(t *testing.T) {
	root := Object(F("weird", Type{Kind: Kind("tuple")}))

	docs := Describe(&root)
	if docs[0].Type != KindUnknown {
		t.Errorf("expected unknown, got %q", docs[0].Type)
	}
}

func TestDescribe_EmptyObject(t *testing.T) {
	root := Object()
	docs := Describe(&root)
	if len(docs) != 0 {
		t.Errorf("empty object should document zero fields, got %v", docs)
	}
}

func TestDescribe_FieldKinds(t *testing.T) {
	root := Object(
		F("s", String("")),
		F("n", Number("")),
		F("b", Boolean("")),
		F("a", Array(String(""))),
		F("o", Object(F("inner", String("")))),
		F("e", Enum("x", "y")),
		F("u", Union(String(""), Number(""))),
		F("l", Literal("v")),
	)

	want := []Kind{KindString, KindNumber, KindBoolean, KindArray, KindObject, KindEnum, KindUnion, KindLiteral}
	docs := Describe(&root)
	if len(docs) != len(want) {
		t.Fatalf("expected %d docs, got %d", len(want), len(docs))
	}
	for i, kind := range want {
		if docs[i].Type != kind {
			t.Errorf("field %d: expected kind %q, got %q", i, kind, docs[i].Type)
		}
	}
}

func TestWithDescription(t *testing.T) {
	base := Enum("a", "b")
	described := base.WithDescription("a choice")

	if described.Description != "a choice" {
		t.Errorf("unexpected description: %q", described.Description)
	}
	if base.Description != "" {
		t.Error("WithDescription should not mutate the receiver")
	}
}
