package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/registry"
	"github.com/viant/csbind/shared"
	"github.com/viant/csbind/typectx"
)

func TestPrimitive(t *testing.T) {
	var testCases = []struct {
		native  string
		managed string
		legacy  string
	}{
		{native: "u8", managed: "byte"},
		{native: "u16", managed: "ushort"},
		{native: "u32", managed: "uint"},
		{native: "u64", managed: "ulong"},
		{native: "u128", managed: "System.Numerics.BigInteger"},
		{native: "usize", managed: "nuint", legacy: "ulong"},
		{native: "i8", managed: "sbyte"},
		{native: "i16", managed: "short"},
		{native: "i32", managed: "int"},
		{native: "i64", managed: "long"},
		{native: "i128", managed: "System.Numerics.BigInteger"},
		{native: "isize", managed: "nint", legacy: "long"},
		{native: "f32", managed: "float"},
		{native: "f64", managed: "double"},
		{native: "char", managed: "char"},
		{native: "c_char", managed: "char"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.native, func(t *testing.T) {
			actual, ok, err := Primitive(testCase.native, InitVersion, shared.Position{})
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, testCase.managed, actual.Managed)
			assert.Equal(t, testCase.native, actual.Native)

			legacy := testCase.legacy
			if legacy == "" {
				legacy = testCase.managed
			}
			actual, ok, err = Primitive(testCase.native, InitVersion-1, shared.Position{})
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, legacy, actual.Managed)
			assert.Equal(t, testCase.native, actual.Native)
		})
	}
}

func TestPrimitive_Rejected(t *testing.T) {
	for _, name := range []string{"bool", "str"} {
		actual, ok, err := Primitive(name, InitVersion, shared.Position{Line: 3, Column: 7})
		assert.True(t, ok, name)
		assert.Nil(t, actual, name)
		require.Error(t, err, name)
		assert.True(t, shared.IsUnsupported(err), name)
		assert.Contains(t, err.Error(), "3:7", name)
	}
	_, ok, err := Primitive("Foo", InitVersion, shared.Position{})
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestQualify(t *testing.T) {
	var testCases = []struct {
		description string
		identity    registry.Identity
		context     typectx.Context
		expect      string
	}{
		{description: "same namespace, no enclosing types", identity: registry.Identity{Namespace: "a", Name: "Foo"}, context: typectx.Context{Namespace: "a"}, expect: "Foo"},
		{description: "same namespace, type without enclosing type", identity: registry.Identity{Namespace: "a", Name: "Foo"}, context: typectx.Context{Namespace: "a", TypeName: "X"}, expect: "Foo"},
		{description: "same namespace and enclosing type", identity: registry.Identity{Namespace: "a", EnclosingType: "X", Name: "Foo"}, context: typectx.Context{Namespace: "a", TypeName: "X"}, expect: "Foo"},
		{description: "same namespace, context without enclosing type", identity: registry.Identity{Namespace: "a", EnclosingType: "X", Name: "Foo"}, context: typectx.Context{Namespace: "a"}, expect: "X.Foo"},
		{description: "same namespace, other enclosing type", identity: registry.Identity{Namespace: "a", EnclosingType: "X", Name: "Foo"}, context: typectx.Context{Namespace: "a", TypeName: "Y"}, expect: "X.Foo"},
		{description: "no namespaces, no enclosing types", identity: registry.Identity{Name: "Foo"}, context: typectx.Context{}, expect: "Foo"},
		{description: "no namespaces, same enclosing type", identity: registry.Identity{EnclosingType: "X", Name: "Foo"}, context: typectx.Context{TypeName: "X"}, expect: "Foo"},
		{description: "no namespaces, context without enclosing type", identity: registry.Identity{EnclosingType: "X", Name: "Foo"}, context: typectx.Context{}, expect: "X.Foo"},
		{description: "global type from namespace", identity: registry.Identity{Name: "Foo"}, context: typectx.Context{Namespace: "a"}, expect: "Foo"},
		{description: "global type from namespace and enclosing type", identity: registry.Identity{Name: "Foo"}, context: typectx.Context{Namespace: "a", TypeName: "X"}, expect: "Foo"},
		{description: "other namespace, no enclosing type", identity: registry.Identity{Namespace: "b", Name: "Foo"}, context: typectx.Context{Namespace: "a", TypeName: "X"}, expect: "b.Foo"},
		{description: "namespaced type from global context", identity: registry.Identity{Namespace: "b", Name: "Foo"}, context: typectx.Context{}, expect: "b.Foo"},
		{description: "enclosing type without namespace from namespace", identity: registry.Identity{EnclosingType: "X", Name: "Foo"}, context: typectx.Context{Namespace: "a", TypeName: "X"}, expect: "X.Foo"},
		{description: "other namespace, same enclosing type name", identity: registry.Identity{Namespace: "b", EnclosingType: "X", Name: "Foo"}, context: typectx.Context{Namespace: "a", TypeName: "X"}, expect: "b.X.Foo"},
		{description: "fully qualified from global context", identity: registry.Identity{Namespace: "b", EnclosingType: "X", Name: "Foo"}, context: typectx.Context{}, expect: "b.X.Foo"},
		{description: "fully qualified from enclosing type only", identity: registry.Identity{Namespace: "b", EnclosingType: "X", Name: "Foo"}, context: typectx.Context{TypeName: "X"}, expect: "b.X.Foo"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, Qualify(testCase.identity, testCase.context))
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	reg := registry.New()
	reg.Register("Foo", registry.Identity{Namespace: "foo", EnclosingType: "bar", Name: "Foo"})
	reg.Register("Other", registry.Identity{Namespace: "other", EnclosingType: "Native", Name: "Other"})
	reg.Register("Pair", registry.Identity{Namespace: "foo", EnclosingType: "bar", Name: "Pair"})

	u8 := decl.NewPath("u8")
	var testCases = []struct {
		description string
		aType       decl.Type
		managed     string
		native      string
	}{
		{description: "primitive", aType: u8, managed: "byte", native: "u8"},
		{description: "pointer", aType: &decl.Pointer{Elem: u8}, managed: "IntPtr", native: "u8*"},
		{description: "pointer to pointer", aType: &decl.Pointer{Elem: &decl.Pointer{Mutable: true, Elem: u8}}, managed: "IntPtr", native: "u8**"},
		{description: "reference", aType: &decl.Reference{Elem: u8}, managed: "ref byte", native: "u8&"},
		{description: "reference to registered", aType: &decl.Reference{Mutable: true, Elem: decl.NewPath("Foo")}, managed: "ref Foo", native: "Foo&"},
		{description: "registered same scope", aType: decl.NewPath("Foo"), managed: "Foo", native: "Foo"},
		{description: "registered other scope", aType: decl.NewPath("Other"), managed: "other.Native.Other", native: "Other"},
		{description: "generic", aType: decl.NewPath("Pair", u8, decl.NewPath("Other")), managed: "Pair<byte, other.Native.Other>", native: "Pair"},
		{description: "nested generic", aType: decl.NewPath("Pair", decl.NewPath("Pair", u8, u8), u8), managed: "Pair<Pair<byte, byte>, byte>", native: "Pair"},
		{description: "out type", aType: decl.NewPath("Out", u8), managed: "out byte", native: "Out"},
		{description: "out generic", aType: decl.NewPath("Out", decl.NewPath("Pair", u8, u8)), managed: "out Pair<byte, byte>", native: "Out"},
		{
			description: "qualified path resolves last segment",
			aType:       &decl.Path{Segments: []*decl.Segment{{Name: "std"}, {Name: "os"}, {Name: "raw"}, {Name: "c_char"}}},
			managed:     "char",
			native:      "c_char",
		},
		{
			description: "lifetime arguments are skipped",
			aType:       &decl.Path{Segments: []*decl.Segment{{Name: "Pair", Args: []*decl.GenericArg{{Lifetime: "a"}, {Type: u8}}}}},
			managed:     "Pair<byte>",
			native:      "Pair",
		},
	}

	resolver := New(reg, typectx.Context{Namespace: "foo", TypeName: "bar"}, InitVersion, "Out")
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := resolver.Resolve(testCase.aType)
			require.NoError(t, err)
			assert.Equal(t, testCase.managed, actual.String())
			assert.Equal(t, testCase.native, actual.Native)
		})
	}
}

func TestResolver_Resolve_Errors(t *testing.T) {
	pos := shared.Position{Line: 2, Column: 10}
	u8 := decl.NewPath("u8")
	var testCases = []struct {
		description string
		aType       decl.Type
		unknown     bool
		construct   string
	}{
		{description: "array", aType: &decl.Array{Position: pos, Elem: u8, Len: "4"}, construct: "array"},
		{description: "slice", aType: &decl.Slice{Position: pos, Elem: u8}, construct: "slice"},
		{description: "tuple", aType: &decl.Tuple{Position: pos, Elems: []decl.Type{u8, u8}}, construct: "tuple"},
		{description: "unit", aType: &decl.Tuple{Position: pos}, construct: "tuple"},
		{description: "bare fn", aType: &decl.BareFn{Position: pos}, construct: "bare function"},
		{description: "trait object", aType: &decl.TraitObject{Position: pos, Bounds: "Foo"}, construct: "trait object"},
		{description: "impl trait", aType: &decl.ImplTrait{Position: pos, Bounds: "Foo"}, construct: "impl trait"},
		{description: "infer", aType: &decl.Infer{Position: pos}, construct: "infer"},
		{description: "macro", aType: &decl.Macro{Position: pos, Name: "ty"}, construct: "macro"},
		{description: "never", aType: &decl.Never{Position: pos}, construct: "never"},
		{description: "paren", aType: &decl.Paren{Position: pos, Elem: u8}, construct: "parenthesis"},
		{description: "group", aType: &decl.Group{Position: pos, Elem: u8}, construct: "group"},
		{description: "verbatim", aType: &decl.Verbatim{Position: pos, Text: "?"}, construct: "verbatim"},
		{description: "bool", aType: decl.NewPath("bool"), construct: "bool"},
		{description: "str reference", aType: &decl.Reference{Elem: decl.NewPath("str")}, construct: "str"},
		{description: "pointer to slice", aType: &decl.Pointer{Elem: &decl.Slice{Elem: u8}}, construct: "slice"},
		{description: "out without argument", aType: decl.NewPath("Out"), construct: "out type"},
		{description: "out with two arguments", aType: decl.NewPath("Out", u8, u8), construct: "out type"},
		{description: "unknown", aType: &decl.Path{Position: pos, Segments: []*decl.Segment{{Name: "Missing"}}}, unknown: true},
		{description: "unknown generic argument", aType: decl.NewPath("Pair", decl.NewPath("Missing")), unknown: true},
		{description: "pointer to unknown", aType: &decl.Pointer{Elem: decl.NewPath("Missing")}, unknown: true},
	}

	reg := registry.New()
	reg.Register("Pair", registry.Identity{Name: "Pair"})
	resolver := New(reg, typectx.Context{}, InitVersion, "Out")
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := resolver.Resolve(testCase.aType)
			require.Error(t, err)
			assert.Nil(t, actual)
			if testCase.unknown {
				var unknownErr *shared.UnknownTypeError
				require.ErrorAs(t, err, &unknownErr)
				assert.Equal(t, "Missing", unknownErr.Name)
				return
			}
			var unsupportedErr *shared.UnsupportedError
			require.ErrorAs(t, err, &unsupportedErr)
			assert.Equal(t, testCase.construct, unsupportedErr.Construct)
		})
	}
}

func TestResolver_UnknownTypePosition(t *testing.T) {
	resolver := New(registry.New(), typectx.Context{}, 8, "")
	_, err := resolver.Resolve(&decl.Path{Position: shared.Position{Line: 4, Column: 12}, Segments: []*decl.Segment{{Name: "Foo"}}})
	require.Error(t, err)
	assert.Equal(t, "4:12: type with name 'Foo' was not found", err.Error())
}

func TestResolver_OutTypeDisabled(t *testing.T) {
	resolver := New(registry.New(), typectx.Context{}, 8, "")
	_, err := resolver.Resolve(decl.NewPath("Out", decl.NewPath("u8")))
	assert.True(t, shared.IsUnknownType(err))
}
