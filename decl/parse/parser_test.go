package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/shared"
)

func TestParse_Function(t *testing.T) {
	file, err := ParseString(`
/// Adds numbers
///
/// second line
#[no_mangle]
pub unsafe extern "C" fn foo_bar<'a, T: Copy>(foo_bar: u8, mut b: *const c_char, r: &'a mut Out<u32>) -> u64 where T: Clone {
    let x = '{';
    if foo_bar > 0 { return 1 } else { "}" ; }
    0
}
fn plain(self_: u8) {}
extern fn no_abi() {}
pub extern "system" fn sys();
`)
	require.NoError(t, err)
	require.Len(t, file.Items, 4)

	fn, ok := file.Items[0].(*decl.Function)
	require.True(t, ok)
	assert.Equal(t, "foo_bar", fn.Name)
	assert.True(t, fn.IsExternC())
	assert.Equal(t, shared.Position{Line: 2, Column: 1}, fn.Position)
	var docs []string
	for _, attr := range fn.Attrs.ByName(decl.DocAttribute) {
		docs = append(docs, attr.Value)
	}
	assert.Equal(t, []string{" Adds numbers", "", " second line"}, docs)
	require.Len(t, fn.Attrs.ByName("no_mangle"), 1)
	require.Len(t, fn.Params, 3)
	assert.Equal(t, "foo_bar", fn.Params[0].Name)
	assert.Equal(t, "u8", fn.Params[0].Type.String())
	assert.Equal(t, "b", fn.Params[1].Name)
	assert.Equal(t, "*const c_char", fn.Params[1].Type.String())
	assert.Equal(t, "r", fn.Params[2].Name)
	assert.Equal(t, "&'a mut Out<u32>", fn.Params[2].Type.String())
	assert.Equal(t, "u64", fn.Result.String())

	plain := file.Items[1].(*decl.Function)
	assert.False(t, plain.Extern)
	assert.Nil(t, plain.Result)
	assert.Equal(t, "self_", plain.Params[0].Name)
	assert.False(t, plain.Params[0].Receiver)

	noABI := file.Items[2].(*decl.Function)
	assert.True(t, noABI.Extern)
	assert.False(t, noABI.IsExternC())

	sys := file.Items[3].(*decl.Function)
	assert.Equal(t, "system", sys.ABI)
	assert.False(t, sys.IsExternC())
}

func TestParse_Params(t *testing.T) {
	var testCases = []struct {
		description string
		source      string
		receiver    bool
		name        string
		pattern     string
	}{
		{description: "identifier", source: `fn f(a: u8) {}`, name: "a", pattern: "a"},
		{description: "mutable identifier", source: `fn f(mut a: u8) {}`, name: "a", pattern: "mut a"},
		{description: "self", source: `fn f(self) {}`, receiver: true, pattern: "self"},
		{description: "reference self", source: `fn f(&mut self) {}`, receiver: true, pattern: "&mut self"},
		{description: "typed self", source: `fn f(self: Box<Self>) {}`, receiver: true, name: "self", pattern: "self"},
		{description: "tuple pattern", source: `fn f((a, b): (u8, u8)) {}`, pattern: "(a, b)"},
		{description: "wildcard", source: `fn f(_: u8) {}`, pattern: "_"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			file, err := ParseString(testCase.source)
			require.NoError(t, err)
			fn := file.Items[0].(*decl.Function)
			require.Len(t, fn.Params, 1)
			param := fn.Params[0]
			assert.Equal(t, testCase.receiver, param.Receiver)
			assert.Equal(t, testCase.name, param.Name)
			assert.Equal(t, testCase.pattern, param.Pattern)
		})
	}
}

func TestParse_Types(t *testing.T) {
	var testCases = []struct {
		description string
		source      string
		kind        string
		expect      string
	}{
		{description: "primitive", source: "u8", kind: "path", expect: "u8"},
		{description: "qualified path", source: "std::os::raw::c_char", kind: "path", expect: "std::os::raw::c_char"},
		{description: "global path", source: "::core::ffi::c_int", kind: "path", expect: "core::ffi::c_int"},
		{description: "nested generics", source: "Pair<Vec<u8>, Option<i32>>", kind: "path", expect: "Pair<Vec<u8>, Option<i32>>"},
		{description: "lifetime and const args", source: "Buf<'a, 4>", kind: "path", expect: "Buf<'a, 4>"},
		{description: "mutable pointer", source: "*mut Foo", kind: "pointer", expect: "*mut Foo"},
		{description: "pointer to pointer", source: "*const *mut u8", kind: "pointer", expect: "*const *mut u8"},
		{description: "reference", source: "&'static str", kind: "reference", expect: "&'static str"},
		{description: "array", source: "[u8; 4]", kind: "array", expect: "[u8; 4]"},
		{description: "slice", source: "&[u8]", kind: "reference", expect: "&[u8]"},
		{description: "unit", source: "()", kind: "tuple", expect: "()"},
		{description: "tuple", source: "(u8, i32)", kind: "tuple", expect: "(u8, i32)"},
		{description: "single tuple", source: "(u8,)", kind: "tuple", expect: "(u8,)"},
		{description: "parenthesis", source: "(u8)", kind: "parenthesis", expect: "(u8)"},
		{description: "bare function", source: `extern "C" fn(u8, x: i32) -> u8`, kind: "bare function"},
		{description: "trait object", source: "Box<dyn Fn(u8) -> u8 + Send>", kind: "path"},
		{description: "impl trait", source: "impl Iterator<Item = u8>", kind: "impl trait"},
		{description: "infer", source: "_", kind: "infer", expect: "_"},
		{description: "never", source: "!", kind: "never", expect: "!"},
		{description: "macro", source: "ty!(u8)", kind: "macro"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			file, err := ParseString("type Alias = " + testCase.source + ";")
			require.NoError(t, err)
			require.Len(t, file.Items, 1)
			alias, ok := file.Items[0].(*decl.TypeAlias)
			require.True(t, ok)
			assert.Equal(t, testCase.kind, alias.Type.Kind())
			if testCase.expect != "" {
				assert.Equal(t, testCase.expect, alias.Type.String())
			}
		})
	}
}

func TestParse_Enum(t *testing.T) {
	file, err := ParseString(`
/// Enum documentation
#[derive(Clone, Copy)]
#[repr(C, u8)]
pub enum Foo {
    /// first
    One = 1,
    Two = 0x10,
    Three = -1_000i32,
    Four,
    Five = 1 << 2,
    Six(u8),
    Seven { a: u8 },
}
`)
	require.NoError(t, err)
	enum := file.Items[0].(*decl.Enum)
	assert.Equal(t, "Foo", enum.Name)
	assert.Equal(t, []string{"Clone", "Copy"}, enum.Attrs.ByName("derive")[0].Args)
	assert.Equal(t, []string{"C", "u8"}, enum.Attrs.Repr())
	require.Len(t, enum.Variants, 7)

	var testCases = []struct {
		name    string
		text    string
		literal bool
		fields  int
	}{
		{name: "One", text: "1", literal: true},
		{name: "Two", text: "0x10", literal: true},
		{name: "Three", text: "-1_000i32", literal: true},
		{name: "Four"},
		{name: "Five", text: "1 << 2"},
		{name: "Six", fields: 1},
		{name: "Seven", fields: 1},
	}
	for i, testCase := range testCases {
		variant := enum.Variants[i]
		assert.Equal(t, testCase.name, variant.Name)
		assert.Len(t, variant.Fields, testCase.fields, testCase.name)
		if testCase.text == "" {
			assert.Nil(t, variant.Discriminant, testCase.name)
			continue
		}
		require.NotNil(t, variant.Discriminant, testCase.name)
		assert.Equal(t, testCase.text, variant.Discriminant.Text, testCase.name)
		assert.Equal(t, testCase.literal, variant.Discriminant.Literal, testCase.name)
	}
	assert.Equal(t, " first", enum.Variants[0].Attrs.ByName(decl.DocAttribute)[0].Value)
}

func TestParse_Struct(t *testing.T) {
	file, err := ParseString(`
#[repr(C)]
pub struct Foo<'a, T, const N: usize> where T: Copy {
    /// a field
    pub field_a: u8,
    pub(crate) field_b: &'a T,
    field_c: [T; N]
}
#[repr(C)]
pub struct Tuple(pub u8, i32);
pub struct Unit;
`)
	require.NoError(t, err)
	require.Len(t, file.Items, 3)

	aStruct := file.Items[0].(*decl.Struct)
	assert.True(t, aStruct.Attrs.HasRepr("C"))
	assert.Equal(t, []string{"T"}, decl.TypeParams(aStruct.Generics))
	require.Len(t, aStruct.Generics, 3)
	assert.Equal(t, decl.LifetimeParam, aStruct.Generics[0].Kind)
	assert.Equal(t, decl.ConstParam, aStruct.Generics[2].Kind)
	require.Len(t, aStruct.Fields, 3)
	assert.Equal(t, "field_a", aStruct.Fields[0].Name)
	assert.Equal(t, " a field", aStruct.Fields[0].Attrs[0].Value)
	assert.Equal(t, "&'a T", aStruct.Fields[1].Type.String())
	assert.Equal(t, "array", aStruct.Fields[2].Type.Kind())

	tuple := file.Items[1].(*decl.Struct)
	assert.True(t, tuple.Tuple)
	require.Len(t, tuple.Fields, 2)
	assert.Equal(t, "", tuple.Fields[0].Name)

	unit := file.Items[2].(*decl.Struct)
	assert.Empty(t, unit.Fields)
}

func TestParse_ModulesAndSkippedItems(t *testing.T) {
	file, err := ParseString(`
#![allow(dead_code)]
use std::os::raw::{c_char, c_int};
extern crate libc;
const MAX: usize = { 1 + 2 };
static mut COUNTER: u32 = 0;
impl<T> Foo<T> where T: Copy { fn get(&self) -> T { self.0 } }
unsafe impl Send for Foo {}
trait Named { fn name(&self) -> String; }
extern "C" { fn puts(s: *const c_char) -> c_int; }
macro_rules! twice { ($e:expr) => { $e * 2 }; }
lazy_static::lazy_static! { static ref X: u8 = 1; }
println!("{}", 1);
mod outer {
    //! inner doc
    mod external;
    pub mod inner {
        pub extern "C" fn deep() {}
    }
}
type Opaque;
`)
	require.NoError(t, err)
	var kinds []string
	for _, item := range file.Items {
		switch actual := item.(type) {
		case *decl.Other:
			kinds = append(kinds, actual.Kind+":"+actual.Name)
		case *decl.Module:
			kinds = append(kinds, "mod:"+actual.Name)
		}
	}
	assert.Equal(t, []string{
		"use:std::os::raw::{c_char, c_int}",
		"extern crate:libc",
		"const:MAX",
		"static:COUNTER",
		"impl:",
		"impl:Send",
		"trait:Named",
		"extern block:",
		"macro:twice",
		"macro:lazy_static::lazy_static",
		"macro:println",
		"mod:outer",
		"type:Opaque",
	}, kinds)

	outer := file.Items[11].(*decl.Module)
	assert.True(t, outer.Inline)
	require.Len(t, outer.Items, 2)
	assert.False(t, outer.Items[0].(*decl.Module).Inline)
	inner := outer.Items[1].(*decl.Module)
	assert.Equal(t, "deep", inner.Items[0].(*decl.Function).Name)
	assert.Equal(t, []string{"deep"}, file.Names())
}

func TestParse_Errors(t *testing.T) {
	var testCases = []struct {
		description string
		source      string
		pos         shared.Position
	}{
		{description: "unbalanced body", source: "fn foo() {", pos: shared.Position{Line: 1, Column: 11}},
		{description: "missing field type", source: "struct Foo {\n    a,\n}", pos: shared.Position{Line: 2, Column: 6}},
		{description: "unexpected token", source: "pub 42", pos: shared.Position{Line: 1, Column: 5}},
		{description: "invalid character", source: "struct Foo;\n  `", pos: shared.Position{Line: 2, Column: 3}},
		{description: "pointer without qualifier", source: "type A = *u8;", pos: shared.Position{Line: 1, Column: 11}},
		{description: "mismatched delimiter", source: "fn foo() { ) }", pos: shared.Position{Line: 1, Column: 12}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := ParseString(testCase.source)
			require.Error(t, err)
			var parseErr *Error
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, testCase.pos, parseErr.Pos, err.Error())
		})
	}
}
