package resolver

import (
	"github.com/viant/csbind/shared"
)

// InitVersion is the first C# version with init accessors and nint/nuint native integers
const InitVersion uint8 = 9

const bigInteger = "System.Numerics.BigInteger"

var primitives = map[string]string{
	"u8":     "byte",
	"u16":    "ushort",
	"u32":    "uint",
	"u64":    "ulong",
	"u128":   bigInteger,
	"i8":     "sbyte",
	"i16":    "short",
	"i32":    "int",
	"i64":    "long",
	"i128":   bigInteger,
	"f32":    "float",
	"f64":    "double",
	"char":   "char",
	"c_char": "char",
}

// fallback used before native integers: not exact on 32-bit targets
var pointerSized = map[string][2]string{
	"usize": {"nuint", "ulong"},
	"isize": {"nint", "long"},
}

// enumBases lists widths usable as C# enum underlying type
var enumBases = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true,
	"i8": true, "i16": true, "i32": true, "i64": true,
}

// IsPrimitive returns true if name is a native scalar handled by the primitive table
func IsPrimitive(name string) bool {
	if _, ok := primitives[name]; ok {
		return true
	}
	if _, ok := pointerSized[name]; ok {
		return true
	}
	return name == "bool" || name == "str"
}

// IsIntegerWidth returns true if name is a native integer, including pointer sized and 128-bit ones
func IsIntegerWidth(name string) bool {
	switch name {
	case "u128", "i128", "usize", "isize":
		return true
	}
	return enumBases[name]
}

// IsEnumBase returns true if name is a fixed width integer accepted as enum representation
func IsEnumBase(name string) bool {
	return enumBases[name]
}

// Primitive maps native scalar name, ok is false when name is not a primitive
func Primitive(name string, version uint8, pos shared.Position) (*TypeName, bool, error) {
	if managed, ok := primitives[name]; ok {
		return NewTypeName(managed, name), true, nil
	}
	if candidates, ok := pointerSized[name]; ok {
		if version >= InitVersion {
			return NewTypeName(candidates[0], name), true, nil
		}
		return NewTypeName(candidates[1], name), true, nil
	}
	switch name {
	case "bool":
		return nil, true, shared.NewUnsupportedError("bool", pos, "found a boolean type: due to differing sizes on different platforms it is not supported for extern C functions")
	case "str":
		return nil, true, shared.NewUnsupportedError("str", pos, "found a str type: it is not supported, use a char pointer instead")
	}
	return nil, false, nil
}
