// Package cxxtypes describes C++ types and class-member callables (member
// functions, constructors, destructors, operators) which have been somehow
// loaded into memory (from gccxml, clang, ...)
package cxxtypes

import (
	"fmt"
	"strings"
)

// TypeKind represents the specific kind of type that a Type represents.
// The zero TypeKind is not a valid kind.
type TypeKind uint

const (
	TK_Invalid TypeKind = iota
	TK_Unexposed

	// builtin types

	TK_Void
	TK_Bool
	TK_Char_U
	TK_UChar
	TK_Char16
	TK_Char32
	TK_UShort
	TK_UInt
	TK_ULong
	TK_ULongLong
	TK_UInt128
	TK_Char_S
	TK_SChar
	TK_WChar
	TK_Short
	TK_Int
	TK_Long
	TK_LongLong
	TK_Int128
	TK_Float
	TK_Double
	TK_LongDouble
	TK_NullPtr

	TK_Complex
	TK_Ptr
	TK_LValueRef
	TK_RValueRef
	TK_Record
	TK_Enum
	TK_Typedef
	TK_FunctionProto
	TK_MemberFunctionProto
	TK_ConstantArray

	TK_FirstBuiltin = TK_Void
	TK_LastBuiltin  = TK_NullPtr
)

var tkNames = [...]string{
	TK_Invalid:             "Invalid",
	TK_Unexposed:           "Unexposed",
	TK_Void:                "Void",
	TK_Bool:                "Bool",
	TK_Char_U:              "Char_U",
	TK_UChar:               "UChar",
	TK_Char16:              "Char16",
	TK_Char32:              "Char32",
	TK_UShort:              "UShort",
	TK_UInt:                "UInt",
	TK_ULong:               "ULong",
	TK_ULongLong:           "ULongLong",
	TK_UInt128:             "UInt128",
	TK_Char_S:              "Char_S",
	TK_SChar:               "SChar",
	TK_WChar:               "WChar",
	TK_Short:               "Short",
	TK_Int:                 "Int",
	TK_Long:                "Long",
	TK_LongLong:            "LongLong",
	TK_Int128:              "Int128",
	TK_Float:               "Float",
	TK_Double:              "Double",
	TK_LongDouble:          "LongDouble",
	TK_NullPtr:             "NullPtr",
	TK_Complex:             "Complex",
	TK_Ptr:                 "Ptr",
	TK_LValueRef:           "LValueRef",
	TK_RValueRef:           "RValueRef",
	TK_Record:              "Record",
	TK_Enum:                "Enum",
	TK_Typedef:             "Typedef",
	TK_FunctionProto:       "FunctionProto",
	TK_MemberFunctionProto: "MemberFunctionProto",
	TK_ConstantArray:       "ConstantArray",
}

func (tk TypeKind) String() string {
	if int(tk) < len(tkNames) {
		return tkNames[tk]
	}
	panic(fmt.Sprintf("unknown TypeKind: %d", tk))
}

// TypeQualifier represents the set of qualifiers (const,volatile,restrict) which decorate a type
// The zero TypeQualifier denotes no qualifier being applied.
type TypeQualifier uintptr

const (
	TQ_None  TypeQualifier = 0
	TQ_Const TypeQualifier = 1 << iota
	TQ_Restrict
	TQ_Volatile
)

func (tq TypeQualifier) String() string {
	if tq == TQ_None {
		return "<none>"
	}
	s := []string{}
	if (tq & TQ_Const) != 0 {
		s = append(s, "const")
	}
	if (tq & TQ_Restrict) != 0 {
		s = append(s, "restrict")
	}
	if (tq & TQ_Volatile) != 0 {
		s = append(s, "volatile")
	}
	return strings.Join(s, "|")
}

// Type is the representation of a C/C++ type-expression.
//
// Types are trees: compound types (pointers, references, cv-qualified types
// and arrays) wrap another type, typedefs alias another type and
// DeclaratedType refers to a declaration of a Registry by handle.
type Type interface {

	// TypeName returns the full spelling of the type, default
	// template arguments included.
	TypeName() string

	// PartialName returns the spelling of the type with default
	// template arguments omitted.
	PartialName() string

	// TypeKind returns the specific kind of this type.
	TypeKind() TypeKind

	// Qualifiers returns the or'ed values of qualifiers applied to this type.
	Qualifiers() TypeQualifier
}

// Compound is a type-expression wrapping another one:
// a pointer, a reference, a cv-qualified type or an array.
type Compound interface {
	Type

	// Base returns the wrapped type.
	Base() Type
}

// IsConstQualified returns whether this type is const-qualified.
// This doesn't look through typedefs that may have added 'const' at
// different level.
func IsConstQualified(t Type) bool {
	return (t.Qualifiers() & TQ_Const) != 0
}

// IsRestrictQualified returns whether this type is restrict-qualified.
// This doesn't look through typedefs that may have added 'restrict' at
// different level.
func IsRestrictQualified(t Type) bool {
	return (t.Qualifiers() & TQ_Restrict) != 0
}

// IsVolatileQualified returns whether this type is volatile-qualified.
// This doesn't look through typedefs that may have added 'volatile' at
// different level.
func IsVolatileQualified(t Type) bool {
	return (t.Qualifiers() & TQ_Volatile) != 0
}

// NewFundamentalType creates a C/C++ builtin type.
func NewFundamentalType(name string, size uintptr, kind TypeKind) *FundamentalType {
	return &FundamentalType{
		Name: name,
		Size: size,
		Kind: kind,
	}
}

// FundamentalType represents a builtin type
type FundamentalType struct {
	Name string   // spelling of the builtin, e.g. "unsigned int"
	Size uintptr  // size in bytes
	Kind TypeKind // the specific kind of this type
}

func (t *FundamentalType) TypeName() string          { return t.Name }
func (t *FundamentalType) PartialName() string       { return t.Name }
func (t *FundamentalType) TypeKind() TypeKind        { return t.Kind }
func (t *FundamentalType) Qualifiers() TypeQualifier { return TQ_None }

func (t *FundamentalType) String() string {
	return fmt.Sprintf(`{"%s" sz=%d kind=%v}`, t.Name, t.Size, t.Kind)
}

// NewQualType creates a new const-restrict-volatile qualified type.
func NewQualType(t Type, qual TypeQualifier) *CvrQualType {
	return &CvrQualType{
		Qual: qual,
		Type: t,
	}
}

// NewConstType is a shorthand for NewQualType(t, TQ_Const).
func NewConstType(t Type) *CvrQualType {
	return NewQualType(t, TQ_Const)
}

// CvrQualType represents a const-restrict-volatile qualified type.
type CvrQualType struct {
	Qual TypeQualifier
	Type Type // the decorated type
}

func (t *CvrQualType) Base() Type { return t.Type }

func (t *CvrQualType) TypeName() string {
	return gen_new_name(t.Type, t.Type.TypeName(), t.Qual)
}

func (t *CvrQualType) PartialName() string {
	return gen_new_name(t.Type, t.Type.PartialName(), t.Qual)
}

func (t *CvrQualType) TypeKind() TypeKind {
	return t.Type.TypeKind()
}

func (t *CvrQualType) Qualifiers() TypeQualifier {
	return t.Qual | t.Type.Qualifiers()
}

// NewPtrType creates a new pointer type from an already existing type t.
func NewPtrType(t Type) *PtrType {
	return &PtrType{Type: t}
}

// PtrType represents a typed ptr
type PtrType struct {
	Type Type // the pointee type, possibly cvr-qualified
}

func (t *PtrType) Base() Type                { return t.Type }
func (t *PtrType) TypeName() string          { return t.Type.TypeName() + " *" }
func (t *PtrType) PartialName() string       { return t.Type.PartialName() + " *" }
func (t *PtrType) TypeKind() TypeKind        { return TK_Ptr }
func (t *PtrType) Qualifiers() TypeQualifier { return TQ_None }

// NewRefType creates a new lvalue reference type from an already existing type t.
func NewRefType(t Type) *RefType {
	return &RefType{Type: t}
}

// NewRValueRefType creates a new rvalue reference type from an already existing type t.
func NewRValueRefType(t Type) *RefType {
	return &RefType{Type: t, RValue: true}
}

// RefType represents a typed reference
type RefType struct {
	Type   Type // the referenced type, possibly cvr-qualified
	RValue bool // whether this is an rvalue reference (T&&)
}

func (t *RefType) Base() Type { return t.Type }

func (t *RefType) TypeName() string {
	return t.Type.TypeName() + t.sigil()
}

func (t *RefType) PartialName() string {
	return t.Type.PartialName() + t.sigil()
}

func (t *RefType) sigil() string {
	if t.RValue {
		return " &&"
	}
	return " &"
}

func (t *RefType) TypeKind() TypeKind {
	if t.RValue {
		return TK_RValueRef
	}
	return TK_LValueRef
}

func (t *RefType) Qualifiers() TypeQualifier { return TQ_None }

// NewArrayType creates a new array of type T[n].
func NewArrayType(elem Type, n uintptr) *ArrayType {
	return &ArrayType{
		ArrElem: elem,
		ArrLen:  n,
	}
}

// ArrayType represents a fixed array type
type ArrayType struct {
	ArrElem Type    // array element type
	ArrLen  uintptr // array length
}

// Elem returns the type of the array's elements
func (t *ArrayType) Elem() Type {
	return t.ArrElem
}

// Len returns the size of the array
func (t *ArrayType) Len() uintptr {
	return t.ArrLen
}

func (t *ArrayType) Base() Type { return t.ArrElem }

func (t *ArrayType) TypeName() string {
	return fmt.Sprintf("%s[%d]", t.ArrElem.TypeName(), t.ArrLen)
}

func (t *ArrayType) PartialName() string {
	return fmt.Sprintf("%s[%d]", t.ArrElem.PartialName(), t.ArrLen)
}

func (t *ArrayType) TypeKind() TypeKind        { return TK_ConstantArray }
func (t *ArrayType) Qualifiers() TypeQualifier { return t.ArrElem.Qualifiers() }

// NewTypedefType creates a new typedef named n aliasing the type t.
func NewTypedefType(n string, t Type) *TypedefType {
	return &TypedefType{Name: n, Type: t}
}

// TypedefType represents a typedef
type TypedefType struct {
	Name string // the fully qualified name of the typedef
	Type Type   // the typedef'd type, possibly cvr-qualified
}

func (t *TypedefType) TypeName() string          { return t.Name }
func (t *TypedefType) PartialName() string       { return t.Name }
func (t *TypedefType) TypeKind() TypeKind        { return TK_Typedef }
func (t *TypedefType) Qualifiers() TypeQualifier { return TQ_None }

// DeclaratedType is a type referring, by name, to a user-declared
// class, struct, union or enum of a Registry.
type DeclaratedType struct {
	Decl    DeclRef  // handle of the declaration in its registry
	Name    string   // fully qualified name of the declaration
	Partial string   // fully qualified name, default template arguments omitted
	Kind    TypeKind // TK_Record or TK_Enum

	reg *Registry // registry holding Decl
}

func (t *DeclaratedType) TypeName() string { return t.Name }

func (t *DeclaratedType) PartialName() string {
	if t.Partial == "" {
		return t.Name
	}
	return t.Partial
}

func (t *DeclaratedType) TypeKind() TypeKind        { return t.Kind }
func (t *DeclaratedType) Qualifiers() TypeQualifier { return TQ_None }

// ----------------------------------------------------------------------------
// helper functions

// gen_new_name returns a new name for n from the list of qualifiers.
// Qualifiers are prepended, except for pointers where they apply to the
// pointer itself and are thus appended.
func gen_new_name(base Type, n string, qual TypeQualifier) string {
	_, isptr := base.(*PtrType)
	var s []string
	if (qual & TQ_Const) != 0 {
		s = append(s, "const")
	}
	if (qual & TQ_Restrict) != 0 {
		s = append(s, "restrict")
	}
	if (qual & TQ_Volatile) != 0 {
		s = append(s, "volatile")
	}
	if len(s) == 0 {
		return n
	}
	if isptr {
		return n + " " + strings.Join(s, " ")
	}
	return strings.Join(s, " ") + " " + n
}

// ----------------------------------------------------------------------------
// make sure the interfaces are implemented

var _ Type = (*FundamentalType)(nil)
var _ Type = (*TypedefType)(nil)
var _ Type = (*DeclaratedType)(nil)

var _ Compound = (*CvrQualType)(nil)
var _ Compound = (*PtrType)(nil)
var _ Compound = (*RefType)(nil)
var _ Compound = (*ArrayType)(nil)

// EOF
