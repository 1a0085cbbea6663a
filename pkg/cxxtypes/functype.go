package cxxtypes

import (
	"strings"
)

// FunctionType is the structural type of a callable: either a
// *FreeFunctionType or a *MemberFunctionType.
type FunctionType interface {
	Type

	// ReturnType returns the return type, nil if there is none.
	ReturnType() Type

	// ArgumentTypes returns the types of the arguments, in order.
	ArgumentTypes() []Type

	// DeclString returns the spelling of the type with default
	// template arguments.
	DeclString() string

	// PartialDeclString returns the spelling of the type without default
	// template arguments.
	PartialDeclString() string

	isFunctionType()
}

// FreeFunctionType is the type of a free function or of a static member
// function, e.g. "int (*)( float,char )".
type FreeFunctionType struct {
	Ret  Type   // return type, nil if none
	Args []Type // argument types
}

func (t *FreeFunctionType) ReturnType() Type          { return t.Ret }
func (t *FreeFunctionType) ArgumentTypes() []Type     { return t.Args }
func (t *FreeFunctionType) TypeKind() TypeKind        { return TK_FunctionProto }
func (t *FreeFunctionType) Qualifiers() TypeQualifier { return TQ_None }
func (t *FreeFunctionType) TypeName() string          { return t.DeclString() }
func (t *FreeFunctionType) PartialName() string       { return t.PartialDeclString() }
func (t *FreeFunctionType) isFunctionType()           {}

func (t *FreeFunctionType) DeclString() string {
	return t.declString(Type.TypeName)
}

func (t *FreeFunctionType) PartialDeclString() string {
	return t.declString(Type.PartialName)
}

func (t *FreeFunctionType) declString(name func(Type) string) string {
	return retName(t.Ret, name) + " (*)( " + argNames(t.Args, name) + " )"
}

// MemberFunctionType is the type of a non-static member function,
// e.g. "int ( ::Foo::* )( float ) const".
type MemberFunctionType struct {
	Class    *DeclaratedType // owning class, nil if unknown
	Ret      Type            // return type, nil if none
	Args     []Type          // argument types
	HasConst bool            // whether the function is const-qualified
}

func (t *MemberFunctionType) ReturnType() Type          { return t.Ret }
func (t *MemberFunctionType) ArgumentTypes() []Type     { return t.Args }
func (t *MemberFunctionType) TypeKind() TypeKind        { return TK_MemberFunctionProto }
func (t *MemberFunctionType) Qualifiers() TypeQualifier { return TQ_None }
func (t *MemberFunctionType) TypeName() string          { return t.DeclString() }
func (t *MemberFunctionType) PartialName() string       { return t.PartialDeclString() }
func (t *MemberFunctionType) isFunctionType()           {}

func (t *MemberFunctionType) DeclString() string {
	return t.declString(Type.TypeName)
}

func (t *MemberFunctionType) PartialDeclString() string {
	return t.declString(Type.PartialName)
}

func (t *MemberFunctionType) declString(name func(Type) string) string {
	cls := "?"
	if t.Class != nil {
		cls = name(t.Class)
	}
	s := retName(t.Ret, name) + " ( " + cls + "::* )( " + argNames(t.Args, name) + " )"
	if t.HasConst {
		s += " const"
	}
	return s
}

func retName(t Type, name func(Type) string) string {
	if t == nil {
		return "void"
	}
	return name(t)
}

func argNames(args []Type, name func(Type) string) string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = name(a)
	}
	return strings.Join(names, ",")
}

// FunctionType returns the structural type of m: a *FreeFunctionType if m
// is static, a *MemberFunctionType otherwise.
// The result is computed on each call and shares no state with m.
func (m *MemberCallable) FunctionType() FunctionType {
	args := make([]Type, len(m.args))
	for i := range m.args {
		args[i] = m.args[i].Type
	}
	if m.hasStatic {
		return &FreeFunctionType{
			Ret:  m.ret,
			Args: args,
		}
	}
	var cls *DeclaratedType
	if m.reg != nil && m.parent != NoDecl {
		cls = m.reg.Declarated(m.parent)
	}
	return &MemberFunctionType{
		Class:    cls,
		Ret:      m.ret,
		Args:     args,
		HasConst: m.hasConst,
	}
}

// CreateDeclString returns the spelling of the function type of m, with
// default template arguments or not.
func (m *MemberCallable) CreateDeclString(withDefaults bool) string {
	ft := m.FunctionType()
	if withDefaults {
		return ft.DeclString()
	}
	return ft.PartialDeclString()
}

var _ FunctionType = (*FreeFunctionType)(nil)
var _ FunctionType = (*MemberFunctionType)(nil)

// EOF
