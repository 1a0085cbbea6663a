package cxxtypes

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// CallableKind tells which kind of class-member callable a MemberCallable is.
// The zero CallableKind is not a valid kind.
type CallableKind uint8

const (
	CK_Invalid CallableKind = iota
	CK_MemberFunction
	CK_Constructor
	CK_Destructor
	CK_MemberOperator
	CK_CastingOperator
)

var ckNames = [...]string{
	CK_Invalid:         "invalid",
	CK_MemberFunction:  "member function",
	CK_Constructor:     "constructor",
	CK_Destructor:      "destructor",
	CK_MemberOperator:  "member operator",
	CK_CastingOperator: "casting operator",
}

// String returns the lowercase, space separated name of the kind,
// e.g. "member function".
func (ck CallableKind) String() string {
	if int(ck) < len(ckNames) {
		return ckNames[ck]
	}
	return ckNames[CK_Invalid]
}

// Virtuality describes whether a member callable is non-virtual, virtual
// or pure virtual.
type Virtuality uint8

const (
	VT_NotVirtual Virtuality = iota
	VT_Virtual
	VT_PureVirtual
)

// IsValid returns whether v is one of VT_NotVirtual, VT_Virtual or VT_PureVirtual.
func (v Virtuality) IsValid() bool {
	return v <= VT_PureVirtual
}

func (v Virtuality) String() string {
	switch v {
	case VT_NotVirtual:
		return "not virtual"
	case VT_Virtual:
		return "virtual"
	case VT_PureVirtual:
		return "pure virtual"
	}
	return fmt.Sprintf("Virtuality(%d)", uint8(v))
}

// ParseVirtuality converts the textual form of a virtuality
// ("not virtual", "virtual" or "pure virtual").
func ParseVirtuality(s string) (Virtuality, error) {
	switch strings.TrimSpace(s) {
	case "not virtual":
		return VT_NotVirtual, nil
	case "virtual":
		return VT_Virtual, nil
	case "pure virtual":
		return VT_PureVirtual, nil
	}
	return VT_NotVirtual, fmt.Errorf("cxxtypes: virtuality %q: %w", s, ErrInvalidArgument)
}

// CallingConvention is the calling convention of a callable.
type CallingConvention uint8

const (
	CC_Unknown CallingConvention = iota
	CC_Cdecl
	CC_Stdcall
	CC_Thiscall
	CC_Fastcall
	CC_SystemDefault
)

func (cc CallingConvention) String() string {
	switch cc {
	case CC_Cdecl:
		return "cdecl"
	case CC_Stdcall:
		return "stdcall"
	case CC_Thiscall:
		return "thiscall"
	case CC_Fastcall:
		return "fastcall"
	case CC_SystemDefault:
		return "<<<system default>>>"
	}
	return ""
}

// callingConventionFromAttributes extracts an explicit calling convention
// from the attributes recorded by the extractor, e.g. "__thiscall__".
func callingConventionFromAttributes(attrs string) CallingConvention {
	for _, attr := range strings.Fields(attrs) {
		switch strings.Trim(attr, "_") {
		case "cdecl":
			return CC_Cdecl
		case "stdcall":
			return CC_Stdcall
		case "thiscall":
			return CC_Thiscall
		case "fastcall":
			return CC_Fastcall
		}
	}
	return CC_Unknown
}

// NewArgument creates a new argument of a callable.
func NewArgument(name string, t Type, defval string) Argument {
	return Argument{
		Name:    name,
		Type:    t,
		Default: defval,
	}
}

// Argument represents an argument of a callable's signature
type Argument struct {
	Name    string // name of the argument, possibly empty
	Type    Type   // declared type of the argument
	Default string // spelling of the default value, empty if none
}

// HasDefaultValue returns whether this argument has a default value
func (a *Argument) HasDefaultValue() bool {
	return a.Default != ""
}

func (a Argument) String() string {
	s := a.Type.TypeName()
	if a.Name != "" {
		s += " " + a.Name
	}
	if a.Default != "" {
		s += "=" + a.Default
	}
	return s
}

func (a *Argument) equal(o *Argument) bool {
	return a.Name == o.Name && a.Default == o.Default && Identical(a.Type, o.Type)
}

// MemberCallable is a callable declared within a C++ class or struct:
// a member function, a constructor, a destructor, a member operator or
// a casting operator. The Kind tells them apart; Explicit only applies
// to constructors.
//
// Qualifiers may be set while the declaration is being built. Once it is
// handed to consumers, it must be treated as read-only.
type MemberCallable struct {
	kind     CallableKind
	name     string
	args     []Argument
	ret      Type // nil for constructors and destructors
	ellipsis bool

	virtuality Virtuality
	hasConst   bool
	hasStatic  bool
	explicit   bool

	// Attributes holds the raw attributes recorded by the extractor,
	// e.g. "__thiscall__ deprecated".
	Attributes string

	parent DeclRef
	reg    *Registry // arena owning the parent scope; not an owner of m
}

func newMemberCallable(kind CallableKind, name string, args []Argument, ret Type) *MemberCallable {
	m := &MemberCallable{
		kind:   kind,
		name:   name,
		args:   make([]Argument, len(args)),
		ret:    ret,
		parent: NoDecl,
	}
	copy(m.args, args)
	return m
}

// NewMemberFunction creates a new member function.
func NewMemberFunction(name string, args []Argument, ret Type) *MemberCallable {
	return newMemberCallable(CK_MemberFunction, name, args, ret)
}

// NewConstructor creates a new constructor. Constructors are explicit
// until told otherwise.
func NewConstructor(name string, args []Argument) *MemberCallable {
	m := newMemberCallable(CK_Constructor, name, args, nil)
	m.explicit = true
	return m
}

// NewDestructor creates a new destructor.
func NewDestructor(name string) *MemberCallable {
	return newMemberCallable(CK_Destructor, name, nil, nil)
}

// NewMemberOperator creates a new member operator. name must start
// with "operator", e.g. "operator==".
func NewMemberOperator(name string, args []Argument, ret Type) *MemberCallable {
	return newMemberCallable(CK_MemberOperator, name, args, ret)
}

// NewCastingOperator creates a new casting operator. name must start
// with "operator", e.g. "operator int".
func NewCastingOperator(name string, ret Type) *MemberCallable {
	return newMemberCallable(CK_CastingOperator, name, nil, ret)
}

// Kind returns the kind of this member callable.
func (m *MemberCallable) Kind() CallableKind {
	return m.kind
}

// Name returns the declared name, e.g. "operator==" or "~Foo".
func (m *MemberCallable) Name() string {
	return m.name
}

// NumArgument returns the number of declared arguments.
func (m *MemberCallable) NumArgument() int {
	return len(m.args)
}

// Argument returns the i'th argument.
// It panics if i is not in the range [0, NumArgument())
func (m *MemberCallable) Argument(i int) *Argument {
	if i < 0 || i >= len(m.args) {
		panic("cxxtypes: Argument index out of range")
	}
	return &m.args[i]
}

// Arguments returns a copy of the declared arguments.
func (m *MemberCallable) Arguments() []Argument {
	args := make([]Argument, len(m.args))
	copy(args, m.args)
	return args
}

// RequiredArgs returns the arguments without a default value.
func (m *MemberCallable) RequiredArgs() []Argument {
	n := 0
	for n < len(m.args) && !m.args[n].HasDefaultValue() {
		n++
	}
	return m.args[:n:n]
}

// OptionalArgs returns the arguments with a default value.
func (m *MemberCallable) OptionalArgs() []Argument {
	return m.args[len(m.RequiredArgs()):]
}

// ReturnType returns the declared return type, nil if there is none.
func (m *MemberCallable) ReturnType() Type {
	return m.ret
}

// HasEllipsis returns whether the callable is variadic.
func (m *MemberCallable) HasEllipsis() bool {
	return m.ellipsis
}

// SetEllipsis sets whether the callable is variadic.
func (m *MemberCallable) SetEllipsis(v bool) {
	m.ellipsis = v
}

// Virtuality returns the virtuality of the member.
func (m *MemberCallable) Virtuality() Virtuality {
	return m.virtuality
}

// SetVirtuality sets the virtuality of the member. It fails with
// ErrInvalidArgument, leaving the previous value in place, if v is not
// one of VT_NotVirtual, VT_Virtual or VT_PureVirtual.
func (m *MemberCallable) SetVirtuality(v Virtuality) error {
	if !v.IsValid() {
		return fmt.Errorf("cxxtypes: virtuality %d of %q: %w", uint8(v), m.name, ErrInvalidArgument)
	}
	m.virtuality = v
	return nil
}

// HasConst returns whether the callable has the const modifier.
func (m *MemberCallable) HasConst() bool {
	return m.hasConst
}

// SetHasConst sets whether the callable has the const modifier.
func (m *MemberCallable) SetHasConst(v bool) {
	m.hasConst = v
}

// HasStatic returns whether the callable has the static modifier.
func (m *MemberCallable) HasStatic() bool {
	return m.hasStatic
}

// SetHasStatic sets whether the callable has the static modifier.
func (m *MemberCallable) SetHasStatic(v bool) {
	m.hasStatic = v
}

// Explicit returns whether a constructor has the "explicit" keyword.
// It is always false for other kinds.
func (m *MemberCallable) Explicit() bool {
	return m.kind == CK_Constructor && m.explicit
}

// SetExplicit sets whether a constructor has the "explicit" keyword.
func (m *MemberCallable) SetExplicit(v bool) {
	m.explicit = v
}

// SetExplicitString sets the "explicit" keyword from its dump form:
// "1" means explicit, anything else does not.
func (m *MemberCallable) SetExplicitString(v string) {
	m.explicit = v == "1"
}

// Parent returns the handle of the owning class, NoDecl if m was not
// added to a scope yet.
func (m *MemberCallable) Parent() DeclRef {
	return m.parent
}

// Registry returns the registry holding the owning class, nil if m was
// not added to a scope yet.
func (m *MemberCallable) Registry() *Registry {
	return m.reg
}

// parentScope returns the owning scope, or nil.
func (m *MemberCallable) parentScope() *Scope {
	if m.reg == nil || m.parent == NoDecl {
		return nil
	}
	return m.reg.Scope(m.parent)
}

// AccessType returns the access level of the member, as currently recorded
// by its owning scope.
func (m *MemberCallable) AccessType() (AccessSpecifier, error) {
	s := m.parentScope()
	if s == nil {
		return AS_None, fmt.Errorf("cxxtypes: %q has no owning scope: %w", m.name, ErrNotMember)
	}
	return s.MemberAccess(m)
}

// GuessCallingConvention returns the platform default convention for
// static members and the this-pointer-passing convention otherwise.
// This is a heuristic: it ignores any convention recorded in Attributes.
// Use CallingConvention to honour them.
func (m *MemberCallable) GuessCallingConvention() CallingConvention {
	if m.hasStatic {
		return CC_SystemDefault
	}
	return CC_Thiscall
}

// CallingConvention returns the calling convention recorded in Attributes,
// falling back to GuessCallingConvention.
func (m *MemberCallable) CallingConvention() CallingConvention {
	if cc := callingConventionFromAttributes(m.Attributes); cc != CC_Unknown {
		return cc
	}
	return m.GuessCallingConvention()
}

// IsTrivialConstructor returns whether m is a constructor without arguments.
func (m *MemberCallable) IsTrivialConstructor() bool {
	return m.kind == CK_Constructor && len(m.args) == 0
}

func (m *MemberCallable) IdName() string {
	return m.name
}

func (m *MemberCallable) IdScopedName() string {
	s := m.parentScope()
	if s == nil {
		return m.name
	}
	return s.IdScopedName() + "::" + m.name
}

func (m *MemberCallable) IdKind() IdKind {
	return IK_Fct
}

// Equal reports whether m and o declare the same callable: same kind,
// name, arguments, return type and owning scope, and same virtuality,
// static and const qualifiers.
func (m *MemberCallable) Equal(o *MemberCallable) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil {
		return false
	}
	if !m.baseEqual(o) {
		return false
	}
	return m.virtuality == o.virtuality &&
		m.hasStatic == o.hasStatic &&
		m.hasConst == o.hasConst
}

func (m *MemberCallable) baseEqual(o *MemberCallable) bool {
	if m.kind != o.kind || m.name != o.name || m.ellipsis != o.ellipsis {
		return false
	}
	if m.reg != o.reg || m.parent != o.parent {
		return false
	}
	if !Identical(m.ret, o.ret) || len(m.args) != len(o.args) {
		return false
	}
	for i := range m.args {
		if !m.args[i].equal(&o.args[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash of m, consistent with Equal.
func (m *MemberCallable) Hash() uint64 {
	h := xxhash.New()
	m.writeBase(h)
	var q [3]byte
	q[0] = byte(m.virtuality)
	if m.hasStatic {
		q[1] = 1
	}
	if m.hasConst {
		q[2] = 1
	}
	h.Write(q[:])
	return h.Sum64()
}

func (m *MemberCallable) writeBase(h *xxhash.Digest) {
	fmt.Fprintf(h, "%d|%s|%d|%t|", m.kind, m.name, m.parent, m.ellipsis)
	writeType(h, m.ret)
	for i := range m.args {
		a := &m.args[i]
		h.WriteString("|")
		writeType(h, a.Type)
		fmt.Fprintf(h, " %s=%s", a.Name, a.Default)
	}
	h.WriteString("\x00")
}

// writeType feeds h with what Identical compares of t: declarations are
// hashed by handle, not by name.
func writeType(h *xxhash.Digest, t Type) {
	switch tt := t.(type) {
	case nil:
		h.WriteString("<nil>")
	case *DeclaratedType:
		fmt.Fprintf(h, "decl(%d)", tt.Decl)
	case *TypedefType:
		fmt.Fprintf(h, "typedef(%s,", tt.Name)
		writeType(h, tt.Type)
		h.WriteString(")")
	case *CvrQualType:
		fmt.Fprintf(h, "cv(%d,", tt.Qual)
		writeType(h, tt.Type)
		h.WriteString(")")
	case *PtrType:
		h.WriteString("ptr(")
		writeType(h, tt.Type)
		h.WriteString(")")
	case *RefType:
		fmt.Fprintf(h, "ref(%t,", tt.RValue)
		writeType(h, tt.Type)
		h.WriteString(")")
	case *ArrayType:
		fmt.Fprintf(h, "array(%d,", tt.ArrLen)
		writeType(h, tt.ArrElem)
		h.WriteString(")")
	case *FreeFunctionType:
		h.WriteString("fct(")
		writeTypes(h, tt.Ret, tt.Args)
		h.WriteString(")")
	case *MemberFunctionType:
		fmt.Fprintf(h, "mfct(%t,", tt.HasConst)
		if tt.Class != nil {
			writeType(h, tt.Class)
		}
		h.WriteString(",")
		writeTypes(h, tt.Ret, tt.Args)
		h.WriteString(")")
	default:
		h.WriteString(t.TypeName())
	}
}

func writeTypes(h *xxhash.Digest, ret Type, args []Type) {
	writeType(h, ret)
	for _, a := range args {
		h.WriteString(",")
		writeType(h, a)
	}
}

// OverloadKey returns the key distinguishing m among same-named callables
// of its class: name, argument types, const and static qualifiers.
func (m *MemberCallable) OverloadKey() string {
	var b strings.Builder
	b.WriteString(m.name)
	b.WriteString("(")
	for i := range m.args {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(m.args[i].Type.TypeName())
	}
	if m.ellipsis {
		if len(m.args) > 0 {
			b.WriteString(",")
		}
		b.WriteString("...")
	}
	b.WriteString(")")
	if m.hasConst {
		b.WriteString(" const")
	}
	if m.hasStatic {
		b.WriteString(" static")
	}
	return b.String()
}

var _ Id = (*MemberCallable)(nil)

// EOF
