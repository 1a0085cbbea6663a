// This file implements scopes and the declarations they contain.
//
// loosely modeled after go/ast/scope.go

package cxxtypes

import (
	"bytes"
	"fmt"
)

// DeclRef is a stable handle to a scope held by a Registry.
// Handles are never reused: two distinct declarations always have
// distinct handles, even when they share a name.
type DeclRef int

const (
	// NoDecl is the handle of no declaration.
	NoDecl DeclRef = -1

	// GlobalNs is the handle of the global namespace of every Registry.
	GlobalNs DeclRef = 0
)

// ScopeKind describes what a Scope represents.
type ScopeKind int

// The list of possible Scope kinds.
const (
	SK_Bad ScopeKind = iota // for error handling
	SK_Namespace
	SK_Class
	SK_Struct
	SK_Union
	SK_Enum
)

var scopeKindStrings = [...]string{
	SK_Bad:       "bad",
	SK_Namespace: "namespace",
	SK_Class:     "class",
	SK_Struct:    "struct",
	SK_Union:     "union",
	SK_Enum:      "enum",
}

func (kind ScopeKind) String() string { return scopeKindStrings[kind] }

// IsRecord returns whether kind is a class, a struct or a union.
func (kind ScopeKind) IsRecord() bool {
	return kind == SK_Class || kind == SK_Struct || kind == SK_Union
}

// Registry is an arena of scopes (namespaces, classes, structs, unions and
// enums). It owns the scopes, which in turn own their member callables.
type Registry struct {
	scopes []*Scope
	byName map[string]DeclRef
}

// NewRegistry creates a registry holding only the global namespace.
func NewRegistry() *Registry {
	const n = 16 // initial registry capacity
	r := &Registry{
		scopes: make([]*Scope, 0, n),
		byName: make(map[string]DeclRef, n),
	}
	r.scopes = append(r.scopes, &Scope{
		Kind:  SK_Namespace,
		Name:  "",
		Outer: NoDecl,
		ref:   GlobalNs,
		reg:   r,
	})
	r.byName["::"] = GlobalNs
	return r
}

// NewScope creates a new scope of the given kind nested in outer.
// partial is the name with default template arguments omitted; it may be
// empty when it is the same as name.
// NewScope returns an error if outer is not a valid handle or if a scope
// with the same qualified name already exists.
func (r *Registry) NewScope(kind ScopeKind, name, partial string, outer DeclRef) (DeclRef, error) {
	if !r.valid(outer) {
		return NoDecl, fmt.Errorf("cxxtypes: invalid outer scope handle %d for %q", outer, name)
	}
	if partial == "" {
		partial = name
	}
	ref := DeclRef(len(r.scopes))
	s := &Scope{
		Kind:    kind,
		Name:    name,
		Partial: partial,
		Outer:   outer,
		ref:     ref,
		reg:     r,
	}
	if kind.IsRecord() {
		s.access = make(map[*MemberCallable]AccessSpecifier)
	}
	fn := s.IdScopedName()
	if _, dup := r.byName[fn]; dup {
		return NoDecl, fmt.Errorf("cxxtypes: double declaration of %q", fn)
	}
	r.scopes = append(r.scopes, s)
	r.byName[fn] = ref
	return ref, nil
}

// NewNamespace is a shorthand for NewScope(SK_Namespace, name, "", outer).
func (r *Registry) NewNamespace(name string, outer DeclRef) (DeclRef, error) {
	return r.NewScope(SK_Namespace, name, "", outer)
}

// NewClass is a shorthand for NewScope(SK_Class, name, "", outer).
func (r *Registry) NewClass(name string, outer DeclRef) (DeclRef, error) {
	return r.NewScope(SK_Class, name, "", outer)
}

// Scope returns the scope with handle ref.
// It panics if ref is not a handle of r.
func (r *Registry) Scope(ref DeclRef) *Scope {
	if !r.valid(ref) {
		panic("cxxtypes: Scope handle out of range")
	}
	return r.scopes[ref]
}

// ScopeByName returns the handle of the scope with the given fully
// qualified name.
func (r *Registry) ScopeByName(n string) (DeclRef, bool) {
	ref, ok := r.byName[canonicalName(n)]
	return ref, ok
}

// Scopes returns the handles of all scopes, in declaration order.
func (r *Registry) Scopes() []DeclRef {
	refs := make([]DeclRef, len(r.scopes))
	for i := range r.scopes {
		refs[i] = DeclRef(i)
	}
	return refs
}

// Declarated returns a type-expression referring to the declaration ref.
func (r *Registry) Declarated(ref DeclRef) *DeclaratedType {
	s := r.Scope(ref)
	kind := TK_Record
	if s.Kind == SK_Enum {
		kind = TK_Enum
	}
	return &DeclaratedType{
		Decl:    ref,
		Name:    s.IdScopedName(),
		Partial: s.partialScopedName(),
		Kind:    kind,
		reg:     r,
	}
}

// AddMember inserts the member callable m into the record scope ref, with
// the given access, and points m back to that scope.
func (r *Registry) AddMember(ref DeclRef, m *MemberCallable, access AccessSpecifier) error {
	s := r.Scope(ref)
	if !s.Kind.IsRecord() {
		return fmt.Errorf("cxxtypes: cannot add member %q to %s %q", m.Name(), s.Kind, s.Name)
	}
	if m.reg != nil {
		return fmt.Errorf("cxxtypes: member %q already belongs to a scope", m.Name())
	}
	m.reg = r
	m.parent = ref
	s.members = append(s.members, m)
	s.access[m] = access
	return nil
}

func (r *Registry) valid(ref DeclRef) bool {
	return ref >= 0 && int(ref) < len(r.scopes)
}

// A Scope is a namespace, class, struct, union or enum declaration.
// It maintains the list of member callables declared in it, their access
// and a link to the immediately surrounding (outer) scope.
type Scope struct {
	Kind    ScopeKind
	Name    string  // declared name, e.g. "vector<int,std::allocator<int> >"
	Partial string  // declared name, default template arguments omitted
	Outer   DeclRef // enclosing scope, NoDecl for the global namespace

	ref     DeclRef
	reg     *Registry
	members []*MemberCallable
	access  map[*MemberCallable]AccessSpecifier
}

// Ref returns the handle of this scope in its registry.
func (s *Scope) Ref() DeclRef {
	return s.ref
}

func (s *Scope) IdName() string {
	return s.Name
}

func (s *Scope) IdScopedName() string {
	return s.scopedName(func(o *Scope) string { return o.Name })
}

func (s *Scope) partialScopedName() string {
	return s.scopedName(func(o *Scope) string { return o.Partial })
}

func (s *Scope) scopedName(name func(*Scope) string) string {
	if s.ref == GlobalNs {
		return "::"
	}
	outer := s.reg.scopes[s.Outer]
	if outer.ref == GlobalNs {
		return "::" + name(s)
	}
	return outer.scopedName(name) + "::" + name(s)
}

func (s *Scope) IdKind() IdKind {
	if s.Kind == SK_Namespace {
		return IK_Nsp
	}
	return IK_Typ
}

// NumMember returns a scope's member callable count
func (s *Scope) NumMember() int {
	return len(s.members)
}

// Member returns a scope's i'th member callable
// It panics if i is not in the range [0, NumMember())
func (s *Scope) Member(i int) *MemberCallable {
	if i < 0 || i >= len(s.members) {
		panic("cxxtypes: Member index out of range")
	}
	return s.members[i]
}

// Overloads returns the member callables named name, in declaration order.
func (s *Scope) Overloads(name string) []*MemberCallable {
	var mbrs []*MemberCallable
	for _, m := range s.members {
		if m.Name() == name {
			mbrs = append(mbrs, m)
		}
	}
	return mbrs
}

// MemberAccess returns the access level of the member callable m.
// It returns ErrNotMember if m was not declared in s.
func (s *Scope) MemberAccess(m *MemberCallable) (AccessSpecifier, error) {
	access, ok := s.access[m]
	if !ok {
		return AS_None, fmt.Errorf("cxxtypes: %q is not a member of %q: %w",
			m.Name(), FullName(s), ErrNotMember)
	}
	return access, nil
}

// SetMemberAccess changes the access level of the member callable m,
// e.g. after a using-declaration.
// It returns ErrNotMember if m was not declared in s.
func (s *Scope) SetMemberAccess(m *MemberCallable, access AccessSpecifier) error {
	if _, ok := s.access[m]; !ok {
		return fmt.Errorf("cxxtypes: %q is not a member of %q: %w",
			m.Name(), FullName(s), ErrNotMember)
	}
	s.access[m] = access
	return nil
}

// Debugging support
func (s *Scope) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s {", s.Kind, s.IdScopedName())
	if len(s.members) > 0 {
		fmt.Fprintln(&buf)
		for _, m := range s.members {
			fmt.Fprintf(&buf, "\t%s\n", m)
		}
	}
	fmt.Fprintf(&buf, "}\n")
	return buf.String()
}

// AccessSpecifier represents the C++ access control level to a base class or a class' member
type AccessSpecifier uintptr

const (
	AS_None AccessSpecifier = 0

	AS_Private AccessSpecifier = 1 << iota
	AS_Protected
	AS_Public
)

func (a AccessSpecifier) String() string {
	switch a {
	case AS_None:
		return "<none>"
	case AS_Private:
		return "private"
	case AS_Protected:
		return "protected"
	case AS_Public:
		return "public"
	}
	panic("unreachable")
}

// ParseAccess converts the textual form of an access specifier.
// The empty string maps to def.
func ParseAccess(s string, def AccessSpecifier) AccessSpecifier {
	switch s {
	case "public":
		return AS_Public
	case "protected":
		return AS_Protected
	case "private":
		return AS_Private
	}
	return def
}

var _ Id = (*Scope)(nil)

// EOF
