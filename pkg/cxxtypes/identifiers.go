package cxxtypes

import (
	"sort"
	"strings"
)

// Id is a C/C++ identifier
type Id interface {
	// IdName returns the name of this identifier
	// e.g. my_fct
	//      MyClass
	//      vector<int>
	//      operator==
	IdName() string

	// IdScopedName returns the scoped name of this identifier
	// e.g. some_namespace::my_fct
	//      SomeOtherNamespace::MyClass
	//      std::vector<int>
	//      MyClass::operator==
	IdScopedName() string

	// IdKind returns the kind of this identifier
	//  IK_Var | IK_Typ | IK_Fct | IK_Nsp
	IdKind() IdKind
}

// IdKind represents the specific kind of identifier an Id represents.
// The zero IdKind is not a valid kind.
type IdKind uint

const (
	IK_Invalid IdKind = iota

	IK_Var // a variable
	IK_Typ // a type (class, struct, union, enum)
	IK_Fct // a member function, constructor, destructor, operator, ...
	IK_Nsp // a namespace
)

var ikNames = [...]string{
	IK_Invalid: "invalid",
	IK_Var:     "var",
	IK_Typ:     "type",
	IK_Fct:     "func",
	IK_Nsp:     "namespace",
}

func (ik IdKind) String() string {
	if int(ik) < len(ikNames) {
		return ikNames[ik]
	}
	return "invalid"
}

// FullName returns the fully qualified name of id, with the leading "::"
// of the global namespace stripped.
func FullName(id Id) string {
	return strings.TrimPrefix(id.IdScopedName(), "::")
}

// IdByName retrieves an identifier by its fully qualified name.
// A leading "::" is optional.
// Returns nil if no such identifier exists.
// Member callables are looked up through their class; for overloaded
// names, the first declared overload is returned.
func (r *Registry) IdByName(n string) Id {
	n = canonicalName(n)
	if ref, ok := r.byName[n]; ok {
		return r.scopes[ref]
	}
	idx := strings.LastIndex(n, "::")
	if idx <= 0 {
		return nil
	}
	ref, ok := r.byName[n[:idx]]
	if !ok {
		return nil
	}
	mbrs := r.scopes[ref].Overloads(n[idx+2:])
	if len(mbrs) == 0 {
		return nil
	}
	return mbrs[0]
}

// IdNames returns the sorted list of scope names currently defined.
func (r *Registry) IdNames() []string {
	names := make([]string, 0, len(r.byName))
	for k := range r.byName {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NumId returns the number of currently defined scopes, the global
// namespace included.
func (r *Registry) NumId() int {
	return len(r.scopes)
}

func canonicalName(n string) string {
	n = strings.TrimSpace(n)
	if !strings.HasPrefix(n, "::") {
		n = "::" + n
	}
	return n
}

// EOF
