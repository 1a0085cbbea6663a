package cxxtypes

// IsCopyConstructor returns whether m is a copy constructor: a constructor
// taking exactly one argument, by reference to a const-qualified instance of
// the very class declaring m.
//
// The class is compared by declaration handle, not by name: a class of the
// same name declared in another scope does not match.
func (m *MemberCallable) IsCopyConstructor() bool {
	if m.kind != CK_Constructor {
		return false
	}

	// a copy constructor has only one argument
	if len(m.args) != 1 {
		return false
	}
	argType := m.args[0].Type

	// a typedef can not carry the copy-constructor semantics of the class,
	// even when it aliases a reference: only look at compound types.
	ref, ok := argType.(Compound)
	if !ok {
		return false
	}

	if !IsReference(argType) {
		return false
	}

	referent := ref.Base()
	if !IsConst(referent) {
		return false
	}

	// unaliased is still const-qualified
	unaliased, ok := RemoveAlias(referent).(*CvrQualType)
	if !ok {
		return false
	}

	// e.g. "Foo(const int&)"
	decl, ok := unaliased.Type.(*DeclaratedType)
	if !ok {
		return false
	}

	return m.reg != nil && decl.reg == m.reg && decl.Decl == m.parent
}

// EOF
