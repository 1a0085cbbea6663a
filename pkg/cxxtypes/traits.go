package cxxtypes

// IsCompound returns whether t directly wraps another type-expression.
// A typedef is not a compound type, even if it aliases one.
func IsCompound(t Type) bool {
	_, ok := t.(Compound)
	return ok
}

// IsReference returns whether t, once aliases are removed, is an
// lvalue reference.
func IsReference(t Type) bool {
	ref, ok := RemoveAlias(t).(*RefType)
	return ok && !ref.RValue
}

// IsRValueReference returns whether t, once aliases are removed, is an
// rvalue reference.
func IsRValueReference(t Type) bool {
	ref, ok := RemoveAlias(t).(*RefType)
	return ok && ref.RValue
}

// IsPointer returns whether t, once aliases and cv-qualifiers are removed,
// is a pointer.
func IsPointer(t Type) bool {
	t = RemoveAlias(t)
	if cv, ok := t.(*CvrQualType); ok {
		t = cv.Type
	}
	_, ok := t.(*PtrType)
	return ok
}

// IsConst returns whether t, once aliases are removed, is const-qualified.
// An array is const if its elements are.
func IsConst(t Type) bool {
	switch tt := RemoveAlias(t).(type) {
	case *CvrQualType:
		return (tt.Qual & TQ_Const) != 0
	case *ArrayType:
		return IsConst(tt.ArrElem)
	}
	return false
}

// IsVolatile returns whether t, once aliases are removed, is volatile-qualified.
func IsVolatile(t Type) bool {
	switch tt := RemoveAlias(t).(type) {
	case *CvrQualType:
		return (tt.Qual & TQ_Volatile) != 0
	case *ArrayType:
		return IsVolatile(tt.ArrElem)
	}
	return false
}

// RemoveAlias returns t with every typedef, at any depth, replaced by the
// type it aliases. Directly nested cv-qualifiers which the removal exposes
// are merged into a single CvrQualType.
// t is never modified: a new tree is built where needed.
func RemoveAlias(t Type) Type {
	switch tt := t.(type) {
	case nil:
		return nil
	case *TypedefType:
		return RemoveAlias(tt.Type)
	case *CvrQualType:
		base := RemoveAlias(tt.Type)
		if inner, ok := base.(*CvrQualType); ok {
			return &CvrQualType{Qual: tt.Qual | inner.Qual, Type: inner.Type}
		}
		if base == tt.Type {
			return tt
		}
		return &CvrQualType{Qual: tt.Qual, Type: base}
	case *PtrType:
		if base := RemoveAlias(tt.Type); base != tt.Type {
			return &PtrType{Type: base}
		}
		return tt
	case *RefType:
		if base := RemoveAlias(tt.Type); base != tt.Type {
			return &RefType{Type: base, RValue: tt.RValue}
		}
		return tt
	case *ArrayType:
		if elem := RemoveAlias(tt.ArrElem); elem != tt.ArrElem {
			return &ArrayType{ArrElem: elem, ArrLen: tt.ArrLen}
		}
		return tt
	}
	return t
}

// RemoveCV strips the outermost cv-qualifiers of t, if any.
func RemoveCV(t Type) Type {
	if cv, ok := t.(*CvrQualType); ok {
		return cv.Type
	}
	return t
}

// Identical reports whether x and y are the same type-expression.
// Declarated types are identical iff they refer to the same declaration
// handle; typedefs are compared by name and aliased type.
func Identical(x, y Type) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if x == y {
		return true
	}
	switch xx := x.(type) {
	case *FundamentalType:
		yy, ok := y.(*FundamentalType)
		return ok && xx.Kind == yy.Kind && xx.Name == yy.Name
	case *DeclaratedType:
		yy, ok := y.(*DeclaratedType)
		return ok && xx.reg == yy.reg && xx.Decl == yy.Decl
	case *TypedefType:
		yy, ok := y.(*TypedefType)
		return ok && xx.Name == yy.Name && Identical(xx.Type, yy.Type)
	case *CvrQualType:
		yy, ok := y.(*CvrQualType)
		return ok && xx.Qual == yy.Qual && Identical(xx.Type, yy.Type)
	case *PtrType:
		yy, ok := y.(*PtrType)
		return ok && Identical(xx.Type, yy.Type)
	case *RefType:
		yy, ok := y.(*RefType)
		return ok && xx.RValue == yy.RValue && Identical(xx.Type, yy.Type)
	case *ArrayType:
		yy, ok := y.(*ArrayType)
		return ok && xx.ArrLen == yy.ArrLen && Identical(xx.ArrElem, yy.ArrElem)
	case *FreeFunctionType:
		yy, ok := y.(*FreeFunctionType)
		return ok && Identical(xx.Ret, yy.Ret) && identicalList(xx.Args, yy.Args)
	case *MemberFunctionType:
		yy, ok := y.(*MemberFunctionType)
		if !ok || xx.HasConst != yy.HasConst {
			return false
		}
		if (xx.Class == nil) != (yy.Class == nil) {
			return false
		}
		if xx.Class != nil && !Identical(xx.Class, yy.Class) {
			return false
		}
		return Identical(xx.Ret, yy.Ret) && identicalList(xx.Args, yy.Args)
	}
	return false
}

func identicalList(x, y []Type) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Identical(x[i], y[i]) {
			return false
		}
	}
	return true
}

// EOF
