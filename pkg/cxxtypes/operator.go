package cxxtypes

import (
	"strings"
)

// operatorWordLen is the length of the "operator" keyword
const operatorWordLen = len("operator")

// OperatorSymbol returns the symbol of the operator named name,
// e.g. "+" for "operator+" or "new[]" for "operator new[]".
// name must start with "operator"; this is not checked.
func OperatorSymbol(name string) string {
	if len(name) < operatorWordLen {
		return ""
	}
	return strings.TrimSpace(name[operatorWordLen:])
}

// Operator gives access to the operator-specific properties of a member
// operator or of a casting operator.
type Operator struct {
	decl *MemberCallable
}

// Operator returns the operator view of m. ok is false when m is neither
// a member operator nor a casting operator.
func (m *MemberCallable) Operator() (op Operator, ok bool) {
	switch m.kind {
	case CK_MemberOperator, CK_CastingOperator:
		return Operator{decl: m}, true
	}
	return Operator{}, false
}

// Decl returns the operator declaration.
func (op Operator) Decl() *MemberCallable {
	return op.decl
}

// Symbol returns the operator's symbol. For a casting operator, it is
// the spelling of the target type.
func (op Operator) Symbol() string {
	return OperatorSymbol(op.decl.name)
}

// IsCasting returns whether the operator is a casting operator.
func (op Operator) IsCasting() bool {
	return op.decl.kind == CK_CastingOperator
}

// EOF
