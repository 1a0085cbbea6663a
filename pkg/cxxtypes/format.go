package cxxtypes

import (
	"strings"
)

// KindTag returns the lowercase, space separated class tag of m,
// e.g. "member function" or "copy constructor".
func (m *MemberCallable) KindTag() string {
	if m.IsCopyConstructor() {
		return "copy " + m.kind.String()
	}
	return m.kind.String()
}

// Signature returns the one-line signature of m:
//
//	<qualified-name>(<arg-types>)[ const][ static] [<kind>]
//
// e.g. "ns::Foo::get(int) const [member function]".
func (m *MemberCallable) Signature() string {
	var b strings.Builder
	b.WriteString(FullName(m))
	b.WriteString("(")
	for i := range m.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.args[i].Type.TypeName())
	}
	if m.ellipsis {
		if len(m.args) > 0 {
			b.WriteString(", ")
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
	b.WriteString(" [")
	b.WriteString(m.KindTag())
	b.WriteString("]")
	return b.String()
}

func (m *MemberCallable) String() string {
	return m.Signature()
}

// EOF
