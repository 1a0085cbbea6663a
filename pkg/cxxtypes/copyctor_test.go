package cxxtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCopyConstructor(t *testing.T) {
	tr := newTestRegistry(t)
	reg := tr.reg
	foo := reg.Declarated(tr.foo)
	other := reg.Declarated(tr.other)
	intT := Builtin("int")

	arg := func(t Type) []Argument {
		return []Argument{NewArgument("o", t, "")}
	}

	for _, tc := range []struct {
		name string
		m    *MemberCallable
		want bool
	}{
		{
			name: "Foo(const Foo&)",
			m:    NewConstructor("Foo", arg(NewRefType(NewConstType(foo)))),
			want: true,
		},
		{
			name: "Foo(const volatile Foo&)",
			m:    NewConstructor("Foo", arg(NewRefType(NewQualType(foo, TQ_Const|TQ_Volatile)))),
			want: true,
		},
		{
			name: "Foo(const FooAlias&)",
			m:    NewConstructor("Foo", arg(NewRefType(NewConstType(NewTypedefType("::ns::FooAlias", foo))))),
			want: true,
		},
		{
			name: "Foo(CFoo&) with typedef const Foo CFoo",
			m:    NewConstructor("Foo", arg(NewRefType(NewTypedefType("::ns::CFoo", NewConstType(foo))))),
			want: true,
		},
		{
			name: "Foo()",
			m:    NewConstructor("Foo", nil),
		},
		{
			name: "Foo(const Foo&, int)",
			m: NewConstructor("Foo", []Argument{
				NewArgument("o", NewRefType(NewConstType(foo)), ""),
				NewArgument("n", intT, "0"),
			}),
		},
		{
			name: "Foo(Foo&)",
			m:    NewConstructor("Foo", arg(NewRefType(foo))),
		},
		{
			name: "Foo(const Foo)",
			m:    NewConstructor("Foo", arg(NewConstType(foo))),
		},
		{
			name: "Foo(const Foo*)",
			m:    NewConstructor("Foo", arg(NewPtrType(NewConstType(foo)))),
		},
		{
			name: "Foo(Foo)",
			m:    NewConstructor("Foo", arg(foo)),
		},
		{
			name: "Foo(const int&)",
			m:    NewConstructor("Foo", arg(NewRefType(NewConstType(intT)))),
		},
		{
			name: "Foo(const other::Foo&)",
			m:    NewConstructor("Foo", arg(NewRefType(NewConstType(other)))),
		},
		{
			name: "Foo(const Foo&&)",
			m:    NewConstructor("Foo", arg(NewRValueRefType(NewConstType(foo)))),
		},
		{
			name: "Foo(FooCRef) with typedef const Foo& FooCRef",
			m:    NewConstructor("Foo", arg(NewTypedefType("::ns::FooCRef", NewRefType(NewConstType(foo))))),
		},
		{
			name: "operator=(const Foo&)",
			m:    NewMemberOperator("operator=", arg(NewRefType(NewConstType(foo))), NewRefType(foo)),
		},
	} {
		require.NoError(t, reg.AddMember(tr.foo, tc.m, AS_Public), tc.name)
		assert.Equal(t, tc.want, tc.m.IsCopyConstructor(), tc.name)
	}
}

func TestIsCopyConstructorUnattached(t *testing.T) {
	tr := newTestRegistry(t)
	foo := tr.reg.Declarated(tr.foo)
	m := NewConstructor("Foo", []Argument{NewArgument("o", NewRefType(NewConstType(foo)), "")})
	assert.False(t, m.IsCopyConstructor(), "not a member of any class yet")

	// same handle, another registry
	reg2 := newTestRegistry(t)
	require.NoError(t, reg2.reg.AddMember(reg2.foo, m, AS_Public))
	assert.Equal(t, tr.foo, reg2.foo)
	assert.False(t, m.IsCopyConstructor())
}

// EOF
