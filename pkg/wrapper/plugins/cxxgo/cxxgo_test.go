package cxxgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-cxxdict/calldefs/pkg/cxxtypes"
	"github.com/go-cxxdict/calldefs/pkg/wrapper"
)

func newTestRegistry(t *testing.T) *cxxtypes.Registry {
	t.Helper()
	reg := cxxtypes.NewRegistry()
	ns, err := reg.NewNamespace("NS", cxxtypes.GlobalNs)
	require.NoError(t, err)
	foo, err := reg.NewClass("Foo", ns)
	require.NoError(t, err)

	add := func(m *cxxtypes.MemberCallable, access cxxtypes.AccessSpecifier) {
		require.NoError(t, reg.AddMember(foo, m, access))
	}

	add(cxxtypes.NewConstructor("Foo", nil), cxxtypes.AS_Public)

	get := cxxtypes.NewMemberFunction("get", nil, cxxtypes.Builtin("int"))
	get.SetHasConst(true)
	add(get, cxxtypes.AS_Public)

	add(cxxtypes.NewMemberFunction("set",
		[]cxxtypes.Argument{
			cxxtypes.NewArgument("type", cxxtypes.NewPtrType(cxxtypes.Builtin("double")), ""),
		},
		cxxtypes.Builtin("void"),
	), cxxtypes.AS_Public)

	add(cxxtypes.NewMemberFunction("set",
		[]cxxtypes.Argument{
			cxxtypes.NewArgument("", cxxtypes.Builtin("float"), ""),
		},
		nil,
	), cxxtypes.AS_Public)

	add(cxxtypes.NewMemberFunction("clone", nil,
		cxxtypes.NewPtrType(reg.Declarated(foo)),
	), cxxtypes.AS_Public)

	mk := cxxtypes.NewMemberFunction("make", nil, nil)
	mk.SetHasStatic(true)
	add(mk, cxxtypes.AS_Public)

	add(cxxtypes.NewMemberFunction("hidden", nil, nil), cxxtypes.AS_Private)
	add(cxxtypes.NewMemberOperator("operator==",
		[]cxxtypes.Argument{
			cxxtypes.NewArgument("rhs", cxxtypes.NewRefType(cxxtypes.NewConstType(reg.Declarated(foo))), ""),
		},
		cxxtypes.Builtin("bool"),
	), cxxtypes.AS_Public)
	return reg
}

func TestGenerate(t *testing.T) {
	gen := wrapper.NewGenerator(newTestRegistry(t))
	gen.Fd.Name = "mylib"
	gen.Fd.Package = "mylib"
	gen.Fd.Header = "mylib.hh"

	require.NoError(t, gen.GenerateAllFiles())
	assert.Contains(t, gen.Plugins(), "cxxgo.plugin")

	out, ok := gen.Fd.Files["mylib_cxxgo.go"]
	require.True(t, ok)
	src := string(out)

	assert.Contains(t, src, "package mylib")
	assert.Contains(t, src, "DO NOT EDIT")
	assert.Contains(t, src, "type NS_Foo interface {")
	assert.Contains(t, src, "// NS::Foo::get() const [member function]")
	assert.Contains(t, src, "Get() int32")
	assert.Contains(t, src, "Set(type_ *float64)")
	assert.Contains(t, src, "Set1(arg0 float32)")
	assert.Contains(t, src, "Clone() NS_Foo")

	assert.NotContains(t, src, "Make")
	assert.NotContains(t, src, "Hidden")
	assert.NotContains(t, src, "Foo()")
}

func TestGenerateFiltered(t *testing.T) {
	gen := wrapper.NewGenerator(newTestRegistry(t))
	gen.Fd.Package = "empty"
	gen.Fd.Keep = func(s *cxxtypes.Scope) bool { return false }

	require.NoError(t, gen.GenerateAllFiles())
	src := string(gen.Fd.Files["empty_cxxgo.go"])
	assert.Contains(t, src, "package empty")
	assert.NotContains(t, src, "interface")
}

func TestGoIdent(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"Foo", "Foo"},
		{"NS::Foo", "NS_Foo"},
		{"std::vector<int,std::allocator<int> >", "std_vector_int_std_allocator_int"},
		{"conv<int>", "conv_int"},
		{"2d", "_2d"},
	} {
		assert.Equal(t, tc.want, goIdent(tc.in), "input=%q", tc.in)
	}
}

func TestTypeName(t *testing.T) {
	used := make(map[string]bool)
	assert.Equal(t, "A_B", typeName("A_B", used))
	assert.Equal(t, "A_B1", typeName("A::B", used))
	assert.Equal(t, "A_B2", typeName("A<B>", used))
	assert.Equal(t, "range_", typeName("range", used))
	assert.Equal(t, "type_", typeName("type", used))
	assert.Equal(t, "_", typeName("<>", used))
}

func TestGenerateClashingNames(t *testing.T) {
	reg := cxxtypes.NewRegistry()
	ns, err := reg.NewNamespace("A", cxxtypes.GlobalNs)
	require.NoError(t, err)
	for _, c := range []struct {
		name  string
		outer cxxtypes.DeclRef
	}{
		{"A_B", cxxtypes.GlobalNs},
		{"B", ns},
		{"range", cxxtypes.GlobalNs},
	} {
		ref, err := reg.NewClass(c.name, c.outer)
		require.NoError(t, err)
		require.NoError(t, reg.AddMember(ref,
			cxxtypes.NewMemberFunction("size", nil, cxxtypes.Builtin("int")),
			cxxtypes.AS_Public,
		))
	}

	gen := wrapper.NewGenerator(reg)
	gen.Fd.Package = "x"
	require.NoError(t, gen.GenerateAllFiles())
	src := string(gen.Fd.Files["x_cxxgo.go"])

	assert.Equal(t, 1, strings.Count(src, "type A_B interface {"))
	assert.Contains(t, src, "type A_B1 interface {")
	assert.Contains(t, src, "type range_ interface {")
}

func TestMethodAndArgNames(t *testing.T) {
	used := make(map[string]int)
	assert.Equal(t, "Get", methodName("get", used))
	assert.Equal(t, "Get1", methodName("get", used))
	assert.Equal(t, "Get2", methodName("Get", used))

	assert.Equal(t, "arg3", argName("", 3))
	assert.Equal(t, "range_", argName("range", 0))
	assert.Equal(t, "x", argName("x", 0))
}

// EOF
