package cxxtypes

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDistiller declares one class per line of its input.
type fakeDistiller struct{}

func (fakeDistiller) LoadDecls(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	reg := NewRegistry()
	for _, n := range strings.Fields(string(data)) {
		if _, err := reg.NewClass(n, GlobalNs); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func init() {
	RegisterDistiller("test.fake", fakeDistiller{})
}

func TestDistillers(t *testing.T) {
	assert.Contains(t, Distillers(), "test.fake")

	reg, err := DistillDecls("test.fake", strings.NewReader("A B"))
	require.NoError(t, err)
	_, ok := reg.ScopeByName("B")
	assert.True(t, ok)

	_, err = DistillDecls("test.fake", strings.NewReader("A A"))
	assert.Error(t, err)

	_, err = DistillDecls("no-such-distiller", strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrUnknownDistiller))

	assert.Panics(t, func() { RegisterDistiller("test.nil", nil) })
	assert.Panics(t, func() { RegisterDistiller("test.fake", fakeDistiller{}) })
}

func TestDeclRecords(t *testing.T) {
	tr := newTestRegistry(t)
	foo := tr.reg.Declarated(tr.foo)

	get := NewMemberFunction("get", nil, Builtin("int"))
	get.SetHasConst(true)
	require.NoError(t, get.SetVirtuality(VT_PureVirtual))
	require.NoError(t, tr.reg.AddMember(tr.foo, get, AS_Protected))

	cc := NewConstructor("Foo", []Argument{NewArgument("", NewRefType(NewConstType(foo)), "")})
	cc.SetExplicit(false)
	require.NoError(t, tr.reg.AddMember(tr.foo, cc, AS_Public))

	eq := NewMemberOperator("operator==", []Argument{NewArgument("", NewRefType(NewConstType(foo)), "")}, Builtin("bool"))
	require.NoError(t, tr.reg.AddMember(tr.foo, eq, AS_Public))

	def := NewConstructor("Bar", nil)
	require.NoError(t, tr.reg.AddMember(tr.bar, def, AS_Public))

	recs := DeclRecords(tr.reg, nil)
	require.Len(t, recs, 4)
	assert.Equal(t, DeclRecord{
		Name:              "get",
		Scope:             "ns::Foo",
		Kind:              "member function",
		Signature:         "ns::Foo::get() const [member function]",
		FunctionType:      "int ( ::ns::Foo::* )(  ) const",
		Access:            "protected",
		Virtuality:        "pure virtual",
		Const:             true,
		CallingConvention: "thiscall",
	}, recs[0])

	rec := NewDeclRecord(cc)
	assert.True(t, rec.CopyConstructor)
	assert.False(t, rec.Explicit)
	assert.False(t, rec.Trivial)
	assert.Equal(t, "==", NewDeclRecord(eq).Symbol)
	assert.True(t, NewDeclRecord(def).Trivial)

	recs = DeclRecords(tr.reg, func(s *Scope) bool { return s.Kind == SK_Struct })
	require.Len(t, recs, 1)
	assert.Equal(t, "Bar", recs[0].Scope)

	var buf bytes.Buffer
	require.NoError(t, SaveDecls(&buf, recs))
	var back []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, "Bar::Bar() [constructor]", back[0]["signature"])
	assert.Equal(t, true, back[0]["explicit"])
	_, ok := back[0]["symbol"]
	assert.False(t, ok)
}

// EOF
