package wrapper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-cxxdict/calldefs/pkg/cxxtypes"
)

type listPlugin struct {
	inits int
}

func (p *listPlugin) Name() string { return "list.plugin" }

func (p *listPlugin) Init(g *Generator) error {
	p.inits++
	return nil
}

func (p *listPlugin) Generate(fd *FileDescriptor) error {
	var out []byte
	for _, s := range fd.Classes() {
		out = append(out, cxxtypes.FullName(s)...)
		out = append(out, '\n')
	}
	fd.Files[fd.Name+".txt"] = out
	return nil
}

var testPlugin = &listPlugin{}

func init() {
	if err := RegisterPlugin(testPlugin); err != nil {
		panic(err)
	}
}

func newTestRegistry(t *testing.T) *cxxtypes.Registry {
	t.Helper()
	reg := cxxtypes.NewRegistry()
	ns, err := reg.NewNamespace("NS", cxxtypes.GlobalNs)
	require.NoError(t, err)
	_, err = reg.NewClass("Foo", ns)
	require.NoError(t, err)
	_, err = reg.NewScope(cxxtypes.SK_Struct, "Bar", "", cxxtypes.GlobalNs)
	require.NoError(t, err)
	_, err = reg.NewScope(cxxtypes.SK_Enum, "Color", "", cxxtypes.GlobalNs)
	require.NoError(t, err)
	return reg
}

func TestRegisterPluginTwice(t *testing.T) {
	err := RegisterPlugin(&listPlugin{})
	assert.ErrorContains(t, err, "already registered")
}

func TestClasses(t *testing.T) {
	fd := FileDescriptor{Registry: newTestRegistry(t)}
	var names []string
	for _, s := range fd.Classes() {
		names = append(names, cxxtypes.FullName(s))
	}
	assert.Equal(t, []string{"NS::Foo", "Bar"}, names)

	fd.Keep = func(s *cxxtypes.Scope) bool { return s.Kind == cxxtypes.SK_Struct }
	require.Len(t, fd.Classes(), 1)
	assert.Equal(t, "Bar", fd.Classes()[0].Name)

	assert.Empty(t, (&FileDescriptor{}).Classes())
}

func TestGenerateAndSave(t *testing.T) {
	gen := NewGenerator(newTestRegistry(t))
	gen.Fd.Name = "mylib"

	require.NoError(t, gen.GenerateAllFiles())
	assert.Equal(t, []string{"list.plugin"}, gen.Plugins())
	assert.Equal(t, "NS::Foo\nBar\n", string(gen.Fd.Files["mylib.txt"]))

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, gen.Save(dir))
	data, err := os.ReadFile(filepath.Join(dir, "mylib.txt"))
	require.NoError(t, err)
	assert.Equal(t, "NS::Foo\nBar\n", string(data))
}

func TestGenerateWithoutRegistry(t *testing.T) {
	gen := NewGenerator(nil)
	assert.Error(t, gen.GenerateAllFiles())
}

// EOF
