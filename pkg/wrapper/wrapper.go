// Package wrapper runs the registered code generator plugins over the
// classes of a cxxtypes.Registry.
package wrapper

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-cxxdict/calldefs/pkg/cxxtypes"
)

// Plugin is the interface implemented by the code generators.
type Plugin interface {
	// Name returns the unique name of the plugin
	Name() string

	// Init is called once, before any call to Generate
	Init(g *Generator) error

	// Generate fills in the Files of the file descriptor
	Generate(fd *FileDescriptor) error
}

// the list of registered plugins
var g_plugins []Plugin

// RegisterPlugin installs a plugin for later use.
// returns an error if the same plugin is registered twice.
func RegisterPlugin(p Plugin) error {
	n := p.Name()
	for i := range g_plugins {
		if g_plugins[i].Name() == n {
			return fmt.Errorf("wrapper: plugin [%s] already registered", n)
		}
	}
	g_plugins = append(g_plugins, p)
	return nil
}

// FileDescriptor describes a wrapper-output
type FileDescriptor struct {
	// name of this file descriptor, usually the library
	// name (w/o prefix and suffix. ie: Foo, not libFoo.so)
	Name string

	// name of the package this file descriptor wraps
	Package string

	// name of the header containing the declarations for this library
	Header string

	// the declarations to wrap
	Registry *cxxtypes.Registry

	// Keep selects the classes to wrap. A nil Keep wraps every class.
	Keep func(s *cxxtypes.Scope) bool

	// the products of the wrapping, indexed by file name
	Files map[string][]byte
}

// Classes returns the record scopes (classes, structs and unions) to wrap,
// in declaration order.
func (fd *FileDescriptor) Classes() []*cxxtypes.Scope {
	if fd.Registry == nil {
		return nil
	}
	var classes []*cxxtypes.Scope
	for _, ref := range fd.Registry.Scopes() {
		s := fd.Registry.Scope(ref)
		if !s.Kind.IsRecord() {
			continue
		}
		if fd.Keep != nil && !fd.Keep(s) {
			continue
		}
		classes = append(classes, s)
	}
	return classes
}

// Generator is the type whose methods generate the output,
// stored in the associated file descriptor.
type Generator struct {
	plugins []Plugin
	Fd      FileDescriptor
}

// GenerateAllFiles generates the output for all the files we're outputting.
func (g *Generator) GenerateAllFiles() error {
	if g.Fd.Registry == nil {
		return fmt.Errorf("wrapper: no registry to wrap")
	}
	for _, p := range g_plugins {
		err := p.Init(g)
		if err != nil {
			return fmt.Errorf("wrapper: plugin [%s]: %w", p.Name(), err)
		}
		g.plugins = append(g.plugins, p)
	}

	for _, p := range g.plugins {
		err := p.Generate(&g.Fd)
		if err != nil {
			return fmt.Errorf("wrapper: plugin [%s]: %w", p.Name(), err)
		}
	}
	return nil
}

// Save writes the generated files under the directory dir.
func (g *Generator) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("wrapper: %w", err)
	}
	names := make([]string, 0, len(g.Fd.Files))
	for n := range g.Fd.Files {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		err := os.WriteFile(filepath.Join(dir, n), g.Fd.Files[n], 0o644)
		if err != nil {
			return fmt.Errorf("wrapper: %w", err)
		}
	}
	return nil
}

// Plugins returns the names of the active plugins
func (g *Generator) Plugins() []string {
	names := make([]string, 0, len(g.plugins))
	for _, p := range g.plugins {
		names = append(names, p.Name())
	}
	return names
}

// NewGenerator returns a generator wrapping the classes of reg.
func NewGenerator(reg *cxxtypes.Registry) *Generator {
	gen := &Generator{}
	gen.plugins = make([]Plugin, 0)
	gen.Fd.Registry = reg
	gen.Fd.Files = make(map[string][]byte)
	return gen
}

func init() {
	g_plugins = make([]Plugin, 0, 1)
}

// EOF
