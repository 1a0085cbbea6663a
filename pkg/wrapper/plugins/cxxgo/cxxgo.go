// Package cxxgo is a wrapper plugin declaring, for each wrapped C++ class,
// a Go interface with its public non-static member functions.
package cxxgo

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/go-cxxdict/calldefs/pkg/cxxtypes"
	"github.com/go-cxxdict/calldefs/pkg/wrapper"
)

type plugin struct {
	gen *wrapper.Generator // the generator which is invoking us
}

func (p *plugin) Name() string {
	return "cxxgo.plugin"
}

func (p *plugin) Init(g *wrapper.Generator) error {
	p.gen = g
	return nil
}

func (p *plugin) Generate(fd *wrapper.FileDescriptor) error {
	pkg := fd.Package
	if pkg == "" {
		pkg = goIdent(fd.Name)
	}
	if pkg == "" {
		return fmt.Errorf("cxxgo: no package name")
	}

	classes := fd.Classes()
	tm := &typemap{wrapped: make(map[cxxtypes.DeclRef]string, len(classes))}
	used := make(map[string]bool, len(classes))
	for _, s := range classes {
		tm.wrapped[s.Ref()] = typeName(cxxtypes.FullName(s), used)
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by go-gencxxwrapper. DO NOT EDIT.")
	if fd.Header != "" {
		f.HeaderComment("Declarations from " + fd.Header)
	}

	for _, s := range classes {
		name := tm.wrapped[s.Ref()]
		f.Commentf("%s wraps the C++ %s %s.", name, s.Kind, cxxtypes.FullName(s))
		f.Type().Id(name).InterfaceFunc(func(g *jen.Group) {
			used := make(map[string]int)
			for i := 0; i < s.NumMember(); i++ {
				m := s.Member(i)
				if !exported(m) {
					continue
				}
				g.Comment(m.Signature())
				g.Id(methodName(m.Name(), used)).
					ParamsFunc(func(g *jen.Group) {
						for j := 0; j < m.NumArgument(); j++ {
							arg := m.Argument(j)
							g.Id(argName(arg.Name, j)).Add(tm.goType(arg.Type))
						}
						if m.HasEllipsis() {
							g.Id("args").Op("...").Interface()
						}
					}).
					Add(tm.result(m.ReturnType()))
			}
		})
		f.Line()
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("cxxgo: could not render %q: %w", fd.Name, err)
	}
	fd.Files[fileName(fd)] = buf.Bytes()
	return nil
}

// exported returns whether m is a member function of the Go interface.
func exported(m *cxxtypes.MemberCallable) bool {
	if m.Kind() != cxxtypes.CK_MemberFunction || m.HasStatic() {
		return false
	}
	access, err := m.AccessType()
	return err == nil && access == cxxtypes.AS_Public
}

func fileName(fd *wrapper.FileDescriptor) string {
	n := fd.Name
	if n == "" {
		n = fd.Package
	}
	return strings.ToLower(goIdent(n)) + "_cxxgo.go"
}

// typemap converts C++ type-expressions into Go types.
type typemap struct {
	wrapped map[cxxtypes.DeclRef]string // class handle -> Go interface name
}

var g_builtins = map[cxxtypes.TypeKind]string{
	cxxtypes.TK_Bool:       "bool",
	cxxtypes.TK_Char_S:     "int8",
	cxxtypes.TK_SChar:      "int8",
	cxxtypes.TK_Char_U:     "uint8",
	cxxtypes.TK_UChar:      "uint8",
	cxxtypes.TK_WChar:      "rune",
	cxxtypes.TK_Char16:     "uint16",
	cxxtypes.TK_Char32:     "rune",
	cxxtypes.TK_Short:      "int16",
	cxxtypes.TK_UShort:     "uint16",
	cxxtypes.TK_Int:        "int32",
	cxxtypes.TK_UInt:       "uint32",
	cxxtypes.TK_Long:       "int64",
	cxxtypes.TK_ULong:      "uint64",
	cxxtypes.TK_LongLong:   "int64",
	cxxtypes.TK_ULongLong:  "uint64",
	cxxtypes.TK_Float:      "float32",
	cxxtypes.TK_Double:     "float64",
	cxxtypes.TK_LongDouble: "float64",
	cxxtypes.TK_Complex:    "complex128",
}

func (tm *typemap) result(t cxxtypes.Type) jen.Code {
	if t == nil {
		return jen.Null()
	}
	if ft, ok := cxxtypes.RemoveAlias(t).(*cxxtypes.FundamentalType); ok && ft.Kind == cxxtypes.TK_Void {
		return jen.Null()
	}
	return tm.goType(t)
}

func (tm *typemap) goType(t cxxtypes.Type) *jen.Statement {
	switch tt := cxxtypes.RemoveAlias(t).(type) {
	case *cxxtypes.FundamentalType:
		if n, ok := g_builtins[tt.Kind]; ok {
			return jen.Id(n)
		}
	case *cxxtypes.CvrQualType:
		return tm.goType(tt.Type)
	case *cxxtypes.PtrType:
		return tm.indirect(tt.Type)
	case *cxxtypes.RefType:
		if cxxtypes.IsConst(tt.Type) {
			return tm.goType(tt.Type)
		}
		return tm.indirect(tt.Type)
	case *cxxtypes.ArrayType:
		return jen.Index(jen.Lit(int(tt.Len()))).Add(tm.goType(tt.Elem()))
	case *cxxtypes.DeclaratedType:
		if tt.Kind == cxxtypes.TK_Enum {
			return jen.Int()
		}
		if n, ok := tm.wrapped[tt.Decl]; ok {
			return jen.Id(n)
		}
	}
	return jen.Qual("unsafe", "Pointer")
}

// indirect returns the Go type of a pointer (or reference) to t.
func (tm *typemap) indirect(t cxxtypes.Type) *jen.Statement {
	switch tt := cxxtypes.RemoveCV(cxxtypes.RemoveAlias(t)).(type) {
	case *cxxtypes.FundamentalType:
		if _, ok := g_builtins[tt.Kind]; ok {
			return jen.Op("*").Add(tm.goType(tt))
		}
	case *cxxtypes.DeclaratedType:
		// wrapped classes are interfaces: no pointer needed
		if _, ok := tm.wrapped[tt.Decl]; ok && tt.Kind != cxxtypes.TK_Enum {
			return tm.goType(tt)
		}
		if tt.Kind == cxxtypes.TK_Enum {
			return jen.Op("*").Int()
		}
	}
	return jen.Qual("unsafe", "Pointer")
}

// goIdent turns a C++ qualified name into a Go identifier:
// "std::vector<int>" becomes "std_vector_int".
func goIdent(n string) string {
	var b strings.Builder
	sep := false
	for _, r := range n {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
			continue
		}
		sep = true
	}
	id := b.String()
	if r, _ := utf8.DecodeRuneInString(id); unicode.IsDigit(r) {
		id = "_" + id
	}
	return id
}

// typeName returns the Go name of the interface wrapping the class n, made
// unique among the names already used.
func typeName(n string, used map[string]bool) string {
	id := goIdent(n)
	if id == "" || token.IsKeyword(id) {
		id += "_"
	}
	name := id
	for i := 1; used[name]; i++ {
		name = fmt.Sprintf("%s%d", id, i)
	}
	used[name] = true
	return name
}

// methodName returns the exported Go name of a member function, made
// unique among the names already used.
func methodName(n string, used map[string]int) string {
	id := goIdent(n)
	r, size := utf8.DecodeRuneInString(id)
	id = string(unicode.ToUpper(r)) + id[size:]
	cnt := used[id]
	used[id] = cnt + 1
	if cnt > 0 {
		id = fmt.Sprintf("%s%d", id, cnt)
	}
	return id
}

// argName returns a valid Go name for the i'th argument of a callable.
func argName(n string, i int) string {
	id := goIdent(n)
	switch {
	case id == "" || id == "_":
		return fmt.Sprintf("arg%d", i)
	case token.IsKeyword(id):
		return id + "_"
	}
	return id
}

var _ wrapper.Plugin = (*plugin)(nil)

func init() {
	if err := wrapper.RegisterPlugin(&plugin{}); err != nil {
		panic(err)
	}
}

// EOF
