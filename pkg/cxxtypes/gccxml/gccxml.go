// Package gccxml reads an XML file produced by GCC_XML and fills in a cxxtypes' registry.
package gccxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-cxxdict/calldefs/pkg/cxxtypes"
)

// Loader distills the classes of a GCC_XML dump, and their member
// callables, into a cxxtypes.Registry.
type Loader struct {
	// Logger receives the loading diagnostics. A nil Logger means slog.Default().
	Logger *slog.Logger
}

func init() {
	cxxtypes.RegisterDistiller("gccxml", &Loader{})
}

// LoadDecls reads an XML document produced by GCC_XML.
func (ld *Loader) LoadDecls(r io.Reader) (*cxxtypes.Registry, error) {
	logger := ld.Logger
	if logger == nil {
		logger = slog.Default()
	}

	root := &xmlTree{}
	if err := xml.NewDecoder(r).Decode(root); err != nil {
		return nil, fmt.Errorf("gccxml: could not decode document: %w", err)
	}

	l := &loader{
		ids:    make(idDB, 128),
		reg:    cxxtypes.NewRegistry(),
		scopes: make(map[string]cxxtypes.DeclRef),
		types:  make(map[string]cxxtypes.Type),
		log:    logger,
	}

	// walk over the xmlTree to fill in the db of ids.
	v := func(node i_id) bool {
		l.ids[node.id()] = node
		return true
	}
	walk(inspector(v), root)

	root.fixup()
	logger.Debug("gccxml data loaded", append([]any{"ids", len(l.ids)}, root.stats()...)...)

	// generate the scopes in cxxtypes' registry
	if err := l.gencxxscopes(root); err != nil {
		return nil, err
	}

	// generate the member callables of each record
	if err := l.gencxxmembers(); err != nil {
		return nil, err
	}
	return l.reg, nil
}

// loader holds the state of a single GCC_XML document being distilled.
type loader struct {
	ids     idDB
	reg     *cxxtypes.Registry
	scopes  map[string]cxxtypes.DeclRef // gccxml id -> scope handle
	types   map[string]cxxtypes.Type    // gccxml id -> type-expression
	records []i_scope                   // records, in creation order
	log     *slog.Logger
}

func (l *loader) gencxxscopes(root *xmlTree) error {
	var nodes []i_scope
	for _, x := range root.Namespaces {
		nodes = append(nodes, x)
	}
	for _, x := range root.Classes {
		nodes = append(nodes, x)
	}
	for _, x := range root.Structs {
		nodes = append(nodes, x)
	}
	for _, x := range root.Unions {
		nodes = append(nodes, x)
	}
	for _, x := range root.Enumerations {
		nodes = append(nodes, x)
	}
	for _, node := range nodes {
		if _, err := l.scope(node.id()); err != nil {
			return err
		}
	}
	return nil
}

// scope returns the handle of the scope with gccxml id, creating it (and its
// enclosing scopes) if needed.
func (l *loader) scope(id string) (cxxtypes.DeclRef, error) {
	if ref, ok := l.scopes[id]; ok {
		return ref, nil
	}
	node, ok := l.ids[id].(i_scope)
	if !ok {
		return cxxtypes.NoDecl, fmt.Errorf("gccxml: id %q is not a scope", id)
	}

	var kind cxxtypes.ScopeKind
	switch node.(type) {
	case *xmlNamespace:
		kind = cxxtypes.SK_Namespace
		if node.name() == "::" {
			l.scopes[id] = cxxtypes.GlobalNs
			return cxxtypes.GlobalNs, nil
		}
	case *xmlClass:
		kind = cxxtypes.SK_Class
	case *xmlStruct:
		kind = cxxtypes.SK_Struct
	case *xmlUnion:
		kind = cxxtypes.SK_Union
	case *xmlEnumeration:
		kind = cxxtypes.SK_Enum
	default:
		return cxxtypes.NoDecl, fmt.Errorf("gccxml: unhandled scope type [%T]", node)
	}

	outer := cxxtypes.GlobalNs
	if ctx := node.context(); ctx != "" {
		ref, err := l.scope(ctx)
		if err != nil {
			return cxxtypes.NoDecl, err
		}
		outer = ref
	}

	name := normalizeClass(node.name(), true)
	partial := normalizeClass(node.name(), false)
	if node.name() == "" {
		name = anonymousName(id)
		partial = name
	}
	ref, err := l.reg.NewScope(kind, name, partial, outer)
	if err != nil {
		return cxxtypes.NoDecl, fmt.Errorf("gccxml: %w", err)
	}
	l.scopes[id] = ref
	if kind.IsRecord() {
		l.records = append(l.records, node)
	}
	return ref, nil
}

// anonymousName returns the name given to the anonymous scope with gccxml id.
// The id keeps sibling anonymous scopes apart.
func anonymousName(id string) string {
	return "(anonymous " + id + ")"
}

func (l *loader) gencxxmembers() error {
	for _, rec := range l.records {
		ref := l.scopes[rec.id()]
		r, ok := rec.(interface{ record() *xml_record })
		if !ok {
			continue
		}
		defaccess := cxxtypes.AS_Public
		if _, isclass := rec.(*xmlClass); isclass {
			defaccess = cxxtypes.AS_Private
		}
		for _, mid := range strings.Fields(r.record().Members) {
			node, ok := l.ids[mid].(i_calldef)
			if !ok {
				// fields, nested types, variables, ...
				continue
			}
			m, err := l.genmember(node)
			if err != nil {
				return err
			}
			access := cxxtypes.ParseAccess(node.calldef().Access, defaccess)
			if err := l.reg.AddMember(ref, m, access); err != nil {
				return fmt.Errorf("gccxml: %w", err)
			}
			l.log.Debug("member callable loaded",
				"scope", rec.name(),
				"kind", m.Kind(),
				"name", m.Name(),
				"access", access,
			)
		}
	}
	return nil
}

func (x *xml_record) record() *xml_record {
	return x
}

func (l *loader) genmember(node i_calldef) (*cxxtypes.MemberCallable, error) {
	x := node.calldef()
	args, err := l.arguments(x.Arguments)
	if err != nil {
		return nil, fmt.Errorf("gccxml: arguments of %q: %w", x.Name, err)
	}
	ret, err := l.typeOf(x.Returns)
	if err != nil {
		return nil, fmt.Errorf("gccxml: return type of %q: %w", x.Name, err)
	}

	var m *cxxtypes.MemberCallable
	switch node.(type) {
	case *xmlConstructor:
		m = cxxtypes.NewConstructor(x.Name, args)
		m.SetExplicitString(x.Explicit)
	case *xmlDestructor:
		m = cxxtypes.NewDestructor(x.Name)
	case *xmlMethod:
		m = cxxtypes.NewMemberFunction(x.Name, args, ret)
	case *xmlOperatorMethod:
		m = cxxtypes.NewMemberOperator(x.Name, args, ret)
	case *xmlConverter:
		name := x.Name
		if !strings.HasPrefix(name, "operator") {
			if ret == nil {
				return nil, fmt.Errorf("gccxml: converter %q without return type", x.Id)
			}
			name = "operator " + ret.TypeName()
		}
		m = cxxtypes.NewCastingOperator(name, ret)
	default:
		return nil, fmt.Errorf("gccxml: unhandled member type [%T]", node)
	}

	m.SetEllipsis(x.Ellipsis != nil)
	m.SetHasConst(to_bool(x.Const))
	m.SetHasStatic(to_bool(x.Static))
	m.Attributes = x.Attributes

	virt := cxxtypes.VT_NotVirtual
	switch {
	case to_bool(x.PureVirtual):
		virt = cxxtypes.VT_PureVirtual
	case to_bool(x.Virtual):
		virt = cxxtypes.VT_Virtual
	}
	if err := m.SetVirtuality(virt); err != nil {
		return nil, fmt.Errorf("gccxml: %w", err)
	}
	return m, nil
}

func (l *loader) arguments(xargs []xmlArgument) ([]cxxtypes.Argument, error) {
	args := make([]cxxtypes.Argument, 0, len(xargs))
	for _, a := range xargs {
		t, err := l.typeOf(a.Type)
		if err != nil {
			return nil, err
		}
		args = append(args, cxxtypes.NewArgument(a.Name, t, a.Default))
	}
	return args, nil
}

func (l *loader) argTypes(xargs []xmlArgument) ([]cxxtypes.Type, error) {
	types := make([]cxxtypes.Type, 0, len(xargs))
	for _, a := range xargs {
		t, err := l.typeOf(a.Type)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// typeOf returns the type-expression of the type with gccxml id.
// The empty id is the type of nothing, and yields a nil Type.
func (l *loader) typeOf(id string) (cxxtypes.Type, error) {
	if id == "" {
		return nil, nil
	}
	if t, ok := l.types[id]; ok {
		return t, nil
	}
	node, ok := l.ids[id]
	if !ok {
		return nil, fmt.Errorf("gccxml: unknown type id %q", id)
	}

	var t cxxtypes.Type
	switch x := node.(type) {
	case *xmlFundamentalType:
		name := normalizeName(x.Name, true)
		if bt := cxxtypes.Builtin(name); bt != nil {
			t = bt
		} else {
			size, _ := strconv.ParseUint(x.Size, 10, 64)
			t = cxxtypes.NewFundamentalType(name, uintptr(size/8), cxxtypes.TK_Unexposed)
		}

	case *xmlPointerType:
		base, err := l.typeOf(x.Type)
		if err != nil {
			return nil, err
		}
		t = cxxtypes.NewPtrType(base)

	case *xmlReferenceType:
		base, err := l.typeOf(x.Type)
		if err != nil {
			return nil, err
		}
		t = cxxtypes.NewRefType(base)

	case *xmlCvQualifiedType:
		base, err := l.typeOf(x.Type)
		if err != nil {
			return nil, err
		}
		qual := cxxtypes.TQ_None
		if to_bool(x.Const) {
			qual |= cxxtypes.TQ_Const
		}
		if to_bool(x.Volatile) {
			qual |= cxxtypes.TQ_Volatile
		}
		if to_bool(x.Restrict) {
			qual |= cxxtypes.TQ_Restrict
		}
		t = cxxtypes.NewQualType(base, qual)

	case *xmlArray:
		elem, err := l.typeOf(x.Type)
		if err != nil {
			return nil, err
		}
		t = cxxtypes.NewArrayType(elem, arrayLen(x.Max))

	case *xmlTypedef:
		base, err := l.typeOf(x.Type)
		if err != nil {
			return nil, err
		}
		t = cxxtypes.NewTypedefType(l.scopedName(x.Context, x.Name), base)

	case *xmlClass, *xmlStruct, *xmlUnion, *xmlEnumeration:
		ref, err := l.scope(id)
		if err != nil {
			return nil, err
		}
		t = l.reg.Declarated(ref)

	case *xmlFunctionType:
		ret, err := l.typeOf(x.Returns)
		if err != nil {
			return nil, err
		}
		args, err := l.argTypes(x.Arguments)
		if err != nil {
			return nil, err
		}
		t = &cxxtypes.FreeFunctionType{Ret: ret, Args: args}

	case *xmlMethodType:
		ret, err := l.typeOf(x.Returns)
		if err != nil {
			return nil, err
		}
		args, err := l.argTypes(x.Arguments)
		if err != nil {
			return nil, err
		}
		cls, err := l.typeOf(x.BaseType)
		if err != nil {
			return nil, err
		}
		class, _ := cls.(*cxxtypes.DeclaratedType)
		t = &cxxtypes.MemberFunctionType{
			Class:    class,
			Ret:      ret,
			Args:     args,
			HasConst: to_bool(x.Const),
		}

	case *xmlOffsetType, *xmlUnimplemented:
		t = cxxtypes.NewFundamentalType("?", 0, cxxtypes.TK_Unexposed)

	default:
		return nil, fmt.Errorf("gccxml: id %q is not a type [%T]", id, node)
	}
	l.types[id] = t
	return t, nil
}

// scopedName returns the fully qualified name of a declaration named n in
// the scope with gccxml id ctx.
func (l *loader) scopedName(ctx, n string) string {
	ref, err := l.scope(ctx)
	if err != nil || ref == cxxtypes.GlobalNs {
		return "::" + n
	}
	return l.reg.Scope(ref).IdScopedName() + "::" + n
}

// arrayLen converts the max index of an array ("9", "9u", "") into its length.
func arrayLen(max string) uintptr {
	n, err := strconv.ParseUint(strings.TrimRight(max, "uUlL"), 10, 64)
	if err != nil {
		return 0
	}
	return uintptr(n + 1)
}

var _ cxxtypes.Distiller = (*Loader)(nil)

// EOF
