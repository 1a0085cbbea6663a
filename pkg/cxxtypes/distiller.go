package cxxtypes

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Distiller is the interface to distill class declarations and their
// member callables out of an extractor's dump.
type Distiller interface {
	LoadDecls(r io.Reader) (*Registry, error)
}

var g_distillers = make(map[string]Distiller)

// RegisterDistiller makes a distiller available by the provided name.
func RegisterDistiller(name string, distiller Distiller) {
	if distiller == nil {
		panic("cxxtypes: Register distiller is nil")
	}
	if _, dup := g_distillers[name]; dup {
		panic("cxxtypes: Register called twice for distiller " + name)
	}
	g_distillers[name] = distiller
}

// Distillers returns the sorted names of the registered distillers.
func Distillers() []string {
	names := make([]string, 0, len(g_distillers))
	for n := range g_distillers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DistillDecls distills declarations using the specified distiller
func DistillDecls(distillerName string, r io.Reader) (*Registry, error) {
	distiller, ok := g_distillers[distillerName]
	if !ok {
		return nil, fmt.Errorf("cxxtypes: distiller %q (forgotten import?): %w",
			distillerName, ErrUnknownDistiller)
	}
	return distiller.LoadDecls(r)
}

// DeclRecord is the flat, serializable summary of a member callable and
// of its derived properties.
type DeclRecord struct {
	Name              string `json:"name"`
	Scope             string `json:"scope"`
	Kind              string `json:"kind"`
	Signature         string `json:"signature"`
	FunctionType      string `json:"function_type"`
	Access            string `json:"access"`
	Virtuality        string `json:"virtuality"`
	Const             bool   `json:"const"`
	Static            bool   `json:"static"`
	Explicit          bool   `json:"explicit,omitempty"`
	CopyConstructor   bool   `json:"copy_constructor,omitempty"`
	Trivial           bool   `json:"trivial_constructor,omitempty"`
	Symbol            string `json:"symbol,omitempty"`
	CallingConvention string `json:"calling_convention"`
}

// NewDeclRecord summarizes the member callable m.
func NewDeclRecord(m *MemberCallable) DeclRecord {
	rec := DeclRecord{
		Name:              m.Name(),
		Kind:              m.KindTag(),
		Signature:         m.Signature(),
		FunctionType:      m.CreateDeclString(true),
		Virtuality:        m.Virtuality().String(),
		Const:             m.HasConst(),
		Static:            m.HasStatic(),
		Explicit:          m.Explicit(),
		CopyConstructor:   m.IsCopyConstructor(),
		Trivial:           m.IsTrivialConstructor(),
		CallingConvention: m.CallingConvention().String(),
	}
	if s := m.parentScope(); s != nil {
		rec.Scope = FullName(s)
	}
	if access, err := m.AccessType(); err == nil {
		rec.Access = access.String()
	}
	if op, ok := m.Operator(); ok {
		rec.Symbol = op.Symbol()
	}
	return rec
}

// DeclRecords summarizes every member callable of the record scopes of
// reg for which keep returns true. A nil keep keeps every scope.
func DeclRecords(reg *Registry, keep func(*Scope) bool) []DeclRecord {
	var recs []DeclRecord
	for _, ref := range reg.Scopes() {
		s := reg.Scope(ref)
		if !s.Kind.IsRecord() {
			continue
		}
		if keep != nil && !keep(s) {
			continue
		}
		for i := 0; i < s.NumMember(); i++ {
			recs = append(recs, NewDeclRecord(s.Member(i)))
		}
	}
	return recs
}

// SaveDecls dumps the records as JSON into the specified io.Writer
func SaveDecls(dst io.Writer, recs []DeclRecord) error {
	enc := json.NewEncoder(dst)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("cxxtypes: could not encode declarations: %w", err)
	}
	return nil
}

// EOF
