package gccxml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// helper function to "convert" a 0|1 string into a boolean
func to_bool(v string) bool {
	if v == "" || v == "0" {
		return false
	}
	return true
}

type xmlTree struct {
	XMLName xml.Name `xml:"GCC_XML"`

	Arrays           []*xmlArray           `xml:"ArrayType"`
	Classes          []*xmlClass           `xml:"Class"`
	Constructors     []*xmlConstructor     `xml:"Constructor"`
	Converters       []*xmlConverter       `xml:"Converter"`
	CvQualifiedTypes []*xmlCvQualifiedType `xml:"CvQualifiedType"`
	Destructors      []*xmlDestructor      `xml:"Destructor"`
	Enumerations     []*xmlEnumeration     `xml:"Enumeration"`
	FunctionTypes    []*xmlFunctionType    `xml:"FunctionType"`
	FundamentalTypes []*xmlFundamentalType `xml:"FundamentalType"`
	Methods          []*xmlMethod          `xml:"Method"`
	MethodTypes      []*xmlMethodType      `xml:"MethodType"`
	Namespaces       []*xmlNamespace       `xml:"Namespace"`
	OperatorMethods  []*xmlOperatorMethod  `xml:"OperatorMethod"`
	OffsetTypes      []*xmlOffsetType      `xml:"OffsetType"`
	PointerTypes     []*xmlPointerType     `xml:"PointerType"`
	ReferenceTypes   []*xmlReferenceType   `xml:"ReferenceType"`
	Structs          []*xmlStruct          `xml:"Struct"`
	Typedefs         []*xmlTypedef         `xml:"Typedef"`
	Unimplementeds   []*xmlUnimplemented   `xml:"Unimplemented"`
	Unions           []*xmlUnion           `xml:"Union"`
}

// stats returns the number of nodes per kind, as structured logging attributes
func (x *xmlTree) stats() []any {
	return []any{
		"namespaces", len(x.Namespaces),
		"classes", len(x.Classes),
		"structs", len(x.Structs),
		"unions", len(x.Unions),
		"constructors", len(x.Constructors),
		"destructors", len(x.Destructors),
		"methods", len(x.Methods),
		"operators", len(x.OperatorMethods),
		"converters", len(x.Converters),
		"typedefs", len(x.Typedefs),
		"fundamentals", len(x.FundamentalTypes),
	}
}

// fixup fixes a few of the "features" of GCC-XML data
func (x *xmlTree) fixup() {
	for _, m := range x.Methods {
		patchTemplateName(m)
	}
	for _, m := range x.Constructors {
		patchTemplateName(m)
	}
	for _, m := range x.OperatorMethods {
		// gccxml only gives the symbol of an operator
		if !strings.HasPrefix(m.Name, "operator") {
			sep := ""
			if isWordOperator(m.Name) {
				sep = " "
			}
			m.Name = "operator" + sep + m.Name
		}
	}
	for _, d := range x.Destructors {
		if !strings.HasPrefix(d.Name, "~") {
			d.Name = "~" + d.Name
		}
	}
}

func (x *xmlTree) id() string {
	return "__0__"
}

// isWordOperator returns whether the operator symbol is spelled with letters
// (new, delete, new[], delete[]), and thus needs a blank after "operator".
func isWordOperator(sym string) bool {
	return strings.HasPrefix(sym, "new") || strings.HasPrefix(sym, "delete")
}

// idDB associates the gccxml string id of a type to its parsed xmlFoobar struct
type idDB map[string]i_id

type xmlArgument struct {
	Attributes string `xml:"attributes,attr"`
	File       string `xml:"file,attr"`
	Line       string `xml:"line,attr"`
	Location   string `xml:"location,attr"`
	Name       string `xml:"name,attr"`
	Type       string `xml:"type,attr"`
	Default    string `xml:"default,attr"`
}

type xmlArray struct {
	Align      string `xml:"align,attr"`
	Attributes string `xml:"attributes,attr"`
	Id         string `xml:"id,attr"`
	Max        string `xml:"max,attr"`
	Min        string `xml:"min,attr"`
	Size       string `xml:"size,attr"`
	Type       string `xml:"type,attr"`
}

func (x *xmlArray) id() string {
	return x.Id
}

type xmlBase struct {
	Type    string `xml:"type,attr"`
	Access  string `xml:"access,attr"`
	Virtual string `xml:"virtual,attr"`
	Offset  string `xml:"offset,attr"`
}

type xmlEllipsis struct {
	XMLName xml.Name `xml:"Ellipsis"`
}

type xml_record struct {
	Abstract   string `xml:"abstract,attr"`
	Access     string `xml:"access,attr"` // default "public"
	Align      string `xml:"align,attr"`
	Artificial string `xml:"artificial,attr"`
	Attributes string `xml:"attributes,attr"`
	XBases     string `xml:"bases,attr"`
	Context    string `xml:"context,attr"`
	Demangled  string `xml:"demangled,attr"`
	File       string `xml:"file,attr"`
	Id         string `xml:"id,attr"`
	Incomplete string `xml:"incomplete,attr"`
	Line       string `xml:"line,attr"`
	Location   string `xml:"location,attr"`
	Mangled    string `xml:"mangled,attr"`
	Members    string `xml:"members,attr"`
	Name       string `xml:"name,attr"`
	Size       string `xml:"size,attr"`

	Bases []xmlBase `xml:"Base"`
}

func (x *xml_record) id() string {
	return x.Id
}

func (x *xml_record) name() string {
	return x.Name
}

func (x *xml_record) set_name(n string) {
	x.Name = n
}

func (x *xml_record) context() string {
	return x.Context
}

type xmlClass struct {
	xml_record
}

type xmlStruct struct {
	xml_record
}

type xmlUnion struct {
	xml_record
}

// xml_calldef holds the attributes shared by all the member callables
// (Constructor, Destructor, Method, OperatorMethod and Converter nodes).
type xml_calldef struct {
	Access      string `xml:"access,attr"`     // default "public"
	Artificial  string `xml:"artificial,attr"` // implied
	Attributes  string `xml:"attributes,attr"` // implied
	Const       string `xml:"const,attr"`      // default "0"
	Context     string `xml:"context,attr"`
	Demangled   string `xml:"demangled,attr"`
	Endline     string `xml:"endline,attr"`
	Explicit    string `xml:"explicit,attr"` // default "0"
	Extern      string `xml:"extern,attr"`   // default "0"
	File        string `xml:"file,attr"`
	Id          string `xml:"id,attr"`
	Line        string `xml:"line,attr"`
	Location    string `xml:"location,attr"`
	Mangled     string `xml:"mangled,attr"`
	Name        string `xml:"name,attr"`
	PureVirtual string `xml:"pure_virtual,attr"` // default "0"
	Returns     string `xml:"returns,attr"`
	Static      string `xml:"static,attr"` // default "0"
	Throw       string `xml:"throw,attr"`
	Virtual     string `xml:"virtual,attr"` // default "0"

	Arguments []xmlArgument `xml:"Argument"`
	Ellipsis  *xmlEllipsis  `xml:"Ellipsis"`
}

func (x *xml_calldef) id() string {
	return x.Id
}

func (x *xml_calldef) name() string {
	return x.Name
}

func (x *xml_calldef) set_name(n string) {
	x.Name = n
}

func (x *xml_calldef) context() string {
	return x.Context
}

func (x *xml_calldef) calldef() *xml_calldef {
	return x
}

type xmlConstructor struct {
	xml_calldef
}

type xmlConverter struct {
	xml_calldef
}

type xmlDestructor struct {
	xml_calldef
}

type xmlMethod struct {
	xml_calldef
}

type xmlOperatorMethod struct {
	xml_calldef
}

type xmlCvQualifiedType struct {
	Align      string `xml:"align,attr"`
	Attributes string `xml:"attributes,attr"` // implied
	Const      string `xml:"const,attr"`
	Id         string `xml:"id,attr"`
	Restrict   string `xml:"restrict,attr"`
	Size       string `xml:"size,attr"`
	Type       string `xml:"type,attr"`
	Volatile   string `xml:"volatile,attr"`
}

func (x *xmlCvQualifiedType) id() string {
	return x.Id
}

type xmlEnumValue struct {
	Init string `xml:"init,attr"`
	Name string `xml:"name,attr"`
}

type xmlEnumeration struct {
	Access     string `xml:"access,attr"` // default "public"
	Align      string `xml:"align,attr"`
	Artificial string `xml:"artificial,attr"`
	Attributes string `xml:"attributes,attr"`
	Context    string `xml:"context,attr"`
	File       string `xml:"file,attr"`
	Id         string `xml:"id,attr"`
	Line       string `xml:"line,attr"`
	Location   string `xml:"location,attr"`
	Name       string `xml:"name,attr"`
	Size       string `xml:"size,attr"`

	EnumValues []xmlEnumValue `xml:"EnumValue"`
}

func (x *xmlEnumeration) id() string {
	return x.Id
}

func (x *xmlEnumeration) name() string {
	return x.Name
}

func (x *xmlEnumeration) set_name(n string) {
	x.Name = n
}

func (x *xmlEnumeration) context() string {
	return x.Context
}

type xmlFunctionType struct {
	Attributes string `xml:"attributes,attr"` // implied
	Id         string `xml:"id,attr"`
	Returns    string `xml:"returns,attr"`

	Arguments []xmlArgument `xml:"Argument"`
	Ellipsis  *xmlEllipsis  `xml:"Ellipsis"`
}

func (x *xmlFunctionType) id() string {
	return x.Id
}

type xmlFundamentalType struct {
	Align      string `xml:"align,attr"`
	Attributes string `xml:"attributes,attr"` // implied
	Id         string `xml:"id,attr"`
	Name       string `xml:"name,attr"`
	Size       string `xml:"size,attr"`
}

func (x *xmlFundamentalType) String() string {
	return fmt.Sprintf(
		`builtin{"%s", size=%s, align=%s}`,
		x.Name, x.Size, x.Align,
	)
}

func (x *xmlFundamentalType) id() string {
	return x.Id
}

type xmlMethodType struct {
	Attributes string `xml:"attributes,attr"` // implied
	BaseType   string `xml:"basetype,attr"`
	Const      string `xml:"const,attr"`
	Id         string `xml:"id,attr"`
	Returns    string `xml:"returns,attr"`

	Arguments []xmlArgument `xml:"Argument"`
	Ellipsis  *xmlEllipsis  `xml:"Ellipsis"`
}

func (x *xmlMethodType) id() string {
	return x.Id
}

type xmlNamespace struct {
	Attributes string `xml:"attributes,attr"`
	Context    string `xml:"context,attr"`
	Demangled  string `xml:"demangled,attr"`
	Id         string `xml:"id,attr"`
	Mangled    string `xml:"mangled,attr"`
	Members    string `xml:"members,attr"`
	Name       string `xml:"name,attr"`
}

func (x *xmlNamespace) id() string {
	return x.Id
}

func (x *xmlNamespace) name() string {
	return x.Name
}

func (x *xmlNamespace) set_name(n string) {
	x.Name = n
}

func (x *xmlNamespace) context() string {
	return x.Context
}

type xmlOffsetType struct {
	Align      string `xml:"align,attr"`
	Attributes string `xml:"attributes,attr"` // implied
	BaseType   string `xml:"basetype,attr"`
	Id         string `xml:"id,attr"`
	Size       string `xml:"size,attr"`
	Type       string `xml:"type,attr"`
}

func (x *xmlOffsetType) id() string {
	return x.Id
}

type xmlPointerType struct {
	Align      string `xml:"align,attr"`
	Attributes string `xml:"attributes,attr"` // implied
	Id         string `xml:"id,attr"`
	Size       string `xml:"size,attr"`
	Type       string `xml:"type,attr"`
}

func (x *xmlPointerType) id() string {
	return x.Id
}

type xmlReferenceType struct {
	Align      string `xml:"align,attr"`
	Attributes string `xml:"attributes,attr"` // implied
	Id         string `xml:"id,attr"`
	Size       string `xml:"size,attr"`
	Type       string `xml:"type,attr"`
}

func (x *xmlReferenceType) id() string {
	return x.Id
}

type xmlTypedef struct {
	Attributes string `xml:"attributes,attr"` // implied
	Context    string `xml:"context,attr"`
	File       string `xml:"file,attr"`
	Id         string `xml:"id,attr"`
	Line       string `xml:"line,attr"`
	Location   string `xml:"location,attr"`
	Name       string `xml:"name,attr"`
	Type       string `xml:"type,attr"`
}

func (x *xmlTypedef) id() string {
	return x.Id
}

func (x *xmlTypedef) name() string {
	return x.Name
}

func (x *xmlTypedef) set_name(n string) {
	x.Name = n
}

func (x *xmlTypedef) context() string {
	return x.Context
}

type xmlUnimplemented struct {
	Function     string `xml:"function,attr"`
	Id           string `xml:"id,attr"`
	Node         string `xml:"node,attr"`
	TreeCode     string `xml:"tree_code,attr"`
	TreeCodeName string `xml:"tree_code_name,attr"` // template_type_parm|typename_type|using_decl
}

func (x *xmlUnimplemented) id() string {
	return x.Id
}

// utils ---

// patchTemplateName completes the name of a templated member callable with
// its template arguments, which gccxml only spells out in the demangled name.
func patchTemplateName(node i_calldef) {
	x := node.calldef()
	name := x.name()
	if strings.Contains(name, ">") || x.Demangled == "" {
		return
	}
	x.set_name(addTemplateToName(name, x.Demangled))
}

// EOF
