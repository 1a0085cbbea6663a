package gccxml

type i_id interface {
	id() string
}

type i_name interface {
	i_id
	name() string
	set_name(n string)
}

type i_context interface {
	i_name
	context() string
}

// i_calldef is implemented by the member callables of a class
type i_calldef interface {
	i_context
	calldef() *xml_calldef
}

// i_scope is implemented by namespaces, classes, structs, unions and enums
type i_scope interface {
	i_context
}

// EOF
