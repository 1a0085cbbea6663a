package cxxtypes

// Universe holds the C/C++ builtin types, indexed by their spelling.
var Universe map[string]*FundamentalType

func define(name string, size uintptr, kind TypeKind) {
	if _, dup := Universe[name]; dup {
		panic("cxxtypes: internal error - double declaration of builtin " + name)
	}
	Universe[name] = NewFundamentalType(name, size, kind)
}

// Builtin returns the builtin type spelled name, or nil.
func Builtin(name string) *FundamentalType {
	return Universe[name]
}

func init() {
	Universe = make(map[string]*FundamentalType, 32)

	define("void", 0, TK_Void)
	define("bool", 1, TK_Bool)
	define("char", 1, TK_Char_S)
	define("signed char", 1, TK_SChar)
	define("unsigned char", 1, TK_UChar)
	define("wchar_t", 4, TK_WChar)
	define("char16_t", 2, TK_Char16)
	define("char32_t", 4, TK_Char32)
	define("short", 2, TK_Short)
	define("unsigned short", 2, TK_UShort)
	define("int", 4, TK_Int)
	define("unsigned int", 4, TK_UInt)

	define("long", 8, TK_Long)
	define("unsigned long", 8, TK_ULong)
	define("long long", 8, TK_LongLong)
	define("unsigned long long", 8, TK_ULongLong)
	define("__int128", 16, TK_Int128)
	define("unsigned __int128", 16, TK_UInt128)

	define("float", 4, TK_Float)
	define("double", 8, TK_Double)
	define("long double", 16, TK_LongDouble)

	define("float complex", 8, TK_Complex)
	define("double complex", 16, TK_Complex)

	define("decltype(nullptr)", 8, TK_NullPtr)
}

// EOF
