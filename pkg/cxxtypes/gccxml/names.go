package gccxml

import (
	"strings"
)

// g_stldeftable lists, for the templated classes of the STL, the default
// value of each template argument. An argument whose spelling contains its
// default is dropped from the partial name. "=" marks an argument with no
// default.
var g_stldeftable = map[string][]string{
	"deque":              {"=", "std::allocator"},
	"list":               {"=", "std::allocator"},
	"map":                {"=", "=", "std::less", "std::allocator"},
	"multimap":           {"=", "=", "std::less", "std::allocator"},
	"queue":              {"=", "std::deque"},
	"set":                {"=", "std::less", "std::allocator"},
	"multiset":           {"=", "std::less", "std::allocator"},
	"stack":              {"=", "std::deque"},
	"vector":             {"=", "std::allocator"},
	"basic_string":       {"=", "std::char_traits", "std::allocator"},
	"basic_ostream":      {"=", "std::char_traits"},
	"basic_istream":      {"=", "std::char_traits"},
	"basic_streambuf":    {"=", "std::char_traits"},
	"hash_set":           {"=", "__gnu_cxx::hash", "std::equal_to", "std::allocator"},
	"hash_multiset":      {"=", "__gnu_cxx::hash", "std::equal_to", "std::allocator"},
	"hash_map":           {"=", "=", "__gnu_cxx::hash", "std::equal_to", "std::allocator"},
	"hash_multimap":      {"=", "=", "__gnu_cxx::hash", "std::equal_to", "std::allocator"},
	"unordered_set":      {"=", "std::hash", "std::equal_to", "std::allocator"},
	"unordered_multiset": {"=", "std::hash", "std::equal_to", "std::allocator"},
	"unordered_map":      {"=", "=", "std::hash", "std::equal_to", "std::allocator"},
	"unordered_multimap": {"=", "=", "std::hash", "std::equal_to", "std::allocator"},
}

// g_builtin_names maps the gccxml spelling of a builtin to its usual one
var g_builtin_names = map[string]string{
	"long long unsigned int": "unsigned long long",
	"long long int":          "long long",
	"unsigned short int":     "unsigned short",
	"short unsigned int":     "unsigned short",
	"short int":              "short",
	"long unsigned int":      "unsigned long",
	"unsigned long int":      "unsigned long",
	"long int":               "long",
}

// normalizeName normalizes the spelling of a (possibly qualified,
// pointer or reference) type name.
// If alltmpl is false, the template arguments matching their default are
// removed.
func normalizeName(name string, alltmpl bool) string {
	name = strings.TrimSpace(name)
	for _, q := range []string{"const ", "volatile "} {
		if strings.HasPrefix(name, q) {
			return q + normalizeName(name[len(q):], alltmpl)
		}
	}
	suffix := ""
	for strings.HasSuffix(name, "*") || strings.HasSuffix(name, "&") {
		suffix = name[len(name)-1:] + suffix
		name = strings.TrimSpace(name[:len(name)-1])
	}
	return normalizeClass(name, alltmpl) + suffix
}

// normalizeClass normalizes the spelling of a class name, scope by scope.
func normalizeClass(name string, alltmpl bool) string {
	names := splitScopes(name)
	for i, frag := range names {
		names[i] = normalizeFragment(frag, alltmpl)
	}
	return strings.Join(names, "::")
}

// normalizeFragment normalizes a single, unqualified, name.
func normalizeFragment(name string, alltmpl bool) string {
	name = strings.TrimSpace(name)
	lt := strings.Index(name, "<")
	if lt == -1 {
		if n, ok := g_builtin_names[name]; ok {
			return n
		}
		return name
	}
	clname := name[:lt]
	suffix := ""
	if gt := strings.LastIndex(name, ">"); gt > lt {
		suffix = name[gt+1:]
	}

	args := getTemplateArgs(name)
	for i, arg := range args {
		args[i] = normalizeClass(arg, alltmpl)
	}
	if defargs, ok := g_stldeftable[clname]; ok && !alltmpl && len(args) > 0 {
		keep := []string{args[0]}
		for i := 1; i < len(args); i++ {
			if i < len(defargs) && strings.Contains(args[i], defargs[i]) {
				continue
			}
			keep = append(keep, args[i])
		}
		args = keep
	}

	nor := clname + "<" + strings.Join(args, ",")
	if strings.HasSuffix(nor, ">") {
		nor += " >"
	} else {
		nor += ">"
	}
	return nor + suffix
}

// splitScopes splits a qualified name on its top-level "::" separators.
func splitScopes(name string) []string {
	var names []string
	depth := 0
	for _, s := range strings.Split(name, "::") {
		if depth == 0 {
			names = append(names, s)
		} else {
			names[len(names)-1] += "::" + s
		}
		depth += nesting(s)
	}
	return names
}

// getTemplateArgs returns the top-level template arguments of name.
func getTemplateArgs(name string) []string {
	begin := strings.Index(name, "<")
	end := strings.LastIndex(name, ">")
	if begin == -1 || end < begin {
		return nil
	}
	var args []string
	depth := 0
	for _, s := range strings.Split(name[begin+1:end], ",") {
		if depth == 0 {
			args = append(args, s)
		} else {
			args[len(args)-1] += "," + s
		}
		depth += nesting(s)
	}
	if n := len(args); n > 0 {
		args[n-1] = strings.TrimSuffix(args[n-1], " ")
	}
	return args
}

// nesting returns the number of brackets s opens minus the number it closes.
func nesting(s string) int {
	return strings.Count(s, "<") + strings.Count(s, "(") -
		strings.Count(s, ">") - strings.Count(s, ")")
}

// addTemplateToName appends to name the template arguments spelled out in
// the demangled name of a function template instance.
//
//	addTemplateToName("f", "void NS::f<int>(int)") == "f<int>"
func addTemplateToName(name, demangled string) string {
	if strings.Contains(name, ">") {
		return name
	}
	end := len(demangled)
	depth := 0
loop:
	for i, c := range demangled {
		switch c {
		case '<':
			depth++
		case '>':
			depth--
		case '(':
			if depth == 0 {
				end = i
				break loop
			}
		}
	}
	prefix := demangled[:end]
	if !strings.HasSuffix(prefix, ">") {
		return name
	}
	pos := strings.LastIndex(prefix, name+"<")
	if pos == -1 {
		return name
	}
	if pos > 0 && prefix[pos-1] != ':' && prefix[pos-1] != ' ' {
		return name
	}
	return prefix[pos:]
}

// EOF
