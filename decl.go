package typeenc

import (
	"strconv"
	"strings"
)

// Decl renders the type as a C-like declaration for documentation and
// debugging output. The result is deterministic but not guaranteed to be
// compilable C.
func (t *Type) Decl() string {
	return t.decl("")
}

func (t *Type) decl(indent string) string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindObject:
		if t.Name == "" {
			return "id"
		}
		if strings.HasPrefix(t.Name, "<") {
			return "id " + t.Name
		}
		return t.Name + " *"
	case KindBlock:
		if t.Return == nil {
			return "id /* block */"
		}
		params := make([]string, len(t.Params))
		for i, param := range t.Params {
			params[i] = param.decl(indent)
		}
		return t.Return.decl(indent) + " (^)(" + strings.Join(params, ", ") + ")"
	case KindFunctionPointer:
		return "IMP"
	case KindPointer:
		return t.Elem.decl(indent) + " *"
	case KindArray:
		count := ""
		if t.Count != nil {
			count = strconv.Itoa(*t.Count)
		}
		return t.Elem.decl(indent) + " x[" + count + "]"
	case KindBitField:
		return "unsigned int x:" + strconv.Itoa(t.Width)
	case KindStruct:
		return t.aggregateDecl("struct", indent)
	case KindUnion:
		return t.aggregateDecl("union", indent)
	case KindModified:
		return t.Modifier.Keyword() + " " + t.Elem.decl(indent)
	case KindOther:
		return t.Raw
	default:
		if decl, ok := primitiveDecls[t.Kind]; ok {
			return decl
		}
		return "?"
	}
}

// aggregateDecl renders a struct/union: known members one per line, indented;
// opaque aggregates as just the tag (or "{}" when anonymous).
func (t *Type) aggregateDecl(kind, indent string) string {
	if t.Fields == nil {
		if t.Name == "" {
			return kind + " {}"
		}
		return kind + " " + t.Name
	}
	var b strings.Builder
	b.WriteString(kind)
	b.WriteByte(' ')
	if t.Name != "" {
		b.WriteString(t.Name)
		b.WriteByte(' ')
	}
	b.WriteString("{")
	inner := indent + "\t"
	for i, f := range t.Fields {
		b.WriteByte('\n')
		b.WriteString(inner)
		b.WriteString(f.decl(i, inner))
	}
	b.WriteByte('\n')
	b.WriteString(indent)
	b.WriteString("}")
	return b.String()
}
