package typeenc

import (
	"strconv"
	"strings"
)

// Encode serializes the type back to its encoding string, the structural
// inverse of Decode. Anonymous aggregates encode with the "?" marker, so
// Decode(t.Encode()) is structurally equal to t.
func (t *Type) Encode() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	t.writeEncoding(&b)
	return b.String()
}

func (t *Type) writeEncoding(b *strings.Builder) {
	switch t.Kind {
	case KindObject:
		b.WriteByte('@')
		if t.Name != "" {
			b.WriteByte('"')
			b.WriteString(t.Name)
			b.WriteByte('"')
		}
	case KindBlock:
		b.WriteString("@?")
		if t.Return != nil {
			b.WriteByte('<')
			t.Return.writeEncoding(b)
			b.WriteString("@?")
			for _, param := range t.Params {
				param.writeEncoding(b)
			}
			b.WriteByte('>')
		}
	case KindFunctionPointer:
		b.WriteString("^?")
	case KindPointer:
		b.WriteByte('^')
		t.Elem.writeEncoding(b)
	case KindArray:
		b.WriteByte('[')
		if t.Count != nil {
			b.WriteString(strconv.Itoa(*t.Count))
		}
		t.Elem.writeEncoding(b)
		b.WriteByte(']')
	case KindBitField:
		b.WriteByte('b')
		b.WriteString(strconv.Itoa(t.Width))
	case KindStruct:
		t.writeAggregate(b, '{', '}')
	case KindUnion:
		t.writeAggregate(b, '(', ')')
	case KindModified:
		b.WriteByte(t.Modifier.Char())
		t.Elem.writeEncoding(b)
	case KindOther:
		b.WriteString(t.Raw)
	default:
		if ch, ok := primitiveChars[t.Kind]; ok {
			b.WriteByte(ch)
		}
	}
}

func (t *Type) writeAggregate(b *strings.Builder, open, close byte) {
	b.WriteByte(open)
	if t.Name != "" {
		b.WriteString(t.Name)
	} else {
		b.WriteByte('?')
	}
	if t.Fields != nil {
		b.WriteByte('=')
		for _, f := range t.Fields {
			b.WriteString(f.Encode())
		}
	}
	b.WriteByte(close)
}
