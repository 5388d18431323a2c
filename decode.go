package typeenc

import "strings"

// Decode parses the first type description in s and returns its tree, or nil
// when s does not begin with a recognizable construct. Trailing text after the
// first type is ignored; use DecodeNext to recover it. Decode never panics on
// malformed input and never returns a partial tree.
func Decode(s string) *Type {
	t, _ := DecodeNext(s)
	return t
}

// DecodeNext parses the first type description in s and returns it together
// with the unconsumed remainder. Both results are empty when s does not begin
// with a recognizable construct.
func DecodeNext(s string) (*Type, string) {
	c := newCursor(s)
	t := decodeNext(c)
	if t == nil {
		return nil, ""
	}
	return t, c.rest()
}

// decodeNext is the recursive engine: one dispatch on the leading character,
// recursing for composite constructs.
func decodeNext(c *cursor) *Type {
	if c.eof() {
		return nil
	}
	ch := c.peek()

	switch ch {
	case '@':
		return decodeObject(c)
	case '^':
		c.consume()
		if c.peek() == '?' {
			c.consume()
			return &Type{Kind: KindFunctionPointer}
		}
		elem := decodeNext(c)
		if elem == nil {
			return nil
		}
		return &Type{Kind: KindPointer, Elem: elem}
	case 'b':
		c.consume()
		width, ok := c.readNumber()
		if !ok {
			return nil
		}
		return &Type{Kind: KindBitField, Width: width}
	case '[':
		c.consume()
		return decodeArray(c)
	case '{':
		c.consume()
		return decodeAggregate(c, KindStruct, '{', '}')
	case '(':
		c.consume()
		return decodeAggregate(c, KindUnion, '(', ')')
	}

	if kind, ok := primitiveKinds[ch]; ok {
		c.consume()
		return &Type{Kind: kind}
	}

	if mod, ok := modifierForChar(ch); ok {
		c.consume()
		inner := decodeNext(c)
		if inner == nil {
			return nil
		}
		return &Type{Kind: KindModified, Modifier: mod, Elem: inner}
	}

	return nil
}

// decodeObject handles the '@' family: plain id, quoted class/protocol names,
// and blocks with or without an embedded signature.
func decodeObject(c *cursor) *Type {
	c.consume() // @
	switch c.peek() {
	case '?':
		c.consume()
		if c.peek() != '<' {
			return &Type{Kind: KindBlock}
		}
		c.consume()
		content, ok := c.readBalanced('<', '>')
		if !ok {
			return nil
		}
		return decodeBlockSignature(content)
	case '"':
		c.consume()
		name, ok := c.readQuoted()
		if !ok {
			return nil
		}
		return &Type{Kind: KindObject, Name: normalizeName(name)}
	default:
		return &Type{Kind: KindObject}
	}
}

// decodeBlockSignature decodes the bracketed part of @?<ret@?args...>. The
// grammar expects exactly one literal @? separator after the return type.
func decodeBlockSignature(content string) *Type {
	sub := newCursor(content)
	ret := decodeNext(sub)
	if ret == nil {
		return nil
	}
	if sub.consume() != '@' || sub.consume() != '?' {
		return nil
	}
	params := []*Type{}
	for !sub.eof() {
		param := decodeNext(sub)
		if param == nil {
			return nil
		}
		params = append(params, param)
	}
	return &Type{Kind: KindBlock, Return: ret, Params: params}
}

// decodeArray decodes the content after a consumed '[': optional element
// count, then the element type, through the matching ']'.
func decodeArray(c *cursor) *Type {
	content, ok := c.readBalanced('[', ']')
	if !ok {
		return nil
	}
	sub := newCursor(content)
	t := &Type{Kind: KindArray}
	if count, ok := sub.readNumber(); ok {
		t.Count = &count
	}
	if t.Elem = decodeNext(sub); t.Elem == nil {
		return nil
	}
	return t
}

// decodeAggregate decodes a struct or union body after its consumed opener.
// Content without '=' is a forward declaration (Fields stays nil); otherwise
// the name precedes '=' and the member list follows, possibly empty.
func decodeAggregate(c *cursor, kind Kind, open, close byte) *Type {
	content, ok := c.readBalanced(open, close)
	if !ok {
		return nil
	}
	t := &Type{Kind: kind}
	eq := strings.IndexByte(content, '=')
	if eq < 0 {
		t.Name = normalizeName(content)
		return t
	}
	t.Name = normalizeName(content[:eq])
	fields, ok := decodeFields(content[eq+1:])
	if !ok {
		return nil
	}
	t.Fields = fields
	return t
}

// decodeFields decodes a struct/union member list left to right. Each member
// is an optional quoted name followed by either a bit-field or a full type.
func decodeFields(s string) ([]Field, bool) {
	fields := []Field{}
	c := newCursor(s)
	for !c.eof() {
		var f Field
		if c.peek() == '"' {
			c.consume()
			name, ok := c.readQuoted()
			if !ok {
				return nil, false
			}
			f.Name = name
		}
		if c.peek() == 'b' {
			c.consume()
			width, ok := c.readNumber()
			if !ok {
				return nil, false
			}
			f.Type = &Type{Kind: KindInt}
			f.BitWidth = &width
		} else {
			if f.Type = decodeNext(c); f.Type == nil {
				return nil, false
			}
		}
		fields = append(fields, f)
	}
	return fields, true
}

// normalizeName maps the anonymous-aggregate marker and empty quoted names to
// the absent name.
func normalizeName(name string) string {
	if name == "?" {
		return ""
	}
	return name
}
