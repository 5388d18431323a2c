package typeenc

// cursor is the parser state shared by the full decoder and the signature
// splitter: a single forward position over the input, no backtracking.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(s string) *cursor {
	return &cursor{data: []byte(s)}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.data)
}

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.data[c.pos]
}

func (c *cursor) consume() byte {
	if c.eof() {
		return 0
	}
	b := c.data[c.pos]
	c.pos++
	return b
}

func (c *cursor) rest() string {
	return string(c.data[c.pos:])
}

// readNumber consumes a maximal run of decimal digits. The second return is
// false when no digit was present.
func (c *cursor) readNumber() (int, bool) {
	start := c.pos
	total := 0
	for !c.eof() {
		ch := c.data[c.pos]
		if ch < '0' || ch > '9' {
			break
		}
		total = total*10 + int(ch-'0')
		c.pos++
	}
	return total, c.pos != start
}

// readQuoted consumes through the next unescaped double quote and returns the
// text before it. The opening quote must already be consumed.
func (c *cursor) readQuoted() (string, bool) {
	start := c.pos
	for !c.eof() {
		switch c.data[c.pos] {
		case '\\':
			c.pos += 2
		case '"':
			name := string(c.data[start:c.pos])
			c.pos++
			return name, true
		default:
			c.pos++
		}
	}
	return "", false
}

// readBalanced consumes through the closer matching an already-consumed
// opener and returns the content between them. A single depth counter per
// delimiter kind suffices: recursive decode calls track inner delimiters of
// other kinds in their own frames.
func (c *cursor) readBalanced(open, close byte) (string, bool) {
	start := c.pos
	depth := 1
	for !c.eof() {
		switch c.data[c.pos] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				content := string(c.data[start:c.pos])
				c.pos++
				return content, true
			}
		}
		c.pos++
	}
	return "", false
}

// skipType consumes exactly one top-level type description without building a
// tree and returns the matched substring. It mirrors the decoder's dispatch
// at boundary granularity.
func (c *cursor) skipType() (string, bool) {
	start := c.pos
	for {
		if c.eof() {
			c.pos = start
			return "", false
		}
		ch := c.peek()

		if _, ok := modifierForChar(ch); ok {
			c.consume()
			continue
		}

		switch ch {
		case '^':
			c.consume()
			if c.peek() == '?' {
				c.consume()
				return string(c.data[start:c.pos]), true
			}
			continue
		case '@':
			c.consume()
			switch c.peek() {
			case '"':
				c.consume()
				if _, ok := c.readQuoted(); !ok {
					c.pos = start
					return "", false
				}
			case '?':
				c.consume()
				if c.peek() == '<' {
					c.consume()
					if _, ok := c.readBalanced('<', '>'); !ok {
						c.pos = start
						return "", false
					}
				}
			}
			return string(c.data[start:c.pos]), true
		case '[':
			c.consume()
			if _, ok := c.readBalanced('[', ']'); !ok {
				c.pos = start
				return "", false
			}
			return string(c.data[start:c.pos]), true
		case '{':
			c.consume()
			if _, ok := c.readBalanced('{', '}'); !ok {
				c.pos = start
				return "", false
			}
			return string(c.data[start:c.pos]), true
		case '(':
			c.consume()
			if _, ok := c.readBalanced('(', ')'); !ok {
				c.pos = start
				return "", false
			}
			return string(c.data[start:c.pos]), true
		case 'b':
			c.consume()
			if _, ok := c.readNumber(); !ok {
				c.pos = start
				return "", false
			}
			return string(c.data[start:c.pos]), true
		}

		if _, ok := primitiveKinds[ch]; ok {
			c.consume()
			return string(c.data[start:c.pos]), true
		}

		c.pos = start
		return "", false
	}
}
