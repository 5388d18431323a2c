package typeenc

import (
	"fmt"
	"strings"
)

// Value is one slot of a method signature: the raw type encoding plus the
// stack offset that followed it. The encoding stays undecoded until Type is
// called, since most callers only need offsets and counts.
type Value struct {
	TypeEncoding string
	Offset       *int
}

// Type decodes the slot's encoding on demand. It returns nil when the stored
// encoding is malformed.
func (v Value) Type() *Type {
	return Decode(v.TypeEncoding)
}

// Decl renders the slot's decoded declaration, falling back to the raw
// encoding when it cannot be decoded.
func (v Value) Decl() string {
	if t := v.Type(); t != nil {
		return t.Decl()
	}
	return v.TypeEncoding
}

// Signature is a split method-type encoding: return slot, total stack size,
// and the argument slots in declaration order. By runtime convention the
// first two arguments are the receiver (@) and the selector (:).
type Signature struct {
	Return    Value
	Arguments []Value
	StackSize *int
}

// ParseSignature splits a full method-type encoding such as "v20@0:8@16"
// into its return type, stack size, and argument/offset pairs. Each slot is
// matched at boundary granularity only; malformed trailing input terminates
// the scan instead of spinning.
func ParseSignature(encoding string) Signature {
	c := newCursor(encoding)
	var sig Signature

	if enc, ok := c.skipType(); ok {
		sig.Return.TypeEncoding = enc
	}
	if n, ok := c.readNumber(); ok {
		sig.StackSize = &n
	}

	for !c.eof() {
		start := c.pos
		enc, ok := c.skipType()
		if !ok {
			break
		}
		v := Value{TypeEncoding: enc}
		// GNU runtime register hint, then a possibly negative offset.
		if c.peek() == '+' {
			c.consume()
		}
		neg := false
		if c.peek() == '-' {
			neg = true
			c.consume()
		}
		if n, ok := c.readNumber(); ok {
			if neg {
				n = -n
			}
			v.Offset = &n
		}
		if c.pos == start {
			break
		}
		sig.Arguments = append(sig.Arguments, v)
	}
	return sig
}

// NumberOfArguments reports the argument count, including the implicit
// receiver and selector slots.
func (s Signature) NumberOfArguments() int {
	return len(s.Arguments)
}

// ReturnDecl renders the declaration of the return type.
func (s Signature) ReturnDecl() string {
	return s.Return.Decl()
}

// Decl renders an Objective-C style method declaration for the given
// selector, pairing selector pieces with the explicit arguments (those after
// the receiver and selector slots).
func (s Signature) Decl(selector string) string {
	ret := fmt.Sprintf("- (%s)", s.ReturnDecl())
	var args []Value
	if len(s.Arguments) > 2 {
		args = s.Arguments[2:]
	}
	if len(args) == 0 || !strings.Contains(selector, ":") {
		return ret + selector
	}
	pieces := strings.SplitAfter(selector, ":")
	var b strings.Builder
	b.WriteString(ret)
	for i, arg := range args {
		if i >= len(pieces) {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(pieces[i])
		fmt.Fprintf(&b, "(%s)arg%d", arg.Decl(), i+1)
	}
	return b.String()
}
