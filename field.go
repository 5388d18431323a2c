package typeenc

import "strconv"

// Field is one member of a struct or union. Bit-field members carry the
// conventional int type plus a BitWidth; regular members have BitWidth nil.
type Field struct {
	Type     *Type
	Name     string // "" when the encoding carries no member name
	BitWidth *int
}

// Encode renders the field in encoded form: an optional quoted name followed
// by either b<width> or the member type.
func (f Field) Encode() string {
	var s string
	if f.Name != "" {
		s = `"` + f.Name + `"`
	}
	if f.BitWidth != nil {
		return s + "b" + strconv.Itoa(*f.BitWidth)
	}
	return s + f.Type.Encode()
}

// Decl renders the field as a C-like member declaration. pos supplies the
// positional placeholder (x0, x1, ...) for unnamed members.
func (f Field) Decl(pos int) string {
	return f.decl(pos, "")
}

func (f Field) decl(pos int, indent string) string {
	name := f.Name
	if name == "" {
		name = "x" + strconv.Itoa(pos)
	}
	if f.BitWidth != nil {
		return f.Type.decl(indent) + " " + name + " : " + strconv.Itoa(*f.BitWidth) + ";"
	}
	if f.Type != nil && f.Type.Kind == KindArray {
		count := ""
		if f.Type.Count != nil {
			count = strconv.Itoa(*f.Type.Count)
		}
		return f.Type.Elem.decl(indent) + " " + name + "[" + count + "];"
	}
	return f.Type.decl(indent) + " " + name + ";"
}
