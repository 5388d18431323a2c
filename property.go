package typeenc

import "strings"

// Property attribute characters as emitted by property_getAttributes.
const (
	propAttrReadOnly  = "R" // property is read-only
	propAttrCopy      = "C" // property is a copy of the value last assigned
	propAttrByref     = "&" // property is a reference to the value last assigned
	propAttrDynamic   = "D" // property is dynamic
	propAttrGetter    = "G" // followed by getter selector name
	propAttrSetter    = "S" // followed by setter selector name
	propAttrIVar      = "V" // followed by instance variable name
	propAttrType      = "T" // followed by old-style type encoding
	propAttrWeak      = "W" // 'weak' property
	propAttrStrong    = "P" // property GC'able
	propAttrAtomic    = "A" // property atomic
	propAttrNonAtomic = "N" // property non-atomic
)

// Property is a decoded property attribute string such as
// `T@"NSString",C,N,V_name`. The type encoding stays raw; Type decodes it on
// demand through the core decoder.
type Property struct {
	TypeEncoding string
	IvarName     string
	Getter       string
	Setter       string
	ReadOnly     bool
	Copy         bool
	Retain       bool
	NonAtomic    bool
	Atomic       bool
	Dynamic      bool
	Weak         bool
	Collectable  bool
}

// ParseProperty splits a runtime property attribute string into its parts.
// Unrecognized attributes are ignored.
func ParseProperty(attrs string) Property {
	var p Property
	for _, attr := range strings.Split(attrs, ",") {
		if attr == "" {
			continue
		}
		switch {
		case strings.HasPrefix(attr, propAttrType):
			p.TypeEncoding = strings.TrimPrefix(attr, propAttrType)
		case strings.HasPrefix(attr, propAttrIVar):
			p.IvarName = strings.TrimPrefix(attr, propAttrIVar)
		case strings.HasPrefix(attr, propAttrGetter):
			p.Getter = strings.TrimPrefix(attr, propAttrGetter)
		case strings.HasPrefix(attr, propAttrSetter):
			p.Setter = strings.TrimPrefix(attr, propAttrSetter)
		case attr == propAttrReadOnly:
			p.ReadOnly = true
		case attr == propAttrCopy:
			p.Copy = true
		case attr == propAttrByref:
			p.Retain = true
		case attr == propAttrNonAtomic:
			p.NonAtomic = true
		case attr == propAttrAtomic:
			p.Atomic = true
		case attr == propAttrDynamic:
			p.Dynamic = true
		case attr == propAttrWeak:
			p.Weak = true
		case attr == propAttrStrong:
			p.Collectable = true
		}
	}
	return p
}

// Type decodes the property's type encoding, or nil when absent/malformed.
func (p Property) Type() *Type {
	if p.TypeEncoding == "" {
		return nil
	}
	return Decode(p.TypeEncoding)
}

// Attributes lists the decoded attribute keywords in declaration order.
func (p Property) Attributes() []string {
	var attrs []string
	if p.Getter != "" {
		attrs = append(attrs, "getter="+p.Getter)
	}
	if p.Setter != "" {
		attrs = append(attrs, "setter="+p.Setter)
	}
	if p.ReadOnly {
		attrs = append(attrs, "readonly")
	}
	if p.NonAtomic {
		attrs = append(attrs, "nonatomic")
	}
	if p.Atomic {
		attrs = append(attrs, "atomic")
	}
	if p.Copy {
		attrs = append(attrs, "copy")
	}
	if p.Retain {
		attrs = append(attrs, "retain")
	}
	if p.Weak {
		attrs = append(attrs, "weak")
	}
	if p.Dynamic {
		attrs = append(attrs, "dynamic")
	}
	if p.Collectable {
		attrs = append(attrs, "collectable")
	}
	return attrs
}

// Decl renders the property as an Objective-C declaration, using name for the
// property identifier (the ivar name with its leading underscore trimmed is a
// reasonable default when the caller has nothing better).
func (p Property) Decl(name string) string {
	var b strings.Builder
	b.WriteString("@property ")
	if attrs := p.Attributes(); len(attrs) > 0 {
		b.WriteString("(" + strings.Join(attrs, ", ") + ") ")
	}
	if t := p.Type(); t != nil {
		b.WriteString(t.Decl())
		if !strings.HasSuffix(b.String(), "*") {
			b.WriteByte(' ')
		}
	}
	b.WriteString(name)
	return b.String()
}
