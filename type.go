package typeenc

// ref - https://developer.apple.com/library/archive/documentation/Cocoa/Conceptual/ObjCRuntimeGuide/Articles/ocrtTypeEncodings.html

// Kind identifies the variant of a Type node.
type Kind int

const (
	KindInvalid Kind = iota
	KindClass            // #
	KindSelector         // :
	KindChar             // c
	KindUnsignedChar     // C
	KindShort            // s
	KindUnsignedShort    // S
	KindInt              // i
	KindUnsignedInt      // I
	KindLong             // l
	KindUnsignedLong     // L
	KindLongLong         // q
	KindUnsignedLongLong // Q
	KindInt128           // t
	KindUnsignedInt128   // T
	KindFloat            // f
	KindDouble           // d
	KindLongDouble       // D
	KindBool             // B
	KindVoid             // v
	KindConstVoid        // 1
	KindInVoid           // 2
	KindCharPtr          // *
	KindAtom             // %
	KindUnknown          // ?
	KindObject           // @ or @"Name"
	KindBlock            // @? or @?<...>
	KindFunctionPointer  // ^?
	KindArray            // [Ntype]
	KindPointer          // ^type
	KindBitField         // bN
	KindStruct           // {name=fields}
	KindUnion            // (name=fields)
	KindModified         // qualifier-prefixed type
	KindOther            // unmodeled encoding kept verbatim
)

// Type is a decoded type-encoding node. Only the fields relevant to the Kind
// are populated; every node exclusively owns its children.
type Type struct {
	Kind     Kind
	Name     string   // Object class name or Struct/Union tag; "" means anonymous (plain id, "?" tag)
	Modifier Modifier // set when Kind == KindModified
	Elem     *Type    // pointee (Pointer), element (Array), wrapped type (Modified)
	Count    *int     // Array element count; nil when the encoding carries none
	Width    int      // BitField width
	Fields   []Field  // Struct/Union members; nil means opaque/forward, empty means known-empty
	Return   *Type    // Block return type; nil for the bare @? marker
	Params   []*Type  // Block parameter types; nil iff Return is nil
	Raw      string   // Other: raw encoding text
}

// primitiveKinds maps a leading encoding character to its primitive kind.
var primitiveKinds = map[byte]Kind{
	'#': KindClass,
	':': KindSelector,
	'c': KindChar,
	'C': KindUnsignedChar,
	's': KindShort,
	'S': KindUnsignedShort,
	'i': KindInt,
	'I': KindUnsignedInt,
	'l': KindLong,
	'L': KindUnsignedLong,
	'q': KindLongLong,
	'Q': KindUnsignedLongLong,
	't': KindInt128,
	'T': KindUnsignedInt128,
	'f': KindFloat,
	'd': KindDouble,
	'D': KindLongDouble,
	'B': KindBool,
	'v': KindVoid,
	'1': KindConstVoid,
	'2': KindInVoid,
	'*': KindCharPtr,
	'%': KindAtom,
	'?': KindUnknown,
}

// primitiveChars is the reverse of primitiveKinds, used by Encode.
var primitiveChars = map[Kind]byte{}

func init() {
	for ch, kind := range primitiveKinds {
		primitiveChars[kind] = ch
	}
}

// primitiveDecls maps primitive kinds to the keyword used by Decl.
var primitiveDecls = map[Kind]string{
	KindClass:            "Class",
	KindSelector:         "SEL",
	KindChar:             "char",
	KindUnsignedChar:     "unsigned char",
	KindShort:            "short",
	KindUnsignedShort:    "unsigned short",
	KindInt:              "int",
	KindUnsignedInt:      "unsigned int",
	KindLong:             "long",
	KindUnsignedLong:     "unsigned long",
	KindLongLong:         "long long",
	KindUnsignedLongLong: "unsigned long long",
	KindInt128:           "__int128",
	KindUnsignedInt128:   "unsigned __int128",
	KindFloat:            "float",
	KindDouble:           "double",
	KindLongDouble:       "long double",
	KindBool:             "BOOL",
	KindVoid:             "void",
	KindConstVoid:        "const void",
	KindInVoid:           "in void",
	KindCharPtr:          "char *",
	KindAtom:             "NXAtom",
	KindUnknown:          "void",
}

func (k Kind) String() string {
	if decl, ok := primitiveDecls[k]; ok {
		return decl
	}
	switch k {
	case KindObject:
		return "object"
	case KindBlock:
		return "block"
	case KindFunctionPointer:
		return "function pointer"
	case KindArray:
		return "array"
	case KindPointer:
		return "pointer"
	case KindBitField:
		return "bit field"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindModified:
		return "modified"
	case KindOther:
		return "other"
	default:
		return "invalid"
	}
}

// String implements fmt.Stringer for convenience.
func (t *Type) String() string {
	return t.Decl()
}
