package typeenc

// Modifier is a single-character type qualifier prefix. Qualifiers stack, so a
// Modified node may wrap another Modified node.
type Modifier int

const (
	ModConst    Modifier = iota // r
	ModIn                       // n
	ModInout                    // N
	ModOut                      // o
	ModBycopy                   // O
	ModByref                    // R
	ModOneway                   // V
	ModRegister                 // +
	ModAtomic                   // A
	ModComplex                  // j
)

var modifierChars = map[Modifier]byte{
	ModConst:    'r',
	ModIn:       'n',
	ModInout:    'N',
	ModOut:      'o',
	ModBycopy:   'O',
	ModByref:    'R',
	ModOneway:   'V',
	ModRegister: '+',
	ModAtomic:   'A',
	ModComplex:  'j',
}

var modifierKinds = map[byte]Modifier{}

func init() {
	for mod, ch := range modifierChars {
		modifierKinds[ch] = mod
	}
}

var modifierKeywords = map[Modifier]string{
	ModConst:    "const",
	ModIn:       "in",
	ModInout:    "inout",
	ModOut:      "out",
	ModBycopy:   "bycopy",
	ModByref:    "byref",
	ModOneway:   "oneway",
	ModRegister: "register",
	ModAtomic:   "atomic",
	ModComplex:  "_Complex",
}

// Char returns the encoding character for the modifier.
func (m Modifier) Char() byte {
	return modifierChars[m]
}

// Keyword returns the declaration keyword for the modifier.
func (m Modifier) Keyword() string {
	return modifierKeywords[m]
}

func (m Modifier) String() string {
	return m.Keyword()
}

func modifierForChar(ch byte) (Modifier, bool) {
	mod, ok := modifierKinds[ch]
	return mod, ok
}
