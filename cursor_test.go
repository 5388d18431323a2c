package typeenc

import "testing"

func TestSkipType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		rest  string
		ok    bool
	}{
		{"primitive", "i16", "i", "16", true},
		{"pointer", "^i8", "^i", "8", true},
		{"function pointer", "^?0", "^?", "0", true},
		{"qualified pointer", "rn^i4", "rn^i", "4", true},
		{"struct", "{CGPoint=dd}16", "{CGPoint=dd}", "16", true},
		{"nested struct", "{A={B=i}}0", "{A={B=i}}", "0", true},
		{"union", "(?=i)8", "(?=i)", "8", true},
		{"array", "[10i]4", "[10i]", "4", true},
		{"bit field", "b4b4", "b4", "b4", true},
		{"quoted object", `@"NSString"16`, `@"NSString"`, "16", true},
		{"bare block", "@?24", "@?", "24", true},
		{"block with signature", "@?<v@?i>8", "@?<v@?i>", "8", true},
		{"empty", "", "", "", false},
		{"unbalanced struct", "{oops", "", "{oops", false},
		{"qualifier at end", "r", "", "r", false},
		{"unknown leading char", "&i", "", "&i", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			got, ok := c.skipType()
			if ok != tt.ok {
				t.Fatalf("skipType(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("skipType(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if rest := c.rest(); rest != tt.rest {
				t.Errorf("skipType(%q) rest = %q, want %q", tt.input, rest, tt.rest)
			}
		})
	}
}

func TestSkipTypeRestoresOnFailure(t *testing.T) {
	c := newCursor("{oops")
	if _, ok := c.skipType(); ok {
		t.Fatal("skipType on unbalanced input succeeded")
	}
	if c.pos != 0 {
		t.Errorf("cursor moved on failure: pos = %d", c.pos)
	}
}

func TestReadNumber(t *testing.T) {
	c := newCursor("123x")
	n, ok := c.readNumber()
	if !ok || n != 123 {
		t.Errorf("readNumber() = %d, %v; want 123, true", n, ok)
	}
	if c.rest() != "x" {
		t.Errorf("rest = %q, want %q", c.rest(), "x")
	}
	if _, ok := c.readNumber(); ok {
		t.Error("readNumber() on non-digit reported ok")
	}
}
