package typeenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperty(t *testing.T) {
	p := ParseProperty(`T@"NSString",C,N,V_name`)
	assert.Equal(t, `@"NSString"`, p.TypeEncoding)
	assert.Equal(t, "_name", p.IvarName)
	assert.True(t, p.Copy)
	assert.True(t, p.NonAtomic)
	assert.False(t, p.ReadOnly)

	typ := p.Type()
	require.NotNil(t, typ)
	assert.Equal(t, KindObject, typ.Kind)
	assert.Equal(t, "NSString", typ.Name)
}

func TestParsePropertyAccessors(t *testing.T) {
	p := ParseProperty("Tc,GisHidden,SsetHidden:,VisHidden")
	assert.Equal(t, "c", p.TypeEncoding)
	assert.Equal(t, "isHidden", p.Getter)
	assert.Equal(t, "setHidden:", p.Setter)
	assert.Equal(t, "isHidden", p.IvarName)
}

func TestParsePropertyFlags(t *testing.T) {
	p := ParseProperty("T@,R,&,D,W,P,A")
	assert.True(t, p.ReadOnly)
	assert.True(t, p.Retain)
	assert.True(t, p.Dynamic)
	assert.True(t, p.Weak)
	assert.True(t, p.Collectable)
	assert.True(t, p.Atomic)
	assert.False(t, p.NonAtomic)
}

func TestPropertyDecl(t *testing.T) {
	tests := []struct {
		name  string
		attrs string
		prop  string
		want  string
	}{
		{
			name:  "copy nonatomic string",
			attrs: `T@"NSString",C,N,V_name`,
			prop:  "name",
			want:  "@property (nonatomic, copy) NSString *name",
		},
		{
			name:  "readonly scalar",
			attrs: "Tq,R,N,V_count",
			prop:  "count",
			want:  "@property (readonly, nonatomic) long long count",
		},
		{
			name:  "custom getter",
			attrs: "Tc,N,GisHidden,V_hidden",
			prop:  "hidden",
			want:  "@property (getter=isHidden, nonatomic) char hidden",
		},
		{
			name:  "no attributes",
			attrs: "Ti",
			prop:  "value",
			want:  "@property int value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseProperty(tt.attrs).Decl(tt.prop))
		})
	}
}

func TestParsePropertyEmpty(t *testing.T) {
	p := ParseProperty("")
	assert.Equal(t, Property{}, p)
	assert.Nil(t, p.Type())
}
