package xmlproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ormxml/mapping"
)

func TestInterpretSimpleTypeRoundTrip(t *testing.T) {
	for _, st := range SimpleTypes() {
		got, ok := InterpretSimpleType(st.JavaType())
		require.True(t, ok, st.String())
		assert.Equal(t, st, got)

		if st.IsPrimitive() {
			object := st.ObjectForm()
			assert.False(t, object.IsPrimitive())
			primitive, ok := object.PrimitiveForm()
			require.True(t, ok)
			assert.Equal(t, st, primitive)
		}
	}

	st, ok := InterpretSimpleType("int")
	require.True(t, ok)
	assert.Equal(t, SimpleTypePrimitiveInt, st)
	assert.Equal(t, SimpleTypeInteger, st.ObjectForm())
	assert.Equal(t, "org.hibernate.type.descriptor.java.IntegerJavaType", st.JavaTypeDescriptor())

	_, ok = InterpretSimpleType("com.acme.Money")
	assert.False(t, ok)
}

func TestResolveJavaType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "java.lang.Object"},
		{"int", "int"},
		{"Long", "java.lang.Long"},
		{"bigdecimal", "java.math.BigDecimal"},
		{"UUID", "java.lang.Character"},
		{"uuid", "java.lang.Character"},
		{"Money", "com.x.Money"},
		{"java.util.List", "java.util.List"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveJavaType("com.x", tt.name))
		})
	}
}

func TestResolveUserType(t *testing.T) {
	assert.Equal(t, UserTypeNone, ResolveUserType(nil, "com.x").Kind)
	assert.Equal(t, UserTypeNone, ResolveUserType(&mapping.UserType{}, "com.x").Kind)

	r := ResolveUserType(&mapping.UserType{Value: "int"}, "com.x")
	assert.Equal(t, UserTypeBuiltin, r.Kind)
	assert.Equal(t, SimpleTypePrimitiveInt, r.Builtin)

	params := []mapping.ConfigParameter{{Name: "scale", Value: "2"}}
	r = ResolveUserType(&mapping.UserType{Value: "MoneyType", Parameters: params}, "com.x")
	assert.Equal(t, UserTypeCustom, r.Kind)
	assert.Equal(t, "com.x.MoneyType", r.Class)
	assert.Equal(t, params, r.Parameters)
}
