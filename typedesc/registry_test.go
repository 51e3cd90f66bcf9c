package typedesc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()

	javaType, err := r.JavaTypeClass("org.hibernate.type.descriptor.java.UUIDJavaType")
	require.NoError(t, err)
	assert.Equal(t, "java.util.UUID", javaType)

	jdbc, err := r.JdbcType("org.hibernate.type.descriptor.jdbc.VarcharJdbcType")
	require.NoError(t, err)
	assert.Equal(t, VarChar, jdbc.Code)
	assert.Equal(t, "java.lang.String", jdbc.RecommendedJavaType)
}

func TestRegistryUserTypes(t *testing.T) {
	r := NewRegistry()

	_, err := r.UserTypeReturnedClass("com.acme.MoneyType")
	var instErr *InstantiationError
	require.True(t, errors.As(err, &instErr))
	assert.Equal(t, "com.acme.MoneyType", instErr.Class)
	assert.Contains(t, err.Error(), "Unable to create instance")

	r.RegisterUserType("com.acme.MoneyType", "com.acme.Money")
	returned, err := r.UserTypeReturnedClass("com.acme.MoneyType")
	require.NoError(t, err)
	assert.Equal(t, "com.acme.Money", returned)

	entries := r.Entries()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, Entry{Kind: "user-type", Class: "com.acme.MoneyType", JavaType: "com.acme.Money"}, last)
}

func TestSqlTypes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		javaType string
	}{
		{"VARCHAR", VarChar, "java.lang.String"},
		{"BIGINT", BigInt, "java.lang.Long"},
		{"TIMESTAMP", Timestamp, "java.sql.Timestamp"},
		{"UUID", UUID, "java.util.UUID"},
		{"VARBINARY", VarBinary, "byte[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := SqlTypeCode(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.name, SqlTypeName(code))

			javaType, ok := RecommendedJavaType(code)
			require.True(t, ok)
			assert.Equal(t, tt.javaType, javaType)
		})
	}

	_, ok := SqlTypeCode("varchar")
	assert.False(t, ok, "names are case sensitive")

	_, err := NewRegistry().JdbcTypeForCode(Null)
	assert.Error(t, err)
}
