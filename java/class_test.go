package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveDynamicFields(t *testing.T) {
	c := NewClassDetails("com.acme.Mixed", ClassKindClass)
	c.AddField(NewFieldDetails("id", TypeOf("java.lang.Long")))
	c.AddField(NewDynamicFieldDetails("extra", TypeOf("java.lang.String")))
	require.NotNil(t, c.FindFieldByName("extra"))

	c.RemoveDynamicFields()

	require.Len(t, c.Fields(), 1)
	assert.Equal(t, "id", c.Fields()[0].Name())
	assert.Nil(t, c.FindFieldByName("extra"))
}
