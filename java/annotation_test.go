package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	filterType  = "org.hibernate.annotations.Filter"
	filtersType = "org.hibernate.annotations.Filters"
)

func TestApplyAnnotationUsage(t *testing.T) {
	var a Annotations
	a.ApplyAnnotationUsage(NewAnnotationUsage("a.Entity"))
	a.ApplyAnnotationUsage(NewAnnotationUsage("a.Table").Set("name", "first"))
	a.ApplyAnnotationUsage(NewAnnotationUsage("a.Cacheable"))

	replaced := NewAnnotationUsage("a.Table").Set("name", "second")
	a.ApplyAnnotationUsage(replaced)

	usages := a.AnnotationUsages()
	require.Len(t, usages, 3)
	assert.Equal(t, "a.Table", usages[1].Type)
	assert.Equal(t, "second", usages[1].String("name"))
	assert.Same(t, replaced, a.GetAnnotationUsage("a.Table"))
}

func TestGetOrApplyAnnotationUsage(t *testing.T) {
	var a Annotations
	first := a.GetOrApplyAnnotationUsage("a.Id")
	second := a.GetOrApplyAnnotationUsage("a.Id")
	assert.Same(t, first, second)
	assert.Len(t, a.AnnotationUsages(), 1)
}

func TestApplyRepeatableAnnotationUsage(t *testing.T) {
	var a Annotations
	a.ApplyAnnotationUsage(NewAnnotationUsage("a.Entity"))

	one := NewAnnotationUsage(filterType).Set("name", "one")
	two := NewAnnotationUsage(filterType).Set("name", "two")
	three := NewAnnotationUsage(filterType).Set("name", "three")

	a.ApplyRepeatableAnnotationUsage(one, filtersType)
	assert.Same(t, one, a.GetAnnotationUsage(filterType))

	a.ApplyRepeatableAnnotationUsage(two, filtersType)
	assert.False(t, a.HasAnnotationUsage(filterType))
	container := a.GetAnnotationUsage(filtersType)
	require.NotNil(t, container)
	assert.Equal(t, []*AnnotationUsage{one, two}, container.Nested("value"))
	assert.Equal(t, filtersType, a.AnnotationUsages()[1].Type, "container takes the singular position")

	a.ApplyRepeatableAnnotationUsage(three, filtersType)
	assert.Equal(t, []*AnnotationUsage{one, two, three}, a.GetAnnotationUsage(filtersType).Nested("value"))
}

func TestReplaceAnnotationUsage(t *testing.T) {
	var a Annotations
	a.ApplyAnnotationUsage(NewAnnotationUsage("a.Entity"))
	a.ApplyAnnotationUsage(NewAnnotationUsage("a.NamedQuery").Set("name", "q"))
	a.ApplyAnnotationUsage(NewAnnotationUsage("a.Table"))

	plural := NewAnnotationUsage("a.NamedQueries")
	a.ReplaceAnnotationUsage("a.NamedQuery", plural)

	types := make([]string, 0, 3)
	for _, u := range a.AnnotationUsages() {
		types = append(types, u.Type)
	}
	assert.Equal(t, []string{"a.Entity", "a.NamedQueries", "a.Table"}, types)
}

func TestClearAnnotationUsagesIsIdempotent(t *testing.T) {
	c := NewClassDetails("com.acme.Person", ClassKindClass)
	c.ApplyAnnotationUsage(NewAnnotationUsage("a.Entity"))
	f := NewFieldDetails("name", TypeOf("java.lang.String"))
	f.ApplyAnnotationUsage(NewAnnotationUsage("a.Basic"))
	c.AddField(f)

	for i := 0; i < 2; i++ {
		c.ClearAnnotationUsages()
		c.ClearMemberAnnotationUsages()
		assert.Empty(t, c.AnnotationUsages())
		assert.Empty(t, f.AnnotationUsages())
	}
}

func TestAnnotationUsageCopy(t *testing.T) {
	nested := NewAnnotationUsage("a.JoinColumn").Set("name", "owner_id")
	u := NewAnnotationUsage("a.JoinColumns").
		Set("value", []*AnnotationUsage{nested}).
		Set("names", []string{"x"})

	c := u.Copy()
	c.Nested("value")[0].Set("name", "changed")
	c.Strings("names")[0] = "y"

	assert.Equal(t, "owner_id", nested.String("name"))
	assert.Equal(t, []string{"x"}, u.Strings("names"))
}
