package java

// ClassDetails is the mutable metadata of one class. Class-backed instances
// come from class files; dynamic instances are synthesized for mapped types
// that have no Java class.
type ClassDetails struct {
	Annotations
	Name       string
	SimpleName string
	Package    string
	Kind       ClassKind
	IsAbstract bool
	IsDynamic  bool
	SuperClass *ClassDetails
	// SuperClassName is kept even when the superclass could not be resolved.
	SuperClassName string

	fields  []*FieldDetails
	methods []*MethodDetails
	index   *memberIndex
}

func NewClassDetails(name string, kind ClassKind) *ClassDetails {
	pkg, simple := splitClassName(name)
	return &ClassDetails{
		Name:       name,
		SimpleName: simple,
		Package:    pkg,
		Kind:       kind,
	}
}

// NewDynamicClassDetails creates the model of a dynamic type. The name is an
// entity or embeddable name rather than a class name.
func NewDynamicClassDetails(name string, superClass *ClassDetails, isAbstract bool) *ClassDetails {
	c := NewClassDetails(name, ClassKindClass)
	c.IsDynamic = true
	c.IsAbstract = isAbstract
	c.SetSuperClass(superClass)
	return c
}

func (c *ClassDetails) SetSuperClass(superClass *ClassDetails) {
	c.SuperClass = superClass
	if superClass != nil {
		c.SuperClassName = superClass.Name
	}
}

func (c *ClassDetails) IsInterface() bool {
	return c.Kind == ClassKindInterface || c.Kind == ClassKindAnnotation
}

func (c *ClassDetails) Fields() []*FieldDetails {
	return c.fields
}

func (c *ClassDetails) Methods() []*MethodDetails {
	return c.methods
}

func (c *ClassDetails) AddField(f *FieldDetails) {
	f.declaringClass = c
	c.fields = append(c.fields, f)
	c.index = nil
}

// RemoveDynamicFields drops the synthesized fields so a dynamic type can be
// prepared again from its mapping.
func (c *ClassDetails) RemoveDynamicFields() {
	kept := c.fields[:0]
	for _, f := range c.fields {
		if !f.isDynamic {
			kept = append(kept, f)
		}
	}
	for i := len(kept); i < len(c.fields); i++ {
		c.fields[i] = nil
	}
	c.fields = kept
	c.index = nil
}

func (c *ClassDetails) AddMethod(m *MethodDetails) {
	m.declaringClass = c
	c.methods = append(c.methods, m)
	c.index = nil
}

// ClearMemberAnnotationUsages removes every annotation usage from the fields
// and methods of the class.
func (c *ClassDetails) ClearMemberAnnotationUsages() {
	for _, f := range c.fields {
		f.ClearAnnotationUsages()
	}
	for _, m := range c.methods {
		m.ClearAnnotationUsages()
	}
}

// memberIndex is built once per class on first lookup.
type memberIndex struct {
	fields  map[string]*FieldDetails
	getters map[string]*MethodDetails
	methods map[string][]*MethodDetails
}

func (c *ClassDetails) lookup() *memberIndex {
	if c.index != nil {
		return c.index
	}
	idx := &memberIndex{
		fields:  make(map[string]*FieldDetails, len(c.fields)),
		getters: map[string]*MethodDetails{},
		methods: make(map[string][]*MethodDetails, len(c.methods)),
	}
	for _, f := range c.fields {
		idx.fields[f.name] = f
	}
	for _, m := range c.methods {
		idx.methods[m.name] = append(idx.methods[m.name], m)
		if m.MethodKind() == MethodKindGetter {
			if _, seen := idx.getters[m.AttributeName()]; !seen {
				idx.getters[m.AttributeName()] = m
			}
		}
	}
	c.index = idx
	return idx
}

func (c *ClassDetails) FindFieldByName(name string) *FieldDetails {
	return c.lookup().fields[name]
}

// FindGetter returns the getter backing the named attribute.
func (c *ClassDetails) FindGetter(attributeName string) *MethodDetails {
	return c.lookup().getters[attributeName]
}

func (c *ClassDetails) FindMethodsByName(name string) []*MethodDetails {
	return c.lookup().methods[name]
}
