package java

// ClassSnapshot is an immutable copy of a class model, detached from later
// mutation of the registry.
type ClassSnapshot struct {
	Name        string             `json:"name" msgpack:"name"`
	Kind        ClassKind          `json:"kind" msgpack:"kind"`
	SuperClass  string             `json:"superClass,omitempty" msgpack:"superClass,omitempty"`
	IsAbstract  bool               `json:"abstract,omitempty" msgpack:"abstract,omitempty"`
	IsDynamic   bool               `json:"dynamic,omitempty" msgpack:"dynamic,omitempty"`
	Annotations []*AnnotationUsage `json:"annotations,omitempty" msgpack:"annotations,omitempty"`
	Fields      []MemberSnapshot   `json:"fields,omitempty" msgpack:"fields,omitempty"`
	Methods     []MemberSnapshot   `json:"methods,omitempty" msgpack:"methods,omitempty"`
}

type MemberSnapshot struct {
	Name          string             `json:"name" msgpack:"name"`
	AttributeName string             `json:"attributeName,omitempty" msgpack:"attributeName,omitempty"`
	Type          TypeModel          `json:"type" msgpack:"type"`
	Annotations   []*AnnotationUsage `json:"annotations,omitempty" msgpack:"annotations,omitempty"`
}

// Snapshot copies the class, its members and all annotation usages. Methods
// without annotation usages are left out.
func (c *ClassDetails) Snapshot() ClassSnapshot {
	s := ClassSnapshot{
		Name:        c.Name,
		Kind:        c.Kind,
		SuperClass:  c.SuperClassName,
		IsAbstract:  c.IsAbstract,
		IsDynamic:   c.IsDynamic,
		Annotations: c.copyUsages(),
	}
	for _, f := range c.fields {
		s.Fields = append(s.Fields, MemberSnapshot{
			Name:          f.name,
			AttributeName: f.AttributeName(),
			Type:          f.typ,
			Annotations:   f.copyUsages(),
		})
	}
	for _, m := range c.methods {
		if len(m.usages) == 0 {
			continue
		}
		s.Methods = append(s.Methods, MemberSnapshot{
			Name:          m.name,
			AttributeName: m.AttributeName(),
			Type:          m.Type(),
			Annotations:   m.copyUsages(),
		})
	}
	return s
}

// Annotation returns the usage of the given type, or nil.
func (s ClassSnapshot) Annotation(annotationType string) *AnnotationUsage {
	return findUsage(s.Annotations, annotationType)
}

// Field returns the named field snapshot, or nil.
func (s ClassSnapshot) Field(name string) *MemberSnapshot {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

func (m MemberSnapshot) Annotation(annotationType string) *AnnotationUsage {
	return findUsage(m.Annotations, annotationType)
}

func findUsage(usages []*AnnotationUsage, annotationType string) *AnnotationUsage {
	for _, u := range usages {
		if u.Type == annotationType {
			return u
		}
	}
	return nil
}
