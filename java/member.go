package java

import "strings"

// MemberDetails is a field or method that may back a persistent attribute.
type MemberDetails interface {
	AnnotationTarget
	Name() string
	// AttributeName is the persistent attribute name the member backs: the
	// field name, or the JavaBeans property name for getters and setters.
	AttributeName() string
	Type() TypeModel
	Kind() MemberKind
	DeclaringClass() *ClassDetails
	IsDynamic() bool
}

type FieldDetails struct {
	Annotations
	name           string
	typ            TypeModel
	isStatic       bool
	isTransient    bool
	isDynamic      bool
	declaringClass *ClassDetails
}

func NewFieldDetails(name string, typ TypeModel) *FieldDetails {
	return &FieldDetails{name: name, typ: typ}
}

// NewDynamicFieldDetails creates a synthesized field for a dynamic type.
// Dynamic fields are always non-static and persistable.
func NewDynamicFieldDetails(name string, typ TypeModel) *FieldDetails {
	return &FieldDetails{name: name, typ: typ, isDynamic: true}
}

func (f *FieldDetails) Name() string                  { return f.name }
func (f *FieldDetails) AttributeName() string         { return f.name }
func (f *FieldDetails) Type() TypeModel               { return f.typ }
func (f *FieldDetails) Kind() MemberKind              { return MemberKindField }
func (f *FieldDetails) DeclaringClass() *ClassDetails { return f.declaringClass }
func (f *FieldDetails) IsDynamic() bool               { return f.isDynamic }
func (f *FieldDetails) IsStatic() bool                { return f.isStatic }
func (f *FieldDetails) IsTransient() bool             { return f.isTransient }

// IsPersistable reports whether the field can hold persistent state.
func (f *FieldDetails) IsPersistable() bool {
	return !f.isStatic && !f.isTransient
}

type MethodDetails struct {
	Annotations
	name           string
	returnType     TypeModel
	parameters     []TypeModel
	isStatic       bool
	isAbstract     bool
	declaringClass *ClassDetails
}

func NewMethodDetails(name string, returnType TypeModel, parameters ...TypeModel) *MethodDetails {
	return &MethodDetails{name: name, returnType: returnType, parameters: parameters}
}

func (m *MethodDetails) Name() string                  { return m.name }
func (m *MethodDetails) Kind() MemberKind              { return MemberKindMethod }
func (m *MethodDetails) DeclaringClass() *ClassDetails { return m.declaringClass }
func (m *MethodDetails) IsDynamic() bool               { return false }
func (m *MethodDetails) IsStatic() bool                { return m.isStatic }
func (m *MethodDetails) IsAbstract() bool              { return m.isAbstract }
func (m *MethodDetails) ReturnType() TypeModel         { return m.returnType }
func (m *MethodDetails) Parameters() []TypeModel       { return m.parameters }

// Type is the attribute type for getters and setters and the return type
// otherwise.
func (m *MethodDetails) Type() TypeModel {
	if m.MethodKind() == MethodKindSetter {
		return m.parameters[0]
	}
	return m.returnType
}

func (m *MethodDetails) MethodKind() MethodKind {
	if m.isStatic {
		return MethodKindOther
	}
	switch {
	case len(m.parameters) == 0 && !m.returnType.IsVoid():
		if hasPropertyPrefix(m.name, "get") {
			return MethodKindGetter
		}
		if hasPropertyPrefix(m.name, "is") && isBooleanType(m.returnType) {
			return MethodKindGetter
		}
	case len(m.parameters) == 1 && m.returnType.IsVoid():
		if hasPropertyPrefix(m.name, "set") {
			return MethodKindSetter
		}
	}
	return MethodKindOther
}

// AttributeName returns the property name for getters and setters and the
// method name otherwise.
func (m *MethodDetails) AttributeName() string {
	switch m.MethodKind() {
	case MethodKindGetter:
		if strings.HasPrefix(m.name, "is") {
			return Decapitalize(m.name[2:])
		}
		return Decapitalize(m.name[3:])
	case MethodKindSetter:
		return Decapitalize(m.name[3:])
	}
	return m.name
}

func hasPropertyPrefix(name, prefix string) bool {
	return len(name) > len(prefix) && strings.HasPrefix(name, prefix)
}

func isBooleanType(t TypeModel) bool {
	return t.ArrayDepth == 0 && (t.Name == "boolean" || t.Name == "java.lang.Boolean")
}
