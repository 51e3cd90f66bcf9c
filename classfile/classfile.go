// Package classfile reads the parts of a JVM class file that describe
// persistent state: the class header, fields, methods, generic signatures and
// runtime-visible annotations. Bytecode is skipped.
package classfile

// ClassFile is a decoded class file with constant pool references already
// resolved to strings.
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	AccessFlags  AccessFlags
	// Name is the internal (slash separated) class name.
	Name        string
	SuperName   string
	Interfaces  []string
	Signature   string
	Fields      []Member
	Methods     []Member
	Annotations []Annotation
}

// Member is a field or method declaration.
type Member struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
	Signature   string
	Annotations []Annotation
}

// Annotation is a runtime-visible annotation. Type is the field descriptor of
// the annotation interface, e.g. "Ljakarta/persistence/Id;".
type Annotation struct {
	Type     string
	Elements []ElementValuePair
}

type ElementValuePair struct {
	Name  string
	Value interface{}
}

// EnumValue is an enum constant element value.
type EnumValue struct {
	Type string
	Name string
}

// ClassValue is a class literal element value, as a return descriptor.
type ClassValue string

func (cf *ClassFile) ClassName() string {
	return cf.Name
}

func (cf *ClassFile) SuperClassName() string {
	return cf.SuperName
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsAnnotation() bool {
	return cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsEnum() bool {
	return cf.AccessFlags.IsEnum()
}

func (cf *ClassFile) GetField(name string) *Member {
	for i := range cf.Fields {
		if cf.Fields[i].Name == name {
			return &cf.Fields[i]
		}
	}
	return nil
}

func (cf *ClassFile) GetMethods(name string) []*Member {
	var methods []*Member
	for i := range cf.Methods {
		if cf.Methods[i].Name == name {
			methods = append(methods, &cf.Methods[i])
		}
	}
	return methods
}

func (m *Member) IsStatic() bool    { return m.AccessFlags.IsStatic() }
func (m *Member) IsSynthetic() bool { return m.AccessFlags.IsSynthetic() }
func (m *Member) IsBridge() bool    { return m.AccessFlags.IsBridge() }
func (m *Member) IsTransient() bool { return m.AccessFlags.IsTransient() }
func (m *Member) IsAbstract() bool  { return m.AccessFlags.IsAbstract() }

// IsInitializer reports whether the method is a constructor or static
// initializer.
func (m *Member) IsInitializer() bool {
	return m.Name == "<init>" || m.Name == "<clinit>"
}
