// Package java models Java classes as mutable metadata: classes, fields,
// methods and the annotation usages applied to them. Models come either from
// compiled class files or are synthesized for dynamic (classless) types.
package java

import "strings"

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
	ClassKindPrimitive  ClassKind = "primitive"
	ClassKindArray      ClassKind = "array"
)

type MemberKind string

const (
	MemberKindField  MemberKind = "field"
	MemberKindMethod MemberKind = "method"
)

type MethodKind string

const (
	MethodKindGetter MethodKind = "getter"
	MethodKindSetter MethodKind = "setter"
	MethodKindOther  MethodKind = "other"
)

// TypeModel is a reference to a Java type, possibly parameterized.
type TypeModel struct {
	Name          string      `json:"name" msgpack:"name"`
	ArrayDepth    int         `json:"arrayDepth,omitempty" msgpack:"arrayDepth,omitempty"`
	TypeArguments []TypeModel `json:"typeArguments,omitempty" msgpack:"typeArguments,omitempty"`
}

func (t TypeModel) IsPrimitive() bool {
	return t.ArrayDepth == 0 && IsPrimitiveName(t.Name)
}

func (t TypeModel) IsArray() bool {
	return t.ArrayDepth > 0
}

func (t TypeModel) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}

func (t TypeModel) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	if len(t.TypeArguments) > 0 {
		sb.WriteString("<")
		for i, arg := range t.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteString(">")
	}
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

// TypeOf returns an unparameterized reference to the named class.
func TypeOf(name string) TypeModel {
	depth := 0
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
		depth++
	}
	return TypeModel{Name: name, ArrayDepth: depth}
}

// ParameterizedTypeOf returns a reference to the named class with the given
// type arguments.
func ParameterizedTypeOf(name string, args ...TypeModel) TypeModel {
	return TypeModel{Name: name, TypeArguments: args}
}

func IsPrimitiveName(name string) bool {
	switch name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func splitClassName(fullName string) (pkg, simpleName string) {
	lastDot := strings.LastIndex(fullName, ".")
	if lastDot == -1 {
		return "", fullName
	}
	return fullName[:lastDot], fullName[lastDot+1:]
}

// Decapitalize applies the JavaBeans property naming rule: the first letter
// is lowered unless the first two letters are both upper case.
func Decapitalize(name string) string {
	if name == "" {
		return name
	}
	if len(name) > 1 && isUpper(name[0]) && isUpper(name[1]) {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
