package xmlproc

import (
	"strings"

	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
	"github.com/dhamidi/ormxml/typedesc"
)

// wrapperNames maps the lower-cased simple names matched by resolveJavaType
// to the qualified class. "uuid" has always resolved to java.lang.Character
// and mapping documents may depend on it.
var wrapperNames = map[string]string{
	"byte":       "java.lang.Byte",
	"boolean":    "java.lang.Boolean",
	"short":      "java.lang.Short",
	"integer":    "java.lang.Integer",
	"long":       "java.lang.Long",
	"double":     "java.lang.Double",
	"float":      "java.lang.Float",
	"biginteger": "java.math.BigInteger",
	"bigdecimal": "java.math.BigDecimal",
	"string":     "java.lang.String",
	"character":  "java.lang.Character",
	"uuid":       "java.lang.Character",
}

// resolveJavaType interprets a type name written in a mapping document.
// Primitive names are kept, wrapper simple names match case-insensitively,
// anything else is qualified with pkg unless already qualified.
func resolveJavaType(pkg, name string) string {
	if name == "" {
		return "java.lang.Object"
	}
	switch name {
	case "byte", "boolean", "short", "int", "long", "double", "float":
		return name
	}
	if qualified, ok := wrapperNames[strings.ToLower(name)]; ok {
		return qualified
	}
	return qualifyIfNeeded(pkg, name)
}

// UserTypeKind tags a UserTypeResolution.
type UserTypeKind int

const (
	UserTypeNone UserTypeKind = iota
	UserTypeBuiltin
	UserTypeCustom
)

// UserTypeResolution is what a <type> value stands for: nothing, one of
// the built-in simple types, or a custom UserType implementation.
type UserTypeResolution struct {
	Kind       UserTypeKind
	Builtin    SimpleType
	Class      string
	Parameters []mapping.ConfigParameter
}

// ResolveUserType classifies a <type> node. Custom class names are
// qualified with pkg.
func ResolveUserType(node *mapping.UserType, pkg string) UserTypeResolution {
	if node == nil || node.Value == "" {
		return UserTypeResolution{Kind: UserTypeNone}
	}
	if t, ok := InterpretSimpleType(node.Value); ok {
		return UserTypeResolution{Kind: UserTypeBuiltin, Builtin: t}
	}
	return UserTypeResolution{
		Kind:       UserTypeCustom,
		Class:      resolveJavaType(pkg, node.Value),
		Parameters: node.Parameters,
	}
}

// userTypeAnnotations names the annotations a resolution is rendered
// with: built-ins become a JavaType descriptor reference, custom types a
// UserType reference with parameters.
type userTypeAnnotations struct {
	builtin string
	custom  string
}

var (
	standardUserTypes = userTypeAnnotations{builtin: annotations.JavaType, custom: annotations.Type}
	mapKeyUserTypes   = userTypeAnnotations{builtin: annotations.MapKeyJavaType, custom: annotations.MapKeyType}
)

func applyUserType(node *mapping.UserType, member java.MemberDetails, table userTypeAnnotations, ctx *XmlDocumentContext) {
	r := ResolveUserType(node, ctx.EffectiveDefaults().Package)
	switch r.Kind {
	case UserTypeBuiltin:
		makeAnnotation(table.builtin, member).Set("value", r.Builtin.ObjectForm().JavaTypeDescriptor())
	case UserTypeCustom:
		usage := makeAnnotation(table.custom, member).Set("value", r.Class)
		usage.Set("parameters", collectParameters(r.Parameters))
	}
}

func collectParameters(params []mapping.ConfigParameter) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(params))
	for i, p := range params {
		out[i] = newUsage(annotations.Parameter).Set("name", p.Name).Set("value", p.Value)
	}
	return out
}

func applyTargetClass(name string, member java.MemberDetails, ctx *XmlDocumentContext) {
	makeAnnotation(annotations.Target, member).Set("value", ctx.ResolveJavaType(name))
}

func applyJavaTypeDescriptor(descriptorClass string, member java.MemberDetails, ctx *XmlDocumentContext) {
	makeAnnotation(annotations.JavaType, member).Set("value", ctx.ResolveClassName(descriptorClass))
}

// applyBasicTypeComposition applies the Java side (type, java-type or
// target, first declared wins) and the JDBC side (jdbc-type,
// jdbc-type-code or jdbc-type-name) of a basic value.
func applyBasicTypeComposition(btc *mapping.BasicTypeComposition, member java.MemberDetails, ctx *XmlDocumentContext) error {
	switch {
	case btc.Type != nil:
		applyUserType(btc.Type, member, standardUserTypes, ctx)
	case btc.JavaType != "":
		applyJavaTypeDescriptor(btc.JavaType, member, ctx)
	case btc.Target != "":
		applyTargetClass(btc.Target, member, ctx)
	}

	switch {
	case btc.JdbcType != "":
		makeAnnotation(annotations.JdbcType, member).Set("value", ctx.ResolveClassName(btc.JdbcType))
	case btc.JdbcTypeCode != nil:
		applyJdbcTypeCode(*btc.JdbcTypeCode, member)
	case btc.JdbcTypeName != "":
		code, err := resolveJdbcTypeName(btc.JdbcTypeName)
		if err != nil {
			return err
		}
		applyJdbcTypeCode(code, member)
	}
	return nil
}

func resolveJdbcTypeName(name string) (int, error) {
	code, ok := typedesc.SqlTypeCode(name)
	if !ok {
		return 0, modelsErrorf("Could not resolve <jdbc-type-name>%s</jdbc-type-name>", name)
	}
	return code, nil
}

func applyJdbcTypeCode(code int, member java.MemberDetails) {
	makeAnnotation(annotations.JdbcTypeCode, member).Set("value", code)
}

func applyTemporal(temporal string, member java.MemberDetails) {
	if temporal == "" {
		return
	}
	makeAnnotation(annotations.Temporal, member).Set("value", temporal)
}

func applyLob(lob *mapping.Empty, member java.MemberDetails) {
	if lob == nil {
		return
	}
	makeAnnotation(annotations.Lob, member)
}

func applyEnumerated(enumType string, member java.MemberDetails) {
	if enumType == "" {
		return
	}
	makeAnnotation(annotations.Enumerated, member).Set("value", enumType)
}

func applyNationalized(nationalized *mapping.Empty, member java.MemberDetails) {
	if nationalized == nil {
		return
	}
	makeAnnotation(annotations.Nationalized, member)
}
