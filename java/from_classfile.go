package java

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/dhamidi/ormxml/classfile"
	"github.com/dhamidi/ormxml/resource"
)

func ClassDetailsFromReader(r io.Reader) (*ClassDetails, error) {
	cf, err := classfile.Parse(r)
	if err != nil {
		return nil, err
	}
	return ClassDetailsFromClassFile(cf), nil
}

// ClassDetailsFromClassFile builds the model of a compiled class. The
// superclass is recorded by name only; registries link it on resolution.
func ClassDetailsFromClassFile(cf *classfile.ClassFile) *ClassDetails {
	c := NewClassDetails(classfile.InternalToSourceName(cf.ClassName()), classKindFromClassFile(cf))
	c.IsAbstract = cf.AccessFlags.IsAbstract() && !cf.IsInterface()
	if cf.SuperName != "" {
		c.SuperClassName = classfile.InternalToSourceName(cf.SuperName)
	}
	applyClassfileAnnotations(&c.Annotations, cf.Annotations)

	for i := range cf.Fields {
		f := &cf.Fields[i]
		if f.IsSynthetic() {
			continue
		}
		field := NewFieldDetails(f.Name, memberType(f.Descriptor, f.Signature))
		field.isStatic = f.IsStatic()
		field.isTransient = f.IsTransient()
		applyClassfileAnnotations(&field.Annotations, f.Annotations)
		c.AddField(field)
	}

	for i := range cf.Methods {
		m := &cf.Methods[i]
		if m.IsSynthetic() || m.IsBridge() || m.IsInitializer() {
			continue
		}
		desc := classfile.ParseMethodDescriptor(m.Descriptor)
		if desc == nil {
			continue
		}
		method := &MethodDetails{
			name:       m.Name,
			returnType: TypeModel{Name: "void"},
			isStatic:   m.IsStatic(),
			isAbstract: m.IsAbstract(),
		}
		if desc.ReturnType != nil {
			method.returnType = typeModelFromFieldType(desc.ReturnType)
		}
		for j := range desc.Parameters {
			method.parameters = append(method.parameters, typeModelFromFieldType(&desc.Parameters[j]))
		}
		applyClassfileAnnotations(&method.Annotations, m.Annotations)
		c.AddMethod(method)
	}

	return c
}

func classKindFromClassFile(cf *classfile.ClassFile) ClassKind {
	if cf.IsAnnotation() {
		return ClassKindAnnotation
	}
	if cf.IsEnum() {
		return ClassKindEnum
	}
	if cf.IsInterface() {
		return ClassKindInterface
	}
	if cf.SuperName == "java/lang/Record" {
		return ClassKindRecord
	}
	return ClassKindClass
}

// memberType prefers the generic signature so collection element types are
// kept.
func memberType(descriptor, signature string) TypeModel {
	if signature != "" {
		if ft := classfile.ParseFieldSignature(signature); ft != nil {
			return typeModelFromFieldType(ft)
		}
	}
	return typeModelFromFieldType(classfile.ParseFieldDescriptor(descriptor))
}

func typeModelFromFieldType(ft *classfile.FieldType) TypeModel {
	if ft == nil {
		return TypeModel{Name: "void"}
	}
	model := TypeModel{Name: ft.SourceName(), ArrayDepth: ft.ArrayDepth}
	for i := range ft.TypeArguments {
		model.TypeArguments = append(model.TypeArguments, typeModelFromFieldType(&ft.TypeArguments[i]))
	}
	return model
}

func applyClassfileAnnotations(target *Annotations, anns []classfile.Annotation) {
	for _, a := range anns {
		target.ApplyAnnotationUsage(annotationUsageFromClassfile(a))
	}
}

func annotationUsageFromClassfile(a classfile.Annotation) *AnnotationUsage {
	u := NewAnnotationUsage(descriptorToTypeName(a.Type))
	for _, pair := range a.Elements {
		u.Set(pair.Name, elementValueToGo(pair.Value))
	}
	return u
}

func elementValueToGo(v interface{}) interface{} {
	switch v := v.(type) {
	case int32:
		return int(v)
	case classfile.EnumValue:
		return v.Name
	case classfile.ClassValue:
		return descriptorToTypeName(string(v))
	case classfile.Annotation:
		return annotationUsageFromClassfile(v)
	case []interface{}:
		return arrayValueToGo(v)
	}
	return v
}

// arrayValueToGo narrows homogeneous arrays to []string or
// []*AnnotationUsage.
func arrayValueToGo(values []interface{}) interface{} {
	converted := make([]interface{}, len(values))
	allStrings, allAnnotations := true, true
	for i, e := range values {
		converted[i] = elementValueToGo(e)
		switch converted[i].(type) {
		case string:
			allAnnotations = false
		case *AnnotationUsage:
			allStrings = false
		default:
			allStrings, allAnnotations = false, false
		}
	}
	switch {
	case len(converted) == 0:
		return []string{}
	case allStrings:
		out := make([]string, len(converted))
		for i, e := range converted {
			out[i] = e.(string)
		}
		return out
	case allAnnotations:
		out := make([]*AnnotationUsage, len(converted))
		for i, e := range converted {
			out[i] = e.(*AnnotationUsage)
		}
		return out
	}
	return converted
}

func descriptorToTypeName(desc string) string {
	if ft := classfile.ParseFieldDescriptor(desc); ft != nil {
		return TypeModel{Name: ft.SourceName(), ArrayDepth: ft.ArrayDepth}.String()
	}
	if desc == "V" {
		return "void"
	}
	return desc
}

// ClassPath loads class models from .class resources found by a resource
// locator.
type ClassPath struct {
	locator resource.StreamLocator
}

func NewClassPath(locator resource.StreamLocator) *ClassPath {
	return &ClassPath{locator: locator}
}

func (cp *ClassPath) LoadClass(name string) (*ClassDetails, error) {
	resourceName := classfile.SourceToInternalName(name) + ".class"
	rc, err := cp.locator.LocateResourceStream(resourceName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrClassNotFound)
		}
		return nil, err
	}
	defer rc.Close()

	c, err := ClassDetailsFromReader(rc)
	if err != nil {
		return nil, fmt.Errorf("parse class file %s: %w", resourceName, err)
	}
	return c, nil
}
