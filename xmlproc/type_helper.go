package xmlproc

import (
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// Collection classifications accepted by the classification attribute.
const (
	ClassificationBag  = "BAG"
	ClassificationList = "LIST"
	ClassificationSet  = "SET"
	ClassificationMap  = "MAP"
)

// collectionInterface returns the Java interface of a plural attribute
// with the given classification. Sets and maps become their sorted
// variants when sorted is true. Unknown classifications report false.
func collectionInterface(classification string, sorted bool) (string, bool) {
	switch classification {
	case "", ClassificationBag:
		return "java.util.Collection", true
	case ClassificationList:
		return "java.util.List", true
	case ClassificationSet:
		if sorted {
			return "java.util.SortedSet", true
		}
		return "java.util.Set", true
	case ClassificationMap:
		if sorted {
			return "java.util.SortedMap", true
		}
		return "java.util.Map", true
	}
	return "", false
}

// makeCollectionType wraps the element type of a plural association in
// its collection interface. Map keys are not known from the mapping and
// are typed as Object.
func makeCollectionType(declaring *java.ClassDetails, attrName string, plural *mapping.PluralMapping, element java.TypeModel) (java.TypeModel, error) {
	name, ok := collectionInterface(plural.Classification, plural.IsSorted())
	if !ok {
		return java.TypeModel{}, unknownAttributeTypef(
			"Could not determine target type for dynamic attribute [%s, %s]", declaring.Name, attrName)
	}
	if plural.Classification == ClassificationMap {
		return java.ParameterizedTypeOf(name, java.TypeOf("java.lang.Object"), element), nil
	}
	return java.ParameterizedTypeOf(name, element), nil
}

// elementCollectionType types an <element-collection> by classification
// alone; ordering does not select a sorted interface here. A declared
// target-class becomes the type argument.
func elementCollectionType(ec *mapping.ElementCollection, ctx *XmlDocumentContext) java.TypeModel {
	name, ok := collectionInterface(ec.Classification, false)
	if !ok {
		name = "java.util.Collection"
	}
	if ec.TargetClass == "" {
		return java.TypeOf(name)
	}
	element := java.TypeOf(ctx.ResolveJavaType(ec.TargetClass))
	if name == "java.util.Map" {
		return java.ParameterizedTypeOf(name, java.TypeOf("java.lang.Object"), element)
	}
	return java.ParameterizedTypeOf(name, element)
}
