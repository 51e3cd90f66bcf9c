package xmlproc

import (
	"strings"

	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// AccessType is the JPA access type: how a persistent attribute is read
// from its class.
type AccessType string

const (
	AccessField    AccessType = "FIELD"
	AccessProperty AccessType = "PROPERTY"
)

// ParseAccessType accepts the spellings used in mapping documents. The
// empty string maps to the empty access type.
func ParseAccessType(s string) (AccessType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "FIELD":
		return AccessField, nil
	case "PROPERTY":
		return AccessProperty, nil
	}
	return "", modelsErrorf("Unknown access type [%s]", s)
}

func accessTypeOf(s string) AccessType {
	a, err := ParseAccessType(s)
	if err != nil {
		log.Warningf("ignoring access type: %s", err)
		return ""
	}
	return a
}

func coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// qualifyIfNeeded prefixes name with pkg unless name is already qualified.
func qualifyIfNeeded(pkg, name string) string {
	if pkg == "" || name == "" || strings.Contains(name, ".") {
		return name
	}
	return pkg + "." + name
}

func unqualify(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// prefixIfNotAlready prefixes value with "prefix." unless the prefix is
// empty or already the last segment of value.
func prefixIfNotAlready(value, prefix string) string {
	if prefix == "" || value == "" {
		return value
	}
	if strings.EqualFold(unqualify(value), prefix) {
		return value
	}
	return prefix + "." + value
}

// DetermineClassName qualifies the class of a managed type with the
// document package.
func DetermineClassName(root *mapping.EntityMappings, className string) string {
	return qualifyIfNeeded(root.Package, className)
}

// GetAttributeMember finds the member backing an attribute. FIELD access
// looks for a field of that name; PROPERTY access looks for the getter.
func GetAttributeMember(name string, access AccessType, class *java.ClassDetails) (java.MemberDetails, error) {
	if m := findAttributeMember(name, access, class); m != nil {
		return m, nil
	}
	return nil, modelsErrorf("Could not locate attribute member - %s (%s)", name, class.Name)
}

func findAttributeMember(name string, access AccessType, class *java.ClassDetails) java.MemberDetails {
	if access == AccessProperty {
		if getter := class.FindGetter(name); getter != nil {
			return getter
		}
		// records expose components as fields
		if class.Kind == java.ClassKindRecord {
			if f := class.FindFieldByName(name); f != nil {
				return f
			}
		}
		return nil
	}
	if f := class.FindFieldByName(name); f != nil {
		return f
	}
	return nil
}

func newUsage(annotationType string) *java.AnnotationUsage {
	return java.NewAnnotationUsage(annotationType)
}

// makeAnnotation applies a fresh usage of annotationType to target.
func makeAnnotation(annotationType string, target java.AnnotationTarget) *java.AnnotationUsage {
	return target.ApplyAnnotationUsage(newUsage(annotationType))
}

func getOrMakeAnnotation(annotationType string, target java.AnnotationTarget) *java.AnnotationUsage {
	return target.GetOrApplyAnnotationUsage(annotationType)
}

func setIfNotNil[T any](usage *java.AnnotationUsage, name string, value *T) {
	if value != nil {
		usage.Set(name, *value)
	}
}
