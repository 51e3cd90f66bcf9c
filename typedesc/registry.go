// Package typedesc knows the type descriptors mapping files may name:
// UserType, JavaType and JdbcType implementations. Descriptors cannot be
// instantiated from Go, so each one is registered with what an instance
// would report (the returned class, the Java type class or the JDBC type).
package typedesc

import (
	"fmt"
	"sort"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ormxml.typedesc")

const (
	javaTypePkg = "org.hibernate.type.descriptor.java."
	jdbcTypePkg = "org.hibernate.type.descriptor.jdbc."
)

// InstantiationError reports a descriptor class that has no registered
// no-arg instantiation.
type InstantiationError struct {
	Kind  string
	Class string
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("Unable to create instance from incoming ClassDetails - %s (%s)", e.Class, e.Kind)
}

// JdbcTypeDescriptor is what a JdbcType instance reports.
type JdbcTypeDescriptor struct {
	Code                int
	RecommendedJavaType string
}

// Registry stands in for the type configuration of a persistence unit.
type Registry struct {
	userTypes map[string]string
	javaTypes map[string]string
	jdbcTypes map[string]JdbcTypeDescriptor
}

// NewRegistry creates a registry preloaded with Hibernate's built-in Java
// and JDBC type descriptors.
func NewRegistry() *Registry {
	r := &Registry{
		userTypes: map[string]string{},
		javaTypes: map[string]string{},
		jdbcTypes: map[string]JdbcTypeDescriptor{},
	}
	for simple, javaType := range builtinJavaTypes {
		r.javaTypes[javaTypePkg+simple] = javaType
	}
	for simple, code := range builtinJdbcTypes {
		javaType, _ := RecommendedJavaType(code)
		r.jdbcTypes[jdbcTypePkg+simple] = JdbcTypeDescriptor{Code: code, RecommendedJavaType: javaType}
	}
	return r
}

// RegisterUserType records the class a UserType implementation returns.
func (r *Registry) RegisterUserType(implClass, returnedClass string) {
	log.Debugf("registering user type %s -> %s", implClass, returnedClass)
	r.userTypes[implClass] = returnedClass
}

// RegisterJavaType records the Java type class of a JavaType implementation.
func (r *Registry) RegisterJavaType(implClass, javaTypeClass string) {
	log.Debugf("registering java type %s -> %s", implClass, javaTypeClass)
	r.javaTypes[implClass] = javaTypeClass
}

// RegisterJdbcType records a JdbcType implementation.
func (r *Registry) RegisterJdbcType(implClass string, descriptor JdbcTypeDescriptor) {
	log.Debugf("registering jdbc type %s -> %d", implClass, descriptor.Code)
	r.jdbcTypes[implClass] = descriptor
}

// UserTypeReturnedClass is what UserType.returnedClass() reports.
func (r *Registry) UserTypeReturnedClass(implClass string) (string, error) {
	if c, ok := r.userTypes[implClass]; ok {
		return c, nil
	}
	return "", &InstantiationError{Kind: "UserType", Class: implClass}
}

// JavaTypeClass is what JavaType.getJavaTypeClass() reports.
func (r *Registry) JavaTypeClass(implClass string) (string, error) {
	if c, ok := r.javaTypes[implClass]; ok {
		return c, nil
	}
	return "", &InstantiationError{Kind: "JavaType", Class: implClass}
}

func (r *Registry) JdbcType(implClass string) (JdbcTypeDescriptor, error) {
	if d, ok := r.jdbcTypes[implClass]; ok {
		return d, nil
	}
	return JdbcTypeDescriptor{}, &InstantiationError{Kind: "JdbcType", Class: implClass}
}

// JdbcTypeForCode looks up the descriptor registered for a type code.
func (r *Registry) JdbcTypeForCode(code int) (JdbcTypeDescriptor, error) {
	javaType, ok := RecommendedJavaType(code)
	if !ok {
		return JdbcTypeDescriptor{}, fmt.Errorf("no JdbcType registered for type code %d", code)
	}
	return JdbcTypeDescriptor{Code: code, RecommendedJavaType: javaType}, nil
}

// Entry is one registered descriptor, for listings.
type Entry struct {
	Kind     string
	Class    string
	JavaType string
}

// Entries lists every registered descriptor sorted by kind and class.
func (r *Registry) Entries() []Entry {
	var out []Entry
	for c, t := range r.userTypes {
		out = append(out, Entry{Kind: "user-type", Class: c, JavaType: t})
	}
	for c, t := range r.javaTypes {
		out = append(out, Entry{Kind: "java-type", Class: c, JavaType: t})
	}
	for c, d := range r.jdbcTypes {
		out = append(out, Entry{Kind: "jdbc-type", Class: c, JavaType: d.RecommendedJavaType})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Class < out[j].Class
	})
	return out
}

var builtinJavaTypes = map[string]string{
	"BigDecimalJavaType":     "java.math.BigDecimal",
	"BigIntegerJavaType":     "java.math.BigInteger",
	"BooleanJavaType":        "java.lang.Boolean",
	"ByteJavaType":           "java.lang.Byte",
	"CharacterJavaType":      "java.lang.Character",
	"DoubleJavaType":         "java.lang.Double",
	"FloatJavaType":          "java.lang.Float",
	"InstantJavaType":        "java.time.Instant",
	"IntegerJavaType":        "java.lang.Integer",
	"LocalDateJavaType":      "java.time.LocalDate",
	"LocalDateTimeJavaType":  "java.time.LocalDateTime",
	"LocalTimeJavaType":      "java.time.LocalTime",
	"LongJavaType":           "java.lang.Long",
	"OffsetDateTimeJavaType": "java.time.OffsetDateTime",
	"ShortJavaType":          "java.lang.Short",
	"StringJavaType":         "java.lang.String",
	"UrlJavaType":            "java.net.URL",
	"UUIDJavaType":           "java.util.UUID",
	"ZonedDateTimeJavaType":  "java.time.ZonedDateTime",
}

var builtinJdbcTypes = map[string]int{
	"BigIntJdbcType":    BigInt,
	"BinaryJdbcType":    Binary,
	"BlobJdbcType":      Blob,
	"BooleanJdbcType":   Boolean,
	"CharJdbcType":      Char,
	"ClobJdbcType":      Clob,
	"DateJdbcType":      Date,
	"DecimalJdbcType":   Decimal,
	"DoubleJdbcType":    Double,
	"FloatJdbcType":     Float,
	"IntegerJdbcType":   Integer,
	"NumericJdbcType":   Numeric,
	"RealJdbcType":      Real,
	"SmallIntJdbcType":  SmallInt,
	"TimeJdbcType":      Time,
	"TimestampJdbcType": Timestamp,
	"TinyIntJdbcType":   TinyInt,
	"UUIDJdbcType":      UUID,
	"VarbinaryJdbcType": VarBinary,
	"VarcharJdbcType":   VarChar,
	"NVarcharJdbcType":  NVarChar,
	"InstantJdbcType":   TimestampUTC,
	"JsonJdbcType":      JSON,
}
