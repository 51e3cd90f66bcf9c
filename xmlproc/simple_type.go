package xmlproc

import "sort"

// SimpleType enumerates the basic Java types a mapping may name without a
// descriptor. Primitive kinds pair with their wrapper kind.
type SimpleType int

const (
	SimpleTypeBoolean SimpleType = iota + 1
	SimpleTypePrimitiveBoolean
	SimpleTypeByte
	SimpleTypePrimitiveByte
	SimpleTypeShort
	SimpleTypePrimitiveShort
	SimpleTypeInteger
	SimpleTypePrimitiveInt
	SimpleTypeLong
	SimpleTypePrimitiveLong
	SimpleTypeFloat
	SimpleTypePrimitiveFloat
	SimpleTypeDouble
	SimpleTypePrimitiveDouble
	SimpleTypeCharacter
	SimpleTypePrimitiveChar
	SimpleTypeBigInteger
	SimpleTypeBigDecimal
	SimpleTypeString
	SimpleTypeByteArray
	SimpleTypeURL
	SimpleTypeClass
	SimpleTypeCurrency
	SimpleTypeLocale
	SimpleTypeUUID
	SimpleTypeTimeZone
	SimpleTypeInstant
	SimpleTypeLocalDate
	SimpleTypeLocalTime
	SimpleTypeLocalDateTime
	SimpleTypeOffsetTime
	SimpleTypeOffsetDateTime
	SimpleTypeZonedDateTime
	SimpleTypeDuration
	SimpleTypeZoneOffset
	SimpleTypeDate
	SimpleTypeCalendar
	SimpleTypeSqlDate
	SimpleTypeSqlTime
	SimpleTypeSqlTimestamp
	SimpleTypeBlob
	SimpleTypeClob
	SimpleTypeNClob
)

type simpleTypeInfo struct {
	name       string
	javaType   string
	descriptor string
	// objectForm is set for primitive kinds only.
	objectForm SimpleType
	aliases    []string
}

const javaTypeDescriptorPkg = "org.hibernate.type.descriptor.java."

var simpleTypes = map[SimpleType]simpleTypeInfo{
	SimpleTypeBoolean:          {"BOOLEAN", "java.lang.Boolean", "BooleanJavaType", 0, []string{"Boolean"}},
	SimpleTypePrimitiveBoolean: {"PRIMITIVE_BOOLEAN", "boolean", "BooleanJavaType", SimpleTypeBoolean, nil},
	SimpleTypeByte:             {"BYTE", "java.lang.Byte", "ByteJavaType", 0, []string{"Byte"}},
	SimpleTypePrimitiveByte:    {"PRIMITIVE_BYTE", "byte", "ByteJavaType", SimpleTypeByte, nil},
	SimpleTypeShort:            {"SHORT", "java.lang.Short", "ShortJavaType", 0, []string{"Short"}},
	SimpleTypePrimitiveShort:   {"PRIMITIVE_SHORT", "short", "ShortJavaType", SimpleTypeShort, nil},
	SimpleTypeInteger:          {"INTEGER", "java.lang.Integer", "IntegerJavaType", 0, []string{"Integer"}},
	SimpleTypePrimitiveInt:     {"PRIMITIVE_INTEGER", "int", "IntegerJavaType", SimpleTypeInteger, nil},
	SimpleTypeLong:             {"LONG", "java.lang.Long", "LongJavaType", 0, []string{"Long"}},
	SimpleTypePrimitiveLong:    {"PRIMITIVE_LONG", "long", "LongJavaType", SimpleTypeLong, nil},
	SimpleTypeFloat:            {"FLOAT", "java.lang.Float", "FloatJavaType", 0, []string{"Float"}},
	SimpleTypePrimitiveFloat:   {"PRIMITIVE_FLOAT", "float", "FloatJavaType", SimpleTypeFloat, nil},
	SimpleTypeDouble:           {"DOUBLE", "java.lang.Double", "DoubleJavaType", 0, []string{"Double"}},
	SimpleTypePrimitiveDouble:  {"PRIMITIVE_DOUBLE", "double", "DoubleJavaType", SimpleTypeDouble, nil},
	SimpleTypeCharacter:        {"CHARACTER", "java.lang.Character", "CharacterJavaType", 0, []string{"Character"}},
	SimpleTypePrimitiveChar:    {"PRIMITIVE_CHARACTER", "char", "CharacterJavaType", SimpleTypeCharacter, nil},
	SimpleTypeBigInteger:       {"BIG_INTEGER", "java.math.BigInteger", "BigIntegerJavaType", 0, []string{"BigInteger"}},
	SimpleTypeBigDecimal:       {"BIG_DECIMAL", "java.math.BigDecimal", "BigDecimalJavaType", 0, []string{"BigDecimal"}},
	SimpleTypeString:           {"STRING", "java.lang.String", "StringJavaType", 0, []string{"String"}},
	SimpleTypeByteArray:        {"BYTE_ARRAY", "byte[]", "PrimitiveByteArrayJavaType", 0, nil},
	SimpleTypeURL:              {"URL", "java.net.URL", "UrlJavaType", 0, []string{"URL", "Url"}},
	SimpleTypeClass:            {"CLASS", "java.lang.Class", "ClassJavaType", 0, []string{"Class"}},
	SimpleTypeCurrency:         {"CURRENCY", "java.util.Currency", "CurrencyJavaType", 0, []string{"Currency"}},
	SimpleTypeLocale:           {"LOCALE", "java.util.Locale", "LocaleJavaType", 0, []string{"Locale"}},
	SimpleTypeUUID:             {"UUID", "java.util.UUID", "UUIDJavaType", 0, []string{"UUID"}},
	SimpleTypeTimeZone:         {"TIME_ZONE", "java.util.TimeZone", "TimeZoneJavaType", 0, []string{"TimeZone"}},
	SimpleTypeInstant:          {"INSTANT", "java.time.Instant", "InstantJavaType", 0, []string{"Instant"}},
	SimpleTypeLocalDate:        {"LOCAL_DATE", "java.time.LocalDate", "LocalDateJavaType", 0, []string{"LocalDate"}},
	SimpleTypeLocalTime:        {"LOCAL_TIME", "java.time.LocalTime", "LocalTimeJavaType", 0, []string{"LocalTime"}},
	SimpleTypeLocalDateTime:    {"LOCAL_DATE_TIME", "java.time.LocalDateTime", "LocalDateTimeJavaType", 0, []string{"LocalDateTime"}},
	SimpleTypeOffsetTime:       {"OFFSET_TIME", "java.time.OffsetTime", "OffsetTimeJavaType", 0, []string{"OffsetTime"}},
	SimpleTypeOffsetDateTime:   {"OFFSET_DATE_TIME", "java.time.OffsetDateTime", "OffsetDateTimeJavaType", 0, []string{"OffsetDateTime"}},
	SimpleTypeZonedDateTime:    {"ZONED_DATE_TIME", "java.time.ZonedDateTime", "ZonedDateTimeJavaType", 0, []string{"ZonedDateTime"}},
	SimpleTypeDuration:         {"DURATION", "java.time.Duration", "DurationJavaType", 0, []string{"Duration"}},
	SimpleTypeZoneOffset:       {"ZONE_OFFSET", "java.time.ZoneOffset", "ZoneOffsetJavaType", 0, []string{"ZoneOffset"}},
	SimpleTypeDate:             {"DATE", "java.util.Date", "DateJavaType", 0, []string{"Date"}},
	SimpleTypeCalendar:         {"CALENDAR", "java.util.Calendar", "CalendarJavaType", 0, []string{"Calendar"}},
	SimpleTypeSqlDate:          {"SQL_DATE", "java.sql.Date", "JdbcDateJavaType", 0, nil},
	SimpleTypeSqlTime:          {"SQL_TIME", "java.sql.Time", "JdbcTimeJavaType", 0, []string{"Time"}},
	SimpleTypeSqlTimestamp:     {"SQL_TIMESTAMP", "java.sql.Timestamp", "JdbcTimestampJavaType", 0, []string{"Timestamp"}},
	SimpleTypeBlob:             {"BLOB", "java.sql.Blob", "BlobJavaType", 0, []string{"Blob"}},
	SimpleTypeClob:             {"CLOB", "java.sql.Clob", "ClobJavaType", 0, []string{"Clob"}},
	SimpleTypeNClob:            {"NCLOB", "java.sql.NClob", "NClobJavaType", 0, []string{"NClob"}},
}

// simpleTypesByName is keyed by the Java type name and every alias.
var simpleTypesByName = func() map[string]SimpleType {
	m := make(map[string]SimpleType, len(simpleTypes)*2)
	for t, info := range simpleTypes {
		m[info.javaType] = t
		for _, alias := range info.aliases {
			m[alias] = t
		}
	}
	return m
}()

// InterpretSimpleType matches a type name from a mapping document, either a
// primitive name, a qualified class name or the simple name of a well-known
// class.
func InterpretSimpleType(name string) (SimpleType, bool) {
	t, ok := simpleTypesByName[name]
	return t, ok
}

// SimpleTypes lists every kind in declaration order.
func SimpleTypes() []SimpleType {
	out := make([]SimpleType, 0, len(simpleTypes))
	for t := range simpleTypes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t SimpleType) String() string { return simpleTypes[t].name }

// JavaType is the Java type name, primitive for primitive kinds.
func (t SimpleType) JavaType() string { return simpleTypes[t].javaType }

// JavaTypeDescriptor is the class of the Hibernate JavaType descriptor.
func (t SimpleType) JavaTypeDescriptor() string {
	return javaTypeDescriptorPkg + simpleTypes[t].descriptor
}

func (t SimpleType) IsPrimitive() bool { return simpleTypes[t].objectForm != 0 }

// ObjectForm returns the wrapper kind of a primitive kind and the kind
// itself otherwise.
func (t SimpleType) ObjectForm() SimpleType {
	if of := simpleTypes[t].objectForm; of != 0 {
		return of
	}
	return t
}

// PrimitiveForm returns the primitive kind of a wrapper kind.
func (t SimpleType) PrimitiveForm() (SimpleType, bool) {
	for p, info := range simpleTypes {
		if info.objectForm == t {
			return p, true
		}
	}
	return 0, false
}
