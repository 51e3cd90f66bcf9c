package java

// builtinClasses lists the JDK types mapping documents commonly refer to.
var builtinClasses = map[string]ClassKind{
	"java.lang.Object":    ClassKindClass,
	"java.lang.String":    ClassKindClass,
	"java.lang.Boolean":   ClassKindClass,
	"java.lang.Byte":      ClassKindClass,
	"java.lang.Short":     ClassKindClass,
	"java.lang.Integer":   ClassKindClass,
	"java.lang.Long":      ClassKindClass,
	"java.lang.Float":     ClassKindClass,
	"java.lang.Double":    ClassKindClass,
	"java.lang.Character": ClassKindClass,
	"java.lang.Number":    ClassKindClass,
	"java.lang.Class":     ClassKindClass,
	"java.lang.Enum":      ClassKindClass,

	"java.math.BigInteger": ClassKindClass,
	"java.math.BigDecimal": ClassKindClass,

	"java.util.UUID":       ClassKindClass,
	"java.util.Date":       ClassKindClass,
	"java.util.Calendar":   ClassKindClass,
	"java.util.Locale":     ClassKindClass,
	"java.util.Currency":   ClassKindClass,
	"java.util.TimeZone":   ClassKindClass,
	"java.util.Collection": ClassKindInterface,
	"java.util.List":       ClassKindInterface,
	"java.util.Set":        ClassKindInterface,
	"java.util.SortedSet":  ClassKindInterface,
	"java.util.Map":        ClassKindInterface,
	"java.util.SortedMap":  ClassKindInterface,

	"java.sql.Date":      ClassKindClass,
	"java.sql.Time":      ClassKindClass,
	"java.sql.Timestamp": ClassKindClass,
	"java.sql.Blob":      ClassKindInterface,
	"java.sql.Clob":      ClassKindInterface,
	"java.sql.NClob":     ClassKindInterface,

	"java.time.Instant":        ClassKindClass,
	"java.time.LocalDate":      ClassKindClass,
	"java.time.LocalDateTime":  ClassKindClass,
	"java.time.LocalTime":      ClassKindClass,
	"java.time.OffsetDateTime": ClassKindClass,
	"java.time.OffsetTime":     ClassKindClass,
	"java.time.ZonedDateTime":  ClassKindClass,
	"java.time.ZoneOffset":     ClassKindClass,
	"java.time.Duration":       ClassKindClass,
	"java.time.Year":           ClassKindClass,

	"java.net.URL":           ClassKindClass,
	"java.net.InetAddress":   ClassKindClass,
	"java.io.Serializable":   ClassKindInterface,
	"java.lang.Comparable":   ClassKindInterface,
	"java.lang.CharSequence": ClassKindInterface,
}

var builtinSuperClasses = map[string]string{
	"java.sql.Date":      "java.util.Date",
	"java.sql.Time":      "java.util.Date",
	"java.sql.Timestamp": "java.util.Date",
	"java.lang.Byte":     "java.lang.Number",
	"java.lang.Short":    "java.lang.Number",
	"java.lang.Integer":  "java.lang.Number",
	"java.lang.Long":     "java.lang.Number",
	"java.lang.Float":    "java.lang.Number",
	"java.lang.Double":   "java.lang.Number",

	"java.math.BigInteger": "java.lang.Number",
	"java.math.BigDecimal": "java.lang.Number",
}

func builtinClassDetails(name string) *ClassDetails {
	if IsPrimitiveName(name) || name == "void" {
		return NewClassDetails(name, ClassKindPrimitive)
	}
	kind, ok := builtinClasses[name]
	if !ok {
		return nil
	}
	c := NewClassDetails(name, kind)
	switch {
	case builtinSuperClasses[name] != "":
		c.SuperClassName = builtinSuperClasses[name]
	case kind == ClassKindClass && name != "java.lang.Object":
		c.SuperClassName = "java.lang.Object"
	}
	return c
}
