package typedesc

// JDBC type codes, named as in org.hibernate.type.SqlTypes.
const (
	Bit                   = -7
	TinyInt               = -6
	SmallInt              = 5
	Integer               = 4
	BigInt                = -5
	Float                 = 6
	Real                  = 7
	Double                = 8
	Numeric               = 2
	Decimal               = 3
	Char                  = 1
	VarChar               = 12
	LongVarChar           = -1
	Long32VarChar         = 4001
	Date                  = 91
	Time                  = 92
	Timestamp             = 93
	Binary                = -2
	VarBinary             = -3
	LongVarBinary         = -4
	Long32VarBinary       = 4003
	Null                  = 0
	Other                 = 1111
	JavaObject            = 2000
	Distinct              = 2001
	Struct                = 2002
	Array                 = 2003
	Blob                  = 2004
	Clob                  = 2005
	Ref                   = 2006
	DataLink              = 70
	Boolean               = 16
	RowID                 = -8
	NChar                 = -15
	NVarChar              = -9
	LongNVarChar          = -16
	Long32NVarChar        = 4002
	NClob                 = 2011
	SQLXML                = 2009
	RefCursor             = 2012
	TimeWithTimezone      = 2013
	TimestampWithTimezone = 2014
	UUID                  = 3000
	JSON                  = 3001
	Inet                  = 3002
	TimestampUTC          = 3003
	IntervalSecond        = 3100
)

var sqlTypeCodes = map[string]int{
	"BIT":                     Bit,
	"TINYINT":                 TinyInt,
	"SMALLINT":                SmallInt,
	"INTEGER":                 Integer,
	"BIGINT":                  BigInt,
	"FLOAT":                   Float,
	"REAL":                    Real,
	"DOUBLE":                  Double,
	"NUMERIC":                 Numeric,
	"DECIMAL":                 Decimal,
	"CHAR":                    Char,
	"VARCHAR":                 VarChar,
	"LONGVARCHAR":             LongVarChar,
	"LONG32VARCHAR":           Long32VarChar,
	"DATE":                    Date,
	"TIME":                    Time,
	"TIMESTAMP":               Timestamp,
	"BINARY":                  Binary,
	"VARBINARY":               VarBinary,
	"LONGVARBINARY":           LongVarBinary,
	"LONG32VARBINARY":         Long32VarBinary,
	"NULL":                    Null,
	"OTHER":                   Other,
	"JAVA_OBJECT":             JavaObject,
	"DISTINCT":                Distinct,
	"STRUCT":                  Struct,
	"ARRAY":                   Array,
	"BLOB":                    Blob,
	"CLOB":                    Clob,
	"REF":                     Ref,
	"DATALINK":                DataLink,
	"BOOLEAN":                 Boolean,
	"ROWID":                   RowID,
	"NCHAR":                   NChar,
	"NVARCHAR":                NVarChar,
	"LONGNVARCHAR":            LongNVarChar,
	"LONG32NVARCHAR":          Long32NVarChar,
	"NCLOB":                   NClob,
	"SQLXML":                  SQLXML,
	"REF_CURSOR":              RefCursor,
	"TIME_WITH_TIMEZONE":      TimeWithTimezone,
	"TIMESTAMP_WITH_TIMEZONE": TimestampWithTimezone,
	"UUID":                    UUID,
	"JSON":                    JSON,
	"INET":                    Inet,
	"TIMESTAMP_UTC":           TimestampUTC,
	"INTERVAL_SECOND":         IntervalSecond,
}

// recommendedJavaTypes is the Java type each JDBC type maps to when nothing
// more specific is known.
var recommendedJavaTypes = map[int]string{
	Bit:                   "java.lang.Boolean",
	Boolean:               "java.lang.Boolean",
	TinyInt:               "java.lang.Byte",
	SmallInt:              "java.lang.Short",
	Integer:               "java.lang.Integer",
	BigInt:                "java.lang.Long",
	Float:                 "java.lang.Double",
	Double:                "java.lang.Double",
	Real:                  "java.lang.Float",
	Numeric:               "java.math.BigDecimal",
	Decimal:               "java.math.BigDecimal",
	Char:                  "java.lang.String",
	NChar:                 "java.lang.String",
	VarChar:               "java.lang.String",
	NVarChar:              "java.lang.String",
	LongVarChar:           "java.lang.String",
	LongNVarChar:          "java.lang.String",
	Long32VarChar:         "java.lang.String",
	Long32NVarChar:        "java.lang.String",
	JSON:                  "java.lang.String",
	Clob:                  "java.sql.Clob",
	NClob:                 "java.sql.NClob",
	Blob:                  "java.sql.Blob",
	Binary:                "byte[]",
	VarBinary:             "byte[]",
	LongVarBinary:         "byte[]",
	Long32VarBinary:       "byte[]",
	Date:                  "java.sql.Date",
	Time:                  "java.sql.Time",
	Timestamp:             "java.sql.Timestamp",
	TimeWithTimezone:      "java.time.OffsetTime",
	TimestampWithTimezone: "java.time.OffsetDateTime",
	TimestampUTC:          "java.time.Instant",
	IntervalSecond:        "java.time.Duration",
	UUID:                  "java.util.UUID",
	Inet:                  "java.net.InetAddress",
	SQLXML:                "java.sql.SQLXML",
	Array:                 "java.lang.Object[]",
	JavaObject:            "java.lang.Object",
	Other:                 "java.lang.Object",
}

// SqlTypeCode resolves a SqlTypes constant name such as "VARCHAR".
func SqlTypeCode(name string) (int, bool) {
	code, ok := sqlTypeCodes[name]
	return code, ok
}

// SqlTypeName is the inverse of SqlTypeCode.
func SqlTypeName(code int) string {
	for name, c := range sqlTypeCodes {
		if c == code {
			return name
		}
	}
	return ""
}

// RecommendedJavaType returns the Java type recommended for a JDBC type code.
func RecommendedJavaType(code int) (string, bool) {
	t, ok := recommendedJavaTypes[code]
	return t, ok
}
