// Package annotations names the JPA and Hibernate annotation types the XML
// overlay synthesizes, and knows which of them are repeatable.
package annotations

import "strings"

const (
	jpa       = "jakarta.persistence."
	hibernate = "org.hibernate.annotations."
	boot      = "org.hibernate.boot.internal."
)

// Jakarta Persistence.
const (
	Access                     = jpa + "Access"
	AssociationOverride        = jpa + "AssociationOverride"
	AssociationOverrides       = jpa + "AssociationOverrides"
	AttributeOverride          = jpa + "AttributeOverride"
	AttributeOverrides         = jpa + "AttributeOverrides"
	Basic                      = jpa + "Basic"
	Cacheable                  = jpa + "Cacheable"
	CheckConstraint            = jpa + "CheckConstraint"
	CollectionTable            = jpa + "CollectionTable"
	Column                     = jpa + "Column"
	ColumnResult               = jpa + "ColumnResult"
	ConstructorResult          = jpa + "ConstructorResult"
	Convert                    = jpa + "Convert"
	Converts                   = jpa + "Converts"
	DiscriminatorColumn        = jpa + "DiscriminatorColumn"
	DiscriminatorValue         = jpa + "DiscriminatorValue"
	ElementCollection          = jpa + "ElementCollection"
	Embeddable                 = jpa + "Embeddable"
	Embedded                   = jpa + "Embedded"
	EmbeddedId                 = jpa + "EmbeddedId"
	Entity                     = jpa + "Entity"
	ExcludeDefaultListeners    = jpa + "ExcludeDefaultListeners"
	ExcludeSuperclassListeners = jpa + "ExcludeSuperclassListeners"
	EntityListeners            = jpa + "EntityListeners"
	EntityResult               = jpa + "EntityResult"
	Enumerated                 = jpa + "Enumerated"
	FieldResult                = jpa + "FieldResult"
	ForeignKey                 = jpa + "ForeignKey"
	GeneratedValue             = jpa + "GeneratedValue"
	Id                         = jpa + "Id"
	IdClass                    = jpa + "IdClass"
	Index                      = jpa + "Index"
	Inheritance                = jpa + "Inheritance"
	JoinColumn                 = jpa + "JoinColumn"
	JoinColumns                = jpa + "JoinColumns"
	JoinTable                  = jpa + "JoinTable"
	Lob                        = jpa + "Lob"
	ManyToMany                 = jpa + "ManyToMany"
	ManyToOne                  = jpa + "ManyToOne"
	MapKey                     = jpa + "MapKey"
	MapKeyClass                = jpa + "MapKeyClass"
	MapKeyColumn               = jpa + "MapKeyColumn"
	MapKeyEnumerated           = jpa + "MapKeyEnumerated"
	MapKeyJoinColumn           = jpa + "MapKeyJoinColumn"
	MapKeyJoinColumns          = jpa + "MapKeyJoinColumns"
	MapKeyTemporal             = jpa + "MapKeyTemporal"
	MappedSuperclass           = jpa + "MappedSuperclass"
	MapsId                     = jpa + "MapsId"
	NamedAttributeNode         = jpa + "NamedAttributeNode"
	NamedEntityGraph           = jpa + "NamedEntityGraph"
	NamedEntityGraphs          = jpa + "NamedEntityGraphs"
	NamedNativeQueries         = jpa + "NamedNativeQueries"
	NamedNativeQuery           = jpa + "NamedNativeQuery"
	NamedQueries               = jpa + "NamedQueries"
	NamedQuery                 = jpa + "NamedQuery"
	NamedStoredProcedure       = jpa + "NamedStoredProcedureQuery"
	NamedStoredProcedures      = jpa + "NamedStoredProcedureQueries"
	NamedSubgraph              = jpa + "NamedSubgraph"
	OneToMany                  = jpa + "OneToMany"
	OneToOne                   = jpa + "OneToOne"
	OrderBy                    = jpa + "OrderBy"
	OrderColumn                = jpa + "OrderColumn"
	PostLoad                   = jpa + "PostLoad"
	PostPersist                = jpa + "PostPersist"
	PostRemove                 = jpa + "PostRemove"
	PostUpdate                 = jpa + "PostUpdate"
	PrePersist                 = jpa + "PrePersist"
	PreRemove                  = jpa + "PreRemove"
	PreUpdate                  = jpa + "PreUpdate"
	PrimaryKeyJoinColumn       = jpa + "PrimaryKeyJoinColumn"
	PrimaryKeyJoinColumns      = jpa + "PrimaryKeyJoinColumns"
	QueryHint                  = jpa + "QueryHint"
	SecondaryTable             = jpa + "SecondaryTable"
	SecondaryTables            = jpa + "SecondaryTables"
	SequenceGenerator          = jpa + "SequenceGenerator"
	SequenceGenerators         = jpa + "SequenceGenerators"
	SqlResultSetMapping        = jpa + "SqlResultSetMapping"
	SqlResultSetMappings       = jpa + "SqlResultSetMappings"
	StoredProcedureParam       = jpa + "StoredProcedureParameter"
	Table                      = jpa + "Table"
	TableGenerator             = jpa + "TableGenerator"
	TableGenerators            = jpa + "TableGenerators"
	Temporal                   = jpa + "Temporal"
	Transient                  = jpa + "Transient"
	UniqueConstraint           = jpa + "UniqueConstraint"
	Version                    = jpa + "Version"
)

// Hibernate.
const (
	Any                         = hibernate + "Any"
	AnyDiscriminator            = hibernate + "AnyDiscriminator"
	AnyDiscriminatorValue       = hibernate + "AnyDiscriminatorValue"
	AnyDiscriminatorValues      = hibernate + "AnyDiscriminatorValues"
	AnyKeyJavaClass             = hibernate + "AnyKeyJavaClass"
	AttributeAccessor           = hibernate + "AttributeAccessor"
	BatchSize                   = hibernate + "BatchSize"
	Cache                       = hibernate + "Cache"
	Cascade                     = hibernate + "Cascade"
	CollectionType              = hibernate + "CollectionType"
	ConverterRegistration       = hibernate + "ConverterRegistration"
	ConverterRegistrations      = hibernate + "ConverterRegistrations"
	CollectionId                = hibernate + "CollectionId"
	DiscriminatorFormula        = hibernate + "DiscriminatorFormula"
	DiscriminatorOptions        = hibernate + "DiscriminatorOptions"
	DynamicInsert               = hibernate + "DynamicInsert"
	DynamicUpdate               = hibernate + "DynamicUpdate"
	Fetch                       = hibernate + "Fetch"
	Filter                      = hibernate + "Filter"
	FilterDef                   = hibernate + "FilterDef"
	FilterDefs                  = hibernate + "FilterDefs"
	FilterJoinTable             = hibernate + "FilterJoinTable"
	FilterJoinTables            = hibernate + "FilterJoinTables"
	Filters                     = hibernate + "Filters"
	Formula                     = hibernate + "Formula"
	Generated                   = hibernate + "Generated"
	HibernateNamedNativeQueries = hibernate + "NamedNativeQueries"
	HibernateNamedNativeQuery   = hibernate + "NamedNativeQuery"
	HibernateNamedQueries       = hibernate + "NamedQueries"
	HibernateNamedQuery         = hibernate + "NamedQuery"
	Immutable                   = hibernate + "Immutable"
	JavaType                    = hibernate + "JavaType"
	JdbcType                    = hibernate + "JdbcType"
	JdbcTypeCode                = hibernate + "JdbcTypeCode"
	ListIndexBase               = hibernate + "ListIndexBase"
	ManyToAny                   = hibernate + "ManyToAny"
	MapKeyJavaType              = hibernate + "MapKeyJavaType"
	MapKeyJdbcType              = hibernate + "MapKeyJdbcType"
	MapKeyJdbcTypeCode          = hibernate + "MapKeyJdbcTypeCode"
	MapKeyType                  = hibernate + "MapKeyType"
	Nationalized                = hibernate + "Nationalized"
	NaturalId                   = hibernate + "NaturalId"
	NaturalIdCache              = hibernate + "NaturalIdCache"
	NotFound                    = hibernate + "NotFound"
	OnDelete                    = hibernate + "OnDelete"
	OptimisticLock              = hibernate + "OptimisticLock"
	Parameter                   = hibernate + "Parameter"
	ParamDef                    = hibernate + "ParamDef"
	RowId                       = hibernate + "RowId"
	SQLDelete                   = hibernate + "SQLDelete"
	SQLInsert                   = hibernate + "SQLInsert"
	SQLOrder                    = hibernate + "SQLOrder"
	SQLJoinTableRestriction     = hibernate + "SQLJoinTableRestriction"
	SQLRestriction              = hibernate + "SQLRestriction"
	SQLUpdate                   = hibernate + "SQLUpdate"
	SortComparator              = hibernate + "SortComparator"
	SortNatural                 = hibernate + "SortNatural"
	SqlFragmentAlias            = hibernate + "SqlFragmentAlias"
	Synchronize                 = hibernate + "Synchronize"
	Target                      = hibernate + "Target"
	TenantId                    = hibernate + "TenantId"
	Type                        = hibernate + "Type"
	UuidGenerator               = hibernate + "UuidGenerator"
)

// Markers that only exist for XML-defined types.
const (
	Abstract = boot + "Abstract"
	Extends  = boot + "Extends"
)

var containers = map[string]string{
	AssociationOverride:       AssociationOverrides,
	AttributeOverride:         AttributeOverrides,
	Convert:                   Converts,
	Filter:                    Filters,
	FilterJoinTable:           FilterJoinTables,
	HibernateNamedNativeQuery: HibernateNamedNativeQueries,
	HibernateNamedQuery:       HibernateNamedQueries,
	JoinColumn:                JoinColumns,
	MapKeyJoinColumn:          MapKeyJoinColumns,
	NamedEntityGraph:          NamedEntityGraphs,
	NamedNativeQuery:          NamedNativeQueries,
	NamedQuery:                NamedQueries,
	NamedStoredProcedure:      NamedStoredProcedures,
	PrimaryKeyJoinColumn:      PrimaryKeyJoinColumns,
	SecondaryTable:            SecondaryTables,
	SqlResultSetMapping:       SqlResultSetMappings,
	AnyDiscriminatorValue:     AnyDiscriminatorValues,
	ConverterRegistration:     ConverterRegistrations,
	FilterDef:                 FilterDefs,
	SequenceGenerator:         SequenceGenerators,
	TableGenerator:            TableGenerators,
}

// ContainerOf returns the container annotation of a repeatable annotation.
func ContainerOf(annotationType string) (string, bool) {
	c, ok := containers[annotationType]
	return c, ok
}

// SimpleName returns the unqualified annotation name.
func SimpleName(annotationType string) string {
	if i := strings.LastIndex(annotationType, "."); i >= 0 {
		return annotationType[i+1:]
	}
	return annotationType
}

// IsHibernate reports whether the annotation is a Hibernate extension.
func IsHibernate(annotationType string) bool {
	return strings.HasPrefix(annotationType, hibernate)
}
