// Package mapping holds the Go bindings of the orm.xml mapping schema
// (<entity-mappings>). The bindings are read-only input for the overlay
// engine in xmlproc.
package mapping

import "encoding/xml"

// Empty binds marker elements such as <cascade-all/>. A nil pointer means
// the element is absent.
type Empty struct{}

type EntityMappings struct {
	XMLName                     xml.Name                    `xml:"entity-mappings"`
	Version                     string                      `xml:"version,attr"`
	Description                 string                      `xml:"description"`
	PersistenceUnitMetadata     *PersistenceUnitMetadata    `xml:"persistence-unit-metadata"`
	Package                     string                      `xml:"package"`
	Schema                      string                      `xml:"schema"`
	Catalog                     string                      `xml:"catalog"`
	Access                      string                      `xml:"access"`
	AttributeAccessor           string                      `xml:"attribute-accessor"`
	DefaultCascade              *Cascade                    `xml:"default-cascade"`
	DefaultLazy                 *bool                       `xml:"default-lazy"`
	AutoImport                  *bool                       `xml:"auto-import"`
	FilterDefs                  []FilterDef                 `xml:"filter-def"`
	Converters                  []Converter                 `xml:"converter"`
	SequenceGenerators          []SequenceGenerator         `xml:"sequence-generator"`
	TableGenerators             []TableGenerator            `xml:"table-generator"`
	NamedQueries                []NamedQuery                `xml:"named-query"`
	NamedNativeQueries          []NamedNativeQuery          `xml:"named-native-query"`
	NamedStoredProcedureQueries []NamedStoredProcedureQuery `xml:"named-stored-procedure-query"`
	SqlResultSetMappings        []SqlResultSetMapping       `xml:"sql-result-set-mapping"`
	MappedSuperclasses          []MappedSuperclass          `xml:"mapped-superclass"`
	Entities                    []Entity                    `xml:"entity"`
	Embeddables                 []Embeddable                `xml:"embeddable"`
}

type PersistenceUnitMetadata struct {
	Description                string                   `xml:"description"`
	XmlMappingMetadataComplete *Empty                   `xml:"xml-mapping-metadata-complete"`
	PersistenceUnitDefaults    *PersistenceUnitDefaults `xml:"persistence-unit-defaults"`
}

type PersistenceUnitDefaults struct {
	Description          string           `xml:"description"`
	Schema               string           `xml:"schema"`
	Catalog              string           `xml:"catalog"`
	DelimitedIdentifiers *Empty           `xml:"delimited-identifiers"`
	Access               string           `xml:"access"`
	DefaultAccess        string           `xml:"default-access"`
	CascadePersist       *Empty           `xml:"cascade-persist"`
	EntityListeners      []EntityListener `xml:"entity-listeners>entity-listener"`
}

// ManagedType is implemented by <entity>, <mapped-superclass> and
// <embeddable>.
type ManagedType interface {
	ClassName() string
	MetadataCompleteFlag() *bool
	AccessType() string
	AttributeContainer() *Attributes
}

type Entity struct {
	Name              string `xml:"name,attr"`
	Class             string `xml:"class,attr"`
	Access            string `xml:"access,attr"`
	AttributeAccessor string `xml:"attribute-accessor,attr"`
	Cacheable         *bool  `xml:"cacheable,attr"`
	MetadataComplete  *bool  `xml:"metadata-complete,attr"`
	Abstract          *bool  `xml:"abstract,attr"`
	Extends           string `xml:"extends,attr"`

	Description                 string                      `xml:"description"`
	Table                       *Table                      `xml:"table"`
	SecondaryTables             []SecondaryTable            `xml:"secondary-table"`
	PrimaryKeyJoinColumns       []PrimaryKeyJoinColumn      `xml:"primary-key-join-column"`
	PrimaryKeyForeignKey        *ForeignKey                 `xml:"primary-key-foreign-key"`
	RowID                       *string                     `xml:"rowid"`
	SqlRestriction              string                      `xml:"sql-restriction"`
	Caching                     *Caching                    `xml:"caching"`
	BatchSize                   *int                        `xml:"batch-size"`
	DynamicInsert               *bool                       `xml:"dynamic-insert"`
	DynamicUpdate               *bool                       `xml:"dynamic-update"`
	Mutable                     *bool                       `xml:"mutable"`
	IdClass                     *IdClass                    `xml:"id-class"`
	Inheritance                 *Inheritance                `xml:"inheritance"`
	DiscriminatorValue          *string                     `xml:"discriminator-value"`
	DiscriminatorColumn         *DiscriminatorColumn        `xml:"discriminator-column"`
	DiscriminatorFormula        *DiscriminatorFormula       `xml:"discriminator-formula"`
	SequenceGenerators          []SequenceGenerator         `xml:"sequence-generator"`
	TableGenerators             []TableGenerator            `xml:"table-generator"`
	NamedQueries                []NamedQuery                `xml:"named-query"`
	NamedNativeQueries          []NamedNativeQuery          `xml:"named-native-query"`
	NamedStoredProcedureQueries []NamedStoredProcedureQuery `xml:"named-stored-procedure-query"`
	SqlResultSetMappings        []SqlResultSetMapping       `xml:"sql-result-set-mapping"`
	ExcludeDefaultListeners     *Empty                      `xml:"exclude-default-listeners"`
	ExcludeSuperclassListeners  *Empty                      `xml:"exclude-superclass-listeners"`
	EntityListeners             []EntityListener            `xml:"entity-listeners>entity-listener"`
	LifecycleCallbacks
	AttributeOverrides   []AttributeOverride   `xml:"attribute-override"`
	AssociationOverrides []AssociationOverride `xml:"association-override"`
	Converts             []Convert             `xml:"convert"`
	NamedEntityGraphs    []NamedEntityGraph    `xml:"named-entity-graph"`
	Filters              []Filter              `xml:"filter"`
	TenantID             *TenantID             `xml:"tenant-id"`
	Attributes           *Attributes           `xml:"attributes"`
	SqlInsert            *CustomSql            `xml:"sql-insert"`
	SqlUpdate            *CustomSql            `xml:"sql-update"`
	SqlDelete            *CustomSql            `xml:"sql-delete"`
	Synchronizations     []Synchronize         `xml:"synchronize"`
}

func (e *Entity) ClassName() string               { return e.Class }
func (e *Entity) MetadataCompleteFlag() *bool     { return e.MetadataComplete }
func (e *Entity) AccessType() string              { return e.Access }
func (e *Entity) AttributeContainer() *Attributes { return e.Attributes }

type MappedSuperclass struct {
	Class             string `xml:"class,attr"`
	Access            string `xml:"access,attr"`
	AttributeAccessor string `xml:"attribute-accessor,attr"`
	MetadataComplete  *bool  `xml:"metadata-complete,attr"`

	Description                string           `xml:"description"`
	IdClass                    *IdClass         `xml:"id-class"`
	ExcludeDefaultListeners    *Empty           `xml:"exclude-default-listeners"`
	ExcludeSuperclassListeners *Empty           `xml:"exclude-superclass-listeners"`
	EntityListeners            []EntityListener `xml:"entity-listeners>entity-listener"`
	LifecycleCallbacks
	Attributes *Attributes `xml:"attributes"`
}

func (m *MappedSuperclass) ClassName() string               { return m.Class }
func (m *MappedSuperclass) MetadataCompleteFlag() *bool     { return m.MetadataComplete }
func (m *MappedSuperclass) AccessType() string              { return m.Access }
func (m *MappedSuperclass) AttributeContainer() *Attributes { return m.Attributes }

type Embeddable struct {
	Name              string `xml:"name,attr"`
	Class             string `xml:"class,attr"`
	Access            string `xml:"access,attr"`
	AttributeAccessor string `xml:"attribute-accessor,attr"`
	MetadataComplete  *bool  `xml:"metadata-complete,attr"`

	Description string      `xml:"description"`
	Attributes  *Attributes `xml:"attributes"`
}

func (e *Embeddable) ClassName() string               { return e.Class }
func (e *Embeddable) MetadataCompleteFlag() *bool     { return e.MetadataComplete }
func (e *Embeddable) AccessType() string              { return e.Access }
func (e *Embeddable) AttributeContainer() *Attributes { return e.Attributes }

// LifecycleCallbacks is shared by managed types and entity listeners.
type LifecycleCallbacks struct {
	PrePersist  *LifecycleCallback `xml:"pre-persist"`
	PostPersist *LifecycleCallback `xml:"post-persist"`
	PreRemove   *LifecycleCallback `xml:"pre-remove"`
	PostRemove  *LifecycleCallback `xml:"post-remove"`
	PreUpdate   *LifecycleCallback `xml:"pre-update"`
	PostUpdate  *LifecycleCallback `xml:"post-update"`
	PostLoad    *LifecycleCallback `xml:"post-load"`
}

type LifecycleCallback struct {
	MethodName string `xml:"method-name,attr"`
}

type EntityListener struct {
	Class       string `xml:"class,attr"`
	Description string `xml:"description"`
	LifecycleCallbacks
}

type IdClass struct {
	Class string `xml:"class,attr"`
}

type Inheritance struct {
	Strategy string `xml:"strategy,attr"`
}

type Caching struct {
	Region  string `xml:"region,attr"`
	Access  string `xml:"access,attr"`
	Include string `xml:"include,attr"`
}

type DiscriminatorColumn struct {
	Name              string `xml:"name,attr"`
	DiscriminatorType string `xml:"discriminator-type,attr"`
	ColumnDefinition  string `xml:"column-definition,attr"`
	Options           string `xml:"options,attr"`
	Length            *int   `xml:"length,attr"`
	ForceSelection    bool   `xml:"force-selection,attr"`
	Insertable        *bool  `xml:"insertable,attr"`
}

type DiscriminatorFormula struct {
	Fragment          string `xml:",chardata"`
	DiscriminatorType string `xml:"discriminator-type,attr"`
	ForceSelection    bool   `xml:"force-selection,attr"`
}

type CustomSql struct {
	Value       string `xml:",chardata"`
	Callable    bool   `xml:"callable,attr"`
	Table       string `xml:"table,attr"`
	ResultCheck string `xml:"check,attr"`
}

type Synchronize struct {
	Table string `xml:"table,attr"`
}

type Converter struct {
	Class     string `xml:"class,attr"`
	AutoApply *bool  `xml:"auto-apply,attr"`
}

// Attributes is the <attributes> container of a managed type.
type Attributes struct {
	Description        string              `xml:"description"`
	Ids                []Id                `xml:"id"`
	EmbeddedId         *EmbeddedId         `xml:"embedded-id"`
	NaturalId          *NaturalId          `xml:"natural-id"`
	Versions           []Version           `xml:"version"`
	Basics             []Basic             `xml:"basic"`
	Embeddeds          []Embedded          `xml:"embedded"`
	ManyToOnes         []ManyToOne         `xml:"many-to-one"`
	Anys               []Any               `xml:"any"`
	OneToOnes          []OneToOne          `xml:"one-to-one"`
	ElementCollections []ElementCollection `xml:"element-collection"`
	OneToManys         []OneToMany         `xml:"one-to-many"`
	ManyToManys        []ManyToMany        `xml:"many-to-many"`
	ManyToAnys         []ManyToAny         `xml:"many-to-any"`
	Transients         []Transient         `xml:"transient"`
}

// NaturalId groups the base attributes forming the natural id.
type NaturalId struct {
	Mutable    bool        `xml:"mutable,attr"`
	Caching    *Caching    `xml:"caching"`
	Basics     []Basic     `xml:"basic"`
	Embeddeds  []Embedded  `xml:"embedded"`
	ManyToOnes []ManyToOne `xml:"many-to-one"`
	Anys       []Any       `xml:"any"`
}

// BasicMapping is implemented by the attribute kinds whose Java type is
// described by basic type composition: <id>, <basic>, <version> and
// <tenant-id>.
type BasicMapping interface {
	AttributeName() string
	BasicType() *BasicTypeComposition
}

// BasicTypeComposition describes how a basic value is typed.
type BasicTypeComposition struct {
	Target       string    `xml:"target,attr"`
	Type         *UserType `xml:"type"`
	JavaType     string    `xml:"java-type"`
	JdbcType     string    `xml:"jdbc-type"`
	JdbcTypeCode *int      `xml:"jdbc-type-code"`
	JdbcTypeName string    `xml:"jdbc-type-name"`
}

type UserType struct {
	Value      string            `xml:"value,attr"`
	Parameters []ConfigParameter `xml:"param"`
}

type ConfigParameter struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type Id struct {
	Name              string `xml:"name,attr"`
	Access            string `xml:"access,attr"`
	AttributeAccessor string `xml:"attribute-accessor,attr"`
	BasicTypeComposition
	Column            *Column            `xml:"column"`
	GeneratedValue    *GeneratedValue    `xml:"generated-value"`
	Temporal          string             `xml:"temporal"`
	SequenceGenerator *SequenceGenerator `xml:"sequence-generator"`
	TableGenerator    *TableGenerator    `xml:"table-generator"`
	UuidGenerator     *UuidGenerator     `xml:"uuid-generator"`
	UnsavedValue      string             `xml:"unsaved-value"`
}

func (a *Id) AttributeName() string            { return a.Name }
func (a *Id) BasicType() *BasicTypeComposition { return &a.BasicTypeComposition }

type EmbeddedId struct {
	Name               string              `xml:"name,attr"`
	Target             string              `xml:"target,attr"`
	Access             string              `xml:"access,attr"`
	AttributeAccessor  string              `xml:"attribute-accessor,attr"`
	AttributeOverrides []AttributeOverride `xml:"attribute-override"`
}

type Version struct {
	Name              string `xml:"name,attr"`
	Access            string `xml:"access,attr"`
	AttributeAccessor string `xml:"attribute-accessor,attr"`
	BasicTypeComposition
	Column   *Column `xml:"column"`
	Temporal string  `xml:"temporal"`
}

func (a *Version) AttributeName() string            { return a.Name }
func (a *Version) BasicType() *BasicTypeComposition { return &a.BasicTypeComposition }

type TenantID struct {
	Name              string `xml:"name,attr"`
	Access            string `xml:"access,attr"`
	AttributeAccessor string `xml:"attribute-accessor,attr"`
	BindAsParameter   *bool  `xml:"bind-as-param,attr"`
	BasicTypeComposition
	Column  *Column `xml:"column"`
	Formula string  `xml:"formula"`
}

func (a *TenantID) AttributeName() string            { return a.Name }
func (a *TenantID) BasicType() *BasicTypeComposition { return &a.BasicTypeComposition }

type Basic struct {
	Name              string `xml:"name,attr"`
	Access            string `xml:"access,attr"`
	AttributeAccessor string `xml:"attribute-accessor,attr"`
	Fetch             string `xml:"fetch,attr"`
	Optional          *bool  `xml:"optional,attr"`
	OptimisticLock    *bool  `xml:"optimistic-lock,attr"`
	BasicTypeComposition
	Column       *Column  `xml:"column"`
	Formula      string   `xml:"formula"`
	Lob          *Empty   `xml:"lob"`
	Temporal     string   `xml:"temporal"`
	Enumerated   string   `xml:"enumerated"`
	Nationalized *Empty   `xml:"nationalized"`
	Convert      *Convert `xml:"convert"`
	Generated    string   `xml:"generated"`
}

func (a *Basic) AttributeName() string            { return a.Name }
func (a *Basic) BasicType() *BasicTypeComposition { return &a.BasicTypeComposition }

type Embedded struct {
	Name                 string                `xml:"name,attr"`
	Target               string                `xml:"target,attr"`
	Access               string                `xml:"access,attr"`
	AttributeAccessor    string                `xml:"attribute-accessor,attr"`
	AttributeOverrides   []AttributeOverride   `xml:"attribute-override"`
	AssociationOverrides []AssociationOverride `xml:"association-override"`
	Converts             []Convert             `xml:"convert"`
}

// AssociationMapping holds what every association kind shares.
type AssociationMapping struct {
	Name              string   `xml:"name,attr"`
	TargetEntity      string   `xml:"target-entity,attr"`
	Fetch             string   `xml:"fetch,attr"`
	Access            string   `xml:"access,attr"`
	AttributeAccessor string   `xml:"attribute-accessor,attr"`
	Cascade           *Cascade `xml:"cascade"`
}

type ManyToOne struct {
	AssociationMapping
	Optional    *bool        `xml:"optional,attr"`
	MapsId      string       `xml:"maps-id,attr"`
	Id          *bool        `xml:"id,attr"`
	NotFound    string       `xml:"not-found,attr"`
	JoinColumns []JoinColumn `xml:"join-column"`
	ForeignKey  *ForeignKey  `xml:"foreign-key"`
	JoinTable   *JoinTable   `xml:"join-table"`
	OnDelete    string       `xml:"on-delete"`
}

type OneToOne struct {
	AssociationMapping
	Optional              *bool                  `xml:"optional,attr"`
	MappedBy              string                 `xml:"mapped-by,attr"`
	OrphanRemoval         *bool                  `xml:"orphan-removal,attr"`
	MapsId                string                 `xml:"maps-id,attr"`
	Id                    *bool                  `xml:"id,attr"`
	NotFound              string                 `xml:"not-found,attr"`
	PrimaryKeyJoinColumns []PrimaryKeyJoinColumn `xml:"primary-key-join-column"`
	JoinColumns           []JoinColumn           `xml:"join-column"`
	ForeignKey            *ForeignKey            `xml:"foreign-key"`
	JoinTable             *JoinTable             `xml:"join-table"`
	OnDelete              string                 `xml:"on-delete"`
}

// PluralMapping holds what every collection kind shares.
type PluralMapping struct {
	Classification    string             `xml:"classification,attr"`
	OrderBy           *string            `xml:"order-by"`
	OrderColumn       *OrderColumn       `xml:"order-column"`
	ListIndexBase     *int               `xml:"list-index-base"`
	Sort              string             `xml:"sort"`
	SortNatural       *Empty             `xml:"sort-natural"`
	MapKey            *MapKey            `xml:"map-key"`
	MapKeyClass       *MapKeyClass       `xml:"map-key-class"`
	MapKeyType        *UserType          `xml:"map-key-type"`
	MapKeyTemporal    string             `xml:"map-key-temporal"`
	MapKeyEnumerated  string             `xml:"map-key-enumerated"`
	MapKeyColumn      *MapKeyColumn      `xml:"map-key-column"`
	MapKeyJoinColumns []MapKeyJoinColumn `xml:"map-key-join-column"`
	CollectionID      *CollectionID      `xml:"collection-id"`
	Filters           []Filter           `xml:"filter"`
	SqlRestriction    string             `xml:"sql-restriction"`
}

// PluralAttribute is implemented by the collection-valued kinds.
type PluralAttribute interface {
	Plural() *PluralMapping
	AttributeName() string
}

func (p *PluralMapping) Plural() *PluralMapping { return p }

// IsSorted reports whether sorting or ordering is declared.
func (p *PluralMapping) IsSorted() bool {
	return p.Sort != "" || p.SortNatural != nil || (p.OrderBy != nil && *p.OrderBy != "")
}

type OneToMany struct {
	AssociationMapping
	PluralMapping
	MappedBy      string       `xml:"mapped-by,attr"`
	OrphanRemoval *bool        `xml:"orphan-removal,attr"`
	NotFound      string       `xml:"not-found,attr"`
	JoinTable     *JoinTable   `xml:"join-table"`
	JoinColumns   []JoinColumn `xml:"join-column"`
	ForeignKey    *ForeignKey  `xml:"foreign-key"`
	OnDelete      string       `xml:"on-delete"`
}

func (a *OneToMany) AttributeName() string { return a.Name }

type ManyToMany struct {
	AssociationMapping
	PluralMapping
	MappedBy                string     `xml:"mapped-by,attr"`
	NotFound                string     `xml:"not-found,attr"`
	JoinTable               *JoinTable `xml:"join-table"`
	FilterJoinTables        []Filter   `xml:"filter-join-table"`
	SqlJoinTableRestriction string     `xml:"sql-join-table-restriction"`
}

func (a *ManyToMany) AttributeName() string { return a.Name }

type ElementCollection struct {
	Name              string `xml:"name,attr"`
	TargetClass       string `xml:"target-class,attr"`
	Fetch             string `xml:"fetch,attr"`
	Access            string `xml:"access,attr"`
	AttributeAccessor string `xml:"attribute-accessor,attr"`
	PluralMapping
	BasicTypeComposition
	CollectionTable      *CollectionTable      `xml:"collection-table"`
	Column               *Column               `xml:"column"`
	Formula              string                `xml:"formula"`
	Temporal             string                `xml:"temporal"`
	Enumerated           string                `xml:"enumerated"`
	Lob                  *Empty                `xml:"lob"`
	Nationalized         *Empty                `xml:"nationalized"`
	Converts             []Convert             `xml:"convert"`
	AttributeOverrides   []AttributeOverride   `xml:"attribute-override"`
	AssociationOverrides []AssociationOverride `xml:"association-override"`
}

func (a *ElementCollection) AttributeName() string { return a.Name }

// AnyDiscriminator describes the discriminator of an <any> mapping.
type AnyDiscriminator struct {
	Type   string                  `xml:"type,attr"`
	Column *Column                 `xml:"column"`
	Values []AnyDiscriminatorValue `xml:"mapping"`
}

type AnyDiscriminatorValue struct {
	Value       string `xml:"value,attr"`
	EntityClass string `xml:",chardata"`
}

type AnyKey struct {
	Type     string       `xml:"type,attr"`
	JavaType string       `xml:"java-class"`
	Columns  []JoinColumn `xml:"column"`
}

type Any struct {
	Name              string            `xml:"name,attr"`
	Fetch             string            `xml:"fetch,attr"`
	Optional          *bool             `xml:"optional,attr"`
	Access            string            `xml:"access,attr"`
	AttributeAccessor string            `xml:"attribute-accessor,attr"`
	Discriminator     *AnyDiscriminator `xml:"discriminator"`
	Key               *AnyKey           `xml:"key"`
	Cascade           *Cascade          `xml:"cascade"`
}

type ManyToAny struct {
	Name              string            `xml:"name,attr"`
	Fetch             string            `xml:"fetch,attr"`
	Access            string            `xml:"access,attr"`
	AttributeAccessor string            `xml:"attribute-accessor,attr"`
	Discriminator     *AnyDiscriminator `xml:"discriminator"`
	Key               *AnyKey           `xml:"key"`
	Cascade           *Cascade          `xml:"cascade"`
	JoinTable         *JoinTable        `xml:"join-table"`
	PluralMapping
}

func (a *ManyToAny) AttributeName() string { return a.Name }

type Transient struct {
	Name string `xml:"name,attr"`
}

type Cascade struct {
	All       *Empty `xml:"cascade-all"`
	Persist   *Empty `xml:"cascade-persist"`
	Merge     *Empty `xml:"cascade-merge"`
	Remove    *Empty `xml:"cascade-remove"`
	Refresh   *Empty `xml:"cascade-refresh"`
	Detach    *Empty `xml:"cascade-detach"`
	Replicate *Empty `xml:"cascade-replicate"`
	Lock      *Empty `xml:"cascade-lock"`
}

type Column struct {
	Name             string            `xml:"name,attr"`
	Unique           *bool             `xml:"unique,attr"`
	Nullable         *bool             `xml:"nullable,attr"`
	Insertable       *bool             `xml:"insertable,attr"`
	Updatable        *bool             `xml:"updatable,attr"`
	ColumnDefinition string            `xml:"column-definition,attr"`
	Options          string            `xml:"options,attr"`
	Table            string            `xml:"table,attr"`
	Length           *int              `xml:"length,attr"`
	Precision        *int              `xml:"precision,attr"`
	Scale            *int              `xml:"scale,attr"`
	Comment          string            `xml:"comment,attr"`
	CheckConstraints []CheckConstraint `xml:"check-constraint"`
}

type JoinColumn struct {
	Name                 string      `xml:"name,attr"`
	ReferencedColumnName string      `xml:"referenced-column-name,attr"`
	Unique               *bool       `xml:"unique,attr"`
	Nullable             *bool       `xml:"nullable,attr"`
	Insertable           *bool       `xml:"insertable,attr"`
	Updatable            *bool       `xml:"updatable,attr"`
	ColumnDefinition     string      `xml:"column-definition,attr"`
	Options              string      `xml:"options,attr"`
	Table                string      `xml:"table,attr"`
	Comment              string      `xml:"comment,attr"`
	ForeignKey           *ForeignKey `xml:"foreign-key"`
}

type PrimaryKeyJoinColumn struct {
	Name                 string `xml:"name,attr"`
	ReferencedColumnName string `xml:"referenced-column-name,attr"`
	ColumnDefinition     string `xml:"column-definition,attr"`
	Options              string `xml:"options,attr"`
}

type MapKeyJoinColumn = JoinColumn

type MapKeyColumn = Column

type ForeignKey struct {
	Name                 string `xml:"name,attr"`
	ConstraintMode       string `xml:"constraint-mode,attr"`
	ForeignKeyDefinition string `xml:"foreign-key-definition,attr"`
	Options              string `xml:"options,attr"`
	Description          string `xml:"description"`
}

type CheckConstraint struct {
	Name       string `xml:"name,attr"`
	Constraint string `xml:"constraint,attr"`
	Options    string `xml:"options,attr"`
}

type UniqueConstraint struct {
	Name        string   `xml:"name,attr"`
	Options     string   `xml:"options,attr"`
	ColumnNames []string `xml:"column-name"`
}

type Index struct {
	Name       string `xml:"name,attr"`
	ColumnList string `xml:"column-list,attr"`
	Unique     *bool  `xml:"unique,attr"`
	Options    string `xml:"options,attr"`
}

// TableAttributes is shared by every table-like element.
type TableAttributes struct {
	Catalog           string             `xml:"catalog,attr"`
	Schema            string             `xml:"schema,attr"`
	Options           string             `xml:"options,attr"`
	Comment           string             `xml:"comment,attr"`
	CheckConstraints  []CheckConstraint  `xml:"check-constraint"`
	UniqueConstraints []UniqueConstraint `xml:"unique-constraint"`
	Indexes           []Index            `xml:"index"`
}

type Table struct {
	Name string `xml:"name,attr"`
	TableAttributes
}

type SecondaryTable struct {
	Name string `xml:"name,attr"`
	TableAttributes
	PrimaryKeyJoinColumns []PrimaryKeyJoinColumn `xml:"primary-key-join-column"`
	PrimaryKeyForeignKey  *ForeignKey            `xml:"primary-key-foreign-key"`
	Optional              *bool                  `xml:"optional,attr"`
	Owned                 *bool                  `xml:"owned,attr"`
}

type JoinTable struct {
	Name string `xml:"name,attr"`
	TableAttributes
	JoinColumns        []JoinColumn `xml:"join-column"`
	ForeignKey         *ForeignKey  `xml:"foreign-key"`
	InverseJoinColumns []JoinColumn `xml:"inverse-join-column"`
	InverseForeignKey  *ForeignKey  `xml:"inverse-foreign-key"`
}

type CollectionTable struct {
	Name string `xml:"name,attr"`
	TableAttributes
	JoinColumns []JoinColumn `xml:"join-column"`
	ForeignKey  *ForeignKey  `xml:"foreign-key"`
}

type OrderColumn struct {
	Name             string `xml:"name,attr"`
	Nullable         *bool  `xml:"nullable,attr"`
	Insertable       *bool  `xml:"insertable,attr"`
	Updatable        *bool  `xml:"updatable,attr"`
	ColumnDefinition string `xml:"column-definition,attr"`
	Options          string `xml:"options,attr"`
}

type MapKey struct {
	Name string `xml:"name,attr"`
}

type MapKeyClass struct {
	Class string `xml:"class,attr"`
}

type CollectionID struct {
	Column    *Column `xml:"column"`
	Generator string  `xml:"generator,attr"`
}

type AttributeOverride struct {
	Name        string  `xml:"name,attr"`
	Description string  `xml:"description"`
	Column      *Column `xml:"column"`
}

type AssociationOverride struct {
	Name        string       `xml:"name,attr"`
	Description string       `xml:"description"`
	JoinColumns []JoinColumn `xml:"join-column"`
	ForeignKey  *ForeignKey  `xml:"foreign-key"`
	JoinTable   *JoinTable   `xml:"join-table"`
}

type Convert struct {
	Converter         string `xml:"converter,attr"`
	AttributeName     string `xml:"attribute-name,attr"`
	DisableConversion *bool  `xml:"disable-conversion,attr"`
}

type GeneratedValue struct {
	Strategy  string `xml:"strategy,attr"`
	Generator string `xml:"generator,attr"`
}

type SequenceGenerator struct {
	Name           string `xml:"name,attr"`
	SequenceName   string `xml:"sequence-name,attr"`
	Catalog        string `xml:"catalog,attr"`
	Schema         string `xml:"schema,attr"`
	InitialValue   *int   `xml:"initial-value,attr"`
	AllocationSize *int   `xml:"allocation-size,attr"`
	Options        string `xml:"options,attr"`
}

type TableGenerator struct {
	Name              string             `xml:"name,attr"`
	Table             string             `xml:"table,attr"`
	Catalog           string             `xml:"catalog,attr"`
	Schema            string             `xml:"schema,attr"`
	PkColumnName      string             `xml:"pk-column-name,attr"`
	ValueColumnName   string             `xml:"value-column-name,attr"`
	PkColumnValue     string             `xml:"pk-column-value,attr"`
	InitialValue      *int               `xml:"initial-value,attr"`
	AllocationSize    *int               `xml:"allocation-size,attr"`
	Options           string             `xml:"options,attr"`
	UniqueConstraints []UniqueConstraint `xml:"unique-constraint"`
	Indexes           []Index            `xml:"index"`
}

type UuidGenerator struct {
	Style string `xml:"style,attr"`
}

type QueryHint struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// QueryOptions are the Hibernate-specific named query settings.
type QueryOptions struct {
	Cacheable   *bool  `xml:"cacheable,attr"`
	CacheRegion string `xml:"cache-region,attr"`
	CacheMode   string `xml:"cache-mode,attr"`
	FetchSize   *int   `xml:"fetch-size,attr"`
	Timeout     *int   `xml:"timeout,attr"`
	ReadOnly    *bool  `xml:"read-only,attr"`
	FlushMode   string `xml:"flush-mode,attr"`
	Comment     string `xml:"comment,attr"`
}

type NamedQuery struct {
	Name string `xml:"name,attr"`
	QueryOptions
	Description string      `xml:"description"`
	Query       string      `xml:"query"`
	LockMode    string      `xml:"lock-mode"`
	Hints       []QueryHint `xml:"hint"`
}

type NamedNativeQuery struct {
	Name             string `xml:"name,attr"`
	ResultClass      string `xml:"result-class,attr"`
	ResultSetMapping string `xml:"result-set-mapping,attr"`
	QueryOptions
	Description        string              `xml:"description"`
	Query              string              `xml:"query"`
	Hints              []QueryHint         `xml:"hint"`
	EntityResults      []EntityResult      `xml:"entity-result"`
	ConstructorResults []ConstructorResult `xml:"constructor-result"`
	ColumnResults      []ColumnResult      `xml:"column-result"`
	Synchronizations   []Synchronize       `xml:"synchronize"`
}

type NamedStoredProcedureQuery struct {
	Name              string                     `xml:"name,attr"`
	ProcedureName     string                     `xml:"procedure-name,attr"`
	Description       string                     `xml:"description"`
	Parameters        []StoredProcedureParameter `xml:"parameter"`
	ResultClasses     []string                   `xml:"result-class"`
	ResultSetMappings []string                   `xml:"result-set-mapping"`
	Hints             []QueryHint                `xml:"hint"`
}

type StoredProcedureParameter struct {
	Name  string `xml:"name,attr"`
	Mode  string `xml:"mode,attr"`
	Class string `xml:"class,attr"`
}

type SqlResultSetMapping struct {
	Name               string              `xml:"name,attr"`
	Description        string              `xml:"description"`
	EntityResults      []EntityResult      `xml:"entity-result"`
	ConstructorResults []ConstructorResult `xml:"constructor-result"`
	ColumnResults      []ColumnResult      `xml:"column-result"`
}

type EntityResult struct {
	EntityClass         string        `xml:"entity-class,attr"`
	LockMode            string        `xml:"lock-mode,attr"`
	DiscriminatorColumn string        `xml:"discriminator-column,attr"`
	FieldResults        []FieldResult `xml:"field-result"`
}

type FieldResult struct {
	Name   string `xml:"name,attr"`
	Column string `xml:"column,attr"`
}

type ConstructorResult struct {
	TargetClass string         `xml:"target-class,attr"`
	Columns     []ColumnResult `xml:"column"`
}

type ColumnResult struct {
	Name  string `xml:"name,attr"`
	Class string `xml:"class,attr"`
}

type NamedEntityGraph struct {
	Name                 string               `xml:"name,attr"`
	IncludeAllAttributes *bool                `xml:"include-all-attributes,attr"`
	AttributeNodes       []NamedAttributeNode `xml:"named-attribute-node"`
	Subgraphs            []NamedSubgraph      `xml:"subgraph"`
	SubclassSubgraphs    []NamedSubgraph      `xml:"subclass-subgraph"`
}

type NamedAttributeNode struct {
	Name        string `xml:"name,attr"`
	Subgraph    string `xml:"subgraph,attr"`
	KeySubgraph string `xml:"key-subgraph,attr"`
}

type NamedSubgraph struct {
	Name           string               `xml:"name,attr"`
	Class          string               `xml:"class,attr"`
	AttributeNodes []NamedAttributeNode `xml:"named-attribute-node"`
}

type FilterDef struct {
	Name             string        `xml:"name,attr"`
	AutoEnabled      *bool         `xml:"auto-enabled,attr"`
	ApplyToLoadByKey *bool         `xml:"apply-to-load-by-key,attr"`
	Description      string        `xml:"description"`
	DefaultCondition string        `xml:"default-condition"`
	Params           []FilterParam `xml:"filter-param"`
}

type FilterParam struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type Filter struct {
	Name               string        `xml:"name,attr"`
	Condition          string        `xml:"condition,attr"`
	AutoAliasInjection *bool         `xml:"autoAliasInjection,attr"`
	Aliases            []FilterAlias `xml:"aliases"`
}

type FilterAlias struct {
	Alias  string `xml:"alias,attr"`
	Table  string `xml:"table,attr"`
	Entity string `xml:"entity,attr"`
}
