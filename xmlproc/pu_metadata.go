package xmlproc

import (
	"github.com/dhamidi/ormxml/mapping"
)

// CascadeType names a Hibernate cascade type. Hibernate's enumeration is a
// superset of the JPA one, so it is used for XML cascades throughout.
type CascadeType string

const (
	CascadeAll       CascadeType = "ALL"
	CascadePersist   CascadeType = "PERSIST"
	CascadeMerge     CascadeType = "MERGE"
	CascadeRemove    CascadeType = "REMOVE"
	CascadeRefresh   CascadeType = "REFRESH"
	CascadeDetach    CascadeType = "DETACH"
	CascadeReplicate CascadeType = "REPLICATE"
	CascadeLock      CascadeType = "LOCK"
)

// cascadeTypesOf lists the flags set on a <cascade> node in declaration
// order of the schema.
func cascadeTypesOf(c *mapping.Cascade) []CascadeType {
	if c == nil {
		return nil
	}
	var out []CascadeType
	add := func(flag *mapping.Empty, t CascadeType) {
		if flag != nil {
			out = append(out, t)
		}
	}
	add(c.All, CascadeAll)
	add(c.Persist, CascadePersist)
	add(c.Merge, CascadeMerge)
	add(c.Remove, CascadeRemove)
	add(c.Refresh, CascadeRefresh)
	add(c.Detach, CascadeDetach)
	add(c.Replicate, CascadeReplicate)
	add(c.Lock, CascadeLock)
	return out
}

func appendCascadeTypes(dst []CascadeType, types ...CascadeType) []CascadeType {
	for _, t := range types {
		if !containsCascadeType(dst, t) {
			dst = append(dst, t)
		}
	}
	return dst
}

func containsCascadeType(types []CascadeType, t CascadeType) bool {
	for _, existing := range types {
		if existing == t {
			return true
		}
	}
	return false
}

// PersistenceUnitMetadata aggregates <persistence-unit-metadata> across all
// mapping documents of a persistence unit. Flags never revert once set.
// Later scalar defaults replace earlier ones.
type PersistenceUnitMetadata struct {
	xmlComplete       bool
	quotedIdentifiers bool
	schema            string
	catalog           string
	access            AccessType
	accessorStrategy  string
	cascadeTypes      []CascadeType
	entityListeners   []mapping.EntityListener
}

func NewPersistenceUnitMetadata() *PersistenceUnitMetadata {
	return &PersistenceUnitMetadata{}
}

// Apply merges the metadata of one document.
func (m *PersistenceUnitMetadata) Apply(pum *mapping.PersistenceUnitMetadata) {
	if pum == nil {
		return
	}
	if pum.XmlMappingMetadataComplete != nil {
		m.xmlComplete = true
	}

	defaults := pum.PersistenceUnitDefaults
	if defaults == nil {
		return
	}
	if defaults.DelimitedIdentifiers != nil {
		m.quotedIdentifiers = true
	}
	m.SetSchema(defaults.Schema)
	m.SetCatalog(defaults.Catalog)
	if access := accessTypeOf(defaults.Access); access != "" {
		m.SetAccessType(access)
	}
	m.SetAccessorStrategy(defaults.DefaultAccess)
	if defaults.CascadePersist != nil {
		m.AddCascadeType(CascadePersist)
	}
	m.entityListeners = append(m.entityListeners, defaults.EntityListeners...)
}

func (m *PersistenceUnitMetadata) XmlComplete() bool        { return m.xmlComplete }
func (m *PersistenceUnitMetadata) QuotedIdentifiers() bool  { return m.quotedIdentifiers }
func (m *PersistenceUnitMetadata) Schema() string           { return m.schema }
func (m *PersistenceUnitMetadata) Catalog() string          { return m.catalog }
func (m *PersistenceUnitMetadata) AccessType() AccessType   { return m.access }
func (m *PersistenceUnitMetadata) AccessorStrategy() string { return m.accessorStrategy }

// CascadeTypes returns the default cascade types in the order they were
// first declared.
func (m *PersistenceUnitMetadata) CascadeTypes() []CascadeType {
	return append([]CascadeType(nil), m.cascadeTypes...)
}

// EntityListeners returns the default entity listeners of the unit.
func (m *PersistenceUnitMetadata) EntityListeners() []mapping.EntityListener {
	return m.entityListeners
}

// SetXmlComplete marks the unit xml-complete. Clearing the flag is ignored.
func (m *PersistenceUnitMetadata) SetXmlComplete(complete bool) {
	m.xmlComplete = m.xmlComplete || complete
}

// SetQuotedIdentifiers marks identifiers as quoted. Clearing is ignored.
func (m *PersistenceUnitMetadata) SetQuotedIdentifiers(quoted bool) {
	m.quotedIdentifiers = m.quotedIdentifiers || quoted
}

func (m *PersistenceUnitMetadata) SetSchema(schema string) {
	m.schema = overrideDefault("schema", m.schema, schema)
}

func (m *PersistenceUnitMetadata) SetCatalog(catalog string) {
	m.catalog = overrideDefault("catalog", m.catalog, catalog)
}

func (m *PersistenceUnitMetadata) SetAccessType(access AccessType) {
	m.access = AccessType(overrideDefault("access", string(m.access), string(access)))
}

func (m *PersistenceUnitMetadata) SetAccessorStrategy(strategy string) {
	m.accessorStrategy = overrideDefault("attribute accessor", m.accessorStrategy, strategy)
}

func (m *PersistenceUnitMetadata) AddCascadeType(t CascadeType) {
	m.cascadeTypes = appendCascadeTypes(m.cascadeTypes, t)
}

// overrideDefault implements last-wins for scalar defaults. An empty value
// keeps the current one.
func overrideDefault(what, current, value string) string {
	if value == "" {
		return current
	}
	if current != "" && current != value {
		log.Debugf("persistence unit default %s [%s] overridden by [%s]", what, current, value)
	}
	return value
}
