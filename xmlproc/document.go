package xmlproc

import (
	"github.com/dhamidi/ormxml/mapping"
)

// Defaults are the values a mapping document supplies to every managed type
// it declares, merged with the persistence-unit defaults.
type Defaults struct {
	Package          string
	Schema           string
	Catalog          string
	Access           AccessType
	AccessorStrategy string
	AutoImport       bool
	ImpliedLaziness  bool
	CascadeTypes     []CascadeType
}

// XmlDocument is one consumed mapping document. It is immutable once built.
type XmlDocument struct {
	origin   string
	root     *mapping.EntityMappings
	defaults Defaults

	filterDefs                  map[string]*mapping.FilterDef
	namedQueries                map[string]*mapping.NamedQuery
	namedNativeQueries          map[string]*mapping.NamedNativeQuery
	namedStoredProcedureQueries map[string]*mapping.NamedStoredProcedureQuery
	resultSetMappings           map[string]*mapping.SqlResultSetMapping
}

// ConsumeDocument resolves the defaults of a parsed document against the
// persistence unit as it stands and indexes its named definitions.
func ConsumeDocument(binding *mapping.Binding, pu *PersistenceUnitMetadata) *XmlDocument {
	root := binding.Root
	d := &XmlDocument{
		origin:                      binding.Origin,
		root:                        root,
		filterDefs:                  map[string]*mapping.FilterDef{},
		namedQueries:                map[string]*mapping.NamedQuery{},
		namedNativeQueries:          map[string]*mapping.NamedNativeQuery{},
		namedStoredProcedureQueries: map[string]*mapping.NamedStoredProcedureQuery{},
		resultSetMappings:           map[string]*mapping.SqlResultSetMapping{},
	}

	d.defaults = Defaults{
		Package:          root.Package,
		Schema:           coalesce(root.Schema, pu.Schema()),
		Catalog:          coalesce(root.Catalog, pu.Catalog()),
		Access:           coalesce(accessTypeOf(root.Access), pu.AccessType()),
		AccessorStrategy: coalesce(root.AttributeAccessor, pu.AccessorStrategy()),
		AutoImport:       root.AutoImport == nil || *root.AutoImport,
		ImpliedLaziness:  root.DefaultLazy != nil && *root.DefaultLazy,
		CascadeTypes:     appendCascadeTypes(pu.CascadeTypes(), cascadeTypesOf(root.DefaultCascade)...),
	}

	for i := range root.FilterDefs {
		d.filterDefs[root.FilterDefs[i].Name] = &root.FilterDefs[i]
	}
	d.indexQueries(root.NamedQueries, root.NamedNativeQueries, root.NamedStoredProcedureQueries, root.SqlResultSetMappings)
	for i := range root.Entities {
		e := &root.Entities[i]
		d.indexQueries(e.NamedQueries, e.NamedNativeQueries, e.NamedStoredProcedureQueries, e.SqlResultSetMappings)
	}
	return d
}

func (d *XmlDocument) indexQueries(
	hql []mapping.NamedQuery,
	native []mapping.NamedNativeQuery,
	procedures []mapping.NamedStoredProcedureQuery,
	mappings []mapping.SqlResultSetMapping,
) {
	for i := range hql {
		d.namedQueries[hql[i].Name] = &hql[i]
	}
	for i := range native {
		d.namedNativeQueries[native[i].Name] = &native[i]
	}
	for i := range procedures {
		d.namedStoredProcedureQueries[procedures[i].Name] = &procedures[i]
	}
	for i := range mappings {
		d.resultSetMappings[mappings[i].Name] = &mappings[i]
	}
}

func (d *XmlDocument) Origin() string                { return d.origin }
func (d *XmlDocument) Root() *mapping.EntityMappings { return d.root }
func (d *XmlDocument) Defaults() Defaults            { return d.defaults }

func (d *XmlDocument) FilterDef(name string) *mapping.FilterDef   { return d.filterDefs[name] }
func (d *XmlDocument) NamedQuery(name string) *mapping.NamedQuery { return d.namedQueries[name] }

func (d *XmlDocument) NamedNativeQuery(name string) *mapping.NamedNativeQuery {
	return d.namedNativeQueries[name]
}

func (d *XmlDocument) NamedStoredProcedureQuery(name string) *mapping.NamedStoredProcedureQuery {
	return d.namedStoredProcedureQueries[name]
}

func (d *XmlDocument) SqlResultSetMapping(name string) *mapping.SqlResultSetMapping {
	return d.resultSetMappings[name]
}
