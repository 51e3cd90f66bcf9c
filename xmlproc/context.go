// Package xmlproc overlays orm.xml mapping documents onto the class model:
// it turns each mapping element into the annotation usages the element
// stands for, and synthesizes dynamic classes for managed types that have
// no Java class.
package xmlproc

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/typedesc"
)

var log = commonlog.GetLogger("ormxml.xml")

// ModelBuildingContext owns the class models being built.
type ModelBuildingContext struct {
	Classes *java.ClassDetailsRegistry
}

func NewModelBuildingContext(classes *java.ClassDetailsRegistry) *ModelBuildingContext {
	return &ModelBuildingContext{Classes: classes}
}

// BootstrapContext carries what the persistence unit knows about types.
type BootstrapContext struct {
	Types *typedesc.Registry
}

func NewBootstrapContext(types *typedesc.Registry) *BootstrapContext {
	if types == nil {
		types = typedesc.NewRegistry()
	}
	return &BootstrapContext{Types: types}
}

// XmlDocumentContext is the state shared while processing one document.
type XmlDocumentContext struct {
	document  *XmlDocument
	metadata  *PersistenceUnitMetadata
	models    *ModelBuildingContext
	bootstrap *BootstrapContext
}

func NewXmlDocumentContext(document *XmlDocument, metadata *PersistenceUnitMetadata, models *ModelBuildingContext, bootstrap *BootstrapContext) *XmlDocumentContext {
	return &XmlDocumentContext{
		document:  document,
		metadata:  metadata,
		models:    models,
		bootstrap: bootstrap,
	}
}

func (c *XmlDocumentContext) Document() *XmlDocument                    { return c.document }
func (c *XmlDocumentContext) PersistenceUnit() *PersistenceUnitMetadata { return c.metadata }
func (c *XmlDocumentContext) Models() *ModelBuildingContext             { return c.models }
func (c *XmlDocumentContext) Bootstrap() *BootstrapContext              { return c.bootstrap }

// EffectiveDefaults are the document defaults over the unit defaults.
func (c *XmlDocumentContext) EffectiveDefaults() Defaults {
	return c.document.Defaults()
}

func (c *XmlDocumentContext) classes() *java.ClassDetailsRegistry {
	return c.models.Classes
}

// ResolveJavaType interprets a type name as written in the document.
func (c *XmlDocumentContext) ResolveJavaType(name string) string {
	return resolveJavaType(c.document.Defaults().Package, name)
}

// ResolveClassName qualifies a class name with the document package.
func (c *XmlDocumentContext) ResolveClassName(name string) string {
	return qualifyIfNeeded(c.document.Defaults().Package, name)
}
