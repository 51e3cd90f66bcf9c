package xmlproc

import (
	"errors"
	"fmt"

	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// PrepareDynamicClass adds a dynamic field to class for every attribute the
// managed type declares, typed from what the mapping says about it. Fields
// are added in a fixed order: identifiers, natural id and tenant id first,
// then the remaining attributes grouped by kind.
func PrepareDynamicClass(class *java.ClassDetails, managed mapping.ManagedType, ctx *XmlDocumentContext) error {
	p := &dynamicPreparer{class: class, declaring: declaringTypeName(managed), ctx: ctx}
	class.RemoveDynamicFields()

	attrs := managed.AttributeContainer()
	switch t := managed.(type) {
	case *mapping.Entity:
		if attrs != nil {
			if err := p.addIdentifiers(attrs); err != nil {
				return err
			}
			if attrs.NaturalId != nil {
				if err := p.addNaturalId(attrs.NaturalId); err != nil {
					return err
				}
			}
		}
		if t.TenantID != nil {
			if err := p.addBasic(t.TenantID.Name, &t.TenantID.BasicTypeComposition, ""); err != nil {
				return err
			}
		}
	case *mapping.MappedSuperclass:
		if attrs != nil {
			if err := p.addIdentifiers(attrs); err != nil {
				return err
			}
		}
	}

	if attrs == nil {
		return nil
	}
	return p.addAttributes(attrs)
}

func declaringTypeName(managed mapping.ManagedType) string {
	switch t := managed.(type) {
	case *mapping.Entity:
		if t.Name != "" {
			return t.Name
		}
	case *mapping.Embeddable:
		if t.Name != "" {
			return t.Name
		}
	}
	return managed.ClassName()
}

type dynamicPreparer struct {
	class     *java.ClassDetails
	declaring string
	ctx       *XmlDocumentContext
}

func (p *dynamicPreparer) add(name string, typ java.TypeModel) {
	log.Debugf("dynamic attribute %s#%s : %s", p.declaring, name, typ)
	p.class.AddField(java.NewDynamicFieldDetails(name, typ))
}

func (p *dynamicPreparer) addIdentifiers(attrs *mapping.Attributes) error {
	if len(attrs.Ids) > 0 {
		for i := range attrs.Ids {
			id := &attrs.Ids[i]
			if err := p.addBasic(id.Name, &id.BasicTypeComposition, ""); err != nil {
				return err
			}
		}
		return nil
	}
	if attrs.EmbeddedId != nil {
		return p.addEmbedded(attrs.EmbeddedId.Name, attrs.EmbeddedId.Target)
	}
	return nil
}

func (p *dynamicPreparer) addNaturalId(nid *mapping.NaturalId) error {
	for i := range nid.Basics {
		b := &nid.Basics[i]
		if err := p.addBasic(b.Name, &b.BasicTypeComposition, b.Temporal); err != nil {
			return err
		}
	}
	for i := range nid.Embeddeds {
		if err := p.addEmbedded(nid.Embeddeds[i].Name, nid.Embeddeds[i].Target); err != nil {
			return err
		}
	}
	for i := range nid.ManyToOnes {
		if err := p.addAssociation(&nid.ManyToOnes[i].AssociationMapping); err != nil {
			return err
		}
	}
	for i := range nid.Anys {
		p.add(nid.Anys[i].Name, java.TypeOf("java.lang.Object"))
	}
	return nil
}

func (p *dynamicPreparer) addAttributes(attrs *mapping.Attributes) error {
	for i := range attrs.Basics {
		b := &attrs.Basics[i]
		if err := p.addBasic(b.Name, &b.BasicTypeComposition, b.Temporal); err != nil {
			return err
		}
	}
	for i := range attrs.Embeddeds {
		if err := p.addEmbedded(attrs.Embeddeds[i].Name, attrs.Embeddeds[i].Target); err != nil {
			return err
		}
	}
	for i := range attrs.ManyToOnes {
		if err := p.addAssociation(&attrs.ManyToOnes[i].AssociationMapping); err != nil {
			return err
		}
	}
	for i := range attrs.Anys {
		p.add(attrs.Anys[i].Name, java.TypeOf("java.lang.Object"))
	}
	for i := range attrs.OneToOnes {
		if err := p.addAssociation(&attrs.OneToOnes[i].AssociationMapping); err != nil {
			return err
		}
	}
	for i := range attrs.ElementCollections {
		ec := &attrs.ElementCollections[i]
		p.add(ec.Name, elementCollectionType(ec, p.ctx))
	}
	for i := range attrs.OneToManys {
		o2m := &attrs.OneToManys[i]
		if err := p.addPluralAssociation(&o2m.AssociationMapping, &o2m.PluralMapping); err != nil {
			return err
		}
	}
	for i := range attrs.ManyToManys {
		m2m := &attrs.ManyToManys[i]
		if err := p.addPluralAssociation(&m2m.AssociationMapping, &m2m.PluralMapping); err != nil {
			return err
		}
	}
	for i := range attrs.ManyToAnys {
		p.add(attrs.ManyToAnys[i].Name, java.TypeOf("java.lang.Object"))
	}
	return nil
}

func (p *dynamicPreparer) addBasic(name string, btc *mapping.BasicTypeComposition, temporal string) error {
	typ, err := p.basicJavaType(name, btc, temporal)
	if err != nil {
		return err
	}
	p.add(name, typ)
	return nil
}

// basicJavaType infers the Java type of a basic value from, in order: the
// target, the user type, the java-type descriptor, the JDBC type and, for
// <basic> only, the temporal type.
func (p *dynamicPreparer) basicJavaType(name string, btc *mapping.BasicTypeComposition, temporal string) (java.TypeModel, error) {
	types := p.ctx.Bootstrap().Types

	if btc.Target != "" {
		st, ok := InterpretSimpleType(btc.Target)
		if !ok {
			return java.TypeModel{}, unknownAttributeTypef(
				"Could not determine target type for dynamic attribute [%s, %s]", p.declaring, name)
		}
		return p.resolve(st.JavaType())
	}

	switch r := ResolveUserType(btc.Type, p.ctx.EffectiveDefaults().Package); r.Kind {
	case UserTypeBuiltin:
		return p.resolve(r.Builtin.JavaType())
	case UserTypeCustom:
		returned, err := types.UserTypeReturnedClass(r.Class)
		if err != nil {
			return java.TypeModel{}, err
		}
		return p.resolve(returned)
	}

	if btc.JavaType != "" {
		javaType, err := types.JavaTypeClass(p.ctx.ResolveClassName(btc.JavaType))
		if err != nil {
			return java.TypeModel{}, err
		}
		return p.resolve(javaType)
	}

	switch {
	case btc.JdbcType != "":
		// the descriptor is looked up under the java-type name, which is
		// empty when this branch is reached
		jdbc, err := types.JdbcType(p.ctx.ResolveClassName(btc.JavaType))
		if err != nil {
			return java.TypeModel{}, err
		}
		return p.resolve(jdbc.RecommendedJavaType)
	case btc.JdbcTypeCode != nil:
		jdbc, err := types.JdbcTypeForCode(*btc.JdbcTypeCode)
		if err != nil {
			return java.TypeModel{}, err
		}
		return p.resolve(jdbc.RecommendedJavaType)
	}

	switch temporal {
	case "":
	case "DATE":
		return p.resolve("java.sql.Date")
	case "TIME":
		return p.resolve("java.sql.Time")
	default:
		return p.resolve("java.sql.Timestamp")
	}

	return java.TypeModel{}, unknownAttributeTypef(
		"Could not determine target type for dynamic attribute [%s#%s]", p.declaring, name)
}

// resolve registers the named class with the model and returns its type.
// Classes the loader does not know are typed by name only.
func (p *dynamicPreparer) resolve(name string) (java.TypeModel, error) {
	c, err := p.ctx.classes().ResolveClassDetails(name)
	if errors.Is(err, java.ErrClassNotFound) {
		log.Debugf("type %s of dynamic attribute not known to the class loader", name)
		return java.TypeOf(name), nil
	}
	if err != nil {
		return java.TypeModel{}, err
	}
	return java.TypeOf(c.Name), nil
}

func (p *dynamicPreparer) addEmbedded(name, target string) error {
	if target == "" {
		return modelsErrorf("Could not determine target type for dynamic attribute [%s#%s]", p.declaring, name)
	}
	c, err := p.resolveOrCreate(target)
	if err != nil {
		return err
	}
	p.add(name, java.TypeOf(c.Name))
	return nil
}

func (p *dynamicPreparer) associationTarget(assoc *mapping.AssociationMapping) (*java.ClassDetails, error) {
	if assoc.TargetEntity == "" {
		return nil, modelsErrorf("Could not determine target type for dynamic attribute [%s#%s]", p.declaring, assoc.Name)
	}
	return p.resolveOrCreate(assoc.TargetEntity)
}

func (p *dynamicPreparer) addAssociation(assoc *mapping.AssociationMapping) error {
	c, err := p.associationTarget(assoc)
	if err != nil {
		return err
	}
	p.add(assoc.Name, java.TypeOf(c.Name))
	return nil
}

func (p *dynamicPreparer) addPluralAssociation(assoc *mapping.AssociationMapping, plural *mapping.PluralMapping) error {
	c, err := p.associationTarget(assoc)
	if err != nil {
		return err
	}
	typ, err := makeCollectionType(p.class, assoc.Name, plural, java.TypeOf(c.Name))
	if err != nil {
		return err
	}
	p.add(assoc.Name, typ)
	return nil
}

// resolveOrCreate finds the class a target names, creating a dynamic class
// for names nothing can load.
func (p *dynamicPreparer) resolveOrCreate(target string) (*java.ClassDetails, error) {
	name := DetermineTargetName(target, p.ctx)
	c, err := p.ctx.classes().ResolveClassDetailsWith(name, func(name string) (*java.ClassDetails, error) {
		return java.NewDynamicClassDetails(name, nil, false), nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve target of dynamic attribute in %s: %w", p.declaring, err)
	}
	return c, nil
}
