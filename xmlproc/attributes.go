package xmlproc

import (
	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// AttributeRef is what a MemberAdjuster learns about the attribute a
// member was processed for.
type AttributeRef struct {
	Name              string
	Access            string
	AttributeAccessor string
}

// MemberAdjuster runs once for every member processed from an attribute
// element.
type MemberAdjuster func(member java.MemberDetails, attr AttributeRef, ctx *XmlDocumentContext)

// ProcessAttributes processes the attributes of one managed type in a
// fixed order: basic, embedded, many-to-one, any, one-to-one,
// element-collection, one-to-many, many-to-many, many-to-any, transient.
// Transient attributes are not adjusted.
func ProcessAttributes(attrs *mapping.Attributes, class *java.ClassDetails, classAccess AccessType, adjust MemberAdjuster, ctx *XmlDocumentContext) error {
	if attrs == nil {
		return nil
	}
	base := baseAttributes{
		basics:     attrs.Basics,
		embeddeds:  attrs.Embeddeds,
		manyToOnes: attrs.ManyToOnes,
		anys:       attrs.Anys,
	}
	if err := base.process(class, classAccess, adjust, ctx); err != nil {
		return err
	}

	for i := range attrs.OneToOnes {
		a := &attrs.OneToOnes[i]
		member, err := processOneToOne(a, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, refOf(&a.AssociationMapping), ctx)
	}
	for i := range attrs.ElementCollections {
		a := &attrs.ElementCollections[i]
		member, err := processElementCollection(a, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, AttributeRef{a.Name, a.Access, a.AttributeAccessor}, ctx)
	}
	for i := range attrs.OneToManys {
		a := &attrs.OneToManys[i]
		member, err := processOneToMany(a, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, refOf(&a.AssociationMapping), ctx)
	}
	for i := range attrs.ManyToManys {
		a := &attrs.ManyToManys[i]
		member, err := processManyToMany(a, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, refOf(&a.AssociationMapping), ctx)
	}
	for i := range attrs.ManyToAnys {
		a := &attrs.ManyToAnys[i]
		member, err := processManyToAny(a, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, AttributeRef{a.Name, a.Access, a.AttributeAccessor}, ctx)
	}
	for i := range attrs.Transients {
		if err := processTransient(&attrs.Transients[i], class, classAccess); err != nil {
			return err
		}
	}
	return nil
}

// ProcessNaturalID processes the attributes of <natural-id> as base
// attributes and marks each member with @NaturalId, plus @Immutable for an
// immutable natural id. <caching> becomes @NaturalIdCache on the class.
func ProcessNaturalID(nid *mapping.NaturalId, class *java.ClassDetails, classAccess AccessType, adjust MemberAdjuster, ctx *XmlDocumentContext) error {
	if nid == nil {
		return nil
	}
	applyNaturalIdCache(nid.Caching, class)

	wrapped := func(member java.MemberDetails, attr AttributeRef, ctx *XmlDocumentContext) {
		adjust(member, attr, ctx)
		makeAnnotation(annotations.NaturalId, member).Set("mutable", nid.Mutable)
		if !nid.Mutable {
			makeAnnotation(annotations.Immutable, member)
		}
	}
	base := baseAttributes{
		basics:     nid.Basics,
		embeddeds:  nid.Embeddeds,
		manyToOnes: nid.ManyToOnes,
		anys:       nid.Anys,
	}
	return base.process(class, classAccess, wrapped, ctx)
}

// baseAttributes are the kinds allowed both in <attributes> and in
// <natural-id>.
type baseAttributes struct {
	basics     []mapping.Basic
	embeddeds  []mapping.Embedded
	manyToOnes []mapping.ManyToOne
	anys       []mapping.Any
}

func (b baseAttributes) process(class *java.ClassDetails, classAccess AccessType, adjust MemberAdjuster, ctx *XmlDocumentContext) error {
	for i := range b.basics {
		a := &b.basics[i]
		member, err := processBasic(a, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, AttributeRef{a.Name, a.Access, a.AttributeAccessor}, ctx)
	}
	for i := range b.embeddeds {
		a := &b.embeddeds[i]
		member, err := processEmbedded(a, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, AttributeRef{a.Name, a.Access, a.AttributeAccessor}, ctx)
	}
	for i := range b.manyToOnes {
		a := &b.manyToOnes[i]
		member, err := processManyToOne(a, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, refOf(&a.AssociationMapping), ctx)
	}
	for i := range b.anys {
		a := &b.anys[i]
		member, err := processAny(a, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, AttributeRef{a.Name, a.Access, a.AttributeAccessor}, ctx)
	}
	return nil
}

func refOf(a *mapping.AssociationMapping) AttributeRef {
	return AttributeRef{Name: a.Name, Access: a.Access, AttributeAccessor: a.AttributeAccessor}
}

// attributeMember finds the member for an attribute, using the attribute's
// own access type when it declares one.
func attributeMember(name, access string, class *java.ClassDetails, classAccess AccessType) (java.MemberDetails, error) {
	return GetAttributeMember(name, coalesce(accessTypeOf(access), classAccess), class)
}

func processTransient(t *mapping.Transient, class *java.ClassDetails, classAccess AccessType) error {
	member, err := attributeMember(t.Name, "", class, classAccess)
	if err != nil {
		return err
	}
	makeAnnotation(annotations.Transient, member)
	return nil
}
