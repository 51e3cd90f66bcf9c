package xmlproc

import (
	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// applyAnyDiscriminator maps the discriminator of an any mapping: its
// type, its column and the value-to-entity mappings.
func applyAnyDiscriminator(d *mapping.AnyDiscriminator, member java.MemberDetails, ctx *XmlDocumentContext) {
	if d == nil {
		return
	}
	if d.Type != "" {
		makeAnnotation(annotations.AnyDiscriminator, member).Set("value", d.Type)
	}
	applyColumn(d.Column, member)
	for _, v := range d.Values {
		usage := newUsage(annotations.AnyDiscriminatorValue).
			Set("discriminator", v.Value).
			Set("entity", ctx.ResolveClassName(v.EntityClass))
		member.ApplyRepeatableAnnotationUsage(usage, annotations.AnyDiscriminatorValues)
	}
}

func applyAnyKey(k *mapping.AnyKey, member java.MemberDetails, ctx *XmlDocumentContext) {
	if k == nil {
		return
	}
	if k.JavaType != "" {
		makeAnnotation(annotations.AnyKeyJavaClass, member).Set("value", ctx.ResolveJavaType(k.JavaType))
	}
	applyJoinColumns(k.Columns, member)
}

func processAny(a *mapping.Any, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(a.Name, a.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	usage := getOrMakeAnnotation(annotations.Any, member)
	usage.SetIfNotEmpty("fetch", a.Fetch)
	setIfNotNil(usage, "optional", a.Optional)
	applyAnyDiscriminator(a.Discriminator, member, ctx)
	applyAnyKey(a.Key, member, ctx)
	applyCascading(a.Cascade, member, ctx)
	return member, nil
}

func processManyToAny(a *mapping.ManyToAny, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(a.Name, a.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	usage := getOrMakeAnnotation(annotations.ManyToAny, member)
	usage.SetIfNotEmpty("fetch", a.Fetch)
	applyAnyDiscriminator(a.Discriminator, member, ctx)
	applyAnyKey(a.Key, member, ctx)
	applyCascading(a.Cascade, member, ctx)
	applyJoinTable(a.JoinTable, member, ctx)
	if err := applyPluralAttributeDetails(&a.PluralMapping, member, ctx); err != nil {
		return nil, err
	}
	return member, nil
}
