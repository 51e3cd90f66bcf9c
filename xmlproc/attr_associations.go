package xmlproc

import (
	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// applyAssociation applies the association annotation itself with the
// attributes every association kind shares.
func applyAssociation(annotationType string, a *mapping.AssociationMapping, member java.MemberDetails, ctx *XmlDocumentContext) *java.AnnotationUsage {
	usage := getOrMakeAnnotation(annotationType, member)
	usage.SetIfNotEmpty("fetch", a.Fetch)
	if a.TargetEntity != "" {
		usage.Set("targetEntity", DetermineTargetName(a.TargetEntity, ctx))
	}
	applyCascading(a.Cascade, member, ctx)
	return usage
}

func applyMapsID(mapsID string, member java.MemberDetails) {
	if mapsID == "" {
		return
	}
	makeAnnotation(annotations.MapsId, member).Set("value", mapsID)
}

func applyNotFound(action string, member java.MemberDetails) {
	if action == "" {
		return
	}
	makeAnnotation(annotations.NotFound, member).Set("action", action)
}

func applyOnDelete(action string, member java.MemberDetails) {
	if action == "" {
		return
	}
	makeAnnotation(annotations.OnDelete, member).Set("action", action)
}

func processManyToOne(m *mapping.ManyToOne, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(m.Name, m.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	usage := applyAssociation(annotations.ManyToOne, &m.AssociationMapping, member, ctx)
	setIfNotNil(usage, "optional", m.Optional)

	applyJoinColumns(m.JoinColumns, member)
	applyForeignKey(m.ForeignKey, member)
	applyJoinTable(m.JoinTable, member, ctx)
	applyMapsID(m.MapsId, member)
	if m.Id != nil && *m.Id {
		applyID(member)
	}
	applyNotFound(m.NotFound, member)
	applyOnDelete(m.OnDelete, member)
	return member, nil
}

func processOneToOne(o *mapping.OneToOne, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(o.Name, o.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	usage := applyAssociation(annotations.OneToOne, &o.AssociationMapping, member, ctx)
	setIfNotNil(usage, "optional", o.Optional)
	usage.SetIfNotEmpty("mappedBy", o.MappedBy)
	setIfNotNil(usage, "orphanRemoval", o.OrphanRemoval)

	switch len(o.PrimaryKeyJoinColumns) {
	case 0:
	case 1:
		member.ApplyAnnotationUsage(createPrimaryKeyJoinColumn(&o.PrimaryKeyJoinColumns[0]))
	default:
		makeAnnotation(annotations.PrimaryKeyJoinColumns, member).
			Set("value", createPrimaryKeyJoinColumns(o.PrimaryKeyJoinColumns))
	}
	applyJoinColumns(o.JoinColumns, member)
	applyForeignKey(o.ForeignKey, member)
	applyJoinTable(o.JoinTable, member, ctx)
	applyMapsID(o.MapsId, member)
	if o.Id != nil && *o.Id {
		applyID(member)
	}
	applyNotFound(o.NotFound, member)
	applyOnDelete(o.OnDelete, member)
	return member, nil
}

func processOneToMany(o *mapping.OneToMany, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(o.Name, o.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	usage := applyAssociation(annotations.OneToMany, &o.AssociationMapping, member, ctx)
	usage.SetIfNotEmpty("mappedBy", o.MappedBy)
	setIfNotNil(usage, "orphanRemoval", o.OrphanRemoval)

	if err := applyPluralAttributeDetails(&o.PluralMapping, member, ctx); err != nil {
		return nil, err
	}
	applyJoinTable(o.JoinTable, member, ctx)
	applyJoinColumns(o.JoinColumns, member)
	applyForeignKey(o.ForeignKey, member)
	applyNotFound(o.NotFound, member)
	applyOnDelete(o.OnDelete, member)
	return member, nil
}

func processManyToMany(m *mapping.ManyToMany, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(m.Name, m.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	usage := applyAssociation(annotations.ManyToMany, &m.AssociationMapping, member, ctx)
	usage.SetIfNotEmpty("mappedBy", m.MappedBy)

	if err := applyPluralAttributeDetails(&m.PluralMapping, member, ctx); err != nil {
		return nil, err
	}
	applyJoinTable(m.JoinTable, member, ctx)
	applyJoinTableFilters(m.FilterJoinTables, member, ctx)
	applySqlJoinTableRestriction(m.SqlJoinTableRestriction, member)
	applyNotFound(m.NotFound, member)
	return member, nil
}
