package xmlproc

import (
	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// applyPluralAttributeDetails covers what all collection kinds share:
// ordering, sorting, map keys, the collection id, and collection filters.
func applyPluralAttributeDetails(p *mapping.PluralMapping, member java.MemberDetails, ctx *XmlDocumentContext) error {
	if p.OrderBy != nil {
		makeAnnotation(annotations.OrderBy, member).SetIfNotEmpty("value", *p.OrderBy)
	}
	if p.OrderColumn != nil {
		oc := p.OrderColumn
		usage := makeAnnotation(annotations.OrderColumn, member)
		usage.SetIfNotEmpty("name", oc.Name)
		setIfNotNil(usage, "nullable", oc.Nullable)
		setIfNotNil(usage, "insertable", oc.Insertable)
		setIfNotNil(usage, "updatable", oc.Updatable)
		usage.SetIfNotEmpty("columnDefinition", oc.ColumnDefinition)
		usage.SetIfNotEmpty("options", oc.Options)
	}
	if p.ListIndexBase != nil {
		makeAnnotation(annotations.ListIndexBase, member).Set("value", *p.ListIndexBase)
	}
	if p.Sort != "" {
		makeAnnotation(annotations.SortComparator, member).Set("value", ctx.ResolveClassName(p.Sort))
	} else if p.SortNatural != nil {
		makeAnnotation(annotations.SortNatural, member)
	}

	if p.MapKey != nil {
		makeAnnotation(annotations.MapKey, member).SetIfNotEmpty("name", p.MapKey.Name)
	}
	if p.MapKeyClass != nil {
		makeAnnotation(annotations.MapKeyClass, member).Set("value", ctx.ResolveJavaType(p.MapKeyClass.Class))
	}
	applyUserType(p.MapKeyType, member, mapKeyUserTypes, ctx)
	if p.MapKeyTemporal != "" {
		makeAnnotation(annotations.MapKeyTemporal, member).Set("value", p.MapKeyTemporal)
	}
	if p.MapKeyEnumerated != "" {
		makeAnnotation(annotations.MapKeyEnumerated, member).Set("value", p.MapKeyEnumerated)
	}
	applyMapKeyColumn(p.MapKeyColumn, member)
	applyMapKeyJoinColumns(p.MapKeyJoinColumns, member)

	applyCollectionID(p.CollectionID, member)
	applyFilters(p.Filters, member, ctx)
	applySqlRestriction(p.SqlRestriction, member)
	return nil
}

func processElementCollection(ec *mapping.ElementCollection, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(ec.Name, ec.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	usage := getOrMakeAnnotation(annotations.ElementCollection, member)
	usage.SetIfNotEmpty("fetch", ec.Fetch)
	if ec.TargetClass != "" {
		usage.Set("targetClass", ctx.ResolveJavaType(ec.TargetClass))
	}

	if err := applyPluralAttributeDetails(&ec.PluralMapping, member, ctx); err != nil {
		return nil, err
	}
	applyCollectionTable(ec.CollectionTable, member, ctx)
	if ec.Formula != "" {
		applyFormula(ec.Formula, member)
	} else {
		applyColumn(ec.Column, member)
	}
	if err := applyBasicTypeComposition(&ec.BasicTypeComposition, member, ctx); err != nil {
		return nil, err
	}
	applyTemporal(ec.Temporal, member)
	applyEnumerated(ec.Enumerated, member)
	applyLob(ec.Lob, member)
	applyNationalized(ec.Nationalized, member)
	applyConverts(ec.Converts, member, "", ctx)
	applyAttributeOverrides(ec.AttributeOverrides, member, "")
	applyAssociationOverrides(ec.AssociationOverrides, member, "", ctx)
	return member, nil
}
