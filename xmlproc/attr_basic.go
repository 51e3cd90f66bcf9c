package xmlproc

import (
	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

func processBasic(b *mapping.Basic, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(b.Name, b.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	usage := getOrMakeAnnotation(annotations.Basic, member)
	usage.SetIfNotEmpty("fetch", b.Fetch)
	setIfNotNil(usage, "optional", b.Optional)

	if b.Formula != "" {
		applyFormula(b.Formula, member)
	} else {
		applyColumn(b.Column, member)
	}
	if b.OptimisticLock != nil {
		applyOptimisticLockInclusion(*b.OptimisticLock, member)
	}
	if err := applyBasicTypeComposition(&b.BasicTypeComposition, member, ctx); err != nil {
		return nil, err
	}
	applyTemporal(b.Temporal, member)
	applyLob(b.Lob, member)
	applyEnumerated(b.Enumerated, member)
	applyNationalized(b.Nationalized, member)
	applyConvert(b.Convert, member, "", ctx)
	if b.Generated != "" {
		makeAnnotation(annotations.Generated, member).Set("event", b.Generated)
	}
	return member, nil
}

func processBasicID(id *mapping.Id, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(id.Name, id.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	applyID(member)
	applyColumn(id.Column, member)
	if err := applyBasicTypeComposition(&id.BasicTypeComposition, member, ctx); err != nil {
		return nil, err
	}
	applyTemporal(id.Temporal, member)
	applyGeneratedValue(id.GeneratedValue, member)
	applySequenceGenerator(id.SequenceGenerator, member)
	applyTableGenerator(id.TableGenerator, member)
	applyUuidGenerator(id.UuidGenerator, member)
	if id.UnsavedValue != "" {
		log.Debugf("unsaved-value of id %s#%s is not mapped to an annotation", class.Name, id.Name)
	}
	return member, nil
}

func processEmbeddedID(id *mapping.EmbeddedId, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(id.Name, id.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	applyEmbeddedID(member)
	if id.Target != "" {
		applyTargetClass(id.Target, member, ctx)
	}
	applyAttributeOverrides(id.AttributeOverrides, member, "")
	return member, nil
}

func processVersion(v *mapping.Version, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(v.Name, v.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	makeAnnotation(annotations.Version, member)
	applyColumn(v.Column, member)
	if err := applyBasicTypeComposition(&v.BasicTypeComposition, member, ctx); err != nil {
		return nil, err
	}
	applyTemporal(v.Temporal, member)
	return member, nil
}

// processTenantID resolves the tenant id member with the access type of
// <tenant-id>, falling back to the class access type.
func processTenantID(t *mapping.TenantID, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(t.Name, t.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	getOrMakeAnnotation(annotations.TenantId, member)
	getOrMakeAnnotation(annotations.Basic, member)
	if t.Formula != "" {
		applyFormula(t.Formula, member)
	} else {
		applyColumn(t.Column, member)
	}
	if err := applyBasicTypeComposition(&t.BasicTypeComposition, member, ctx); err != nil {
		return nil, err
	}
	return member, nil
}

func processEmbedded(e *mapping.Embedded, class *java.ClassDetails, classAccess AccessType, ctx *XmlDocumentContext) (java.MemberDetails, error) {
	member, err := attributeMember(e.Name, e.Access, class, classAccess)
	if err != nil {
		return nil, err
	}

	makeAnnotation(annotations.Embedded, member)
	if e.Target != "" {
		applyTargetClass(e.Target, member, ctx)
	}
	applyAttributeOverrides(e.AttributeOverrides, member, "")
	applyAssociationOverrides(e.AssociationOverrides, member, "", ctx)
	applyConverts(e.Converts, member, "", ctx)
	return member, nil
}
