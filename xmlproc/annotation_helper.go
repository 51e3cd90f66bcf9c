package xmlproc

import (
	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// The appliers below translate one mapping element each into the
// annotation usage it stands for. Absent elements are no-ops.

func applyColumnDetails(col *mapping.Column, usage *java.AnnotationUsage) {
	if col == nil {
		return
	}
	usage.SetIfNotEmpty("name", col.Name)
	setIfNotNil(usage, "unique", col.Unique)
	setIfNotNil(usage, "nullable", col.Nullable)
	setIfNotNil(usage, "insertable", col.Insertable)
	setIfNotNil(usage, "updatable", col.Updatable)
	usage.SetIfNotEmpty("columnDefinition", col.ColumnDefinition)
	usage.SetIfNotEmpty("options", col.Options)
	usage.SetIfNotEmpty("table", col.Table)
	setIfNotNil(usage, "length", col.Length)
	setIfNotNil(usage, "precision", col.Precision)
	setIfNotNil(usage, "scale", col.Scale)
	usage.SetIfNotEmpty("comment", col.Comment)
	applyCheckConstraints(col.CheckConstraints, usage)
}

func createColumn(annotationType string, col *mapping.Column) *java.AnnotationUsage {
	usage := newUsage(annotationType)
	applyColumnDetails(col, usage)
	return usage
}

func applyColumn(col *mapping.Column, member java.MemberDetails) {
	if col == nil {
		return
	}
	applyColumnDetails(col, getOrMakeAnnotation(annotations.Column, member))
}

func applyFormula(formula string, member java.MemberDetails) {
	if formula == "" {
		return
	}
	makeAnnotation(annotations.Formula, member).Set("value", formula)
}

func createJoinColumn(annotationType string, jc *mapping.JoinColumn) *java.AnnotationUsage {
	usage := newUsage(annotationType)
	usage.SetIfNotEmpty("name", jc.Name)
	usage.SetIfNotEmpty("referencedColumnName", jc.ReferencedColumnName)
	setIfNotNil(usage, "unique", jc.Unique)
	setIfNotNil(usage, "nullable", jc.Nullable)
	setIfNotNil(usage, "insertable", jc.Insertable)
	setIfNotNil(usage, "updatable", jc.Updatable)
	usage.SetIfNotEmpty("columnDefinition", jc.ColumnDefinition)
	usage.SetIfNotEmpty("options", jc.Options)
	usage.SetIfNotEmpty("table", jc.Table)
	usage.SetIfNotEmpty("comment", jc.Comment)
	if jc.ForeignKey != nil {
		usage.Set("foreignKey", createForeignKey(jc.ForeignKey))
	}
	return usage
}

func createJoinColumns(jcs []mapping.JoinColumn) []*java.AnnotationUsage {
	if len(jcs) == 0 {
		return nil
	}
	out := make([]*java.AnnotationUsage, len(jcs))
	for i := range jcs {
		out[i] = createJoinColumn(annotations.JoinColumn, &jcs[i])
	}
	return out
}

// applyJoinColumns applies a single @JoinColumn, or @JoinColumns when
// several are declared.
func applyJoinColumns(jcs []mapping.JoinColumn, member java.MemberDetails) {
	switch len(jcs) {
	case 0:
		return
	case 1:
		member.ApplyAnnotationUsage(createJoinColumn(annotations.JoinColumn, &jcs[0]))
	default:
		makeAnnotation(annotations.JoinColumns, member).Set("value", createJoinColumns(jcs))
	}
}

func createPrimaryKeyJoinColumn(pk *mapping.PrimaryKeyJoinColumn) *java.AnnotationUsage {
	usage := newUsage(annotations.PrimaryKeyJoinColumn)
	usage.SetIfNotEmpty("name", pk.Name)
	usage.SetIfNotEmpty("referencedColumnName", pk.ReferencedColumnName)
	usage.SetIfNotEmpty("columnDefinition", pk.ColumnDefinition)
	usage.SetIfNotEmpty("options", pk.Options)
	return usage
}

func createPrimaryKeyJoinColumns(pks []mapping.PrimaryKeyJoinColumn) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(pks))
	for i := range pks {
		out[i] = createPrimaryKeyJoinColumn(&pks[i])
	}
	return out
}

func createForeignKey(fk *mapping.ForeignKey) *java.AnnotationUsage {
	usage := newUsage(annotations.ForeignKey)
	usage.SetIfNotEmpty("name", fk.Name)
	usage.SetIfNotEmpty("value", fk.ConstraintMode)
	usage.SetIfNotEmpty("foreignKeyDefinition", fk.ForeignKeyDefinition)
	usage.SetIfNotEmpty("options", fk.Options)
	return usage
}

func applyForeignKey(fk *mapping.ForeignKey, member java.MemberDetails) {
	if fk == nil {
		return
	}
	member.ApplyAnnotationUsage(createForeignKey(fk))
}

func applyCheckConstraints(checks []mapping.CheckConstraint, usage *java.AnnotationUsage) {
	if len(checks) == 0 {
		return
	}
	out := make([]*java.AnnotationUsage, len(checks))
	for i, c := range checks {
		check := newUsage(annotations.CheckConstraint)
		check.SetIfNotEmpty("name", c.Name)
		check.SetIfNotEmpty("constraint", c.Constraint)
		check.SetIfNotEmpty("options", c.Options)
		out[i] = check
	}
	usage.Set("check", out)
}

func applyUniqueConstraints(ucs []mapping.UniqueConstraint, usage *java.AnnotationUsage) {
	if len(ucs) == 0 {
		return
	}
	out := make([]*java.AnnotationUsage, len(ucs))
	for i, uc := range ucs {
		u := newUsage(annotations.UniqueConstraint)
		u.SetIfNotEmpty("name", uc.Name)
		u.SetIfNotEmpty("options", uc.Options)
		u.Set("columnNames", append([]string(nil), uc.ColumnNames...))
		out[i] = u
	}
	usage.Set("uniqueConstraints", out)
}

func applyIndexes(indexes []mapping.Index, usage *java.AnnotationUsage) {
	if len(indexes) == 0 {
		return
	}
	out := make([]*java.AnnotationUsage, len(indexes))
	for i, idx := range indexes {
		u := newUsage(annotations.Index)
		u.SetIfNotEmpty("name", idx.Name)
		u.SetIfNotEmpty("columnList", idx.ColumnList)
		setIfNotNil(u, "unique", idx.Unique)
		u.SetIfNotEmpty("options", idx.Options)
		out[i] = u
	}
	usage.Set("indexes", out)
}

// applyTableAttributes fills the attributes shared by table-like
// annotations. Schema and catalog fall back to the document defaults.
func applyTableAttributes(attrs *mapping.TableAttributes, usage *java.AnnotationUsage, ctx *XmlDocumentContext) {
	defaults := ctx.EffectiveDefaults()
	usage.SetIfNotEmpty("catalog", coalesce(attrs.Catalog, defaults.Catalog))
	usage.SetIfNotEmpty("schema", coalesce(attrs.Schema, defaults.Schema))
	usage.SetIfNotEmpty("options", attrs.Options)
	usage.SetIfNotEmpty("comment", attrs.Comment)
	applyCheckConstraints(attrs.CheckConstraints, usage)
	applyUniqueConstraints(attrs.UniqueConstraints, usage)
	applyIndexes(attrs.Indexes, usage)
}

func createJoinTable(jt *mapping.JoinTable, ctx *XmlDocumentContext) *java.AnnotationUsage {
	usage := newUsage(annotations.JoinTable)
	usage.SetIfNotEmpty("name", jt.Name)
	applyTableAttributes(&jt.TableAttributes, usage, ctx)
	if len(jt.JoinColumns) > 0 {
		usage.Set("joinColumns", createJoinColumns(jt.JoinColumns))
	}
	if len(jt.InverseJoinColumns) > 0 {
		usage.Set("inverseJoinColumns", createJoinColumns(jt.InverseJoinColumns))
	}
	if jt.ForeignKey != nil {
		usage.Set("foreignKey", createForeignKey(jt.ForeignKey))
	}
	if jt.InverseForeignKey != nil {
		usage.Set("inverseForeignKey", createForeignKey(jt.InverseForeignKey))
	}
	return usage
}

func applyJoinTable(jt *mapping.JoinTable, member java.MemberDetails, ctx *XmlDocumentContext) {
	if jt == nil {
		return
	}
	member.ApplyAnnotationUsage(createJoinTable(jt, ctx))
}

func applyCollectionTable(ct *mapping.CollectionTable, member java.MemberDetails, ctx *XmlDocumentContext) {
	if ct == nil {
		return
	}
	usage := makeAnnotation(annotations.CollectionTable, member)
	usage.SetIfNotEmpty("name", ct.Name)
	applyTableAttributes(&ct.TableAttributes, usage, ctx)
	if len(ct.JoinColumns) > 0 {
		usage.Set("joinColumns", createJoinColumns(ct.JoinColumns))
	}
	if ct.ForeignKey != nil {
		usage.Set("foreignKey", createForeignKey(ct.ForeignKey))
	}
}

func applyMapKeyColumn(col *mapping.MapKeyColumn, member java.MemberDetails) {
	if col == nil {
		return
	}
	member.ApplyAnnotationUsage(createColumn(annotations.MapKeyColumn, col))
}

func applyMapKeyJoinColumns(jcs []mapping.MapKeyJoinColumn, member java.MemberDetails) {
	for i := range jcs {
		member.ApplyRepeatableAnnotationUsage(createJoinColumn(annotations.MapKeyJoinColumn, &jcs[i]), annotations.MapKeyJoinColumns)
	}
}

func applyCollectionID(cid *mapping.CollectionID, member java.MemberDetails) {
	if cid == nil {
		return
	}
	usage := getOrMakeAnnotation(annotations.CollectionId, member)
	if cid.Column != nil {
		usage.Set("column", createColumn(annotations.Column, cid.Column))
	}
	usage.SetIfNotEmpty("generator", cid.Generator)
}

// applyCascading applies @Cascade with the persistence-unit default
// cascades followed by the declared ones, without duplicates.
func applyCascading(cascade *mapping.Cascade, member java.MemberDetails, ctx *XmlDocumentContext) {
	types := appendCascadeTypes(ctx.EffectiveDefaults().CascadeTypes, cascadeTypesOf(cascade)...)
	if len(types) == 0 {
		return
	}
	values := make([]string, len(types))
	for i, t := range types {
		values[i] = string(t)
	}
	getOrMakeAnnotation(annotations.Cascade, member).Set("value", values)
}

func applyGeneratedValue(gv *mapping.GeneratedValue, member java.MemberDetails) {
	if gv == nil {
		return
	}
	usage := makeAnnotation(annotations.GeneratedValue, member)
	usage.SetIfNotEmpty("strategy", gv.Strategy)
	usage.SetIfNotEmpty("generator", gv.Generator)
}

// createSequenceGenerator keeps the long-standing behaviour of deriving
// allocationSize from initial-value.
func createSequenceGenerator(g *mapping.SequenceGenerator) *java.AnnotationUsage {
	usage := newUsage(annotations.SequenceGenerator)
	usage.SetIfNotEmpty("name", g.Name)
	usage.SetIfNotEmpty("sequenceName", g.SequenceName)
	usage.SetIfNotEmpty("catalog", g.Catalog)
	usage.SetIfNotEmpty("schema", g.Schema)
	setIfNotNil(usage, "initialValue", g.InitialValue)
	setIfNotNil(usage, "allocationSize", g.AllocationSize)
	usage.SetIfNotEmpty("options", g.Options)
	return usage
}

func createTableGenerator(g *mapping.TableGenerator) *java.AnnotationUsage {
	usage := newUsage(annotations.TableGenerator)
	usage.SetIfNotEmpty("name", g.Name)
	usage.SetIfNotEmpty("table", g.Table)
	usage.SetIfNotEmpty("catalog", g.Catalog)
	usage.SetIfNotEmpty("schema", g.Schema)
	usage.SetIfNotEmpty("pkColumnName", g.PkColumnName)
	usage.SetIfNotEmpty("valueColumnName", g.ValueColumnName)
	usage.SetIfNotEmpty("pkColumnValue", g.PkColumnValue)
	setIfNotNil(usage, "initialValue", g.InitialValue)
	setIfNotNil(usage, "allocationSize", g.AllocationSize)
	usage.SetIfNotEmpty("options", g.Options)
	applyUniqueConstraints(g.UniqueConstraints, usage)
	applyIndexes(g.Indexes, usage)
	return usage
}

func applySequenceGenerator(g *mapping.SequenceGenerator, target java.AnnotationTarget) {
	if g == nil {
		return
	}
	target.ApplyRepeatableAnnotationUsage(createSequenceGenerator(g), annotations.SequenceGenerators)
}

func applyTableGenerator(g *mapping.TableGenerator, target java.AnnotationTarget) {
	if g == nil {
		return
	}
	target.ApplyRepeatableAnnotationUsage(createTableGenerator(g), annotations.TableGenerators)
}

func applyUuidGenerator(g *mapping.UuidGenerator, member java.MemberDetails) {
	if g == nil {
		return
	}
	makeAnnotation(annotations.UuidGenerator, member).SetIfNotEmpty("style", g.Style)
}

// applyAttributeOverrides applies @AttributeOverrides holding one
// @AttributeOverride per node. Names are prefixed with namePrefix unless
// they already carry it.
func applyAttributeOverrides(overrides []mapping.AttributeOverride, target java.AnnotationTarget, namePrefix string) {
	if len(overrides) == 0 {
		return
	}
	list := make([]*java.AnnotationUsage, len(overrides))
	for i := range overrides {
		o := &overrides[i]
		usage := newUsage(annotations.AttributeOverride)
		usage.Set("name", prefixIfNotAlready(o.Name, namePrefix))
		usage.Set("column", createColumn(annotations.Column, o.Column))
		list[i] = usage
	}
	makeAnnotation(annotations.AttributeOverrides, target).Set("value", list)
}

func applyAssociationOverrides(overrides []mapping.AssociationOverride, target java.AnnotationTarget, namePrefix string, ctx *XmlDocumentContext) {
	for i := range overrides {
		o := &overrides[i]
		usage := newUsage(annotations.AssociationOverride)
		usage.SetIfNotEmpty("name", prefixIfNotAlready(o.Name, namePrefix))
		if len(o.JoinColumns) > 0 {
			usage.Set("joinColumns", createJoinColumns(o.JoinColumns))
		}
		if o.JoinTable != nil {
			usage.Set("joinTable", createJoinTable(o.JoinTable, ctx))
		}
		if o.ForeignKey != nil {
			usage.Set("foreignKey", createForeignKey(o.ForeignKey))
		}
		target.ApplyRepeatableAnnotationUsage(usage, annotations.AssociationOverrides)
	}
}

func applyOptimisticLockInclusion(inclusion bool, member java.MemberDetails) {
	makeAnnotation(annotations.OptimisticLock, member).Set("exclude", !inclusion)
}

func applyConvert(c *mapping.Convert, target java.AnnotationTarget, namePrefix string, ctx *XmlDocumentContext) {
	if c == nil {
		return
	}
	usage := newUsage(annotations.Convert)
	if c.Converter != "" {
		usage.Set("converter", ctx.ResolveClassName(c.Converter))
	}
	usage.SetIfNotEmpty("attributeName", prefixIfNotAlready(c.AttributeName, namePrefix))
	setIfNotNil(usage, "disableConversion", c.DisableConversion)
	target.ApplyRepeatableAnnotationUsage(usage, annotations.Converts)
}

func applyConverts(converts []mapping.Convert, target java.AnnotationTarget, namePrefix string, ctx *XmlDocumentContext) {
	for i := range converts {
		applyConvert(&converts[i], target, namePrefix, ctx)
	}
}
