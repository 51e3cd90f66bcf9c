package xmlproc

import (
	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

func applyFilters(filters []mapping.Filter, target java.AnnotationTarget, ctx *XmlDocumentContext) {
	for i := range filters {
		applyFilter(&filters[i], annotations.Filter, annotations.Filters, target, ctx)
	}
}

func applyJoinTableFilters(filters []mapping.Filter, target java.AnnotationTarget, ctx *XmlDocumentContext) {
	for i := range filters {
		applyFilter(&filters[i], annotations.FilterJoinTable, annotations.FilterJoinTables, target, ctx)
	}
}

// applyFilter renders @Filter or @FilterJoinTable, which share their
// attributes.
func applyFilter(filter *mapping.Filter, annotationType, containerType string, target java.AnnotationTarget, ctx *XmlDocumentContext) {
	usage := newUsage(annotationType).Set("name", filter.Name)
	usage.SetIfNotEmpty("condition", filter.Condition)
	setIfNotNil(usage, "deduceAliasInjectionPoints", filter.AutoAliasInjection)
	if len(filter.Aliases) > 0 {
		usage.Set("aliases", createSqlFragmentAliases(filter.Aliases, ctx))
	}
	target.ApplyRepeatableAnnotationUsage(usage, containerType)
}

func createSqlFragmentAliases(aliases []mapping.FilterAlias, ctx *XmlDocumentContext) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(aliases))
	for i, a := range aliases {
		usage := newUsage(annotations.SqlFragmentAlias).Set("alias", a.Alias)
		usage.SetIfNotEmpty("table", a.Table)
		if a.Entity != "" {
			usage.Set("entity", ctx.ResolveClassName(a.Entity))
		}
		out[i] = usage
	}
	return out
}

// FilterDefUsage renders a root-level <filter-def> as a global @FilterDef
// registration.
func FilterDefUsage(def *mapping.FilterDef, ctx *XmlDocumentContext) *java.AnnotationUsage {
	usage := newUsage(annotations.FilterDef).Set("name", def.Name)
	usage.SetIfNotEmpty("defaultCondition", def.DefaultCondition)
	setIfNotNil(usage, "autoEnabled", def.AutoEnabled)
	setIfNotNil(usage, "applyToLoadByKey", def.ApplyToLoadByKey)
	params := make([]*java.AnnotationUsage, len(def.Params))
	for i, p := range def.Params {
		params[i] = newUsage(annotations.ParamDef).
			Set("name", p.Name).
			Set("type", ctx.ResolveJavaType(p.Type))
	}
	usage.Set("parameters", params)
	return usage
}
