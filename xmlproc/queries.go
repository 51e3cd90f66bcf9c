package xmlproc

import (
	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// appendToContainer adds usages to the plural wrapper annotation on
// target, creating the wrapper when needed. Nothing is applied for an
// empty list.
func appendToContainer(target java.AnnotationTarget, containerType string, usages []*java.AnnotationUsage) {
	if len(usages) == 0 {
		return
	}
	container := getOrMakeAnnotation(containerType, target)
	container.Set("value", append(container.Nested("value"), usages...))
}

func createQueryHints(hints []mapping.QueryHint) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(hints))
	for i, h := range hints {
		out[i] = newUsage(annotations.QueryHint).Set("name", h.Name).Set("value", h.Value)
	}
	return out
}

func applyQueryOptions(opts *mapping.QueryOptions, usage *java.AnnotationUsage) {
	setIfNotNil(usage, "cacheable", opts.Cacheable)
	usage.SetIfNotEmpty("cacheRegion", opts.CacheRegion)
	usage.SetIfNotEmpty("cacheMode", opts.CacheMode)
	setIfNotNil(usage, "fetchSize", opts.FetchSize)
	setIfNotNil(usage, "timeout", opts.Timeout)
	setIfNotNil(usage, "readOnly", opts.ReadOnly)
	usage.SetIfNotEmpty("flushMode", opts.FlushMode)
	usage.SetIfNotEmpty("comment", opts.Comment)
}

// NamedQueryUsages splits named HQL queries into the Jakarta Persistence
// family, used for queries carrying hints, and the Hibernate family.
func NamedQueryUsages(queries []mapping.NamedQuery) (jpaQueries, hibernateQueries []*java.AnnotationUsage) {
	for i := range queries {
		q := &queries[i]
		if len(q.Hints) > 0 {
			usage := newUsage(annotations.NamedQuery).Set("name", q.Name).Set("query", q.Query)
			usage.SetIfNotEmpty("lockMode", q.LockMode)
			usage.Set("hints", createQueryHints(q.Hints))
			jpaQueries = append(jpaQueries, usage)
			continue
		}
		usage := newUsage(annotations.HibernateNamedQuery).Set("name", q.Name).Set("query", q.Query)
		applyQueryOptions(&q.QueryOptions, usage)
		hibernateQueries = append(hibernateQueries, usage)
	}
	return jpaQueries, hibernateQueries
}

func needsJpaNativeQuery(q *mapping.NamedNativeQuery) bool {
	return len(q.Hints) > 0 ||
		len(q.ColumnResults) > 0 ||
		len(q.ConstructorResults) > 0 ||
		len(q.EntityResults) > 0
}

// NamedNativeQueryUsages splits native queries the same way: hints or
// declared results select the Jakarta Persistence family.
func NamedNativeQueryUsages(queries []mapping.NamedNativeQuery, ctx *XmlDocumentContext) (jpaQueries, hibernateQueries []*java.AnnotationUsage) {
	for i := range queries {
		q := &queries[i]
		if needsJpaNativeQuery(q) {
			usage := newUsage(annotations.NamedNativeQuery).Set("name", q.Name).Set("query", q.Query)
			if q.ResultClass != "" {
				usage.Set("resultClass", ctx.ResolveClassName(q.ResultClass))
			}
			usage.SetIfNotEmpty("resultSetMapping", q.ResultSetMapping)
			usage.Set("hints", createQueryHints(q.Hints))
			usage.Set("entities", createEntityResults(q.EntityResults, ctx))
			usage.Set("classes", createConstructorResults(q.ConstructorResults, ctx))
			usage.Set("columns", createColumnResults(q.ColumnResults, ctx))
			jpaQueries = append(jpaQueries, usage)
			continue
		}
		usage := newUsage(annotations.HibernateNamedNativeQuery).Set("name", q.Name).Set("query", q.Query)
		if q.ResultClass != "" {
			usage.Set("resultClass", ctx.ResolveClassName(q.ResultClass))
		}
		usage.SetIfNotEmpty("resultSetMapping", q.ResultSetMapping)
		if len(q.Synchronizations) > 0 {
			spaces := make([]string, len(q.Synchronizations))
			for j, s := range q.Synchronizations {
				spaces[j] = s.Table
			}
			usage.Set("querySpaces", spaces)
		}
		applyQueryOptions(&q.QueryOptions, usage)
		hibernateQueries = append(hibernateQueries, usage)
	}
	return jpaQueries, hibernateQueries
}

func NamedStoredProcedureQueryUsages(queries []mapping.NamedStoredProcedureQuery, ctx *XmlDocumentContext) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(queries))
	for i := range queries {
		q := &queries[i]
		usage := newUsage(annotations.NamedStoredProcedure).
			Set("name", q.Name).
			Set("procedureName", q.ProcedureName)

		params := make([]*java.AnnotationUsage, len(q.Parameters))
		for j, p := range q.Parameters {
			param := newUsage(annotations.StoredProcedureParam).SetIfNotEmpty("name", p.Name)
			param.SetIfNotEmpty("mode", p.Mode)
			param.Set("type", ctx.ResolveJavaType(p.Class))
			params[j] = param
		}
		usage.Set("parameters", params)

		classes := make([]string, len(q.ResultClasses))
		for j, c := range q.ResultClasses {
			classes[j] = ctx.ResolveClassName(c)
		}
		usage.Set("resultClasses", classes)
		usage.Set("resultSetMappings", append([]string(nil), q.ResultSetMappings...))
		usage.Set("hints", createQueryHints(q.Hints))
		out[i] = usage
	}
	return out
}

func createEntityResults(results []mapping.EntityResult, ctx *XmlDocumentContext) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(results))
	for i := range results {
		r := &results[i]
		usage := newUsage(annotations.EntityResult).Set("entityClass", ctx.ResolveClassName(r.EntityClass))
		usage.SetIfNotEmpty("lockMode", r.LockMode)
		usage.SetIfNotEmpty("discriminatorColumn", r.DiscriminatorColumn)
		fields := make([]*java.AnnotationUsage, len(r.FieldResults))
		for j, f := range r.FieldResults {
			fields[j] = newUsage(annotations.FieldResult).Set("name", f.Name).Set("column", f.Column)
		}
		usage.Set("fields", fields)
		out[i] = usage
	}
	return out
}

func createConstructorResults(results []mapping.ConstructorResult, ctx *XmlDocumentContext) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(results))
	for i := range results {
		r := &results[i]
		out[i] = newUsage(annotations.ConstructorResult).
			Set("targetClass", ctx.ResolveClassName(r.TargetClass)).
			Set("columns", createColumnResults(r.Columns, ctx))
	}
	return out
}

func createColumnResults(results []mapping.ColumnResult, ctx *XmlDocumentContext) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(results))
	for i, r := range results {
		usage := newUsage(annotations.ColumnResult).Set("name", r.Name)
		if r.Class != "" {
			usage.Set("type", ctx.ResolveJavaType(r.Class))
		}
		out[i] = usage
	}
	return out
}

func SqlResultSetMappingUsages(mappings []mapping.SqlResultSetMapping, ctx *XmlDocumentContext) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(mappings))
	for i := range mappings {
		m := &mappings[i]
		out[i] = newUsage(annotations.SqlResultSetMapping).
			Set("name", m.Name).
			Set("entities", createEntityResults(m.EntityResults, ctx)).
			Set("classes", createConstructorResults(m.ConstructorResults, ctx)).
			Set("columns", createColumnResults(m.ColumnResults, ctx))
	}
	return out
}

// applyEntityQueries renders the named queries and result-set mappings
// declared inside an <entity>. Each non-empty family becomes its plural
// wrapper annotation.
func applyEntityQueries(entity *mapping.Entity, class *java.ClassDetails, ctx *XmlDocumentContext) {
	jpaQueries, hibernateQueries := NamedQueryUsages(entity.NamedQueries)
	appendToContainer(class, annotations.NamedQueries, jpaQueries)
	appendToContainer(class, annotations.HibernateNamedQueries, hibernateQueries)

	jpaNative, hibernateNative := NamedNativeQueryUsages(entity.NamedNativeQueries, ctx)
	appendToContainer(class, annotations.NamedNativeQueries, jpaNative)
	appendToContainer(class, annotations.HibernateNamedNativeQueries, hibernateNative)

	appendToContainer(class, annotations.NamedStoredProcedures, NamedStoredProcedureQueryUsages(entity.NamedStoredProcedureQueries, ctx))
	appendToContainer(class, annotations.SqlResultSetMappings, SqlResultSetMappingUsages(entity.SqlResultSetMappings, ctx))
}
