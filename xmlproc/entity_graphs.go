package xmlproc

import (
	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

func applyNamedEntityGraphs(graphs []mapping.NamedEntityGraph, class *java.ClassDetails, ctx *XmlDocumentContext) {
	for i := range graphs {
		class.ApplyRepeatableAnnotationUsage(createNamedEntityGraph(&graphs[i], ctx), annotations.NamedEntityGraphs)
	}
}

func createNamedEntityGraph(graph *mapping.NamedEntityGraph, ctx *XmlDocumentContext) *java.AnnotationUsage {
	usage := newUsage(annotations.NamedEntityGraph).SetIfNotEmpty("name", graph.Name)
	setIfNotNil(usage, "includeAllAttributes", graph.IncludeAllAttributes)
	usage.Set("attributeNodes", createNamedAttributeNodes(graph.AttributeNodes))
	usage.Set("subgraphs", createNamedSubgraphs(graph.Subgraphs, ctx))
	usage.Set("subclassSubgraphs", createNamedSubgraphs(graph.SubclassSubgraphs, ctx))
	return usage
}

// createNamedSubgraphs types each subgraph by its class, which defaults to
// java.lang.Object when absent.
func createNamedSubgraphs(subgraphs []mapping.NamedSubgraph, ctx *XmlDocumentContext) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(subgraphs))
	for i := range subgraphs {
		sg := &subgraphs[i]
		out[i] = newUsage(annotations.NamedSubgraph).
			SetIfNotEmpty("name", sg.Name).
			Set("type", ctx.ResolveJavaType(sg.Class)).
			Set("attributeNodes", createNamedAttributeNodes(sg.AttributeNodes))
	}
	return out
}

func createNamedAttributeNodes(nodes []mapping.NamedAttributeNode) []*java.AnnotationUsage {
	out := make([]*java.AnnotationUsage, len(nodes))
	for i, n := range nodes {
		out[i] = newUsage(annotations.NamedAttributeNode).
			SetIfNotEmpty("value", n.Name).
			SetIfNotEmpty("subgraph", n.Subgraph).
			SetIfNotEmpty("keySubgraph", n.KeySubgraph)
	}
	return out
}
