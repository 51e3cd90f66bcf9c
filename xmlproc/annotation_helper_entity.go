package xmlproc

import (
	"fmt"

	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

func applyEntity(entity *mapping.Entity, class *java.ClassDetails) {
	usage := getOrMakeAnnotation(annotations.Entity, class)
	usage.SetIfNotEmpty("name", entity.Name)
}

func createAccessAnnotation(access AccessType, target java.AnnotationTarget) {
	if access == "" {
		return
	}
	getOrMakeAnnotation(annotations.Access, target).Set("value", string(access))
}

func applyAttributeAccessor(strategy string, member java.MemberDetails) {
	if strategy == "" {
		return
	}
	makeAnnotation(annotations.AttributeAccessor, member).Set("value", strategy)
}

func applyInheritance(inheritance *mapping.Inheritance, class *java.ClassDetails) {
	if inheritance == nil {
		return
	}
	usage := getOrMakeAnnotation(annotations.Inheritance, class)
	usage.SetIfNotEmpty("strategy", inheritance.Strategy)
}

// applyCaching renders <cacheable> and <caching>. include="non-lazy" is
// the only value that turns lazy property caching off.
func applyCaching(entity *mapping.Entity, class *java.ClassDetails) {
	if entity.Cacheable != nil {
		getOrMakeAnnotation(annotations.Cacheable, class).Set("value", *entity.Cacheable)
	}
	if entity.Caching == nil {
		return
	}
	usage := getOrMakeAnnotation(annotations.Cache, class)
	usage.SetIfNotEmpty("region", entity.Caching.Region)
	usage.SetIfNotEmpty("usage", entity.Caching.Access)
	if entity.Caching.Include != "" {
		usage.Set("includeLazy", entity.Caching.Include != "non-lazy")
	}
}

func applyEntityFlags(entity *mapping.Entity, class *java.ClassDetails) {
	if entity.Mutable != nil && !*entity.Mutable {
		getOrMakeAnnotation(annotations.Immutable, class)
	}
	if entity.DynamicInsert != nil && *entity.DynamicInsert {
		getOrMakeAnnotation(annotations.DynamicInsert, class)
	}
	if entity.DynamicUpdate != nil && *entity.DynamicUpdate {
		getOrMakeAnnotation(annotations.DynamicUpdate, class)
	}
	if entity.BatchSize != nil {
		getOrMakeAnnotation(annotations.BatchSize, class).Set("size", *entity.BatchSize)
	}
}

func applyAbstractAndExtends(entity *mapping.Entity, class *java.ClassDetails, ctx *XmlDocumentContext) {
	if entity.Abstract != nil && *entity.Abstract {
		getOrMakeAnnotation(annotations.Abstract, class)
	}
	if entity.Extends != "" {
		getOrMakeAnnotation(annotations.Extends, class).Set("superType", ctx.ResolveClassName(entity.Extends))
	}
}

func applyTable(table *mapping.Table, class *java.ClassDetails, ctx *XmlDocumentContext) {
	if table == nil {
		d := ctx.EffectiveDefaults()
		if d.Schema == "" && d.Catalog == "" {
			return
		}
		usage := getOrMakeAnnotation(annotations.Table, class)
		if usage.String("schema") == "" {
			usage.SetIfNotEmpty("schema", d.Schema)
		}
		if usage.String("catalog") == "" {
			usage.SetIfNotEmpty("catalog", d.Catalog)
		}
		return
	}
	usage := getOrMakeAnnotation(annotations.Table, class)
	usage.SetIfNotEmpty("name", table.Name)
	applyTableAttributes(&table.TableAttributes, usage, ctx)
}

func applySecondaryTables(tables []mapping.SecondaryTable, class *java.ClassDetails, ctx *XmlDocumentContext) {
	for i := range tables {
		st := &tables[i]
		usage := newUsage(annotations.SecondaryTable).SetIfNotEmpty("name", st.Name)
		applyTableAttributes(&st.TableAttributes, usage, ctx)
		if len(st.PrimaryKeyJoinColumns) > 0 {
			usage.Set("pkJoinColumns", createPrimaryKeyJoinColumns(st.PrimaryKeyJoinColumns))
		}
		if st.PrimaryKeyForeignKey != nil {
			usage.Set("foreignKey", createForeignKey(st.PrimaryKeyForeignKey))
		}
		class.ApplyRepeatableAnnotationUsage(usage, annotations.SecondaryTables)
	}
}

func applyPrimaryKeyJoinColumns(entity *mapping.Entity, class *java.ClassDetails) {
	switch len(entity.PrimaryKeyJoinColumns) {
	case 0:
	case 1:
		usage := class.ApplyAnnotationUsage(createPrimaryKeyJoinColumn(&entity.PrimaryKeyJoinColumns[0]))
		if entity.PrimaryKeyForeignKey != nil {
			usage.Set("foreignKey", createForeignKey(entity.PrimaryKeyForeignKey))
		}
	default:
		usage := makeAnnotation(annotations.PrimaryKeyJoinColumns, class)
		usage.Set("value", createPrimaryKeyJoinColumns(entity.PrimaryKeyJoinColumns))
		if entity.PrimaryKeyForeignKey != nil {
			usage.Set("foreignKey", createForeignKey(entity.PrimaryKeyForeignKey))
		}
	}
}

func applySynchronizations(syncs []mapping.Synchronize, class *java.ClassDetails) {
	if len(syncs) == 0 {
		return
	}
	tables := make([]string, len(syncs))
	for i, s := range syncs {
		tables[i] = s.Table
	}
	getOrMakeAnnotation(annotations.Synchronize, class).Set("value", tables)
}

func applyIdClass(idClass *mapping.IdClass, class *java.ClassDetails, ctx *XmlDocumentContext) {
	if idClass == nil {
		return
	}
	getOrMakeAnnotation(annotations.IdClass, class).Set("value", ctx.ResolveClassName(idClass.Class))
}

// CallbackStyle distinguishes callbacks declared on the managed type from
// callbacks declared on an entity listener.
type CallbackStyle int

const (
	// CallbackStyleCallback methods take no arguments.
	CallbackStyleCallback CallbackStyle = iota
	// CallbackStyleListener methods take the entity as their one argument.
	CallbackStyleListener
)

func (s CallbackStyle) matches(m *java.MethodDetails) bool {
	if m.IsStatic() || !m.ReturnType().IsVoid() {
		return false
	}
	if s == CallbackStyleListener {
		return len(m.Parameters()) == 1
	}
	return len(m.Parameters()) == 0
}

func applyLifecycleCallbacks(callbacks *mapping.LifecycleCallbacks, style CallbackStyle, class *java.ClassDetails) error {
	ordered := []struct {
		callback       *mapping.LifecycleCallback
		annotationType string
	}{
		{callbacks.PrePersist, annotations.PrePersist},
		{callbacks.PostPersist, annotations.PostPersist},
		{callbacks.PreRemove, annotations.PreRemove},
		{callbacks.PostRemove, annotations.PostRemove},
		{callbacks.PreUpdate, annotations.PreUpdate},
		{callbacks.PostUpdate, annotations.PostUpdate},
		{callbacks.PostLoad, annotations.PostLoad},
	}
	for _, cb := range ordered {
		if cb.callback == nil {
			continue
		}
		method := findCallbackMethod(cb.callback.MethodName, style, class)
		if method == nil {
			return &AnnotationError{Message: fmt.Sprintf(
				"Lifecycle callback method not found - %s (%s)", cb.callback.MethodName, class.Name)}
		}
		makeAnnotation(cb.annotationType, method)
	}
	return nil
}

func findCallbackMethod(name string, style CallbackStyle, class *java.ClassDetails) *java.MethodDetails {
	for _, m := range class.FindMethodsByName(name) {
		if style.matches(m) {
			return m
		}
	}
	return nil
}

// applyEntityListener resolves the listener class, marks its callback
// methods and appends it to @EntityListeners on class.
func applyEntityListener(listener *mapping.EntityListener, class *java.ClassDetails, ctx *XmlDocumentContext) error {
	name := ctx.ResolveClassName(listener.Class)
	listenerClass, err := ctx.classes().ResolveClassDetails(name)
	if err != nil {
		return fmt.Errorf("resolve entity listener: %w", err)
	}
	if err := applyLifecycleCallbacks(&listener.LifecycleCallbacks, CallbackStyleListener, listenerClass); err != nil {
		return err
	}
	usage := getOrMakeAnnotation(annotations.EntityListeners, class)
	usage.Set("value", append(usage.Strings("value"), listenerClass.Name))
	return nil
}

func applyRowID(rowID *string, class *java.ClassDetails) {
	if rowID == nil {
		return
	}
	usage := getOrMakeAnnotation(annotations.RowId, class)
	usage.SetIfNotEmpty("value", *rowID)
}

func applyDiscriminatorValue(value *string, class *java.ClassDetails) {
	if value == nil {
		return
	}
	getOrMakeAnnotation(annotations.DiscriminatorValue, class).SetIfNotEmpty("value", *value)
}

func applyDiscriminatorColumn(col *mapping.DiscriminatorColumn, class *java.ClassDetails) {
	if col == nil {
		return
	}
	usage := getOrMakeAnnotation(annotations.DiscriminatorColumn, class)
	usage.SetIfNotEmpty("name", col.Name)
	usage.SetIfNotEmpty("discriminatorType", col.DiscriminatorType)
	usage.SetIfNotEmpty("columnDefinition", col.ColumnDefinition)
	usage.SetIfNotEmpty("options", col.Options)
	setIfNotNil(usage, "length", col.Length)

	if col.ForceSelection || (col.Insertable != nil && !*col.Insertable) {
		options := getOrMakeAnnotation(annotations.DiscriminatorOptions, class)
		options.Set("force", true)
		setIfNotNil(options, "insert", col.Insertable)
	}
}

func applyDiscriminatorFormula(formula *mapping.DiscriminatorFormula, class *java.ClassDetails) {
	if formula == nil || formula.Fragment == "" {
		return
	}
	usage := getOrMakeAnnotation(annotations.DiscriminatorFormula, class)
	usage.Set("value", formula.Fragment)
	usage.SetIfNotEmpty("discriminatorType", formula.DiscriminatorType)
	if formula.ForceSelection {
		getOrMakeAnnotation(annotations.DiscriminatorOptions, class).Set("force", true)
	}
}

// applyCustomSql renders <sql-insert>, <sql-update> or <sql-delete>.
func applyCustomSql(sql *mapping.CustomSql, annotationType string, target java.AnnotationTarget) {
	if sql == nil {
		return
	}
	usage := getOrMakeAnnotation(annotationType, target)
	usage.Set("sql", sql.Value)
	usage.Set("callable", sql.Callable)
	usage.SetIfNotEmpty("table", sql.Table)
	switch sql.ResultCheck {
	case "NONE", "COUNT", "PARAM":
		usage.Set("check", sql.ResultCheck)
	case "":
	default:
		log.Warningf("ignoring unknown result check style [%s]", sql.ResultCheck)
	}
}

func applySqlRestriction(restriction string, target java.AnnotationTarget) {
	if restriction == "" {
		return
	}
	getOrMakeAnnotation(annotations.SQLRestriction, target).Set("value", restriction)
}

func applySqlJoinTableRestriction(restriction string, target java.AnnotationTarget) {
	if restriction == "" {
		return
	}
	getOrMakeAnnotation(annotations.SQLJoinTableRestriction, target).Set("value", restriction)
}

func applyNaturalIdCache(caching *mapping.Caching, class *java.ClassDetails) {
	if caching == nil {
		return
	}
	getOrMakeAnnotation(annotations.NaturalIdCache, class).SetIfNotEmpty("region", caching.Region)
}

func applyID(member java.MemberDetails) {
	makeAnnotation(annotations.Id, member)
}

func applyEmbeddedID(member java.MemberDetails) {
	makeAnnotation(annotations.EmbeddedId, member)
}

// DetermineTargetName qualifies explicitName with the document package and
// returns the name of the class the registry knows under it. Names the
// registry does not know, such as entity names, come back unchanged.
func DetermineTargetName(explicitName string, ctx *XmlDocumentContext) string {
	qualified := ctx.ResolveClassName(explicitName)
	if c := ctx.classes().FindClassDetails(qualified); c != nil {
		return c.Name
	}
	return explicitName
}
