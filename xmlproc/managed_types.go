package xmlproc

import (
	"fmt"

	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// mapAccessStrategy is the attribute accessor of dynamic members.
const mapAccessStrategy = "map"

func adjustDynamicTypeMember(member java.MemberDetails, _ AttributeRef, _ *XmlDocumentContext) {
	applyAttributeAccessor(mapAccessStrategy, member)
}

func adjustNonDynamicTypeMember(member java.MemberDetails, attr AttributeRef, _ *XmlDocumentContext) {
	applyAttributeAccessor(attr.AttributeAccessor, member)
}

// isComplete reports whether a managed type is processed in complete mode
// rather than overlaid on the annotations of its class.
func isComplete(managed mapping.ManagedType, pu *PersistenceUnitMetadata) bool {
	if pu.XmlComplete() || managed.ClassName() == "" {
		return true
	}
	flag := managed.MetadataCompleteFlag()
	return flag != nil && *flag
}

// ProcessCompleteEntity replaces everything known about the entity's class
// with what the mapping declares. An entity without a class is dynamic and
// gets a synthesized class named after the entity.
func ProcessCompleteEntity(root *mapping.EntityMappings, entity *mapping.Entity, ctx *XmlDocumentContext) error {
	var (
		class       *java.ClassDetails
		classAccess AccessType
		adjust      MemberAdjuster
	)

	if entity.Class == "" {
		if entity.Name == "" {
			return modelsErrorf("Assumed dynamic entity did not define entity-name")
		}
		super, err := dynamicSuperclass(entity, ctx)
		if err != nil {
			return err
		}
		abstract := entity.Abstract != nil && *entity.Abstract
		class, err = ctx.classes().ResolveClassDetailsWith(entity.Name, func(name string) (*java.ClassDetails, error) {
			return java.NewDynamicClassDetails(name, super, abstract), nil
		})
		if err != nil {
			return fmt.Errorf("resolve dynamic entity %s: %w", entity.Name, err)
		}
		if super != nil && class.SuperClass == nil {
			class.SetSuperClass(super)
		}
		classAccess = AccessField
		adjust = adjustDynamicTypeMember
		if err := PrepareDynamicClass(class, entity, ctx); err != nil {
			return err
		}
	} else {
		var err error
		class, err = ctx.classes().ResolveClassDetails(DetermineClassName(root, entity.Class))
		if err != nil {
			return fmt.Errorf("resolve entity class: %w", err)
		}
		if class.IsInterface() {
			return modelsErrorf("Entity cannot be mapped to an interface - %s", class.Name)
		}
		classAccess = coalesce(accessTypeOf(entity.Access), ctx.EffectiveDefaults().Access, AccessProperty)
		adjust = adjustNonDynamicTypeMember
	}

	class.ClearMemberAnnotationUsages()
	class.ClearAnnotationUsages()

	return processEntityMetadata(entity, class, classAccess, adjust, ctx)
}

// dynamicSuperclass finds the dynamic type an entity names in extends. The
// superclass has to be processed before its subclasses.
func dynamicSuperclass(entity *mapping.Entity, ctx *XmlDocumentContext) (*java.ClassDetails, error) {
	if entity.Extends == "" {
		return nil, nil
	}
	for _, name := range []string{entity.Extends, ctx.ResolveClassName(entity.Extends)} {
		if c := ctx.classes().FindClassDetails(name); c != nil {
			return c, nil
		}
	}
	return nil, modelsErrorf("Dynamic entity %s extends %s, which has not been processed", entity.Name, entity.Extends)
}

// ProcessOverrideEntity overlays the mapping of each queued entity onto the
// annotations its class already carries.
func ProcessOverrideEntity(overrides []OverrideTuple[*mapping.Entity]) error {
	for _, o := range overrides {
		entity, ctx := o.Node, o.Context
		class, err := ctx.classes().ResolveClassDetails(DetermineClassName(o.Root, entity.Class))
		if err != nil {
			return &DocumentError{Origin: ctx.Document().Origin(), Err: fmt.Errorf("resolve entity class: %w", err)}
		}

		classAccess := coalesce(
			accessTypeOf(entity.Access),
			accessTypeOf(o.Root.Access),
			determineAccessTypeFromClassAnnotations(class),
			ctx.PersistenceUnit().AccessType(),
			AccessProperty,
		)
		if err := processEntityMetadata(entity, class, classAccess, adjustNonDynamicTypeMember, ctx); err != nil {
			return &DocumentError{Origin: ctx.Document().Origin(), Err: err}
		}
	}
	return nil
}

// determineAccessTypeFromClassAnnotations reads the access type off an
// explicit @Access, or off where @Id or @EmbeddedId is placed.
func determineAccessTypeFromClassAnnotations(class *java.ClassDetails) AccessType {
	if usage := class.GetAnnotationUsage(annotations.Access); usage != nil {
		return accessTypeOf(usage.String("value"))
	}
	for _, f := range class.Fields() {
		if f.HasAnnotationUsage(annotations.Id) || f.HasAnnotationUsage(annotations.EmbeddedId) {
			return AccessField
		}
	}
	for _, m := range class.Methods() {
		if m.HasAnnotationUsage(annotations.Id) || m.HasAnnotationUsage(annotations.EmbeddedId) {
			return AccessProperty
		}
	}
	return ""
}

func processEntityMetadata(entity *mapping.Entity, class *java.ClassDetails, classAccess AccessType, adjust MemberAdjuster, ctx *XmlDocumentContext) error {
	applyEntity(entity, class)
	applyInheritance(entity.Inheritance, class)
	createAccessAnnotation(classAccess, class)
	applyCaching(entity, class)
	applyEntityFlags(entity, class)
	applyAbstractAndExtends(entity, class, ctx)

	applyTable(entity.Table, class, ctx)
	applySecondaryTables(entity.SecondaryTables, class, ctx)

	if attrs := entity.Attributes; attrs != nil {
		if err := processIDMappings(attrs, class, classAccess, adjust, ctx); err != nil {
			return err
		}
		for i := range attrs.Versions {
			v := &attrs.Versions[i]
			member, err := processVersion(v, class, classAccess, ctx)
			if err != nil {
				return err
			}
			adjust(member, AttributeRef{v.Name, v.Access, v.AttributeAccessor}, ctx)
		}
		if err := ProcessNaturalID(attrs.NaturalId, class, classAccess, adjust, ctx); err != nil {
			return err
		}
		if err := ProcessAttributes(attrs, class, classAccess, adjust, ctx); err != nil {
			return err
		}
	}

	applyConverts(entity.Converts, class, "", ctx)
	applyAttributeOverrides(entity.AttributeOverrides, class, "")
	applyAssociationOverrides(entity.AssociationOverrides, class, "", ctx)

	applyEntityQueries(entity, class, ctx)
	applyFilters(entity.Filters, class, ctx)
	applySqlRestriction(entity.SqlRestriction, class)
	applyCustomSql(entity.SqlInsert, annotations.SQLInsert, class)
	applyCustomSql(entity.SqlUpdate, annotations.SQLUpdate, class)
	applyCustomSql(entity.SqlDelete, annotations.SQLDelete, class)

	listeners := entityListenerNodes{
		idClass:           entity.IdClass,
		callbacks:         &entity.LifecycleCallbacks,
		listeners:         entity.EntityListeners,
		excludeDefaults:   entity.ExcludeDefaultListeners != nil,
		excludeSuperclass: entity.ExcludeSuperclassListeners != nil,
		withDefaults:      true,
	}
	if err := listeners.apply(class, ctx); err != nil {
		return err
	}

	applyRowID(entity.RowID, class)
	if entity.TenantID != nil {
		if _, err := processTenantID(entity.TenantID, class, classAccess, ctx); err != nil {
			return err
		}
	}
	applyNamedEntityGraphs(entity.NamedEntityGraphs, class, ctx)

	applyDiscriminatorValue(entity.DiscriminatorValue, class)
	applyDiscriminatorColumn(entity.DiscriminatorColumn, class)
	applyDiscriminatorFormula(entity.DiscriminatorFormula, class)

	applyPrimaryKeyJoinColumns(entity, class)
	for i := range entity.SequenceGenerators {
		applySequenceGenerator(&entity.SequenceGenerators[i], class)
	}
	for i := range entity.TableGenerators {
		applyTableGenerator(&entity.TableGenerators[i], class)
	}
	applySynchronizations(entity.Synchronizations, class)
	return nil
}

// processIDMappings handles <id> elements, or else the <embedded-id>.
func processIDMappings(attrs *mapping.Attributes, class *java.ClassDetails, classAccess AccessType, adjust MemberAdjuster, ctx *XmlDocumentContext) error {
	switch {
	case len(attrs.Ids) > 0:
		for i := range attrs.Ids {
			id := &attrs.Ids[i]
			member, err := processBasicID(id, class, classAccess, ctx)
			if err != nil {
				return err
			}
			adjust(member, AttributeRef{id.Name, id.Access, id.AttributeAccessor}, ctx)
		}
	case attrs.EmbeddedId != nil:
		id := attrs.EmbeddedId
		member, err := processEmbeddedID(id, class, classAccess, ctx)
		if err != nil {
			return err
		}
		adjust(member, AttributeRef{id.Name, id.Access, id.AttributeAccessor}, ctx)
	default:
		log.Debugf("Identifiable type [%s] contained no <id/> nor <embedded-id/>", class.Name)
	}
	return nil
}

// entityListenerNodes is what entities and mapped superclasses share about
// id classes, callbacks and listeners.
type entityListenerNodes struct {
	idClass           *mapping.IdClass
	callbacks         *mapping.LifecycleCallbacks
	listeners         []mapping.EntityListener
	excludeDefaults   bool
	excludeSuperclass bool
	// withDefaults adds the persistence-unit default listeners.
	withDefaults bool
}

func (n entityListenerNodes) apply(class *java.ClassDetails, ctx *XmlDocumentContext) error {
	applyIdClass(n.idClass, class, ctx)
	if err := applyLifecycleCallbacks(n.callbacks, CallbackStyleCallback, class); err != nil {
		return err
	}

	if n.excludeDefaults {
		makeAnnotation(annotations.ExcludeDefaultListeners, class)
	}
	if n.excludeSuperclass {
		makeAnnotation(annotations.ExcludeSuperclassListeners, class)
	}

	var listeners []mapping.EntityListener
	if n.withDefaults && !n.excludeDefaults {
		listeners = append(listeners, ctx.PersistenceUnit().EntityListeners()...)
	}
	listeners = append(listeners, n.listeners...)
	for i := range listeners {
		if err := applyEntityListener(&listeners[i], class, ctx); err != nil {
			return err
		}
	}
	return nil
}

// ProcessCompleteMappedSuperclass replaces everything known about the
// mapped superclass with what the mapping declares.
func ProcessCompleteMappedSuperclass(root *mapping.EntityMappings, msc *mapping.MappedSuperclass, ctx *XmlDocumentContext) error {
	class, err := ctx.classes().ResolveClassDetails(DetermineClassName(root, msc.Class))
	if err != nil {
		return fmt.Errorf("resolve mapped superclass: %w", err)
	}
	class.ClearMemberAnnotationUsages()
	class.ClearAnnotationUsages()
	return processMappedSuperclassMetadata(msc, class, ctx)
}

// ProcessOverrideMappedSuperclass overlays each queued mapped superclass.
func ProcessOverrideMappedSuperclass(overrides []OverrideTuple[*mapping.MappedSuperclass]) error {
	for _, o := range overrides {
		class, err := o.Context.classes().ResolveClassDetails(DetermineClassName(o.Root, o.Node.Class))
		if err != nil {
			return &DocumentError{Origin: o.Context.Document().Origin(), Err: fmt.Errorf("resolve mapped superclass: %w", err)}
		}
		if err := processMappedSuperclassMetadata(o.Node, class, o.Context); err != nil {
			return &DocumentError{Origin: o.Context.Document().Origin(), Err: err}
		}
	}
	return nil
}

func processMappedSuperclassMetadata(msc *mapping.MappedSuperclass, class *java.ClassDetails, ctx *XmlDocumentContext) error {
	getOrMakeAnnotation(annotations.MappedSuperclass, class)

	classAccess := coalesce(accessTypeOf(msc.Access), ctx.PersistenceUnit().AccessType())
	createAccessAnnotation(classAccess, class)

	if attrs := msc.Attributes; attrs != nil {
		if err := processIDMappings(attrs, class, classAccess, adjustNonDynamicTypeMember, ctx); err != nil {
			return err
		}
		if err := ProcessAttributes(attrs, class, classAccess, adjustNonDynamicTypeMember, ctx); err != nil {
			return err
		}
	}

	return entityListenerNodes{
		idClass:           msc.IdClass,
		callbacks:         &msc.LifecycleCallbacks,
		listeners:         msc.EntityListeners,
		excludeDefaults:   msc.ExcludeDefaultListeners != nil,
		excludeSuperclass: msc.ExcludeSuperclassListeners != nil,
	}.apply(class, ctx)
}

// ProcessCompleteEmbeddable replaces everything known about the embeddable
// with what the mapping declares. An embeddable without a class is dynamic.
func ProcessCompleteEmbeddable(root *mapping.EntityMappings, embeddable *mapping.Embeddable, ctx *XmlDocumentContext) error {
	var (
		class       *java.ClassDetails
		classAccess AccessType
		adjust      MemberAdjuster
		err         error
	)

	if embeddable.Class == "" {
		if embeddable.Name == "" {
			return modelsErrorf("Embeddable did not define class nor name")
		}
		class, err = ctx.classes().ResolveClassDetailsWith(embeddable.Name, func(name string) (*java.ClassDetails, error) {
			return java.NewDynamicClassDetails(name, nil, false), nil
		})
		if err != nil {
			return fmt.Errorf("resolve dynamic embeddable %s: %w", embeddable.Name, err)
		}
		classAccess = AccessField
		adjust = adjustDynamicTypeMember
		if err := PrepareDynamicClass(class, embeddable, ctx); err != nil {
			return err
		}
	} else {
		class, err = ctx.classes().ResolveClassDetails(DetermineClassName(root, embeddable.Class))
		if err != nil {
			return fmt.Errorf("resolve embeddable class: %w", err)
		}
		classAccess = coalesce(accessTypeOf(embeddable.Access), ctx.PersistenceUnit().AccessType())
		adjust = adjustNonDynamicTypeMember
	}

	class.ClearMemberAnnotationUsages()
	class.ClearAnnotationUsages()

	getOrMakeAnnotation(annotations.Embeddable, class)
	createAccessAnnotation(classAccess, class)
	return ProcessAttributes(embeddable.Attributes, class, AccessField, adjust, ctx)
}

// ProcessOverrideEmbeddable overlays the attributes of each queued
// embeddable.
func ProcessOverrideEmbeddable(overrides []OverrideTuple[*mapping.Embeddable]) error {
	for _, o := range overrides {
		class, err := o.Context.classes().ResolveClassDetails(DetermineClassName(o.Root, o.Node.Class))
		if err != nil {
			return &DocumentError{Origin: o.Context.Document().Origin(), Err: fmt.Errorf("resolve embeddable class: %w", err)}
		}
		if err := ProcessAttributes(o.Node.Attributes, class, AccessField, adjustNonDynamicTypeMember, o.Context); err != nil {
			return &DocumentError{Origin: o.Context.Document().Origin(), Err: err}
		}
	}
	return nil
}
