package java

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClassNotFound is returned by class loaders for unknown classes.
var ErrClassNotFound = errors.New("class not found")

// ClassLoadingError reports a class that could not be resolved.
type ClassLoadingError struct {
	Name string
	Err  error
}

func (e *ClassLoadingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to resolve class [%s]: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("unable to resolve class [%s]", e.Name)
}

func (e *ClassLoadingError) Unwrap() error {
	return e.Err
}

// ClassLoader produces class models for qualified class names. It returns
// an error wrapping ErrClassNotFound when it does not know the class.
type ClassLoader interface {
	LoadClass(name string) (*ClassDetails, error)
}

// ClassDetailsRegistry owns the class models of one model-building context.
// Models are resolved once and cached for the lifetime of the registry.
type ClassDetailsRegistry struct {
	classes map[string]*ClassDetails
	order   []string
	loader  ClassLoader
}

// NewClassDetailsRegistry creates a registry. The loader may be nil, in
// which case only registered and built-in JDK classes resolve.
func NewClassDetailsRegistry(loader ClassLoader) *ClassDetailsRegistry {
	return &ClassDetailsRegistry{
		classes: map[string]*ClassDetails{},
		loader:  loader,
	}
}

// Register adds a class model, replacing any model with the same name.
func (r *ClassDetailsRegistry) Register(c *ClassDetails) {
	if _, exists := r.classes[c.Name]; !exists {
		r.order = append(r.order, c.Name)
	}
	r.classes[c.Name] = c
}

// FindClassDetails returns an already known model without loading.
func (r *ClassDetailsRegistry) FindClassDetails(name string) *ClassDetails {
	return r.classes[name]
}

// ResolveClassDetails returns the model of the named class, loading it
// through the class loader or the built-in JDK table on first use.
func (r *ClassDetailsRegistry) ResolveClassDetails(name string) (*ClassDetails, error) {
	if name == "" {
		return nil, &ClassLoadingError{Name: name, Err: errors.New("empty class name")}
	}
	if c, ok := r.classes[name]; ok {
		return c, nil
	}

	if strings.HasSuffix(name, "[]") {
		c := NewClassDetails(name, ClassKindArray)
		r.Register(c)
		return c, nil
	}

	if r.loader != nil {
		c, err := r.loader.LoadClass(name)
		if err == nil {
			r.Register(c)
			r.linkSuperClass(c)
			return c, nil
		}
		if !errors.Is(err, ErrClassNotFound) {
			return nil, &ClassLoadingError{Name: name, Err: err}
		}
	}

	if c := builtinClassDetails(name); c != nil {
		r.Register(c)
		r.linkSuperClass(c)
		return c, nil
	}

	return nil, &ClassLoadingError{Name: name, Err: ErrClassNotFound}
}

// ResolveClassDetailsWith returns the named model, creating and registering
// it with creator when it is not known yet. Creator is not consulted for
// names the registry can load.
func (r *ClassDetailsRegistry) ResolveClassDetailsWith(name string, creator func(name string) (*ClassDetails, error)) (*ClassDetails, error) {
	if c, ok := r.classes[name]; ok {
		return c, nil
	}
	c, err := r.ResolveClassDetails(name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrClassNotFound) {
		return nil, err
	}
	c, err = creator(name)
	if err != nil {
		return nil, err
	}
	r.Register(c)
	return c, nil
}

// Classes returns the known models in registration order.
func (r *ClassDetailsRegistry) Classes() []*ClassDetails {
	out := make([]*ClassDetails, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.classes[name])
	}
	return out
}

// linkSuperClass resolves the superclass by name. An unresolvable superclass
// leaves SuperClass nil and keeps SuperClassName.
func (r *ClassDetailsRegistry) linkSuperClass(c *ClassDetails) {
	if c.SuperClass != nil || c.SuperClassName == "" {
		return
	}
	super, err := r.ResolveClassDetails(c.SuperClassName)
	if err != nil {
		return
	}
	c.SuperClass = super
}
