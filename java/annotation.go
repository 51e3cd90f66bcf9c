package java

// AnnotationUsage is one annotation applied to a class or member. Values
// holds the explicitly set attributes:
//
//   - string, bool, int, int64, float64 for scalar attributes
//   - string for enum constants (the constant name) and class literals
//     (the qualified class name)
//   - *AnnotationUsage for nested annotations
//   - []string, []*AnnotationUsage or []interface{} for arrays
type AnnotationUsage struct {
	Type   string                 `json:"type" msgpack:"type"`
	Values map[string]interface{} `json:"values,omitempty" msgpack:"values,omitempty"`
}

func NewAnnotationUsage(annotationType string) *AnnotationUsage {
	return &AnnotationUsage{Type: annotationType, Values: map[string]interface{}{}}
}

// Set assigns an attribute value and returns the usage for chaining.
func (u *AnnotationUsage) Set(name string, value interface{}) *AnnotationUsage {
	if u.Values == nil {
		u.Values = map[string]interface{}{}
	}
	u.Values[name] = value
	return u
}

// SetIfNotEmpty assigns a string attribute unless the value is empty.
func (u *AnnotationUsage) SetIfNotEmpty(name, value string) *AnnotationUsage {
	if value != "" {
		u.Set(name, value)
	}
	return u
}

func (u *AnnotationUsage) Get(name string) (interface{}, bool) {
	v, ok := u.Values[name]
	return v, ok
}

func (u *AnnotationUsage) Has(name string) bool {
	_, ok := u.Values[name]
	return ok
}

func (u *AnnotationUsage) String(name string) string {
	s, _ := u.Values[name].(string)
	return s
}

func (u *AnnotationUsage) Bool(name string) bool {
	b, _ := u.Values[name].(bool)
	return b
}

func (u *AnnotationUsage) Int(name string) int {
	switch v := u.Values[name].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	}
	return 0
}

func (u *AnnotationUsage) Strings(name string) []string {
	switch v := u.Values[name].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Nested returns an array of nested annotations.
func (u *AnnotationUsage) Nested(name string) []*AnnotationUsage {
	switch v := u.Values[name].(type) {
	case []*AnnotationUsage:
		return v
	case *AnnotationUsage:
		return []*AnnotationUsage{v}
	case []interface{}:
		out := make([]*AnnotationUsage, 0, len(v))
		for _, e := range v {
			if a, ok := e.(*AnnotationUsage); ok {
				out = append(out, a)
			}
		}
		return out
	}
	return nil
}

// Copy returns a deep copy of the usage.
func (u *AnnotationUsage) Copy() *AnnotationUsage {
	if u == nil {
		return nil
	}
	c := &AnnotationUsage{Type: u.Type, Values: make(map[string]interface{}, len(u.Values))}
	for k, v := range u.Values {
		c.Values[k] = copyValue(v)
	}
	return c
}

func copyValue(v interface{}) interface{} {
	switch v := v.(type) {
	case *AnnotationUsage:
		return v.Copy()
	case []*AnnotationUsage:
		out := make([]*AnnotationUsage, len(v))
		for i := range v {
			out[i] = v[i].Copy()
		}
		return out
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = copyValue(v[i])
		}
		return out
	}
	return v
}

// AnnotationTarget is anything annotation usages can be applied to.
type AnnotationTarget interface {
	AnnotationUsages() []*AnnotationUsage
	HasAnnotationUsage(annotationType string) bool
	GetAnnotationUsage(annotationType string) *AnnotationUsage
	ApplyAnnotationUsage(usage *AnnotationUsage) *AnnotationUsage
	GetOrApplyAnnotationUsage(annotationType string) *AnnotationUsage
	ApplyRepeatableAnnotationUsage(usage *AnnotationUsage, containerType string)
	ReplaceAnnotationUsage(removedType string, usage *AnnotationUsage)
	RemoveAnnotationUsage(annotationType string)
	ClearAnnotationUsages()
}

// Annotations is an ordered set of annotation usages keyed by annotation
// type. It implements AnnotationTarget and is embedded by classes and
// members.
type Annotations struct {
	usages []*AnnotationUsage
}

func (a *Annotations) AnnotationUsages() []*AnnotationUsage {
	return a.usages
}

func (a *Annotations) indexOf(annotationType string) int {
	for i, u := range a.usages {
		if u.Type == annotationType {
			return i
		}
	}
	return -1
}

func (a *Annotations) HasAnnotationUsage(annotationType string) bool {
	return a.indexOf(annotationType) >= 0
}

func (a *Annotations) GetAnnotationUsage(annotationType string) *AnnotationUsage {
	if i := a.indexOf(annotationType); i >= 0 {
		return a.usages[i]
	}
	return nil
}

// ApplyAnnotationUsage adds the usage, replacing an existing usage of the
// same type in place.
func (a *Annotations) ApplyAnnotationUsage(usage *AnnotationUsage) *AnnotationUsage {
	if i := a.indexOf(usage.Type); i >= 0 {
		a.usages[i] = usage
		return usage
	}
	a.usages = append(a.usages, usage)
	return usage
}

func (a *Annotations) GetOrApplyAnnotationUsage(annotationType string) *AnnotationUsage {
	if existing := a.GetAnnotationUsage(annotationType); existing != nil {
		return existing
	}
	return a.ApplyAnnotationUsage(NewAnnotationUsage(annotationType))
}

// ApplyRepeatableAnnotationUsage adds a usage of a repeatable annotation.
// A second usage of the same type turns the singular usage into the
// container annotation, with the original usage kept as element 0.
func (a *Annotations) ApplyRepeatableAnnotationUsage(usage *AnnotationUsage, containerType string) {
	if container := a.GetAnnotationUsage(containerType); container != nil {
		container.Set("value", append(container.Nested("value"), usage))
		return
	}
	i := a.indexOf(usage.Type)
	if i < 0 {
		a.usages = append(a.usages, usage)
		return
	}
	container := NewAnnotationUsage(containerType).
		Set("value", []*AnnotationUsage{a.usages[i], usage})
	a.usages[i] = container
}

// ReplaceAnnotationUsage removes any usage of removedType and applies usage
// in its position.
func (a *Annotations) ReplaceAnnotationUsage(removedType string, usage *AnnotationUsage) {
	if i := a.indexOf(removedType); i >= 0 {
		a.usages[i] = usage
		if j := a.indexOf(usage.Type); j >= 0 && j != i {
			a.usages = append(a.usages[:j], a.usages[j+1:]...)
		}
		return
	}
	a.ApplyAnnotationUsage(usage)
}

func (a *Annotations) RemoveAnnotationUsage(annotationType string) {
	if i := a.indexOf(annotationType); i >= 0 {
		a.usages = append(a.usages[:i], a.usages[i+1:]...)
	}
}

func (a *Annotations) ClearAnnotationUsages() {
	a.usages = nil
}

func (a *Annotations) copyUsages() []*AnnotationUsage {
	if len(a.usages) == 0 {
		return nil
	}
	out := make([]*AnnotationUsage, len(a.usages))
	for i, u := range a.usages {
		out[i] = u.Copy()
	}
	return out
}
