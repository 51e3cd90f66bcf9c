package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/ormxml/java"
	"github.com/fatih/color"
)

// LineEncoder writes one tab-separated line per class and member, each
// followed by its annotation usages indented by a tab.
type LineEncoder struct {
	w     io.Writer
	class java.ClassSnapshot

	name       *color.Color
	annotation *color.Color
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{
		w:          w,
		name:       color.New(color.FgCyan, color.Bold),
		annotation: color.New(color.FgYellow),
	}
}

func (e *LineEncoder) Encode(class java.ClassSnapshot) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	c := e.class

	fmt.Fprintf(&sb, "%s\t%s\t%s\n", c.Kind, e.name.Sprint(c.Name), e.classModifiersStr())
	if c.SuperClass != "" {
		fmt.Fprintf(&sb, "extends\t%s\n", c.SuperClass)
	}
	e.writeUsages(&sb, c.Annotations)

	for _, f := range c.Fields {
		fmt.Fprintf(&sb, "field\t%s\t%s\n", f.Name, f.Type.String())
		e.writeUsages(&sb, f.Annotations)
	}
	for _, m := range c.Methods {
		fmt.Fprintf(&sb, "method\t%s\t%s\t%s\n", m.Name, m.Type.String(), attributeStr(m.AttributeName))
		e.writeUsages(&sb, m.Annotations)
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder) classModifiersStr() string {
	var mods []string
	if e.class.IsAbstract {
		mods = append(mods, "abstract")
	}
	if e.class.IsDynamic {
		mods = append(mods, "dynamic")
	}
	if len(mods) == 0 {
		return "-"
	}
	return strings.Join(mods, ",")
}

func (e *LineEncoder) writeUsages(sb *strings.Builder, usages []*java.AnnotationUsage) {
	for _, u := range usages {
		fmt.Fprintf(sb, "\t%s\n", e.annotation.Sprint(UsageString(u)))
	}
}

func attributeStr(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

// UsageString renders a usage in Java source syntax with its attributes
// sorted by name.
func UsageString(u *java.AnnotationUsage) string {
	if len(u.Values) == 0 {
		return "@" + u.Type
	}
	names := make([]string, 0, len(u.Values))
	for name := range u.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + valueString(u.Values[name])
	}
	return "@" + u.Type + "(" + strings.Join(parts, ", ") + ")"
}

func valueString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case *java.AnnotationUsage:
		return UsageString(v)
	case []*java.AnnotationUsage:
		parts := make([]string, len(v))
		for i, u := range v {
			parts[i] = UsageString(u)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = fmt.Sprintf("%q", s)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []interface{}:
		parts := make([]string, len(v))
		for i, elem := range v {
			parts[i] = valueString(elem)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}
