package classfile

import "strings"

// FieldType is a decoded field descriptor or generic field signature.
type FieldType struct {
	BaseType      string
	ClassName     string
	ArrayDepth    int
	TypeArguments []FieldType
}

// SourceName returns the dotted class or primitive name, without array
// brackets or type arguments.
func (ft *FieldType) SourceName() string {
	if ft.BaseType != "" {
		return ft.BaseType
	}
	return InternalToSourceName(ft.ClassName)
}

func (ft *FieldType) String() string {
	var sb strings.Builder
	sb.WriteString(ft.SourceName())
	if len(ft.TypeArguments) > 0 {
		sb.WriteString("<")
		for i := range ft.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(ft.TypeArguments[i].String())
		}
		sb.WriteString(">")
	}
	for i := 0; i < ft.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (ft *FieldType) IsPrimitive() bool {
	return ft.BaseType != "" && ft.ArrayDepth == 0
}

type MethodDescriptor struct {
	Parameters []FieldType
	// ReturnType is nil for void methods.
	ReturnType *FieldType
}

func ParseFieldDescriptor(desc string) *FieldType {
	ft, _ := parseFieldType(desc, 0)
	return ft
}

// ParseFieldSignature decodes a generic field signature such as
// "Ljava/util/List<Lcom/acme/Item;>;". Type variables and wildcards decode
// as java/lang/Object.
func ParseFieldSignature(sig string) *FieldType {
	ft, _ := parseFieldType(sig, 0)
	return ft
}

func ParseMethodDescriptor(desc string) *MethodDescriptor {
	if len(desc) == 0 || desc[0] != '(' {
		return nil
	}

	md := &MethodDescriptor{}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		ft, consumed := parseFieldType(desc, i)
		if ft == nil {
			return nil
		}
		md.Parameters = append(md.Parameters, *ft)
		i += consumed
	}
	if i >= len(desc) {
		return nil
	}
	i++

	if i < len(desc) && desc[i] != 'V' {
		md.ReturnType, _ = parseFieldType(desc, i)
	}
	return md
}

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

func parseFieldType(desc string, start int) (*FieldType, int) {
	ft := &FieldType{}
	i := start
	for i < len(desc) && desc[i] == '[' {
		ft.ArrayDepth++
		i++
	}
	if i >= len(desc) {
		return nil, 0
	}

	if base, ok := baseTypes[desc[i]]; ok {
		ft.BaseType = base
		return ft, i - start + 1
	}

	switch desc[i] {
	case 'L':
		i++
		nameStart := i
		for i < len(desc) && desc[i] != ';' && desc[i] != '<' {
			i++
		}
		if i >= len(desc) {
			return nil, 0
		}
		ft.ClassName = desc[nameStart:i]
		if desc[i] == '<' {
			i++
			for i < len(desc) && desc[i] != '>' {
				arg, n := parseTypeArgument(desc, i)
				if arg == nil {
					return nil, 0
				}
				ft.TypeArguments = append(ft.TypeArguments, *arg)
				i += n
			}
			i++ // '>'
			// inner class suffixes (".Inner<...>") are folded into the outer name
			for i < len(desc) && desc[i] != ';' {
				i++
			}
		}
		if i >= len(desc) {
			return nil, 0
		}
		return ft, i - start + 1
	case 'T':
		end := strings.IndexByte(desc[i:], ';')
		if end == -1 {
			return nil, 0
		}
		ft.ClassName = "java/lang/Object"
		return ft, i - start + end + 1
	}
	return nil, 0
}

func parseTypeArgument(desc string, start int) (*FieldType, int) {
	switch desc[start] {
	case '*':
		return &FieldType{ClassName: "java/lang/Object"}, 1
	case '+', '-':
		ft, n := parseFieldType(desc, start+1)
		if ft == nil {
			return nil, 0
		}
		return ft, n + 1
	}
	return parseFieldType(desc, start)
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func SourceToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
