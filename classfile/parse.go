package classfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

type reader struct {
	r   io.Reader
	err error
}

func (r *reader) readU1() uint8 {
	if r.err != nil {
		return 0
	}
	var buf [1]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return buf[0]
}

func (r *reader) readU2() uint16 {
	if r.err != nil {
		return 0
	}
	var buf [2]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (r *reader) readU4() uint32 {
	if r.err != nil {
		return 0
	}
	var buf [4]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *reader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	_, r.err = io.ReadFull(r.r, buf)
	return buf
}

func float32frombits(b uint32) float32 { return math.Float32frombits(b) }
func float64frombits(b uint64) float64 { return math.Float64frombits(b) }

func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(rd io.Reader) (*ClassFile, error) {
	r := &reader{r: rd}

	magic := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	cf := &ClassFile{
		MinorVersion: r.readU2(),
		MajorVersion: r.readU2(),
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read version: %w", r.err)
	}

	cp, err := readConstantPool(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read constant pool: %w", err)
	}

	cf.AccessFlags = AccessFlags(r.readU2())
	cf.Name = cp.GetClassName(r.readU2())
	cf.SuperName = cp.GetClassName(r.readU2())

	interfacesCount := r.readU2()
	for i := uint16(0); i < interfacesCount; i++ {
		cf.Interfaces = append(cf.Interfaces, cp.GetClassName(r.readU2()))
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read class info: %w", r.err)
	}

	if cf.Fields, err = readMembers(r, cp); err != nil {
		return nil, fmt.Errorf("failed to read fields: %w", err)
	}
	if cf.Methods, err = readMembers(r, cp); err != nil {
		return nil, fmt.Errorf("failed to read methods: %w", err)
	}

	attrs, err := readAttributes(r, cp)
	if err != nil {
		return nil, fmt.Errorf("failed to read class attributes: %w", err)
	}
	cf.Signature = attrs.signature
	cf.Annotations = attrs.annotations

	return cf, nil
}

func readMembers(r *reader, cp ConstantPool) ([]Member, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, r.err
	}
	members := make([]Member, count)
	for i := range members {
		m := Member{
			AccessFlags: AccessFlags(r.readU2()),
			Name:        cp.GetUtf8(r.readU2()),
			Descriptor:  cp.GetUtf8(r.readU2()),
		}
		attrs, err := readAttributes(r, cp)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
		m.Signature = attrs.signature
		m.Annotations = attrs.annotations
		members[i] = m
	}
	return members, nil
}

// attributes holds the decoded attributes this package cares about.
type attributes struct {
	signature   string
	annotations []Annotation
}

func readAttributes(r *reader, cp ConstantPool) (attributes, error) {
	var attrs attributes
	count := r.readU2()
	for i := uint16(0); i < count; i++ {
		name := cp.GetUtf8(r.readU2())
		length := r.readU4()
		info := r.readBytes(int(length))
		if r.err != nil {
			return attrs, r.err
		}
		switch name {
		case "Signature":
			if len(info) >= 2 {
				attrs.signature = cp.GetUtf8(binary.BigEndian.Uint16(info))
			}
		case "RuntimeVisibleAnnotations":
			anns, err := parseAnnotations(info, cp)
			if err != nil {
				return attrs, fmt.Errorf("RuntimeVisibleAnnotations: %w", err)
			}
			attrs.annotations = anns
		}
	}
	return attrs, r.err
}

func parseAnnotations(info []byte, cp ConstantPool) ([]Annotation, error) {
	r := &reader{r: bytes.NewReader(info)}
	count := r.readU2()
	anns := make([]Annotation, 0, count)
	for i := uint16(0); i < count; i++ {
		ann, err := readAnnotation(r, cp)
		if err != nil {
			return nil, err
		}
		anns = append(anns, ann)
	}
	return anns, r.err
}

func readAnnotation(r *reader, cp ConstantPool) (Annotation, error) {
	ann := Annotation{Type: cp.GetUtf8(r.readU2())}
	pairs := r.readU2()
	for i := uint16(0); i < pairs; i++ {
		name := cp.GetUtf8(r.readU2())
		value, err := readElementValue(r, cp)
		if err != nil {
			return ann, fmt.Errorf("annotation %s element %s: %w", ann.Type, name, err)
		}
		ann.Elements = append(ann.Elements, ElementValuePair{Name: name, Value: value})
	}
	return ann, r.err
}

func readElementValue(r *reader, cp ConstantPool) (interface{}, error) {
	tag := r.readU1()
	if r.err != nil {
		return nil, r.err
	}
	switch tag {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 's':
		return cp.constValue(tag, r.readU2())
	case 'e':
		typ := cp.GetUtf8(r.readU2())
		return EnumValue{Type: typ, Name: cp.GetUtf8(r.readU2())}, r.err
	case 'c':
		return ClassValue(cp.GetUtf8(r.readU2())), r.err
	case '@':
		return readAnnotation(r, cp)
	case '[':
		n := r.readU2()
		values := make([]interface{}, 0, n)
		for i := uint16(0); i < n; i++ {
			v, err := readElementValue(r, cp)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, r.err
	}
	return nil, fmt.Errorf("unknown element value tag %q", tag)
}

func decodeModifiedUtf8(bytes []byte) string {
	runes := make([]rune, 0, len(bytes))
	i := 0
	for i < len(bytes) {
		b := bytes[i]
		switch {
		case b&0x80 == 0:
			runes = append(runes, rune(b))
			i++
		case b&0xE0 == 0xC0 && i+1 < len(bytes):
			runes = append(runes, rune(b&0x1F)<<6|rune(bytes[i+1]&0x3F))
			i += 2
		case b&0xF0 == 0xE0 && i+2 < len(bytes):
			r := rune(b&0x0F)<<12 | rune(bytes[i+1]&0x3F)<<6 | rune(bytes[i+2]&0x3F)
			// surrogate pairs are encoded as two three-byte sequences
			if r >= 0xD800 && r <= 0xDBFF && i+5 < len(bytes) && bytes[i+3] == 0xED {
				low := rune(bytes[i+3]&0x0F)<<12 | rune(bytes[i+4]&0x3F)<<6 | rune(bytes[i+5]&0x3F)
				if low >= 0xDC00 && low <= 0xDFFF {
					runes = append(runes, 0x10000+((r-0xD800)<<10)+(low-0xDC00))
					i += 6
					continue
				}
			}
			runes = append(runes, r)
			i += 3
		default:
			runes = append(runes, rune(b))
			i++
		}
	}
	return string(runes)
}
