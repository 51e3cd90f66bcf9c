package classfile

import "fmt"

// constant is a single constant pool slot. Only the payload matching tag is
// meaningful.
type constant struct {
	tag    ConstantTag
	utf8   string
	index  uint16
	int64  int64
	double float64
}

// ConstantPool is indexed from 1 as in the class file; slot 0 is unused and
// the second slot of long and double entries is left empty.
type ConstantPool []constant

func (cp ConstantPool) entry(index uint16) (constant, bool) {
	if index == 0 || int(index) >= len(cp) {
		return constant{}, false
	}
	return cp[index], true
}

func (cp ConstantPool) GetUtf8(index uint16) string {
	c, ok := cp.entry(index)
	if !ok || c.tag != ConstantUtf8 {
		return ""
	}
	return c.utf8
}

func (cp ConstantPool) GetClassName(index uint16) string {
	c, ok := cp.entry(index)
	if !ok || c.tag != ConstantClass {
		return ""
	}
	return cp.GetUtf8(c.index)
}

// constValue resolves an element value constant for the given element tag.
func (cp ConstantPool) constValue(tag byte, index uint16) (interface{}, error) {
	c, ok := cp.entry(index)
	if !ok {
		return nil, fmt.Errorf("constant pool index %d out of range", index)
	}
	switch tag {
	case 's':
		return cp.GetUtf8(index), nil
	case 'Z':
		return c.int64 != 0, nil
	case 'B', 'C', 'I', 'S':
		return int32(c.int64), nil
	case 'J':
		return c.int64, nil
	case 'F':
		return float32(c.double), nil
	case 'D':
		return c.double, nil
	}
	return nil, fmt.Errorf("unexpected constant element tag %q", tag)
}

func readConstantPool(r *reader) (ConstantPool, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, r.err
	}
	cp := make(ConstantPool, count)
	for i := uint16(1); i < count; i++ {
		tag := ConstantTag(r.readU1())
		c := constant{tag: tag}
		switch tag {
		case ConstantUtf8:
			length := r.readU2()
			c.utf8 = decodeModifiedUtf8(r.readBytes(int(length)))
		case ConstantInteger:
			c.int64 = int64(int32(r.readU4()))
		case ConstantFloat:
			c.double = float64(float32frombits(r.readU4()))
		case ConstantLong:
			high, low := r.readU4(), r.readU4()
			c.int64 = int64(high)<<32 | int64(low)
		case ConstantDouble:
			high, low := r.readU4(), r.readU4()
			c.double = float64frombits(uint64(high)<<32 | uint64(low))
		case ConstantClass, ConstantString, ConstantMethodType, ConstantModule, ConstantPackage:
			c.index = r.readU2()
		case ConstantFieldref, ConstantMethodref, ConstantInterfaceMethodref,
			ConstantNameAndType, ConstantDynamic, ConstantInvokeDynamic:
			c.index = r.readU2()
			r.readU2()
		case ConstantMethodHandle:
			r.readU1()
			c.index = r.readU2()
		default:
			if r.err != nil {
				return nil, r.err
			}
			return nil, fmt.Errorf("unknown constant pool tag %d at index %d", tag, i)
		}
		if r.err != nil {
			return nil, fmt.Errorf("constant pool entry %d: %w", i, r.err)
		}
		cp[i] = c
		if tag == ConstantLong || tag == ConstantDouble {
			i++
		}
	}
	return cp, nil
}
