package classfile

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classWriter assembles a minimal class file for tests.
type classWriter struct {
	pool  [][]byte
	index map[string]uint16
}

func newClassWriter() *classWriter {
	return &classWriter{index: map[string]uint16{}}
}

func (w *classWriter) add(key string, entry []byte) uint16 {
	if idx, ok := w.index[key]; ok {
		return idx
	}
	w.pool = append(w.pool, entry)
	idx := uint16(len(w.pool))
	w.index[key] = idx
	return idx
}

func (w *classWriter) utf8(s string) uint16 {
	b := []byte{byte(ConstantUtf8)}
	b = binary.BigEndian.AppendUint16(b, uint16(len(s)))
	return w.add("u:"+s, append(b, s...))
}

func (w *classWriter) class(name string) uint16 {
	nameIdx := w.utf8(name)
	b := binary.BigEndian.AppendUint16([]byte{byte(ConstantClass)}, nameIdx)
	return w.add("c:"+name, b)
}

func (w *classWriter) integer(v int32) uint16 {
	b := binary.BigEndian.AppendUint32([]byte{byte(ConstantInteger)}, uint32(v))
	return w.add("i:"+string(rune(v)), b)
}

func u2(v uint16) []byte { return binary.BigEndian.AppendUint16(nil, v) }

func (w *classWriter) attribute(name string, info []byte) []byte {
	b := u2(w.utf8(name))
	b = binary.BigEndian.AppendUint32(b, uint32(len(info)))
	return append(b, info...)
}

func (w *classWriter) member(flags AccessFlags, name, desc string, attrs ...[]byte) []byte {
	b := u2(uint16(flags))
	b = append(b, u2(w.utf8(name))...)
	b = append(b, u2(w.utf8(desc))...)
	b = append(b, u2(uint16(len(attrs)))...)
	for _, a := range attrs {
		b = append(b, a...)
	}
	return b
}

func (w *classWriter) bytes(flags AccessFlags, this, super string, fields, methods [][]byte, attrs ...[]byte) []byte {
	thisIdx := w.class(this)
	superIdx := w.class(super)

	var body []byte
	body = append(body, u2(uint16(flags))...)
	body = append(body, u2(thisIdx)...)
	body = append(body, u2(superIdx)...)
	body = append(body, u2(0)...)
	body = append(body, u2(uint16(len(fields)))...)
	for _, f := range fields {
		body = append(body, f...)
	}
	body = append(body, u2(uint16(len(methods)))...)
	for _, m := range methods {
		body = append(body, m...)
	}
	body = append(body, u2(uint16(len(attrs)))...)
	for _, a := range attrs {
		body = append(body, a...)
	}

	var out bytes.Buffer
	out.Write(binary.BigEndian.AppendUint32(nil, Magic))
	out.Write(u2(0))
	out.Write(u2(61))
	out.Write(u2(uint16(len(w.pool) + 1)))
	for _, e := range w.pool {
		out.Write(e)
	}
	out.Write(body)
	return out.Bytes()
}

func TestParseClassFile(t *testing.T) {
	w := newClassWriter()

	// @Id on the field, @Column(name="full_name", length=80) on the getter
	idAnn := append(u2(1), append(u2(w.utf8("Ljakarta/persistence/Id;")), u2(0)...)...)
	colAnn := u2(1)
	colAnn = append(colAnn, u2(w.utf8("Ljakarta/persistence/Column;"))...)
	colAnn = append(colAnn, u2(2)...)
	colAnn = append(colAnn, u2(w.utf8("name"))...)
	colAnn = append(colAnn, 's')
	colAnn = append(colAnn, u2(w.utf8("full_name"))...)
	colAnn = append(colAnn, u2(w.utf8("length"))...)
	colAnn = append(colAnn, 'I')
	colAnn = append(colAnn, u2(w.integer(80))...)

	accessAnn := u2(1)
	accessAnn = append(accessAnn, u2(w.utf8("Ljakarta/persistence/Access;"))...)
	accessAnn = append(accessAnn, u2(1)...)
	accessAnn = append(accessAnn, u2(w.utf8("value"))...)
	accessAnn = append(accessAnn, 'e')
	accessAnn = append(accessAnn, u2(w.utf8("Ljakarta/persistence/AccessType;"))...)
	accessAnn = append(accessAnn, u2(w.utf8("FIELD"))...)

	fields := [][]byte{
		w.member(AccPrivate, "id", "Ljava/lang/Long;", w.attribute("RuntimeVisibleAnnotations", idAnn)),
		w.member(AccPrivate, "tags", "Ljava/util/List;",
			w.attribute("Signature", u2(w.utf8("Ljava/util/List<Ljava/lang/String;>;")))),
	}
	methods := [][]byte{
		w.member(AccPublic, "getName", "()Ljava/lang/String;", w.attribute("RuntimeVisibleAnnotations", colAnn)),
		w.member(AccPublic, "setName", "(Ljava/lang/String;)V"),
	}
	data := w.bytes(AccPublic|AccSuper, "com/acme/Person", "java/lang/Object", fields, methods,
		w.attribute("RuntimeVisibleAnnotations", accessAnn))

	cf, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)

	t.Run("header", func(t *testing.T) {
		assert.Equal(t, "com/acme/Person", cf.ClassName())
		assert.Equal(t, "java/lang/Object", cf.SuperClassName())
		assert.Equal(t, uint16(61), cf.MajorVersion)
		assert.False(t, cf.IsInterface())
	})

	t.Run("class annotations", func(t *testing.T) {
		require.Len(t, cf.Annotations, 1)
		ann := cf.Annotations[0]
		assert.Equal(t, "Ljakarta/persistence/Access;", ann.Type)
		require.Len(t, ann.Elements, 1)
		assert.Equal(t, EnumValue{Type: "Ljakarta/persistence/AccessType;", Name: "FIELD"}, ann.Elements[0].Value)
	})

	t.Run("fields", func(t *testing.T) {
		require.Len(t, cf.Fields, 2)
		id := cf.GetField("id")
		require.NotNil(t, id)
		require.Len(t, id.Annotations, 1)
		assert.Equal(t, "Ljakarta/persistence/Id;", id.Annotations[0].Type)

		tags := cf.GetField("tags")
		require.NotNil(t, tags)
		sig := ParseFieldSignature(tags.Signature)
		require.NotNil(t, sig)
		assert.Equal(t, "java.util.List<java.lang.String>", sig.String())
	})

	t.Run("methods", func(t *testing.T) {
		getters := cf.GetMethods("getName")
		require.Len(t, getters, 1)
		ann := getters[0].Annotations[0]
		assert.Equal(t, "Ljakarta/persistence/Column;", ann.Type)
		assert.Equal(t, "full_name", ann.Elements[0].Value)
		assert.Equal(t, int32(80), ann.Elements[1].Value)
	})
}

func TestParseInvalidMagic(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte{0xCA, 0xFE, 0xBA, 0xBF}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid magic number")
}

func TestParseTruncated(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte{0xCA, 0xFE}))
	require.Error(t, err)
}

func TestParseMethodDescriptor(t *testing.T) {
	md := ParseMethodDescriptor("(ILjava/lang/String;[J)V")
	require.NotNil(t, md)
	require.Len(t, md.Parameters, 3)
	assert.Equal(t, "int", md.Parameters[0].SourceName())
	assert.Equal(t, "java.lang.String", md.Parameters[1].SourceName())
	assert.Equal(t, "long[]", md.Parameters[2].String())
	assert.Nil(t, md.ReturnType)

	md = ParseMethodDescriptor("()Ljava/util/Set;")
	require.NotNil(t, md)
	assert.Empty(t, md.Parameters)
	assert.Equal(t, "java.util.Set", md.ReturnType.SourceName())
}
