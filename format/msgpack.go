package format

import (
	"errors"
	"io"

	"github.com/dhamidi/ormxml/java"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackEncoder writes a stream of msgpack-encoded snapshots. Map keys are
// sorted so equal models encode to equal bytes.
type MsgpackEncoder struct {
	enc *msgpack.Encoder
}

func NewMsgpackEncoder(w io.Writer) *MsgpackEncoder {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	return &MsgpackEncoder{enc: enc}
}

func (e *MsgpackEncoder) Encode(class java.ClassSnapshot) error {
	return e.enc.Encode(class)
}

// DecodeSnapshots reads a stream written by MsgpackEncoder.
func DecodeSnapshots(r io.Reader) ([]java.ClassSnapshot, error) {
	dec := msgpack.NewDecoder(r)
	var out []java.ClassSnapshot
	for {
		var s java.ClassSnapshot
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, s)
	}
}
