// Package format encodes snapshots of the overlaid class models.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/ormxml/java"
)

type Encoder interface {
	Encode(class java.ClassSnapshot) error
}

// Names lists the formats New accepts.
var Names = []string{"line", "json", "msgpack"}

func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "msgpack":
		return NewMsgpackEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected line, json, or msgpack)", name)
}

// EncodeAll encodes the snapshots in order and stops at the first error.
func EncodeAll(enc Encoder, classes []java.ClassSnapshot) error {
	for _, c := range classes {
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode %s: %w", c.Name, err)
		}
	}
	return nil
}
