package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/ormxml/java"
)

// JSONEncoder writes each snapshot as an indented JSON document.
type JSONEncoder struct {
	w     io.Writer
	class java.ClassSnapshot
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(class java.ClassSnapshot) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.class, "", "  ")
}
