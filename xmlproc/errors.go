package xmlproc

import "fmt"

// ModelsError reports a mapping document the overlay engine cannot turn
// into a model: a dynamic type without a name, an entity mapped onto an
// interface, an attribute with no backing member.
type ModelsError struct {
	Message string
}

func (e *ModelsError) Error() string {
	return e.Message
}

func modelsErrorf(format string, args ...interface{}) error {
	return &ModelsError{Message: fmt.Sprintf(format, args...)}
}

// AnnotationError reports a mapping element that names something the class
// does not declare, such as a lifecycle callback method.
type AnnotationError struct {
	Message string
}

func (e *AnnotationError) Error() string {
	return e.Message
}

// UnknownAttributeTypeError reports a dynamic attribute whose Java type
// cannot be inferred from the mapping.
type UnknownAttributeTypeError struct {
	Message string
}

func (e *UnknownAttributeTypeError) Error() string {
	return e.Message
}

func unknownAttributeTypef(format string, args ...interface{}) error {
	return &UnknownAttributeTypeError{Message: fmt.Sprintf(format, args...)}
}

// DocumentError attributes a processing error to the mapping document that
// caused it.
type DocumentError struct {
	Origin string
	Err    error
}

func (e *DocumentError) Error() string {
	return e.Origin + ": " + e.Err.Error()
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
