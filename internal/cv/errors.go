package cv

import "fmt"

// OutOfRangeError indicates an indexed update addressed a position outside
// the collection's current bounds. The form surface never produces this; it
// signals a caller bug rather than a user-facing condition.
type OutOfRangeError struct {
	Collection string
	Index      int
	Length     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for %s (length %d)", e.Index, e.Collection, e.Length)
}

// UnknownCollectionError indicates an operation named a collection that is
// not part of the document.
type UnknownCollectionError struct {
	Name string
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown collection: %s", e.Name)
}

// UnknownFieldError indicates an update named a field the target item type
// does not expose. Identifiers are never addressable as fields.
type UnknownFieldError struct {
	Collection string
	Field      string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q in %s", e.Field, e.Collection)
}

// InvalidValueError indicates a value outside a field's closed value set,
// such as a conference role other than presenter or delegate.
type InvalidValueError struct {
	Collection string
	Field      string
	Value      string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s.%s", e.Value, e.Collection, e.Field)
}
