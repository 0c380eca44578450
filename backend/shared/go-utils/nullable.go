package utils

import (
	"bytes"
	"encoding/json"
)

// Nullable is a request field that tells an absent key apart from an
// explicit null. Set is true whenever the key was present; Value is nil
// when it was null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func NewNull[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// ValidationValue is what the validator sees: the inner value, or nil so
// that omitempty skips absent and null fields alike.
func (n Nullable[T]) ValidationValue() any {
	if n.Value == nil {
		return nil
	}
	return *n.Value
}
