package jira

// Opt models the three states an optional wire field can take: not provided,
// explicit null, or a value. The zero Opt is "not provided". Explicit null
// and not-provided are semantically different (see Assignment) and must
// never collapse into each other during serialization.
type Opt[T any] struct {
	state optState
	value T
}

type optState uint8

const (
	optUnset optState = iota
	optNull
	optValue
)

// Set returns an Opt carrying a value.
func Set[T any](v T) Opt[T] {
	return Opt[T]{state: optValue, value: v}
}

// Null returns an Opt carrying an explicit null.
func Null[T any]() Opt[T] {
	return Opt[T]{state: optNull}
}

// IsSet reports whether the Opt carries a value.
func (o Opt[T]) IsSet() bool { return o.state == optValue }

// IsNull reports whether the Opt carries an explicit null.
func (o Opt[T]) IsNull() bool { return o.state == optNull }

// IsUnset reports whether the Opt was never provided.
func (o Opt[T]) IsUnset() bool { return o.state == optUnset }

// Value returns the carried value; the zero value unless IsSet.
func (o Opt[T]) Value() T { return o.value }
