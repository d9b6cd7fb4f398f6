package parameter

import "strings"

// NewListSource builds a Source from a --parameter-list argument: a
// comma-separated sequence of literal values, taken in the order given.
func NewListSource(name, raw string) (Source, error) {
	parts := strings.Split(raw, ",")
	values := make([]string, len(parts))
	copy(values, parts)
	return Source{Name: name, Values: values}, nil
}
