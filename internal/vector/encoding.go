package vector

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the live elements as a YAML sequence.
func (a *Array[T]) MarshalYAML() (interface{}, error) {
	return a.live(), nil
}

// UnmarshalYAML replaces the contents of a with a decoded YAML sequence.
// The capacity after decoding equals the number of elements.
func (a *Array[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("vector: cannot decode YAML %s into array", kindName(value.Kind))
	}
	var values []T
	if err := value.Decode(&values); err != nil {
		return fmt.Errorf("vector: decoding YAML sequence: %w", err)
	}
	a.replace(values)
	return nil
}

// MarshalJSON encodes the live elements as a JSON array.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.live())
}

// UnmarshalJSON replaces the contents of a with a decoded JSON array.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("vector: decoding JSON array: %w", err)
	}
	a.replace(values)
	return nil
}

// live returns the live elements, never nil, so empty arrays encode as [].
func (a *Array[T]) live() []T {
	if a.size == 0 {
		return []T{}
	}
	return a.data[:a.size]
}

func (a *Array[T]) replace(values []T) {
	a.data = nil
	if len(values) > 0 {
		a.data = values
	}
	a.size = len(values)
	a.generation++
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
