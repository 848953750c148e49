package shell

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/atlas/internal/config"
	"github.com/dshills/atlas/internal/vector"
)

// EncodeJSON renders arr as {"size":N,"capacity":C,"elements":[...]}.
func EncodeJSON(arr *vector.Array[float64]) ([]byte, error) {
	elements, err := arr.MarshalJSON()
	if err != nil {
		return nil, err
	}

	doc := []byte(`{}`)
	if doc, err = sjson.SetBytes(doc, "size", arr.Size()); err != nil {
		return nil, err
	}
	if doc, err = sjson.SetBytes(doc, "capacity", arr.Capacity()); err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(doc, "elements", elements)
}

type yamlSnapshot struct {
	Size     int                    `yaml:"size"`
	Capacity int                    `yaml:"capacity"`
	Elements *vector.Array[float64] `yaml:"elements"`
}

// EncodeYAML renders arr as a YAML mapping with size, capacity and elements.
func EncodeYAML(arr *vector.Array[float64]) ([]byte, error) {
	return yaml.Marshal(yamlSnapshot{
		Size:     arr.Size(),
		Capacity: arr.Capacity(),
		Elements: arr,
	})
}

// DecodeJSON builds an array from a snapshot document or a bare JSON array.
// A capacity field, when present, is restored with Reserve and must lie in
// [0, config.MaxCapacity].
func DecodeJSON(data []byte) (*vector.Array[float64], error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidSnapshot)
	}

	doc := gjson.ParseBytes(data)
	elements := doc
	if !doc.IsArray() {
		elements = doc.Get("elements")
		if !elements.IsArray() {
			return nil, fmt.Errorf("%w: elements must be an array", ErrInvalidSnapshot)
		}
	}

	items := elements.Array()
	values := make([]float64, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.Number {
			return nil, fmt.Errorf("%w: element %d is %s, want number", ErrInvalidSnapshot, i, item.Type)
		}
		values = append(values, item.Float())
	}

	if size := doc.Get("size"); size.Exists() && int(size.Int()) != len(values) {
		return nil, fmt.Errorf("%w: size %d does not match %d elements", ErrInvalidSnapshot, size.Int(), len(values))
	}

	arr := vector.From(values...)
	if capacity := doc.Get("capacity"); capacity.Exists() {
		n := capacity.Float()
		if capacity.Type != gjson.Number || n != float64(int64(n)) {
			return nil, fmt.Errorf("%w: capacity must be an integer", ErrInvalidSnapshot)
		}
		if n < 0 || n > config.MaxCapacity {
			return nil, fmt.Errorf("%w: capacity %v outside [0, %d]", ErrInvalidSnapshot, n, config.MaxCapacity)
		}
		arr.Reserve(int(n))
	}
	return arr, nil
}
