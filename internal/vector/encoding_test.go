package vector

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(From(1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out); got != "- 1\n- 2\n- 3\n" {
		t.Errorf("yaml = %q", got)
	}

	out, err = yaml.Marshal(New[int]())
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(out)); got != "[]" {
		t.Errorf("empty yaml = %q, want []", got)
	}
}

func TestUnmarshalYAML(t *testing.T) {
	var doc struct {
		Items *Array[string] `yaml:"items"`
	}
	doc.Items = New[string]()
	if err := yaml.Unmarshal([]byte("items: [a, b, c]\n"), &doc); err != nil {
		t.Fatal(err)
	}
	assertElements(t, doc.Items, []string{"a", "b", "c"})
	if doc.Items.Capacity() != 3 {
		t.Errorf("Capacity() = %d, want 3", doc.Items.Capacity())
	}
}

func TestUnmarshalYAMLRejectsMapping(t *testing.T) {
	a := From(1)
	err := yaml.Unmarshal([]byte("a: 1\n"), a)
	if err == nil || !strings.Contains(err.Error(), "mapping") {
		t.Errorf("error = %v, want mapping rejection", err)
	}
	assertElements(t, a, []int{1})
}

func TestJSON(t *testing.T) {
	out, err := json.Marshal(From(1.5, 2.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "[1.5,2.5]" {
		t.Errorf("json = %s", out)
	}

	out, _ = json.Marshal(New[int]())
	if string(out) != "[]" {
		t.Errorf("empty json = %s, want []", out)
	}

	a := From(9)
	c := a.Begin()
	if err := json.Unmarshal([]byte("[4,5,6]"), a); err != nil {
		t.Fatal(err)
	}
	assertElements(t, a, []int{4, 5, 6})
	if c.Valid() {
		t.Error("decoding should invalidate cursors")
	}

	if err := json.Unmarshal([]byte(`{"x":1}`), a); err == nil {
		t.Error("expected error decoding an object")
	}
}
