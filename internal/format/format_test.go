package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

type record struct {
	Description string `json:"description" yaml:"description"`
	Priority    int    `json:"priority" yaml:"priority"`
}

func TestForName(t *testing.T) {
	for _, name := range []string{"json", "JSON", " yaml ", "yml"} {
		if _, err := ForName(name); err != nil {
			t.Fatalf("%q: %v", name, err)
		}
	}
	if _, err := ForName("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONFormatter{}).Write(&buf, []record{{Description: "Buy milk", Priority: 2}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got []record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Description != "Buy milk" || got[0].Priority != 2 {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (YAMLFormatter{}).Write(&buf, []record{{Description: "Pay bills", Priority: 1}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got []record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Description != "Pay bills" || got[0].Priority != 1 {
		t.Fatalf("unexpected payload %+v", got)
	}
}
