package export

import (
	"bytes"
	"testing"

	"github.com/iksnae/slack-export/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	exporter := &YAMLExporter{}
	if err := exporter.Export(internal.CreateTestDocument("general", "general"), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var got internal.Document
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Export() produced invalid YAML: %v", err)
	}
	if got.ID != "general" || len(got.Days) != 2 {
		t.Errorf("round-tripped document = %+v", got)
	}
}

func TestYAMLExporter_Extension(t *testing.T) {
	exporter := &YAMLExporter{}
	if got := exporter.Extension(); got != "yaml" {
		t.Errorf("Extension() = %q, want %q", got, "yaml")
	}
}
