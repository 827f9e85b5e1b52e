package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/slack-export/internal"
)

func TestTextExporter_Export(t *testing.T) {
	tests := []struct {
		name string
		doc  *internal.Document
		want []string
	}{
		{
			name: "document with two days",
			doc:  internal.CreateTestDocument("general", "general"),
			want: []string{
				"slack channel: general",
				"2023-01-05",
				"09:00\nAlice: hello\n\n09:01\nBob: hi",
				"2023-01-06",
				"10:00\nAlice: bye",
			},
		},
		{
			name: "empty document keeps the title",
			doc:  &internal.Document{ID: "D1", Name: "Alice -- Bob"},
			want: []string{
				"slack channel: Alice -- Bob",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &TextExporter{}
			if err := exporter.Export(tt.doc, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			got := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Export() output missing %q\ngot:\n%s", want, got)
				}
			}
		})
	}
}

func TestTextExporter_DayOrder(t *testing.T) {
	var buf bytes.Buffer
	exporter := &TextExporter{}
	if err := exporter.Export(internal.CreateTestDocument("general", "general"), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	got := buf.String()
	if strings.Index(got, "2023-01-05") > strings.Index(got, "2023-01-06") {
		t.Error("Export() days out of order")
	}
}

func TestTextExporter_Extension(t *testing.T) {
	exporter := &TextExporter{}
	if got := exporter.Extension(); got != "txt" {
		t.Errorf("Extension() = %q, want %q", got, "txt")
	}
}
