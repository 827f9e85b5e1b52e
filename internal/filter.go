package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filter restricts an export to selected conversations and dates. A nil
// *Filter permits everything.
type Filter struct {
	// Chats maps conversation id to the permitted date labels. Conversations
	// not listed are skipped entirely.
	Chats map[string][]DateLabel `yaml:"chats"`
	// CopyFiles requests that attachment files found next to the day batches
	// be copied into the output directory verbatim.
	CopyFiles bool `yaml:"copy-files"`
}

// DateLabel is a date key from the filter file. Dates are often written as
// bare YAML scalars (including numbers), so it unmarshals from the scalar's
// literal text rather than a typed value.
type DateLabel string

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DateLabel) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("filter date must be a scalar, got %v", value.Kind)
	}
	*d = DateLabel(value.Value)
	return nil
}

// LoadFilter reads a filter file. An empty path means no filter and returns
// nil without error.
func LoadFilter(path string) (*Filter, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter file: %w", err)
	}
	var f Filter
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse filter file: %w", err)
	}
	return &f, nil
}

// Dates reports whether a conversation is permitted and, if so, which date
// labels it is limited to. A nil filter permits every conversation with no
// date restriction.
func (f *Filter) Dates(conversationID string) ([]string, bool) {
	if f == nil {
		return nil, true
	}
	labels, ok := f.Chats[conversationID]
	if !ok {
		return nil, false
	}
	dates := make([]string, len(labels))
	for i, l := range labels {
		dates[i] = string(l)
	}
	return dates, true
}

// ShouldCopyFiles reports whether attachment copying was requested.
func (f *Filter) ShouldCopyFiles() bool {
	return f != nil && f.CopyFiles
}
