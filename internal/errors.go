package internal

import "fmt"

// UnknownTypeError reports a variant tag outside the closed set the export
// format defines. The format is treated as closed, so any unknown tag means
// a format assumption has been violated.
type UnknownTypeError struct {
	Kind string // "element type", "block type", "message subtype", "message type"
	Tag  string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Tag)
}

// IdentityError reports a user or channel id that the identity tables do not
// resolve. Names are never fabricated for missing ids.
type IdentityError struct {
	Kind string // "user" or "channel"
	ID   string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("unknown %s id %q", e.Kind, e.ID)
}

// MalformedRecordError reports a message record missing or mangling a field
// its variant requires.
type MalformedRecordError struct {
	Field string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed message record: field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("malformed message record: missing field %q", e.Field)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// ArchiveError represents errors accessing export archive files
type ArchiveError struct {
	Path string
	Op   string // "open", "read", "parse"
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// RenderError wraps a rendering failure with the conversation and day it
// occurred in.
type RenderError struct {
	Conversation string
	Date         string
	Err          error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error [%s %s]: %v", e.Conversation, e.Date, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
