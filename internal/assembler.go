package internal

import "strings"

// Document is one conversation rendered to text, grouped by day. Day and
// message order match the input sequence exactly.
type Document struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Days []Day  `json:"days"`
}

// Day is one day's rendered messages.
type Day struct {
	Date     string   `json:"date"`
	Messages []string `json:"messages"`
}

// Text joins a day's messages with blank lines.
func (d *Day) Text() string {
	return strings.Join(d.Messages, "\n\n")
}

// Assembler sequences a conversation's per-day batches through the renderer.
type Assembler struct {
	archive  *Archive
	renderer *Renderer
}

// NewAssembler creates an assembler over an opened archive.
func NewAssembler(archive *Archive) *Assembler {
	return &Assembler{
		archive:  archive,
		renderer: NewRenderer(archive.Identities()),
	}
}

// Assemble renders one conversation into a Document. When dates is non-nil,
// only days whose date label appears in it are rendered. A render failure
// aborts the conversation; the last few successfully rendered messages are
// logged for context before the error is returned.
func (s *Assembler) Assemble(conv *Conversation, dates []string) (*Document, error) {
	permitted := make(map[string]bool, len(dates))
	for _, d := range dates {
		permitted[d] = true
	}

	doc := &Document{ID: conv.ID, Name: conv.Name}
	for _, file := range conv.Days {
		date := strings.TrimSuffix(file, ".json")
		if dates != nil && !permitted[date] {
			continue
		}

		records, err := s.archive.ReadDay(conv, file)
		if err != nil {
			return nil, err
		}

		day := Day{Date: date, Messages: make([]string, 0, len(records))}
		for i := range records {
			text, err := s.renderer.RenderMessage(&records[i])
			if err != nil {
				logRenderedTail(day.Messages)
				return nil, &RenderError{Conversation: conv.ID, Date: date, Err: err}
			}
			day.Messages = append(day.Messages, text)
		}
		doc.Days = append(doc.Days, day)
	}
	return doc, nil
}

// logRenderedTail logs the last few rendered messages so a fatal record can
// be located in the source batch.
func logRenderedTail(messages []string) {
	const tail = 3
	if len(messages) == 0 {
		return
	}
	start := len(messages) - tail
	if start < 0 {
		start = 0
	}
	LogError("last rendered messages before failure:\n%s", strings.Join(messages[start:], "\n\n"))
}
