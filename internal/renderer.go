package internal

import (
	"html"
	"strings"

	"github.com/kyokomi/emoji/v2"
)

// Renderer turns one message record into its display text, resolving ids
// through an IdentityStore. Rendering is a pure function of (record, store):
// the renderer keeps no state between messages.
type Renderer struct {
	ids *IdentityStore
}

// NewRenderer creates a renderer backed by the given identity store.
func NewRenderer(ids *IdentityStore) *Renderer {
	return &Renderer{ids: ids}
}

// RenderMessage produces the final text block for a message: a line with the
// local HH:MM time, then "<author>: <body>". The body is the subtype notice,
// block content and file lines joined by newlines (empty sections skipped),
// HTML-escaped once as a whole, with an unescaped " [edited]" suffix when
// the record carries an edited marker.
func (r *Renderer) RenderMessage(msg *Message) (string, error) {
	if msg.Type != "message" {
		return "", &UnknownTypeError{Kind: "message type", Tag: msg.Type}
	}

	body, err := r.renderBody(msg)
	if err != nil {
		return "", err
	}

	when, err := msg.Time()
	if err != nil {
		return "", err
	}
	author, err := r.ids.UserName(msg.User)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(when.Format("15:04"))
	b.WriteString("\n")
	b.WriteString(author)
	b.WriteString(": ")
	b.WriteString(html.EscapeString(body))
	if msg.Edited != nil {
		b.WriteString(" [edited]")
	}
	return b.String(), nil
}

// renderBody assembles the unescaped message body from its three sections.
func (r *Renderer) renderBody(msg *Message) (string, error) {
	notice, err := r.renderSubtype(msg)
	if err != nil {
		return "", err
	}
	blocks, err := r.renderBlocks(msg.Blocks)
	if err != nil {
		return "", err
	}
	files := renderFiles(msg.Files)

	var parts []string
	for _, part := range []string{notice, blocks, files} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// renderSubtype produces the system-notice text for a message subtype. A
// message without a subtype produces no notice and renders through the
// normal block/file path only.
func (r *Renderer) renderSubtype(msg *Message) (string, error) {
	switch msg.Subtype {
	case "":
		return "", nil
	case "joiner_notification":
		return "[" + msg.Text + "]", nil
	case "joiner_notification_for_inviter":
		user, err := r.ids.UserName(msg.User)
		if err != nil {
			return "", err
		}
		return "[" + user + " joined group]", nil
	case "group_join":
		if msg.Inviter != "" {
			inviter, err := r.ids.UserName(msg.Inviter)
			if err != nil {
				return "", err
			}
			return "[joined group, invited by " + inviter + "]", nil
		}
		return "[joined group]", nil
	case "group_leave":
		return "[left group]", nil
	case "channel_join":
		if msg.Inviter != "" {
			inviter, err := r.ids.UserName(msg.Inviter)
			if err != nil {
				return "", err
			}
			return "[joined channel, invited by " + inviter + "]", nil
		}
		return "[joined channel]", nil
	case "group_purpose":
		return "[Edited group purpose: " + msg.Purpose + "]", nil
	case "thread_broadcast":
		if msg.Root == nil {
			return "", &MalformedRecordError{Field: "root"}
		}
		root, err := r.renderBlocks(msg.Root.Blocks)
		if err != nil {
			return "", err
		}
		return "[thread root] " + root, nil
	case "channel_name":
		user, err := r.ids.UserName(msg.User)
		if err != nil {
			return "", err
		}
		return "[" + user + " " + msg.Text + "]", nil
	case "channel_topic":
		// The acting user is still resolved so a broken reference fails the
		// export, but topic changes produce no notice.
		if _, err := r.ids.UserName(msg.User); err != nil {
			return "", err
		}
		return "", nil
	case "channel_purpose":
		user, err := r.ids.UserName(msg.User)
		if err != nil {
			return "", err
		}
		return "[" + user + " set channel purpose: " + msg.Purpose + "]", nil
	case "bot_message":
		return "", nil
	case "mpdm_move":
		// Membership changed and the conversation continued under a new id;
		// the notice itself is not rendered.
		return "", nil
	default:
		return "", &UnknownTypeError{Kind: "message subtype", Tag: msg.Subtype}
	}
}

// renderBlocks renders the blocks field. Only rich_text blocks are defined;
// an absent field renders empty.
func (r *Renderer) renderBlocks(blocks []Block) (string, error) {
	var parts []string
	for _, block := range blocks {
		switch block.Type {
		case "rich_text":
			text, err := r.renderRichText(block.Elements)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
		default:
			return "", &UnknownTypeError{Kind: "block type", Tag: block.Type}
		}
	}
	return strings.Join(parts, "\n"), nil
}

// renderRichText renders the children of a rich_text block, one line per
// child, in input order.
func (r *Renderer) renderRichText(elements []RichTextElement) (string, error) {
	parts := make([]string, 0, len(elements))
	for _, el := range elements {
		switch el.Type {
		case "rich_text_section", "rich_text_preformatted":
			text, err := r.renderSection(el.Elements)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
		case "rich_text_quote":
			text, err := r.renderSection(el.Elements)
			if err != nil {
				return "", err
			}
			parts = append(parts, "> "+text)
		case "rich_text_list":
			text, err := r.renderList(el.Elements)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
		default:
			return "", &UnknownTypeError{Kind: "element type", Tag: el.Type}
		}
	}
	return strings.Join(parts, "\n"), nil
}

// renderList renders a rich_text_list: one "- " line per section child.
func (r *Renderer) renderList(elements []RichTextElement) (string, error) {
	parts := make([]string, 0, len(elements))
	for _, el := range elements {
		if el.Type != "rich_text_section" {
			return "", &UnknownTypeError{Kind: "element type", Tag: el.Type}
		}
		text, err := r.renderSection(el.Elements)
		if err != nil {
			return "", err
		}
		parts = append(parts, "- "+text)
	}
	return strings.Join(parts, "\n"), nil
}

// renderSection concatenates the inline elements of a section with no
// separator; spacing comes from the literal text runs themselves.
func (r *Renderer) renderSection(elements []RichTextElement) (string, error) {
	var b strings.Builder
	for _, el := range elements {
		switch el.Type {
		case "text":
			b.WriteString(el.Text)
		case "link":
			b.WriteString(el.URL)
		case "broadcast":
			b.WriteString("@" + el.Range)
		case "user":
			name, err := r.ids.UserName(el.UserID)
			if err != nil {
				return "", err
			}
			b.WriteString("@" + name)
		case "emoji":
			b.WriteString(renderEmoji(el.Name))
		case "channel":
			name, err := r.ids.ChannelName(el.ChannelID)
			if err != nil {
				return "", err
			}
			b.WriteString(name)
		default:
			return "", &UnknownTypeError{Kind: "element type", Tag: el.Type}
		}
	}
	return b.String(), nil
}

// renderEmoji renders an emoji reference as the glyph followed by a
// bracketed tag preserving the shorthand. The tag is emitted whether or not
// the glyph lookup succeeds, so the original name survives in the output.
func renderEmoji(name string) string {
	code := ":" + name + ":"
	glyph, ok := emoji.CodeMap()[code]
	if !ok {
		glyph = code
	}
	return glyph + "[emoji " + code + "]"
}

// renderFiles renders the attachment lines for a message, one "[file] " line
// per descriptor. Tombstoned and inaccessible attachments render a fixed
// placeholder instead of a name.
func renderFiles(files []File) string {
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, "[file] "+fileLabel(f))
	}
	return strings.Join(lines, "\n")
}

func fileLabel(f File) string {
	if f.Mode == "tombstone" {
		return "[file removed]"
	}
	if f.FileAccess == "file_not_found" {
		return "[file not found]"
	}
	return f.Name
}
