package internal

import (
	"strconv"
	"time"
)

// Message represents one record from a per-day export batch file.
//
// Every record carries type "message"; everything else is optional and
// depends on the subtype. System notices (joins, purpose changes, thread
// broadcasts) reuse the same shape with extra fields.
type Message struct {
	Type    string   `json:"type"`
	Ts      string   `json:"ts"`
	User    string   `json:"user,omitempty"`
	Subtype string   `json:"subtype,omitempty"`
	Text    string   `json:"text,omitempty"`
	Inviter string   `json:"inviter,omitempty"`
	Purpose string   `json:"purpose,omitempty"`
	Edited  *Edited  `json:"edited,omitempty"`
	Blocks  []Block  `json:"blocks,omitempty"`
	Files   []File   `json:"files,omitempty"`
	Root    *Message `json:"root,omitempty"`
}

// Edited marks a message as edited after posting. Only its presence matters
// for rendering.
type Edited struct {
	User string `json:"user,omitempty"`
	Ts   string `json:"ts,omitempty"`
}

// Time parses the message timestamp (fractional epoch seconds as a string,
// e.g. "1700000000.000100").
func (m *Message) Time() (time.Time, error) {
	ts, err := strconv.ParseFloat(m.Ts, 64)
	if err != nil {
		return time.Time{}, &MalformedRecordError{Field: "ts", Err: err}
	}
	return time.Unix(int64(ts), 0), nil
}

// Block is a top-level content unit attached to a message. Only the
// "rich_text" type is defined by the export format.
type Block struct {
	Type     string            `json:"type"`
	Elements []RichTextElement `json:"elements,omitempty"`
}

// RichTextElement is one node of the rich text tree. Container nodes
// (rich_text_section, rich_text_preformatted, rich_text_quote,
// rich_text_list) carry Elements; leaf nodes carry exactly one of the
// payload fields depending on Type.
type RichTextElement struct {
	Type      string            `json:"type"`
	Text      string            `json:"text,omitempty"`       // type "text"
	URL       string            `json:"url,omitempty"`        // type "link"
	Range     string            `json:"range,omitempty"`      // type "broadcast"
	UserID    string            `json:"user_id,omitempty"`    // type "user"
	Name      string            `json:"name,omitempty"`       // type "emoji"
	ChannelID string            `json:"channel_id,omitempty"` // type "channel"
	Elements  []RichTextElement `json:"elements,omitempty"`
}

// File describes an attachment on a message. Tombstoned and inaccessible
// attachments keep the descriptor but lose the name.
type File struct {
	Name       string `json:"name,omitempty"`
	Mode       string `json:"mode,omitempty"`
	FileAccess string `json:"file_access,omitempty"`
}

// User is one row of the users.json identity table.
type User struct {
	ID      string      `json:"id"`
	Profile UserProfile `json:"profile"`
}

// UserProfile holds the display fields of a user record.
type UserProfile struct {
	RealName string `json:"real_name"`
}

// Channel is one row of the channels.json identity table.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DM is one row of the dms.json table: a multi-party direct conversation
// and its members in join order.
type DM struct {
	ID      string   `json:"id"`
	Members []string `json:"members"`
}
