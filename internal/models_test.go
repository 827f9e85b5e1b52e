package internal

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMessage_UnmarshalJSON(t *testing.T) {
	raw := `{
		"type": "message",
		"ts": "1700000000.000100",
		"user": "U1",
		"edited": {"user": "U1", "ts": "1700000060.000000"},
		"blocks": [
			{
				"type": "rich_text",
				"elements": [
					{
						"type": "rich_text_section",
						"elements": [
							{"type": "text", "text": "see "},
							{"type": "channel", "channel_id": "C1"},
							{"type": "emoji", "name": "tada"}
						]
					},
					{
						"type": "rich_text_list",
						"elements": [
							{"type": "rich_text_section", "elements": [{"type": "text", "text": "item"}]}
						]
					}
				]
			}
		],
		"files": [
			{"name": "report.pdf"},
			{"mode": "tombstone"}
		]
	}`

	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if msg.Type != "message" || msg.User != "U1" {
		t.Errorf("header fields = %q/%q, want message/U1", msg.Type, msg.User)
	}
	if msg.Edited == nil {
		t.Error("Edited marker not parsed")
	}
	if len(msg.Blocks) != 1 || msg.Blocks[0].Type != "rich_text" {
		t.Fatalf("Blocks = %+v, want one rich_text block", msg.Blocks)
	}
	children := msg.Blocks[0].Elements
	if len(children) != 2 {
		t.Fatalf("rich_text children = %d, want 2", len(children))
	}
	section := children[0]
	if section.Type != "rich_text_section" || len(section.Elements) != 3 {
		t.Fatalf("section = %+v, want 3 inline elements", section)
	}
	if section.Elements[1].ChannelID != "C1" {
		t.Errorf("channel element id = %q, want C1", section.Elements[1].ChannelID)
	}
	if section.Elements[2].Name != "tada" {
		t.Errorf("emoji element name = %q, want tada", section.Elements[2].Name)
	}
	if len(msg.Files) != 2 || msg.Files[1].Mode != "tombstone" {
		t.Errorf("Files = %+v, want named + tombstoned", msg.Files)
	}
}

func TestMessage_UnmarshalJSON_NestedRoot(t *testing.T) {
	raw := `{
		"type": "message",
		"ts": "1700000100.000000",
		"user": "U2",
		"subtype": "thread_broadcast",
		"root": {
			"type": "message",
			"ts": "1700000000.000000",
			"user": "U1",
			"blocks": [{"type": "rich_text", "elements": []}]
		}
	}`

	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if msg.Root == nil {
		t.Fatal("Root not parsed")
	}
	if msg.Root.User != "U1" || len(msg.Root.Blocks) != 1 {
		t.Errorf("Root = %+v, want nested message record", msg.Root)
	}
}

func TestMessage_Time(t *testing.T) {
	tests := []struct {
		name    string
		ts      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "fractional timestamp",
			ts:   "1700000000.000100",
			want: time.Unix(1700000000, 0),
		},
		{
			name: "whole seconds",
			ts:   "1700000000",
			want: time.Unix(1700000000, 0),
		},
		{
			name:    "garbage",
			ts:      "yesterday",
			wantErr: true,
		},
		{
			name:    "empty",
			ts:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &Message{Ts: tt.ts}
			got, err := msg.Time()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Time() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Time() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUser_UnmarshalJSON(t *testing.T) {
	raw := `{"id": "U7", "profile": {"real_name": "Grace Hopper"}}`
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if u.ID != "U7" || u.Profile.RealName != "Grace Hopper" {
		t.Errorf("User = %+v, want U7/Grace Hopper", u)
	}
}
