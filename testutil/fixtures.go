package testutil

import (
	"testing"
)

// CreateArchiveFixture writes a minimal export archive to a temp directory:
// two users, one channel, one DM, a channel conversation with two days of
// messages and one attachment file next to the batches.
func CreateArchiveFixture(t *testing.T) string {
	t.Helper()
	root := CreateTempDir(t)

	users := []map[string]interface{}{
		{"id": "U1", "profile": map[string]interface{}{"real_name": "Alice"}},
		{"id": "U2", "profile": map[string]interface{}{"real_name": "Bob"}},
	}
	channels := []map[string]interface{}{
		{"id": "C1", "name": "general"},
	}
	dms := []map[string]interface{}{
		{"id": "D1", "members": []string{"U1", "U2"}},
	}
	WriteFile(t, root, "users.json", JSONMarshal(t, users))
	WriteFile(t, root, "channels.json", JSONMarshal(t, channels))
	WriteFile(t, root, "dms.json", JSONMarshal(t, dms))

	day1 := []map[string]interface{}{
		TextMessage("U1", "1672900000.000100", "hello"),
		{
			"type":    "message",
			"ts":      "1672900060.000200",
			"user":    "U2",
			"subtype": "group_leave",
		},
	}
	day2 := []map[string]interface{}{
		TextMessage("U2", "1672986400.000100", "still here"),
	}
	WriteFile(t, root, "general/2023-01-05.json", JSONMarshal(t, day1))
	WriteFile(t, root, "general/2023-01-06.json", JSONMarshal(t, day2))
	WriteFile(t, root, "general/notes.txt", []byte("attachment payload"))

	dmDay := []map[string]interface{}{
		TextMessage("U1", "1673000000.000100", "hi bob"),
	}
	WriteFile(t, root, "D1/2023-01-06.json", JSONMarshal(t, dmDay))

	return root
}

// TextMessage builds a raw message record with one text section
func TextMessage(user, ts, text string) map[string]interface{} {
	return map[string]interface{}{
		"type": "message",
		"ts":   ts,
		"user": user,
		"blocks": []map[string]interface{}{
			{
				"type": "rich_text",
				"elements": []map[string]interface{}{
					{
						"type": "rich_text_section",
						"elements": []map[string]interface{}{
							{"type": "text", "text": text},
						},
					},
				},
			},
		},
	}
}
