package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Archive is an opened export root: the three identity tables plus one
// directory per conversation, each holding per-day message batch files
// named "<date>.json".
type Archive struct {
	root          string
	ids           *IdentityStore
	conversations []Conversation
}

// Conversation is one conversation directory of an archive.
type Conversation struct {
	ID   string
	Name string
	Path string
	Days []string // day file names, lexically sorted
}

// Dates returns the date labels of the conversation's day files, in file
// order.
func (c *Conversation) Dates() []string {
	dates := make([]string, len(c.Days))
	for i, day := range c.Days {
		dates[i] = strings.TrimSuffix(day, ".json")
	}
	return dates
}

// OpenArchive opens an export root: loads users.json, channels.json and
// dms.json, builds the identity store, and scans the conversation
// directories.
func OpenArchive(root string) (*Archive, error) {
	LogInfo("Opening %s", root)

	var users []User
	if err := readTable(filepath.Join(root, "users.json"), &users); err != nil {
		return nil, err
	}
	var channels []Channel
	if err := readTable(filepath.Join(root, "channels.json"), &channels); err != nil {
		return nil, err
	}
	var dms []DM
	if err := readTable(filepath.Join(root, "dms.json"), &dms); err != nil {
		return nil, err
	}

	ids, err := NewIdentityStore(users, channels, dms)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity store: %w", err)
	}

	a := &Archive{root: root, ids: ids}
	if err := a.scanConversations(); err != nil {
		return nil, err
	}
	return a, nil
}

// Identities returns the archive's identity store.
func (a *Archive) Identities() *IdentityStore {
	return a.ids
}

// Conversations returns all conversations in the archive, sorted by id.
func (a *Archive) Conversations() []Conversation {
	return a.conversations
}

// Conversation looks up a conversation by directory id.
func (a *Archive) Conversation(id string) (*Conversation, error) {
	for i := range a.conversations {
		if a.conversations[i].ID == id {
			return &a.conversations[i], nil
		}
	}
	return nil, fmt.Errorf("conversation not found: %s", id)
}

// ReadDay reads one day's batch file for a conversation and returns its
// ordered message records.
func (a *Archive) ReadDay(conv *Conversation, day string) ([]Message, error) {
	path := filepath.Join(conv.Path, day)
	LogDebug("Parsing %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ArchiveError{Path: path, Op: "read", Err: err}
	}
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, &ArchiveError{Path: path, Op: "parse", Err: err}
	}
	return messages, nil
}

// CopyAttachments copies the non-batch files of a conversation directory
// (downloaded attachments stored next to the day files) into
// <outDir>/files/<conversation-id>, byte for byte.
func (a *Archive) CopyAttachments(conv *Conversation, outDir string) error {
	entries, err := os.ReadDir(conv.Path)
	if err != nil {
		return &ArchiveError{Path: conv.Path, Op: "open", Err: err}
	}

	dest := filepath.Join(outDir, "files", conv.ID)
	copied := 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if copied == 0 {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return fmt.Errorf("failed to create attachment directory: %w", err)
			}
		}
		src := filepath.Join(conv.Path, entry.Name())
		data, err := os.ReadFile(src)
		if err != nil {
			return &ArchiveError{Path: src, Op: "read", Err: err}
		}
		if err := os.WriteFile(filepath.Join(dest, entry.Name()), data, 0644); err != nil {
			return fmt.Errorf("failed to copy attachment %s: %w", entry.Name(), err)
		}
		copied++
	}
	if copied > 0 {
		LogDebug("Copied %d attachment(s) for %s", copied, conv.ID)
	}
	return nil
}

func (a *Archive) scanConversations() error {
	entries, err := os.ReadDir(a.root)
	if err != nil {
		return &ArchiveError{Path: a.root, Op: "open", Err: err}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		dir := filepath.Join(a.root, id)

		days, err := listDayFiles(dir)
		if err != nil {
			return err
		}
		a.conversations = append(a.conversations, Conversation{
			ID:   id,
			Name: a.ids.ConversationLabel(id),
			Path: dir,
			Days: days,
		})
	}

	sort.Slice(a.conversations, func(i, j int) bool {
		return a.conversations[i].ID < a.conversations[j].ID
	})
	return nil
}

func listDayFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ArchiveError{Path: dir, Op: "open", Err: err}
	}
	var days []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		days = append(days, entry.Name())
	}
	sort.Strings(days)
	return days, nil
}

func readTable(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ArchiveError{Path: path, Op: "read", Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ArchiveError{Path: path, Op: "parse", Err: err}
	}
	return nil
}
