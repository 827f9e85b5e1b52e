package internal

// CreateTestIdentityStore builds a store with sample users, a channel and a DM
func CreateTestIdentityStore() *IdentityStore {
	s, err := NewIdentityStore(
		[]User{
			{ID: "U1", Profile: UserProfile{RealName: "Alice"}},
			{ID: "U2", Profile: UserProfile{RealName: "Bob"}},
		},
		[]Channel{
			{ID: "C1", Name: "general"},
		},
		[]DM{
			{ID: "D1", Members: []string{"U1", "U2"}},
		},
	)
	if err != nil {
		panic(err)
	}
	return s
}

// CreateTestTextBlock creates a rich_text block with a single text section
func CreateTestTextBlock(text string) Block {
	return Block{
		Type: "rich_text",
		Elements: []RichTextElement{
			{
				Type: "rich_text_section",
				Elements: []RichTextElement{
					{Type: "text", Text: text},
				},
			},
		},
	}
}

// CreateTestMessage creates a plain message with one text block
func CreateTestMessage(user, text string) *Message {
	return &Message{
		Type:   "message",
		Ts:     "1700000000.000100",
		User:   user,
		Blocks: []Block{CreateTestTextBlock(text)},
	}
}

// CreateTestDocument creates a rendered document with sample days
func CreateTestDocument(id, name string) *Document {
	return &Document{
		ID:   id,
		Name: name,
		Days: []Day{
			{
				Date:     "2023-01-05",
				Messages: []string{"09:00\nAlice: hello", "09:01\nBob: hi"},
			},
			{
				Date:     "2023-01-06",
				Messages: []string{"10:00\nAlice: bye"},
			},
		},
	}
}
