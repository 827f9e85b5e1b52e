package internal

import (
	"errors"
	"testing"
)

func TestIdentityStore_UserName(t *testing.T) {
	s := CreateTestIdentityStore()

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{name: "known user", id: "U1", want: "Alice"},
		{name: "another known user", id: "U2", want: "Bob"},
		{name: "reserved bot id", id: BotUserID, want: "slack bot"},
		{name: "unknown user", id: "U404", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.UserName(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UserName(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("UserName(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestIdentityStore_BotIDIgnoresBackingStore(t *testing.T) {
	// Even a store built with no users at all resolves the reserved id.
	s, err := NewIdentityStore(nil, nil, nil)
	if err != nil {
		t.Fatalf("NewIdentityStore() error = %v", err)
	}
	got, err := s.UserName(BotUserID)
	if err != nil {
		t.Fatalf("UserName(bot) error = %v", err)
	}
	if got != "slack bot" {
		t.Errorf("UserName(bot) = %q, want %q", got, "slack bot")
	}
}

func TestIdentityStore_LookupIdempotent(t *testing.T) {
	s := CreateTestIdentityStore()

	first, err := s.UserName("U1")
	if err != nil {
		t.Fatalf("UserName() error = %v", err)
	}
	second, err := s.UserName("U1")
	if err != nil {
		t.Fatalf("UserName() error = %v", err)
	}
	if first != second {
		t.Errorf("UserName() not idempotent: %q vs %q", first, second)
	}
}

func TestIdentityStore_ChannelName(t *testing.T) {
	s := CreateTestIdentityStore()

	got, err := s.ChannelName("C1")
	if err != nil {
		t.Fatalf("ChannelName() error = %v", err)
	}
	if got != "general" {
		t.Errorf("ChannelName() = %q, want %q", got, "general")
	}

	_, err = s.ChannelName("C404")
	var idErr *IdentityError
	if !errors.As(err, &idErr) {
		t.Fatalf("ChannelName() error = %v, want *IdentityError", err)
	}
	if idErr.Kind != "channel" || idErr.ID != "C404" {
		t.Errorf("IdentityError = %+v, want channel / C404", idErr)
	}
}

func TestIdentityStore_ConversationLabel(t *testing.T) {
	s := CreateTestIdentityStore()

	if got := s.ConversationLabel("D1"); got != "Alice -- Bob" {
		t.Errorf("ConversationLabel(D1) = %q, want %q", got, "Alice -- Bob")
	}
	// Non-DM conversations keep their directory id as the label.
	if got := s.ConversationLabel("general"); got != "general" {
		t.Errorf("ConversationLabel(general) = %q, want %q", got, "general")
	}
}

func TestNewIdentityStore_DMLabelOrder(t *testing.T) {
	s, err := NewIdentityStore(
		[]User{
			{ID: "U1", Profile: UserProfile{RealName: "Alice"}},
			{ID: "U2", Profile: UserProfile{RealName: "Bob"}},
			{ID: "U3", Profile: UserProfile{RealName: "Carol"}},
		},
		nil,
		[]DM{{ID: "D9", Members: []string{"U3", "U1", "U2"}}},
	)
	if err != nil {
		t.Fatalf("NewIdentityStore() error = %v", err)
	}
	if got := s.ConversationLabel("D9"); got != "Carol -- Alice -- Bob" {
		t.Errorf("ConversationLabel() = %q, member order not preserved", got)
	}
}

func TestNewIdentityStore_DMWithUnknownMember(t *testing.T) {
	_, err := NewIdentityStore(
		[]User{{ID: "U1", Profile: UserProfile{RealName: "Alice"}}},
		nil,
		[]DM{{ID: "D1", Members: []string{"U1", "U404"}}},
	)
	var idErr *IdentityError
	if !errors.As(err, &idErr) {
		t.Fatalf("NewIdentityStore() error = %v, want *IdentityError", err)
	}
}

func TestNewIdentityStore_DMWithBotMember(t *testing.T) {
	s, err := NewIdentityStore(
		[]User{{ID: "U1", Profile: UserProfile{RealName: "Alice"}}},
		nil,
		[]DM{{ID: "D1", Members: []string{"U1", BotUserID}}},
	)
	if err != nil {
		t.Fatalf("NewIdentityStore() error = %v", err)
	}
	if got := s.ConversationLabel("D1"); got != "Alice -- slack bot" {
		t.Errorf("ConversationLabel() = %q, want %q", got, "Alice -- slack bot")
	}
}
