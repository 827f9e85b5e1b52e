package internal

import "strings"

const (
	// BotUserID is the reserved id of the built-in bot account. It resolves
	// without consulting the users table, so exports that predate the table
	// format still render.
	BotUserID = "USLACKBOT"

	botUserName = "slack bot"
)

// IdentityStore resolves opaque user, channel and conversation ids to
// display names. It is built once per archive and never mutated afterwards,
// so it is safe to share across concurrent rendering passes.
type IdentityStore struct {
	users    map[string]string
	channels map[string]string
	dms      map[string]string
}

// NewIdentityStore builds the store from the three identity tables of an
// export archive. DM labels are the member display names joined with " -- "
// in member order, which requires every member id to resolve.
func NewIdentityStore(users []User, channels []Channel, dms []DM) (*IdentityStore, error) {
	s := &IdentityStore{
		users:    make(map[string]string, len(users)),
		channels: make(map[string]string, len(channels)),
		dms:      make(map[string]string, len(dms)),
	}

	for _, u := range users {
		if u.Profile.RealName == "" {
			LogWarn("no display name for user %s", u.ID)
		}
		s.users[u.ID] = u.Profile.RealName
	}

	for _, c := range channels {
		s.channels[c.ID] = c.Name
	}

	for _, dm := range dms {
		names := make([]string, len(dm.Members))
		for i, member := range dm.Members {
			name, err := s.UserName(member)
			if err != nil {
				return nil, err
			}
			names[i] = name
		}
		s.dms[dm.ID] = strings.Join(names, " -- ")
	}

	return s, nil
}

// UserName resolves a user id to a display name. The reserved bot id always
// resolves to its fixed label; any other id absent from the table is an
// IdentityError.
func (s *IdentityStore) UserName(id string) (string, error) {
	if id == BotUserID {
		return botUserName, nil
	}
	name, ok := s.users[id]
	if !ok {
		return "", &IdentityError{Kind: "user", ID: id}
	}
	return name, nil
}

// ChannelName resolves a channel id to its name.
func (s *IdentityStore) ChannelName(id string) (string, error) {
	name, ok := s.channels[id]
	if !ok {
		return "", &IdentityError{Kind: "channel", ID: id}
	}
	return name, nil
}

// ConversationLabel returns the display label for a conversation directory:
// the synthesized member label for DMs, the id itself otherwise (channel
// directories are already named after the channel).
func (s *IdentityStore) ConversationLabel(id string) string {
	if label, ok := s.dms[id]; ok {
		return label
	}
	return id
}
