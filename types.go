package client

import "encoding/json"

// Token is the opaque bearer credential returned by login and attached to
// every authenticated request.
type Token string

// Identifier types for the server's records. They are opaque strings; the
// client percent-encodes them when they appear in request paths.
type (
	TeamID    string
	ChannelID string
	UserID    string
	PostID    string
)

// LoginRequest carries the credentials for [Client.Login]. LoginID is a
// username or email address. MFAToken is the one-time code for accounts
// with multi-factor authentication enabled.
type LoginRequest struct {
	Name     string `json:"name,omitempty"`
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
	MFAToken string `json:"token,omitempty"`
}

type User struct {
	ID        UserID `json:"id"`
	CreateAt  int64  `json:"create_at"`
	UpdateAt  int64  `json:"update_at"`
	DeleteAt  int64  `json:"delete_at"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Roles     string `json:"roles"`
	Locale    string `json:"locale"`
}

type Team struct {
	ID          TeamID `json:"id"`
	CreateAt    int64  `json:"create_at"`
	UpdateAt    int64  `json:"update_at"`
	DeleteAt    int64  `json:"delete_at"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Type        string `json:"type"`
}

type Channel struct {
	ID            ChannelID `json:"id"`
	CreateAt      int64     `json:"create_at"`
	UpdateAt      int64     `json:"update_at"`
	DeleteAt      int64     `json:"delete_at"`
	TeamID        TeamID    `json:"team_id"`
	Type          string    `json:"type"`
	DisplayName   string    `json:"display_name"`
	Name          string    `json:"name"`
	Header        string    `json:"header"`
	Purpose       string    `json:"purpose"`
	LastPostAt    int64     `json:"last_post_at"`
	TotalMsgCount int64     `json:"total_msg_count"`
	CreatorID     UserID    `json:"creator_id"`
}

// ChannelMember is the requesting user's membership record for a channel.
type ChannelMember struct {
	ChannelID    ChannelID `json:"channel_id"`
	UserID       UserID    `json:"user_id"`
	Roles        string    `json:"roles"`
	LastViewedAt int64     `json:"last_viewed_at"`
	MsgCount     int64     `json:"msg_count"`
	MentionCount int64     `json:"mention_count"`
	LastUpdateAt int64     `json:"last_update_at"`
}

// Channels is the channel listing for a team: the channels the user can
// see plus their membership records, keyed by channel.
type Channels struct {
	Channels []Channel                   `json:"channels"`
	Members  map[ChannelID]ChannelMember `json:"members"`
}

// ChannelData pairs a channel with the caller's membership, when the
// server included one.
type ChannelData struct {
	Channel Channel
	Member  *ChannelMember
}

// ChannelPayload is the wire shape of a single-channel response. The
// server answers either an envelope carrying the channel together with
// the caller's membership, or a bare channel object for channels the
// caller has no membership in (direct channels looked up by id). Both
// alternatives are handled here; callers unwrap via [Client.GetChannel].
type ChannelPayload struct {
	Channel Channel
	Member  *ChannelMember
}

func (p *ChannelPayload) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Channel *Channel       `json:"channel"`
		Member  *ChannelMember `json:"member"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Channel != nil {
		p.Channel = *envelope.Channel
		p.Member = envelope.Member
		return nil
	}

	var ch Channel
	if err := json.Unmarshal(data, &ch); err != nil {
		return err
	}
	*p = ChannelPayload{Channel: ch}
	return nil
}

type Post struct {
	ID            PostID         `json:"id"`
	CreateAt      int64          `json:"create_at"`
	UpdateAt      int64          `json:"update_at"`
	DeleteAt      int64          `json:"delete_at"`
	UserID        UserID         `json:"user_id"`
	ChannelID     ChannelID      `json:"channel_id"`
	RootID        PostID         `json:"root_id"`
	ParentID      PostID         `json:"parent_id"`
	Message       string         `json:"message"`
	Type          string         `json:"type"`
	Hashtags      string         `json:"hashtags"`
	PendingPostID string         `json:"pending_post_id"`
	Props         map[string]any `json:"props,omitempty"`
}

// PendingPost is the payload for [Client.CreatePost]. PendingPostID is a
// client-generated idempotency key; when left empty the client fills it
// with a fresh UUID.
type PendingPost struct {
	ChannelID     ChannelID `json:"channel_id"`
	Message       string    `json:"message"`
	UserID        UserID    `json:"user_id,omitempty"`
	RootID        PostID    `json:"root_id,omitempty"`
	ParentID      PostID    `json:"parent_id,omitempty"`
	PendingPostID string    `json:"pending_post_id"`
	CreateAt      int64     `json:"create_at,omitempty"`
	Filenames     []string  `json:"filenames,omitempty"`
}

// Posts is one page of a channel's history: the posts keyed by id, plus
// the display order, newest first.
type Posts struct {
	Order []PostID        `json:"order"`
	Posts map[PostID]Post `json:"posts"`
}

type TeamMember struct {
	TeamID TeamID `json:"team_id"`
	UserID UserID `json:"user_id"`
	Roles  string `json:"roles"`
}

// UserProfile is the reduced user record returned by the profile listing
// endpoints.
type UserProfile struct {
	ID        UserID `json:"id"`
	CreateAt  int64  `json:"create_at"`
	UpdateAt  int64  `json:"update_at"`
	DeleteAt  int64  `json:"delete_at"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Roles     string `json:"roles"`
}

// InitialLoad is the bootstrap bundle the server assembles for a fresh
// session: the user, their teams and memberships, and the client
// configuration advertised by the server.
type InitialLoad struct {
	User           *User                  `json:"user"`
	Teams          []Team                 `json:"teams"`
	TeamMembers    []TeamMember           `json:"team_members"`
	DirectProfiles map[UserID]UserProfile `json:"direct_profiles"`
	Preferences    []map[string]any       `json:"preferences"`
	ClientCfg      map[string]string      `json:"client_cfg"`
	NoAccounts     bool                   `json:"no_accounts"`
}
