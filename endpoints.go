package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// GetInitialLoad fetches the session bootstrap bundle: the current user,
// their teams and memberships, and the server's client configuration.
func (c *Client) GetInitialLoad(ctx context.Context) (*InitialLoad, error) {
	return doRequest[InitialLoad](ctx, c, http.MethodGet, apiPath("users", "initial_load"), nil)
}

// GetTeams lists every team visible to the user, keyed by team id.
func (c *Client) GetTeams(ctx context.Context) (map[TeamID]Team, error) {
	teams, err := doRequest[map[TeamID]Team](ctx, c, http.MethodGet, apiPath("teams", "all"), nil)
	if err != nil {
		return nil, err
	}
	return *teams, nil
}

// GetChannels lists the team's channels together with the user's
// membership records.
func (c *Client) GetChannels(ctx context.Context, team TeamID) (*Channels, error) {
	path := apiPath("teams", string(team), "channels") + "/"
	return doRequest[Channels](ctx, c, http.MethodGet, path, nil)
}

// GetChannel fetches one channel. The server may answer with a bare
// channel or a channel/member envelope; both unwrap to a [ChannelData].
func (c *Client) GetChannel(ctx context.Context, team TeamID, channel ChannelID) (*ChannelData, error) {
	path := apiPath("teams", string(team), "channels", string(channel)) + "/"
	return withRequest(ctx, c, http.MethodGet, path, nil, func(payload *ChannelPayload) (*ChannelData, error) {
		return &ChannelData{Channel: payload.Channel, Member: payload.Member}, nil
	})
}

// UpdateLastViewedAt marks the channel read up to now. The call is
// idempotent: repeating it changes nothing the caller can observe.
func (c *Client) UpdateLastViewedAt(ctx context.Context, team TeamID, channel ChannelID) error {
	path := apiPath("teams", string(team), "channels", string(channel), "update_last_viewed_at")
	return c.postRaw(ctx, path, []byte{})
}

// GetPosts fetches one page of the channel's history, newest first,
// starting offset posts back and returning at most limit posts.
func (c *Client) GetPosts(ctx context.Context, team TeamID, channel ChannelID, offset, limit int) (*Posts, error) {
	path := apiPath("teams", string(team), "channels", string(channel),
		"posts", "page", strconv.Itoa(offset), strconv.Itoa(limit))
	return doRequest[Posts](ctx, c, http.MethodGet, path, nil)
}

// CreatePost posts a message to the channel. The post's channel id is
// forced to the addressed channel, and an empty PendingPostID is filled
// with a fresh UUID so the server can deduplicate resends.
func (c *Client) CreatePost(ctx context.Context, team TeamID, channel ChannelID, post PendingPost) (*Post, error) {
	post.ChannelID = channel
	if post.PendingPostID == "" {
		post.PendingPostID = uuid.NewString()
	}

	path := apiPath("teams", string(team), "channels", string(channel), "posts", "create")
	return doRequest[Post](ctx, c, http.MethodPost, path, post)
}

// GetUser fetches a user record by id.
func (c *Client) GetUser(ctx context.Context, user UserID) (*User, error) {
	return doRequest[User](ctx, c, http.MethodGet, apiPath("users", string(user), "get"), nil)
}

// GetMe fetches the authenticated user's own record.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	return doRequest[User](ctx, c, http.MethodGet, apiPath("users", "me"), nil)
}

// GetTeamMembers lists the team's membership records.
func (c *Client) GetTeamMembers(ctx context.Context, team TeamID) ([]TeamMember, error) {
	members, err := doRequest[[]TeamMember](ctx, c, http.MethodGet, apiPath("teams", "members", string(team)), nil)
	if err != nil {
		return nil, err
	}
	return *members, nil
}

// GetProfiles lists the profiles of the team's members, keyed by user id.
func (c *Client) GetProfiles(ctx context.Context, team TeamID) (map[UserID]UserProfile, error) {
	return c.getProfileMap(ctx, apiPath("users", "profiles", string(team)))
}

// GetProfilesForDMList lists the profiles eligible for the user's direct
// message list in the given team, keyed by user id.
func (c *Client) GetProfilesForDMList(ctx context.Context, team TeamID) (map[UserID]UserProfile, error) {
	return c.getProfileMap(ctx, apiPath("users", "profiles_for_dm_list", string(team)))
}

func (c *Client) getProfileMap(ctx context.Context, path string) (map[UserID]UserProfile, error) {
	profiles, err := doRequest[map[UserID]UserProfile](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return *profiles, nil
}
