package client

import (
	"encoding/json"
	"testing"
)

func TestChannelPayload_UnmarshalEnvelope(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"channel": {"id": "c1", "name": "town-square", "team_id": "t1"},
		"member": {"channel_id": "c1", "user_id": "u1", "mention_count": 3}
	}`)

	var payload ChannelPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.Channel.ID != "c1" || payload.Channel.Name != "town-square" {
		t.Errorf("unexpected channel: %+v", payload.Channel)
	}

	if payload.Member == nil || payload.Member.MentionCount != 3 {
		t.Errorf("unexpected member: %+v", payload.Member)
	}
}

func TestChannelPayload_UnmarshalBareChannel(t *testing.T) {
	t.Parallel()

	data := []byte(`{"id": "c9", "name": "dm", "type": "D"}`)

	var payload ChannelPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.Channel.ID != "c9" || payload.Channel.Type != "D" {
		t.Errorf("unexpected channel: %+v", payload.Channel)
	}

	if payload.Member != nil {
		t.Errorf("expected no member, got %+v", payload.Member)
	}
}

func TestChannelPayload_UnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var payload ChannelPayload
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &payload); err == nil {
		t.Fatal("expected error for non-object payload")
	}
}
