package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanName(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		want string
	}{
		{name: "free", plan: PlanFree, want: "Free"},
		{name: "personal", plan: PlanPersonal, want: "Personal"},
		{name: "business", plan: PlanBusiness, want: "Business"},
		{name: "enterprise", plan: PlanEnterprise, want: "Enterprise"},
		{name: "enterprise pro", plan: PlanEnterprisePro, want: "Enterprise Pro"},
		{name: "out of range", plan: Plan(9), want: "Unknown"},
		{name: "negative", plan: Plan(-1), want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plan.Name())
		})
	}
}

func TestSessionWithDefaultBotDoesNotMutateOriginal(t *testing.T) {
	original := Session{UserID: "42", Username: "amilia"}

	updated := original.WithDefaultBot("bot-7")

	assert.Equal(t, BotID("bot-7"), updated.DefaultBotID)
	assert.Empty(t, original.DefaultBotID)
	assert.False(t, updated.IsZero())
	assert.True(t, Session{UserID: "  "}.IsZero())
}

func TestConversationSnapshotIsDetachedFromSource(t *testing.T) {
	messages := []Message{{ID: "1", Role: RoleUser, Text: "hi", SessionID: "s-1"}}

	conversation := NewConversation("guest-1", "bot-1", messages)
	messages[0].Text = "mutated"

	assert.Equal(t, "hi", conversation.Messages[0].Text)
	assert.Equal(t, 1, conversation.Len())
}

func TestConversationSessionID(t *testing.T) {
	conversation := NewConversation("guest-1", "bot-1", []Message{
		{ID: "1", SessionID: "s-1"},
		{ID: "2", SessionID: "s-2"},
	})

	sessionID, err := conversation.SessionID()
	require.NoError(t, err)
	assert.Equal(t, "s-1", sessionID)

	_, err = NewConversation("guest-1", "bot-1", nil).SessionID()
	require.ErrorIs(t, err, ErrEmptyConversation)
}

func TestConversationSince(t *testing.T) {
	conversation := NewConversation("guest-1", "bot-1", []Message{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	assert.Equal(t, []Message{{ID: "2"}, {ID: "3"}}, conversation.Since(1))
	assert.Len(t, conversation.Since(-4), 3)
	assert.Nil(t, conversation.Since(3))
	assert.Nil(t, conversation.Since(10))
}

func TestChatSummaryPNGAvatarURL(t *testing.T) {
	summary := ChatSummary{AvatarURL: "https://api.dicebear.com/7.x/bottts/svg?seed=guest"}

	assert.Equal(t, "https://api.dicebear.com/7.x/bottts/png?seed=guest", summary.PNGAvatarURL())
}

func TestDocumentExtension(t *testing.T) {
	assert.Equal(t, "pdf", Document{Name: "pricing.v2.pdf"}.Extension())
	assert.Equal(t, "", Document{Name: "README"}.Extension())
}

func TestFindBot(t *testing.T) {
	bots := []Bot{{ID: "1", Name: "Sales"}, {ID: "2", Name: "Support"}}

	bot, ok := FindBot(bots, "2")
	require.True(t, ok)
	assert.Equal(t, "Support", bot.Name)

	_, ok = FindBot(bots, "3")
	assert.False(t, ok)
}

func TestFetchErrorUnwraps(t *testing.T) {
	inner := &APIError{StatusCode: 502}
	err := &FetchError{Op: "list bots", Err: inner}

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Equal(t, "fetch list bots: status 502", err.Error())
	assert.Equal(t, "status 401: bad password", (&APIError{StatusCode: 401, Message: "bad password"}).Error())
}
