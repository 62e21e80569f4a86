package chatbotapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/tekoai-cli/internal/adapters/chatbotapi/chatbotapitest"
	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeClient(t *testing.T) (Client, *chatbotapitest.Server) {
	t.Helper()

	server := chatbotapitest.NewServer()
	t.Cleanup(server.Close)

	return Client{BaseURL: server.URL, HTTPClient: server.Client()}, server
}

func TestLoginReturnsSessionForValidCredentials(t *testing.T) {
	t.Parallel()

	client, server := newFakeClient(t)
	server.AddUser(chatbotapitest.User{ID: 42, Username: "ops", Email: "ops@example.com", Password: "secret", Plan: 2})

	session, err := client.Login(context.Background(), "ops@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("42"), session.UserID)
	assert.Equal(t, "ops", session.Username)
	assert.Equal(t, domain.PlanBusiness, session.Plan)
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	client, server := newFakeClient(t)
	server.AddUser(chatbotapitest.User{ID: 42, Email: "ops@example.com", Password: "secret"})

	_, err := client.Login(context.Background(), "ops@example.com", "wrong")
	require.Error(t, err)

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid password", apiErr.Message)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "sign in", fetchErr.Op)
}

func TestListBotsAcceptsNumericAndStringIDs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/chatbotapi/chatbot/getChatbots/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":12,"name":"Sales"},{"id":"b-7","name":"Support"}]`))
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL + "/chatbotapi/", HTTPClient: server.Client()}

	bots, err := client.ListBots(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, []domain.Bot{{ID: "12", Name: "Sales"}, {ID: "b-7", Name: "Support"}}, bots)
}

func TestGetGuestConversationMapsRolesAndText(t *testing.T) {
	t.Parallel()

	client, server := newFakeClient(t)
	server.SetConversation("7", "12",
		chatbotapitest.Message{ID: 1, Role: "user", Message: "hello", CreateAt: "2024-05-01T10:00:00Z", SessionID: "s-1"},
		chatbotapitest.Message{ID: 2, Role: "assistant", ResponseText: "hi there", CreateAt: "2024-05-01 10:00:05", SessionID: "s-1"},
	)

	messages, err := client.GetGuestConversation(context.Background(), "7", "12")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, domain.RoleUser, messages[0].Role)
	assert.Equal(t, "hello", messages[0].Text)
	assert.Equal(t, "s-1", messages[0].SessionID)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), messages[0].Timestamp)

	assert.Equal(t, domain.RoleAssistant, messages[1].Role)
	assert.Equal(t, "hi there", messages[1].Text)
	assert.Equal(t, "2", messages[1].ID)
}

func TestGetGuestConversationWrapsServerFailure(t *testing.T) {
	t.Parallel()

	client, server := newFakeClient(t)
	server.FailNext("/chatbot/getGuestConversations", 1)

	_, err := client.GetGuestConversation(context.Background(), "7", "12")
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "list conversation messages", fetchErr.Op)

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestGetGuestConversationWrapsDecodeFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.GetGuestConversation(context.Background(), "7", "12")
	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, err.Error(), "decode response")
}

func TestRequestTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 20 * time.Millisecond}

	_, err := client.ListBotChats(context.Background(), "12")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch list bot chats")
}

func TestListBotChatsAndDocuments(t *testing.T) {
	t.Parallel()

	client, server := newFakeClient(t)
	server.SetChats("12", chatbotapitest.Chat{ID: 7, BotID: 12, GuestDisplayID: "Guest-7", Avatar: "https://avatars.example/svg?seed=7", ResponseText: "bye", CreateAt: "2024-05-01T10:00:00Z"})
	server.SetDocuments("12", chatbotapitest.Document{DocumentID: 3, Name: "faq.pdf", UploadTime: "2024-04-01T08:00:00Z"})

	chats, err := client.ListBotChats(context.Background(), "12")
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, domain.GuestID("7"), chats[0].GuestID)
	assert.Equal(t, domain.BotID("12"), chats[0].BotID)
	assert.Equal(t, "Guest-7", chats[0].GuestDisplayID)
	assert.Equal(t, "bye", chats[0].LastResponse)

	documents, err := client.ListDocuments(context.Background(), "12")
	require.NoError(t, err)
	require.Len(t, documents, 1)
	assert.Equal(t, "3", documents[0].ID)
	assert.Equal(t, "pdf", documents[0].Extension())
}

func TestCountsReadCountField(t *testing.T) {
	t.Parallel()

	client, server := newFakeClient(t)
	server.SetCounts("12", chatbotapitest.Counts{Messages: 120, Guests: 14, ManualResponses: 3})

	messages, err := client.MessageCount(context.Background(), "12")
	require.NoError(t, err)
	guests, err := client.GuestCount(context.Background(), "12")
	require.NoError(t, err)
	manual, err := client.ManualResponseCount(context.Background(), "12")
	require.NoError(t, err)

	assert.Equal(t, int64(120), messages)
	assert.Equal(t, int64(14), guests)
	assert.Equal(t, int64(3), manual)
}

func TestCountAcceptsStringCount(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":"57"}`))
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}

	count, err := client.GuestCount(context.Background(), "12")
	require.NoError(t, err)
	assert.Equal(t, int64(57), count)
}

func TestSendMessageAndRecordPostExpectedBodies(t *testing.T) {
	t.Parallel()

	client, server := newFakeClient(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, client.SendMessage(context.Background(), "7", "on it"))
	require.NoError(t, client.RecordMessage(context.Background(), domain.MessageRecord{
		BotID:        "12",
		SessionID:    "s-1",
		ResponseText: "on it",
		CreatedAt:    createdAt,
	}))

	assert.Equal(t, []chatbotapitest.SentMessage{{GuestID: "7", Msg: "on it"}}, server.SentMessages())
	assert.Equal(t, []chatbotapitest.MessageRecord{{
		BotID:        "12",
		CreateAt:     "2024-05-01T10:00:00Z",
		ResponseText: "on it",
		SessionID:    "s-1",
	}}, server.MessageRecords())
}

func TestSignUpAndPasswordReset(t *testing.T) {
	t.Parallel()

	client, server := newFakeClient(t)

	err := client.SignUp(context.Background(), domain.SignUpRequest{
		Username:        "ops",
		Email:           "ops@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	})
	require.NoError(t, err)
	require.NoError(t, client.RequestPasswordReset(context.Background(), "ops@example.com"))

	require.Len(t, server.SignUps, 1)
	assert.Equal(t, "secret", server.SignUps[0].RePassword)
	assert.Equal(t, []string{"ops@example.com"}, server.ResetRequests)
}

func TestBuildAPIURLValidatesBase(t *testing.T) {
	t.Parallel()

	_, err := buildAPIURL("", "/x", nil)
	require.Error(t, err)

	_, err = buildAPIURL("ftp://example.com", "/x", nil)
	require.Error(t, err)

	endpoint, err := buildAPIURL("https://app.example.com/chatbotapi/", "/chatbot/getChatbots/1", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com/chatbotapi/chatbot/getChatbots/1", endpoint)
}
