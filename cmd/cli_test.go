package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/tekoai-cli/internal/adapters/chatbotapi/chatbotapitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newCLIServer(t *testing.T) *chatbotapitest.Server {
	t.Helper()

	server := chatbotapitest.NewServer()
	t.Cleanup(server.Close)

	server.AddUser(chatbotapitest.User{ID: 42, Username: "ops", Email: "ops@example.com", Password: "secret", Plan: 2})
	server.SetBots("42", chatbotapitest.Bot{ID: 12, Name: "Sales"}, chatbotapitest.Bot{ID: 13, Name: "Support"})
	server.SetConversation("7", "12",
		chatbotapitest.Message{ID: 1, Role: "user", Message: "where is my order?", CreateAt: "2026-02-14T10:55:00Z", SessionID: "s-1"},
		chatbotapitest.Message{ID: 2, Role: "assistant", ResponseText: "Let me check.", CreateAt: "2026-02-14T10:56:00Z", SessionID: "s-1"},
	)

	t.Setenv("TK_API_BASE_URL", server.URL)
	t.Setenv("TK_NOTIFY_MODE", "terminal")
	return server
}

func signIn(t *testing.T, home string) {
	t.Helper()

	_, _, err := executeCLI(t, home, "login", "--email", "ops@example.com", "--password", "secret")
	require.NoError(t, err)
}

func TestLoginStoresSessionAndProfileShowsIt(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "login", "--email", "OPS@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as ops (Business plan)")

	info, err := os.Stat(filepath.Join(home, ".tekoai", "session.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	stdout, _, err = executeCLI(t, home, "profile")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ops@example.com")
	assert.Contains(t, stdout, "Business")
	assert.Contains(t, stdout, "none")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "ops@example.com", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid password")
}

func TestLogoutForgetsSession(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed out")

	_, _, err = executeCLI(t, home, "chat", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run tk login")
}

func TestSignupRequiresMatchingPasswords(t *testing.T) {
	server := newCLIServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "signup",
		"--username", "new",
		"--email", "new@example.com",
		"--password", "one",
		"--confirm-password", "two",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password and confirmation do not match")
	assert.Empty(t, server.SignUps)
}

func TestForgotSendsResetRequest(t *testing.T) {
	server := newCLIServer(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "forgot", "--email", "ops@example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Password reset email sent")
	assert.Equal(t, []string{"ops@example.com"}, server.ResetRequests)
}

func TestBotSelectMarksDefaultAndRejectsForeignBot(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "bot", "select", "13")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Default bot set to Support (13)")

	stdout, _, err = executeCLI(t, home, "bot", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* 13\tSupport")
	assert.Contains(t, stdout, "  12\tSales")

	_, _, err = executeCLI(t, home, "bot", "select", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot not found")
}

func TestChatListFallsBackToFirstBot(t *testing.T) {
	server := newCLIServer(t)
	server.SetChats("12",
		chatbotapitest.Chat{ID: 7, BotID: 12, GuestDisplayID: "Visitor-7", ResponseText: "Let me check.", CreateAt: "2026-02-14T10:56:00Z"},
		chatbotapitest.Chat{ID: 8, BotID: 12, GuestDisplayID: "Visitor-8", CreateAt: "2026-02-13T10:56:00Z"},
	)
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "chat", "list", "--search", "visitor-7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bot: Sales (12)  chats: 1")
	assert.Contains(t, stdout, "Visitor-7")
	assert.NotContains(t, stdout, "Visitor-8")
}

func TestChatListRejectsUnknownSort(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	_, _, err := executeCLI(t, home, "chat", "list", "--sort", "size")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sort order")
}

func TestChatShowRendersTranscript(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "chat", "show", "--guest", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Conversation with guest 7")
	assert.Contains(t, stdout, "where is my order?")
	assert.Contains(t, stdout, "Let me check.")
}

func TestChatShowYAMLOutput(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "chat", "show", "--guest", "7", "--output", "yaml")
	require.NoError(t, err)

	var export transcriptExport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &export))
	assert.Equal(t, "7", export.GuestID)
	assert.Equal(t, "12", export.BotID)
	require.Len(t, export.Messages, 2)
	assert.Equal(t, "user", export.Messages[0].Role)
	assert.Equal(t, "s-1", export.Messages[0].SessionID)
}

func TestChatShowJSONOutput(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "chat", "show", "--guest", "7", "-o", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"guest_id\": \"7\"")
}

func TestChatShowRejectsUnknownOutput(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	_, _, err := executeCLI(t, home, "chat", "show", "--guest", "7", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output")
}

func TestChatSendPostsMessageThenRecord(t *testing.T) {
	server := newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "chat", "send", "--guest", "7", "on", "it")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sent to guest 7 (session s-1)")

	require.Len(t, server.SentMessages(), 1)
	assert.Equal(t, chatbotapitest.SentMessage{GuestID: "7", Msg: "on it"}, server.SentMessages()[0])
	require.Len(t, server.MessageRecords(), 1)
	assert.Equal(t, "12", server.MessageRecords()[0].BotID)
	assert.Equal(t, "s-1", server.MessageRecords()[0].SessionID)
}

func TestChatSendRejectsBlankText(t *testing.T) {
	server := newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	_, _, err := executeCLI(t, home, "chat", "send", "--guest", "7", "   ")
	require.Error(t, err)
	assert.Empty(t, server.SentMessages())
}

func TestChatWatchPrintsNewMessagesAndNotifies(t *testing.T) {
	server := newCLIServer(t)
	t.Setenv("TK_WATCH_INTERVAL", "20ms")
	home := t.TempDir()
	signIn(t, home)

	go func() {
		time.Sleep(100 * time.Millisecond)
		server.AppendMessage("7", "12", chatbotapitest.Message{ID: 3, Role: "user", Message: "any update?", CreateAt: "2026-02-14T10:58:00Z", SessionID: "s-1"})
	}()

	stdout, stderr, err := executeCLI(t, home, "chat", "watch", "--guest", "7", "--duration", "600ms")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Watching guest 7 on bot 12")
	assert.Contains(t, stdout, "any update?")
	assert.Equal(t, 1, strings.Count(stdout, "where is my order?"))
	assert.Contains(t, stderr, "Chat Update")
	assert.Contains(t, stderr, "New message received in conversation!")
}

func TestChatWatchKeepsPollingWithNotificationsOff(t *testing.T) {
	server := newCLIServer(t)
	t.Setenv("TK_WATCH_INTERVAL", "20ms")
	t.Setenv("TK_NOTIFY_MODE", "none")
	home := t.TempDir()
	signIn(t, home)

	go func() {
		time.Sleep(100 * time.Millisecond)
		server.AppendMessage("7", "12", chatbotapitest.Message{ID: 3, Role: "user", Message: "hello?", SessionID: "s-1"})
	}()

	stdout, stderr, err := executeCLI(t, home, "chat", "watch", "--guest", "7", "--duration", "600ms")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Notifications unavailable")
	assert.NotContains(t, stderr, "Chat Update")
	assert.Contains(t, stdout, "hello?")
}

func TestChatWatchInteractiveSendsStdinLines(t *testing.T) {
	server := newCLIServer(t)
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLIWithInput(t, home, strings.NewReader("hello there\n\nsecond reply\n"),
		"chat", "watch", "--guest", "7", "--interactive", "--duration", "5s",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "Sent at"))

	sent := server.SentMessages()
	require.Len(t, sent, 2)
	assert.Equal(t, "hello there", sent[0].Msg)
	assert.Equal(t, "second reply", sent[1].Msg)
	assert.Len(t, server.MessageRecords(), 2)
}

func TestChatWatchRequiresSession(t *testing.T) {
	server := newCLIServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "chat", "watch", "--guest", "7", "--duration", "50ms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run tk login")
	assert.Zero(t, server.Requests("/chatbot/getGuestConversations"))
}

func TestDocListAndURL(t *testing.T) {
	server := newCLIServer(t)
	server.SetDocuments("12",
		chatbotapitest.Document{DocumentID: 3, Name: "pricing.docx", UploadTime: "2026-01-02T09:30:00Z"},
		chatbotapitest.Document{DocumentID: 4, Name: "faq.pdf", UploadTime: "2026-01-03T09:30:00Z"},
	)
	t.Setenv("TK_DOCUMENTS_BASE_URL", "https://docs.example.com/bot_document")
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "doc", "list", "--sort", "name")
	require.NoError(t, err)
	assert.Contains(t, stdout, "documents: 2")
	assert.Less(t, strings.Index(stdout, "faq.pdf"), strings.Index(stdout, "pricing.docx"))

	stdout, _, err = executeCLI(t, home, "doc", "url", "4")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/bot_document/12/4.pdf\n", stdout)

	_, _, err = executeCLI(t, home, "doc", "url", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document not found")
}

func TestDashboardJSONOutput(t *testing.T) {
	server := newCLIServer(t)
	server.SetCounts("13", chatbotapitest.Counts{Messages: 120, Guests: 14, ManualResponses: 3})
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "dashboard", "--bot", "13", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Messages\": 120")
	assert.Contains(t, stdout, "\"Guests\": 14")
	assert.Contains(t, stdout, "\"ManualResponses\": 3")
}

func TestDashboardRendersCounters(t *testing.T) {
	server := newCLIServer(t)
	server.SetCounts("12", chatbotapitest.Counts{Messages: 5, Guests: 2, ManualResponses: 1})
	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "signed in as ops  bots: 2")
	assert.Contains(t, stdout, "Sales (12)")
	assert.Contains(t, stdout, "manual responses:")
}

func TestUnsupportedNotifyModeFailsEveryCommand(t *testing.T) {
	newCLIServer(t)
	t.Setenv("TK_NOTIFY_MODE", "carrier-pigeon")

	_, _, err := executeCLI(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported notify.mode")
}

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, strings.NewReader(""), args...)
}

func executeCLIWithInput(t *testing.T, home string, input io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(input)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
