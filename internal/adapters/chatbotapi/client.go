package chatbotapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports"
)

const (
	DefaultBaseURL  = "https://app.tekoai.com/chatbotapi"
	maxResponseSize = 1 << 20
)

// Client talks to the TekoAI chatbot API. The zero HTTPClient falls back to http.DefaultClient.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var (
	_ ports.BotDirectory       = Client{}
	_ ports.ConversationSource = Client{}
	_ ports.ChatHistory        = Client{}
	_ ports.LiveChat           = Client{}
	_ ports.DocumentLibrary    = Client{}
	_ ports.Analytics          = Client{}
	_ ports.Accounts           = Client{}
)

func (c Client) ListBots(ctx context.Context, userID domain.UserID) ([]domain.Bot, error) {
	if strings.TrimSpace(string(userID)) == "" {
		return nil, errors.New("user id is required")
	}

	var payload []botPayload
	if err := c.getJSON(ctx, "list bots", "/chatbot/getChatbots/"+url.PathEscape(string(userID)), nil, &payload); err != nil {
		return nil, err
	}

	bots := make([]domain.Bot, 0, len(payload))
	for _, entry := range payload {
		bots = append(bots, entry.toDomain())
	}

	return bots, nil
}

func (c Client) GetGuestConversation(ctx context.Context, guestID domain.GuestID, botID domain.BotID) ([]domain.Message, error) {
	if strings.TrimSpace(string(guestID)) == "" {
		return nil, errors.New("guest id is required")
	}

	query := url.Values{}
	query.Set("guest_id", string(guestID))
	query.Set("bot_id", string(botID))

	var payload []messagePayload
	if err := c.getJSON(ctx, "list conversation messages", "/chatbot/getGuestConversations", query, &payload); err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(payload))
	for _, entry := range payload {
		messages = append(messages, entry.toDomain())
	}

	return messages, nil
}

func (c Client) ListBotChats(ctx context.Context, botID domain.BotID) ([]domain.ChatSummary, error) {
	var payload []chatSummaryPayload
	if err := c.getJSON(ctx, "list bot chats", "/chatbot/getBotChatsListV3/"+url.PathEscape(string(botID)), nil, &payload); err != nil {
		return nil, err
	}

	chats := make([]domain.ChatSummary, 0, len(payload))
	for _, entry := range payload {
		chats = append(chats, entry.toDomain())
	}

	return chats, nil
}

func (c Client) SendMessage(ctx context.Context, guestID domain.GuestID, text string) error {
	body := sendMessageRequest{GuestID: string(guestID), Msg: text}
	return c.postJSON(ctx, "send live message", "/liveChat/sendMessage", body, nil)
}

func (c Client) RecordMessage(ctx context.Context, record domain.MessageRecord) error {
	body := messageRecordRequest{
		BotID:        string(record.BotID),
		CreateAt:     record.CreatedAt.UTC().Format(time.RFC3339Nano),
		ResponseText: record.ResponseText,
		SessionID:    record.SessionID,
	}
	return c.postJSON(ctx, "record live message", "/liveChat/sendMessageRecord", body, nil)
}

func (c Client) ListDocuments(ctx context.Context, botID domain.BotID) ([]domain.Document, error) {
	var payload []documentPayload
	if err := c.getJSON(ctx, "list documents", "/training/getDocListById/"+url.PathEscape(string(botID)), nil, &payload); err != nil {
		return nil, err
	}

	documents := make([]domain.Document, 0, len(payload))
	for _, entry := range payload {
		documents = append(documents, entry.toDomain())
	}

	return documents, nil
}

func (c Client) MessageCount(ctx context.Context, botID domain.BotID) (int64, error) {
	return c.count(ctx, "message count", "/analysis/getMessageCountByBot/", botID)
}

func (c Client) GuestCount(ctx context.Context, botID domain.BotID) (int64, error) {
	return c.count(ctx, "guest count", "/analysis/getGuestCountByBot/", botID)
}

func (c Client) ManualResponseCount(ctx context.Context, botID domain.BotID) (int64, error) {
	return c.count(ctx, "manual response count", "/analysis/getManulResCountByBot/", botID)
}

func (c Client) count(ctx context.Context, op string, prefix string, botID domain.BotID) (int64, error) {
	var payload countPayload
	if err := c.getJSON(ctx, op, prefix+url.PathEscape(string(botID)), nil, &payload); err != nil {
		return 0, err
	}

	return payload.Count, nil
}

func (c Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if strings.TrimSpace(email) == "" {
		return domain.Session{}, errors.New("email is required")
	}

	body := loginRequest{Account: email, Password: password, IsEmail: true}

	var payload userPayload
	if err := c.postJSON(ctx, "sign in", "/users/loginByEmail", body, &payload); err != nil {
		return domain.Session{}, err
	}
	if strings.TrimSpace(string(payload.ID)) == "" {
		return domain.Session{}, &domain.FetchError{Op: "sign in", Err: errors.New("response missing user id")}
	}

	return payload.toDomain(), nil
}

func (c Client) SignUp(ctx context.Context, req domain.SignUpRequest) error {
	body := signUpRequest{
		Email:      req.Email,
		Password:   req.Password,
		RePassword: req.ConfirmPassword,
		Username:   req.Username,
	}
	return c.postJSON(ctx, "sign up", "/users/createClient", body, nil)
}

func (c Client) RequestPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}

	return c.getJSON(ctx, "request password reset", "/users/sendResetPswdEmail/"+url.PathEscape(email), nil, nil)
}

func (c Client) getJSON(ctx context.Context, op string, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out)
}

func (c Client) postJSON(ctx context.Context, op string, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", op, err)
	}

	return c.do(ctx, op, http.MethodPost, path, nil, encoded, out)
}

func (c Client) do(ctx context.Context, op string, method string, path string, query url.Values, body []byte, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path, query)
	if err != nil {
		return err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tk")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &domain.FetchError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &domain.FetchError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.FetchError{Op: op, Err: decodeAPIError(resp.StatusCode, data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.FetchError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func decodeAPIError(statusCode int, body []byte) error {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &domain.APIError{StatusCode: statusCode, Message: payload.Message}
	}

	return &domain.APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
}

func buildAPIURL(baseURL string, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint := strings.TrimRight(parsed.String(), "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	return endpoint, nil
}
