// Package chatbotapitest provides an in-memory TekoAI chatbot API for tests.
package chatbotapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

type User struct {
	ID       int64
	Username string
	Email    string
	Password string
	Plan     int
}

type Bot struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Message struct {
	ID           int64  `json:"id"`
	Role         string `json:"role"`
	Message      string `json:"message,omitempty"`
	ResponseText string `json:"response_text,omitempty"`
	CreateAt     string `json:"create_at"`
	SessionID    string `json:"session_id"`
}

type Chat struct {
	ID             int64  `json:"id"`
	BotID          int64  `json:"bot_id"`
	GuestDisplayID string `json:"guest_display_id"`
	Avatar         string `json:"avatar"`
	ResponseText   string `json:"response_text"`
	CreateAt       string `json:"create_at"`
}

type Document struct {
	DocumentID int64  `json:"document_id"`
	Name       string `json:"name"`
	UploadTime string `json:"upload_time"`
}

type Counts struct {
	Messages        int64
	Guests          int64
	ManualResponses int64
}

type SentMessage struct {
	GuestID string `json:"guestId"`
	Msg     string `json:"msg"`
}

type MessageRecord struct {
	BotID        string `json:"bot_id"`
	CreateAt     string `json:"create_at"`
	ResponseText string `json:"response_text"`
	SessionID    string `json:"session_id"`
}

type SignUp struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
	Username   string `json:"username"`
}

// Server is a mux-routed fake of the chatbot API. Register fixtures before issuing requests.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	users         []User
	bots          map[string][]Bot
	conversations map[string][]Message
	chats         map[string][]Chat
	documents     map[string][]Document
	counts        map[string]Counts
	failures      map[string]int
	requests      map[string]int

	Sent          []SentMessage
	Records       []MessageRecord
	SignUps       []SignUp
	ResetRequests []string
}

func NewServer() *Server {
	s := &Server{
		bots:          map[string][]Bot{},
		conversations: map[string][]Message{},
		chats:         map[string][]Chat{},
		documents:     map[string][]Document{},
		counts:        map[string]Counts{},
		failures:      map[string]int{},
		requests:      map[string]int{},
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.countRequests)
	r.Use(s.injectFailures)

	r.HandleFunc("/users/loginByEmail", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/users/createClient", s.handleSignUp).Methods(http.MethodPost)
	r.HandleFunc("/users/sendResetPswdEmail/{email}", s.handleReset).Methods(http.MethodGet)
	r.HandleFunc("/chatbot/getChatbots/{userId}", s.handleBots).Methods(http.MethodGet)
	r.HandleFunc("/chatbot/getGuestConversations", s.handleConversation).Methods(http.MethodGet)
	r.HandleFunc("/chatbot/getBotChatsListV3/{botId}", s.handleChats).Methods(http.MethodGet)
	r.HandleFunc("/training/getDocListById/{botId}", s.handleDocuments).Methods(http.MethodGet)
	r.HandleFunc("/analysis/getMessageCountByBot/{botId}", s.handleCount(func(c Counts) int64 { return c.Messages })).Methods(http.MethodGet)
	r.HandleFunc("/analysis/getGuestCountByBot/{botId}", s.handleCount(func(c Counts) int64 { return c.Guests })).Methods(http.MethodGet)
	r.HandleFunc("/analysis/getManulResCountByBot/{botId}", s.handleCount(func(c Counts) int64 { return c.ManualResponses })).Methods(http.MethodGet)
	r.HandleFunc("/liveChat/sendMessage", s.handleSendMessage).Methods(http.MethodPost)
	r.HandleFunc("/liveChat/sendMessageRecord", s.handleRecord).Methods(http.MethodPost)

	return r
}

func (s *Server) AddUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

func (s *Server) SetBots(userID string, bots ...Bot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bots[userID] = append([]Bot(nil), bots...)
}

func (s *Server) SetConversation(guestID, botID string, messages ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conversationKey(guestID, botID)] = append([]Message(nil), messages...)
}

func (s *Server) AppendMessage(guestID, botID string, message Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := conversationKey(guestID, botID)
	s.conversations[key] = append(s.conversations[key], message)
}

func (s *Server) SetChats(botID string, chats ...Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[botID] = append([]Chat(nil), chats...)
}

func (s *Server) SetDocuments(botID string, documents ...Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[botID] = append([]Document(nil), documents...)
}

func (s *Server) SetCounts(botID string, counts Counts) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[botID] = counts
}

// FailNext makes the next n requests whose path starts with prefix answer 500.
func (s *Server) FailNext(prefix string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[prefix] += n
}

// Requests returns how many requests hit paths starting with prefix.
func (s *Server) Requests(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for path, count := range s.requests {
		if strings.HasPrefix(path, prefix) {
			total += count
		}
	}
	return total
}

func (s *Server) SentMessages() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SentMessage(nil), s.Sent...)
}

func (s *Server) MessageRecords() []MessageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]MessageRecord(nil), s.Records...)
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.URL.Path]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		failed := false
		for prefix, remaining := range s.failures {
			if remaining > 0 && strings.HasPrefix(r.URL.Path, prefix) {
				s.failures[prefix] = remaining - 1
				failed = true
				break
			}
		}
		s.mu.Unlock()

		if failed {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
		Account  string `json:"account"`
		IsEmail  bool   `json:"isEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, req.Account) {
			if user.Password != req.Password {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid password"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"plan":     user.Plan,
			})
			return
		}
	}

	writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUp
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, req.Email) {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "Email already registered"})
			return
		}
	}
	s.SignUps = append(s.SignUps, req)
	writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ResetRequests = append(s.ResetRequests, mux.Vars(r)["email"])
	writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}

func (s *Server) handleBots(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	bots := append([]Bot{}, s.bots[mux.Vars(r)["userId"]]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, bots)
}

func (s *Server) handleConversation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	s.mu.Lock()
	messages := append([]Message{}, s.conversations[conversationKey(query.Get("guest_id"), query.Get("bot_id"))]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, messages)
}

func (s *Server) handleChats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	chats := append([]Chat{}, s.chats[mux.Vars(r)["botId"]]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, chats)
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	documents := append([]Document{}, s.documents[mux.Vars(r)["botId"]]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, documents)
}

func (s *Server) handleCount(pick func(Counts) int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		counts := s.counts[mux.Vars(r)["botId"]]
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]int64{"count": pick(counts)})
	}
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req SentMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request"})
		return
	}

	s.mu.Lock()
	s.Sent = append(s.Sent, req)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": "sent"})
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	var req MessageRecord
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request"})
		return
	}

	s.mu.Lock()
	s.Records = append(s.Records, req)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": "recorded"})
}

func conversationKey(guestID, botID string) string {
	return guestID + "|" + botID
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
