package authtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"signup/internal/domain"
)

// Account is what the server remembers about a registration.
type Account struct {
	ID        int
	Email     string
	FirstName string
	LastName  string
}

// Response is a canned answer installed with WithResponse.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// Option customises a Server.
type Option func(*Server)

// WithGate makes every request wait until gate is closed (or receives) before
// it is answered. Entered is signalled as each request arrives.
func WithGate(gate <-chan struct{}) Option {
	return func(s *Server) { s.gate = gate }
}

// WithResponse answers every request with r instead of registering.
func WithResponse(r Response) Option {
	return func(s *Server) { s.canned = &r }
}

type Server struct {
	*httptest.Server

	// Entered receives one value per request as it arrives.
	Entered chan struct{}

	gate   <-chan struct{}
	canned *Response

	mu       sync.RWMutex
	accounts map[string]Account
	nextID   int
	requests []*http.Request
}

// NewServer starts a server that is closed when t finishes.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()
	s := &Server{
		Entered:  make(chan struct{}, 16),
		accounts: make(map[string]Account),
		nextID:   1,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// Requests returns how many registration requests have been received.
func (s *Server) Requests() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requests)
}

// LastRequest returns the most recent request's headers, or nil.
func (s *Server) LastRequest() *http.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

// Account looks up a registered account by email.
func (s *Server) Account(email string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[email]
	return a, ok
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(r.Context()))
	s.mu.Unlock()

	select {
	case s.Entered <- struct{}{}:
	default:
	}
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-r.Context().Done():
			return
		}
	}

	if s.canned != nil {
		if s.canned.ContentType != "" {
			w.Header().Set("Content-Type", s.canned.ContentType)
		}
		w.WriteHeader(s.canned.Status)
		_, _ = w.Write([]byte(s.canned.Body))
		return
	}

	var req domain.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, []fieldProblem{{Loc: []string{"body"}, Msg: "Invalid JSON body", Type: "json_invalid"}})
		return
	}
	if problems := checkRequest(req); len(problems) > 0 {
		writeDetail(w, http.StatusUnprocessableEntity, problems)
		return
	}
	if utf8.RuneCountInString(req.Password) < 8 {
		writeDetail(w, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}

	s.mu.Lock()
	if _, exists := s.accounts[req.Email]; exists {
		s.mu.Unlock()
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	account := Account{ID: s.nextID, Email: req.Email, FirstName: req.FirstName, LastName: req.LastName}
	s.accounts[req.Email] = account
	s.nextID++
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User registered successfully",
		"user_id": account.ID,
	})
}

type fieldProblem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func checkRequest(req domain.RegistrationRequest) []fieldProblem {
	var problems []fieldProblem
	missing := func(name, value string) {
		if value == "" {
			problems = append(problems, fieldProblem{Loc: []string{"body", name}, Msg: "Field required", Type: "missing"})
		}
	}
	missing("email", req.Email)
	missing("password", req.Password)
	missing("first_name", req.FirstName)
	missing("last_name", req.LastName)
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		problems = append(problems, fieldProblem{
			Loc:  []string{"body", "email"},
			Msg:  "value is not a valid email address",
			Type: "value_error",
		})
	}
	return problems
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
