package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"recordsvc/internal/shared"

	"github.com/google/uuid"
)

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

type API struct {
	Store   Store
	Verbose bool
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, shared.ErrorDetail{Detail: detail})
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, 2<<20))
}

// Handler builds the route table. "/user/" must stay a prefix route so
// "/user" (create) wins for the exact path.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", a.CreateUser)
	mux.HandleFunc("/user/", a.GetUser)
	mux.HandleFunc("/", a.Health)
	return a.withRequestID(mux)
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeDetail(w, 404, "Not found")
		return
	}
	if r.Method != http.MethodGet {
		writeDetail(w, 405, "method not allowed")
		return
	}
	writeJSON(w, 200, shared.HealthResponse{Status: "healthy"})
}

func (a *API) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, 405, "method not allowed")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/user/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeDetail(w, 422, "userid must be an integer")
		return
	}

	rec, err := a.Store.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeDetail(w, 404, "User not found")
			return
		}
		a.internalError(w, "get user", err)
		return
	}

	writeJSON(w, 200, shared.UserPayload{
		Name:    rec.Name,
		Date:    rec.Date,
		Service: rec.Service,
	})
}

func (a *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, 405, "method not allowed")
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeDetail(w, 400, "could not read body")
		return
	}

	var req shared.CreateUserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			writeDetail(w, 422, typeErr.Field+" must be a string")
			return
		}
		writeDetail(w, 400, "invalid JSON body")
		return
	}

	if msg := validateCreate(req); msg != "" {
		writeDetail(w, 422, msg)
		return
	}

	rec, err := a.Store.Create(req.Name, req.Date, req.Service)
	if err != nil {
		a.internalError(w, "create user", err)
		return
	}

	writeJSON(w, 200, shared.CreateUserResponse{
		ID:      rec.ID,
		Name:    rec.Name,
		Date:    rec.Date,
		Service: rec.Service,
	})
}

func validateCreate(req shared.CreateUserRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if strings.TrimSpace(req.Date) == "" {
		return "date is required"
	}
	if strings.TrimSpace(req.Service) == "" {
		return "service is required"
	}
	return ""
}

func (a *API) internalError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	writeDetail(w, 500, "internal error")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestID tags every response with an X-Request-Id and, in
// verbose mode, logs one line per request.
func (a *API) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)

		if !a.Verbose {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: 200}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("req %s: %s %s -> %d (%s)",
			firstN(reqID, 8), r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
