package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"autoluxe/internal/handlers"
	"autoluxe/internal/mail"
	"autoluxe/internal/store"
	"autoluxe/pkg/localdb"
	"autoluxe/pkg/logger"
	"autoluxe/pkg/mailer"
	"autoluxe/routes"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total   int  `json:"total"`
		Count   int  `json:"count"`
		HasMore bool `json:"has_more"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	s := store.New(localdb.NewMemoryBackend(), log)

	mock := mail.NewMock(s.Events(), time.Millisecond, "", log)
	relay := mailer.NewSMTPMailer(&mailer.Config{Host: "127.0.0.1", Port: 1})

	router := gin.New()
	v1 := router.Group("/api/v1")
	routes.SetupVehicleRoutes(v1, handlers.NewVehicleHandler(s, log), s)
	routes.SetupAuthRoutes(v1, handlers.NewAuthHandler(s, log), s)
	routes.SetupRequestRoutes(v1, handlers.NewRequestHandler(s, log), s)
	routes.SetupMailRoutes(v1, router, handlers.NewMailHandler(mock, relay, log))
	return router, s
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestListVehiclesSeedsAndPaginates(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/vehicles", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if env.Meta == nil || env.Meta.Total != 7 {
		t.Fatalf("meta = %+v, want total 7", env.Meta)
	}
	if env.Meta.Count != 6 || !env.Meta.HasMore {
		t.Errorf("first page: count=%d has_more=%v, want 6/true", env.Meta.Count, env.Meta.HasMore)
	}

	// Reveal one more step: everything visible
	_, env = do(t, router, http.MethodGet, "/api/v1/vehicles?limit=12", "")
	if env.Meta.Count != 7 || env.Meta.HasMore {
		t.Errorf("second page: count=%d has_more=%v, want 7/false", env.Meta.Count, env.Meta.HasMore)
	}
}

func TestListVehiclesFiltered(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/vehicles?category=sport&max_mileage=5000", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	// Seed holds three sport vehicles; only two are under the mileage ceiling
	if env.Meta.Total != 2 {
		t.Fatalf("filtered total = %d, want 2", env.Meta.Total)
	}
}

func TestGetVehicleNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/vehicles/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestInventoryMutationsRequireAdminSession(t *testing.T) {
	router, s := newTestServer(t)

	body := `{"make":"Lotus","model":"Emira","year":2024,"price":105000,"mileage":120,"fuel_type":"petrol","category":"sport"}`
	w, _ := do(t, router, http.MethodPost, "/api/v1/vehicles", body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous save status = %d, want 401", w.Code)
	}

	// First-run admin setup signs in
	w, _ = do(t, router, http.MethodPost, "/api/v1/auth/admin/setup", `{"password":"hunter2"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin setup status = %d", w.Code)
	}

	w, _ = do(t, router, http.MethodPost, "/api/v1/vehicles", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin save status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := len(s.Vehicles()); got != 8 {
		t.Errorf("vehicle count = %d, want 8", got)
	}

	// Logout closes the back office again
	do(t, router, http.MethodPost, "/api/v1/auth/admin/logout", "")
	w, _ = do(t, router, http.MethodDelete, "/api/v1/vehicles/1", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("delete after logout status = %d, want 401", w.Code)
	}
}

func TestRegisterLoginMe(t *testing.T) {
	router, _ := newTestServer(t)

	w, _ := do(t, router, http.MethodPost, "/api/v1/auth/register", `{"name":"Jean","email":"jean@x.com","password":"secret"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}

	// Duplicate email conflicts and reports a readable reason
	w, env := do(t, router, http.MethodPost, "/api/v1/auth/register", `{"name":"Jean","email":"jean@x.com","password":"other"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d", w.Code)
	}
	if env.Error == nil || env.Error.Message == "" {
		t.Error("expected a human-readable failure reason")
	}

	w, env = do(t, router, http.MethodGet, "/api/v1/auth/me", "")
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	var me struct {
		Email        string `json:"email"`
		PasswordHash string `json:"password_hash"`
	}
	json.Unmarshal(env.Data, &me)
	if me.Email != "jean@x.com" {
		t.Errorf("me email = %q", me.Email)
	}
	if me.PasswordHash != "" {
		t.Error("credential leaked through the API")
	}

	do(t, router, http.MethodPost, "/api/v1/auth/logout", "")
	w, _ = do(t, router, http.MethodGet, "/api/v1/auth/me", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout status = %d, want 401", w.Code)
	}

	w, _ = do(t, router, http.MethodPost, "/api/v1/auth/login", `{"email":"jean@x.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d, want 401", w.Code)
	}
	w, _ = do(t, router, http.MethodPost, "/api/v1/auth/login", `{"email":"jean@x.com","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d", w.Code)
	}
}

func TestExchangeRequestFlow(t *testing.T) {
	router, _ := newTestServer(t)

	body := `{"contact_phone":"(555) 111-2222","current_vehicle":{"year":"2018","make":"Honda","model":"Civic","mileage":"64000"},"desired_vehicle":"Porsche 911"}`

	// Anonymous submissions are refused
	w, _ := do(t, router, http.MethodPost, "/api/v1/requests", body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous request status = %d, want 401", w.Code)
	}

	do(t, router, http.MethodPost, "/api/v1/auth/register", `{"name":"Jean","email":"jean@x.com","password":"secret"}`)
	w, env := do(t, router, http.MethodPost, "/api/v1/requests", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("request status = %d, body = %s", w.Code, w.Body.String())
	}
	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Email  string `json:"user_email"`
	}
	json.Unmarshal(env.Data, &created)
	if created.Status != "pending" || created.Email != "jean@x.com" {
		t.Errorf("created request = %+v", created)
	}

	// Admin resolves it
	do(t, router, http.MethodPost, "/api/v1/auth/admin/setup", `{"password":"hunter2"}`)
	w, _ = do(t, router, http.MethodPut, "/api/v1/requests/"+created.ID+"/status", `{"status":"approved"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("approve status = %d, body = %s", w.Code, w.Body.String())
	}

	// Terminal states are final
	w, _ = do(t, router, http.MethodPut, "/api/v1/requests/"+created.ID+"/status", `{"status":"rejected"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("re-transition status = %d, want 409", w.Code)
	}

	w, env = do(t, router, http.MethodGet, "/api/v1/requests", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var listing struct {
		Requests []struct {
			Status string `json:"status"`
		} `json:"requests"`
	}
	json.Unmarshal(env.Data, &listing)
	if len(listing.Requests) != 1 || listing.Requests[0].Status != "approved" {
		t.Errorf("listing = %+v", listing)
	}
}

func TestSendCodeRequiresEmail(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/send-code", strings.NewReader(`{"name":"Jean"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Success || resp.Message != "Email is required" {
		t.Errorf("response = %+v", resp)
	}
}

func TestSendMockQueuesDelivery(t *testing.T) {
	router, s := newTestServer(t)

	received := make(chan store.Event, 1)
	s.Events().Subscribe(store.ChannelMail, func(e store.Event) { received <- e })

	w, _ := do(t, router, http.MethodPost, "/api/v1/mail/send", `{"to":"jean@x.com","subject":"Welcome","body":"Hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	select {
	case event := <-received:
		if event.Email == nil || event.Email.To != "jean@x.com" {
			t.Errorf("mail event = %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("mock delivery never arrived")
	}
}
