package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"gymrat/database"
	recordsRepo "gymrat/database/repository/records"
	"gymrat/handlers"
	"gymrat/routes"
	"gymrat/services/admin"
	authSvc "gymrat/services/auth"
	"gymrat/services/booking"
	"gymrat/services/checkout"
	"gymrat/services/contact"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full stack over a temp store, the same way main
// does, minus Redis.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store := database.Open(filepath.Join(dir, "data.json"), filepath.Join(dir, "session.json"), 0)
	repo := recordsRepo.NewStoreRecordRepo(store)

	sessionService := &authSvc.DefaultSessionService{Repo: repo, Store: store}
	contactService := &contact.DefaultContactService{Repo: repo}

	hb := &handlers.HandlerBundle{
		Repo:     repo,
		Auth:     handlers.NewAuthHandler(sessionService),
		User:     handlers.NewUserHandler(sessionService),
		Booking:  handlers.NewBookingHandler(&booking.DefaultBookingService{Store: store}),
		Checkout: handlers.NewCheckoutHandler(&checkout.DefaultCheckoutService{Store: store, Repo: repo}),
		Contact:  handlers.NewContactHandler(contactService),
		Admin:    handlers.NewAdminHandler(&admin.DefaultAdminService{Store: store, Repo: repo}, contactService),
	}

	r := gin.New()
	routes.RegisterRoutes(r, hb)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if raw := w.Body.Bytes(); len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return w, decoded
}

func signIn(t *testing.T, r *gin.Engine, email string) (token, userID string) {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/auth/signin", "",
		`{"email":"`+email+`","password":"whatever"}`)
	require.Equal(t, http.StatusOK, w.Code)
	token, _ = body["token"].(string)
	ident, _ := body["identity"].(map[string]any)
	userID, _ = ident["uid"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, userID)
	return token, userID
}

func TestHealthRoute(t *testing.T) {
	r := newTestServer(t)
	w, body := doJSON(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestSignUpFlow(t *testing.T) {
	r := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/signup", "",
		`{"name":"Rocky","email":"rocky@gym.com","password":"secret1","plan":"premium"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user", body["role"])
	assert.NotEmpty(t, body["token"])

	// Bad payloads bounce before the service runs.
	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/signup", "",
		`{"email":"not-an-email","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRoundTrip(t *testing.T) {
	r := newTestServer(t)
	token, userID := signIn(t, r, "rocky@gym.com")

	w, body := doJSON(t, r, http.MethodGet, "/api/users/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, body["id"])
	profile, _ := body["profile"].(map[string]any)
	assert.Equal(t, "rocky@gym.com", profile["email"])

	w, _ = doJSON(t, r, http.MethodPatch, "/api/users/me", token, `{"name":"Rocco"}`)
	require.Equal(t, http.StatusOK, w.Code)

	_, body = doJSON(t, r, http.MethodGet, "/api/users/me", token, "")
	profile, _ = body["profile"].(map[string]any)
	assert.Equal(t, "Rocco", profile["name"])
}

func TestScheduleIsPublic(t *testing.T) {
	r := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/classes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	classes, _ := body["classes"].([]any)
	assert.Len(t, classes, 3)
}

func TestBookingFlow(t *testing.T) {
	r := newTestServer(t)
	token, _ := signIn(t, r, "rocky@gym.com")

	w, _ := doJSON(t, r, http.MethodPost, "/api/bookings", token, `{"class_id":"101"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Booking again conflicts.
	w, _ = doJSON(t, r, http.MethodPost, "/api/bookings", token, `{"class_id":"101"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown classes are a 404.
	w, _ = doJSON(t, r, http.MethodPost, "/api/bookings", token, `{"class_id":"404"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body := doJSON(t, r, http.MethodGet, "/api/bookings/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	bookings, _ := body["bookings"].([]any)
	assert.Len(t, bookings, 1)

	// Bookings require authentication.
	w, _ = doJSON(t, r, http.MethodPost, "/api/bookings", "", `{"class_id":"102"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	r := newTestServer(t)
	token, _ := signIn(t, r, "rocky@gym.com")

	w, body := doJSON(t, r, http.MethodPost, "/api/checkout", token, `{"plan":"premium","price":49.99}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "completed", body["status"])

	w, body = doJSON(t, r, http.MethodGet, "/api/payments/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	payments, _ := body["payments"].([]any)
	assert.Len(t, payments, 1)

	_, body = doJSON(t, r, http.MethodGet, "/api/users/me", token, "")
	profile, _ := body["profile"].(map[string]any)
	assert.Equal(t, "premium", profile["membership_plan"])
}

func TestContactForm(t *testing.T) {
	r := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/contact", "",
		`{"name":"Rocky","email":"rocky@gym.com","message":"When does the boxing class open?"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, body["id"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/contact", "", `{"name":"Rocky"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r := newTestServer(t)

	userToken, _ := signIn(t, r, "rocky@gym.com")
	w, _ := doJSON(t, r, http.MethodGet, "/api/admin/metrics", userToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, _ := signIn(t, r, "admin@gym.com")
	w, body := doJSON(t, r, http.MethodGet, "/api/admin/metrics", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["trainers_count"])
	assert.Equal(t, float64(3), body["programs_count"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/users", adminToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
