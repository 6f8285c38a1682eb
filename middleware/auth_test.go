package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gymrat/database"
	recordsRepo "gymrat/database/repository/records"
	"gymrat/models"
	"gymrat/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) recordsRepo.RecordRepository {
	t.Helper()
	dir := t.TempDir()
	store := database.Open(filepath.Join(dir, "data.json"), filepath.Join(dir, "session.json"), 0)
	return recordsRepo.NewStoreRecordRepo(store)
}

func newTestRouter(repo recordsRepo.RecordRepository, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/protected")
	group.Use(JWTAuthUserMiddleware(repo))
	if adminOnly {
		group.Use(AdminOnlyMiddleware())
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString("userID"),
			"role":   c.GetString("role"),
		})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r := newTestRouter(newTestRepo(t), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedToken(t *testing.T) {
	r := newTestRouter(newTestRepo(t), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsUnknownMember(t *testing.T) {
	r := newTestRouter(newTestRepo(t), false)

	token, err := utils.GenerateToken("ghost", "ghost@gym.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareResolvesMember(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Set(context.Background(), database.CollectionUsers, "u1", database.Record{
		"name": "Rocky", "email": "rocky@gym.com", "role": models.RoleUser,
	}, false))
	r := newTestRouter(repo, false)

	token, err := utils.GenerateToken("u1", "rocky@gym.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	repo := newTestRepo(t)
	r := newTestRouter(repo, false)

	token, err := utils.GenerateToken("u1", "rocky@gym.com", -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnlyMiddleware(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Set(context.Background(), database.CollectionUsers, "u1", database.Record{
		"name": "Rocky", "email": "rocky@gym.com", "role": models.RoleUser,
	}, false))
	require.NoError(t, repo.Set(context.Background(), database.CollectionUsers, "a1", database.Record{
		"name": "Admin User", "email": "admin@gym.com", "role": models.RoleAdmin,
	}, false))
	r := newTestRouter(repo, true)

	userToken, err := utils.GenerateToken("u1", "rocky@gym.com", time.Hour)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken("a1", "admin@gym.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
