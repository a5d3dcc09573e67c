package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaritu/core/internal/config"
	"github.com/yaritu/core/internal/modules/auth"
	"golang.org/x/crypto/bcrypt"
)

func newAuthRouter(admin config.AdminConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth.NewHandler(admin).RegisterRoutes(r.Group("/api"))
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminConfig(t *testing.T, username, password string) config.AdminConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return config.AdminConfig{Username: username, PasswordHash: string(hash)}
}

func TestLogin_Success(t *testing.T) {
	r := newAuthRouter(adminConfig(t, "admin", "s3cret"))

	w := postLogin(r, `{"username":"admin","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"expires_in"`)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newAuthRouter(adminConfig(t, "admin", "s3cret"))

	w := postLogin(r, `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_WrongUsername(t *testing.T) {
	r := newAuthRouter(adminConfig(t, "admin", "s3cret"))

	w := postLogin(r, `{"username":"root","password":"s3cret"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_NotConfigured(t *testing.T) {
	r := newAuthRouter(config.AdminConfig{})

	w := postLogin(r, `{"username":"admin","password":"s3cret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestLogin_MissingFields(t *testing.T) {
	r := newAuthRouter(adminConfig(t, "admin", "s3cret"))

	w := postLogin(r, `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
