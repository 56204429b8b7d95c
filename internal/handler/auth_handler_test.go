package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)

	// no admin yet
	w := doJSON(t, r, http.MethodGet, "/api/auth/check", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var check struct {
		Exists bool `json:"exists"`
	}
	decodeBody(t, w, &check)
	assert.False(t, check.Exists)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"email": "admin@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var admin map[string]interface{}
	decodeBody(t, w, &admin)
	assert.Equal(t, "admin@example.com", admin["email"])
	assert.NotContains(t, admin, "password_hash")

	w = doJSON(t, r, http.MethodGet, "/api/auth/check", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &check)
	assert.True(t, check.Exists)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "admin@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &login)
	assert.NotEmpty(t, login.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)
	loginForTest(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "admin@example.com", "password": "wrong-password"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]map[string]interface{}
	decodeBody(t, w, &body)
	assert.Equal(t, "Invalid credentials", body["error"]["message"])
	assert.Equal(t, "INVALID_CREDENTIALS", body["error"]["code"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"email": "admin@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"email": "admin@example.com", "password": "another1"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]map[string]interface{}
	decodeBody(t, w, &body)
	assert.Equal(t, "Admin with this email already exists", body["error"]["message"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)
	loginForTest(t, r)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/courses"},
		{http.MethodPost, "/api/courses"},
		{http.MethodGet, "/api/students"},
		{http.MethodPost, "/api/students/marks"},
	} {
		w := doJSON(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}
