package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelier/models"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString(ContextUserIDKey),
			"email":  c.GetString(ContextEmailKey),
			"role":   c.GetString(ContextRoleKey),
		})
	})
	r.GET("/admin", JWTAuthMiddleware(), AdminOnlyMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddlewareSetsClaims(t *testing.T) {
	r := authRouter()

	token, err := utils.GenerateToken("u1", "alex@example.com", models.RoleUser, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"u1","email":"alex@example.com","role":"user"}`, w.Body.String())
}

func TestJWTAuthMiddlewareRejections(t *testing.T) {
	r := authRouter()

	expired, err := utils.GenerateToken("u1", "alex@example.com", models.RoleUser, -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic dXNlcjpwYXNz"},
		{"empty bearer token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, "/me", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Insufficient authorization"}`, w.Body.String())
		})
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	r := authRouter()

	adminToken, err := utils.GenerateToken("admin1", "admin@example.com", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	userToken, err := utils.GenerateToken("u1", "alex@example.com", models.RoleUser, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Access denied: Insufficient permissions."}`, w.Body.String())
}
