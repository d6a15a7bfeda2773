package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gonotes/services"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	utils.JWTSecretKey = "test_secret_key"
	utils.JWTExpirationMinutes = 60

	validToken, err := services.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
	}{
		{
			name:         "missing header",
			authHeader:   "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "header without bearer prefix",
			authHeader:   validToken,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "garbage token",
			authHeader:   "Bearer not.a.jwt",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "valid token",
			authHeader:   "Bearer " + validToken,
			expectedCode: http.StatusOK,
		},
	}

	router := newAuthTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/probe", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d (body: %s)", tt.expectedCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_TokenFromOtherKey(t *testing.T) {
	utils.JWTSecretKey = "first-key"
	utils.JWTExpirationMinutes = 60

	tok, err := services.GenerateToken("user-7")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// Same token, different process secret
	utils.JWTSecretKey = "second-key"
	router := newAuthTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403 for foreign signature, got %d", w.Code)
	}
}
