package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/pkg/jwt"
)

func newTestRouter(jwtManager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(jwtManager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"role":    GetUserRole(c),
		})
	})
	return r
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Minute, time.Hour)
	token, err := jwtManager.GenerateAccessToken("42", "테스터", string(domain.RoleSprout))
	require.NoError(t, err)

	r := newTestRouter(jwtManager)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Minute, time.Hour)
	r := newTestRouter(jwtManager)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Minute, time.Hour)
	r := newTestRouter(jwtManager)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	other := jwt.NewManager("other-secret", time.Minute, time.Hour)
	token, err := other.GenerateAccessToken("42", "테스터", string(domain.RoleSprout))
	require.NoError(t, err)

	jwtManager := jwt.NewManager("test-secret", time.Minute, time.Hour)
	r := newTestRouter(jwtManager)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalJWTAuth_Anonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtManager := jwt.NewManager("test-secret", time.Minute, time.Hour)
	r := gin.New()
	r.GET("/open", OptionalJWTAuth(jwtManager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/open", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":0`)
}
