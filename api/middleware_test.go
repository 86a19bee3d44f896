package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

func identityTestRouter(t *testing.T, expected *models.Credentials) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/test", identityMiddleware, func(c *gin.Context) {
		creds, found := utils.CredentialsFromCtx(c.Request.Context())
		assert.True(t, found)
		if expected != nil {
			assert.Equal(t, *expected, creds)
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestIdentityMiddleware(t *testing.T) {
	userId := "f9de25c1-0ee1-41b4-a3ec-5d13a0a65d5e"

	t.Run("nominal", func(t *testing.T) {
		expected := models.Credentials{
			ActorIdentity: models.Identity{
				UserId: userId,
				Email:  "officer@regulator.gov",
			},
			Role: models.OFFICER,
		}
		router := identityTestRouter(t, &expected)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-User-Id", userId)
		req.Header.Set("X-User-Role", "OFFICER")
		req.Header.Set("X-User-Email", "officer@regulator.gov")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusOK, r.Code)
	})

	t.Run("missing user id", func(t *testing.T) {
		router := identityTestRouter(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-User-Role", "OFFICER")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
	})

	t.Run("user id is not a uuid", func(t *testing.T) {
		router := identityTestRouter(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-User-Id", "not-a-uuid")
		req.Header.Set("X-User-Role", "OFFICER")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		router := identityTestRouter(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-User-Id", userId)
		req.Header.Set("X-User-Role", "SUPERUSER")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
	})
}
