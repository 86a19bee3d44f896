package api

import (
	"net/http"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	userIdHeader   = "X-User-Id"
	userRoleHeader = "X-User-Role"
	userMailHeader = "X-User-Email"
)

// identityMiddleware trusts the identity headers set by the fronting
// identity-aware proxy and turns them into credentials for the request
// context. Requests without a valid user id are rejected.
func identityMiddleware(c *gin.Context) {
	userId := c.GetHeader(userIdHeader)
	if userId == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing identity headers"})
		return
	}
	if err := utils.ValidateUuid(userId); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid user id"})
		return
	}

	role := models.RoleFromString(c.GetHeader(userRoleHeader))
	if role == models.NO_ROLE {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unknown role"})
		return
	}

	creds := models.Credentials{
		ActorIdentity: models.Identity{
			UserId: userId,
			Email:  c.GetHeader(userMailHeader),
		},
		Role: role,
	}

	ctx := utils.StoreCredentialsInContext(c.Request.Context(), creds)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
