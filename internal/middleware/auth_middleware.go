package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-attend/internal/shared/apperror"
	"go-attend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID         = "user_id"
	ContextOrganizationID = "organization_id"
	ContextRole           = "role"
)

var errTokenNotFound = errors.New("token not found")

type authClaims struct {
	UserID         string
	OrganizationID string
	Role           string
}

// AuthMiddleware rejects requests without a valid bearer token or access_token cookie.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseRequestToken(c, secret)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth lets guests through and identifies members when a token is
// present. A present but invalid token is still rejected.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseRequestToken(c, secret)
		if errors.Is(err, errTokenNotFound) {
			c.Next()
			return
		}
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

func parseRequestToken(c *gin.Context, secret string) (authClaims, error) {
	tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		tokenString = ""
	}
	if tokenString == "" {
		if cookie, err := c.Cookie("access_token"); err == nil {
			tokenString = cookie
		}
	}
	if tokenString == "" {
		return authClaims{}, errTokenNotFound
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return authClaims{}, err
	}
	if !token.Valid {
		return authClaims{}, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authClaims{}, errors.New("invalid token claims")
	}

	userID, _ := mapClaims["user_id"].(string)
	if userID == "" {
		return authClaims{}, errors.New("user id not found in token")
	}
	organizationID, _ := mapClaims["organization_id"].(string)
	if organizationID == "" {
		return authClaims{}, errors.New("organization id not found in token")
	}
	role, _ := mapClaims["role"].(string)

	return authClaims{UserID: userID, OrganizationID: organizationID, Role: role}, nil
}

func setClaims(c *gin.Context, claims authClaims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextOrganizationID, claims.OrganizationID)
	c.Set(ContextRole, claims.Role)
}

func abortUnauthorized(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errTokenNotFound):
		abortWithError(c, apperror.ErrUnauthorized, nil)
		return
	case errors.Is(err, jwt.ErrTokenExpired):
		response.Error(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token has expired", nil)
	default:
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token", nil)
	}
	c.Abort()
}
