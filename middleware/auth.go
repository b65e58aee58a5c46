// middleware/auth.go

package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockroom-app/api/config"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
)

// AccessClaims are the claims carried by a stockroom access token. Subject is
// the user ID; GlobalRole mirrors the user's role at token issue time.
type AccessClaims struct {
	jwt.StandardClaims
	GlobalRole string `json:"global_role"`
}

// AuthMiddleware validates the Bearer token on every request and stores the
// caller's identity in the request context under "userID" and "globalRole".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			logger.Warn("No Authorization token provided", zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := parseAccessToken(tokenString)
		if err != nil {
			logger.Warn("Rejected invalid token", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if claims.Subject == "" {
			logger.Warn("Token has no subject claim")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("globalRole", claims.GlobalRole)

		c.Next()
	}
}

func parseAccessToken(tokenString string) (*AccessClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GetString("auth.jwtSecret")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token or wrong claims type")
	}

	if claims.GlobalRole != "" && !model.GlobalRole(claims.GlobalRole).Valid() {
		return nil, fmt.Errorf("unknown global role in token: %s", claims.GlobalRole)
	}

	return claims, nil
}
