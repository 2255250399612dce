package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"rentride/internal/models"
)

var secret = []byte(getJWTSecret())

// TokenTTL is the credential validity window.
const TokenTTL = 24 * time.Hour

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// GenerateToken mints an HS256 token carrying the caller's identity.
func GenerateToken(id uint, email, name string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id,
		"email":   email,
		"name":    name,
		"role":    string(role),
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// resolveIdentity verifies the token and re-reads the subject row, so a
// credential whose subject was deleted is rejected rather than trusted
// stale.
func resolveIdentity(db *gorm.DB, tokenString string) (uint, models.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}
	idClaim, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}
	roleClaim, _ := claims["role"].(string)
	role, ok := models.ParseRole(roleClaim)
	if !ok {
		return 0, "", errors.New("invalid role claim")
	}

	id := uint(idClaim)
	switch role {
	case models.RoleUser:
		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			return 0, "", errors.New("account no longer exists")
		}
	case models.RoleAdmin:
		var admin models.Admin
		if err := db.First(&admin, id).Error; err != nil {
			return 0, "", errors.New("account no longer exists")
		}
	}
	return id, role, nil
}

// authenticate resolves the caller and stores the identity in the
// context. It never advances the handler chain itself; on failure it
// writes the 401 and reports false.
func authenticate(db *gorm.DB, c *gin.Context) bool {
	tokenString := extractToken(c)
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return false
	}

	id, role, err := resolveIdentity(db, tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return false
	}

	c.Set("user_id", id)
	c.Set("role", role)
	return true
}

// RequireAuth ensures a valid token whose subject still exists, and
// stores the resolved identity in the context.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(db, c) {
			return
		}
		c.Next()
	}
}

// RequireRole layers a role check on top of authentication. A valid
// credential with the wrong role is a 403, not a 401, and the
// protected handler must not run at all.
func RequireRole(db *gorm.DB, required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(db, c) {
			return
		}

		role := c.MustGet("role").(models.Role)
		if role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}
