package middleware

import (
	"net/http"
	"strings"

	"cafe/internal/apierror"
	"cafe/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey    = "claims"
	UsuarioIDKey = "usuario_id"

	// TokenHeader is the legacy header older clients send the token in.
	TokenHeader = "token"
)

// JWTClaims are the custom claims embedded in every token issued by /login.
type JWTClaims struct {
	UsuarioID string `json:"usuario_id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func tokenDe(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader(TokenHeader)
}

// VerificaToken validates the token on every protected route and stores the
// caller's claims and id in the gin context.
func VerificaToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenDe(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token no válido"))
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token no válido"))
			return
		}

		uid, err := uuid.Parse(claims.UsuarioID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token no válido"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UsuarioIDKey, uid)
		c.Next()
	}
}

// VerificaAdminRole must run after VerificaToken.
func VerificaAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.Role != model.RolAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("El usuario no es administrador"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.Get(ClaimsKey)
	typed, _ := claims.(*JWTClaims)
	return typed
}

// GetUsuarioID returns the authenticated caller, uuid.Nil on public routes.
func GetUsuarioID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(UsuarioIDKey)
	id, _ := v.(uuid.UUID)
	return id
}
