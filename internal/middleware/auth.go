package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
)

const ContextTrainerID = "trainerID"

// TokenParser validates a bearer token and returns the trainer id it was
// issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Faça login para continuar.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		trainerID, err := tokens.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Sessão inválida ou expirada.")
			c.Abort()
			return
		}

		c.Set(ContextTrainerID, trainerID)
		c.Next()
	}
}

// TrainerID returns the authenticated trainer. Only valid behind
// AuthMiddleware.
func TrainerID(c *gin.Context) string {
	return c.GetString(ContextTrainerID)
}
