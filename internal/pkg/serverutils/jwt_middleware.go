package serverutils

import (
	"context"
	"fmt"
	"strings"

	"brokeria-dashboard-be/internal/dto"
	"brokeria-dashboard-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

const claimsLocalKey = "claims"

// TokenVerifier is the slice of the auth service the middleware needs.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*dto.TokenClaims, error)
}

// JwtMiddleware rejects requests without a valid bearer token and stores the
// verified claims for downstream handlers.
func JwtMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token, ok := bearerToken(ctx.Get(fiber.HeaderAuthorization))
		if !ok {
			return apperror.ErrMissingToken
		}

		claims, err := verifier.Verify(ctx.UserContext(), token)
		if err != nil {
			return err
		}

		ctx.Locals(claimsLocalKey, claims)
		return ctx.Next()
	}
}

// RequireRole must run after JwtMiddleware.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims := ClaimsFromCtx(ctx)
		if claims == nil || claims.Role != role {
			return fmt.Errorf("role %q required: %w", role, apperror.ErrForbidden)
		}
		return ctx.Next()
	}
}

func ClaimsFromCtx(ctx *fiber.Ctx) *dto.TokenClaims {
	claims, _ := ctx.Locals(claimsLocalKey).(*dto.TokenClaims)
	return claims
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
