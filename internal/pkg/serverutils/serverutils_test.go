package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"brokeria-dashboard-be/internal/dto"
	"brokeria-dashboard-be/internal/pkg/apperror"
	"brokeria-dashboard-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims *dto.TokenClaims
	err    error
	got    string
}

func (v *stubVerifier) Verify(_ context.Context, token string) (*dto.TokenClaims, error) {
	v.got = token
	return v.claims, v.err
}

func newTestApp(verifier TokenVerifier, handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(logger.NewNop())})
	app.Get("/protected", JwtMiddleware(verifier), handler)
	app.Get("/admin", JwtMiddleware(verifier), RequireRole("admin"), handler)
	return app
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestJwtMiddleware(t *testing.T) {
	okHandler := func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", ClaimsFromCtx(ctx).Username))
	}

	tests := []struct {
		name       string
		path       string
		header     string
		verifier   *stubVerifier
		wantStatus int
	}{
		{name: "no header", path: "/protected", verifier: &stubVerifier{}, wantStatus: 401},
		{name: "not bearer", path: "/protected", header: "Basic abc", verifier: &stubVerifier{}, wantStatus: 401},
		{name: "empty bearer", path: "/protected", header: "Bearer   ", verifier: &stubVerifier{}, wantStatus: 401},
		{
			name: "invalid token", path: "/protected", header: "Bearer garbage",
			verifier: &stubVerifier{err: fmt.Errorf("%w: malformed", apperror.ErrInvalidToken)}, wantStatus: 403,
		},
		{
			name: "valid token", path: "/protected", header: "Bearer good",
			verifier: &stubVerifier{claims: &dto.TokenClaims{Username: "ana", Role: "user"}}, wantStatus: 200,
		},
		{
			name: "user on admin route", path: "/admin", header: "Bearer good",
			verifier: &stubVerifier{claims: &dto.TokenClaims{Username: "ana", Role: "user"}}, wantStatus: 403,
		},
		{
			name: "admin on admin route", path: "/admin", header: "Bearer good",
			verifier: &stubVerifier{claims: &dto.TokenClaims{Username: "root", Role: "admin"}}, wantStatus: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.verifier, okHandler)
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decode(t, resp.Body)
			assert.Equal(t, tt.wantStatus == 200, body["success"])
			assert.EqualValues(t, tt.wantStatus, body["code"])
		})
	}
}

func TestJwtMiddleware_PassesRawToken(t *testing.T) {
	v := &stubVerifier{claims: &dto.TokenClaims{Username: "ana"}}
	app := newTestApp(v, func(ctx *fiber.Ctx) error { return ctx.SendStatus(204) })

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, "abc.def.ghi", v.got)
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "validation", err: apperror.Validation("id must be a positive integer"), wantStatus: 400, wantMessage: "validation failed: id must be a positive integer"},
		{name: "credentials", err: apperror.ErrInvalidCredentials, wantStatus: 401, wantMessage: apperror.ErrInvalidCredentials.Error()},
		{name: "not found", err: fmt.Errorf("record 9: %w", apperror.ErrNotFound), wantStatus: 404},
		{name: "conflict", err: fmt.Errorf("username %q: %w", "admin", apperror.ErrConflict), wantStatus: 409},
		{name: "upstream hides cause", err: apperror.Upstream("stats", errors.New("password authentication failed for user postgres")), wantStatus: 500, wantMessage: "internal server error"},
		{name: "unknown", err: errors.New("boom"), wantStatus: 500, wantMessage: "internal server error"},
		{name: "fiber error keeps code", err: fiber.ErrMethodNotAllowed, wantStatus: 405},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(logger.NewNop())})
			app.Get("/", func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decode(t, resp.Body)
			assert.Equal(t, false, body["success"])
			_, hasData := body["data"]
			assert.False(t, hasData)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body["message"])
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	err := ValidateRequest(dto.RegisterRequest{Username: "ab", Password: "123", Role: "root"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, err.Error(), "username must be at least 3 characters")
	assert.Contains(t, err.Error(), "password must be at least 6 characters")
	assert.Contains(t, err.Error(), "role must be one of [admin user]")

	assert.NoError(t, ValidateRequest(dto.RegisterRequest{Username: "maria", Password: "123456"}))

	err = ValidateRequest(dto.RecordFilterRequest{DataFim: "10/01/2026"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.NoError(t, ValidateRequest(dto.RecordFilterRequest{Status: "PENDENTE", DataFim: "2026-10-01"}))
}

func TestRequestLogger_RecordsFinalStatus(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(logger.NewNop())})
	app.Use(RequestLogger(logger.NewNop()))
	app.Get("/missing", func(ctx *fiber.Ctx) error { return apperror.ErrNotFound })

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
