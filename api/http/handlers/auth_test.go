package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathewkioko/edulink/api/http/handlers"
	"github.com/mathewkioko/edulink/pkg/auth"
)

type fakeAuthUC struct {
	result auth.AuthResult
	err    error
}

func (f *fakeAuthUC) Register(ctx context.Context, email, password, name string) (auth.AuthResult, error) {
	return f.result, f.err
}

func (f *fakeAuthUC) Login(ctx context.Context, email, password string) (auth.AuthResult, error) {
	return f.result, f.err
}

func newAuthApp(uc auth.UseCase) *fiber.App {
	h := handlers.NewAuthHandler(uc)
	app := fiber.New()
	app.Post("/signup", h.Register)
	app.Post("/signin", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterHandler_Created(t *testing.T) {
	t.Parallel()

	uc := &fakeAuthUC{result: auth.AuthResult{
		User:  auth.User{ID: uuid.New(), Email: "a@x.com", Name: "A"},
		Token: "tok",
	}}
	app := newAuthApp(uc)

	resp := postJSON(t, app, "/signup", `{"email":"a@x.com","password":"pw","name":"A"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, "a@x.com", body["email"])
}

func TestRegisterHandler_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "invalid json", body: `{`, want: http.StatusBadRequest},
		{name: "missing email", body: `{"password":"pw"}`, want: http.StatusBadRequest},
		{name: "missing password", body: `{"email":"a@x.com"}`, want: http.StatusBadRequest},
		{name: "conflict", body: `{"email":"a@x.com","password":"pw"}`, err: auth.ErrUserAlreadyExists, want: http.StatusConflict},
		{name: "store down", body: `{"email":"a@x.com","password":"pw"}`, err: auth.ErrStoreUnavailable, want: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAuthApp(&fakeAuthUC{err: tt.err})
			resp := postJSON(t, app, "/signup", tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestLoginHandler_OK(t *testing.T) {
	t.Parallel()

	uc := &fakeAuthUC{result: auth.AuthResult{
		User:  auth.User{ID: uuid.New(), Email: "a@x.com"},
		Token: "tok",
	}}
	app := newAuthApp(uc)

	resp := postJSON(t, app, "/signin", `{"email":"a@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tok", body["token"])
}

func TestLoginHandler_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: auth.ErrNotFound, want: http.StatusNotFound},
		{name: "wrong password", err: auth.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "store down", err: auth.ErrStoreUnavailable, want: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAuthApp(&fakeAuthUC{err: tt.err})
			resp := postJSON(t, app, "/signin", `{"email":"a@x.com","password":"pw"}`)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
