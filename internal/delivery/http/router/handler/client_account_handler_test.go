package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clientaccount/config"
	deliveryhttp "clientaccount/internal/delivery/http"
	"clientaccount/internal/delivery/http/router"
	"clientaccount/internal/delivery/http/router/handler"
	"clientaccount/internal/infra/auth"
	"clientaccount/internal/infra/persistence/memory"
	"clientaccount/internal/infra/validation"
	"clientaccount/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const createBody = `{
	"username": "maria.silva",
	"email": "maria@example.com",
	"password": "Password123!",
	"passwordConfirmation": "Password123!",
	"client": {
		"name": "Maria Silva",
		"birthdate": "1990-03-14T00:00:00Z",
		"contact": "11987654321",
		"cpf": "111.444.777-35",
		"addresses": [
			{"location": "Av. Paulista, 1578 - São Paulo", "geo": {"latitude": -23.5614, "longitude": -46.6559}}
		]
	}
}`

type errorBody struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

type envelope struct {
	Success bool                          `json:"success"`
	Code    int                           `json:"code"`
	Data    handler.ClientAccountResponse `json:"data"`
	Error   *errorBody                    `json:"error"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Account: &config.AccountConfig{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	structs, err := validation.New()
	require.NoError(t, err)

	uc := impl.NewClientAccountService(
		validation.NewClientAccountValidator(structs),
		auth.NewBcryptHasher(cfg),
		memory.NewClientAccountRepository(),
		cfg,
		logger,
	)

	e := deliveryhttp.NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		ClientAccountHandler: handler.NewClientAccountHandler(uc, logger),
	}).RegisterRoutes(e)

	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestClientAccountHandler_CreateAndGet(t *testing.T) {
	e := newTestServer(t)

	rec, created := do(t, e, http.MethodPost, "/client-accounts", createBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, created.Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.NotContains(t, rec.Body.String(), "password\"")
	assert.NotContains(t, rec.Body.String(), "Password123!")

	account := created.Data
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "maria.silva", account.Username)
	assert.Equal(t, "maria@example.com", account.Email)
	assert.Equal(t, "Maria Silva", account.Client.Name)
	assert.Equal(t, "1990-03-14", account.Client.Birthdate)
	require.Len(t, account.Client.Addresses, 1)
	assert.Equal(t, -23.5614, account.Client.Addresses[0].Geo.Latitude)

	rec, fetched := do(t, e, http.MethodGet, "/client-accounts/"+account.ID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, account, fetched.Data)
}

func TestClientAccountHandler_CreateAcceptsBirthdateLayouts(t *testing.T) {
	for _, birthdate := range []string{"1990-03-14", "1990-03-14T00:00:00Z", "1990-03-14T09:30:00-03:00"} {
		t.Run(birthdate, func(t *testing.T) {
			e := newTestServer(t)
			body := strings.Replace(createBody, `"1990-03-14T00:00:00Z"`, `"`+birthdate+`"`, 1)

			rec, created := do(t, e, http.MethodPost, "/client-accounts", body)

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.Equal(t, "1990-03-14", created.Data.Client.Birthdate)
		})
	}
}

func TestClientAccountHandler_CreateErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "unparseable birthdate",
			body:       strings.Replace(createBody, `"1990-03-14T00:00:00Z"`, `"14/03/1990"`, 1),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "validation failure",
			body:       strings.Replace(createBody, `"maria@example.com"`, `"not-an-email"`, 1),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "invalid cpf",
			body:       strings.Replace(createBody, "111.444.777-35", "111.444.777-34", 1),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_CLIENT_CPF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(t)

			rec, env := do(t, e, http.MethodPost, "/client-accounts", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestClientAccountHandler_DuplicateEmail(t *testing.T) {
	e := newTestServer(t)

	rec, _ := do(t, e, http.MethodPost, "/client-accounts", createBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	second := strings.Replace(createBody, `"maria.silva"`, `"maria.two"`, 1)
	rec, env := do(t, e, http.MethodPost, "/client-accounts", second)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CLIENT_ACCOUNT_EMAIL_EXISTS", env.Error.Code)
	assert.Contains(t, env.Error.Details, "Client Account with email maria@example.com already exists.")
}

func TestClientAccountHandler_GetErrors(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodGet, "/client-accounts/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MALFORMED_IDENTIFIER", env.Error.Code)

	rec, env = do(t, e, http.MethodGet, "/client-accounts/0b1f6c8e-3c39-4d5e-9a71-5f2c8f0a1d2b", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CLIENT_ACCOUNT_NOT_FOUND", env.Error.Code)
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
