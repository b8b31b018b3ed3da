package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frontino-api/internal/application/auth"
	"github.com/jhoicas/frontino-api/internal/application/dto"
	appstorage "github.com/jhoicas/frontino-api/internal/application/storage"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
	"github.com/jhoicas/frontino-api/internal/domain/entity"
	"github.com/jhoicas/frontino-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/frontino-api/internal/interfaces/http"
	"github.com/jhoicas/frontino-api/pkg/hash"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "frontino-api-test"
	testExpMin    = 60
)

// memStore FileStorage mínimo en memoria para las rutas de storage.
type memStore struct {
	files map[string][]byte
}

func (s *memStore) Upload(_ context.Context, folder, filename, contentType string, data []byte) (string, error) {
	path := folder + "/" + filename
	s.files[path] = data
	return "/api/v1/storage/files/" + path, nil
}

func (s *memStore) GetURL(_ context.Context, path string) (string, error) {
	if _, ok := s.files[path]; !ok {
		return "", nil
	}
	return "/api/v1/storage/files/" + path, nil
}

func (s *memStore) Delete(_ context.Context, path string) (bool, error) {
	if _, ok := s.files[path]; !ok {
		return false, nil
	}
	delete(s.files, path)
	return true, nil
}

func (s *memStore) Download(_ context.Context, path string) ([]byte, string, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, "", nil
	}
	return data, "application/octet-stream", nil
}

// buildApp monta la API completa sobre repositorios en memoria y siembra
// un usuario operador listo para autenticarse.
func buildApp(t *testing.T) *fiber.App {
	t.Helper()

	hasher := hash.NewBcrypt(4)
	userRepo := memory.NewUserRepo()
	userUC := usecase.NewUserUseCase(userRepo, hasher)

	_, err := userUC.Create(context.Background(), dto.CreateUserRequest{
		Email:    "op@frontino.com",
		Password: "clave123",
		Rol:      entity.RoleOperator,
	})
	require.NoError(t, err)

	memberRepo := memory.NewMemberRepo()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ClientUC:  usecase.NewClientUseCase(memory.NewClientRepo()),
		MemberUC:  usecase.NewMemberUseCase(memberRepo),
		GasBillUC: usecase.NewGasBillUseCase(memory.NewGasBillRepo(), memberRepo),
		RefillUC:  usecase.NewGasCylinderRefillUseCase(memory.NewGasCylinderRefillRepo()),
		UserUC:    userUC,
		AuthUC: auth.NewAuthUseCase(memory.NewAuthRepo(), userRepo, hasher, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		StorageUC: appstorage.NewStorageUseCase(&memStore{files: make(map[string][]byte)}),
		JWTSecret: testJWTSecret,
	})
	return app
}

// envelope forma uniforme {status, message, data} de todas las respuestas.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

// login devuelve un token recién emitido por la propia API.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "op@frontino.com",
		Password: "clave123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session entity.Auth
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestHealth_Publico(t *testing.T) {
	app := buildApp(t)

	resp, env := doJSON(t, app, http.MethodGet, "/api/v1/health", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, env.Status)
}

func TestRutaProtegida_SinToken(t *testing.T) {
	app := buildApp(t)

	resp, env := doJSON(t, app, http.MethodGet, "/api/v1/clients", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, env.Status)
	assert.Equal(t, json.RawMessage("null"), env.Data)
}

func TestRutaProtegida_TokenInvalido(t *testing.T) {
	app := buildApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/clients", "no-es-un-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El login crea una sesión nueva, así que responde 201 como el resto de
// las creaciones.
func TestLogin_RespondeCreado(t *testing.T) {
	app := buildApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "op@frontino.com",
		Password: "clave123",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, http.StatusCreated, env.Status)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := buildApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "op@frontino.com",
		Password: "incorrecta",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, json.RawMessage("null"), env.Data)
}

// Flujo completo: login → crear cliente → leerlo con el token emitido.
func TestCrearYLeerCliente(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/clients", token, dto.CreateClientRequest{
		Name:         "Cooperativa Frontino",
		Agent:        dto.AgentRequest{Name: "Ana"},
		Active:       true,
		Type:         entity.ClientTypeResidential,
		Membership:   entity.MembershipBasic,
		GasCylinders: []dto.GasCylinderRequest{{GlMax: 100, GlToLts: 3.785}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, http.StatusCreated, env.Status)

	var created entity.Client
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)
	require.Len(t, created.GasCylinders, 1)
	assert.NotEmpty(t, created.GasCylinders[0].ID)

	resp, env = doJSON(t, app, http.MethodGet, "/api/v1/clients/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched entity.Client
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Cooperativa Frontino", fetched.Name)
}

// La actualización de clientes también está registrada como PATCH.
func TestActualizarCliente_ConPatch(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/clients", token, dto.CreateClientRequest{
		Name:       "Cooperativa Frontino",
		Agent:      dto.AgentRequest{Name: "Ana"},
		Active:     true,
		Type:       entity.ClientTypeResidential,
		Membership: entity.MembershipBasic,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.Client
	require.NoError(t, json.Unmarshal(env.Data, &created))

	name := "Cooperativa Andina"
	resp, env = doJSON(t, app, http.MethodPatch, "/api/v1/clients/"+created.ID, token, dto.UpdateClientRequest{
		Name: &name,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated entity.Client
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Cooperativa Andina", updated.Name)
}

// El parche de una factura puede mover el periodo y el resultado se lee
// de vuelta con el periodo nuevo.
func TestActualizarGasBill_Periodo(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/gas-bills", token, dto.CreateGasBillRequest{
		IDMember: "m-1",
		Time:     "2024-01-01",
		M3:       12.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.GasBill
	require.NoError(t, json.Unmarshal(env.Data, &created))

	moved := "2024-02-01"
	resp, env = doJSON(t, app, http.MethodPut, "/api/v1/gas-bills/"+created.ID, token, dto.UpdateGasBillRequest{
		Time: &moved,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated entity.GasBill
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "2024-02-01", updated.Time)
}

func TestCrearCliente_DatosInvalidos(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/clients", token, dto.CreateClientRequest{
		Name:       "ab",
		Type:       entity.ClientTypeResidential,
		Membership: entity.MembershipBasic,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCliente_NoEncontrado(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/clients/no-existe", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// El serial de medidor duplicado llega al cliente HTTP como 409.
func TestCrearMiembro_SerialDuplicado(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	body := dto.CreateMemberRequest{
		IDClient:    "client-1",
		Name:        "Pedro",
		Email:       "pedro@example.com",
		MeterSerial: "MTR-001",
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/members", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodPost, "/api/v1/members", token, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, http.StatusConflict, env.Status)
}

func TestLogoutYRefresh_PorHTTP(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	// Refresh con el usuario equivocado: 404 sin revelar la sesión.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/refresh-token", "", dto.RefreshTokenRequest{
		IDUser:   "otro",
		OldToken: token,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Logout del token emitido.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/logout", "", dto.LogoutRequest{Token: token})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Segundo logout del mismo token: ya no existe.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/logout", "", dto.LogoutRequest{Token: token})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStorage_URLYDescarga(t *testing.T) {
	app := buildApp(t)
	token := login(t, app)

	// URL de un archivo inexistente: 404 con envoltura.
	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/storage/url/vouchers/nada.jpg", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// La descarga pública de un inexistente también es 404.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/storage/files/vouchers/nada.jpg", nil)
	raw, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, raw.StatusCode)
}
