package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/muebleria-api/internal/application/usecase"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/muebleria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio de clientes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	items map[string]*entity.Customer // por ID
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{items: make(map[string]*entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	copied := *c
	r.items[c.ID] = &copied
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if c, ok := r.items[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r *memCustomerRepo) GetByNIF(nif string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.NIF == nif {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) List(nif string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.items {
		if nif != "" && c.NIF != nif {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	copied := *c
	r.items[c.ID] = &copied
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// buildCustomerApp monta una app Fiber con el router completo (sin JWT) y el
// repositorio de clientes en memoria.
func buildCustomerApp() (*fiber.App, *memCustomerRepo) {
	repo := newMemCustomerRepo()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(repo),
	})
	return app, repo
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

var validCustomer = map[string]any{
	"name":    "Pedro",
	"nif":     "12345678Z",
	"address": "Calle Mayor 1",
	"email":   "pedro@mail.es",
	"phone":   "612345678",
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_Valido(t *testing.T) {
	app, _ := buildCustomerApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/customers", validCustomer), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["id"], "el alta debe asignar un ID")
	assert.Equal(t, "Pedro", body["name"])
	assert.Equal(t, "12345678Z", body["nif"])
}

func TestCustomerCreate_CamposInvalidos(t *testing.T) {
	app, _ := buildCustomerApp()

	bad := map[string]any{"name": "pedro", "nif": "malo", "address": "", "phone": "123"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/customers", bad), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.NotEmpty(t, body["fields"], "debe listar los campos inválidos")
}

func TestCustomerCreate_NIFDuplicado(t *testing.T) {
	app, _ := buildCustomerApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/customers", validCustomer), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/customers", validCustomer), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "el duplicado se rechaza con 400")
	body := decodeBody(t, resp)
	assert.Equal(t, "DUPLICATE", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerList_FiltroPorNIF(t *testing.T) {
	app, repo := buildCustomerApp()
	repo.Create(&entity.Customer{ID: "c-1", Name: "Pedro", NIF: "12345678Z", Address: "x", Phone: "612345678"})
	repo.Create(&entity.Customer{ID: "c-2", Name: "Lucía", NIF: "87654321X", Address: "x", Phone: "698765432"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/customers?nif=87654321X", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Lucía", list[0]["name"])
}

func TestCustomerGetByID_NoExiste(t *testing.T) {
	app, _ := buildCustomerApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/customers/no-existe", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Modificación
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerUpdate_CampoFueraDeAllowList(t *testing.T) {
	app, repo := buildCustomerApp()
	repo.Create(&entity.Customer{ID: "c-1", Name: "Pedro", NIF: "12345678Z", Address: "x", Phone: "612345678"})

	// El NIF es clave natural: intentar cambiarlo se rechaza de plano.
	resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/customers/c-1", map[string]any{"nif": "99999999X"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "INVALID_UPDATES", body["code"])
}

func TestCustomerUpdate_PorNIF(t *testing.T) {
	app, repo := buildCustomerApp()
	repo.Create(&entity.Customer{ID: "c-1", Name: "Pedro", NIF: "12345678Z", Address: "Calle Mayor 1", Phone: "612345678"})

	resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/customers?nif=12345678Z", map[string]any{"phone": "698765432"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "698765432", body["phone"])
	assert.Equal(t, "Pedro", body["name"], "los campos no enviados se conservan")
}

func TestCustomerUpdate_TelefonoInvalido(t *testing.T) {
	app, repo := buildCustomerApp()
	repo.Create(&entity.Customer{ID: "c-1", Name: "Pedro", NIF: "12345678Z", Address: "x", Phone: "612345678"})

	resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/customers/c-1", map[string]any{"phone": "123"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Baja
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerDelete_PorID(t *testing.T) {
	app, repo := buildCustomerApp()
	repo.Create(&entity.Customer{ID: "c-1", Name: "Pedro", NIF: "12345678Z", Address: "x", Phone: "612345678"})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/customers/c-1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["deleted"])

	got, err := repo.GetByID("c-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCustomerDelete_PorNIFInexistente(t *testing.T) {
	app, _ := buildCustomerApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/customers?nif=12345678Z", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
