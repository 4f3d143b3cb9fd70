package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/muebleria-api/internal/application/transaction"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/muebleria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria (muebles, transacciones, proveedores y runner)
// ──────────────────────────────────────────────────────────────────────────────

type memFurnitureRepo struct {
	items map[string]*entity.Furniture
}

func newMemFurnitureRepo() *memFurnitureRepo {
	return &memFurnitureRepo{items: make(map[string]*entity.Furniture)}
}

func (r *memFurnitureRepo) Create(f *entity.Furniture) error {
	copied := *f
	r.items[f.ID] = &copied
	return nil
}

func (r *memFurnitureRepo) GetByID(id string) (*entity.Furniture, error) {
	if f, ok := r.items[id]; ok {
		copied := *f
		return &copied, nil
	}
	return nil, nil
}

func (r *memFurnitureRepo) GetByName(name string) (*entity.Furniture, error) {
	for _, f := range r.items {
		if f.Name == name {
			copied := *f
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memFurnitureRepo) GetByNameForUpdate(name string) (*entity.Furniture, error) {
	return r.GetByName(name)
}

func (r *memFurnitureRepo) GetByIDForUpdate(id string) (*entity.Furniture, error) {
	return r.GetByID(id)
}

func (r *memFurnitureRepo) List(filter repository.FurnitureFilter, limit, offset int) ([]*entity.Furniture, error) {
	var out []*entity.Furniture
	for _, f := range r.items {
		copied := *f
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memFurnitureRepo) Update(f *entity.Furniture) error {
	copied := *f
	r.items[f.ID] = &copied
	return nil
}

func (r *memFurnitureRepo) UpdateStock(id string, stock int64) error {
	if f, ok := r.items[id]; ok {
		f.Stock = stock
	}
	return nil
}

func (r *memFurnitureRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type memTransactionRepo struct {
	items map[string]*entity.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{items: make(map[string]*entity.Transaction)}
}

func (r *memTransactionRepo) Create(t *entity.Transaction) error {
	copied := *t
	copied.Lines = append([]entity.TransactionLine(nil), t.Lines...)
	r.items[t.ID] = &copied
	return nil
}

func (r *memTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	if t, ok := r.items[id]; ok {
		copied := *t
		copied.Lines = append([]entity.TransactionLine(nil), t.Lines...)
		return &copied, nil
	}
	return nil, nil
}

func (r *memTransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.items {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memTransactionRepo) UpdateLines(t *entity.Transaction) error {
	return r.Create(t)
}

func (r *memTransactionRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type memProviderRepo struct {
	items map[string]*entity.Provider // por CIF
}

func (r *memProviderRepo) Create(p *entity.Provider) error { r.items[p.CIF] = p; return nil }
func (r *memProviderRepo) GetByID(id string) (*entity.Provider, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProviderRepo) GetByCIF(cif string) (*entity.Provider, error) { return r.items[cif], nil }
func (r *memProviderRepo) List(cif string, limit, offset int) ([]*entity.Provider, error) {
	return nil, nil
}
func (r *memProviderRepo) Update(p *entity.Provider) error { return nil }
func (r *memProviderRepo) Delete(id string) error          { return nil }

// noopTxRunner ejecuta fn directamente sobre los repos en memoria. La
// atomicidad ante fallo se verifica en los tests del caso de uso; aquí solo
// interesa el contrato HTTP.
type noopTxRunner struct {
	furniture    *memFurnitureRepo
	transactions *memTransactionRepo
}

func (r *noopTxRunner) Run(ctx context.Context, fn func(repository.FurnitureRepository, repository.TransactionRepository) error) error {
	return fn(r.furniture, r.transactions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type transactionFixture struct {
	app          *fiber.App
	furniture    *memFurnitureRepo
	transactions *memTransactionRepo
}

func buildTransactionApp(t *testing.T) *transactionFixture {
	t.Helper()
	furniture := newMemFurnitureRepo()
	transactions := newMemTransactionRepo()
	customers := newMemCustomerRepo()
	require.NoError(t, customers.Create(&entity.Customer{
		ID: "c-1", Name: "Pedro", NIF: "12345678Z", Address: "Calle Mayor 1", Phone: "612345678",
	}))
	providers := &memProviderRepo{items: map[string]*entity.Provider{
		"A12345678": {ID: "p-1", Name: "Maderas del Norte", CIF: "A12345678", Address: "x", Phone: "912345678"},
	}}
	runner := &noopTxRunner{furniture: furniture, transactions: transactions}
	uc := transaction.NewUseCase(runner, customers, providers, transactions)

	now := time.Now()
	require.NoError(t, furniture.Create(&entity.Furniture{
		ID: "f-1", Type: "Chair", Name: "Silla Nórdica", Description: "Silla de comedor",
		Color: "Gris", Dimensions: "46x52x82 cm", Price: decimal.NewFromInt(100), Stock: 10,
		CreatedAt: now, UpdatedAt: now,
	}))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{TransactionUC: uc})
	return &transactionFixture{app: app, furniture: furniture, transactions: transactions}
}

func sellOrderBody() map[string]any {
	return map[string]any{
		"entity": map[string]any{"type": "Customer", "nif": "12345678Z"},
		"type":   "Sell Order",
		"furniture": []map[string]any{
			{"name": "Silla Nórdica", "quantity": 2},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionCreate_Venta(t *testing.T) {
	f := buildTransactionApp(t)

	resp, err := f.app.Test(jsonRequest(t, http.MethodPost, "/transactions", sellOrderBody()), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "200", body["total_amount"], "2 × 100")

	chair, err := f.furniture.GetByID("f-1")
	require.NoError(t, err)
	assert.Equal(t, int64(8), chair.Stock)
}

func TestTransactionCreate_StockInsuficiente(t *testing.T) {
	f := buildTransactionApp(t)

	body := sellOrderBody()
	body["furniture"] = []map[string]any{{"name": "Silla Nórdica", "quantity": 999}}
	resp, err := f.app.Test(jsonRequest(t, http.MethodPost, "/transactions", body), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", out["code"])
}

func TestTransactionCreate_TipoNoPermitidoParaEntidad(t *testing.T) {
	f := buildTransactionApp(t)

	body := sellOrderBody()
	body["type"] = "Purchase Order" // un cliente no emite órdenes de compra
	resp, err := f.app.Test(jsonRequest(t, http.MethodPost, "/transactions", body), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "INVALID_TRANSACTION_TYPE", out["code"])
}

func TestTransactionCreate_EntidadInexistente(t *testing.T) {
	f := buildTransactionApp(t)

	body := sellOrderBody()
	body["entity"] = map[string]any{"type": "Customer", "nif": "99999999X"}
	resp, err := f.app.Test(jsonRequest(t, http.MethodPost, "/transactions", body), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTransactionList_FiltroPorTipo(t *testing.T) {
	f := buildTransactionApp(t)

	resp, err := f.app.Test(jsonRequest(t, http.MethodPost, "/transactions", sellOrderBody()), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = f.app.Test(httptest.NewRequest(http.MethodGet, "/transactions?type=Sell%20Order", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = f.app.Test(httptest.NewRequest(http.MethodGet, "/transactions?type=Donation", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "un tipo desconocido en el filtro es 400")
	resp.Body.Close()
}

func TestTransactionUpdate_CampoFueraDeAllowList(t *testing.T) {
	f := buildTransactionApp(t)

	resp, err := f.app.Test(jsonRequest(t, http.MethodPost, "/transactions", sellOrderBody()), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	// Ni la entidad ni el tipo son mutables.
	resp, err = f.app.Test(jsonRequest(t, http.MethodPatch, "/transactions/"+id, map[string]any{"type": "Refund from client"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "INVALID_UPDATES", out["code"])
}

func TestTransactionUpdate_Observations(t *testing.T) {
	f := buildTransactionApp(t)

	resp, err := f.app.Test(jsonRequest(t, http.MethodPost, "/transactions", sellOrderBody()), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id, _ := created["id"].(string)

	resp, err = f.app.Test(jsonRequest(t, http.MethodPatch, "/transactions/"+id, map[string]any{"observations": "recoger en tienda"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "recoger en tienda", out["observations"])
}

func TestTransactionDelete(t *testing.T) {
	f := buildTransactionApp(t)

	resp, err := f.app.Test(jsonRequest(t, http.MethodPost, "/transactions", sellOrderBody()), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id, _ := created["id"].(string)

	resp, err = f.app.Test(httptest.NewRequest(http.MethodDelete, "/transactions/"+id, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = f.app.Test(httptest.NewRequest(http.MethodGet, "/transactions/"+id, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// El borrado del apunte no devuelve el género al stock.
	chair, err := f.furniture.GetByID("f-1")
	require.NoError(t, err)
	assert.Equal(t, int64(8), chair.Stock)
}
