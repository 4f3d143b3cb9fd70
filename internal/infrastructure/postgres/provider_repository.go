package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/muebleria-api/internal/domain"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación de ProviderRepository (usable con pool o tx).
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

const providerColumns = `id, name, cif, address, COALESCE(email, ''), phone, created_at, updated_at`

// Create persiste un nuevo proveedor.
func (r *ProviderRepo) Create(provider *entity.Provider) error {
	query := `
		INSERT INTO providers (id, name, cif, address, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		provider.ID, provider.Name, provider.CIF, provider.Address, provider.Email, provider.Phone,
		provider.CreatedAt, provider.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProviderRepo) GetByID(id string) (*entity.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get provider")
}

// GetByCIF obtiene un proveedor por su clave natural.
func (r *ProviderRepo) GetByCIF(cif string) (*entity.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE cif = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, cif), "get provider by cif")
}

func (r *ProviderRepo) scanOne(row pgx.Row, op string) (*entity.Provider, error) {
	var p entity.Provider
	err := row.Scan(&p.ID, &p.Name, &p.CIF, &p.Address, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// List lista proveedores con paginación; cif no vacío filtra por coincidencia exacta.
func (r *ProviderRepo) List(cif string, limit, offset int) ([]*entity.Provider, error) {
	query := `
		SELECT ` + providerColumns + ` FROM providers
		WHERE ($1 = '' OR cif = $1)
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, cif, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.CIF, &p.Address, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables de un proveedor.
func (r *ProviderRepo) Update(provider *entity.Provider) error {
	query := `
		UPDATE providers SET name = $2, address = $3, email = NULLIF($4, ''), phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		provider.ID, provider.Name, provider.Address, provider.Email, provider.Phone, provider.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update provider: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *ProviderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	return nil
}
