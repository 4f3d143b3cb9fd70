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

var _ repository.FurnitureRepository = (*FurnitureRepo)(nil)

// FurnitureRepo implementación de FurnitureRepository (usable con pool o tx).
type FurnitureRepo struct {
	q Querier
}

// NewFurnitureRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFurnitureRepository(q Querier) *FurnitureRepo {
	return &FurnitureRepo{q: q}
}

const furnitureColumns = `id, type, name, description, color, dimensions, price, stock, created_at, updated_at`

// Create persiste un mueble nuevo.
func (r *FurnitureRepo) Create(furniture *entity.Furniture) error {
	query := `
		INSERT INTO furnitures (id, type, name, description, color, dimensions, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		furniture.ID, furniture.Type, furniture.Name, furniture.Description, furniture.Color,
		furniture.Dimensions, furniture.Price, furniture.Stock, furniture.CreatedAt, furniture.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert furniture: %w", err)
	}
	return nil
}

// GetByID obtiene un mueble por ID.
func (r *FurnitureRepo) GetByID(id string) (*entity.Furniture, error) {
	query := `SELECT ` + furnitureColumns + ` FROM furnitures WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get furniture")
}

// GetByName obtiene un mueble por nombre exacto.
func (r *FurnitureRepo) GetByName(name string) (*entity.Furniture, error) {
	query := `SELECT ` + furnitureColumns + ` FROM furnitures WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get furniture by name")
}

// GetByNameForUpdate bloquea la fila del mueble (SELECT FOR UPDATE) para el
// ajuste de stock. Solo tiene efecto dentro de una transacción.
func (r *FurnitureRepo) GetByNameForUpdate(name string) (*entity.Furniture, error) {
	query := `SELECT ` + furnitureColumns + ` FROM furnitures WHERE name = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "lock furniture by name")
}

// GetByIDForUpdate bloquea la fila del mueble por ID.
func (r *FurnitureRepo) GetByIDForUpdate(id string) (*entity.Furniture, error) {
	query := `SELECT ` + furnitureColumns + ` FROM furnitures WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "lock furniture")
}

func (r *FurnitureRepo) scanOne(row pgx.Row, op string) (*entity.Furniture, error) {
	var f entity.Furniture
	err := row.Scan(&f.ID, &f.Type, &f.Name, &f.Description, &f.Color, &f.Dimensions,
		&f.Price, &f.Stock, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &f, nil
}

// List lista muebles con filtros substring case-insensitive y paginación.
func (r *FurnitureRepo) List(filter repository.FurnitureFilter, limit, offset int) ([]*entity.Furniture, error) {
	query := `
		SELECT ` + furnitureColumns + ` FROM furnitures
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR description ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR color ILIKE '%' || $3 || '%')
		ORDER BY name LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		filter.Name, filter.Description, filter.Color, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list furnitures: %w", err)
	}
	defer rows.Close()
	var list []*entity.Furniture
	for rows.Next() {
		var f entity.Furniture
		if err := rows.Scan(&f.ID, &f.Type, &f.Name, &f.Description, &f.Color, &f.Dimensions,
			&f.Price, &f.Stock, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan furniture: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un mueble (el stock va por UpdateStock).
func (r *FurnitureRepo) Update(furniture *entity.Furniture) error {
	query := `
		UPDATE furnitures
		SET type = $2, name = $3, description = $4, color = $5, dimensions = $6, price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		furniture.ID, furniture.Type, furniture.Name, furniture.Description, furniture.Color,
		furniture.Dimensions, furniture.Price, furniture.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update furniture: %w", err)
	}
	return nil
}

// UpdateStock fija el stock del mueble. Pensado para llamarse con la fila bloqueada.
func (r *FurnitureRepo) UpdateStock(id string, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE furnitures SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update furniture stock: %w", err)
	}
	return nil
}

// Delete elimina un mueble por ID.
func (r *FurnitureRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM furnitures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete furniture: %w", err)
	}
	return nil
}
