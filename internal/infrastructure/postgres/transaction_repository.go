package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
// Las líneas viven en transaction_lines, ordenadas por position.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste la transacción y sus líneas.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions
			(id, entity_kind, entity_id, entity_tax_id, type, observations, total_amount, date_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.EntityKind, t.EntityID, t.EntityTaxID, t.Type, t.Observations,
		t.TotalAmount, t.DateTime, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return r.insertLines(t.ID, t.Lines)
}

func (r *TransactionRepo) insertLines(transactionID string, lines []entity.TransactionLine) error {
	query := `
		INSERT INTO transaction_lines (transaction_id, position, furniture_id, furniture_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, l := range lines {
		_, err := r.q.Exec(context.Background(), query,
			transactionID, i, l.FurnitureID, l.FurnitureName, l.Quantity, l.UnitPrice)
		if err != nil {
			return fmt.Errorf("insert transaction line %d: %w", i, err)
		}
	}
	return nil
}

const transactionColumns = `id, entity_kind, entity_id, entity_tax_id, type, observations, total_amount, date_time, created_at, updated_at`

// GetByID obtiene una transacción con sus líneas.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.EntityKind, &t.EntityID, &t.EntityTaxID, &t.Type, &t.Observations,
		&t.TotalAmount, &t.DateTime, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	lines, err := r.loadLines(t.ID)
	if err != nil {
		return nil, err
	}
	t.Lines = lines
	return &t, nil
}

func (r *TransactionRepo) loadLines(transactionID string) ([]entity.TransactionLine, error) {
	query := `
		SELECT furniture_id, furniture_name, quantity, unit_price
		FROM transaction_lines WHERE transaction_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("load transaction lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.TransactionLine
	for rows.Next() {
		var l entity.TransactionLine
		if err := rows.Scan(&l.FurnitureID, &l.FurnitureName, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan transaction line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// List devuelve transacciones (con líneas) que cumplan el filtro, más recientes primero.
func (r *TransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		conds = append(conds, "date_time >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conds = append(conds, "date_time <= "+arg(*filter.EndDate))
	}
	if filter.Type != "" {
		conds = append(conds, "type = "+arg(filter.Type))
	}
	if filter.NIF != "" {
		conds = append(conds, "entity_kind = 'Customer' AND entity_tax_id = "+arg(filter.NIF))
	}
	if filter.CIF != "" {
		conds = append(conds, "entity_kind = 'Provider' AND entity_tax_id = "+arg(filter.CIF))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date_time DESC LIMIT " + arg(limit) + " OFFSET " + arg(offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.EntityKind, &t.EntityID, &t.EntityTaxID, &t.Type,
			&t.Observations, &t.TotalAmount, &t.DateTime, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		lines, err := r.loadLines(t.ID)
		if err != nil {
			return nil, err
		}
		t.Lines = lines
	}
	return list, nil
}

// UpdateLines reemplaza líneas y observaciones y recalcula el importe total.
func (r *TransactionRepo) UpdateLines(t *entity.Transaction) error {
	query := `
		UPDATE transactions SET observations = $2, total_amount = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Observations, t.TotalAmount, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM transaction_lines WHERE transaction_id = $1`, t.ID); err != nil {
		return fmt.Errorf("clear transaction lines: %w", err)
	}
	return r.insertLines(t.ID, t.Lines)
}

// Delete elimina la transacción (las líneas caen por ON DELETE CASCADE).
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
