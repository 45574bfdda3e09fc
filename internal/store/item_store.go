package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vbonduro/pantry/internal/domain"
)

const itemColumns = `id, name, category, quantity, unit, expiry_date, price, image`

type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// conn returns the transaction carried by ctx, if any, or the database.
func (s *ItemStore) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

// WithTx runs fn in a single transaction. Store calls made with the context
// passed to fn join the transaction, which commits when fn returns nil and
// rolls back otherwise. Nested calls reuse the outer transaction.
func (s *ItemStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *ItemStore) Create(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	_, err := s.conn(ctx).ExecContext(ctx, `
		INSERT INTO inventory_items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.Name, item.Category, item.Quantity, item.Unit, item.ExpiryDate, item.Price, item.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return s.GetByID(ctx, item.ID)
}

// GetByID returns nil, nil when no item has the given id.
func (s *ItemStore) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	item, err := scanItem(s.conn(ctx).QueryRowContext(ctx, `
		SELECT `+itemColumns+` FROM inventory_items WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// FindByNameAndCategory matches name case-insensitively and category exactly.
// It returns nil, nil when there is no such item.
func (s *ItemStore) FindByNameAndCategory(ctx context.Context, name, category string) (*domain.InventoryItem, error) {
	item, err := scanItem(s.conn(ctx).QueryRowContext(ctx, `
		SELECT `+itemColumns+` FROM inventory_items
		WHERE LOWER(name) = LOWER(?) AND category = ?
		ORDER BY rowid ASC LIMIT 1
	`, name, category))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	return item, nil
}

// List returns items in the order they were added. An empty category lists
// every item.
func (s *ItemStore) List(ctx context.Context, category string) ([]*domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY rowid ASC`

	rows, err := s.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var items []*domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// Categories returns the distinct categories in the order first seen.
func (s *ItemStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.conn(ctx).QueryContext(ctx, `
		SELECT category FROM inventory_items
		GROUP BY category ORDER BY MIN(rowid) ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func (s *ItemStore) AddQuantity(ctx context.Context, id string, delta float64) error {
	result, err := s.conn(ctx).ExecContext(ctx, `
		UPDATE inventory_items SET quantity = quantity + ? WHERE id = ?
	`, delta, id)
	if err != nil {
		return fmt.Errorf("failed to update item quantity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (s *ItemStore) Delete(ctx context.Context, id string) error {
	result, err := s.conn(ctx).ExecContext(ctx, `
		DELETE FROM inventory_items WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	if err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit, &item.ExpiryDate, &item.Price, &item.Image); err != nil {
		return nil, err
	}
	return item, nil
}
