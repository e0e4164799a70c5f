package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"partyrental/internal/db"
)

// ErrItemNotFound is returned when a lookup matches no inventory item.
var ErrItemNotFound = errors.New("inventory item not found")

type InventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepository(database *sql.DB) *InventoryRepository {
	return &InventoryRepository{DB: database}
}

const itemColumns = `
	id, name, category, description, base_price, requires_power,
	min_space_sqft, allowed_surfaces, warehouse_id, status, website_visible, created_at`

func scanItem(row interface{ Scan(...any) error }) (*db.InventoryItem, error) {
	var item db.InventoryItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.Description, &item.BasePrice, &item.RequiresPower,
		&item.MinSpaceSqft, &item.AllowedSurfaces, &item.WarehouseID, &item.Status, &item.WebsiteVisible, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns the catalog, optionally narrowed to a category or
// status, ordered by name for stable presentation.
func (r *InventoryRepository) ListItems(category, status string) ([]db.InventoryItem, error) {
	where := `WHERE 1=1`
	args := []any{}
	if category != "" {
		args = append(args, category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	rows, err := r.DB.Query(`SELECT `+itemColumns+` FROM inventory_items `+where+` ORDER BY name`, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing inventory: %w", err)
	}
	defer rows.Close()

	var items []db.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning inventory item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) GetItem(id string) (*db.InventoryItem, error) {
	row := r.DB.QueryRow(`SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("error querying inventory item %s: %w", id, err)
	}
	return item, nil
}

func (r *InventoryRepository) GetItemsByIDs(ids []string) (map[string]db.InventoryItem, error) {
	if len(ids) == 0 {
		return map[string]db.InventoryItem{}, nil
	}
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = ANY($1)`
	rows, err := r.DB.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error querying inventory items: %w", err)
	}
	defer rows.Close()

	items := make(map[string]db.InventoryItem, len(ids))
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning inventory item: %w", err)
		}
		items[item.ID] = *item
	}
	return items, rows.Err()
}

func (r *InventoryRepository) UpdateItem(item *db.InventoryItem) error {
	query := `
		UPDATE inventory_items SET
			name = $2, category = $3, description = $4, base_price = $5,
			requires_power = $6, min_space_sqft = $7, allowed_surfaces = $8, status = $9
		WHERE id = $1`
	result, err := r.DB.Exec(query, item.ID, item.Name, item.Category, item.Description, item.BasePrice,
		item.RequiresPower, item.MinSpaceSqft, item.AllowedSurfaces, item.Status)
	if err != nil {
		return fmt.Errorf("error updating inventory item %s: %w", item.ID, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *InventoryRepository) CountItems() (int64, error) {
	var count int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM inventory_items WHERE status <> 'retired'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting inventory: %w", err)
	}
	return count, nil
}
