package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/giftai/giftai/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// LoadSQLite reads a catalog from the SQLite database at dbPath and builds
// a validated Store from it. The database is only read, never written;
// tags are stored as a comma-separated list.
func LoadSQLite(ctx context.Context, dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath is required")
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx,
		`SELECT id, name, category, base_price, tags, base_description
		 FROM catalog_items
		 ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.CatalogItem
	for rows.Next() {
		var item model.CatalogItem
		var tags string
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.BasePrice, &tags, &item.BaseDescription); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		item.Tags = splitTags(tags)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog items: %w", err)
	}

	store, err := NewStore(items)
	if err != nil {
		return nil, fmt.Errorf("catalog database %s: %w", dbPath, err)
	}
	return store, nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
