package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
)

// ==================== Record Store ====================

// recordStore implements driven.RecordStore.
type recordStore struct {
	store *Store
}

var _ driven.RecordStore = (*recordStore)(nil)

const recordColumns = `id, name, subtitle, description, price, extra_info, cta_text, badge_text,
	features, category, page, is_active, is_highlighted, display_order`

// Fetch returns all records ordered by display order, then insertion order.
func (s *recordStore) Fetch(ctx context.Context) ([]domain.ServiceRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM services_data
		ORDER BY display_order ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.ServiceRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}

// Save inserts or updates a record, assigning a UUID if it has none.
func (s *recordStore) Save(ctx context.Context, record domain.ServiceRecord) (string, error) {
	id, ok := record.ID.Get()
	if !ok {
		id = uuid.New().String()
	}

	features, err := featuresJSON(record.Features)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO services_data (`+recordColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			subtitle = excluded.subtitle,
			description = excluded.description,
			price = excluded.price,
			extra_info = excluded.extra_info,
			cta_text = excluded.cta_text,
			badge_text = excluded.badge_text,
			features = excluded.features,
			category = excluded.category,
			page = excluded.page,
			is_active = excluded.is_active,
			is_highlighted = excluded.is_highlighted,
			display_order = excluded.display_order,
			updated_at = excluded.updated_at
	`, id,
		nullText(record.Name), nullText(record.Subtitle), nullText(record.Description),
		nullText(record.Price), nullText(record.ExtraInfo), nullText(record.CTAText),
		nullText(record.BadgeText), features, record.Category.String(), nullText(record.Page),
		nullFlag(record.IsActive), nullFlag(record.IsHighlighted), record.DisplayOrder,
		now, now)
	if err != nil {
		return "", fmt.Errorf("saving record: %w", err)
	}
	return id, nil
}

// Delete removes a record by ID.
func (s *recordStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM services_data WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindByName returns the first record stored with the category and name.
func (s *recordStore) FindByName(
	ctx context.Context,
	category domain.Category,
	name string,
) (*domain.ServiceRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM services_data
		WHERE category = ? AND name = ?
		ORDER BY rowid ASC
		LIMIT 1
	`, category.String(), name)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return record, err
}

// ==================== Helper Functions ====================

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one row. Values are normalised the same way as the
// JSON codec: blank text and blank feature lines become absent.
func scanRecord(row rowScanner) (*domain.ServiceRecord, error) {
	var (
		id, category                                  string
		name, subtitle, description, price, extraInfo sql.NullString
		ctaText, badgeText, features, page            sql.NullString
		isActive, isHighlighted                       sql.NullBool
		displayOrder                                  float64
	)
	err := row.Scan(&id, &name, &subtitle, &description, &price, &extraInfo,
		&ctaText, &badgeText, &features, &category, &page,
		&isActive, &isHighlighted, &displayOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	return &domain.ServiceRecord{
		ID:            domain.SomeText(id),
		Name:          textFrom(name),
		Subtitle:      textFrom(subtitle),
		Description:   textFrom(description),
		Price:         textFrom(price),
		ExtraInfo:     textFrom(extraInfo),
		CTAText:       textFrom(ctaText),
		BadgeText:     textFrom(badgeText),
		Features:      featuresFrom(features),
		Category:      domain.Category(category),
		Page:          textFrom(page),
		IsActive:      flagFrom(isActive),
		IsHighlighted: flagFrom(isHighlighted),
		DisplayOrder:  displayOrder,
	}, nil
}

func nullText(t domain.Text) sql.NullString {
	v, ok := t.Get()
	return sql.NullString{String: v, Valid: ok}
}

func textFrom(ns sql.NullString) domain.Text {
	if !ns.Valid {
		return domain.NoText()
	}
	return domain.SomeText(ns.String)
}

func nullFlag(f domain.Flag) sql.NullBool {
	return sql.NullBool{Bool: f == domain.FlagTrue, Valid: f.IsSet()}
}

func flagFrom(nb sql.NullBool) domain.Flag {
	if !nb.Valid {
		return domain.FlagUnset
	}
	return domain.FlagOf(nb.Bool)
}

func featuresJSON(f domain.Features) (sql.NullString, error) {
	lines := domain.NormalizeFeatures(f)
	if !lines.IsSet() {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal([]string(lines))
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshalling features: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// featuresFrom decodes the stored JSON array. Malformed values are absent.
func featuresFrom(ns sql.NullString) domain.Features {
	if !ns.Valid {
		return nil
	}
	var lines []string
	if err := json.Unmarshal([]byte(ns.String), &lines); err != nil {
		return nil
	}
	return domain.NormalizeFeatures(lines)
}
