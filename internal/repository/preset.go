package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
)

var ErrPresetNotFound = errors.New("preset not found")

// PresetRepository handles saved generation preset persistence. Only
// configuration fields are stored; the table has no password column.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new PresetRepository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

const presetColumns = `user_id, name, length, uppercase_on, lowercase_on, digits_on, symbols_on, exclude_ambiguous, guarantee_each_type`

// Upsert inserts a preset or replaces the configuration of an existing one
// with the same (user, name) key.
func (r *PresetRepository) Upsert(ctx context.Context, p *model.Preset) error {
	query := `
		INSERT INTO presets (` + presetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			length              = VALUES(length),
			uppercase_on        = VALUES(uppercase_on),
			lowercase_on        = VALUES(lowercase_on),
			digits_on           = VALUES(digits_on),
			symbols_on          = VALUES(symbols_on),
			exclude_ambiguous   = VALUES(exclude_ambiguous),
			guarantee_each_type = VALUES(guarantee_each_type),
			updated_at          = CURRENT_TIMESTAMP`

	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Length,
		p.Uppercase, p.Lowercase, p.Digits, p.Symbols,
		p.ExcludeAmbiguous, p.GuaranteeEachType,
	)
	return err
}

// GetByName retrieves one of the user's presets by name.
func (r *PresetRepository) GetByName(ctx context.Context, userID int64, name string) (*model.Preset, error) {
	query := `
		SELECT id, ` + presetColumns + `, created_at, updated_at
		FROM presets WHERE user_id = ? AND name = ?`

	p := &model.Preset{}
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Length,
		&p.Uppercase, &p.Lowercase, &p.Digits, &p.Symbols,
		&p.ExcludeAmbiguous, &p.GuaranteeEachType,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}

	return p, nil
}

// ListByUser retrieves all of the user's presets ordered by name.
func (r *PresetRepository) ListByUser(ctx context.Context, userID int64) ([]model.Preset, error) {
	query := `
		SELECT id, ` + presetColumns + `, created_at, updated_at
		FROM presets WHERE user_id = ? ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []model.Preset
	for rows.Next() {
		var p model.Preset
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Length,
			&p.Uppercase, &p.Lowercase, &p.Digits, &p.Symbols,
			&p.ExcludeAmbiguous, &p.GuaranteeEachType,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	return presets, rows.Err()
}

// Delete removes one of the user's presets by name.
func (r *PresetRepository) Delete(ctx context.Context, userID int64, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM presets WHERE user_id = ? AND name = ?`, userID, name)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPresetNotFound
	}

	return nil
}
