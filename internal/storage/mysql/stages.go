package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"feemo-backend/internal/constants"
	"feemo-backend/internal/storage"
)

// GetStageDefinitions отдаёт справочник этапов в порядке sort.
// Пустая таблица = дефолтный набор из констант.
func (s *Storage) GetStageDefinitions(ctx context.Context) ([]storage.Stage, error) {
	const op = "storage.mysql.GetStageDefinitions"

	stmt := `
		SELECT id, type, name, description, is_enabled, fixed_price, sort
		FROM stage_definitions
		ORDER BY sort
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var stages []storage.Stage

	for rows.Next() {
		var (
			st    storage.Stage
			descr sql.NullString
			price sql.NullFloat64
		)
		if err := rows.Scan(&st.ID, &st.Type, &st.Name, &descr, &st.IsEnabled, &price, &st.Sort); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		st.Description = descr.String
		st.FixedPrice = price.Float64
		stages = append(stages, st)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	if len(stages) == 0 {
		return constants.DefaultStages, nil
	}

	return stages, nil
}

// UpdateStageDefinitions перезаписывает справочник этапов целиком
func (s *Storage) UpdateStageDefinitions(ctx context.Context, stages []storage.Stage) error {
	const op = "storage.mysql.UpdateStageDefinitions"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM stage_definitions"); err != nil {
		return fmt.Errorf("%s: очистка таблицы: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stage_definitions (id, type, name, description, is_enabled, fixed_price, sort)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare statement: %w", op, err)
	}
	defer stmt.Close()

	for i, st := range stages {
		sort := st.Sort
		if sort == 0 {
			sort = i + 1
		}
		if _, err := stmt.ExecContext(ctx, st.ID, st.Type, st.Name, st.Description, st.IsEnabled, st.FixedPrice, sort); err != nil {
			return fmt.Errorf("%s: ошибка записи этапа id=%s: %w", op, st.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// GetMultipliers читает глобальные множители — одна строка с JSON-колонкой.
// Отсутствие строки = дефолтные значения.
func (s *Storage) GetMultipliers(ctx context.Context) (storage.GlobalMultipliers, error) {
	const op = "storage.mysql.GetMultipliers"

	var raw string

	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM global_multipliers WHERE id = 1").Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return constants.DefaultMultipliers, nil
		}
		return storage.GlobalMultipliers{}, fmt.Errorf("%s: %w", op, err)
	}

	var m storage.GlobalMultipliers
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return storage.GlobalMultipliers{}, fmt.Errorf("%s: ошибка разбора payload: %w", op, err)
	}

	return m, nil
}

func (s *Storage) UpdateMultipliers(ctx context.Context, m storage.GlobalMultipliers) error {
	const op = "storage.mysql.UpdateMultipliers"

	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%s: ошибка сериализации: %w", op, err)
	}

	stmt := `
		INSERT INTO global_multipliers (id, payload) VALUES (1, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload)
	`

	if _, err := s.db.ExecContext(ctx, stmt, string(payload)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
