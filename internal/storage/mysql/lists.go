package mysql

import (
	"context"
	"fmt"

	"feemo-backend/internal/constants"
	"feemo-backend/internal/storage"
)

func (s *Storage) GetBuildingTypes(ctx context.Context) ([]storage.BuildingType, error) {
	const op = "storage.mysql.GetBuildingTypes"

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM building_types ORDER BY sort")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var types []storage.BuildingType

	for rows.Next() {
		var bt storage.BuildingType
		if err := rows.Scan(&bt.ID, &bt.Name); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		types = append(types, bt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	if len(types) == 0 {
		return constants.DefaultBuildingTypes, nil
	}

	return types, nil
}

func (s *Storage) GetActionTypes(ctx context.Context) ([]storage.ActionType, error) {
	const op = "storage.mysql.GetActionTypes"

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM action_types ORDER BY sort")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var types []storage.ActionType

	for rows.Next() {
		var at storage.ActionType
		if err := rows.Scan(&at.ID, &at.Name); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		types = append(types, at)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	if len(types) == 0 {
		return constants.DefaultActionTypes, nil
	}

	return types, nil
}

// UpdateLists перезаписывает оба справочника из панели конфигурации
func (s *Storage) UpdateLists(ctx context.Context, building []storage.BuildingType, action []storage.ActionType) error {
	const op = "storage.mysql.UpdateLists"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM building_types"); err != nil {
		return fmt.Errorf("%s: очистка building_types: %w", op, err)
	}
	for i, bt := range building {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO building_types (id, name, sort) VALUES (?, ?, ?)",
			bt.ID, bt.Name, i+1); err != nil {
			return fmt.Errorf("%s: ошибка записи типа здания id=%s: %w", op, bt.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM action_types"); err != nil {
		return fmt.Errorf("%s: очистка action_types: %w", op, err)
	}
	for i, at := range action {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO action_types (id, name, sort) VALUES (?, ?, ?)",
			at.ID, at.Name, i+1); err != nil {
			return fmt.Errorf("%s: ошибка записи вида работ id=%s: %w", op, at.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}
