package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"feemo-backend/internal/storage"
)

// SaveCalculation пишет запись истории. Снимок (inputs, stages, team,
// templates, multipliers) сериализуется в JSON-колонку целиком —
// так история переживает любые правки живой конфигурации.
func (s *Storage) SaveCalculation(ctx context.Context, calc storage.SavedCalculation) error {
	const op = "storage.mysql.SaveCalculation"

	snapshot, err := json.Marshal(calc)
	if err != nil {
		return fmt.Errorf("%s: ошибка сериализации снимка: %w", op, err)
	}

	stmt := `
		INSERT INTO saved_calculations (id, user_id, project_id, date, name, total_cost, snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, stmt,
		calc.ID, calc.UserID, calc.ProjectID, calc.Date, calc.Name, calc.TotalCost, string(snapshot))
	if err != nil {
		return fmt.Errorf("%s: Ошибка сохранения расчета: %w", op, err)
	}

	return nil
}

func (s *Storage) GetCalculationsByUser(ctx context.Context, userID string) ([]storage.SavedCalculation, error) {
	const op = "storage.mysql.GetCalculationsByUser"

	stmt := `
		SELECT snapshot FROM saved_calculations
		WHERE user_id = ?
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, stmt, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var calcs []storage.SavedCalculation

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		var calc storage.SavedCalculation
		if err := json.Unmarshal([]byte(raw), &calc); err != nil {
			return nil, fmt.Errorf("%s: ошибка разбора снимка: %w", op, err)
		}
		calcs = append(calcs, calc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return calcs, nil
}

func (s *Storage) GetCalculationByID(ctx context.Context, id string) (storage.SavedCalculation, error) {
	const op = "storage.mysql.GetCalculationByID"

	var raw string

	err := s.db.QueryRowContext(ctx,
		"SELECT snapshot FROM saved_calculations WHERE id = ?", id).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.SavedCalculation{}, fmt.Errorf("%s: расчет id=%s не найден: %w", op, id, err)
		}
		return storage.SavedCalculation{}, fmt.Errorf("%s: %w", op, err)
	}

	var calc storage.SavedCalculation
	if err := json.Unmarshal([]byte(raw), &calc); err != nil {
		return storage.SavedCalculation{}, fmt.Errorf("%s: ошибка разбора снимка: %w", op, err)
	}

	return calc, nil
}

// UpdateCalculation — частичное обновление метаданных записи.
// Снимок расчёта неизменяемый, правится только имя и привязка к проекту.
func (s *Storage) UpdateCalculation(ctx context.Context, id string, upd storage.UpdateCalculation) error {
	const op = "storage.mysql.UpdateCalculation"

	var (
		sets []string
		args []interface{}
	)

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.ClearProj {
		sets = append(sets, "project_id = NULL")
	} else if upd.ProjectID != nil {
		sets = append(sets, "project_id = ?")
		args = append(args, *upd.ProjectID)
	}

	if len(sets) == 0 {
		return nil
	}

	// имя и привязка дублируются в снимке, правим и его
	stmt := fmt.Sprintf(
		"UPDATE saved_calculations SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: расчет id=%s не найден", op, id)
	}

	return s.syncSnapshotMeta(ctx, id, upd)
}

// syncSnapshotMeta переносит правки метаданных внутрь JSON-снимка,
// чтобы колонки и снимок не разошлись
func (s *Storage) syncSnapshotMeta(ctx context.Context, id string, upd storage.UpdateCalculation) error {
	const op = "storage.mysql.syncSnapshotMeta"

	calc, err := s.GetCalculationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if upd.Name != nil {
		calc.Name = *upd.Name
	}
	if upd.ClearProj {
		calc.ProjectID = nil
	} else if upd.ProjectID != nil {
		calc.ProjectID = upd.ProjectID
	}

	snapshot, err := json.Marshal(calc)
	if err != nil {
		return fmt.Errorf("%s: ошибка сериализации снимка: %w", op, err)
	}

	if _, err := s.db.ExecContext(ctx,
		"UPDATE saved_calculations SET snapshot = ? WHERE id = ?", string(snapshot), id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteCalculation(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteCalculation"

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM saved_calculations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: Ошибка удаления расчета: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: расчет id=%s не найден", op, id)
	}

	return nil
}
