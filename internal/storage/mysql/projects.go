package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"feemo-backend/internal/storage"
)

func (s *Storage) GetProjectsByUser(ctx context.Context, userID string) ([]storage.Project, error) {
	const op = "storage.mysql.GetProjectsByUser"

	stmt := `
		SELECT id, user_id, name, created_at, default_inputs
		FROM projects
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, stmt, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var projects []storage.Project

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return projects, nil
}

func (s *Storage) GetProjectByID(ctx context.Context, id string) (storage.Project, error) {
	const op = "storage.mysql.GetProjectByID"

	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, created_at, default_inputs
		FROM projects
		WHERE id = ?
	`, id)

	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.Project{}, fmt.Errorf("%s: проект id=%s не найден: %w", op, id, err)
		}
		return storage.Project{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func scanProject(row rowScanner) (storage.Project, error) {
	var (
		p      storage.Project
		inputs sql.NullString
	)

	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt, &inputs); err != nil {
		return storage.Project{}, err
	}

	if inputs.Valid && inputs.String != "" {
		var di storage.ProjectInputs
		if err := json.Unmarshal([]byte(inputs.String), &di); err != nil {
			return storage.Project{}, fmt.Errorf("ошибка разбора default_inputs: %w", err)
		}
		p.DefaultInputs = &di
	}

	return p, nil
}

func (s *Storage) CreateProject(ctx context.Context, p storage.Project) error {
	const op = "storage.mysql.CreateProject"

	var inputs interface{}
	if p.DefaultInputs != nil {
		raw, err := json.Marshal(p.DefaultInputs)
		if err != nil {
			return fmt.Errorf("%s: ошибка сериализации default_inputs: %w", op, err)
		}
		inputs = string(raw)
	}

	stmt := `
		INSERT INTO projects (id, user_id, name, created_at, default_inputs)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, stmt, p.ID, p.UserID, p.Name, p.CreatedAt, inputs); err != nil {
		return fmt.Errorf("%s: Ошибка создания проекта: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateProject(ctx context.Context, p storage.Project) error {
	const op = "storage.mysql.UpdateProject"

	var inputs interface{}
	if p.DefaultInputs != nil {
		raw, err := json.Marshal(p.DefaultInputs)
		if err != nil {
			return fmt.Errorf("%s: ошибка сериализации default_inputs: %w", op, err)
		}
		inputs = string(raw)
	}

	stmt := `UPDATE projects SET name = ?, default_inputs = ? WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, p.Name, inputs, p.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: проект id=%s не найден", op, p.ID)
	}

	return nil
}

// DeleteProject удаляет проект и отвязывает его расчёты.
// Сами расчёты остаются в истории без привязки.
func (s *Storage) DeleteProject(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteProject"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE saved_calculations SET project_id = NULL WHERE project_id = ?", id); err != nil {
		return fmt.Errorf("%s: отвязка расчетов: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: Ошибка удаления проекта: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: проект id=%s не найден", op, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}
