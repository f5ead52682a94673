package mysql

import (
	"context"
	"fmt"

	"feemo-backend/internal/constants"
	"feemo-backend/internal/storage"
)

// GetTeam отдаёт активный состав. Пустая таблица = свежая установка,
// тогда возвращаем дефолтную команду из констант.
func (s *Storage) GetTeam(ctx context.Context) ([]storage.TeamMember, error) {
	const op = "storage.mysql.GetTeam"

	stmt := "SELECT id, role, rate, is_active FROM team_members WHERE is_active = TRUE"

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var team []storage.TeamMember

	for rows.Next() {
		var m storage.TeamMember
		if err := rows.Scan(&m.ID, &m.Role, &m.Rate, &m.IsActive); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		team = append(team, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	if len(team) == 0 {
		return constants.DefaultTeam, nil
	}

	return team, nil
}

func (s *Storage) CreateTeamMember(ctx context.Context, m storage.TeamMember) error {
	const op = "storage.mysql.CreateTeamMember"

	stmt := `INSERT INTO team_members (id, role, rate, is_active) VALUES (?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, stmt, m.ID, m.Role, m.Rate, m.IsActive)
	if err != nil {
		return fmt.Errorf("%s: Ошибка добавления участника: %w", op, err)
	}

	return nil
}

// UpdateTeam — массовое обновление состава из панели конфигурации
func (s *Storage) UpdateTeam(ctx context.Context, team []storage.TeamMember) error {
	const op = "storage.mysql.UpdateTeam"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO team_members (id, role, rate, is_active)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			role = VALUES(role),
			rate = VALUES(rate),
			is_active = VALUES(is_active)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare statement: %w", op, err)
	}
	defer stmt.Close()

	for _, m := range team {
		if _, err := stmt.ExecContext(ctx, m.ID, m.Role, m.Rate, m.IsActive); err != nil {
			return fmt.Errorf("%s: ошибка обновления участника id=%s: %w", op, m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}
