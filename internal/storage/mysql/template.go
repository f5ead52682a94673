package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"feemo-backend/internal/storage"
)

// Шаблоны лежат с деревьями в JSON-колонках: веса, распределение ролей,
// дефолты этапов и группы элементов.

func (s *Storage) GetTemplateByID(ctx context.Context, id string) (*storage.CalculationTemplate, error) {
	const op = "storage.mysql.GetTemplateByID"

	query := `
		SELECT id, building_type_id, action_type_id, name, description,
		       role_distribution, stage_weights, default_fixed_costs, default_enabled_stages,
		       groups_json, is_active
		FROM calc_templates
		WHERE id = ? AND is_active = TRUE
	`

	template, err := scanTemplate(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: шаблон id='%s' не найден: %w", op, id, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return template, nil
}

func (s *Storage) GetTemplateByPair(ctx context.Context, buildingTypeID, actionTypeID string) (*storage.CalculationTemplate, error) {
	const op = "storage.mysql.GetTemplateByPair"

	query := `
		SELECT id, building_type_id, action_type_id, name, description,
		       role_distribution, stage_weights, default_fixed_costs, default_enabled_stages,
		       groups_json, is_active
		FROM calc_templates
		WHERE building_type_id = ? AND action_type_id = ? AND is_active = TRUE
	`

	template, err := scanTemplate(s.db.QueryRowContext(ctx, query, buildingTypeID, actionTypeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: шаблон для пары ('%s','%s') не найден: %w", op, buildingTypeID, actionTypeID, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return template, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTemplate(row rowScanner) (*storage.CalculationTemplate, error) {
	template := &storage.CalculationTemplate{}

	// JSON-колонки сканируем как строки
	var rolesJSON, weightsJSON, groupsJSON string
	var fixedJSON, enabledJSON sql.NullString
	var description sql.NullString

	err := row.Scan(
		&template.ID,
		&template.BuildingTypeID,
		&template.ActionTypeID,
		&template.Name,
		&description,
		&rolesJSON,
		&weightsJSON,
		&fixedJSON,
		&enabledJSON,
		&groupsJSON,
		&template.IsActive,
	)
	if err != nil {
		return nil, err
	}

	template.Description = description.String

	if err := json.Unmarshal([]byte(rolesJSON), &template.RoleDistribution); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON распределения ролей: %w", err)
	}
	if err := json.Unmarshal([]byte(weightsJSON), &template.StageWeights); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON весов этапов: %w", err)
	}
	if fixedJSON.Valid && fixedJSON.String != "" {
		if err := json.Unmarshal([]byte(fixedJSON.String), &template.DefaultFixedCosts); err != nil {
			return nil, fmt.Errorf("ошибка парсинга JSON дефолтных фикс-цен: %w", err)
		}
	}
	if enabledJSON.Valid && enabledJSON.String != "" {
		if err := json.Unmarshal([]byte(enabledJSON.String), &template.DefaultEnabledStages); err != nil {
			return nil, fmt.Errorf("ошибка парсинга JSON дефолтных этапов: %w", err)
		}
	}
	if err := json.Unmarshal([]byte(groupsJSON), &template.Groups); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON групп элементов: %w", err)
	}

	return template, nil
}

func (s *Storage) GetAllTemplates(ctx context.Context) ([]*storage.CalculationTemplate, error) {
	const op = "storage.mysql.GetAllTemplates"

	query := `
		SELECT id, building_type_id, action_type_id, name, description,
		       role_distribution, stage_weights, default_fixed_costs, default_enabled_stages,
		       groups_json, is_active
		FROM calc_templates
		WHERE is_active = TRUE
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var templates []*storage.CalculationTemplate

	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		templates = append(templates, template)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return templates, nil
}

func (s *Storage) CreateTemplate(ctx context.Context, template storage.CalculationTemplate) error {
	const op = "storage.mysql.CreateTemplate"

	roles, weights, fixed, enabled, groups, err := marshalTemplate(template)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	stmt := `INSERT INTO calc_templates (id, building_type_id, action_type_id, name, description,
	        role_distribution, stage_weights, default_fixed_costs, default_enabled_stages, groups_json, is_active)
	        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, stmt, template.ID, template.BuildingTypeID, template.ActionTypeID,
		template.Name, template.Description, roles, weights, fixed, enabled, groups, template.IsActive)
	if err != nil {
		return fmt.Errorf("%s: Ошибка сохранения шаблона в базу: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateTemplate(ctx context.Context, id string, template storage.CalculationTemplate) error {
	const op = "storage.mysql.UpdateTemplate"

	roles, weights, fixed, enabled, groups, err := marshalTemplate(template)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	stmt := `UPDATE calc_templates SET building_type_id=?, action_type_id=?, name=?, description=?,
	        role_distribution=?, stage_weights=?, default_fixed_costs=?, default_enabled_stages=?,
	        groups_json=?, is_active=? WHERE id=?`

	res, err := s.db.ExecContext(ctx, stmt, template.BuildingTypeID, template.ActionTypeID, template.Name,
		template.Description, roles, weights, fixed, enabled, groups, template.IsActive, id)
	if err != nil {
		return fmt.Errorf("%s: ошибка обновления шаблона: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: шаблон id='%s' не найден", op, id)
	}

	return nil
}

func marshalTemplate(t storage.CalculationTemplate) (roles, weights, fixed, enabled, groups []byte, err error) {
	if roles, err = json.Marshal(t.RoleDistribution); err != nil {
		return
	}
	if weights, err = json.Marshal(t.StageWeights); err != nil {
		return
	}
	if fixed, err = json.Marshal(t.DefaultFixedCosts); err != nil {
		return
	}
	if enabled, err = json.Marshal(t.DefaultEnabledStages); err != nil {
		return
	}
	groups, err = json.Marshal(t.Groups)
	return
}
