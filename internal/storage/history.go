package storage

import "time"

// SavedCalculation — снимок расчёта на момент сохранения.
// Внутри лежит полная копия шаблонов, команды и множителей,
// поэтому правки живой конфигурации историю не трогают.
type SavedCalculation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProjectID *string   `json:"projectId,omitempty"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`

	Inputs      ProjectInputs         `json:"inputs"`
	Stages      []Stage               `json:"stages"`
	Team        []TeamMember          `json:"team"`
	Templates   []CalculationTemplate `json:"templates"`
	Multipliers GlobalMultipliers     `json:"multipliers"`

	TotalCost float64 `json:"totalCost"`
}

// UpdateCalculation — частичное обновление записи истории
type UpdateCalculation struct {
	Name      *string `json:"name,omitempty"`
	ProjectID *string `json:"projectId,omitempty"`
	ClearProj bool    `json:"clearProject,omitempty"`
}

// Project — группа вариантов расчёта одного объекта
type Project struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	Name          string         `json:"name"`
	CreatedAt     time.Time      `json:"createdAt"`
	DefaultInputs *ProjectInputs `json:"defaultInputs,omitempty"`
}
