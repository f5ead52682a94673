package storage

// Типы полей функциональных элементов
const (
	InputBoolean = "boolean"
	InputCount   = "count"
	InputSelect  = "select"
)

type SelectOption struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Rbh  float64 `json:"rbh"`
}

type FunctionalElement struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	BaseRbh     float64        `json:"baseRbh"`
	InputType   string         `json:"inputType"` // "boolean", "count", "select"
	Min         *int           `json:"min,omitempty"`
	Max         *int           `json:"max,omitempty"`
	Options     []SelectOption `json:"options,omitempty"`
}

type FunctionalGroup struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Elements []FunctionalElement `json:"elements"`
}

// CalculationTemplate — шаблон расчёта для пары (тип здания, тип действия).
// Веса этапов и распределение ролей — открытые словари: отсутствующий ключ = 0.
type CalculationTemplate struct {
	ID                   string             `json:"id"`
	BuildingTypeID       string             `json:"buildingTypeId"`
	ActionTypeID         string             `json:"actionTypeId"`
	Name                 string             `json:"name"`
	Description          string             `json:"description,omitempty"`
	RoleDistribution     map[string]float64 `json:"roleDistribution"`
	StageWeights         map[string]float64 `json:"stageWeights"`
	DefaultFixedCosts    map[string]float64 `json:"defaultFixedCosts,omitempty"`
	DefaultEnabledStages []string           `json:"defaultEnabledStages,omitempty"`
	Groups               []FunctionalGroup  `json:"groups"`
	IsActive             bool               `json:"isActive"`
}

type BuildingType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ActionType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
