package storage

// Режимы расчёта
const (
	ModeFunctional = "functional"
	ModeFee        = "fee"
)

// ProjectInputs — входные данные одной сессии расчёта.
// ElementValues: id элемента → число (boolean/count) или id опции (select).
// Нечисловое/отсутствующее значение трактуется как 0, это не ошибка.
type ProjectInputs struct {
	BuildingTypeID string `json:"buildingTypeId"`
	ActionTypeID   string `json:"actionTypeId"`
	TemplateID     string `json:"templateId"`

	Area     float64  `json:"area"`
	Location string   `json:"location"`
	Budget   *float64 `json:"budget,omitempty"`
	Deadline string   `json:"deadline,omitempty"`

	CalculationMode           string   `json:"calculationMode"` // functional | fee
	TargetFee                 *float64 `json:"targetFee,omitempty"`
	IncludeExternalCostsInFee bool     `json:"includeExternalCostsInFee,omitempty"`

	ElementValues map[string]interface{} `json:"elementValues"`

	Complexity string `json:"complexity"` // low | medium | high
	Lod        string `json:"lod"`        // standard | high
	IsExpress  bool   `json:"isExpress"`
}

// CalculationResult — агрегат по включённым этапам
type CalculationResult struct {
	TotalHours   int     `json:"totalHours"`
	TotalCost    float64 `json:"totalCost"`
	InternalCost float64 `json:"internalCost"`
	ExternalCost float64 `json:"externalCost"`
	AvgRate      float64 `json:"avgRate"`
	CostPerSqm   float64 `json:"costPerSqm"`
}
