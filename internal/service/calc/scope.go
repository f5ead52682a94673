package calc

import (
	"math"

	"feemo-backend/internal/storage"
)

// ScopeHours считает пракочасы по функциональной конфигурации.
// Чистая функция: ничего не мутирует, безопасно дёргать на каждый ввод.
func ScopeHours(template *storage.CalculationTemplate, inputs storage.ProjectInputs, multipliers storage.GlobalMultipliers) float64 {
	if template == nil {
		return 0
	}

	raw := 0.0
	for _, group := range template.Groups {
		for _, el := range group.Elements {
			raw += elementHours(el, inputs.ElementValues[el.ID])
		}
	}

	comp := complexityFactor(multipliers, inputs.Complexity)
	lod := lodFactor(multipliers, inputs.Lod)

	express := 1.0
	if inputs.IsExpress {
		express = multipliers.Express
	}

	// Эффект масштаба: большие площади дешевле за метр
	scale := 1.0
	if multipliers.Scale != nil && multipliers.Scale.Enabled && inputs.Area > 0 {
		scale = math.Pow(multipliers.Scale.BaseArea/inputs.Area, multipliers.Scale.Exponent)
	}

	return raw * comp * lod * express * scale
}

// Вклад одного элемента. Протухшие ссылки и мусор во вводе = 0, не ошибка:
// конфигурация и введённые значения живут независимо и могут разъехаться.
func elementHours(el storage.FunctionalElement, val interface{}) float64 {
	if el.InputType == storage.InputSelect {
		optID, ok := val.(string)
		if !ok {
			return 0
		}
		for _, opt := range el.Options {
			if opt.ID == optID {
				return opt.Rbh
			}
		}
		return 0
	}

	// boolean и count: значение × базовые RBH
	return numericValue(val) * el.BaseRbh
}

// numericValue достаёт число из значения элемента.
// JSON отдаёт числа как float64, но после снапшотов бывают и int.
func numericValue(val interface{}) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func complexityFactor(m storage.GlobalMultipliers, level string) float64 {
	switch level {
	case "low":
		return m.Complexity.Low
	case "high":
		return m.Complexity.High
	case "medium":
		return m.Complexity.Medium
	default:
		return 1.0
	}
}

func lodFactor(m storage.GlobalMultipliers, level string) float64 {
	switch level {
	case "high":
		return m.Lod.High
	case "standard":
		return m.Lod.Standard
	default:
		return 1.0
	}
}
