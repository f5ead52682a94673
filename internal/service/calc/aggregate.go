package calc

import (
	"feemo-backend/internal/storage"
)

// Aggregate сводит включённые этапы в итог: внутренние часы × ставки плюс
// внешние фиксированные цены. Чистая read-side функция, никакого кеша —
// зовём заново после любого изменения этапов, команды или ставок.
func Aggregate(stages []storage.Stage, team []storage.TeamMember, area float64) storage.CalculationResult {
	rates := make(map[string]float64, len(team))
	for _, m := range team {
		rates[m.ID] = m.Rate
	}

	var result storage.CalculationResult

	for _, stage := range stages {
		if !stage.IsEnabled {
			continue
		}

		switch stage.Type {
		case storage.StageInternalRBH:
			for _, alloc := range stage.RoleAllocations {
				rate, ok := rates[alloc.MemberID]
				if !ok {
					// участник удалён из команды после аллокации
					continue
				}
				result.TotalHours += alloc.Hours
				result.InternalCost += float64(alloc.Hours) * rate
			}
		case storage.StageExternalFixed:
			result.ExternalCost += stage.FixedPrice
		}
	}

	result.TotalCost = result.InternalCost + result.ExternalCost
	if result.TotalHours > 0 {
		result.AvgRate = result.InternalCost / float64(result.TotalHours)
	}
	if area > 0 {
		result.CostPerSqm = result.TotalCost / area
	}

	return result
}
