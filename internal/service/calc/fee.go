package calc

import (
	"feemo-backend/internal/storage"
)

// Модель стоимости: totalCost = totalHours × sumStageWeights × weightedRoleRateSum.
// FeeToHours — обратный ход: из целевого гонорара получаем бюджет часов.
// При вырожденных знаменателях возвращает 0 ("ещё нечего считать", не ошибка).
func FeeToHours(template *storage.CalculationTemplate, team []storage.TeamMember, stages []storage.Stage, targetFee float64, includeExternal bool) float64 {
	if template == nil || targetFee <= 0 {
		return 0
	}

	internalBudget := targetFee
	if includeExternal {
		internalBudget -= EnabledExternalSum(stages)
		if internalBudget < 0 {
			internalBudget = 0
		}
	}

	rateSum := weightedRoleRateSum(template, team)
	if rateSum == 0 {
		return 0
	}

	// Прямой ход считает по дефолтному набору этапов шаблона,
	// а не по текущему выбору пользователя
	relevant := template.DefaultEnabledStages
	if relevant == nil {
		relevant = make([]string, 0, len(template.StageWeights))
		for id := range template.StageWeights {
			relevant = append(relevant, id)
		}
	}

	sumWeights := 0.0
	for _, stageID := range relevant {
		sumWeights += template.StageWeights[stageID]
	}
	if sumWeights == 0 {
		return 0
	}

	return internalBudget / (sumWeights * rateSum)
}

// ApplyCostEdit — ручная правка итоговой суммы на подведении итогов.
// Переводит расчёт в режим гонорара (брутто) и перераспределяет часы
// по ТЕКУЩЕМУ выбору этапов, а не по дефолтам шаблона: раз пользователь
// уже настроил состав, правка должна его отражать.
func ApplyCostEdit(template *storage.CalculationTemplate, team []storage.TeamMember, stages []storage.Stage, inputs storage.ProjectInputs, editedTotal float64) (storage.ProjectInputs, []storage.Stage) {
	fee := editedTotal
	inputs.CalculationMode = storage.ModeFee
	inputs.TargetFee = &fee
	inputs.IncludeExternalCostsInFee = true

	if template == nil {
		return inputs, stages
	}

	internalBudget := editedTotal - EnabledExternalSum(stages)
	if internalBudget < 0 {
		internalBudget = 0
	}

	rateSum := weightedRoleRateSum(template, team)

	sumWeights := 0.0
	for _, s := range stages {
		if s.IsEnabled && s.Type == storage.StageInternalRBH {
			sumWeights += template.StageWeights[s.ID]
		}
	}

	if rateSum == 0 || sumWeights == 0 {
		return inputs, stages
	}

	totalHours := internalBudget / (sumWeights * rateSum)

	out := make([]storage.Stage, len(stages))
	copy(out, stages)
	for i := range out {
		if out[i].Type == storage.StageInternalRBH && out[i].IsEnabled {
			stageHours := totalHours * template.StageWeights[out[i].ID]
			out[i].RoleAllocations = allocateMembers(stageHours, template.RoleDistribution, team)
		}
	}

	return inputs, out
}

// Средняя стоимость часа "проектного времени" до весов этапов.
// Роль без людей в команде вклада не даёт.
func weightedRoleRateSum(template *storage.CalculationTemplate, team []storage.TeamMember) float64 {
	sum := 0.0
	for role, pct := range template.RoleDistribution {
		var rates float64
		var count int
		for _, m := range team {
			if m.Role == role {
				rates += m.Rate
				count++
			}
		}
		if count > 0 {
			sum += (rates / float64(count)) * pct
		}
	}
	return sum
}

// EnabledExternalSum — сумма фиксированных цен включённых внешних этапов
func EnabledExternalSum(stages []storage.Stage) float64 {
	sum := 0.0
	for _, s := range stages {
		if s.IsEnabled && s.Type == storage.StageExternalFixed {
			sum += s.FixedPrice
		}
	}
	return sum
}
