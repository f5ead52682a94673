package calc

import (
	"math"

	"feemo-backend/internal/storage"
)

// AllocateStages раскладывает общий бюджет часов по внутренним этапам (вес
// этапа) и дальше по людям (доля роли, поровну между тёзками по роли).
// Старые аллокации внутренних этапов затираются целиком; выключенные этапы
// тоже пересчитываются — при обратном включении цифры уже на месте.
// Внешние этапы не трогаем.
func AllocateStages(totalHours float64, template *storage.CalculationTemplate, team []storage.TeamMember, stages []storage.Stage) []storage.Stage {
	out := make([]storage.Stage, len(stages))
	copy(out, stages)

	if template == nil {
		return out
	}

	for i := range out {
		if out[i].Type != storage.StageInternalRBH {
			continue
		}
		stageHours := totalHours * template.StageWeights[out[i].ID]
		out[i].RoleAllocations = allocateMembers(stageHours, template.RoleDistribution, team)
	}

	return out
}

// allocateMembers делит часы этапа между участниками команды.
// Часы округляются до целого RBH — итог по этапу может разойтись
// с stageHours на ±0.5 часа на человека, это ожидаемо.
func allocateMembers(stageHours float64, roleDistribution map[string]float64, team []storage.TeamMember) []storage.RoleAllocation {
	allocations := make([]storage.RoleAllocation, 0, len(team))

	for _, member := range team {
		rolePct := roleDistribution[member.Role]

		peers := 0
		for _, m := range team {
			if m.Role == member.Role {
				peers++
			}
		}

		hours := 0.0
		if peers > 0 && rolePct > 0 {
			hours = (stageHours * rolePct) / float64(peers)
		}

		allocations = append(allocations, storage.RoleAllocation{
			MemberID: member.ID,
			Hours:    int(math.Round(hours)),
		})
	}

	return allocations
}
