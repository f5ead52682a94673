package calc

import (
	"feemo-backend/internal/storage"
)

// ResolveTotalHours — единственное место, где ветвится режим расчёта:
// либо часы из функционального объёма, либо из целевого гонорара.
func ResolveTotalHours(template *storage.CalculationTemplate, team []storage.TeamMember, multipliers storage.GlobalMultipliers, stages []storage.Stage, inputs storage.ProjectInputs) float64 {
	switch inputs.CalculationMode {
	case storage.ModeFee:
		if inputs.TargetFee == nil || *inputs.TargetFee <= 0 {
			return 0
		}
		return FeeToHours(template, team, stages, *inputs.TargetFee, inputs.IncludeExternalCostsInFee)
	default:
		return ScopeHours(template, inputs, multipliers)
	}
}
