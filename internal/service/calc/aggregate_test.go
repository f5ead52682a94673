package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"feemo-backend/internal/storage"
)

func aggStages() []storage.Stage {
	return []storage.Stage{
		{
			ID: "stage_concept", Type: storage.StageInternalRBH, IsEnabled: true,
			RoleAllocations: []storage.RoleAllocation{
				{MemberID: "1", Hours: 18},
				{MemberID: "2", Hours: 12},
			},
		},
		{
			ID: "stage_permit", Type: storage.StageInternalRBH, IsEnabled: false,
			RoleAllocations: []storage.RoleAllocation{
				{MemberID: "1", Hours: 500},
			},
		},
		{ID: "ext_geo", Type: storage.StageExternalFixed, IsEnabled: true, FixedPrice: 1500},
		{ID: "ext_soil", Type: storage.StageExternalFixed, IsEnabled: false, FixedPrice: 1000},
	}
}

func TestAggregate_Basic(t *testing.T) {
	res := Aggregate(aggStages(), allocTeam(), 150)

	// Только включённые: 18×250 + 12×100 = 5700 внутренних + 1500 внешних
	assert.Equal(t, 30, res.TotalHours)
	assert.Equal(t, 5700.0, res.InternalCost)
	assert.Equal(t, 1500.0, res.ExternalCost)
	assert.Equal(t, 7200.0, res.TotalCost)
	assert.InDelta(t, 190.0, res.AvgRate, 0.0001)
	assert.InDelta(t, 48.0, res.CostPerSqm, 0.0001)
}

func TestAggregate_Idempotent(t *testing.T) {
	stages := aggStages()
	team := allocTeam()

	first := Aggregate(stages, team, 150)
	second := Aggregate(stages, team, 150)

	assert.Equal(t, first, second)
}

func TestAggregate_ZeroGuards(t *testing.T) {
	res := Aggregate(nil, nil, 0)

	assert.Equal(t, 0, res.TotalHours)
	assert.Equal(t, 0.0, res.AvgRate)
	assert.Equal(t, 0.0, res.CostPerSqm)
}

func TestAggregate_UnknownMemberSkipped(t *testing.T) {
	stages := []storage.Stage{
		{
			ID: "s1", Type: storage.StageInternalRBH, IsEnabled: true,
			RoleAllocations: []storage.RoleAllocation{
				{MemberID: "deleted", Hours: 40},
				{MemberID: "1", Hours: 10},
			},
		},
	}

	res := Aggregate(stages, allocTeam(), 0)

	// Часы удалённого участника не входят ни в часы, ни в деньги
	assert.Equal(t, 10, res.TotalHours)
	assert.Equal(t, 2500.0, res.InternalCost)
}

func TestFeeRoundTrip(t *testing.T) {
	// 1. Гонорар → часы → аллокации → итоговая стоимость
	tpl := &storage.CalculationTemplate{
		ID:               "tpl_rt",
		RoleDistribution: map[string]float64{"Architekt": 0.6, "Asystent": 0.4},
		StageWeights: map[string]float64{
			"stage_concept": 0.3,
			"stage_permit":  0.7,
		},
		DefaultEnabledStages: []string{"stage_concept", "stage_permit"},
	}
	team := allocTeam()
	stages := []storage.Stage{
		{ID: "stage_concept", Type: storage.StageInternalRBH, IsEnabled: true},
		{ID: "stage_permit", Type: storage.StageInternalRBH, IsEnabled: true},
		{ID: "ext_geo", Type: storage.StageExternalFixed, IsEnabled: true, FixedPrice: 2000},
	}

	targetFee := 50000.0

	// 2. Прямой ход
	hours := FeeToHours(tpl, team, stages, targetFee, true)
	assert.Greater(t, hours, 0.0)

	// 3. Распределение и агрегация
	allocated := AllocateStages(hours, tpl, team, stages)
	res := Aggregate(allocated, team, 0)

	// 4. Итог сходится с гонораром в пределах целочисленного округления:
	// ±0.5 часа на человека на этап, по максимальной ставке
	tolerance := 2.0 * 2.0 * 0.5 * 250.0
	assert.InDelta(t, targetFee, res.TotalCost, tolerance)
	assert.InDelta(t, targetFee-2000.0, res.InternalCost, tolerance)
}
