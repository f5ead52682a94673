package estimate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"feemo-backend/internal/storage"
)

type MockEstimateStorage struct {
	mock.Mock
}

func (m *MockEstimateStorage) GetTemplateByID(ctx context.Context, id string) (*storage.CalculationTemplate, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	template, ok := args.Get(0).(*storage.CalculationTemplate)
	if !ok {
		return nil, fmt.Errorf("expected *storage.CalculationTemplate, got %T", args.Get(0))
	}

	return template, args.Error(1)
}

func (m *MockEstimateStorage) GetTeam(ctx context.Context) ([]storage.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.TeamMember), args.Error(1)
}

func (m *MockEstimateStorage) GetMultipliers(ctx context.Context) (storage.GlobalMultipliers, error) {
	args := m.Called(ctx)
	return args.Get(0).(storage.GlobalMultipliers), args.Error(1)
}

func (m *MockEstimateStorage) GetStageDefinitions(ctx context.Context) ([]storage.Stage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Stage), args.Error(1)
}

func testTemplate() *storage.CalculationTemplate {
	return &storage.CalculationTemplate{
		ID:               "tpl_house_new",
		RoleDistribution: map[string]float64{"Architekt": 1.0},
		StageWeights: map[string]float64{
			"stage_concept": 0.4,
			"stage_permit":  0.6,
		},
		DefaultEnabledStages: []string{"stage_concept", "stage_permit", "ext_geo"},
		DefaultFixedCosts:    map[string]float64{"ext_geo": 1500},
		Groups: []storage.FunctionalGroup{
			{ID: "g1", Elements: []storage.FunctionalElement{
				{ID: "el_base", BaseRbh: 100, InputType: storage.InputBoolean},
			}},
		},
	}
}

func neutralMultipliers() storage.GlobalMultipliers {
	return storage.GlobalMultipliers{
		Complexity: storage.ComplexityMultipliers{Low: 0.9, Medium: 1.0, High: 1.2},
		Lod:        storage.LodMultipliers{Standard: 1.0, High: 1.25},
		Express:    1.2,
	}
}

func TestEstimate_FunctionalMode(t *testing.T) {
	// 1. Мокаем конфигурацию
	mockStorage := new(MockEstimateStorage)
	mockStorage.On("GetTemplateByID", mock.Anything, "tpl_house_new").Return(testTemplate(), nil)
	mockStorage.On("GetMultipliers", mock.Anything).Return(neutralMultipliers(), nil)
	mockStorage.On("GetTeam", mock.Anything).Return([]storage.TeamMember{
		{ID: "1", Role: "Architekt", Rate: 250},
	}, nil)
	mockStorage.On("GetStageDefinitions", mock.Anything).Return([]storage.Stage{
		{ID: "stage_concept", Type: storage.StageInternalRBH, IsEnabled: true},
		{ID: "stage_permit", Type: storage.StageInternalRBH, IsEnabled: true},
		{ID: "stage_supervision", Type: storage.StageInternalRBH, IsEnabled: true},
		{ID: "ext_geo", Type: storage.StageExternalFixed, IsEnabled: false},
	}, nil)

	service := NewEstimateService(mockStorage)

	// 2. Запрос без этапов и команды — всё из конфигурации
	resp, err := service.Estimate(context.Background(), EstimateRequest{
		Inputs: storage.ProjectInputs{
			TemplateID:      "tpl_house_new",
			CalculationMode: storage.ModeFunctional,
			Complexity:      "medium",
			Lod:             "standard",
			Area:            150,
			ElementValues:   map[string]interface{}{"el_base": float64(1)},
		},
	})

	// 3. 100 RBH, раскладка по весам, дефолты шаблона применены
	assert.NoError(t, err)
	assert.InDelta(t, 100.0, resp.TotalHours, 0.0001)

	byID := map[string]storage.Stage{}
	for _, s := range resp.Stages {
		byID[s.ID] = s
	}

	assert.True(t, byID["stage_concept"].IsEnabled)
	assert.False(t, byID["stage_supervision"].IsEnabled) // не в дефолтах шаблона
	assert.True(t, byID["ext_geo"].IsEnabled)
	assert.Equal(t, 1500.0, byID["ext_geo"].FixedPrice)

	assert.Equal(t, 40, byID["stage_concept"].RoleAllocations[0].Hours)
	assert.Equal(t, 60, byID["stage_permit"].RoleAllocations[0].Hours)

	// Итог: (40+60)×250 внутренних + 1500 внешних
	assert.Equal(t, 26500.0, resp.Result.TotalCost)

	mockStorage.AssertExpectations(t)
}

func TestEstimate_FeeMode(t *testing.T) {
	mockStorage := new(MockEstimateStorage)
	mockStorage.On("GetTemplateByID", mock.Anything, "tpl_house_new").Return(testTemplate(), nil)
	mockStorage.On("GetMultipliers", mock.Anything).Return(neutralMultipliers(), nil)

	service := NewEstimateService(mockStorage)

	// Этапы и команда приходят из сессии — сторедж за ними не ходит
	fee := 15000.0
	resp, err := service.Estimate(context.Background(), EstimateRequest{
		Inputs: storage.ProjectInputs{
			TemplateID:      "tpl_house_new",
			CalculationMode: storage.ModeFee,
			TargetFee:       &fee,
		},
		Team: []storage.TeamMember{{ID: "1", Role: "Architekt", Rate: 250}},
		Stages: []storage.Stage{
			{ID: "stage_concept", Type: storage.StageInternalRBH, IsEnabled: true},
			{ID: "stage_permit", Type: storage.StageInternalRBH, IsEnabled: true},
			{ID: "ext_geo", Type: storage.StageExternalFixed, IsEnabled: true, FixedPrice: 1500},
		},
	})

	assert.NoError(t, err)
	// targetFee нетто (includeExternal=false): 15000/(1.0×250) = 60
	assert.InDelta(t, 60.0, resp.TotalHours, 0.0001)

	mockStorage.AssertNotCalled(t, "GetTeam")
	mockStorage.AssertNotCalled(t, "GetStageDefinitions")
}

func TestEstimate_QuoteInvariantRestored(t *testing.T) {
	mockStorage := new(MockEstimateStorage)
	mockStorage.On("GetTemplateByID", mock.Anything, mock.Anything).Return(testTemplate(), nil)
	mockStorage.On("GetMultipliers", mock.Anything).Return(neutralMultipliers(), nil)

	service := NewEstimateService(mockStorage)

	sel := "q1"
	resp, err := service.Estimate(context.Background(), EstimateRequest{
		Inputs: storage.ProjectInputs{TemplateID: "tpl_house_new", CalculationMode: storage.ModeFunctional},
		Team:   []storage.TeamMember{{ID: "1", Role: "Architekt", Rate: 250}},
		Stages: []storage.Stage{
			{
				ID: "ext_geo", Type: storage.StageExternalFixed, IsEnabled: true,
				FixedPrice:      99999,
				SelectedQuoteID: &sel,
				ExternalQuotes:  []storage.ExternalQuote{{ID: "q1", Price: 1200}},
			},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1200.0, resp.Stages[0].FixedPrice)
	assert.Equal(t, 1200.0, resp.Result.ExternalCost)
}

func TestEstimate_TemplateError(t *testing.T) {
	mockStorage := new(MockEstimateStorage)
	mockStorage.On("GetTemplateByID", mock.Anything, "tpl_ghost").Return(nil, errors.New("не найден"))
	mockStorage.On("GetMultipliers", mock.Anything).Return(neutralMultipliers(), nil)
	mockStorage.On("GetTeam", mock.Anything).Return([]storage.TeamMember{}, nil)
	mockStorage.On("GetStageDefinitions", mock.Anything).Return([]storage.Stage{}, nil)

	service := NewEstimateService(mockStorage)

	_, err := service.Estimate(context.Background(), EstimateRequest{
		Inputs: storage.ProjectInputs{TemplateID: "tpl_ghost"},
	})

	assert.Error(t, err)
}

func TestCostEdit_Reallocates(t *testing.T) {
	mockStorage := new(MockEstimateStorage)
	mockStorage.On("GetTemplateByID", mock.Anything, "tpl_house_new").Return(testTemplate(), nil)

	service := NewEstimateService(mockStorage)

	resp, err := service.CostEdit(context.Background(), CostEditRequest{
		Inputs: storage.ProjectInputs{TemplateID: "tpl_house_new", CalculationMode: storage.ModeFunctional},
		Team:   []storage.TeamMember{{ID: "1", Role: "Architekt", Rate: 250}},
		Stages: []storage.Stage{
			{ID: "stage_concept", Type: storage.StageInternalRBH, IsEnabled: true},
			{ID: "stage_permit", Type: storage.StageInternalRBH, IsEnabled: true},
			{ID: "ext_geo", Type: storage.StageExternalFixed, IsEnabled: true, FixedPrice: 1500},
		},
		EditedTotalCost: 16500,
	})

	assert.NoError(t, err)
	assert.Equal(t, storage.ModeFee, resp.Inputs.CalculationMode)
	assert.Equal(t, 16500.0, *resp.Inputs.TargetFee)
	assert.True(t, resp.Inputs.IncludeExternalCostsInFee)

	// (16500-1500)/250 = 60 часов → 24/36 по весам 0.4/0.6
	assert.Equal(t, 24, resp.Stages[0].RoleAllocations[0].Hours)
	assert.Equal(t, 36, resp.Stages[1].RoleAllocations[0].Hours)

	// Итог сходится с правкой
	assert.Equal(t, 16500.0, resp.Result.TotalCost)
}
