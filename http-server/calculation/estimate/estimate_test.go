package estimate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"feemo-backend/internal/service/estimate"
	"feemo-backend/internal/storage"
)

type MockEstimator struct {
	mock.Mock
}

func (m *MockEstimator) Estimate(ctx context.Context, req estimate.EstimateRequest) (*estimate.EstimateResponse, error) {
	args := m.Called(ctx, req)

	var resp *estimate.EstimateResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*estimate.EstimateResponse)
	}

	return resp, args.Error(1)
}

func TestEstimateCalculation_Success(t *testing.T) {
	// 1. Настраиваем мок на успешный расчёт
	mockEst := new(MockEstimator)

	resp := &estimate.EstimateResponse{
		TotalHours: 150,
		Stages: []storage.Stage{
			{ID: "stage_concept", Type: storage.StageInternalRBH, Name: "Koncepcja", IsEnabled: true,
				RoleAllocations: []storage.RoleAllocation{{MemberID: "tm_architect", Hours: 60}}},
		},
		Result: storage.CalculationResult{TotalHours: 60, TotalCost: 15000, InternalCost: 15000, AvgRate: 250},
	}

	mockEst.On("Estimate", mock.Anything, mock.MatchedBy(func(req estimate.EstimateRequest) bool {
		return req.Inputs.TemplateID == "tpl_house_new" && req.Inputs.Area == 150
	})).Return(resp, nil)

	logger := slog.Default()
	handler := EstimateCalculation(logger, mockEst)

	// 2. Запрос с валидным JSON
	reqBody := `{
		"inputs": {
			"templateId": "tpl_house_new",
			"area": 150,
			"calculationMode": "functional",
			"complexity": "medium",
			"lod": "standard"
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculation/estimate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// 3. Проверяем статус и тело
	assert.Equal(t, http.StatusOK, rr.Code, "ожидался статус 200")

	var got estimate.EstimateResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &got)
	assert.NoError(t, err, "ошибка декодирования JSON ответа")

	assert.Equal(t, 150.0, got.TotalHours)
	assert.Len(t, got.Stages, 1)
	assert.Equal(t, 60, got.Stages[0].RoleAllocations[0].Hours)
	assert.Equal(t, 15000.0, got.Result.TotalCost)

	mockEst.AssertExpectations(t)
}

func TestEstimateCalculation_InvalidJSON(t *testing.T) {
	mockEst := new(MockEstimator)
	handler := EstimateCalculation(slog.Default(), mockEst)

	req := httptest.NewRequest(http.MethodPost, "/api/calculation/estimate", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Некорректный JSON")

	mockEst.AssertNotCalled(t, "Estimate")
}

func TestEstimateCalculation_MissingTemplate(t *testing.T) {
	mockEst := new(MockEstimator)
	handler := EstimateCalculation(slog.Default(), mockEst)

	// templateId отсутствует — до сервиса дойти не должны
	req := httptest.NewRequest(http.MethodPost, "/api/calculation/estimate",
		strings.NewReader(`{"inputs": {"area": 150}}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockEst.AssertNotCalled(t, "Estimate")
}

func TestEstimateCalculation_TemplateNotFound(t *testing.T) {
	mockEst := new(MockEstimator)

	mockEst.On("Estimate", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	handler := EstimateCalculation(slog.Default(), mockEst)

	reqBody := `{"inputs": {"templateId": "tpl_missing", "area": 100}}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculation/estimate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockEst.AssertExpectations(t)
}
