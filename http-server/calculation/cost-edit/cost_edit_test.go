package cost_edit

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

type MockCostEditor struct {
	mock.Mock
}

func (m *MockCostEditor) CostEdit(ctx context.Context, req estimate.CostEditRequest) (*estimate.CostEditResponse, error) {
	args := m.Called(ctx, req)

	var resp *estimate.CostEditResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*estimate.CostEditResponse)
	}

	return resp, args.Error(1)
}

func TestEditSummaryCost_Success(t *testing.T) {
	mockEditor := new(MockCostEditor)

	// 1. Сервис возвращает входы уже в режиме гонорара
	fee := 16500.0
	resp := &estimate.CostEditResponse{
		Inputs: storage.ProjectInputs{
			TemplateID:               "tpl_house_new",
			CalculationMode:          storage.ModeFee,
			TargetFee:                &fee,
			IncludeExternalCostsInFee: true,
		},
		Stages: []storage.Stage{
			{ID: "stage_concept", Type: storage.StageInternalRBH, IsEnabled: true,
				RoleAllocations: []storage.RoleAllocation{{MemberID: "tm_architect", Hours: 24}}},
		},
		Result: storage.CalculationResult{TotalCost: 16500},
	}

	mockEditor.On("CostEdit", mock.Anything, mock.MatchedBy(func(req estimate.CostEditRequest) bool {
		return req.EditedTotalCost == 16500
	})).Return(resp, nil)

	handler := EditSummaryCost(slog.Default(), mockEditor)

	reqBody := `{
		"inputs": {"templateId": "tpl_house_new", "area": 120, "calculationMode": "functional"},
		"stages": [{"id": "stage_concept", "type": "INTERNAL_RBH", "isEnabled": true}],
		"editedTotalCost": 16500
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculation/cost-edit", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "ожидался статус 200")

	var got estimate.CostEditResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &got)
	assert.NoError(t, err)

	// 2. Режим переключён, гонорар зафиксирован
	assert.Equal(t, storage.ModeFee, got.Inputs.CalculationMode)
	assert.NotNil(t, got.Inputs.TargetFee)
	assert.Equal(t, 16500.0, *got.Inputs.TargetFee)
	assert.True(t, got.Inputs.IncludeExternalCostsInFee)

	mockEditor.AssertExpectations(t)
}

func TestEditSummaryCost_NegativeCost(t *testing.T) {
	mockEditor := new(MockCostEditor)
	handler := EditSummaryCost(slog.Default(), mockEditor)

	reqBody := `{"inputs": {"templateId": "tpl_house_new"}, "editedTotalCost": -100}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculation/cost-edit", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockEditor.AssertNotCalled(t, "CostEdit")
}

func TestEditSummaryCost_ServiceError(t *testing.T) {
	mockEditor := new(MockCostEditor)
	mockEditor.On("CostEdit", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	handler := EditSummaryCost(slog.Default(), mockEditor)

	reqBody := `{"inputs": {"templateId": "tpl_house_new"}, "editedTotalCost": 10000}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculation/cost-edit", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockEditor.AssertExpectations(t)
}
