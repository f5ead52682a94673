package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"feemo-backend/internal/storage"
)

type MockTemplateCreator struct {
	mock.Mock
}

func (m *MockTemplateCreator) CreateTemplate(ctx context.Context, template storage.CalculationTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func TestSaveTemplate_Success(t *testing.T) {
	mockTpl := new(MockTemplateCreator)

	// 1. Проверяем, что в хранилище уходит разобранный шаблон
	mockTpl.On("CreateTemplate", mock.Anything, mock.MatchedBy(func(tpl storage.CalculationTemplate) bool {
		return tpl.ID == "tpl_office_new" &&
			tpl.BuildingTypeID == "bt_office" &&
			tpl.RoleDistribution[storage.RoleArchitect] == 0.6
	})).Return(nil)

	handler := SaveTemplate(slog.Default(), mockTpl)

	reqBody := `{
		"id": "tpl_office_new",
		"buildingTypeId": "bt_office",
		"actionTypeId": "at_new",
		"name": "Biurowiec — nowy budynek",
		"roleDistribution": {"Architekt": 0.6, "Asystent": 0.4},
		"stageWeights": {"stage_concept": 0.5, "stage_permit": 0.5},
		"isActive": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/admin/template/save", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "ожидался статус 200")
	assert.Contains(t, rr.Body.String(), "created")

	mockTpl.AssertExpectations(t)
}

func TestSaveTemplate_MissingRequired(t *testing.T) {
	mockTpl := new(MockTemplateCreator)
	handler := SaveTemplate(slog.Default(), mockTpl)

	// нет buildingTypeId
	reqBody := `{"id": "tpl_x", "actionTypeId": "at_new"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/template/save", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockTpl.AssertNotCalled(t, "CreateTemplate")
}

func TestSaveTemplate_StorageError(t *testing.T) {
	mockTpl := new(MockTemplateCreator)
	mockTpl.On("CreateTemplate", mock.Anything, mock.Anything).Return(assert.AnError)

	handler := SaveTemplate(slog.Default(), mockTpl)

	reqBody := `{"id": "tpl_x", "buildingTypeId": "bt_x", "actionTypeId": "at_x"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/template/save", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockTpl.AssertExpectations(t)
}
