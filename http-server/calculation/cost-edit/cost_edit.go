package cost_edit

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"feemo-backend/internal/service/estimate"
)

type CostEditor interface {
	CostEdit(ctx context.Context, req estimate.CostEditRequest) (*estimate.CostEditResponse, error)
}

// EditSummaryCost — ручная правка итоговой суммы на экране сводки.
// Сервис переводит расчёт в режим гонорара и перераспределяет
// часы по включённым внутренним этапам.
func EditSummaryCost(log *slog.Logger, editor CostEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculation.EditSummaryCost"

		var req estimate.CostEditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.Inputs.TemplateID == "" {
			log.With(slog.String("op", op)).Error("Missing 'templateId' in request")
			http.Error(w, "Missing required field 'templateId'", http.StatusBadRequest)
			return
		}
		if req.EditedTotalCost < 0 {
			http.Error(w, "editedTotalCost must be non-negative", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp, err := editor.CostEdit(ctx, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to apply cost edit")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, resp)
	}
}
