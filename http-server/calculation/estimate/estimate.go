package estimate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"feemo-backend/internal/service/estimate"
)

type Estimator interface {
	Estimate(ctx context.Context, req estimate.EstimateRequest) (*estimate.EstimateResponse, error)
}

func EstimateCalculation(log *slog.Logger, est Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculation.EstimateCalculation"

		var req estimate.EstimateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.Inputs.TemplateID == "" {
			log.With(slog.String("op", op)).Error("Missing 'templateId' in request")
			http.Error(w, "Missing required field 'templateId'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp, err := est.Estimate(ctx, req)
		if err != nil {
			if strings.Contains(err.Error(), "не найден") {
				log.With(slog.String("op", op), slog.String("templateId", req.Inputs.TemplateID)).Warn("Template not found")
				http.Error(w, "Template not found", http.StatusNotFound)
				return
			}

			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to estimate")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, resp)
	}
}
