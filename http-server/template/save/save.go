package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"feemo-backend/internal/storage"
)

type TemplateCreateProvider interface {
	CreateTemplate(ctx context.Context, template storage.CalculationTemplate) error
}

func SaveTemplate(log *slog.Logger, temp TemplateCreateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.SaveTemplate"

		var req storage.CalculationTemplate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "ошибка парсинга JSON", http.StatusBadRequest)
			return
		}

		if req.ID == "" || req.BuildingTypeID == "" || req.ActionTypeID == "" {
			http.Error(w, "id, buildingTypeId и actionTypeId обязательны", http.StatusBadRequest)
			return
		}

		// Пустые словари вместо nil, чтобы в базе лежал валидный JSON
		if req.RoleDistribution == nil {
			req.RoleDistribution = map[string]float64{}
		}
		if req.StageWeights == nil {
			req.StageWeights = map[string]float64{}
		}
		if req.Groups == nil {
			req.Groups = []storage.FunctionalGroup{}
		}

		if err := temp.CreateTemplate(r.Context(), req); err != nil {
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "ошибка создания шаблона", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "created"})
	}
}
