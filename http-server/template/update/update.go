package update

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"feemo-backend/internal/storage"
)

type TemplateUpdateProvider interface {
	UpdateTemplate(ctx context.Context, id string, template storage.CalculationTemplate) error
}

func UpdateTemplate(log *slog.Logger, temp TemplateUpdateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.UpdateTemplate"

		var req storage.CalculationTemplate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "ошибка парсинга JSON", http.StatusBadRequest)
			return
		}

		if req.ID == "" {
			http.Error(w, "id обязателен", http.StatusBadRequest)
			return
		}

		if err := temp.UpdateTemplate(r.Context(), req.ID, req); err != nil {
			if strings.Contains(err.Error(), "не найден") {
				http.Error(w, "шаблон не найден", http.StatusNotFound)
				return
			}

			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "ошибка обновления шаблона", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}
}
