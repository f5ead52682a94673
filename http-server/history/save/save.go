package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"feemo-backend/internal/storage"
)

type CalculationSaver interface {
	SaveCalculation(ctx context.Context, calc storage.SavedCalculation) error
}

// SaveCalculation принимает полный снимок расчёта. Конфигурация
// (шаблоны, команда, множители) едет внутри снимка — история не
// зависит от последующих правок.
func SaveCalculation(log *slog.Logger, history CalculationSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.history.SaveCalculation"

		var req storage.SavedCalculation
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.ID == "" || req.UserID == "" {
			http.Error(w, "id и userId обязательны", http.StatusBadRequest)
			return
		}
		if req.Date.IsZero() {
			req.Date = time.Now()
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := history.SaveCalculation(ctx, req); err != nil {
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "ошибка сохранения расчета", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "created"})
	}
}
