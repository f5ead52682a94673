package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"feemo-backend/internal/storage"
)

type HistoryEditor interface {
	UpdateCalculation(ctx context.Context, id string, upd storage.UpdateCalculation) error
	DeleteCalculation(ctx context.Context, id string) error
}

// UpdateCalculation правит метаданные записи: имя и привязку к проекту.
// Сам снимок расчёта неизменяемый.
func UpdateCalculation(log *slog.Logger, history HistoryEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.history.UpdateCalculation"

		if r.Method != http.MethodPut {
			http.Error(w, "Метод не разрешён", http.StatusMethodNotAllowed)
			return
		}

		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing required query parameter 'id'", http.StatusBadRequest)
			return
		}

		var upd storage.UpdateCalculation
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := history.UpdateCalculation(ctx, id, upd); err != nil {
			if strings.Contains(err.Error(), "не найден") {
				http.Error(w, "Calculation not found", http.StatusNotFound)
				return
			}

			log.Error("Ошибка обновления расчета", "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func DeleteCalculation(log *slog.Logger, history HistoryEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.history.DeleteCalculation"

		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing required query parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := history.DeleteCalculation(ctx, id); err != nil {
			if strings.Contains(err.Error(), "не найден") {
				http.Error(w, "Calculation not found", http.StatusNotFound)
				return
			}

			log.Error("Ошибка удаления расчета", "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
