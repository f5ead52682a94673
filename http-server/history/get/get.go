package get

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"feemo-backend/internal/storage"
)

type HistoryProvider interface {
	GetCalculationsByUser(ctx context.Context, userID string) ([]storage.SavedCalculation, error)
	GetCalculationByID(ctx context.Context, id string) (storage.SavedCalculation, error)
}

// GetHistory — все сохранённые расчёты пользователя, свежие сверху
func GetHistory(log *slog.Logger, history HistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.history.GetHistory"

		userID := r.URL.Query().Get("userId")
		if userID == "" {
			log.With(slog.String("op", op)).Error("Missing 'userId' in query parameters")
			http.Error(w, "Missing required query parameter 'userId'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		calcs, err := history.GetCalculationsByUser(ctx, userID)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении истории")
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		// nil сериализуется в null — фронт ждёт пустой массив
		if calcs == nil {
			calcs = []storage.SavedCalculation{}
		}

		render.JSON(w, r, calcs)
	}
}

func GetCalculation(log *slog.Logger, history HistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.history.GetCalculation"

		id := r.URL.Query().Get("id")
		if id == "" {
			log.With(slog.String("op", op)).Error("Missing 'id' in query parameters")
			http.Error(w, "Missing required query parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		calc, err := history.GetCalculationByID(ctx, id)
		if err != nil {
			if strings.Contains(err.Error(), "не найден") {
				log.With(slog.String("op", op), slog.String("id", id)).Warn("Calculation not found")
				http.Error(w, "Calculation not found", http.StatusNotFound)
				return
			}

			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении расчета")
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, calc)
	}
}
