package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"feemo-backend/internal/storage"
)

type MultipliersProvider interface {
	GetMultipliers(ctx context.Context) (storage.GlobalMultipliers, error)
}

func GetMultipliers(log *slog.Logger, provider MultipliersProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.multipliers.get.GetMultipliers"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		m, err := provider.GetMultipliers(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении множителей")
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, m)
	}
}
