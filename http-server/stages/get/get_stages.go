package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"feemo-backend/internal/storage"
)

type StageProvider interface {
	GetStageDefinitions(ctx context.Context) ([]storage.Stage, error)
}

// GetStages отдаёт справочник этапов в порядке sort —
// фронт строит из него чеклист на шаге этапов
func GetStages(log *slog.Logger, stages StageProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stages.get.GetStages"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		defs, err := stages.GetStageDefinitions(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении этапов")
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, defs)
	}
}
