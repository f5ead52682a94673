package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"feemo-backend/internal/storage"
)

type TeamProvider interface {
	GetTeam(ctx context.Context) ([]storage.TeamMember, error)
}

func GetTeam(log *slog.Logger, team TeamProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.team.get.GetTeam"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		members, err := team.GetTeam(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении команды")
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, members)
	}
}
