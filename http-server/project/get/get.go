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

type ProjectProvider interface {
	GetProjectsByUser(ctx context.Context, userID string) ([]storage.Project, error)
	GetProjectByID(ctx context.Context, id string) (storage.Project, error)
}

func GetProjects(log *slog.Logger, projects ProjectProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.project.GetProjects"

		userID := r.URL.Query().Get("userId")
		if userID == "" {
			log.With(slog.String("op", op)).Error("Missing 'userId' in query parameters")
			http.Error(w, "Missing required query parameter 'userId'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := projects.GetProjectsByUser(ctx, userID)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении проектов")
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		if list == nil {
			list = []storage.Project{}
		}

		render.JSON(w, r, list)
	}
}

func GetProject(log *slog.Logger, projects ProjectProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.project.GetProject"

		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing required query parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		project, err := projects.GetProjectByID(ctx, id)
		if err != nil {
			if strings.Contains(err.Error(), "не найден") {
				log.With(slog.String("op", op), slog.String("id", id)).Warn("Project not found")
				http.Error(w, "Project not found", http.StatusNotFound)
				return
			}

			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении проекта")
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, project)
	}
}
