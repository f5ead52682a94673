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

type ProjectEditor interface {
	UpdateProject(ctx context.Context, p storage.Project) error
	DeleteProject(ctx context.Context, id string) error
}

func UpdateProject(log *slog.Logger, projects ProjectEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.project.UpdateProject"

		if r.Method != http.MethodPut {
			http.Error(w, "Метод не разрешён", http.StatusMethodNotAllowed)
			return
		}

		var req storage.Project
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		if req.ID == "" {
			http.Error(w, "id обязателен", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := projects.UpdateProject(ctx, req); err != nil {
			if strings.Contains(err.Error(), "не найден") {
				http.Error(w, "Project not found", http.StatusNotFound)
				return
			}

			log.Error("Ошибка обновления проекта", "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// DeleteProject удаляет проект, расчёты остаются в истории без привязки
func DeleteProject(log *slog.Logger, projects ProjectEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.project.DeleteProject"

		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing required query parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := projects.DeleteProject(ctx, id); err != nil {
			if strings.Contains(err.Error(), "не найден") {
				http.Error(w, "Project not found", http.StatusNotFound)
				return
			}

			log.Error("Ошибка удаления проекта", "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
