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

type ProjectCreator interface {
	CreateProject(ctx context.Context, p storage.Project) error
}

func SaveProject(log *slog.Logger, projects ProjectCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.project.SaveProject"

		var req storage.Project
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.ID == "" || req.UserID == "" || req.Name == "" {
			http.Error(w, "id, userId и name обязательны", http.StatusBadRequest)
			return
		}
		if req.CreatedAt.IsZero() {
			req.CreatedAt = time.Now()
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := projects.CreateProject(ctx, req); err != nil {
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "ошибка создания проекта", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "created"})
	}
}
