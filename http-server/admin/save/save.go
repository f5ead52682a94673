package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"feemo-backend/internal/storage"
)

type TeamMemberProvider interface {
	CreateTeamMember(ctx context.Context, m storage.TeamMember) error
}

func SaveTeamMemberAdmin(log *slog.Logger, team TeamMemberProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveTeamMemberAdmin"

		if r.Method != http.MethodPost {
			http.Error(w, "Метод запрещен", http.StatusMethodNotAllowed)
			return
		}

		var member storage.TeamMember
		if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		if member.ID == "" || member.Role == "" {
			http.Error(w, "id и role обязательны", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := team.CreateTeamMember(ctx, member); err != nil {
			log.Error("Ошибка добавления участника", "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
