package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"feemo-backend/internal/storage"
)

type UpdateConfigProvider interface {
	UpdateTeam(ctx context.Context, team []storage.TeamMember) error
	UpdateStageDefinitions(ctx context.Context, stages []storage.Stage) error
	UpdateMultipliers(ctx context.Context, m storage.GlobalMultipliers) error
	UpdateLists(ctx context.Context, building []storage.BuildingType, action []storage.ActionType) error
}

func UpdateTeamAdmin(log *slog.Logger, update UpdateConfigProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateTeamAdmin"

		if r.Method != http.MethodPut {
			http.Error(w, "Метод не разрешён", http.StatusMethodNotAllowed)
			return
		}

		var team []storage.TeamMember
		if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		for _, m := range team {
			if m.Rate < 0 {
				http.Error(w, "Ставка не может быть отрицательной", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateTeam(ctx, team); err != nil {
			log.Error("Ошибка обновления команды", "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func UpdateStagesAdmin(log *slog.Logger, update UpdateConfigProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateStagesAdmin"

		if r.Method != http.MethodPut {
			http.Error(w, "Метод не разрешён", http.StatusMethodNotAllowed)
			return
		}

		var stages []storage.Stage
		if err := json.NewDecoder(r.Body).Decode(&stages); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		for _, st := range stages {
			if st.Type != storage.StageInternalRBH && st.Type != storage.StageExternalFixed {
				http.Error(w, "Неизвестный тип этапа: "+st.Type, http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateStageDefinitions(ctx, stages); err != nil {
			log.Error("Ошибка обновления этапов", "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func UpdateMultipliersAdmin(log *slog.Logger, update UpdateConfigProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateMultipliersAdmin"

		if r.Method != http.MethodPut {
			http.Error(w, "Метод не разрешён", http.StatusMethodNotAllowed)
			return
		}

		var m storage.GlobalMultipliers
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateMultipliers(ctx, m); err != nil {
			log.Error("Ошибка обновления множителей", "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

type ListsRequest struct {
	BuildingTypes []storage.BuildingType `json:"buildingTypes"`
	ActionTypes   []storage.ActionType   `json:"actionTypes"`
}

func UpdateListsAdmin(log *slog.Logger, update UpdateConfigProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateListsAdmin"

		if r.Method != http.MethodPut {
			http.Error(w, "Метод не разрешён", http.StatusMethodNotAllowed)
			return
		}

		var req ListsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateLists(ctx, req.BuildingTypes, req.ActionTypes); err != nil {
			log.Error("Ошибка обновления справочников", "error", err)
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
