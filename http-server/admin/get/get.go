package get

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"feemo-backend/internal/storage"
)

type AdminConfigProvider interface {
	GetTeam(ctx context.Context) ([]storage.TeamMember, error)
	GetStageDefinitions(ctx context.Context) ([]storage.Stage, error)
	GetMultipliers(ctx context.Context) (storage.GlobalMultipliers, error)
	GetBuildingTypes(ctx context.Context) ([]storage.BuildingType, error)
	GetActionTypes(ctx context.Context) ([]storage.ActionType, error)
}

type ConfigResponse struct {
	Team          []storage.TeamMember      `json:"team"`
	Stages        []storage.Stage           `json:"stages"`
	Multipliers   storage.GlobalMultipliers `json:"multipliers"`
	BuildingTypes []storage.BuildingType    `json:"buildingTypes"`
	ActionTypes   []storage.ActionType      `json:"actionTypes"`
}

// GetConfigAdmin — вся редактируемая конфигурация одним ответом
// для панели администратора
func GetConfigAdmin(log *slog.Logger, cfg AdminConfigProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetConfigAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var resp ConfigResponse

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			resp.Team, err = cfg.GetTeam(gCtx)
			if err != nil {
				return fmt.Errorf("team: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			resp.Stages, err = cfg.GetStageDefinitions(gCtx)
			if err != nil {
				return fmt.Errorf("stages: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			resp.Multipliers, err = cfg.GetMultipliers(gCtx)
			if err != nil {
				return fmt.Errorf("multipliers: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			resp.BuildingTypes, err = cfg.GetBuildingTypes(gCtx)
			if err != nil {
				return fmt.Errorf("building types: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			resp.ActionTypes, err = cfg.GetActionTypes(gCtx)
			if err != nil {
				return fmt.Errorf("action types: %w", err)
			}
			return nil
		})

		if err := g.Wait(); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения конфигурации")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, resp)
	}
}
