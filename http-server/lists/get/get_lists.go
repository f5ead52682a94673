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

type ListsProvider interface {
	GetBuildingTypes(ctx context.Context) ([]storage.BuildingType, error)
	GetActionTypes(ctx context.Context) ([]storage.ActionType, error)
}

type Response struct {
	BuildingTypes []storage.BuildingType `json:"buildingTypes"`
	ActionTypes   []storage.ActionType   `json:"actionTypes"`
}

// GetLists — оба справочника одним запросом, фронту нужны сразу
func GetLists(log *slog.Logger, lists ListsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lists.get.GetLists"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var (
			building []storage.BuildingType
			action   []storage.ActionType
		)

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			building, err = lists.GetBuildingTypes(gCtx)
			if err != nil {
				return fmt.Errorf("building types: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			action, err = lists.GetActionTypes(gCtx)
			if err != nil {
				return fmt.Errorf("action types: %w", err)
			}
			return nil
		})

		if err := g.Wait(); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении справочников")
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			BuildingTypes: building,
			ActionTypes:   action,
		})
	}
}
