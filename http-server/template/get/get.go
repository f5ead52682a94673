package get

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"feemo-backend/internal/storage"
)

type TemplateProvider interface {
	GetTemplateByID(ctx context.Context, id string) (*storage.CalculationTemplate, error)
	GetTemplateByPair(ctx context.Context, buildingTypeID, actionTypeID string) (*storage.CalculationTemplate, error)
	GetAllTemplates(ctx context.Context) ([]*storage.CalculationTemplate, error)
}

// GetTemplateByPair подбирает шаблон под пару (тип здания, вид работ) —
// мастер расчёта дергает его после второго шага
func GetTemplateByPair(log *slog.Logger, template TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.GetTemplateByPair"

		buildingType := r.URL.Query().Get("buildingType")
		actionType := r.URL.Query().Get("actionType")
		if buildingType == "" || actionType == "" {
			log.With(slog.String("op", op)).Error("Missing 'buildingType' or 'actionType' in query parameters")
			http.Error(w, "Missing required query parameters 'buildingType' and 'actionType'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tpl, err := template.GetTemplateByPair(ctx, buildingType, actionType)
		if err != nil {
			if strings.Contains(err.Error(), "не найден") || errors.Is(err, sql.ErrNoRows) {
				log.With(
					slog.String("op", op),
					slog.String("buildingType", buildingType),
					slog.String("actionType", actionType),
				).Warn("Template not found")
				http.Error(w, "Template not found", http.StatusNotFound)
				return
			}

			log.With(
				slog.String("op", op),
				slog.String("error", err.Error()),
			).Error("Failed to fetch template")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, tpl)
	}
}

func GetTemplateByID(log *slog.Logger, template TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.GetTemplateByID"

		id := r.URL.Query().Get("id")
		if id == "" {
			log.With(slog.String("op", op)).Error("Missing 'id' in query parameters")
			http.Error(w, "Missing required query parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tpl, err := template.GetTemplateByID(ctx, id)
		if err != nil {
			if strings.Contains(err.Error(), "не найден") || errors.Is(err, sql.ErrNoRows) {
				log.With(slog.String("op", op), slog.String("id", id)).Warn("Template not found")
				http.Error(w, "Template not found", http.StatusNotFound)
				return
			}

			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch template")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, tpl)
	}
}

type ResponseAllTemplates struct {
	Templates []*storage.CalculationTemplate `json:"templates"`
	Error     string                         `json:"error"`
}

// GetAllTemplates — список для панели конфигурации, включая неактивные
func GetAllTemplates(log *slog.Logger, template TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.GetAllTemplates"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		templates, err := template.GetAllTemplates(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch templates")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseAllTemplates{
			Templates: templates,
			Error:     "",
		})
	}
}
