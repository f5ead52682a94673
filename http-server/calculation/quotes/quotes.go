package quotes

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"feemo-backend/internal/service/calc"
	"feemo-backend/internal/storage"
)

const (
	ActionAdd      = "add"
	ActionSelect   = "select"
	ActionDelete   = "delete"
	ActionSetPrice = "setPrice"
)

type Request struct {
	Stages  []storage.Stage        `json:"stages"`
	StageID string                 `json:"stageId"`
	Action  string                 `json:"action"`
	Quote   *storage.ExternalQuote `json:"quote,omitempty"`
	QuoteID string                 `json:"quoteId,omitempty"`
	Price   *float64               `json:"price,omitempty"`
}

type Response struct {
	Stages []storage.Stage `json:"stages"`
}

// ApplyQuoteAction применяет операцию над офертами внешнего этапа
// и возвращает этапы с восстановленным инвариантом цены
func ApplyQuoteAction(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculation.ApplyQuoteAction"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		var stage *storage.Stage
		for i := range req.Stages {
			if req.Stages[i].ID == req.StageID {
				stage = &req.Stages[i]
				break
			}
		}
		if stage == nil {
			log.With(slog.String("op", op), slog.String("stageId", req.StageID)).Warn("Stage not found")
			http.Error(w, "Stage not found", http.StatusNotFound)
			return
		}
		if stage.Type != storage.StageExternalFixed {
			http.Error(w, "Quotes are only valid on external stages", http.StatusBadRequest)
			return
		}

		switch req.Action {
		case ActionAdd:
			if req.Quote == nil {
				http.Error(w, "Missing 'quote' for add action", http.StatusBadRequest)
				return
			}
			calc.AddQuote(stage, *req.Quote)
		case ActionSelect:
			if req.QuoteID == "" {
				http.Error(w, "Missing 'quoteId' for select action", http.StatusBadRequest)
				return
			}
			calc.SelectQuote(stage, req.QuoteID)
		case ActionDelete:
			if req.QuoteID == "" {
				http.Error(w, "Missing 'quoteId' for delete action", http.StatusBadRequest)
				return
			}
			calc.DeleteQuote(stage, req.QuoteID)
		case ActionSetPrice:
			if req.Price == nil {
				http.Error(w, "Missing 'price' for setPrice action", http.StatusBadRequest)
				return
			}
			calc.SetManualPrice(stage, *req.Price)
		default:
			log.With(slog.String("op", op), slog.String("action", req.Action)).Error("Unknown quote action")
			http.Error(w, "Unknown action", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, Response{Stages: req.Stages})
	}
}
