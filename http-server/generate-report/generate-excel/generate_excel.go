package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, calcID string) ([]byte, error)
}

func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		calcID := r.URL.Query().Get("id")
		if calcID == "" {
			http.Error(w, "Missing required query parameter 'id'", http.StatusBadRequest)
			return
		}

		// На сборку Excel времени закладываем больше, чем на обычный запрос
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, calcID)
		if err != nil {
			if strings.Contains(err.Error(), "не найден") {
				http.Error(w, "Calculation not found", http.StatusNotFound)
				return
			}

			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Wycena_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
