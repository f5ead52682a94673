package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "feemo-backend/http-server/admin/get"
	saveadmin "feemo-backend/http-server/admin/save"
	upadmin "feemo-backend/http-server/admin/update"
	cost_edit "feemo-backend/http-server/calculation/cost-edit"
	estimatehandler "feemo-backend/http-server/calculation/estimate"
	"feemo-backend/http-server/calculation/quotes"
	generate_excel "feemo-backend/http-server/generate-report/generate-excel"
	gethistory "feemo-backend/http-server/history/get"
	savehistory "feemo-backend/http-server/history/save"
	uphistory "feemo-backend/http-server/history/update"
	getlists "feemo-backend/http-server/lists/get"
	getmultipliers "feemo-backend/http-server/multipliers/get"
	getproject "feemo-backend/http-server/project/get"
	saveproject "feemo-backend/http-server/project/save"
	upproject "feemo-backend/http-server/project/update"
	getstages "feemo-backend/http-server/stages/get"
	getteam "feemo-backend/http-server/team/get"
	gettemplate "feemo-backend/http-server/template/get"
	savetemplate "feemo-backend/http-server/template/save"
	uptemplate "feemo-backend/http-server/template/update"
	"feemo-backend/internal/config"
	"feemo-backend/internal/middleware/auth"
	"feemo-backend/internal/service/estimate"
	generate_excel2 "feemo-backend/internal/service/generate-excel"
	"feemo-backend/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, estSvc *estimate.EstimateService, genSvc *generate_excel2.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Конвейер расчёта
	router.Post("/api/calculation/estimate", estimatehandler.EstimateCalculation(log, estSvc))
	router.Post("/api/calculation/cost-edit", cost_edit.EditSummaryCost(log, estSvc))
	router.Post("/api/calculation/quotes", quotes.ApplyQuoteAction(log))

	// Шаблоны и справочники для мастера
	router.Get("/api/template", gettemplate.GetTemplateByPair(log, storage))
	router.Get("/api/template/by-id", gettemplate.GetTemplateByID(log, storage))
	router.Get("/api/lists", getlists.GetLists(log, storage))
	router.Get("/api/team", getteam.GetTeam(log, storage))
	router.Get("/api/stages", getstages.GetStages(log, storage))
	router.Get("/api/multipliers", getmultipliers.GetMultipliers(log, storage))

	// История расчётов
	router.Get("/api/history", gethistory.GetHistory(log, storage))
	router.Get("/api/history/calculation", gethistory.GetCalculation(log, storage))
	router.Post("/api/history/save", savehistory.SaveCalculation(log, storage))
	router.Put("/api/history/update", uphistory.UpdateCalculation(log, storage))
	router.Delete("/api/history/delete", uphistory.DeleteCalculation(log, storage))

	// Проекты — группировка вариантов расчёта
	router.Get("/api/projects", getproject.GetProjects(log, storage))
	router.Get("/api/projects/project", getproject.GetProject(log, storage))
	router.Post("/api/projects/save", saveproject.SaveProject(log, storage))
	router.Put("/api/projects/update", upproject.UpdateProject(log, storage))
	router.Delete("/api/projects/delete", upproject.DeleteProject(log, storage))

	// Выгрузка в Excel
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, genSvc))

	// Панель конфигурации
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/config", getadmin.GetConfigAdmin(log, storage))
	adminRouter.Get("/templates", gettemplate.GetAllTemplates(log, storage))
	adminRouter.Post("/template/new", savetemplate.SaveTemplate(log, storage))
	adminRouter.Put("/template/update", uptemplate.UpdateTemplate(log, storage))
	adminRouter.Put("/team/update", upadmin.UpdateTeamAdmin(log, storage))
	adminRouter.Post("/team/save", saveadmin.SaveTeamMemberAdmin(log, storage))
	adminRouter.Put("/stages/update", upadmin.UpdateStagesAdmin(log, storage))
	adminRouter.Put("/multipliers/update", upadmin.UpdateMultipliersAdmin(log, storage))
	adminRouter.Put("/lists/update", upadmin.UpdateListsAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	// Статика, React SPA
	frontendDir := cfg.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Error("Папка фронтенда не найдена", "path", frontendDir)
		os.Exit(1)
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).Handle("/admin/*",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
		}),
	)

	// SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
