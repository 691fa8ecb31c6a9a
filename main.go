package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/Xjua-nes/Juanes-ikernell/database"
	"github.com/Xjua-nes/Juanes-ikernell/handlers"
	"github.com/Xjua-nes/Juanes-ikernell/mailer"
	"github.com/Xjua-nes/Juanes-ikernell/middleware"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDB()

	// Initialize JWT
	middleware.InitJWT()

	// Initialize rate limiter (100 requests per minute)
	middleware.InitRateLimiter(100)

	// Stores
	workers := database.NewWorkerStore(database.DB)
	roles := database.NewRoleStore(database.DB)
	projects := database.NewProjectStore(database.DB)
	stages := database.NewStageStore(database.DB)
	activities := database.NewActivityStore(database.DB)
	assignments := database.NewAssignmentStore(database.DB)
	errorReports := database.NewErrorReportStore(database.DB)
	interruptions := database.NewInterruptionStore(database.DB)
	performance := database.NewPerformanceReportStore(database.DB)

	mail := mailer.New(mailer.ConfigFromEnv())

	// Handlers
	workerHandler := handlers.NewWorkerHandler(workers, roles, mail)
	authHandler := handlers.NewAuthHandler(workers, roles, mail)
	roleHandler := handlers.NewRoleHandler(roles)
	projectHandler := handlers.NewProjectHandler(projects, workers)
	stageHandler := handlers.NewStageHandler(stages, projects)
	activityHandler := handlers.NewActivityHandler(activities, stages, workers)
	assignmentHandler := handlers.NewAssignmentHandler(assignments, projects, workers)
	errorReportHandler := handlers.NewErrorReportHandler(errorReports, workers, activities, projects)
	interruptionHandler := handlers.NewInterruptionHandler(interruptions, workers, activities, projects)
	reportHandler := handlers.NewPerformanceReportHandler(performance, workers, assignments, stages, projects)

	// Create router
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/api/health", healthCheck).Methods("GET")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/auth/password-reset", authHandler.RequestPasswordReset).Methods("POST")
	router.HandleFunc("/api/auth/password-reset/confirm", authHandler.ConfirmPasswordReset).Methods("POST")

	// Protected routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware)

	// Workers
	api.HandleFunc("/workers", workerHandler.Register).Methods("POST")
	api.HandleFunc("/workers", workerHandler.List).Methods("GET")
	api.HandleFunc("/workers/leaders", workerHandler.ListLeaders).Methods("GET")
	api.HandleFunc("/workers/by-email", workerHandler.GetByEmail).Methods("GET")
	api.HandleFunc("/workers/{id}", workerHandler.Get).Methods("GET")
	api.HandleFunc("/workers/{id}", workerHandler.Update).Methods("PUT")
	api.HandleFunc("/workers/{id}", workerHandler.Delete).Methods("DELETE")
	api.HandleFunc("/workers/{id}/activate", workerHandler.Activate).Methods("PUT")
	api.HandleFunc("/workers/{id}/deactivate", workerHandler.Deactivate).Methods("PUT")

	// Roles
	api.HandleFunc("/roles", roleHandler.Create).Methods("POST")
	api.HandleFunc("/roles", roleHandler.List).Methods("GET")
	api.HandleFunc("/roles/{id}", roleHandler.Get).Methods("GET")
	api.HandleFunc("/roles/{id}", roleHandler.Update).Methods("PUT")
	api.HandleFunc("/roles/{id}", roleHandler.Delete).Methods("DELETE")

	// Projects
	api.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	api.HandleFunc("/projects", projectHandler.List).Methods("GET")
	api.HandleFunc("/projects/{id}", projectHandler.Get).Methods("GET")
	api.HandleFunc("/projects/{id}", projectHandler.Update).Methods("PUT")
	api.HandleFunc("/projects/{id}", projectHandler.Delete).Methods("DELETE")
	api.HandleFunc("/projects/{id}/status", projectHandler.UpdateStatus).Methods("PUT")
	api.HandleFunc("/projects/{projectID}/stages", stageHandler.ListByProject).Methods("GET")
	api.HandleFunc("/projects/{projectID}/assignments", assignmentHandler.ListByProject).Methods("GET")
	api.HandleFunc("/projects/{projectID}/reports", reportHandler.ListByProject).Methods("GET")

	// Stages
	api.HandleFunc("/stages", stageHandler.Create).Methods("POST")
	api.HandleFunc("/stages", stageHandler.List).Methods("GET")
	api.HandleFunc("/stages/{id}", stageHandler.Get).Methods("GET")
	api.HandleFunc("/stages/{id}", stageHandler.Update).Methods("PUT")
	api.HandleFunc("/stages/{id}", stageHandler.Delete).Methods("DELETE")
	api.HandleFunc("/stages/{stageID}/activities", activityHandler.ListByStage).Methods("GET")

	// Activities
	api.HandleFunc("/activities", activityHandler.Create).Methods("POST")
	api.HandleFunc("/activities", activityHandler.List).Methods("GET")
	api.HandleFunc("/activities/{id}", activityHandler.Get).Methods("GET")
	api.HandleFunc("/activities/{id}", activityHandler.Update).Methods("PUT")
	api.HandleFunc("/activities/{id}", activityHandler.Delete).Methods("DELETE")
	api.HandleFunc("/activities/{id}/status", activityHandler.UpdateStatus).Methods("PUT")

	// Assignments
	api.HandleFunc("/assignments", assignmentHandler.Create).Methods("POST")
	api.HandleFunc("/assignments", assignmentHandler.List).Methods("GET")
	api.HandleFunc("/assignments/{id}", assignmentHandler.Get).Methods("GET")
	api.HandleFunc("/assignments/{id}", assignmentHandler.Update).Methods("PUT")
	api.HandleFunc("/assignments/{id}", assignmentHandler.Delete).Methods("DELETE")

	// Error reports
	api.HandleFunc("/errors", errorReportHandler.Create).Methods("POST")
	api.HandleFunc("/errors", errorReportHandler.List).Methods("GET")
	api.HandleFunc("/errors/{id}", errorReportHandler.Get).Methods("GET")
	api.HandleFunc("/errors/{id}", errorReportHandler.Update).Methods("PUT")
	api.HandleFunc("/errors/{id}", errorReportHandler.Delete).Methods("DELETE")

	// Interruptions
	api.HandleFunc("/interruptions", interruptionHandler.Create).Methods("POST")
	api.HandleFunc("/interruptions", interruptionHandler.List).Methods("GET")
	api.HandleFunc("/interruptions/{id}", interruptionHandler.Get).Methods("GET")
	api.HandleFunc("/interruptions/{id}", interruptionHandler.Update).Methods("PUT")
	api.HandleFunc("/interruptions/{id}", interruptionHandler.Delete).Methods("DELETE")

	// Performance reports
	api.HandleFunc("/reports", reportHandler.Create).Methods("POST")
	api.HandleFunc("/reports", reportHandler.List).Methods("GET")
	api.HandleFunc("/reports/{id}", reportHandler.Get).Methods("GET")
	api.HandleFunc("/reports/{id}", reportHandler.Update).Methods("PUT")
	api.HandleFunc("/reports/{id}", reportHandler.Delete).Methods("DELETE")

	// Developer-scoped views
	api.HandleFunc("/developers/{developerID}/activities", activityHandler.ListByDeveloper).Methods("GET")
	api.HandleFunc("/developers/{developerID}/assignments", assignmentHandler.ListByDeveloper).Methods("GET")
	api.HandleFunc("/developers/{developerID}/errors", errorReportHandler.ListByDeveloper).Methods("GET")
	api.HandleFunc("/developers/{developerID}/interruptions", interruptionHandler.ListByDeveloper).Methods("GET")
	api.HandleFunc("/workers/{workerID}/reports", reportHandler.ListByWorker).Methods("GET")

	// Apply logging middleware
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RateLimitMiddleware)

	// Configure CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: getAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders: []string{
			"Link",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	handler := corsHandler.Handler(router)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"Project Management Backend"}`))
}

func getAllowedOrigins() []string {
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		// Default allowed origins for development
		return []string{"*"}
	}

	var result []string
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
