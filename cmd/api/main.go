package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/vmunteanu/contaflow/internal/api/handlers"
	"github.com/vmunteanu/contaflow/internal/api/middleware"
	"github.com/vmunteanu/contaflow/internal/config"
	"github.com/vmunteanu/contaflow/internal/extract"
	"github.com/vmunteanu/contaflow/internal/jobs/inmemory"
	"github.com/vmunteanu/contaflow/internal/logger"
	"github.com/vmunteanu/contaflow/internal/pipeline"
	"github.com/vmunteanu/contaflow/internal/store"
)

func main() {
	cfg := config.Load()

	var (
		port  = flag.String("port", cfg.Port, "HTTP server port")
		model = flag.String("model", cfg.GeminiModel, "Gemini model used for analysis")
	)
	flag.Parse()

	log := logger.New()

	// The analyzer is the only outbound dependency; without a key the
	// server cannot do anything useful, so fail fast.
	analyzer, err := extract.NewGeminiAnalyzer(cfg.GeminiAPIKey, *model)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create analyzer (set GEMINI_API_KEY)")
	}

	// Stores hold all state; everything is lost on restart.
	documents := store.NewDocumentStore()
	contracts := store.NewContractStore()
	banking := store.NewBankingStore()
	accounting := store.NewAccountingStore()

	jobStore := inmemory.NewStore()
	jobQueue := inmemory.NewQueue(cfg.QueueBuffer, cfg.Workers, jobStore)

	svc := pipeline.New(analyzer, jobQueue, documents, contracts, banking, accounting, log)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	go func() {
		log.Info().Int("workers", cfg.Workers).Msg("Starting analysis workers")
		if err := jobQueue.Start(workerCtx, svc.HandleJob); err != nil {
			log.Error().Err(err).Msg("Job worker stopped with error")
		}
	}()

	uploadsHandler := handlers.NewUploadsHandler(svc, log)
	documentsHandler := handlers.NewDocumentsHandler(documents, log)
	contractsHandler := handlers.NewContractsHandler(contracts, log)
	bankingHandler := handlers.NewBankingHandler(banking, log)
	accountingHandler := handlers.NewAccountingHandler(accounting, log)
	chatHandler := handlers.NewChatHandler(documents, accounting, log)
	dashboardHandler := handlers.NewDashboardHandler(documents, contracts, banking, accounting, log)
	jobsHandler := handlers.NewJobsHandler(jobStore, log)

	mux := http.NewServeMux()

	// Upload intake
	mux.HandleFunc("/api/uploads", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			uploadsHandler.Upload(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/uploads/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/uploads/")
		entityID, ok := strings.CutSuffix(rest, "/cancel")
		if r.Method != http.MethodPost || !ok || entityID == "" {
			middleware.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		uploadsHandler.CancelUpload(w, r, entityID)
	})

	// Documents and generated transactions
	mux.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			documentsHandler.ListDocuments(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/documents/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/documents/")
		if r.Method != http.MethodGet || id == "" {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		documentsHandler.GetDocument(w, r, id)
	})

	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			documentsHandler.ListTransactions(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Contracts
	mux.HandleFunc("/api/contracts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			contractsHandler.ListContracts(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/contracts/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/contracts/")
		switch {
		case r.Method == http.MethodPut && strings.HasSuffix(rest, "/status"):
			contractsHandler.UpdateStatus(w, r, strings.TrimSuffix(rest, "/status"))
		case r.Method == http.MethodPost && strings.HasSuffix(rest, "/milestones"):
			contractsHandler.AddMilestone(w, r, strings.TrimSuffix(rest, "/milestones"))
		case r.Method == http.MethodPost && strings.HasSuffix(rest, "/invoices"):
			contractsHandler.LinkInvoice(w, r, strings.TrimSuffix(rest, "/invoices"))
		case r.Method == http.MethodGet && rest != "":
			contractsHandler.GetContract(w, r, rest)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Banking
	mux.HandleFunc("/api/bank-statements", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			bankingHandler.ListStatements(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/bank-transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			bankingHandler.ListTransactions(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/reconciliations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			bankingHandler.ListReconciliations(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/reconciliations/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/reconciliations/")
		switch {
		case r.Method == http.MethodGet && rest == "summary":
			bankingHandler.Summary(w, r)
		case r.Method == http.MethodPost && rest != "":
			bankingHandler.ManualReconcile(w, r, rest)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Accounting records
	mux.HandleFunc("/api/clients", accountingHandler.Clients)
	mux.HandleFunc("/api/suppliers", accountingHandler.Suppliers)
	mux.HandleFunc("/api/products", accountingHandler.Products)
	mux.HandleFunc("/api/invoices", accountingHandler.Invoices)
	mux.HandleFunc("/api/tax-reports", accountingHandler.TaxReports)
	mux.HandleFunc("/api/bank-accounts", accountingHandler.BankAccounts)
	mux.HandleFunc("/api/budgets", accountingHandler.Budgets)
	mux.HandleFunc("/api/settings", accountingHandler.Settings)

	// Chat
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			chatHandler.History(w, r)
		case http.MethodPost:
			chatHandler.Ask(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Dashboard
	mux.HandleFunc("/api/dashboard/summary", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			dashboardHandler.Summary(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Jobs
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			jobsHandler.ListJobs(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/jobs/", func(w http.ResponseWriter, r *http.Request) {
		jobID := strings.TrimPrefix(r.URL.Path, "/api/jobs/")
		if r.Method != http.MethodGet || jobID == "" {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		jobsHandler.GetJob(w, r, jobID)
	})

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", *port).Str("model", *model).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	cancelWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	if err := jobQueue.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping job queue")
	}

	log.Info().Msg("Server exited")
}
