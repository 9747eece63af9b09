package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
	"github.com/Dominoman/BangkokCheapTravel/internal/domain/repository"
	"github.com/Dominoman/BangkokCheapTravel/internal/infrastructure/config"
	"github.com/Dominoman/BangkokCheapTravel/internal/infrastructure/oauth"
	"github.com/Dominoman/BangkokCheapTravel/internal/infrastructure/persistence"
	"github.com/Dominoman/BangkokCheapTravel/internal/interface/mailer"
	storeRepo "github.com/Dominoman/BangkokCheapTravel/internal/interface/repository"
	"github.com/Dominoman/BangkokCheapTravel/internal/interface/tequila"
	"github.com/Dominoman/BangkokCheapTravel/internal/usecase"
	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"
	"github.com/Dominoman/BangkokCheapTravel/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting BangkokCheapTravel")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up metrics
	m := metrics.NewMetrics("cheaptravel")

	// Open the relational store
	gormDB, err := persistence.OpenDatabase(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal("Failed to open database", "driver", cfg.DBDriver, "error", err)
	}
	flightStore := storeRepo.NewGormFlightStore(gormDB)
	if err := flightStore.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}

	// Optional raw-response archive
	var mongoClient *mongo.Client
	var searchArchive repository.SearchArchiveRepository
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		mongoClient, err = persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		searchArchive = storeRepo.NewMongoSearchArchiveRepository(persistence.GetDatabase(mongoClient, cfg.MongoDB))
	}

	// Set up the provider clients
	searchClient := tequila.NewSearchClient(cfg.SearchBaseURL, cfg.TequilaAPIKey, log)
	carriers := tequila.NewCachedCarrierDirectory(cfg.CarriersURL, 24*time.Hour, log)

	// Set up the pipeline
	ingestor := usecase.NewIngestor(flightStore, carriers, log, m)
	reporter := usecase.NewReporter(flightStore, cfg.Currency, log)

	// Set up report delivery
	var reportMailer repository.MailerRepository
	switch cfg.MailTransport {
	case "gmail":
		gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, log)
		reportMailer, err = mailer.NewGmailMailer(ctx, gmailOAuth.GetTokenSource(ctx), log)
		if err != nil {
			log.Fatal("Failed to create Gmail mailer", "error", err)
		}
	default:
		reportMailer = mailer.NewSMTPMailer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPUsername, log)
	}

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	cycle := func() {
		runCycle(ctx, cfg, searchClient, carriers, searchArchive, ingestor, reporter, reportMailer, m, log)
	}

	if cfg.RunOnce {
		cycle()
	} else {
		// Run the first cycle immediately, then on the ticker
		go func() {
			cycle()

			fetchTicker := time.NewTicker(cfg.FetchInterval)
			defer fetchTicker.Stop()

			for {
				select {
				case <-ctx.Done():
					log.Info("Fetch loop stopped")
					return
				case <-fetchTicker.C:
					cycle()
				}
			}
		}()

		// Wait for interrupt signal
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info("Received signal", "signal", sig)
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	if mongoClient != nil {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("BangkokCheapTravel stopped")
}

// runCycle performs one fetch-ingest-report pass
func runCycle(
	ctx context.Context,
	cfg *config.Config,
	searchClient *tequila.SearchClient,
	carriers repository.CarrierDirectory,
	searchArchive repository.SearchArchiveRepository,
	ingestor *usecase.Ingestor,
	reporter *usecase.Reporter,
	reportMailer repository.MailerRepository,
	m *metrics.Metrics,
	log logger.Logger,
) {
	now := time.Now()

	result, searchErr := searchClient.Search(ctx, buildQuery(cfg, now))

	// Archive the raw exchange even when the fetch failed
	if searchArchive != nil && result != nil {
		searchLog := &entity.SearchLog{
			FetchedAt:  now,
			RequestURL: result.RequestURL,
			StatusCode: result.StatusCode,
			RawBody:    string(result.RawBody),
		}
		if result.Response != nil {
			searchLog.OfferCount = len(result.Response.Data)
		}
		if err := searchArchive.Save(ctx, searchLog); err != nil {
			log.Error("Failed to archive search response", "error", err)
			m.ErrorsCount.WithLabelValues("archive").Inc()
		}
	}

	if searchErr != nil {
		log.Error("Search failed, skipping ingestion", "error", searchErr)
		m.ErrorsCount.WithLabelValues("search").Inc()
		return
	}

	if err := carriers.Load(ctx); err != nil {
		log.Error("Failed to load carrier directory", "error", err)
		m.ErrorsCount.WithLabelValues("carriers").Inc()
		return
	}

	stats, err := ingestor.Ingest(ctx, result.Response.Data, now)
	if err != nil {
		log.Error("Ingestion failed, batch rolled back", "error", err)
		m.ErrorsCount.WithLabelValues("ingest").Inc()
		return
	}
	log.Info("Ingestion finished",
		"itinerarySeen", stats.ItinerariesSeen, "itineraryAdded", stats.ItinerariesAdded,
		"routeSeen", stats.SegmentsSeen, "routeAdded", stats.SegmentsAdded)

	report, err := reporter.Report(ctx, cfg.ReportLimit)
	if err != nil {
		log.Error("Failed to build report", "error", err)
		m.ErrorsCount.WithLabelValues("report").Inc()
		return
	}

	if cfg.ReportRecipient == "" {
		log.Warn("No report recipient configured, skipping delivery")
		return
	}

	if err := reportMailer.Send(ctx, cfg.ReportRecipient, report.Subject, report.HTMLBody); err != nil {
		log.Error("Failed to send report", "error", err)
		m.ErrorsCount.WithLabelValues("mail").Inc()
		return
	}
	m.ReportsSent.Inc()
}

// buildQuery assembles the provider query. When no explicit date window is
// configured the search covers the next one to four months.
func buildQuery(cfg *config.Config, now time.Time) tequila.SearchQuery {
	dateFrom := cfg.DateFrom
	dateTo := cfg.DateTo
	if dateFrom == "" {
		dateFrom = now.AddDate(0, 1, 0).Format("02/01/2006")
	}
	if dateTo == "" {
		dateTo = now.AddDate(0, 4, 0).Format("02/01/2006")
	}

	return tequila.SearchQuery{
		FlyFrom:         cfg.FlyFrom,
		FlyTo:           cfg.FlyTo,
		DateFrom:        dateFrom,
		DateTo:          dateTo,
		NightsInDstFrom: cfg.NightsInDstMin,
		NightsInDstTo:   cfg.NightsInDstMax,
		MaxFlyDuration:  cfg.MaxFlyDuration,
		MaxStopovers:    cfg.MaxStopovers,
		Limit:           cfg.SearchLimit,
		Currency:        cfg.Currency,
		Locale:          cfg.Locale,
	}
}
