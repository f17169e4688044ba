package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sellerops/config"
	"sellerops/internal/api/auth"
	"sellerops/internal/api/consumers"
	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/question"
	"sellerops/internal/api/domain/settings"
	"sellerops/internal/api/domain/shipment"
	"sellerops/internal/api/external/marketplace"
	"sellerops/internal/api/fakedata"
	"sellerops/internal/api/handlers"
	"sellerops/internal/api/migrations"
	account_repo "sellerops/internal/api/repo/account"
	billing_repo "sellerops/internal/api/repo/billing"
	item_repo "sellerops/internal/api/repo/item"
	order_repo "sellerops/internal/api/repo/order"
	question_repo "sellerops/internal/api/repo/question"
	settings_repo "sellerops/internal/api/repo/settings"
	shipment_repo "sellerops/internal/api/repo/shipment"
	"sellerops/internal/api/syncer"
	"sellerops/internal/shared/idempotency"
	"sellerops/internal/shared/redisclient"
	"sellerops/internal/shared/webhook"
	"sellerops/pkg/cipher"
	"sellerops/pkg/health"
	"sellerops/pkg/logger"
	"sellerops/pkg/postgres"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second

	receivedKeyPrefix = "sellerops:webhook:received:"
)

// Services is the domain layer of the API, shared with the admin commands.
type Services struct {
	Marketplace *marketplace.Client
	OAuth       *marketplace.OAuth
	Tokens      *account.TokenService
	Accounts    *account.AccountService
	Settings    *settings.SettingsService
	Items       *item.ItemService
	Orders      *order.OrderService
	Shipments   *shipment.ShipmentService
	Questions   *question.QuestionService
	Billing     *billing.BillingService
	Syncer      *syncer.Syncer
	Populator   *fakedata.Populator
}

// NewServices wires repositories, the marketplace client and the domain services.
func NewServices(cfg config.Config, pg *postgres.Postgres) (*Services, error) {
	enc, err := cipher.NewEncryptor(cfg.TokenEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("token cipher: %w", err)
	}

	mp := marketplace.NewClient(marketplace.ClientConfig{
		BaseURL:        cfg.Marketplace.APIURL,
		Timeout:        cfg.Marketplace.Timeout,
		RateLimit:      cfg.Marketplace.RateLimit,
		RetryAttempts:  cfg.Marketplace.RetryAttempts,
		RetryBaseDelay: cfg.Marketplace.RetryBaseDelay,
		RetryMaxDelay:  cfg.Marketplace.RetryMaxDelay,
	})
	oauth := marketplace.NewOAuth(marketplace.OAuthConfig{
		ClientID:     cfg.Marketplace.ClientID,
		ClientSecret: cfg.Marketplace.ClientSecret,
		AuthURL:      cfg.Marketplace.AuthURL,
		TokenURL:     cfg.Marketplace.TokenURL,
		RedirectURL:  cfg.Marketplace.RedirectURL,
	}, mp.HTTPClient())

	accountRepo := account_repo.NewPgAccountRepo(pg)

	s := &Services{Marketplace: mp, OAuth: oauth}
	s.Settings = settings.NewSettingsService(settings_repo.NewPgSettingsRepo(pg))
	s.Tokens = account.NewTokenService(accountRepo, oauth, enc)
	s.Accounts = account.NewAccountService(accountRepo, oauth, mp, s.Tokens, s.Settings)
	s.Items = item.NewItemService(item_repo.NewPgItemRepo(pg))
	s.Orders = order.NewOrderService(order_repo.NewPgOrderRepo(pg))
	s.Shipments = shipment.NewShipmentService(shipment_repo.NewPgShipmentRepo(pg), s.Settings)
	s.Questions = question.NewQuestionService(question_repo.NewPgQuestionRepo(pg))
	s.Billing = billing.NewBillingService(billing_repo.NewPgBillingRepo(pg))

	s.Syncer = syncer.New(syncer.Deps{
		Marketplace: mp,
		Accounts:    s.Accounts,
		Tokens:      s.Tokens,
		Items:       s.Items,
		Orders:      s.Orders,
		Shipments:   s.Shipments,
		Questions:   s.Questions,
		Billing:     s.Billing,
		Tracker:     s.Settings,
	}, syncer.Config{OrdersSince: cfg.SyncOrdersSince})

	s.Populator = fakedata.NewPopulator(fakedata.Services{
		Items:     s.Items,
		Orders:    s.Orders,
		Shipments: s.Shipments,
		Questions: s.Questions,
		Billing:   s.Billing,
	})
	return s, nil
}

func Run(cfg config.Config) error {
	l := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Console: cfg.LogFormat == "console",
		Service: "api",
	})
	slog.SetDefault(l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrations.Apply(cfg.PgURL); err != nil {
		return fmt.Errorf("api - Run - migrations.Apply: %w", err)
	}

	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("api - Run - postgres.New: %w", err)
	}
	defer pg.Close()

	registry := health.NewRegistry(health.NewPostgresChecker(pg.Pool))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisclient.New(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("api - Run - redisclient.New: %w", err)
		}
		defer rdb.Close()
		registry.Register(health.NewRedisChecker(rdb))
	}

	services, err := NewServices(cfg, pg)
	if err != nil {
		return fmt.Errorf("api - Run - NewServices: %w", err)
	}
	defer services.Marketplace.Close()

	var (
		states auth.StateStore
		dedup  dedupStores
	)
	if rdb != nil {
		states = auth.NewRedisStateStore(rdb)
		dedup = dedupStores{
			received:  idempotency.NewRedisStore(rdb, receivedKeyPrefix),
			processed: idempotency.NewRedisStore(rdb, ""),
		}
	} else {
		states = auth.NewMemoryStateStore()
		dedup = dedupStores{received: idempotency.NewMemoryStore(), processed: idempotency.NewMemoryStore()}
	}

	dispatcher := consumers.NewDispatcher(services.Accounts, services.Syncer)
	notif, err := newNotifications(ctx, cfg, dispatcher, dedup, registry)
	if err != nil {
		return fmt.Errorf("api - Run - newNotifications: %w", err)
	}
	defer notif.Close()

	sessions := auth.NewSessions(auth.SessionConfig{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Issuer: cfg.SessionIssuer,
	})

	router := &Router{
		auth:           handlers.NewAuthHandler(services.OAuth, states, services.Accounts, sessions, cfg.DashboardURL),
		account:        handlers.NewAccountHandler(services.Accounts),
		settings:       handlers.NewSettingsHandler(services.Settings),
		shipment:       handlers.NewShipmentHandler(services.Shipments),
		catalog:        handlers.NewCatalogHandler(services.Items, services.Orders, services.Questions),
		billing:        handlers.NewBillingHandler(services.Billing),
		sync:           handlers.NewSyncHandler(services.Syncer),
		webhook:        webhook.NewHandler(notif.processor),
		sessions:       sessions,
		healthRegistry: registry,
	}
	if cfg.TestDataEnabled {
		router.testData = handlers.NewTestDataHandler(services.Populator)
	}

	engine := NewGinEngine(l)
	router.SetUp(engine)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("API HTTP server started", slog.Int("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return notif.Run(gctx)
	})

	if cfg.SyncEnabled {
		scheduler := syncer.NewScheduler(services.Syncer, services.Settings, syncer.SchedulerConfig{
			Tick:              cfg.SyncTick,
			Concurrency:       cfg.SyncConcurrency,
			JobTimeout:        cfg.SyncJobTimeout,
			FailureBackoff:    cfg.SyncFailureBackoff,
			MaxFailureBackoff: cfg.SyncMaxFailureBackoff,
		})
		g.Go(func() error {
			return scheduler.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		l.Info("Shutting down API service gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	l.Info("API service stopped")
	return err
}
