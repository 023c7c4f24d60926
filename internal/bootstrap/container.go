package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/config"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/controller"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/model"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/serverutils"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/implementation"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/memory"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/service"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/admin/dashboard"
	adminEvents "github.com/zXpect/Panel-admln-ADS-backend/pkg/admin/events"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/database"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/lifecycle"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/requirements"

	firebase "firebase.google.com/go/v4"
	pktNats "github.com/zXpect/Panel-admln-ADS-backend/pkg/nats"
)

type Container struct {
	// Controllers
	DocumentController  controller.IDocumentController
	DashboardController controller.IDashboardController
	WorkerController    controller.IWorkerController
	ClientController    controller.IClientController
	LogController       controller.ILogController

	// Services, exposed for the operator CLIs
	DocumentService  service.IDocumentService
	DashboardService service.IDashboardService

	Logger logger.ILogger

	closers []func()
}

// Close releases the NATS connection and flushes the logger.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	loc := cfg.Dashboard.Location()

	policy, err := requirements.ParsePolicy(cfg.Dashboard.RequirementPolicy)
	if err != nil {
		return nil, err
	}
	evaluator := requirements.NewEvaluator(policy)

	c := &Container{Logger: sysLogger}

	// 2. Stores
	var fbApp *firebase.App
	if cfg.App.StoreDriver == "firebase" || cfg.Storage.Provider == "firebase" {
		fbApp, err = database.NewFirebaseApp(ctx, database.FirebaseConfig{
			CredentialsPath: cfg.Firebase.CredentialsPath,
			DatabaseURL:     cfg.Firebase.DatabaseURL,
			StorageBucket:   cfg.Firebase.StorageBucket,
		})
		if err != nil {
			return nil, err
		}
	}

	tree, err := newTreeStore(ctx, cfg, fbApp, sysLogger)
	if err != nil {
		return nil, err
	}
	files, err := newFileStore(ctx, cfg, fbApp)
	if err != nil {
		return nil, err
	}
	audit, err := newAuditLog(cfg)
	if err != nil {
		return nil, err
	}

	// 3. Infrastructure
	var natsPub *pktNats.Publisher
	if cfg.Events.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		} else {
			c.closers = append(c.closers, natsPub.Close)
		}
	}
	publisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)

	// 4. Repositories
	workerRepo := implementation.NewWorkerRepository(tree, loc)
	clientRepo := implementation.NewClientRepository(tree)
	documentRepo := implementation.NewDocumentRepository(tree, loc)

	// 5. Domain managers
	lifecycleManager := lifecycle.NewManager(documentRepo, audit, publisher, sysLogger)
	aggregator := dashboard.NewAggregator(workerRepo, documentRepo, loc, sysLogger)

	// 6. Services
	c.DocumentService = service.NewDocumentService(
		documentRepo,
		files,
		audit,
		lifecycleManager,
		evaluator,
		cfg.Storage.FileURLTTL,
		sysLogger,
	)
	c.DashboardService = service.NewDashboardService(workerRepo, clientRepo, documentRepo, aggregator, evaluator, sysLogger)
	workerService := service.NewWorkerService(workerRepo, sysLogger)
	clientService := service.NewClientService(clientRepo, sysLogger)
	logService := service.NewLogService(cfg.App.LogFilePath)

	// 7. Controllers
	auth := serverutils.AdminMiddleware(cfg.Auth.JWTSecret)
	c.DocumentController = controller.NewDocumentController(c.DocumentService, auth)
	c.DashboardController = controller.NewDashboardController(c.DashboardService, auth)
	c.WorkerController = controller.NewWorkerController(workerService, auth)
	c.ClientController = controller.NewClientController(clientService, auth)
	c.LogController = controller.NewLogController(logService, auth)

	sysLogger.Info("BOOTSTRAP", "Container ready", map[string]interface{}{
		"store_driver":       cfg.App.StoreDriver,
		"blob_provider":      cfg.Storage.Provider,
		"requirement_policy": string(policy),
		"timezone":           loc.String(),
		"events_enabled":     natsPub != nil,
	})
	return c, nil
}

func newTreeStore(ctx context.Context, cfg *config.Config, app *firebase.App, l logger.ILogger) (contract.TreeStore, error) {
	switch cfg.App.StoreDriver {
	case "firebase":
		return implementation.NewFirebaseTreeStore(ctx, app, l)
	case "memory":
		log.Println("[WARN] STORE_DRIVER=memory: data is kept in process and lost on exit")
		return memory.NewTreeStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.App.StoreDriver)
	}
}

func newFileStore(ctx context.Context, cfg *config.Config, app *firebase.App) (contract.FileStore, error) {
	var (
		files contract.FileStore
		err   error
	)
	switch cfg.Storage.Provider {
	case "firebase":
		files, err = implementation.NewFirebaseFileStore(ctx, app)
	case "s3":
		files, err = implementation.NewS3FileStore(ctx, cfg.Storage.S3Bucket, cfg.Storage.AWSRegion)
	default:
		return nil, fmt.Errorf("unknown BLOB_PROVIDER %q", cfg.Storage.Provider)
	}
	if err != nil {
		return nil, err
	}
	return implementation.NewCachedFileStore(files), nil
}

// newAuditLog uses postgres when DB_CONNECTION_STRING is set and keeps the
// trail in process otherwise.
func newAuditLog(cfg *config.Config) (contract.VerificationLogRepository, error) {
	if cfg.Database.Connection == "" {
		return memory.NewVerificationLogRepository(), nil
	}

	db, err := database.NewGormDB(database.GormConfig{
		DSN:     cfg.Database.Connection,
		Verbose: cfg.App.Environment != "production",
	})
	if err != nil {
		return nil, fmt.Errorf("unable to connect to audit database: %w", err)
	}
	if err := db.AutoMigrate(&model.VerificationLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate verification logs: %w", err)
	}
	return implementation.NewVerificationLogRepository(db), nil
}
