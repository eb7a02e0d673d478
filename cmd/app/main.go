package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/cmd"
	httpadapter "github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/in/http"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/postgres/orderrepo"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/postgres/partnerrepo"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/postgres/routerepo"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/postgres/stockrepo"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := startJobs(&app, logger)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		EnginePriority:   os.Getenv("ENGINE_PRIORITY"),
		EngineCutoffHour: os.Getenv("ENGINE_CUTOFF_HOUR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.PromiseDTO{},
		&orderrepo.MilestoneDTO{},
		&stockrepo.StockDTO{},
		&stockrepo.OutboundEstimateDTO{},
		&partnerrepo.PartnerDTO{},
		&partnerrepo.PartnerRangeDTO{},
		&partnerrepo.PartnerLaneDTO{},
		&routerepo.RouteDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, logger *slog.Logger) *jobs.JobManager {
	complianceHandler, err := app.CreateTrackComplianceQueryHandler()
	if err != nil {
		log.Fatalf("Failed to create compliance handler: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateGetUndeliveredOrdersQueryHandler(),
		complianceHandler,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	orchestrateHandler, err := app.CreateOrchestrateOrderCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create orchestration handler: %v", err)
	}
	allocateHandler, err := app.CreateAllocateStockCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create allocation handler: %v", err)
	}
	promiseHandler, err := app.CreateComputePromiseQueryHandler()
	if err != nil {
		log.Fatalf("Failed to create promise handler: %v", err)
	}
	partnerHandler, err := app.CreateSelectPartnerQueryHandler()
	if err != nil {
		log.Fatalf("Failed to create partner handler: %v", err)
	}
	complianceHandler, err := app.CreateTrackComplianceQueryHandler()
	if err != nil {
		log.Fatalf("Failed to create compliance handler: %v", err)
	}

	server := httpadapter.NewServer(
		orchestrateHandler,
		allocateHandler,
		promiseHandler,
		partnerHandler,
		complianceHandler,
		app.CreateGetUndeliveredOrdersQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
