package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"dispatch/cmd"
	httpserver "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/filerepo"
	"dispatch/internal/adapters/out/postgres/problemrepo"
	"dispatch/internal/adapters/out/postgres/recipientrepo"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	location, err := configs.Location()
	if err != nil {
		log.Fatalf("Invalid TIME_ZONE %q: %v", configs.TimeZone, err)
	}

	gormDB := mustConnectDB(configs)
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, location, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app.CreateHTTPServer(), configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine: the environment may be set directly.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return config
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&problemrepo.ProblemDTO{},
		&courierrepo.CourierDTO{},
		&recipientrepo.RecipientDTO{},
		&filerepo.ProofFileDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(server *httpserver.Server, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
