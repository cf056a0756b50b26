package main

import (
	"fmt"
	"freightflow/cmd"
	freighthttp "freightflow/internal/adapters/in/http"
	"freightflow/internal/adapters/out/postgres/modificationrepo"
	"freightflow/internal/adapters/out/postgres/offerrepo"
	"freightflow/internal/adapters/out/postgres/outboxrepo"
	"freightflow/internal/adapters/out/postgres/paymentrepo"
	"freightflow/internal/adapters/out/postgres/progressrepo"
	"freightflow/internal/adapters/out/postgres/shipmentrepo"
	"freightflow/internal/jobs"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreateDispatchNotificationsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		JWTSecret:               goDotEnvVariable("JWT_SECRET"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&offerrepo.OfferDTO{},
		&modificationrepo.ModificationDTO{},
		&paymentrepo.PaymentDTO{},
		&progressrepo.ProgressDTO{},
		&outboxrepo.OutboxDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := freighthttp.NewServer(freighthttp.ServerHandlers{
		RequestShipment:     root.CreateRequestShipmentCommandHandler(),
		RejectShipment:      root.CreateRejectShipmentCommandHandler(),
		OfferShipment:       root.CreateOfferShipmentCommandHandler(),
		UpdateOffer:         root.CreateUpdateOfferCommandHandler(),
		RespondToOffer:      root.CreateRespondToOfferCommandHandler(),
		RequestModification: root.CreateRequestModificationCommandHandler(),
		ReviewModification:  root.CreateReviewModificationCommandHandler(),
		CreatePayment:       root.CreateCreatePaymentCommandHandler(),
		UploadPaymentProof:  root.CreateUploadPaymentProofCommandHandler(),
		VerifyPayment:       root.CreateVerifyPaymentCommandHandler(),
		AssignDriver:        root.CreateAssignDriverCommandHandler(),
		PushProgressUpdate:  root.CreatePushProgressUpdateCommandHandler(),
		AdvanceShipment:     root.CreateAdvanceShipmentCommandHandler(),
		GetShipments:        root.CreateGetShipmentsQueryHandler(),
		GetOffers:           root.CreateGetOffersQueryHandler(),
		GetModifications:    root.CreateGetModificationsQueryHandler(),
		GetShipmentProgress: root.CreateGetShipmentProgressQueryHandler(),
	})
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
