package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard/cmd"
	httpin "jobboard/internal/adapters/in/http"
	"jobboard/internal/pkg/token"
	"jobboard/internal/tasks"
)

func main() {
	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB)

	tokens, err := root.CreateTokenService()
	if err != nil {
		log.Fatalf("Error creating token service: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	taskManager := tasks.NewTaskManager(root.CreateGetBoardStatsQueryHandler(), configs.DigestSchedule, logger)
	if err := taskManager.StartAll(); err != nil {
		log.Fatalf("Error starting tasks: %v", err)
	}
	defer taskManager.StopAll()

	startWebServer(&root, tokens, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:      goDotEnvVariable("JWT_SECRET"),
		JWTIssuer:      goDotEnvVariable("JWT_ISSUER"),
		DigestSchedule: goDotEnvVariable("DIGEST_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// openDatabase connects through lib/pq so that native $N placeholders and
// pq error classification are available underneath GORM.
func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
}

func startWebServer(root *cmd.CompositionRoot, tokens *token.Service, port string) {
	server := httpin.NewServer(httpin.Dependencies{
		PostJob:       root.CreatePostJobCommandHandler(),
		EditJob:       root.CreateEditJobCommandHandler(),
		RemoveJob:     root.CreateRemoveJobCommandHandler(),
		CreateCompany: root.CreateCreateCompanyCommandHandler(),
		EditCompany:   root.CreateEditCompanyCommandHandler(),
		RemoveCompany: root.CreateRemoveCompanyCommandHandler(),
		RegisterUser:  root.CreateRegisterUserCommandHandler(),

		FindJobs:         root.CreateFindJobsQueryHandler(),
		GetJob:           root.CreateGetJobQueryHandler(),
		FindCompanies:    root.CreateFindCompaniesQueryHandler(),
		GetCompany:       root.CreateGetCompanyQueryHandler(),
		GetUser:          root.CreateGetUserQueryHandler(),
		AuthenticateUser: root.CreateAuthenticateUserQueryHandler(),

		Tokens:   tokens,
		Verifier: tokens,
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
