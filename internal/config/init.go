package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/joho/godotenv"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitContext() (*appcontext.Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	logger, err := InitLogger()
	if err != nil {
		return nil, err
	}

	db, err := InitDB()
	if err != nil {
		return nil, err
	}

	gcsClient, err := InitGCSClient()
	if err != nil {
		return nil, err
	}

	meilisearchClient, err := InitMeilisearch()
	if err != nil {
		return nil, err
	}

	redisClient, err := InitRedis()
	if err != nil {
		return nil, err
	}

	ctx := &appcontext.Context{
		DB:     db,
		Logger: logger,

		GCSClient:     gcsClient,
		GCSBucketName: os.Getenv("GCS_BUCKET_NAME"),

		MeilisearchClient: meilisearchClient,
		RedisClient:       redisClient,

		ContactEmail: os.Getenv("CONTACT_EMAIL"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
	}

	return ctx, nil
}

func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(
		&entity.Titulacion{},
		&entity.TipoFormacion{},
		&entity.Usuario{},
		&entity.Empresa{},
		&entity.Trabajo{},
		&entity.Formacion{},
		&entity.Evento{},
		&entity.Notificacion{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func InitLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func InitGCSClient() (*storage.Client, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
	}
	return client, nil
}

// InitMeilisearch creates the "ofertas" index holding both job offers and
// trainings, so a single search box can cover both.
func InitMeilisearch() (*meilisearch.Client, error) {
	host := os.Getenv("MEILISEARCH_HOST")
	if host == "" {
		host = "http://localhost:7700"
	}

	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: os.Getenv("MEILISEARCH_API_KEY"),
	})

	_, err := client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        "ofertas",
		PrimaryKey: "id",
	})
	if err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to create index: %w", err)
		}
	}

	task, err := client.Index("ofertas").UpdateFilterableAttributes(&[]string{
		"tipo",
		"degree_id",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update filterable attributes: %w", err)
	}

	_, err = client.WaitForTask(task.TaskUID)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for filterable attributes update: %w", err)
	}

	task, err = client.Index("ofertas").UpdateSearchableAttributes(&[]string{
		"name",
		"description",
		"empresa",
		"ubicacion",
		"institucion",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update searchable attributes: %w", err)
	}

	_, err = client.WaitForTask(task.TaskUID)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for searchable attributes update: %w", err)
	}

	return client, nil
}

func InitRedis() (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     os.Getenv("REDIS_URL"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if opts.Addr == "" {
		opts.Addr = "localhost:6379"
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
