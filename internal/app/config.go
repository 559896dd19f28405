package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"padcalc/internal/api/http"
	"padcalc/internal/infrastructure/click"
	"padcalc/internal/infrastructure/kafka"
	"padcalc/internal/infrastructure/mongo"
	"padcalc/internal/infrastructure/pg"
	"padcalc/internal/infrastructure/redis"
)

const AppName = "PADCALC"

// Хранилища истории операций (PADCALC_STORAGE).
const (
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// Config — конфиг приложения. Заполняется через envconfig с префиксом PADCALC.
type Config struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	Storage    string            `envconfig:"STORAGE" default:"postgres"` // postgres | mongo
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
