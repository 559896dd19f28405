// Утилита для отладки конфига: загружает .env (godotenv), заполняет
// структуру из окружения (envconfig, префикс PADCALC) и печатает
// итоговые значения. Удобно проверять, что переменные деплоя доехали.
package main

import (
	"fmt"
	"log"
	"os"

	"padcalc/internal/app"
)

func main() {
	cfg, err := app.LoadCfg()
	if err != nil {
		log.Fatalf("ошибка конфига: %v", err)
	}

	fmt.Printf("Конфиг из env (префикс %s):\n", app.AppName)
	fmt.Printf("  LogLevel:   %s\n", cfg.LogLevel)
	fmt.Printf("  Storage:    %s\n", cfg.Storage)
	fmt.Printf("  Server:     %s:%s\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("  DB:         host=%s port=%s user=%s dbname=%s sslmode=%s\n",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.DBName, cfg.DB.SSLMode)
	fmt.Printf("  Mongo:      uri=%s db=%s coll=%s\n", cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	fmt.Printf("  Redis:      %s db=%d\n", cfg.Redis.Addr(), cfg.Redis.DB)
	fmt.Printf("  Kafka:      brokers=%s topic=%s group=%s\n", cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)
	fmt.Printf("  ClickHouse: %s db=%s\n", cfg.ClickHouse.Addr(), cfg.ClickHouse.Database)

	if v := os.Getenv(app.AppName + "_SERVER_PORT"); v != "" {
		fmt.Printf("  os.Getenv(%q) = %q\n", app.AppName+"_SERVER_PORT", v)
	}
}
