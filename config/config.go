package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreBackendBolt    = "bolt"
	StoreBackendMongoDB = "mongodb"
	StoreBackendMemory  = "memory"
)

type Config struct {
	Environment    string
	ServicePort    string
	MetricsPort    string
	LogLevel       string
	JWTSecret      string
	WhatsAppNumber string
	// StatsIntervalSeconds is how often the catalog gauges are refreshed.
	StatsIntervalSeconds int
	StoreConfig          StoreConfig
	MongoDBConfig        MongoDBConfig
	KafkaConfig          KafkaConfig
	TracingConfig        TracingConfig
	SMTPConfig           SMTPConfig
}

type StoreConfig struct {
	Backend string
	Path    string
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type TracingConfig struct {
	CollectorHost string
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	NotifyEmail string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServicePort:    getEnv("SERVICE_PORT", "8080"),
		MetricsPort:    getEnv("METRICS_PORT", "9090"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      getEnv("JWT_SECRET", "sr-shopping-dev-secret"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "0763913526"),
		StoreConfig: StoreConfig{
			Backend: strings.ToLower(getEnv("STORE_BACKEND", StoreBackendBolt)),
			Path:    getEnv("STORE_PATH", "sr-shopping.db"),
		},
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: getEnv("DB_PORT", "27017"),
			DBName: getEnv("DB_NAME", "sr_shopping"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "sr-shopping-events"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		SMTPConfig: SMTPConfig{
			Host:        os.Getenv("SMTP_HOST"),
			Username:    os.Getenv("SMTP_USERNAME"),
			Password:    os.Getenv("SMTP_PASSWORD"),
			NotifyEmail: os.Getenv("ORDER_NOTIFY_EMAIL"),
		},
	}

	conf.StatsIntervalSeconds = getEnvInt("STATS_INTERVAL_SECONDS", 30)
	conf.SMTPConfig.Port = getEnvInt("SMTP_PORT", 587)

	return &conf
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
