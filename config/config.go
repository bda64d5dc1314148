package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMongoDB = "mongodb"
	StoreDriverMemory  = "memory"
)

type Config struct {
	ServicePort         string
	MetricsPort         string
	GRPCPort            string
	Environment         string
	LogLevel            string
	StoreDriver         string
	MongoDBConfig       MongoDBConfig
	KafkaConfig         KafkaConfig
	ElasticsearchConfig ElasticsearchConfig
	TracingConfig       TracingConfig
}

type MongoDBConfig struct {
	URL    string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type ElasticsearchConfig struct {
	DBHost       string
	Index        string
	SyncInterval time.Duration
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8001"),
		MetricsPort: getEnv("METRICS_PORT", "9101"),
		GRPCPort:    getEnv("GRPC_PORT", "50051"),
		Environment: os.Getenv("ENVIRONMENT"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StoreDriver: getEnv("STORE_DRIVER", StoreDriverMongoDB),
		MongoDBConfig: MongoDBConfig{
			URL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "test_database"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "cart_events"),
		},
		ElasticsearchConfig: ElasticsearchConfig{
			DBHost: os.Getenv("ELASTIC_SEARCH_HOST"),
			Index:  getEnv("ELASTIC_SEARCH_INDEX", "products"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	syncInterval, err := time.ParseDuration(getEnv("SEARCH_SYNC_INTERVAL", "5m"))
	if err != nil || syncInterval <= 0 {
		syncInterval = 5 * time.Minute
	}

	conf.ElasticsearchConfig.SyncInterval = syncInterval

	return &conf
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
