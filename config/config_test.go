package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateNewConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVICE_PORT", "METRICS_PORT", "GRPC_PORT", "LOG_LEVEL", "STORE_DRIVER",
		"MONGO_URL", "DB_NAME", "BROKER_ADDRESS", "BROKER_TOPIC",
		"ELASTIC_SEARCH_HOST", "ELASTIC_SEARCH_INDEX", "SEARCH_SYNC_INTERVAL", "COLLECTOR_HOST",
	} {
		t.Setenv(key, "")
	}

	conf := CreateNewConfig()

	assert.Equal(t, "8001", conf.ServicePort)
	assert.Equal(t, "9101", conf.MetricsPort)
	assert.Equal(t, "50051", conf.GRPCPort)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, StoreDriverMongoDB, conf.StoreDriver)
	assert.Equal(t, "mongodb://localhost:27017", conf.MongoDBConfig.URL)
	assert.Equal(t, "test_database", conf.MongoDBConfig.DBName)
	assert.Empty(t, conf.KafkaConfig.BrokerAddress)
	assert.Equal(t, "cart_events", conf.KafkaConfig.BrokerTopic)
	assert.Empty(t, conf.ElasticsearchConfig.DBHost)
	assert.Equal(t, "products", conf.ElasticsearchConfig.Index)
	assert.Equal(t, 5*time.Minute, conf.ElasticsearchConfig.SyncInterval)
	assert.Empty(t, conf.TracingConfig.CollectorHost)
}

func TestCreateNewConfigFromEnv(t *testing.T) {
	t.Setenv("SERVICE_PORT", "9000")
	t.Setenv("STORE_DRIVER", StoreDriverMemory)
	t.Setenv("MONGO_URL", "mongodb://mongo:27017")
	t.Setenv("DB_NAME", "store")
	t.Setenv("BROKER_ADDRESS", "kafka:9092")
	t.Setenv("SEARCH_SYNC_INTERVAL", "30s")

	conf := CreateNewConfig()

	assert.Equal(t, "9000", conf.ServicePort)
	assert.Equal(t, StoreDriverMemory, conf.StoreDriver)
	assert.Equal(t, "mongodb://mongo:27017", conf.MongoDBConfig.URL)
	assert.Equal(t, "store", conf.MongoDBConfig.DBName)
	assert.Equal(t, "kafka:9092", conf.KafkaConfig.BrokerAddress)
	assert.Equal(t, 30*time.Second, conf.ElasticsearchConfig.SyncInterval)
}

func TestCreateNewConfigInvalidInterval(t *testing.T) {
	t.Setenv("SEARCH_SYNC_INTERVAL", "soon")

	conf := CreateNewConfig()

	assert.Equal(t, 5*time.Minute, conf.ElasticsearchConfig.SyncInterval)
}
