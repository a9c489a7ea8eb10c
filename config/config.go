package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Observ    ObservabilityConfig
	Advisor   AdvisorConfig
	Inventory InventoryConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers       []string
	TopicProducts string
	ConsumerGroup string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

type AdvisorConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

type InventoryConfig struct {
	SeedSampleData  bool
	DefaultDarkMode bool
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	advisorTimeout, _ := strconv.Atoi(getEnv("ADVISOR_TIMEOUT_SECONDS", "10"))
	seedSampleData, _ := strconv.ParseBool(getEnv("SEED_SAMPLE_DATA", "true"))
	defaultDarkMode, _ := strconv.ParseBool(getEnv("DEFAULT_DARK_MODE", "false"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			TopicProducts: getEnv("KAFKA_TOPIC_PRODUCT_EVENTS", "product-events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "inventory-service-group"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		Advisor: AdvisorConfig{
			BaseURL:        getEnv("ADVISOR_BASE_URL", "http://localhost:8090"),
			APIKey:         getEnv("ADVISOR_API_KEY", ""),
			TimeoutSeconds: advisorTimeout,
		},
		Inventory: InventoryConfig{
			SeedSampleData:  seedSampleData,
			DefaultDarkMode: defaultDarkMode,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
