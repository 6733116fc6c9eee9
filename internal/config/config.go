package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppPort    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	VoucherTTLHours   string
	VoucherTotalQty   string
	VoucherValueRM    string
	VoucherMinSpendRM string
	DefaultMallID     string

	KafkaBrokers           string
	KafkaClientID          string
	KafkaGroupID           string
	KafkaReplyGroupID      string
	KafkaRetryGroupID      string
	KafkaInstanceID        string
	KafkaTopicPartitions   string
	KafkaRetryPartitions   string
	KafkaReplicationFactor string
	KafkaMinISR            string
	EventDrivenEnabled     string
}

func Load() *Config {
	_ = godotenv.Load()

	instanceID := os.Getenv("KAFKA_INSTANCE_ID")
	if instanceID == "" {
		hostname, err := os.Hostname()
		if err != nil {
			instanceID = "unknown"
		} else {
			instanceID = hostname
		}
	}

	return &Config{
		AppPort:    getEnv("APP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "voucherdb"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		VoucherTTLHours:   getEnv("VOUCHER_TTL_HOURS", "24"),
		VoucherTotalQty:   getEnv("VOUCHER_TOTAL_QTY", "5"),
		VoucherValueRM:    getEnv("VOUCHER_VALUE_RM", "5"),
		VoucherMinSpendRM: getEnv("VOUCHER_MIN_SPEND_RM", "30"),
		DefaultMallID:     getEnv("DEFAULT_MALL_ID", "sunway_square"),

		KafkaBrokers:           getEnv("KAFKA_BROKERS", "kafka:9092"),
		KafkaClientID:          getEnv("KAFKA_CLIENT_ID", "voucher-service"),
		KafkaGroupID:           getEnv("KAFKA_GROUP_ID", "voucher-consumers"),
		KafkaReplyGroupID:      getEnv("KAFKA_REPLY_GROUP_ID", "voucher-gateway-resp"),
		KafkaRetryGroupID:      getEnv("KAFKA_RETRY_GROUP_ID", "voucher-retry"),
		KafkaInstanceID:        instanceID,
		KafkaTopicPartitions:   getEnv("KAFKA_TOPIC_PARTITIONS", "3"),
		KafkaRetryPartitions:   getEnv("KAFKA_RETRY_PARTITIONS", "1"),
		KafkaReplicationFactor: getEnv("KAFKA_REPLICATION_FACTOR", "1"),
		KafkaMinISR:            getEnv("KAFKA_MIN_ISR", "1"),
		EventDrivenEnabled:     getEnv("EVENT_DRIVEN_ENABLED", "false"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) VoucherTTL() time.Duration {
	return time.Duration(parseInt(c.VoucherTTLHours, 24)) * time.Hour
}

func (c *Config) TotalQty() int {
	return parseInt(c.VoucherTotalQty, 5)
}

func (c *Config) VoucherValue() decimal.Decimal {
	return parseDecimal(c.VoucherValueRM, decimal.NewFromInt(5))
}

func (c *Config) VoucherMinSpend() decimal.Decimal {
	return parseDecimal(c.VoucherMinSpendRM, decimal.NewFromInt(30))
}

func (c *Config) TopicPartitions() int {
	return parseInt(c.KafkaTopicPartitions, 3)
}

func (c *Config) RetryPartitions() int {
	return parseInt(c.KafkaRetryPartitions, 1)
}

func (c *Config) ReplicationFactor() int16 {
	value := parseInt(c.KafkaReplicationFactor, 1)
	return int16(value)
}

func parseInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseDecimal(value string, fallback decimal.Decimal) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil || parsed.Sign() <= 0 {
		return fallback
	}
	return parsed
}
