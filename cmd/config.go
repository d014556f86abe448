package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost                  string
	KafkaConsumerGroup         string
	KafkaPaymentCompletedTopic string
	KafkaOrderChangedTopic     string

	TriggerTimeout        time.Duration
	TriggerPoolSize       int
	SnapshotFlushSchedule string
	DocumentsBaseURL      string
	DefaultCarrier        string
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSslMode
}

// KafkaEnabled reports whether a broker is configured.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != ""
}
