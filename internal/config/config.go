package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	MySQLDSN string `envconfig:"MYSQL_DSN" required:"true"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	JWTAccessSecret  string `envconfig:"JWT_ACCESS_SECRET" required:"true"`
	JWTRefreshSecret string `envconfig:"JWT_REFRESH_SECRET" required:"true"`
	AccessTTLMin     int    `envconfig:"ACCESS_TTL_MIN" default:"30"`
	RefreshTTLHr     int    `envconfig:"REFRESH_TTL_HR" default:"24"`

	// Moderation fan-out; both are optional and disabled when unset.
	KafkaBrokers     []string `envconfig:"KAFKA_BROKERS"`
	KafkaReportTopic string   `envconfig:"KAFKA_REPORT_TOPIC" default:"tangle.reports"`

	SMTPHost       string `envconfig:"SMTP_HOST"`
	SMTPPort       int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername   string `envconfig:"SMTP_USERNAME"`
	SMTPPassword   string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom       string `envconfig:"SMTP_FROM"`
	ModeratorEmail string `envconfig:"MODERATOR_EMAIL"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
