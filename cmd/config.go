package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
)

// Notifier transports selectable with NOTIFIER.
const (
	NotifierLog   = "log"
	NotifierKafka = "kafka"
	NotifierAMQP  = "amqp"
)

type Config struct {
	HTTPPort string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	MigrateOnStart bool

	JWTSecret      string
	JWTIssuer      string
	AccessTokenTTL time.Duration

	IdentitySecret     string
	IdentityIssuer     string
	OpenCustomerSignup bool

	Notifier                string
	KafkaBrokers            []string
	KafkaNotificationsTopic string
	AMQPURL                 string
	AMQPExchange            string
	NotifyTimeout           time.Duration

	ReminderSchedule string
	ReminderAfter    time.Duration

	// Location bounds "today" and calendar months on the dashboards.
	Location *time.Location
}

// LoadConfig reads the configuration through getenv (os.Getenv after
// godotenv has loaded .env). Every problem is reported at once.
func LoadConfig(getenv func(string) string) (Config, error) {
	r := envReader{getenv: getenv}

	cfg := Config{
		HTTPPort:       r.str("HTTP_PORT", "8080"),
		DBHost:         r.required("DB_HOST"),
		DBPort:         r.str("DB_PORT", "5432"),
		DBUser:         r.required("DB_USER"),
		DBPassword:     r.str("DB_PASSWORD", ""),
		DBName:         r.required("DB_NAME"),
		DBSslMode:      r.str("DB_SSLMODE", "disable"),
		MigrateOnStart: r.boolean("MIGRATE_ON_START", false),

		JWTSecret:      r.required("JWT_SECRET"),
		JWTIssuer:      r.str("JWT_ISSUER", "fulfillment"),
		AccessTokenTTL: r.duration("ACCESS_TOKEN_TTL", 24*time.Hour),

		IdentitySecret:     r.required("IDENTITY_SECRET"),
		IdentityIssuer:     r.str("IDENTITY_ISSUER", ""),
		OpenCustomerSignup: r.boolean("OPEN_CUSTOMER_SIGNUP", true),

		Notifier:                strings.ToLower(r.str("NOTIFIER", NotifierLog)),
		KafkaBrokers:            r.list("KAFKA_BROKERS"),
		KafkaNotificationsTopic: r.str("KAFKA_NOTIFICATIONS_TOPIC", "fulfillment.notifications"),
		AMQPURL:                 r.str("AMQP_URL", ""),
		AMQPExchange:            r.str("AMQP_EXCHANGE", "fulfillment.notifications"),
		NotifyTimeout:           r.duration("NOTIFY_TIMEOUT", 5*time.Second),

		ReminderSchedule: r.str("REMINDER_SCHEDULE", "@hourly"),
		ReminderAfter:    r.duration("REMINDER_AFTER", 24*time.Hour),

		Location: r.location("TIMEZONE", time.UTC),
	}

	switch cfg.Notifier {
	case NotifierLog:
	case NotifierKafka:
		if len(cfg.KafkaBrokers) == 0 {
			r.fail(errs.NewValueIsRequiredErrorWithCause("KAFKA_BROKERS", errors.New("required when NOTIFIER=kafka")))
		}
	case NotifierAMQP:
		if cfg.AMQPURL == "" {
			r.fail(errs.NewValueIsRequiredErrorWithCause("AMQP_URL", errors.New("required when NOTIFIER=amqp")))
		}
	default:
		r.fail(errs.NewValueIsInvalidErrorWithCause("NOTIFIER",
			fmt.Errorf("%q is not one of %s, %s, %s", cfg.Notifier, NotifierLog, NotifierKafka, NotifierAMQP)))
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the libpq keyword/value connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

type envReader struct {
	getenv func(string) string
	errs   []error
}

func (r *envReader) fail(err error) {
	r.errs = append(r.errs, err)
}

func (r *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (r *envReader) required(key string) string {
	v := r.str(key, "")
	if v == "" {
		r.fail(errs.NewValueIsRequiredError(key))
	}
	return v
}

func (r *envReader) boolean(key string, fallback bool) bool {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		r.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return v
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	if v <= 0 {
		r.fail(errs.NewValueIsOutOfRangeError(key, raw, "1ns", "unbounded"))
		return fallback
	}
	return v
}

func (r *envReader) list(key string) []string {
	var out []string
	for _, part := range strings.Split(r.str(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (r *envReader) location(key string, fallback *time.Location) *time.Location {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	loc, err := time.LoadLocation(raw)
	if err != nil {
		r.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return loc
}
