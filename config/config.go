package config

import (
	"fmt"
	"strings"
	"time"

	"transactions-saga/internal/service"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server         ServerConfig      `mapstructure:"server"`
	Database       DatabaseConfig    `mapstructure:"database"`
	Redis          RedisConfig       `mapstructure:"redis"`
	JWT            JWTConfig         `mapstructure:"jwt"`
	Log            LogConfig         `mapstructure:"log"`
	Nodo           UpstreamConfig    `mapstructure:"nodo"`
	NPG            NPGConfig         `mapstructure:"npg"`
	Redirect       RedirectConfig    `mapstructure:"redirect"`
	PaymentMethods UpstreamConfig    `mapstructure:"payment_methods"`
	Transaction    TransactionConfig `mapstructure:"transaction"`
	Queues         QueuesConfig      `mapstructure:"queues"`
	Worker         WorkerConfig      `mapstructure:"worker"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test

	// InternalAPIKey guards the routes called by gateways and back-office
	// services. Empty disables the check.
	InternalAPIKey string `mapstructure:"internal_api_key"`
	RateLimit      bool   `mapstructure:"rate_limit"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig configures the transaction-scoped tokens minted at activation.
type JWTConfig struct {
	Secret   string `mapstructure:"secret"`
	Issuer   string `mapstructure:"issuer"`
	Audience string `mapstructure:"audience"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// UpstreamConfig addresses an external HTTP collaborator.
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type NPGConfig struct {
	UpstreamConfig  `mapstructure:",squash"`
	MerchantURL     string `mapstructure:"merchant_url"`
	NotificationURL string `mapstructure:"notification_url"`
}

type RedirectConfig struct {
	UpstreamConfig `mapstructure:",squash"`
	ReturnURL      string        `mapstructure:"return_url"`
	OutcomeTimeout time.Duration `mapstructure:"outcome_timeout"`
	// PspTypes lists the PSP ids served by the redirect gateway.
	PspTypes []string `mapstructure:"psp_types"`
}

// TransactionConfig carries the saga timing knobs.
type TransactionConfig struct {
	PaymentTokenValidity             time.Duration `mapstructure:"payment_token_validity"`
	TransientQueueTTL                time.Duration `mapstructure:"transient_queue_ttl"`
	AuthorizationRequestedVisibility time.Duration `mapstructure:"authorization_requested_visibility"`
	ClosureRetryInterval             time.Duration `mapstructure:"closure_retry_interval"`
	ClosureSoftTimeoutOffset         time.Duration `mapstructure:"closure_soft_timeout_offset"`
	ActivationParallelism            int           `mapstructure:"activation_parallelism"`
	ActivationWaitTimeout            time.Duration `mapstructure:"activation_wait_timeout"`
	SendReceiptAfterExpiration       bool          `mapstructure:"send_receipt_after_expiration"`
	PaymentRequestInfoTTL            time.Duration `mapstructure:"payment_request_info_ttl"`
}

type QueuesConfig struct {
	Activated              string `mapstructure:"activated"`
	AuthorizationRequested string `mapstructure:"authorization_requested"`
	Closure                string `mapstructure:"closure"`
	Refund                 string `mapstructure:"refund"`
	Notifications          string `mapstructure:"notifications"`
	Cancellation           string `mapstructure:"cancellation"`
}

type WorkerConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	PollInterval      time.Duration `mapstructure:"poll_interval"`
	BatchSize         int           `mapstructure:"batch_size"`
	VisibilityTimeout time.Duration `mapstructure:"visibility_timeout"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TXS_ (transactions saga).
// Nested keys use underscore: TXS_DATABASE_HOST, TXS_TRANSACTION_CLOSURE_RETRY_INTERVAL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("TXS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.internal_api_key", "")
	v.SetDefault("server.rate_limit", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "transactions")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "transactions-saga")
	v.SetDefault("jwt.audience", "transactions")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	for _, upstream := range []string{"nodo", "npg", "redirect", "payment_methods"} {
		v.SetDefault(upstream+".base_url", "")
		v.SetDefault(upstream+".api_key", "")
		v.SetDefault(upstream+".timeout", "10s")
	}
	v.SetDefault("npg.merchant_url", "")
	v.SetDefault("npg.notification_url", "")
	v.SetDefault("redirect.return_url", "")
	v.SetDefault("redirect.outcome_timeout", "60s")
	v.SetDefault("redirect.psp_types", []string{})

	v.SetDefault("transaction.payment_token_validity", "15m")
	v.SetDefault("transaction.transient_queue_ttl", "168h")
	v.SetDefault("transaction.authorization_requested_visibility", "15m")
	v.SetDefault("transaction.closure_retry_interval", "60s")
	v.SetDefault("transaction.closure_soft_timeout_offset", "10s")
	v.SetDefault("transaction.activation_parallelism", 4)
	v.SetDefault("transaction.activation_wait_timeout", "5s")
	v.SetDefault("transaction.send_receipt_after_expiration", false)
	v.SetDefault("transaction.payment_request_info_ttl", "15m")

	v.SetDefault("queues.activated", "transaction-activated-queue")
	v.SetDefault("queues.authorization_requested", "transaction-auth-requested-queue")
	v.SetDefault("queues.closure", "transaction-closure-queue")
	v.SetDefault("queues.refund", "transaction-refund-queue")
	v.SetDefault("queues.notifications", "transaction-notifications-queue")
	v.SetDefault("queues.cancellation", "transaction-user-cancellation-queue")

	v.SetDefault("worker.enabled", true)
	v.SetDefault("worker.poll_interval", "1s")
	v.SetDefault("worker.batch_size", 10)
	v.SetDefault("worker.visibility_timeout", "30s")
}

// Saga derives the explicit settings handed to every saga step.
func (c *Config) Saga() service.SagaConfig {
	t := c.Transaction
	return service.SagaConfig{
		PaymentTokenValidity:             t.PaymentTokenValidity,
		TransientQueueTTL:                t.TransientQueueTTL,
		AuthorizationRequestedVisibility: t.AuthorizationRequestedVisibility,
		ClosureRetryInterval:             t.ClosureRetryInterval,
		ClosureSoftTimeoutOffset:         t.ClosureSoftTimeoutOffset,
		ActivationParallelism:            t.ActivationParallelism,
		ActivationWaitTimeout:            t.ActivationWaitTimeout,
		SendReceiptAfterExpiration:       t.SendReceiptAfterExpiration,
		TokenAudience:                    c.JWT.Audience,
		Queues: service.QueueNames{
			Activated:              c.Queues.Activated,
			AuthorizationRequested: c.Queues.AuthorizationRequested,
			Closure:                c.Queues.Closure,
			Refund:                 c.Queues.Refund,
			Notifications:          c.Queues.Notifications,
			Cancellation:           c.Queues.Cancellation,
		},
	}
}

func (c *Config) validate() error {
	t := c.Transaction
	if t.PaymentTokenValidity <= 0 {
		return fmt.Errorf("transaction.payment_token_validity must be positive")
	}
	if t.ClosureSoftTimeoutOffset >= t.PaymentTokenValidity {
		return fmt.Errorf("transaction.closure_soft_timeout_offset must be lower than payment_token_validity")
	}
	if t.ActivationParallelism < 1 {
		return fmt.Errorf("transaction.activation_parallelism must be at least 1")
	}
	return nil
}
