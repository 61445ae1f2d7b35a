package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	DynamoDB   DynamoDBConfig   `yaml:"dynamodb" mapstructure:"dynamodb"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Chat       ChatConfig       `yaml:"chat" mapstructure:"chat"`
	Extraction ExtractionConfig `yaml:"extraction" mapstructure:"extraction"`
	Printing   PrintingConfig   `yaml:"printing" mapstructure:"printing"`
	Payments   PaymentsConfig   `yaml:"payments" mapstructure:"payments"`
	Auth       AuthConfig       `yaml:"auth" mapstructure:"auth"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DynamoDBConfig holds the record store connection and table names.
type DynamoDBConfig struct {
	Region          string `yaml:"region" mapstructure:"region"`
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id" mapstructure:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" mapstructure:"secret_access_key"`
	Tables          Tables `yaml:"tables" mapstructure:"tables"`
}

// Tables names every DynamoDB table the service touches.
type Tables struct {
	Quotes          string `yaml:"quotes" mapstructure:"quotes"`
	Products        string `yaml:"products" mapstructure:"products"`
	ProductNames    string `yaml:"product_names" mapstructure:"product_names"`
	PendingProducts string `yaml:"pending_products" mapstructure:"pending_products"`
	Categories      string `yaml:"categories" mapstructure:"categories"`
	SkuSequences    string `yaml:"sku_sequences" mapstructure:"sku_sequences"`
	PaymentLinks    string `yaml:"payment_links" mapstructure:"payment_links"`
}

// AnthropicConfig holds the primary vision backend settings.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
}

// ChatConfig holds the OpenAI-compatible fallback backend (Groq by default).
type ChatConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ExtractionConfig bounds the extraction gateway.
type ExtractionConfig struct {
	CallTimeoutSecs    int    `yaml:"call_timeout_secs" mapstructure:"call_timeout_secs"`
	MaxAttempts        int    `yaml:"max_attempts" mapstructure:"max_attempts"`
	BackoffMillis      int    `yaml:"backoff_millis" mapstructure:"backoff_millis"`
	RequestsPerMinute  int    `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
	RasterDPI          int    `yaml:"raster_dpi" mapstructure:"raster_dpi"`
	PdftoppmPath       string `yaml:"pdftoppm_path" mapstructure:"pdftoppm_path"`
	MaxUploadMegabytes int    `yaml:"max_upload_megabytes" mapstructure:"max_upload_megabytes"`
}

// CallTimeout returns the per-backend bound as a duration.
func (c ExtractionConfig) CallTimeout() time.Duration {
	return time.Duration(c.CallTimeoutSecs) * time.Second
}

// Backoff returns the linear backoff step as a duration.
func (c ExtractionConfig) Backoff() time.Duration {
	return time.Duration(c.BackoffMillis) * time.Millisecond
}

// PrintingConfig configures the headless Chrome renderer.
type PrintingConfig struct {
	RemoteURL   string `yaml:"remote_url" mapstructure:"remote_url"`
	NoSandbox   bool   `yaml:"no_sandbox" mapstructure:"no_sandbox"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// PaymentsConfig configures the Mercado Pago checkout integration.
type PaymentsConfig struct {
	AccessToken string `yaml:"access_token" mapstructure:"access_token"`
	Mock        bool   `yaml:"mock" mapstructure:"mock"`
	CurrencyID  string `yaml:"currency_id" mapstructure:"currency_id"`
}

// AuthConfig holds the stub login credentials.
type AuthConfig struct {
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("COTIZADOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Keys without a meaningful default are still registered so AutomaticEnv
	// can feed them through Unmarshal.
	for _, key := range []string{
		"dynamodb.endpoint",
		"anthropic.key",
		"anthropic.base_url",
		"chat.key",
		"printing.remote_url",
		"payments.access_token",
	} {
		v.SetDefault(key, "")
	}

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.tables.quotes", "quotes")
	v.SetDefault("dynamodb.tables.products", "products")
	v.SetDefault("dynamodb.tables.product_names", "product_names")
	v.SetDefault("dynamodb.tables.pending_products", "pending_products")
	v.SetDefault("dynamodb.tables.categories", "categories")
	v.SetDefault("dynamodb.tables.sku_sequences", "sku_sequences")
	v.SetDefault("dynamodb.tables.payment_links", "payment_links")

	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 4096)

	v.SetDefault("chat.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("chat.model", "meta-llama/llama-4-scout-17b-16e-instruct")
	v.SetDefault("chat.max_tokens", 4096)

	v.SetDefault("extraction.call_timeout_secs", 60)
	v.SetDefault("extraction.max_attempts", 3)
	v.SetDefault("extraction.backoff_millis", 2000)
	v.SetDefault("extraction.requests_per_minute", 30)
	v.SetDefault("extraction.raster_dpi", 150)
	v.SetDefault("extraction.pdftoppm_path", "pdftoppm")
	v.SetDefault("extraction.max_upload_megabytes", 20)

	v.SetDefault("printing.no_sandbox", true)
	v.SetDefault("printing.timeout_secs", 30)

	v.SetDefault("payments.currency_id", "CLP")
	v.SetDefault("payments.mock", false)

	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "admin")
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
