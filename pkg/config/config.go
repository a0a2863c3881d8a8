package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LLM providers understood by LLMConfig.Provider.
const (
	ProviderGigaChat = "gigachat"
	ProviderOpenAI   = "openai"
	ProviderNone     = "none"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
	LLM      LLMConfig
	Assist   AssistConfig
	Payments PaymentsConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MaxConns       int32
	MinConns       int32
	ConnectTimeout time.Duration
}

// DSN renders the keyword/value connection string understood by pgx.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// AuthConfig holds the operator credentials used to obtain tokens.
type AuthConfig struct {
	OperatorEmail string
	APIKeyHash    string
}

type LLMConfig struct {
	Provider    string
	Temperature float64
	Timeout     time.Duration
	GigaChat    GigaChatConfig
	OpenAI      OpenAIConfig
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type AssistConfig struct {
	MinInputLength int
}

type PaymentsConfig struct {
	LinkBaseURL       string
	DefaultCurrency   string
	DefaultDueDays    int
	EnrichConcurrency int
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work the same way.
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	llmTimeout, _ := strconv.Atoi(getEnv("LLM_TIMEOUT", "60"))
	temperature, err := strconv.ParseFloat(getEnv("LLM_TEMPERATURE", "0.1"), 64)
	if err != nil {
		temperature = 0.1
	}
	minInput, _ := strconv.Atoi(getEnv("ASSIST_MIN_INPUT_LENGTH", "3"))
	dueDays, _ := strconv.Atoi(getEnv("PAYMENTS_DEFAULT_DUE_DAYS", "30"))
	concurrency, _ := strconv.Atoi(getEnv("PAYMENTS_ENRICH_CONCURRENCY", "4"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNS", "1"))
	connectTimeout, _ := strconv.Atoi(getEnv("DB_CONNECT_TIMEOUT", "10"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "pay_assist"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),

			MaxConns:       int32(maxConns),
			MinConns:       int32(minConns),
			ConnectTimeout: time.Duration(connectTimeout) * time.Second,
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Auth: AuthConfig{
			OperatorEmail: getEnv("OPERATOR_EMAIL", "operator@pay-assist.local"),
			APIKeyHash:    getEnv("ADMIN_API_KEY_HASH", ""),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(getEnv("LLM_PROVIDER", ProviderGigaChat)),
			Temperature: temperature,
			Timeout:     time.Duration(llmTimeout) * time.Second,
			GigaChat: GigaChatConfig{
				APIKey:             getEnv("GIGACHAT_API_KEY", ""),
				Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
				Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
				InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true",
			},
			OpenAI: OpenAIConfig{
				APIKey:  getEnv("OPENAI_API_KEY", ""),
				BaseURL: strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
				Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			},
		},
		Assist: AssistConfig{
			MinInputLength: minInput,
		},
		Payments: PaymentsConfig{
			LinkBaseURL:       strings.TrimRight(getEnv("PAYMENTS_LINK_BASE_URL", "http://localhost:8080/pay"), "/"),
			DefaultCurrency:   strings.ToUpper(getEnv("PAYMENTS_DEFAULT_CURRENCY", "USD")),
			DefaultDueDays:    dueDays,
			EnrichConcurrency: concurrency,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Enabled reports whether the selected provider has credentials.
func (c *LLMConfig) Enabled() bool {
	switch c.Provider {
	case ProviderGigaChat:
		return c.GigaChat.APIKey != ""
	case ProviderOpenAI:
		return c.OpenAI.APIKey != ""
	default:
		return false
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
