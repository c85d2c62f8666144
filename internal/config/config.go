package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrUnknownProvider          = errors.New("unknown provider")
)

const (
	TelephonyVoximplant = "voximplant"
	TelephonyTwilio     = "twilio"

	LLMOpenAI = "openai"
	LLMGemini = "gemini"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Telephony TelephonyConfig
	LLM       LLMConfig
	Sessions  SessionConfig
	Kafka     KafkaConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// PublicBaseURL is the externally reachable address of this service, used in provider callbacks.
	PublicBaseURL    string
	CORSAllowOrigins []string
}

// TelephonyConfig selects and configures the outbound call provider
type TelephonyConfig struct {
	Provider   string
	Voximplant VoximplantConfig
	Twilio     TwilioConfig
}

// VoximplantConfig holds the runScenario parameters
type VoximplantConfig struct {
	URL           string
	Domain        string
	AccessToken   string
	ScenarioID    string
	PhoneNumberID string
}

// TwilioConfig holds Twilio REST credentials and call defaults
type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	FromNumber     string
	SpeechLanguage string
}

// LLMConfig holds the conversational model settings
type LLMConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Timeout     time.Duration
}

// SessionConfig holds call session registry settings
type SessionConfig struct {
	TTL             time.Duration // 0 disables idle eviction
	CleanupInterval time.Duration
	AutoFinish      bool
}

// KafkaConfig holds call event streaming configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Load reads and validates all environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			log.Printf("env.local not loaded: %v", err)
		}
	}

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = getIntEnv("SERVER_PORT", 8086); err != nil {
		return nil, err
	}
	cfg.Server.PublicBaseURL = strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	cfg.Server.CORSAllowOrigins = splitList(getEnvWithDefault("CORS_ALLOW_ORIGINS", "*"))

	// Telephony configuration
	cfg.Telephony.Provider = strings.ToLower(getEnvWithDefault("TELEPHONY_PROVIDER", TelephonyVoximplant))
	cfg.Telephony.Voximplant = VoximplantConfig{
		URL:           getEnvWithDefault("VOX_URL", "http://kitapi-ru.voximplant.com/api/v3/scenario/runScenario"),
		Domain:        getEnvWithDefault("VOX_DOMAIN", "rai220"),
		AccessToken:   os.Getenv("VOX_TOKEN"),
		ScenarioID:    getEnvWithDefault("VOX_SCENARIO_ID", "52166"),
		PhoneNumberID: getEnvWithDefault("VOX_PHONE_NUMBER_ID", "15412"),
	}
	cfg.Telephony.Twilio.SpeechLanguage = getEnvWithDefault("TWILIO_SPEECH_LANGUAGE", "ru-RU")

	switch cfg.Telephony.Provider {
	case TelephonyVoximplant:
	case TelephonyTwilio:
		if cfg.Telephony.Twilio.AccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
			return nil, err
		}
		if cfg.Telephony.Twilio.AuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
			return nil, err
		}
		if cfg.Telephony.Twilio.FromNumber, err = requireEnv("TWILIO_FROM_NUMBER"); err != nil {
			return nil, err
		}
		if cfg.Server.PublicBaseURL == "" {
			return nil, fmt.Errorf("PUBLIC_BASE_URL is not set: %w", ErrEmptyEnvironmentVariable)
		}
	default:
		return nil, fmt.Errorf("TELEPHONY_PROVIDER %q: %w", cfg.Telephony.Provider, ErrUnknownProvider)
	}

	// LLM configuration
	cfg.LLM.Provider = strings.ToLower(getEnvWithDefault("LLM_PROVIDER", LLMOpenAI))
	cfg.LLM.APIKey = os.Getenv("LLM_API_KEY")
	cfg.LLM.BaseURL = os.Getenv("LLM_BASE_URL")
	switch cfg.LLM.Provider {
	case LLMOpenAI:
		cfg.LLM.Model = getEnvWithDefault("LLM_MODEL", "gpt-4o")
	case LLMGemini:
		cfg.LLM.Model = getEnvWithDefault("LLM_MODEL", "gemini-1.5-pro")
	default:
		return nil, fmt.Errorf("LLM_PROVIDER %q: %w", cfg.LLM.Provider, ErrUnknownProvider)
	}
	if cfg.LLM.Temperature, err = getFloatEnv("LLM_TEMPERATURE", 1); err != nil {
		return nil, err
	}
	if cfg.LLM.TopP, err = getFloatEnv("LLM_TOP_P", 0); err != nil {
		return nil, err
	}
	if cfg.LLM.MaxTokens, err = getIntEnv("LLM_MAX_TOKENS", 1000); err != nil {
		return nil, err
	}
	if cfg.LLM.Timeout, err = getDurationEnv("LLM_TIMEOUT", 600*time.Second); err != nil {
		return nil, err
	}

	// Session configuration
	if cfg.Sessions.TTL, err = getDurationEnv("SESSION_TTL", 0); err != nil {
		return nil, err
	}
	if cfg.Sessions.CleanupInterval, err = getDurationEnv("SESSION_CLEANUP_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.Sessions.AutoFinish, err = getBoolEnv("SESSION_AUTO_FINISH", false); err != nil {
		return nil, err
	}

	// Kafka configuration
	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "call-events")

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getFloatEnv(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

// splitList splits a comma separated value, dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
