package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "QUOTEBALANCE_CONFIG"
	openAIKeyEnv    = "OPENAI_API_KEY"
	openAIModelEnv  = "OPENAI_MODEL"
	genderizeKeyEnv = "GENDERIZE_API_KEY"
	googleKeyEnv    = "GOOGLE_API_KEY"
	searchEngineEnv = "GOOGLE_SEARCH_ENGINE_ID"
	adminUserEnv    = "ADMIN_USERNAME"
	adminPassEnv    = "ADMIN_PASSWORD"
	testUserEnv     = "TEST_USERNAME"
	testPassEnv     = "TEST_PASSWORD"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Genderize GenderizeConfig `yaml:"genderize"`
	Search    SearchConfig    `yaml:"search"`
}

// ServerConfig describes the HTTP listener and its access gate. With an
// empty Users map the basic-auth gate is disabled (development mode).
type ServerConfig struct {
	Addr  string            `yaml:"addr"`
	Users map[string]string `yaml:"users"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Duration wraps time.Duration so YAML can carry values like "10s".
type Duration time.Duration

// UnmarshalYAML parses Go duration syntax.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to the standard library type.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// OpenAIConfig defines how to contact the chat completion API.
type OpenAIConfig struct {
	Model       string   `yaml:"model"`
	APIKey      string   `yaml:"apiKey"`
	Temperature float64  `yaml:"temperature"`
	MaxTokens   int      `yaml:"maxTokens"`
	CallTimeout Duration `yaml:"callTimeout"`
}

// GenderizeConfig points at the name-gender inference service.
type GenderizeConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
}

// SearchConfig wires the Google Custom Search JSON API.
type SearchConfig struct {
	Endpoint   string `yaml:"endpoint"`
	EngineID   string `yaml:"engineId"`
	APIKey     string `yaml:"apiKey"`
	Results    int    `yaml:"results"`
	Candidates int    `yaml:"candidates"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(openAIKeyEnv); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv(openAIModelEnv); v != "" {
		c.OpenAI.Model = v
	}
	if v := os.Getenv(genderizeKeyEnv); v != "" {
		c.Genderize.APIKey = v
	}
	if v := os.Getenv(googleKeyEnv); v != "" {
		c.Search.APIKey = v
	}
	if v := os.Getenv(searchEngineEnv); v != "" {
		c.Search.EngineID = v
	}

	addCredential(&c.Server, os.Getenv(adminUserEnv), os.Getenv(adminPassEnv))
	addCredential(&c.Server, os.Getenv(testUserEnv), os.Getenv(testPassEnv))
}

func addCredential(server *ServerConfig, user, password string) {
	if user == "" || password == "" {
		return
	}
	if server.Users == nil {
		server.Users = map[string]string{}
	}
	server.Users[user] = password
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if len(override.Server.Users) > 0 {
		base.Server.Users = override.Server.Users
	}

	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.OpenAI.Model != "" {
		base.OpenAI.Model = override.OpenAI.Model
	}
	if override.OpenAI.APIKey != "" {
		base.OpenAI.APIKey = override.OpenAI.APIKey
	}
	if override.OpenAI.Temperature != 0 {
		base.OpenAI.Temperature = override.OpenAI.Temperature
	}
	if override.OpenAI.MaxTokens != 0 {
		base.OpenAI.MaxTokens = override.OpenAI.MaxTokens
	}
	if override.OpenAI.CallTimeout != 0 {
		base.OpenAI.CallTimeout = override.OpenAI.CallTimeout
	}

	if override.Genderize.Endpoint != "" {
		base.Genderize.Endpoint = override.Genderize.Endpoint
	}
	if override.Genderize.APIKey != "" {
		base.Genderize.APIKey = override.Genderize.APIKey
	}

	if override.Search.Endpoint != "" {
		base.Search.Endpoint = override.Search.Endpoint
	}
	if override.Search.EngineID != "" {
		base.Search.EngineID = override.Search.EngineID
	}
	if override.Search.APIKey != "" {
		base.Search.APIKey = override.Search.APIKey
	}
	if override.Search.Results != 0 {
		base.Search.Results = override.Search.Results
	}
	if override.Search.Candidates != 0 {
		base.Search.Candidates = override.Search.Candidates
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server:  ServerConfig{Addr: ":5000"},
		Logging: LoggingConfig{Level: "info"},
		OpenAI: OpenAIConfig{
			Model:       "gpt-4",
			Temperature: 0,
			MaxTokens:   2500,
			CallTimeout: Duration(30 * time.Second),
		},
		Genderize: GenderizeConfig{Endpoint: "https://api.genderize.io"},
		Search: SearchConfig{
			Endpoint:   "https://www.googleapis.com/customsearch/v1",
			Results:    10,
			Candidates: 5,
		},
	}
}
