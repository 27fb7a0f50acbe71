package config

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// IRCConfig holds connection parameters.
type IRCConfig struct {
	Server   string   `yaml:"server"`
	Port     int      `yaml:"port"`
	SSL      bool     `yaml:"ssl"`
	Nickname string   `yaml:"nickname"`
	Username string   `yaml:"username"`
	Realname string   `yaml:"realname"`
	Password string   `yaml:"password"`
	Channels []string `yaml:"channels"`
}

// BehaviorConfig holds the base response gating parameters.
type BehaviorConfig struct {
	ResponseProbability float64 `yaml:"response_probability"`
	MinResponseDelay    float64 `yaml:"min_response_delay"` // seconds
	MaxResponseDelay    float64 `yaml:"max_response_delay"` // seconds
}

// AIConfig holds the chat-completion provider parameters. Empty APIKey
// disables the AI tier; the deterministic fallbacks still run.
type AIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// PersonalityConfig holds optional persona overrides. Zero values mean
// "sample randomly".
type PersonalityConfig struct {
	Name          string   `yaml:"name"`
	Gender        string   `yaml:"gender"`
	Age           int      `yaml:"age"`
	City          string   `yaml:"city"`
	Region        string   `yaml:"region"`
	HumorLevel    float64  `yaml:"humor_level"`
	Casualness    float64  `yaml:"casualness"`
	Friendliness  float64  `yaml:"friendliness"`
	GeekLevel     float64  `yaml:"geek_level"`
	WritingStyles []string `yaml:"writing_styles"`
	Interests     []string `yaml:"interests"`
	Seed          int64    `yaml:"seed"`
}

// ActivityConfig holds the diurnal schedule and anti-detection ceilings.
type ActivityConfig struct {
	Timezone                string   `yaml:"timezone"`
	ActiveStart             string   `yaml:"active_start"`
	ActiveEnd               string   `yaml:"active_end"`
	LunchStart              string   `yaml:"lunch_start"`
	LunchEnd                string   `yaml:"lunch_end"`
	LunchProbability        float64  `yaml:"lunch_probability"`
	PeakHours               []string `yaml:"peak_hours"`
	WeekendActivityModifier float64  `yaml:"weekend_activity_modifier"`
	MaxDailyMessages        int      `yaml:"max_daily_messages"`
	MaxHourlyMessages       int      `yaml:"max_hourly_messages"`
}

// MemoryConfig holds conversation memory parameters.
type MemoryConfig struct {
	File                  string `yaml:"file"`
	MaxMessagesPerContext int    `yaml:"max_messages_per_context"`
}

// Config is the full bot configuration.
type Config struct {
	IRC         IRCConfig         `yaml:"irc"`
	Behavior    BehaviorConfig    `yaml:"behavior"`
	AI          AIConfig          `yaml:"ai"`
	Personality PersonalityConfig `yaml:"personality"`
	Activity    ActivityConfig    `yaml:"activity"`
	Memory      MemoryConfig      `yaml:"memory"`
}

// secrets are never read from YAML directly; when set they override whatever
// the ${VAR} substitution produced.
type secrets struct {
	IRCPassword string `env:"IRC_PASSWORD"`
	AIAPIKey    string `env:"AI_API_KEY"`
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads, substitutes, defaults and validates a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	substituted := envVarPattern.ReplaceAllStringFunc(string(raw), func(m string) string {
		name := m[2 : len(m)-1]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return m
	})

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(substituted), cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	var sec secrets
	if err := env.Parse(&sec); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}
	if sec.IRCPassword != "" {
		cfg.IRC.Password = sec.IRCPassword
	}
	if sec.AIAPIKey != "" {
		cfg.AI.APIKey = sec.AIAPIKey
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills in unset fields with the documented defaults.
func (c *Config) ApplyDefaults() {
	if c.IRC.Port == 0 {
		c.IRC.Port = 6667
	}
	if c.IRC.Username == "" {
		c.IRC.Username = c.IRC.Nickname
	}
	if c.IRC.Realname == "" {
		c.IRC.Realname = c.IRC.Nickname
	}
	if c.Behavior.ResponseProbability == 0 {
		c.Behavior.ResponseProbability = 0.3
	}
	if c.Behavior.MinResponseDelay == 0 {
		c.Behavior.MinResponseDelay = 1.0
	}
	if c.Behavior.MaxResponseDelay == 0 {
		c.Behavior.MaxResponseDelay = 5.0
	}
	if c.AI.BaseURL == "" {
		c.AI.BaseURL = "https://api.openai.com/v1"
	}
	if c.AI.Model == "" {
		c.AI.Model = "gpt-3.5-turbo"
	}
	if c.Activity.Timezone == "" {
		c.Activity.Timezone = "Europe/Paris"
	}
	if c.Activity.ActiveStart == "" {
		c.Activity.ActiveStart = "08:00"
	}
	if c.Activity.ActiveEnd == "" {
		c.Activity.ActiveEnd = "23:30"
	}
	if c.Activity.LunchStart == "" {
		c.Activity.LunchStart = "12:00"
	}
	if c.Activity.LunchEnd == "" {
		c.Activity.LunchEnd = "14:00"
	}
	if c.Activity.LunchProbability == 0 {
		c.Activity.LunchProbability = 0.1
	}
	if len(c.Activity.PeakHours) == 0 {
		c.Activity.PeakHours = []string{"19:00-22:00", "09:00-10:00"}
	}
	if c.Activity.WeekendActivityModifier == 0 {
		c.Activity.WeekendActivityModifier = 0.95
	}
	if c.Activity.MaxDailyMessages == 0 {
		c.Activity.MaxDailyMessages = 150
	}
	if c.Activity.MaxHourlyMessages == 0 {
		c.Activity.MaxHourlyMessages = 20
	}
	if c.Memory.File == "" {
		c.Memory.File = "bot_memory.json"
	}
	if c.Memory.MaxMessagesPerContext == 0 {
		c.Memory.MaxMessagesPerContext = 50
	}
}

// Validate fails fast on range violations so they never surface at runtime.
func (c *Config) Validate() error {
	if c.IRC.Server == "" {
		return fmt.Errorf("config: irc.server is required")
	}
	if c.IRC.Nickname == "" {
		return fmt.Errorf("config: irc.nickname is required")
	}
	if c.Behavior.ResponseProbability < 0 || c.Behavior.ResponseProbability > 1 {
		return fmt.Errorf("config: behavior.response_probability must be in [0,1]")
	}
	if c.Behavior.MinResponseDelay > c.Behavior.MaxResponseDelay {
		return fmt.Errorf("config: behavior min_response_delay > max_response_delay")
	}
	if c.Activity.LunchProbability < 0 || c.Activity.LunchProbability > 1 {
		return fmt.Errorf("config: activity.lunch_probability must be in [0,1]")
	}
	if c.Activity.MaxDailyMessages <= 0 || c.Activity.MaxHourlyMessages <= 0 {
		return fmt.Errorf("config: activity message ceilings must be positive")
	}
	if _, err := time.LoadLocation(c.Activity.Timezone); err != nil {
		return fmt.Errorf("config: activity.timezone: %w", err)
	}

	if err := validateWindow(c.Activity.ActiveStart, c.Activity.ActiveEnd); err != nil {
		return fmt.Errorf("config: active window: %w", err)
	}
	if err := validateWindow(c.Activity.LunchStart, c.Activity.LunchEnd); err != nil {
		return fmt.Errorf("config: lunch window: %w", err)
	}
	for _, pr := range c.Activity.PeakHours {
		parts := strings.SplitN(pr, "-", 2)
		if len(parts) != 2 {
			return fmt.Errorf("config: peak range %q: want HH:MM-HH:MM", pr)
		}
		if err := validateWindow(parts[0], parts[1]); err != nil {
			return fmt.Errorf("config: peak range %q: %w", pr, err)
		}
	}
	return nil
}

// validateWindow checks HH:MM format and same-day ordering (no overnight
// wraparound support).
func validateWindow(start, end string) error {
	s, err := time.Parse("15:04", strings.TrimSpace(start))
	if err != nil {
		return fmt.Errorf("bad start %q: %w", start, err)
	}
	e, err := time.Parse("15:04", strings.TrimSpace(end))
	if err != nil {
		return fmt.Errorf("bad end %q: %w", end, err)
	}
	if s.After(e) {
		return fmt.Errorf("start %q after end %q", start, end)
	}
	return nil
}
