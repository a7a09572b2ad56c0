package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host     string
	Port     int
	BaseURL  string
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret            string
	AccessTokenTTLHours  int
	RefreshTokenTTLHours int
}

type StorageConfig struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

type GoogleAPIConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// SchedulerConfig carries the engine tunables. Weights must sum to 1.0
// and apply to all strategies; the scorer is constructed from these at
// module init.
type SchedulerConfig struct {
	WorkDayStartHour       int
	WorkDayEndHour         int
	SlotStepMinutes        int
	DefaultDurationMinutes int

	TimeWeight         float64
	AvailabilityWeight float64
	WorkloadWeight     float64
	CandidateWeight    float64
	UrgencyWeight      float64
	ConflictPenalty    float64

	GatherTimeoutSeconds int
	MaxReschedules       int
	ReminderLeadHours    int

	// CalendarGateway selects the availability source: "store" reads only
	// the local database, "google" merges freebusy data on top of it.
	CalendarGateway string
}

func (s SchedulerConfig) GatherTimeout() time.Duration {
	return time.Duration(s.GatherTimeoutSeconds) * time.Second
}

func (s SchedulerConfig) ReminderLead() time.Duration {
	return time.Duration(s.ReminderLeadHours) * time.Hour
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Storage   StorageConfig
	GoogleAPI GoogleAPIConfig
	Scheduler SchedulerConfig
}

var (
	mu       sync.RWMutex
	instance *Config
)

// Load reads .env (when present) and environment variables into the
// process-wide config. Safe to call once at startup.
func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:     v.GetString("SERVER_HOST"),
			Port:     v.GetInt("SERVER_PORT"),
			BaseURL:  v.GetString("SERVER_BASE_URL"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			JWTSecret:            v.GetString("JWT_SECRET"),
			AccessTokenTTLHours:  v.GetInt("ACCESS_TOKEN_TTL_HOURS"),
			RefreshTokenTTLHours: v.GetInt("REFRESH_TOKEN_TTL_HOURS"),
		},
		Storage: StorageConfig{
			Region:    v.GetString("S3_REGION"),
			Bucket:    v.GetString("S3_BUCKET"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
			Endpoint:  v.GetString("S3_ENDPOINT"),
		},
		GoogleAPI: GoogleAPIConfig{
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURI:  v.GetString("GOOGLE_REDIRECT_URI"),
		},
		Scheduler: SchedulerConfig{
			WorkDayStartHour:       v.GetInt("SCHEDULER_WORK_DAY_START_HOUR"),
			WorkDayEndHour:         v.GetInt("SCHEDULER_WORK_DAY_END_HOUR"),
			SlotStepMinutes:        v.GetInt("SCHEDULER_SLOT_STEP_MINUTES"),
			DefaultDurationMinutes: v.GetInt("SCHEDULER_DEFAULT_DURATION_MINUTES"),
			TimeWeight:             v.GetFloat64("SCHEDULER_TIME_WEIGHT"),
			AvailabilityWeight:     v.GetFloat64("SCHEDULER_AVAILABILITY_WEIGHT"),
			WorkloadWeight:         v.GetFloat64("SCHEDULER_WORKLOAD_WEIGHT"),
			CandidateWeight:        v.GetFloat64("SCHEDULER_CANDIDATE_WEIGHT"),
			UrgencyWeight:          v.GetFloat64("SCHEDULER_URGENCY_WEIGHT"),
			ConflictPenalty:        v.GetFloat64("SCHEDULER_CONFLICT_PENALTY"),
			GatherTimeoutSeconds:   v.GetInt("SCHEDULER_GATHER_TIMEOUT_SECONDS"),
			MaxReschedules:         v.GetInt("SCHEDULER_MAX_RESCHEDULES"),
			ReminderLeadHours:      v.GetInt("SCHEDULER_REMINDER_LEAD_HOURS"),
			CalendarGateway:        v.GetString("SCHEDULER_CALENDAR_GATEWAY"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("SERVER_BASE_URL", "http://localhost:7070")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "talentsched")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ACCESS_TOKEN_TTL_HOURS", 24)
	v.SetDefault("REFRESH_TOKEN_TTL_HOURS", 168)

	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET", "talentsched-exports")

	v.SetDefault("SCHEDULER_WORK_DAY_START_HOUR", 9)
	v.SetDefault("SCHEDULER_WORK_DAY_END_HOUR", 17)
	v.SetDefault("SCHEDULER_SLOT_STEP_MINUTES", 30)
	v.SetDefault("SCHEDULER_DEFAULT_DURATION_MINUTES", 60)
	v.SetDefault("SCHEDULER_TIME_WEIGHT", 0.30)
	v.SetDefault("SCHEDULER_AVAILABILITY_WEIGHT", 0.25)
	v.SetDefault("SCHEDULER_WORKLOAD_WEIGHT", 0.20)
	v.SetDefault("SCHEDULER_CANDIDATE_WEIGHT", 0.15)
	v.SetDefault("SCHEDULER_URGENCY_WEIGHT", 0.10)
	v.SetDefault("SCHEDULER_CONFLICT_PENALTY", 0.7)
	v.SetDefault("SCHEDULER_GATHER_TIMEOUT_SECONDS", 10)
	v.SetDefault("SCHEDULER_MAX_RESCHEDULES", 3)
	v.SetDefault("SCHEDULER_REMINDER_LEAD_HOURS", 24)
	v.SetDefault("SCHEDULER_CALENDAR_GATEWAY", "store")
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Scheduler.WorkDayStartHour >= c.Scheduler.WorkDayEndHour {
		return fmt.Errorf("work day start hour %d must be before end hour %d",
			c.Scheduler.WorkDayStartHour, c.Scheduler.WorkDayEndHour)
	}
	if c.Scheduler.SlotStepMinutes <= 0 {
		return fmt.Errorf("slot step must be positive, got %d", c.Scheduler.SlotStepMinutes)
	}
	if c.Scheduler.CalendarGateway != "store" && c.Scheduler.CalendarGateway != "google" {
		return fmt.Errorf("unknown calendar gateway %q", c.Scheduler.CalendarGateway)
	}
	return nil
}

func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return nil, false
	}
	return instance, true
}
