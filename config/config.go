package config

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Optimizer OptimizerConfig
}

type AppConfig struct {
	Port       string
	Env        string
	CORSOrigin string
}

type DBConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	MigrationsPath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// WeightConfig holds the four objective weights of the composite score.
// The weights must sum to 1.0 so the composite score stays in [0,1].
type WeightConfig struct {
	Urgency        float64
	Proximity      float64
	Continuity     float64
	TimePreference float64
}

func (w WeightConfig) Sum() float64 {
	return w.Urgency + w.Proximity + w.Continuity + w.TimePreference
}

type OptimizerConfig struct {
	Weights          WeightConfig
	CriticalWeights  WeightConfig
	DefaultDistKM    float64
	CriticalScore    float64
	ConcerningScore  float64
	RadiusExpansion  float64
	TopK             int
	SolverTimeout    time.Duration
	RecommendWorkers int
	SnapshotTTL      time.Duration
}

const weightTolerance = 1e-9

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	setOptimizerDefaults()

	solverTimeout, err := time.ParseDuration(viper.GetString("OPTIMIZER_SOLVER_TIMEOUT"))
	if err != nil {
		solverTimeout = 5 * time.Second
	}

	snapshotTTL, err := time.ParseDuration(viper.GetString("OPTIMIZER_SNAPSHOT_TTL"))
	if err != nil {
		snapshotTTL = time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			CORSOrigin: viper.GetString("APP_CORS_ORIGIN"),
		},
		DB: DBConfig{
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASSWORD"),
			Name:           viper.GetString("DB_NAME"),
			MigrationsPath: viper.GetString("DB_MIGRATIONS_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Optimizer: OptimizerConfig{
			Weights: WeightConfig{
				Urgency:        viper.GetFloat64("OPTIMIZER_WEIGHT_URGENCY"),
				Proximity:      viper.GetFloat64("OPTIMIZER_WEIGHT_PROXIMITY"),
				Continuity:     viper.GetFloat64("OPTIMIZER_WEIGHT_CONTINUITY"),
				TimePreference: viper.GetFloat64("OPTIMIZER_WEIGHT_TIME_PREFERENCE"),
			},
			CriticalWeights: WeightConfig{
				Urgency:        viper.GetFloat64("OPTIMIZER_CRITICAL_WEIGHT_URGENCY"),
				Proximity:      viper.GetFloat64("OPTIMIZER_CRITICAL_WEIGHT_PROXIMITY"),
				Continuity:     viper.GetFloat64("OPTIMIZER_CRITICAL_WEIGHT_CONTINUITY"),
				TimePreference: viper.GetFloat64("OPTIMIZER_CRITICAL_WEIGHT_TIME_PREFERENCE"),
			},
			DefaultDistKM:    viper.GetFloat64("OPTIMIZER_DEFAULT_DISTANCE_KM"),
			CriticalScore:    viper.GetFloat64("OPTIMIZER_CRITICAL_SCORE"),
			ConcerningScore:  viper.GetFloat64("OPTIMIZER_CONCERNING_SCORE"),
			RadiusExpansion:  viper.GetFloat64("OPTIMIZER_RADIUS_EXPANSION"),
			TopK:             viper.GetInt("OPTIMIZER_TOP_K"),
			SolverTimeout:    solverTimeout,
			RecommendWorkers: viper.GetInt("OPTIMIZER_RECOMMEND_WORKERS"),
			SnapshotTTL:      snapshotTTL,
		},
	}

	if err := config.Optimizer.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setOptimizerDefaults() {
	viper.SetDefault("OPTIMIZER_WEIGHT_URGENCY", 0.35)
	viper.SetDefault("OPTIMIZER_WEIGHT_PROXIMITY", 0.30)
	viper.SetDefault("OPTIMIZER_WEIGHT_CONTINUITY", 0.20)
	viper.SetDefault("OPTIMIZER_WEIGHT_TIME_PREFERENCE", 0.15)
	viper.SetDefault("OPTIMIZER_CRITICAL_WEIGHT_URGENCY", 0.50)
	viper.SetDefault("OPTIMIZER_CRITICAL_WEIGHT_PROXIMITY", 0.25)
	viper.SetDefault("OPTIMIZER_CRITICAL_WEIGHT_CONTINUITY", 0.15)
	viper.SetDefault("OPTIMIZER_CRITICAL_WEIGHT_TIME_PREFERENCE", 0.10)
	viper.SetDefault("OPTIMIZER_DEFAULT_DISTANCE_KM", 10.0)
	viper.SetDefault("OPTIMIZER_CRITICAL_SCORE", 3.0)
	viper.SetDefault("OPTIMIZER_CONCERNING_SCORE", 5.0)
	viper.SetDefault("OPTIMIZER_RADIUS_EXPANSION", 1.5)
	viper.SetDefault("OPTIMIZER_TOP_K", 3)
	viper.SetDefault("OPTIMIZER_SOLVER_TIMEOUT", "5s")
	viper.SetDefault("OPTIMIZER_RECOMMEND_WORKERS", 4)
	viper.SetDefault("OPTIMIZER_SNAPSHOT_TTL", "1m")
}

// Validate checks the optimizer configuration and fails fast on values
// that would corrupt scoring or eligibility mid-solve.
func (c OptimizerConfig) Validate() error {
	if math.Abs(c.Weights.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("optimizer weights must sum to 1.0, got %v", c.Weights.Sum())
	}
	if math.Abs(c.CriticalWeights.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("optimizer critical weights must sum to 1.0, got %v", c.CriticalWeights.Sum())
	}
	if c.DefaultDistKM < 0 {
		return fmt.Errorf("default distance must be >= 0, got %v", c.DefaultDistKM)
	}
	if c.RadiusExpansion < 1.0 {
		return fmt.Errorf("radius expansion must be >= 1.0, got %v", c.RadiusExpansion)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top K must be >= 1, got %d", c.TopK)
	}
	if c.RecommendWorkers < 1 {
		return fmt.Errorf("recommend workers must be >= 1, got %d", c.RecommendWorkers)
	}
	return nil
}
