package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type Config struct {
	OrganizationName string
	AppName          string
	Env              string
	AppPort          string
	AppUrl           string

	LoginRatePerMinute int
	LoginRateBurst     int
	// TrustProxyHeaders keys the login limiter on X-Forwarded-For and
	// friends instead of the connection address.
	TrustProxyHeaders bool

	LDSDKKey                  string
	LDFlag_SeedDbWithFixtures bool
	LDFlag_CORSHighSecurity   bool
}

const (
	OrganizationName    = utils.OrganizationName
	LDConnectionTimeout = 5 * time.Second

	defaultEnv                = "dev"
	defaultAppPort            = "5000"
	defaultLoginRatePerMinute = 10
	defaultLoginRateBurst     = 5
)

// Default values, override via ldflags at build time.
var (
	AppName             = "portal-service"
	LDServerContextKey  = "portal-service"
	LDServerContextKind = "service"
)

// LoadConfig is Load for main: any error is fatal.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to load config")
	}
	return cfg
}

// Load reads the environment (after an optional .env file) and resolves
// feature flags from LaunchDarkly when LD_SDK_KEY is set, or from env vars
// otherwise.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := getEnv("APP_PORT", defaultAppPort)
	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          AppName,
		Env:              getEnv("ENV", defaultEnv),
		AppPort:          appPort,
		AppUrl:           getEnv("APP_URL", "http://localhost:"+appPort),
		LDSDKKey:         os.Getenv("LD_SDK_KEY"),
	}

	var err error
	if cfg.LoginRatePerMinute, err = getEnvInt("LOGIN_RATE_PER_MINUTE", defaultLoginRatePerMinute); err != nil {
		return nil, err
	}
	if cfg.LoginRateBurst, err = getEnvInt("LOGIN_RATE_BURST", defaultLoginRateBurst); err != nil {
		return nil, err
	}
	if cfg.TrustProxyHeaders, err = getEnvBool("TRUST_PROXY_HEADERS", false); err != nil {
		return nil, err
	}

	if cfg.LDSDKKey != "" {
		if err := cfg.loadLDFlags(); err != nil {
			return nil, err
		}
	} else {
		utils.Logger.Info("LD_SDK_KEY not set; reading feature flags from env")
		if cfg.LDFlag_SeedDbWithFixtures, err = getEnvBool("SEED_DB_WITH_FIXTURES", true); err != nil {
			return nil, err
		}
		if cfg.LDFlag_CORSHighSecurity, err = getEnvBool("CORS_HIGH_SECURITY", false); err != nil {
			return nil, err
		}
	}

	utils.Logger.Debugf("App can be accessed at: %s", cfg.AppUrl)
	return cfg, nil
}

func (c *Config) loadLDFlags() error {
	ldClient, err := ld.MakeClient(c.LDSDKKey, LDConnectionTimeout)
	if err != nil {
		return fmt.Errorf("create LaunchDarkly client: %w", err)
	}
	defer ldClient.Close()
	if !ldClient.Initialized() {
		return fmt.Errorf("LaunchDarkly client failed to initialize")
	}

	context := ldcontext.NewWithKind(ldcontext.Kind(LDServerContextKind), LDServerContextKey)

	seed, err := ldClient.BoolVariation("seed_db_with_fixtures", context, true)
	if err != nil {
		return fmt.Errorf("retrieve seed_db_with_fixtures flag: %w", err)
	}
	utils.Logger.Debugf("seed_db_with_fixtures flag: %t", seed)

	corsHigh, err := ldClient.BoolVariation("cors_high_security", context, false)
	if err != nil {
		return fmt.Errorf("retrieve cors_high_security flag: %w", err)
	}
	utils.Logger.Debugf("cors_high_security flag: %t", corsHigh)

	c.LDFlag_SeedDbWithFixtures = seed
	c.LDFlag_CORSHighSecurity = corsHigh
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}
