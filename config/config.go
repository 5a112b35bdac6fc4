// Package config loads the service configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Biodata *BiodataConfig `json:"biodata" yaml:"biodata"`

	Unlock *UnlockConfig `json:"unlock" yaml:"unlock"`

	CardGateway *CardGatewayConfig `json:"cardGateway" yaml:"cardGateway"`

	Aggregator *AggregatorConfig `json:"aggregator" yaml:"aggregator"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// SessionConfig defines session token settings.
type SessionConfig struct {
	Secret     string        `json:"secret" yaml:"secret"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	// Secure marks the session cookie as HTTPS-only.
	Secure bool `json:"secure" yaml:"secure"`
}

// BiodataConfig defines profile-related settings.
type BiodataConfig struct {
	// IDSeed is the biodata ID handed out for the very first profile.
	IDSeed int `json:"idSeed" yaml:"idSeed"`
	// PageSize is the default page size for list and search endpoints.
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// UnlockConfig defines the contact-unlock purchase settings.
type UnlockConfig struct {
	// AmountCents is the unlock price in the smallest currency unit.
	AmountCents int64  `json:"amountCents" yaml:"amountCents"`
	Currency    string `json:"currency" yaml:"currency"`
}

// CardGatewayConfig defines the card processor integration (gateway A).
type CardGatewayConfig struct {
	SecretKey string        `json:"secretKey" yaml:"secretKey"`
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// AggregatorConfig defines the redirect-style regional aggregator (gateway B).
type AggregatorConfig struct {
	StoreID       string        `json:"storeId" yaml:"storeId"`
	StorePassword string        `json:"storePassword" yaml:"storePassword"`
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	SuccessURL    string        `json:"successUrl" yaml:"successUrl"`
	FailURL       string        `json:"failUrl" yaml:"failUrl"`
	CancelURL     string        `json:"cancelUrl" yaml:"cancelUrl"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

// QRCodeConfig defines checkout QR code generation settings.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a dotted path and align each segment
			// with the YAML keys already loaded.
			// Example: AGGREGATOR_STOREID -> aggregator.storeId
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 10 * time.Hour
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "session"
	}
	if cfg.Biodata == nil {
		cfg.Biodata = &BiodataConfig{}
	}
	if cfg.Biodata.IDSeed == 0 {
		cfg.Biodata.IDSeed = 1
	}
	if cfg.Biodata.PageSize == 0 {
		cfg.Biodata.PageSize = 20
	}
	if cfg.Unlock == nil {
		cfg.Unlock = &UnlockConfig{AmountCents: 500, Currency: "usd"}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
