package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultDotEnvFile         = ".env"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	JWT *JWTConfig `json:"jwt" yaml:"jwt"`

	// Admin is the single principal allowed to mutate comments.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	OpenAI *OpenAIConfig `json:"openai" yaml:"openai"`

	Xaman *XamanConfig `json:"xaman" yaml:"xaman"`

	Pinata *PinataConfig `json:"pinata" yaml:"pinata"`

	// Pinning selects where uploaded files are pinned
	Pinning *PinningConfig `json:"pinning" yaml:"pinning"`

	// QRCode configuration for locally rendered deep link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MongoConfig defines the document store connection
type MongoConfig struct {
	URI string `json:"uri" yaml:"uri"`
	// Database overrides the database named in the URI path
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// JWTConfig defines bearer token signing
type JWTConfig struct {
	Secret string        `json:"secret" yaml:"secret"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

// AdminConfig defines the static admin credentials.
// PasswordHash, when set, is a bcrypt hash and takes precedence over Password.
type AdminConfig struct {
	Username     string `json:"username" yaml:"username"`
	Password     string `json:"password" yaml:"password"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
}

// OpenAIConfig defines the chat completion provider used by the idea evaluator
type OpenAIConfig struct {
	APIKey      string        `json:"apiKey" yaml:"apiKey"`
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	Model       string        `json:"model" yaml:"model"`
	Temperature float32       `json:"temperature" yaml:"temperature"`
	MaxTokens   int           `json:"maxTokens" yaml:"maxTokens"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// XamanConfig defines the wallet signing gateway
type XamanConfig struct {
	APIKey    string        `json:"apiKey" yaml:"apiKey"`
	APISecret string        `json:"apiSecret" yaml:"apiSecret"`
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// PinataConfig defines the IPFS pinning service
type PinataConfig struct {
	APIKey     string        `json:"apiKey" yaml:"apiKey"`
	SecretKey  string        `json:"secretKey" yaml:"secretKey"`
	BaseURL    string        `json:"baseUrl" yaml:"baseUrl"`
	GatewayURL string        `json:"gatewayUrl" yaml:"gatewayUrl"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// PinningConfig defines the pinning provider
type PinningConfig struct {
	// Provider type: "pinata" for Pinata or "local" for a blob bucket
	Provider string `json:"provider" yaml:"provider"`

	// Bucket URL for the local provider, e.g. file:///var/lib/pins or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public URL prefix under which local pins are served
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// Defaults are insecure and intended only for local development.
func Defaults() map[string]any {
	return map[string]any{
		"env.env":                         "develop",
		"env.serviceName":                 "workbench",
		"env.debug":                       false,
		"env.log.pretty":                  false,
		"env.log.level":                   "info",
		"http.port":                       8374,
		"http.maxRequestBodySize":         defaultMaxRequestBodySize,
		"http.timeouts.readTimeout":       "30s",
		"http.timeouts.readHeaderTimeout": "10s",
		"http.timeouts.writeTimeout":      "60s",
		"http.timeouts.idleTimeout":       "120s",
		"mongo.uri":                       "mongodb://mongo:27017/comments-app",
		"mongo.database":                  "",
		"mongo.connectTimeout":            "10s",
		"jwt.secret":                      "super-secret-key-change-me",
		"jwt.ttl":                         "2h",
		"admin.username":                  "admin",
		"admin.password":                  "admin123",
		"admin.passwordHash":              "",
		"openai.apiKey":                   "",
		"openai.baseUrl":                  "",
		"openai.model":                    "gpt-4o-mini",
		"openai.temperature":              0.7,
		"openai.maxTokens":                200,
		"openai.timeout":                  "30s",
		"xaman.apiKey":                    "",
		"xaman.apiSecret":                 "",
		"xaman.baseUrl":                   "https://xumm.app/api/v1/platform",
		"xaman.timeout":                   "15s",
		"pinata.apiKey":                   "",
		"pinata.secretKey":                "",
		"pinata.baseUrl":                  "https://api.pinata.cloud",
		"pinata.gatewayUrl":               "https://gateway.pinata.cloud/ipfs/",
		"pinata.timeout":                  "60s",
		"pinning.provider":                "pinata",
		"pinning.bucketUrl":               "mem://",
		"pinning.publicBaseUrl":           "http://localhost:8374/api/pins/",
		"qrcode.size":                     256,
		"qrcode.errorCorrectionLevel":     "M",
	}
}

// LoadWithEnv builds a config from defaults, an optional <currEnv>.yaml and the environment, in that order.
func LoadWithEnv[T any](currEnv string, defaults map[string]any, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	for key, value := range defaults {
		if err := koanfInstance.Set(key, value); err != nil {
			return nil, errors.Wrapf(err, "set default %s", key)
		}
	}

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// The file is optional, defaults and env are enough to run
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := koanfInstance.Load(file.Provider(candidate), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}

		break
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing keys.
			// Example: OPENAI_API_KEY -> openai.apiKey (not openai.api.key)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	if err := godotenv.Load(defaultDotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", Defaults(), "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return cfg, nil
}

// canonicalizeEnvKey maps an env var name onto the dotted key path of the existing config.
// Adjacent segments are joined greedily when the joined form names an existing key,
// so API_KEY under openai resolves to apiKey.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := make([]string, 0)
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	canonical := make([]string, 0, len(segments))
	current := existing

	for i := 0; i < len(segments); {
		matched, next, width := matchSegments(current, segments[i:])
		if width == 0 {
			canonical = append(canonical, segments[i])
			current = nil
			i++

			continue
		}

		canonical = append(canonical, matched)
		current = next
		i += width
	}

	return strings.Join(canonical, ".")
}

// matchSegments returns the longest run of leading segments naming a key in current.
func matchSegments(current map[string]any, segments []string) (matched string, next map[string]any, width int) {
	for n := len(segments); n > 0; n-- {
		if key, child, ok := findExistingSegment(current, strings.Join(segments[:n], "")); ok {
			return key, child, n
		}
	}

	return "", nil, 0
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
