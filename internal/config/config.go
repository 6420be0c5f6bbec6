package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/mitchellh/mapstructure"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = "3000"
	DefaultRequestTimeout = "30s"
	DefaultLogLevel       = "info"
	DefaultServiceName    = "teamwork-proxy"
)

// Config contains the proxy configuration. It is loaded once at startup and
// must not be modified afterwards.
//
// Example configuration (HCL):
//
//	host            = "0.0.0.0"
//	port            = "8080"
//	teamwork_url    = "https://example.teamwork.com"
//	api_key         = env("TEAMWORK_API_KEY")
//	request_timeout = "15s"
//
//	datadog {
//	  enabled = true
//	}
type Config struct {
	// Host is the address the HTTP listener binds to.
	Host string `hcl:"host,optional" yaml:"host" mapstructure:"HOST"`

	// Port is the port the HTTP listener binds to.
	Port string `hcl:"port,optional" yaml:"port" mapstructure:"PORT"`

	// TeamworkURL is the base URL of the upstream Teamwork API.
	TeamworkURL string `hcl:"teamwork_url,optional" yaml:"teamwork_url" mapstructure:"TEAMWORK_URL"`

	// APIKey is used to authenticate requests that arrive without an
	// Authorization header. Optional.
	APIKey string `hcl:"api_key,optional" yaml:"api_key" mapstructure:"API_KEY"`

	// PublicURL, when set, is the scheme and host used for pagination links
	// instead of the ones the request arrived with.
	PublicURL string `hcl:"public_url,optional" yaml:"public_url" mapstructure:"PUBLIC_URL"`

	// RequestTimeout bounds each upstream request.
	RequestTimeout string `hcl:"request_timeout,optional" yaml:"request_timeout" mapstructure:"REQUEST_TIMEOUT"`

	LogLevel string `hcl:"log_level,optional" yaml:"log_level" mapstructure:"LOG_LEVEL"`
	LogJSON  bool   `hcl:"log_json,optional" yaml:"log_json" mapstructure:"LOG_JSON"`

	Datadog *DatadogConfig `hcl:"datadog,block" yaml:"datadog" mapstructure:"-"`

	timeout time.Duration
}

// DatadogConfig enables tracing of inbound and outbound requests.
type DatadogConfig struct {
	Enabled bool   `hcl:"enabled,optional" yaml:"enabled"`
	Service string `hcl:"service,optional" yaml:"service"`
}

// envKeys are the environment variables that override file settings.
var envKeys = []string{
	"HOST",
	"PORT",
	"TEAMWORK_URL",
	"API_KEY",
	"PUBLIC_URL",
	"REQUEST_TIMEOUT",
	"LOG_LEVEL",
	"LOG_JSON",
}

// Load builds the configuration from defaults, the optional file at path,
// and the environment, in increasing order of precedence. The returned
// config has been validated.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	env := make(map[string]interface{})
	for _, k := range envKeys {
		if v, ok := lookupEnv(k); ok {
			env[k] = v
		}
	}
	if err := mapstructure.WeakDecode(env, cfg); err != nil {
		return nil, fmt.Errorf("error decoding environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("error decoding config file %s: %w", path, err)
		}
	default:
		if err := hclsimple.DecodeFile(path, evalContext(), cfg); err != nil {
			return fmt.Errorf("error decoding config file %s: %w", path, err)
		}
	}
	return nil
}

// evalContext exposes env("NAME") to HCL config files so secrets can stay out
// of the file itself.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{
					{Name: "name", Type: cty.String},
				},
				Type: function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					return cty.StringVal(os.Getenv(args[0].AsString())), nil
				},
			}),
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Datadog != nil && c.Datadog.Service == "" {
		c.Datadog.Service = DefaultServiceName
	}
}

// Validate checks the configuration and caches derived values.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.By(validatePort)),
		validation.Field(&c.TeamworkURL, validation.Required, validation.By(validateHTTPURL)),
		validation.Field(&c.PublicURL, validation.By(validateHTTPURL)),
		validation.Field(&c.RequestTimeout, validation.Required, validation.By(validateDuration)),
		validation.Field(&c.LogLevel, validation.By(validateLogLevel)),
	)
	if err != nil {
		return err
	}

	c.timeout, _ = time.ParseDuration(c.RequestTimeout)
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Timeout is the parsed RequestTimeout.
func (c *Config) Timeout() time.Duration {
	return c.timeout
}

// HasAPIKey reports whether a static API key is configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// TracingEnabled reports whether Datadog tracing is enabled.
func (c *Config) TracingEnabled() bool {
	return c.Datadog != nil && c.Datadog.Enabled
}

// HCLogLevel is the configured log level.
func (c *Config) HCLogLevel() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

func validatePort(value interface{}) error {
	s, _ := value.(string)
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return errors.New("must be a port number between 1 and 65535")
	}
	return nil
}

func validateHTTPURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

func validateDuration(value interface{}) error {
	s, _ := value.(string)
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.New("must be a duration such as \"30s\"")
	}
	if d <= 0 {
		return errors.New("must be positive")
	}
	return nil
}

func validateLogLevel(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if hclog.LevelFromString(s) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", s)
	}
	return nil
}
