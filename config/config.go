package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/bookbuddy/library-client/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"STUB_HTTP_HOST" default:"localhost"`
	Port         string        `yaml:"port" envconfig:"STUB_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

type API struct {
	// BaseURL of the remote REST service, including the /api prefix.
	BaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`
}

type Session struct {
	// TokenPath is the single file the bearer token persists to.
	TokenPath string `envconfig:"TOKEN_PATH" default:".bookbuddy/token"`
}

type Auth struct {
	// JWTKey signs the stub server's tokens.
	JWTKey   string        `envconfig:"JWT_KEY" default:"bookbuddy-dev-key"`
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
}

type Config struct {
	Server  HTTPServer `yaml:"server"`
	API     API        `yaml:"api"`
	Session Session    `yaml:"session"`
	Auth    Auth       `yaml:"auth"`
	Log     logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
