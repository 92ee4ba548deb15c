package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno-server/consts"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Auth     Auth     `yaml:"auth"`
	Postgres Postgres `yaml:"postgres"`
	Redis    Redis    `yaml:"redis"`
	Rules    Rules    `yaml:"rules"`
}

type Server struct {
	TCPAddr string `yaml:"tcp_addr"`
	WSAddr  string `yaml:"ws_addr"`
}

type Auth struct {
	Secret string `yaml:"secret"`
}

type Postgres struct {
	DSN string `yaml:"dsn"`
}

type Redis struct {
	Addr string        `yaml:"addr"`
	TTL  time.Duration `yaml:"ttl"`
}

type Rules struct {
	CardsPerPlayer int           `yaml:"cards_per_player"`
	SweepInterval  time.Duration `yaml:"sweep_interval"`
	FinishedTTL    time.Duration `yaml:"finished_ttl"`
	IdleTTL        time.Duration `yaml:"idle_ttl"`
}

func Default() Config {
	return Config{
		Server: Server{TCPAddr: ":9999", WSAddr: ":9998"},
		Redis:  Redis{TTL: 24 * time.Hour},
		Rules: Rules{
			CardsPerPlayer: consts.DefaultCardsPerPlayer,
			SweepInterval:  consts.SweepInterval,
			FinishedTTL:    consts.FinishedTTL,
			IdleTTL:        24 * time.Hour,
		},
	}
}

// Load reads .env from the working directory and the yaml file at path,
// both optional, on top of the defaults. UNO_* environment variables win.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read %s: %w", path, err)
		default:
			if err = yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	for name, target := range map[string]*string{
		"UNO_TCP_ADDR":     &c.Server.TCPAddr,
		"UNO_WS_ADDR":      &c.Server.WSAddr,
		"UNO_JWT_SECRET":   &c.Auth.Secret,
		"UNO_POSTGRES_DSN": &c.Postgres.DSN,
		"UNO_REDIS_ADDR":   &c.Redis.Addr,
	} {
		if v, ok := os.LookupEnv(name); ok {
			*target = v
		}
	}
	if v, ok := os.LookupEnv("UNO_CARDS_PER_PLAYER"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("UNO_CARDS_PER_PLAYER: %w", err)
		}
		c.Rules.CardsPerPlayer = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.Auth.Secret == "" {
		return errors.New("auth secret is required, set UNO_JWT_SECRET")
	}
	if c.Server.TCPAddr == "" && c.Server.WSAddr == "" {
		return errors.New("at least one of tcp_addr and ws_addr is required")
	}
	if c.Rules.CardsPerPlayer < 0 {
		return fmt.Errorf("cards_per_player must not be negative: %d", c.Rules.CardsPerPlayer)
	}
	if c.Rules.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be positive: %s", c.Rules.SweepInterval)
	}
	return nil
}
