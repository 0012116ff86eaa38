package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultConfig []byte

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type StorageConfig struct {
	Endpoint        string `yaml:"endpoint"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	CDNBaseURL      string `yaml:"cdn_base_url"`
}

// PublicURL returns the CDN address of an object stored under key.
func (s StorageConfig) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/bucket/%s", s.CDNBaseURL, s.AccessKeyID, key)
}

type RabbitMQConfig struct {
	URL         string        `yaml:"url"`
	Exchange    string        `yaml:"exchange"`
	RoutingKey  string        `yaml:"routing_key"`
	QueueName   string        `yaml:"queue_name"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

// Enabled reports whether engagement events should be published.
func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

// Load reads the file named by CONFIG_PATH, falling back to the embedded defaults.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	data := defaultConfig
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.expandEnv()
	cfg.setDefaults()

	return &cfg, nil
}

// expandEnv substitutes ${VAR} references after parsing so that
// environment values never pass through the YAML scanner.
func (c *Config) expandEnv() {
	for _, field := range []*string{
		&c.LogLevel,
		&c.Database.URL,
		&c.Storage.Endpoint,
		&c.Storage.Bucket,
		&c.Storage.Region,
		&c.Storage.AccessKeyID,
		&c.Storage.SecretAccessKey,
		&c.Storage.CDNBaseURL,
		&c.RabbitMQ.URL,
		&c.RabbitMQ.Exchange,
		&c.RabbitMQ.RoutingKey,
		&c.RabbitMQ.QueueName,
	} {
		*field = os.ExpandEnv(*field)
	}
}

func (c *Config) setDefaults() {
	if c.Storage.Endpoint == "" {
		c.Storage.Endpoint = "https://bucket.poehali.dev"
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = "files"
	}
	if c.Storage.Region == "" {
		c.Storage.Region = "us-east-1"
	}
	if c.Storage.CDNBaseURL == "" {
		c.Storage.CDNBaseURL = "https://cdn.poehali.dev/projects"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "site_engagement"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "engagement"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "engagement_events"
	}
	if c.RabbitMQ.DialTimeout <= 0 {
		c.RabbitMQ.DialTimeout = 2 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
