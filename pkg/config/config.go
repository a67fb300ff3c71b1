package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	AWS        AWSConfig        `mapstructure:"aws"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Embedding  EmbeddingConfig  `mapstructure:"embedding"`
	Model      ModelConfig      `mapstructure:"model"`
	Similarity SimilarityConfig `mapstructure:"similarity"`
	Resilience ResilienceConfig `mapstructure:"resilience"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
	BodyLimit   int    `mapstructure:"body_limit"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
	EnableScores  bool `mapstructure:"enable_scores"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	SessionToken    string `mapstructure:"session_token"`
	RoleARN         string `mapstructure:"role_arn"`
	SessionName     string `mapstructure:"session_name"`
	Endpoint        string `mapstructure:"endpoint"`
}

type StorageConfig struct {
	Bucket       string `mapstructure:"bucket"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

type EmbeddingConfig struct {
	Provider    string                 `mapstructure:"provider"`
	Model       string                 `mapstructure:"model"`
	BaseURL     string                 `mapstructure:"base_url"`
	APIKey      string                 `mapstructure:"api_key"`
	Timeout     time.Duration          `mapstructure:"timeout"`
	MaxParallel int                    `mapstructure:"max_parallel"`
	Options     map[string]interface{} `mapstructure:"options"`
}

type ModelConfig struct {
	Repository      string   `mapstructure:"repository"`
	Revision        string   `mapstructure:"revision"`
	Dir             string   `mapstructure:"dir"`
	HubURL          string   `mapstructure:"hub_url"`
	Token           string   `mapstructure:"token"`
	Files           []string `mapstructure:"files"`
	DownloadOnStart bool     `mapstructure:"download_on_start"`
}

type SimilarityConfig struct {
	ChoiceThreshold float64 `mapstructure:"choice_threshold"`
}

type ResilienceConfig struct {
	MaxRetries      uint64        `mapstructure:"max_retries"`
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxElapsedTime  time.Duration `mapstructure:"max_elapsed_time"`
	BreakerTimeout  time.Duration `mapstructure:"breaker_timeout"`
	BreakerFailures uint32        `mapstructure:"breaker_failures"`
}

var globalConfig Config

// Load reads config.yaml from configPath when present. A missing file is not
// an error: a Lambda deployment is configured through the environment alone.
func Load(configPath string) error {
	v := viper.New()
	setDefaultValues(v)

	if err := loadConfigFile(v, configPath, "config"); err != nil {
		return err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if t := cfg.Similarity.ChoiceThreshold; t < 0 || t > 1 {
		return fmt.Errorf("similarity.choice_threshold must be within [0, 1], got %v", t)
	}
	globalConfig = cfg
	return nil
}

func loadConfigFile(v *viper.Viper, configPath, fileName string) error {
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// names used by the original deployment
	_ = v.BindEnv("storage.bucket", "STORAGE_BUCKET", "DestinationBucket")
	_ = v.BindEnv("aws.region", "AWS_REGION", "AWS_DEFAULT_REGION")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}
	return nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.body_limit", 4*1024*1024)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_scores", true)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "")
	v.SetDefault("aws.secret_access_key", "")
	v.SetDefault("aws.session_token", "")
	v.SetDefault("aws.role_arn", "")
	v.SetDefault("aws.session_name", "answer-similarity")
	v.SetDefault("aws.endpoint", "")

	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.use_path_style", false)

	v.SetDefault("embedding.provider", "tei")
	v.SetDefault("embedding.model", "sentence-transformers/all-MiniLM-L6-v2")
	v.SetDefault("embedding.base_url", "http://127.0.0.1:8081")
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.timeout", 30*time.Second)
	v.SetDefault("embedding.max_parallel", 4)

	v.SetDefault("model.repository", "sentence-transformers/all-MiniLM-L6-v2")
	v.SetDefault("model.revision", "main")
	v.SetDefault("model.dir", "./model")
	v.SetDefault("model.hub_url", "https://huggingface.co")
	v.SetDefault("model.token", "")
	v.SetDefault("model.files", []string{
		"config.json",
		"config_sentence_transformers.json",
		"modules.json",
		"sentence_bert_config.json",
		"special_tokens_map.json",
		"tokenizer.json",
		"tokenizer_config.json",
		"vocab.txt",
		"model.safetensors",
		"1_Pooling/config.json",
	})
	v.SetDefault("model.download_on_start", false)

	v.SetDefault("similarity.choice_threshold", 0.4)

	v.SetDefault("resilience.max_retries", 3)
	v.SetDefault("resilience.initial_interval", 200*time.Millisecond)
	v.SetDefault("resilience.max_elapsed_time", 20*time.Second)
	v.SetDefault("resilience.breaker_timeout", 30*time.Second)
	v.SetDefault("resilience.breaker_failures", 5)
}

func GetConfig() *Config {
	return &globalConfig
}
