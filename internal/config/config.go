package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort        = 3080
	defaultEnv         = "development"
	defaultMongoURI    = "mongodb://127.0.0.1:27017"
	defaultMongoDB     = "yaritu"
	defaultMaxUploadMB = 150
	defaultChatModel   = "gpt-4o-mini"
)

// Load builds the Config from an optional YAML file overlaid with
// environment variables. A missing config file is not an error; the
// environment alone is enough to run.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port: defaultPort,
		Env:  defaultEnv,
		Mongo: MongoConfig{
			URI:    defaultMongoURI,
			DBName: defaultMongoDB,
		},
		Storage: StorageConfig{
			MaxUploadMB: defaultMaxUploadMB,
		},
		Chat: ChatConfig{
			Model: defaultChatModel,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Env != "production" {
		cfg.Env = defaultEnv
	}
	// The built-in development secret would make admin tokens forgeable.
	if cfg.Env == "production" && strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("jwt_secret is required in production")
	}
	if cfg.Storage.MaxUploadMB <= 0 {
		cfg.Storage.MaxUploadMB = defaultMaxUploadMB
	}
	if cfg.Chat.Model == "" {
		cfg.Chat.Model = defaultChatModel
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Env always wins over
// the YAML file so deployments can override a baked-in config.
func applyEnv(cfg *Config) {
	setString(&cfg.Env, "YARITU_ENV", "NODE_ENV")
	setInt(&cfg.Port, "PORT")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		cfg.AllowedOrigins = splitCSV(raw)
	}

	setString(&cfg.Mongo.URI, "MONGODB_URI")
	setString(&cfg.Mongo.DBName, "MONGODB_DB")

	setString(&cfg.Storage.Provider, "STORAGE_PROVIDER")
	setInt64(&cfg.Storage.MaxUploadMB, "MAX_UPLOAD_MB")
	setString(&cfg.Storage.S3.Region, "AWS_REGION", "AWS_S3_REGION")
	setString(&cfg.Storage.S3.Bucket, "AWS_S3_BUCKET")
	setString(&cfg.Storage.S3.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&cfg.Storage.S3.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setString(&cfg.Storage.S3.CustomDomain, "AWS_S3_CUSTOM_DOMAIN")
	setString(&cfg.Storage.Cloudinary.CloudName, "CLOUDINARY_CLOUD_NAME")
	setString(&cfg.Storage.Cloudinary.APIKey, "CLOUDINARY_API_KEY")
	setString(&cfg.Storage.Cloudinary.APISecret, "CLOUDINARY_API_SECRET")

	if raw := os.Getenv("MAIL_ENABLE"); raw != "" {
		cfg.Mail.Enable = raw == "1" || strings.EqualFold(raw, "true")
	}
	setString(&cfg.Mail.Host, "SMTP_HOST")
	setInt(&cfg.Mail.Port, "SMTP_PORT")
	setString(&cfg.Mail.User, "SMTP_USER")
	setString(&cfg.Mail.Pass, "SMTP_PASS")
	setString(&cfg.Mail.From, "MAIL_FROM")
	setString(&cfg.Mail.NotifyTo, "MAIL_NOTIFY_TO")
	setString(&cfg.Mail.ResendKey, "RESEND_API_KEY")

	setString(&cfg.Chat.OpenAIKey, "OPENAI_API_KEY")
	setString(&cfg.Chat.Model, "OPENAI_MODEL")
	setString(&cfg.Chat.Endpoint, "OPENAI_BASE_URL")

	setString(&cfg.Admin.Username, "ADMIN_USERNAME")
	setString(&cfg.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
}

func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
			return
		}
	}
}

func setInt(dst *int, key string) {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil && v > 0 {
		*dst = v
	}
}

func setInt64(dst *int64, key string) {
	if v, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64); err == nil && v > 0 {
		*dst = v
	}
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MaxUploadBytes returns the upload ceiling in bytes.
func (s StorageConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}
