package config

// Config holds the full runtime configuration. It is constructed once at
// process start and passed by reference to every component; nothing reads
// the environment after Load returns.
type Config struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"` // "development" | "production"
	AllowedOrigins []string `yaml:"allowed_origins"`
	JWTSecret      string   `yaml:"jwt_secret"`

	Mongo   MongoConfig   `yaml:"mongo"`
	Storage StorageConfig `yaml:"storage"`
	Mail    MailConfig    `yaml:"mail"`
	Chat    ChatConfig    `yaml:"chat"`
	Admin   AdminConfig   `yaml:"admin"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// StorageConfig selects and configures the object-storage backend.
// Provider is "s3" or "cloudinary"; empty means uploads are disabled.
type StorageConfig struct {
	Provider    string           `yaml:"provider"`
	MaxUploadMB int64            `yaml:"max_upload_mb"`
	S3          S3Config         `yaml:"s3"`
	Cloudinary  CloudinaryConfig `yaml:"cloudinary"`
}

type S3Config struct {
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	CustomDomain    string `yaml:"custom_domain"`
}

type CloudinaryConfig struct {
	CloudName string `yaml:"cloud_name"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

// MailConfig configures the contact notifier. SMTP is the primary
// transport; Resend is tried when SMTP fails and a key is present.
type MailConfig struct {
	Enable    bool   `yaml:"enable"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Pass      string `yaml:"pass"`
	From      string `yaml:"from"`
	NotifyTo  string `yaml:"notify_to"`
	ResendKey string `yaml:"resend_key"`
}

type ChatConfig struct {
	OpenAIKey string `yaml:"openai_key"`
	Model     string `yaml:"model"`
	Endpoint  string `yaml:"endpoint"`
}

// AdminConfig is the single admin account allowed to manage content.
// PasswordHash is a bcrypt hash.
type AdminConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
}

// IsDev reports whether the app runs in development mode.
func (c *Config) IsDev() bool { return c.Env != "production" }
