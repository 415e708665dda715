package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contiene le impostazioni runtime per career-svc.
type Config struct {
	GRPCAddr       string        `env:"GRPC_ADDR" envDefault:":50054"`
	MetricsAddr    string        `env:"METRICS_ADDR" envDefault:":9094"`
	JWTSecret      string        `env:"JWT_SECRET,required,notEmpty"`
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	LockTTL        time.Duration `env:"LOCK_TTL" envDefault:"5s"`
	LockRetries    int           `env:"LOCK_RETRIES" envDefault:"3"`
	LockBackoff    time.Duration `env:"LOCK_BACKOFF" envDefault:"100ms"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START" envDefault:"false"`

	DB    DBConfig
	DBDSN string
}

// LoadDotenv carica le variabili da .env se presente (solo per dev).
// Se manca il file si continua con le env gia' presenti.
func LoadDotenv(logger *slog.Logger, fallbackPath string) {
	envPath := os.Getenv("GO_DOTENV_PATH")
	if envPath == "" {
		envPath = fallbackPath
	}
	if err := godotenv.Overload(envPath); err != nil {
		logger.Warn("impossibile caricare .env", "path", envPath, "error", err)
		return
	}
	logger.Info(".env caricato", "path", envPath)
}

// DBConfig raccoglie la connessione Postgres: DB_DSN oppure le parti DB_*.
type DBConfig struct {
	DSN      string `env:"DB_DSN"`
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"require"`
}

// Load legge le variabili d'ambiente con default minimi.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDSN = cfg.DB.URL()
	return cfg, nil
}

// LoadDB legge solo la parte database; la usano i tool che non servono gRPC.
func LoadDB() (DBConfig, error) {
	var cfg DBConfig
	if err := env.Parse(&cfg); err != nil {
		return DBConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// URL ritorna DB_DSN se presente, altrimenti compone la DSN dalle parti
// con utente e password escapati. "" se mancano host, utente o nome DB.
func (c DBConfig) URL() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.Host == "" || c.User == "" || c.Name == "" {
		return ""
	}
	port := c.Port
	if port == "" {
		port = "5432"
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	return u.String()
}
