package config // package config loads application configuration from environment variables

import (
    "encoding/hex"
    "errors"
    "log"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
    Env            string         // application environment (e.g. "dev", "prod")
    Port           string         // HTTP port to listen on
    LogLevel       string         // zap level: debug, info, warn, error
    DBUser         string         // database username
    DBPass         string         // database password (optional)
    DBHost         string         // database host address
    DBPort         string         // database port number
    DBName         string         // database name
    JWTSecret      string         // secret used to sign JWTs
    AccessTTLMin   int            // access token time‑to‑live in minutes
    RefreshTTLDays int            // refresh token time‑to‑live in days
    BcryptCost     int            // bcrypt cost for password hashing
    SSNKey         [32]byte       // secretbox key used to seal DJ SSNs
    Location       *time.Location // zone used to read datetime-local form values
    CORSOrigins    []string       // allowed CORS origins
    BootstrapEmail string         // optional first admin account
    BootstrapPass  string
}

// Load reads configuration values from environment variables, after
// merging a .env file when one exists.  Missing required values cause the
// program to exit with a fatal log message.
func Load() Config {
    _ = godotenv.Load() // a missing .env is fine; real env vars win
    return Config{
        Env:            must("APP_ENV"),
        Port:           must("APP_PORT"),
        LogLevel:       getenv("LOG_LEVEL", "info"),
        DBUser:         must("DB_USER"),
        DBPass:         os.Getenv("DB_PASS"),
        DBHost:         must("DB_HOST"),
        DBPort:         must("DB_PORT"),
        DBName:         must("DB_NAME"),
        JWTSecret:      must("JWT_SECRET"),
        AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
        RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
        BcryptCost:     mustInt("BCRYPT_COST"),
        SSNKey:         mustKey("SSN_KEY"),
        Location:       location(getenv("APP_TIMEZONE", "UTC")),
        CORSOrigins:    splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
        BootstrapEmail: strings.ToLower(strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_EMAIL"))),
        BootstrapPass:  os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
    }
}

// must retrieves the value of a required environment variable.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

var errKeyLength = errors.New("key must be 32 bytes (64 hex chars)")

// mustKey reads a 32-byte key encoded as 64 hex characters.
func mustKey(key string) [32]byte {
    var out [32]byte
    k, err := ParseKey(must(key))
    if err != nil {
        log.Fatalf("invalid %s: %v", key, err)
    }
    copy(out[:], k[:])
    return out
}

// ParseKey decodes a hex-encoded 32-byte secretbox key.
func ParseKey(s string) ([32]byte, error) {
    var out [32]byte
    b, err := hex.DecodeString(strings.TrimSpace(s))
    if err != nil {
        return out, err
    }
    if len(b) != len(out) {
        return out, errKeyLength
    }
    copy(out[:], b)
    return out, nil
}

func location(name string) *time.Location {
    loc, err := time.LoadLocation(name)
    if err != nil {
        log.Fatalf("invalid APP_TIMEZONE %q: %v", name, err)
    }
    return loc
}

func splitList(s string) []string {
    var out []string
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
