package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/nguyenvanduocit/duocnv/internal/app"
	"github.com/nguyenvanduocit/duocnv/internal/profile"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// UsageError is returned when the command line cannot be parsed. Usage holds
// the flag summary the parser produced.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// IsHelp reports whether err is a request for -h or -help.
func IsHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth        = "DUOCNV_WIDTH"
	envHeight       = "DUOCNV_HEIGHT"
	envShowFooter   = "DUOCNV_FOOTER"
	envTrace        = "DUOCNV_TRACE"
	envLogFile      = "DUOCNV_LOG_FILE"
	envProfileURL   = "DUOCNV_PROFILE_URL"
	envProfileFile  = "DUOCNV_PROFILE_FILE"
	envFetchTimeout = "DUOCNV_FETCH_TIMEOUT"
	envNoBrowser    = "DUOCNV_NO_BROWSER"
)

// DotenvFile is read from the working directory when present.
const DotenvFile = ".env"

// Load parses configuration from CLI arguments, the environment, and an
// optional .env file. The real environment wins over .env entries.
func Load() (Config, error) {
	dotenv, err := ReadDotenv(DotenvFile)
	if err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], append(dotenv, os.Environ()...))
}

// ReadDotenv returns the entries of path as KEY=value pairs. A missing file
// yields no entries.
func ReadDotenv(path string) ([]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	entries := make([]string, 0, len(values))
	for k, v := range values {
		entries = append(entries, k+"="+v)
	}
	return entries, nil
}

// LoadArgs allows tests to supply specific args/environment. Later environ
// entries override earlier ones.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	var usage strings.Builder
	fs := flag.NewFlagSet("duocnv", flag.ContinueOnError)
	fs.SetOutput(&usage)

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint bar")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, "duocnv.log"), "path to the log file")
	profileURL := fs.String("profile-url", envOrDefault(env, envProfileURL, profile.DefaultURL), "remote profile document")
	profileFile := fs.String("profile-file", envOrDefault(env, envProfileFile, ""), "local YAML or JSON profile used instead of the remote one")
	fetchTimeout := fs.Duration("fetch-timeout", envOrDuration(env, envFetchTimeout, 0), "give up on the remote profile after this long (0 waits indefinitely)")
	noBrowser := fs.Bool("no-browser", envOrBool(env, envNoBrowser, false), "log links instead of opening a browser")

	if err := fs.Parse(args); err != nil {
		return Config{}, &UsageError{Err: err, Usage: usage.String()}
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			ProfileURL:   *profileURL,
			ProfileFile:  *profileFile,
			FetchTimeout: *fetchTimeout,
			NoBrowser:    *noBrowser,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
			"profileURL":   *profileURL,
			"profileFile":  *profileFile,
			"fetchTimeout": fetchTimeout.String(),
			"noBrowser":    strconv.FormatBool(*noBrowser),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(os.Stderr, usageErr.Usage)
		}
		if IsHelp(err) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values the flag parser accepts but the program cannot use.
func Validate(cfg Config) error {
	if cfg.App.FetchTimeout < 0 {
		return fmt.Errorf("fetch-timeout must be >= 0 (got %s)", cfg.App.FetchTimeout)
	}
	if cfg.App.ProfileFile == "" {
		u, err := url.Parse(cfg.App.ProfileURL)
		if err != nil {
			return fmt.Errorf("profile-url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("profile-url must be an http(s) URL (got %q)", cfg.App.ProfileURL)
		}
	}
	return nil
}
