package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ytget/idea-submitter/internal/model"
)

// Environment variables recognized for startup credentials
const (
	EnvListID = "TRELLO_LIST_ID"
	EnvAPIKey = "TRELLO_API_KEY"
	EnvToken  = "TRELLO_TOKEN"
)

// Config file lookup
const (
	DefaultConfigName = "config"
	DefaultConfigType = "toml"
	DefaultEnvFile    = ".env"
)

// CredentialOption describes one recognized startup option. Every option is required.
type CredentialOption struct {
	Env   string // environment variable, also the .env key
	Key   string // key inside config.toml
	Field string // model.Credentials field name
}

// RecognizedOptions enumerates every credential option the loader reads
var RecognizedOptions = []CredentialOption{
	{Env: EnvListID, Key: "trello.list_id", Field: model.FieldListID},
	{Env: EnvAPIKey, Key: "trello.api_key", Field: model.FieldAPIKey},
	{Env: EnvToken, Key: "trello.token", Field: model.FieldToken},
}

// ErrMissingCredentials matches any *MissingCredentialsError via errors.Is
var ErrMissingCredentials = errors.New("missing required credentials")

// MissingCredentialsError lists the environment variables that had no value
type MissingCredentialsError struct {
	Vars []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingCredentials, strings.Join(e.Vars, ", "))
}

func (e *MissingCredentialsError) Is(target error) bool {
	return target == ErrMissingCredentials
}

// CredentialSource loads credentials at startup
type CredentialSource interface {
	Load() (model.Credentials, error)
}

// EnvSource reads credentials from the process environment, an optional
// config.toml and an optional .env file, in that order of precedence.
type EnvSource struct {
	configDirs []string
	envFile    string
}

// EnvSourceOption configures an EnvSource
type EnvSourceOption func(*EnvSource)

// WithConfigDirs sets the directories searched for config.toml
func WithConfigDirs(dirs ...string) EnvSourceOption {
	return func(s *EnvSource) {
		s.configDirs = dirs
	}
}

// WithEnvFile sets the .env file path; an empty path disables .env loading
func WithEnvFile(path string) EnvSourceOption {
	return func(s *EnvSource) {
		s.envFile = path
	}
}

// NewEnvSource creates a loader that looks in the working directory by default
func NewEnvSource(opts ...EnvSourceOption) *EnvSource {
	s := &EnvSource{
		configDirs: []string{"."},
		envFile:    DefaultEnvFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load resolves all recognized options and validates that none is empty.
// Missing config.toml or .env files are not errors; malformed ones are.
func (s *EnvSource) Load() (model.Credentials, error) {
	v := viper.New()
	v.SetConfigName(DefaultConfigName)
	v.SetConfigType(DefaultConfigType)
	for _, dir := range s.configDirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return model.Credentials{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if s.envFile != "" {
		values, err := godotenv.Read(s.envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return model.Credentials{}, fmt.Errorf("failed to read env file %s: %w", s.envFile, err)
		}
		for _, opt := range RecognizedOptions {
			if value, ok := values[opt.Env]; ok {
				v.SetDefault(opt.Key, value)
			}
		}
	}

	for _, opt := range RecognizedOptions {
		if err := v.BindEnv(opt.Key, opt.Env); err != nil {
			return model.Credentials{}, fmt.Errorf("failed to bind %s: %w", opt.Env, err)
		}
	}

	creds := model.Credentials{
		APIKey: v.GetString("trello.api_key"),
		Token:  v.GetString("trello.token"),
		ListID: v.GetString("trello.list_id"),
	}

	if missing := missingVars(creds); len(missing) > 0 {
		return creds, &MissingCredentialsError{Vars: missing}
	}
	return creds, nil
}

// missingVars maps empty credential fields back to their environment variable names
func missingVars(creds model.Credentials) []string {
	empty := make(map[string]bool)
	for _, field := range creds.MissingFields() {
		empty[field] = true
	}

	var vars []string
	for _, opt := range RecognizedOptions {
		if empty[opt.Field] {
			vars = append(vars, opt.Env)
		}
	}
	return vars
}
