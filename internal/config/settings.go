package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences. Credentials are never stored here.
const (
	KeyLanguage           = "app_language"
	KeyRequestTimeoutSec  = "request_timeout_seconds"
	KeyMaxParallel        = "max_parallel_submissions"
	KeyShowStatusMessages = "show_status_messages"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultRequestTimeoutSec  = 10
	DefaultMaxParallel        = 1
	DefaultShowStatusMessages = true
)

// Limits
const (
	MinRequestTimeoutSec = 1
	MaxRequestTimeoutSec = 120
	MaxParallelLimit     = 10
)

// Settings manages persisted, non-secret user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetRequestTimeout returns the per-request timeout for card creation
func (s *Settings) GetRequestTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyRequestTimeoutSec)
	if value <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeoutSec)
		value = DefaultRequestTimeoutSec
	}
	return time.Duration(value) * time.Second
}

// SetRequestTimeoutSeconds sets the per-request timeout
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeoutSec {
		seconds = MinRequestTimeoutSec
	}
	if seconds > MaxRequestTimeoutSec {
		seconds = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeoutSec, seconds)
}

// GetMaxParallelSubmissions returns how many card requests may run at once
func (s *Settings) GetMaxParallelSubmissions() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelSubmissions(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelSubmissions sets the maximum number of parallel submissions
func (s *Settings) SetMaxParallelSubmissions(count int) {
	if count < 1 {
		count = 1
	}
	if count > MaxParallelLimit {
		count = MaxParallelLimit
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetShowStatusMessages returns whether submission outcomes are shown in the window
func (s *Settings) GetShowStatusMessages() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowStatusMessages, DefaultShowStatusMessages)
}

// SetShowStatusMessages sets whether submission outcomes are shown in the window
func (s *Settings) SetShowStatusMessages(show bool) {
	s.app.Preferences().SetBool(KeyShowStatusMessages, show)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
