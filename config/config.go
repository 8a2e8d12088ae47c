package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Auth     Auth
	Announce Announce
}

// Duration wraps time.Duration so TOML values like "30m" decode directly.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Auth configures session token signing and invitation links.
type Auth struct {
	TokenSecret   string
	SessionTTL    Duration
	InviteBaseURL string
}

// Announce configures the optional outbound social announcement for new
// articles. Disabled unless a base URL is set.
type Announce struct {
	BaseURL  string
	Email    string
	Password string
	Timeout  Duration
}

func (a Announce) Enabled() bool {
	return a.BaseURL != ""
}
