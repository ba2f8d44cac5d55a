package configs

import (
	"net/url"
	"time"
)

// Upstream configures the client of the ads platform REST API. Token is
// sent as a bearer token on every request. Platform is forwarded as the
// "platform" query parameter so one backend can serve several ad networks.
type Upstream struct {
	BaseURL  url.URL       `env:"BASE_URL" envDefault:"http://localhost:9000/api"`
	Token    string        `env:"TOKEN"`
	Platform string        `env:"PLATFORM" envDefault:"tiktok"`
	RetryMax int           `env:"RETRY_MAX" envDefault:"3"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
