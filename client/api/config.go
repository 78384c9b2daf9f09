package api

import (
	"fmt"

	"github.com/campushub/campus-client/internal/xtime"
)

type Config struct {
	BaseURL string         `toml:"base_url"`
	Timeout xtime.Duration `toml:"timeout"`
	Every   xtime.Duration `toml:"every"`
	Burst   int            `toml:"burst"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n BaseURL: %s\n Timeout: %s\n Every: %s\n Burst: %d",
		c.BaseURL,
		c.Timeout,
		c.Every,
		c.Burst,
	)
}
