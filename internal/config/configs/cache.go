package configs

import "time"

// Cache bounds the read-model cache. Size is the number of cached keys;
// RefetchTimeout caps every background refetch.
type Cache struct {
	Size           int           `env:"SIZE" envDefault:"512"`
	RefetchTimeout time.Duration `env:"REFETCH_TIMEOUT" envDefault:"15s"`
}
