package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

// NewEnv returns the configuration source of the process. Keys resolve to the
// upper-cased environment variable of the same name on every lookup, so values
// are never cached. GPT_RAW maps to the "raw" key, to line up with the flag.
func NewEnv() (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	if err := v.BindEnv("raw", "GPT_RAW"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	return v, nil
}
