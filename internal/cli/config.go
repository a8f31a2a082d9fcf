package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// envBindings maps flag names to the environment variables that override
// their defaults.
var envBindings = map[string]string{
	"colours":  "SWATCH_COLOURS",
	"strategy": "SWATCH_STRATEGY",
	"ratio":    "SWATCH_RATIO",
	"format":   "SWATCH_FORMAT",
}

// applyEnvOverrides sets flags from the environment. Flags given explicitly
// on the command line win.
func applyEnvOverrides(fs *pflag.FlagSet) error {
	for name, env := range envBindings {
		flag := fs.Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}
