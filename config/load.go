package config

import "os"

// Load builds the effective config: defaults, TOML file, .env and
// environment, then flags from args, and validates the result
func Load(args []string) (*Config, error) {
	c := Default()

	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	path, required := DefaultFile, false
	if p, ok := os.LookupEnv(EnvConfig); ok && p != "" {
		path, required = p, true
	}
	if err := LoadFile(&c, path, required); err != nil {
		return nil, err
	}

	if err := ApplyEnv(&c, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := ParseArgs(&c, args); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
