package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/zjrosen/navdrawer/internal/log"
)

// SetDefaults registers scalar defaults on v. List values are filled in
// after decoding by withDefaults, so a partial list in the file never
// merges with the built-in one.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("brand", d.Brand)
	v.SetDefault("panel_label", d.PanelLabel)
	v.SetDefault("toggle_key", d.ToggleKey)
	v.SetDefault("watch_config", d.WatchConfig)
}

// Decode unmarshals the settings held by v into a Config.
func Decode(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return withDefaults(cfg), nil
}

// Load reads and decodes the config file at path.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Decode(v)
	if err != nil {
		return Config{}, err
	}
	log.Debug(log.CatConfig, "Loaded config", "path", path, "links", len(cfg.Links), "sections", len(cfg.Sections))
	return cfg, nil
}

func withDefaults(cfg Config) Config {
	d := Defaults()
	if len(cfg.Links) == 0 {
		cfg.Links = d.Links
	}
	if cfg.CTA == (LinkConfig{}) {
		cfg.CTA = d.CTA
	}
	if len(cfg.Sections) == 0 {
		cfg.Sections = d.Sections
	}
	return cfg
}
