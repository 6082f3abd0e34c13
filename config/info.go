package config

import (
	"github.com/rs/zerolog/log"
)

func writeOutNavigationInfo(cfg *Config) {
	for _, n := range cfg.Navigation {
		log.Logger.Info().
			Object("node", &n).
			Msg("Navigation entry")
	}
	log.Logger.Info().
		Int("nodes", cfg.Navigation.Count()).
		Int("depth", cfg.Navigation.Depth()).
		Int("pages", len(cfg.Navigation.Leaves(""))).
		Msg("Navigation loaded")

	for _, w := range cfg.Warnings {
		log.Logger.Warn().
			Str("config", w.Position).
			Msg(w.Message)
	}
}
