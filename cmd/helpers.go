package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hamster-nav/hamsternav/internal/config"
	"github.com/hamster-nav/hamsternav/internal/nav"
	"github.com/hamster-nav/hamsternav/internal/pinyin"
	"github.com/hamster-nav/hamsternav/internal/rows"
)

// newManager builds a manager from the configuration and loads all row
// sources from the data directory.
func newManager(cfg *config.Config) (*nav.Manager, error) {
	var tr nav.Transliterator
	if cfg.Pinyin {
		tr = pinyin.New()
	}
	mgr := nav.NewManager(nav.Options{
		Transliterator: tr,
		DanglingPolicy: nav.DanglingPolicy(cfg.DanglingPolicy),
		CacheSize:      cfg.CacheSize,
		Logger:         slog.Default(),
	})
	if err := loadData(mgr, cfg); err != nil {
		return nil, err
	}
	return mgr, nil
}

// loadData reads every configured row source and feeds it to the manager.
// Categories load first so the tree is browsable even if a later source
// fails; a failed load leaves previously loaded data authoritative.
func loadData(mgr *nav.Manager, cfg *config.Config) error {
	categories, err := rows.ReadGlob(cfg.DataDir, cfg.CategoryFiles)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}
	mgr.LoadCategories(categories)

	sites, err := rows.ReadGlob(cfg.DataDir, cfg.SiteFiles)
	if err != nil {
		return fmt.Errorf("loading sites: %w", err)
	}
	mgr.LoadSites(sites)

	combined, err := rows.ReadGlob(cfg.DataDir, cfg.BookmarkFiles)
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}
	mgr.LoadCombined(combined)

	return nil
}

// loadConfig reads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
