package config

// DefaultFile is the conventional config file name.
const DefaultFile = ".hamsternav.yml"

// DefaultConfig returns a Config with sensible defaults: CSV data under
// ./data, pinyin search enabled, a 50-entry search cache, and orphaned
// nodes attached to the root so nothing is silently lost.
func DefaultConfig() *Config {
	return &Config{
		DataDir:        "data",
		CategoryFiles:  []string{"categories*.csv"},
		SiteFiles:      []string{"sites*.csv"},
		BookmarkFiles:  []string{"bookmarks*.csv"},
		DanglingPolicy: DanglingAttachRoot,
		CacheSize:      50,
		Pinyin:         true,
		Server: ServerConfig{
			Port: 8090,
		},
	}
}
