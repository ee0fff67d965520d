package config

// DanglingPolicy names the handling of nodes whose parent id does not
// resolve. Values mirror nav.DanglingPolicy.
type DanglingPolicy string

const (
	DanglingAttachRoot DanglingPolicy = "attach-root"
	DanglingDrop       DanglingPolicy = "drop"
)

// Config is the top-level hamsternav configuration, corresponding to
// .hamsternav.yml.
type Config struct {
	DataDir        string         `yaml:"data_dir" koanf:"data_dir"`
	CategoryFiles  []string       `yaml:"category_files" koanf:"category_files"`
	SiteFiles      []string       `yaml:"site_files" koanf:"site_files"`
	BookmarkFiles  []string       `yaml:"bookmark_files" koanf:"bookmark_files"`
	DanglingPolicy DanglingPolicy `yaml:"dangling_policy" koanf:"dangling_policy"`
	CacheSize      int            `yaml:"cache_size" koanf:"cache_size"`
	Pinyin         bool           `yaml:"pinyin" koanf:"pinyin"`
	Server         ServerConfig   `yaml:"server" koanf:"server"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}
