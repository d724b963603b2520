package config

// DefaultMaxFiles caps the inventory when no config overrides it.
const DefaultMaxFiles = 10000

// DefaultMaxFileSizeBytes caps per-file reads when no config overrides it.
const DefaultMaxFileSizeBytes = 1 << 20 // 1 MiB

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// the config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			MaxFiles:         DefaultMaxFiles,
			MaxFileSizeBytes: DefaultMaxFileSizeBytes,
			IgnoreFiles:      []string{".depscopeignore", ".gitignore"},
			Workers:          0,
		},
		Groups: GroupsConfig{
			Enabled: true,
		},
		Output: OutputConfig{
			DefaultFormat: "yaml",
		},
		Cache: CacheConfig{
			Enabled: false,
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}
	result.Scan = mergeScanConfig(loaded.Scan, defaults.Scan)
	result.Groups = mergeGroupsConfig(loaded.Groups, defaults.Groups)
	result.Output = mergeOutputConfig(loaded.Output, defaults.Output)
	result.Cache = mergeCacheConfig(loaded.Cache, defaults.Cache)
	return result
}

func mergeScanConfig(loaded, defaults ScanConfig) ScanConfig {
	result := ScanConfig{}

	if loaded.MaxFiles != 0 {
		result.MaxFiles = loaded.MaxFiles
	} else {
		result.MaxFiles = defaults.MaxFiles
	}

	if loaded.MaxFileSizeBytes != 0 {
		result.MaxFileSizeBytes = loaded.MaxFileSizeBytes
	} else {
		result.MaxFileSizeBytes = defaults.MaxFileSizeBytes
	}

	if len(loaded.IgnoreFiles) > 0 {
		result.IgnoreFiles = loaded.IgnoreFiles
	} else {
		result.IgnoreFiles = defaults.IgnoreFiles
	}

	// Workers: zero is a meaningful value (one per CPU), so loaded wins
	// whenever the user set anything at all.
	if loaded.Workers != 0 {
		result.Workers = loaded.Workers
	} else {
		result.Workers = defaults.Workers
	}

	return result
}

func mergeGroupsConfig(loaded, defaults GroupsConfig) GroupsConfig {
	// YAML unmarshals a missing bool as false; enabled-by-default settings
	// therefore only honor an explicit false when the default is false too.
	result := GroupsConfig{}
	result.Enabled = loaded.Enabled || defaults.Enabled
	return result
}

func mergeOutputConfig(loaded, defaults OutputConfig) OutputConfig {
	result := OutputConfig{}
	if loaded.DefaultFormat != "" {
		result.DefaultFormat = loaded.DefaultFormat
	} else {
		result.DefaultFormat = defaults.DefaultFormat
	}
	return result
}

func mergeCacheConfig(loaded, defaults CacheConfig) CacheConfig {
	result := CacheConfig{}
	result.Enabled = loaded.Enabled || defaults.Enabled
	return result
}
