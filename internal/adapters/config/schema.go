package config

// SupportedVersion is the only stagehand.yaml schema version understood by the loader.
const SupportedVersion = "1"

// DefaultFileName is the configuration file looked up when no path is given.
const DefaultFileName = "stagehand.yaml"

// Stagefile is the on-disk shape of stagehand.yaml.
type Stagefile struct {
	Version string   `yaml:"version"`
	Build   string   `yaml:"build"`
	Hosts   []string `yaml:"hosts"`
	Targets []string `yaml:"targets"`
	Stage   *uint32  `yaml:"stage"`
}
