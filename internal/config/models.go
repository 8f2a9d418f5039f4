package config

// Settings represents the entire wizard configuration file. Every field has
// a working default; the wizard never requires the file to exist.
type Settings struct {
	Version    int         `yaml:"version"`
	Tool       string      `yaml:"tool,omitempty"`          // Provisioning tool binary
	Editor     string      `yaml:"editor,omitempty"`        // Editor for generated configs
	DefaultImg string      `yaml:"default_image,omitempty"` // Default system image path
	PreconfDir string      `yaml:"preconf_dir,omitempty"`   // Preconfigured image directory
	ProbeSecs  int         `yaml:"probe_timeout,omitempty"` // Timeout for network probes, seconds
	Partitions *Partitions `yaml:"partitions,omitempty"`
}

// Partitions holds the default partition layout offered by the settings
// editor. Sizes are strings handed verbatim to the provisioning tool.
type Partitions struct {
	ESP        string `yaml:"esp,omitempty"`
	Rootfs     string `yaml:"rootfs,omitempty"`
	Etc        string `yaml:"etc,omitempty"`
	Var        string `yaml:"var,omitempty"`
	Filesystem string `yaml:"filesystem,omitempty"` // "ext4" or "f2fs"
}

// Built-in defaults. The settings editor treats these as the reset target.
const (
	DefaultTool       = "obsidianctl"
	DefaultEditor     = "nano"
	DefaultImagePath  = "/etc/system.sfs"
	DefaultPreconfDir = "/usr/preconf"
	DefaultProbeSecs  = 3

	DefaultESPSize    = "512M"
	DefaultRootfsSize = "5G"
	DefaultEtcSize    = "1G"
	DefaultVarSize    = "5G"
	DefaultFilesystem = "ext4"
)

// NewSettings creates Settings populated with the built-in defaults.
func NewSettings() *Settings {
	return &Settings{
		Version:    1,
		Tool:       DefaultTool,
		Editor:     DefaultEditor,
		DefaultImg: DefaultImagePath,
		PreconfDir: DefaultPreconfDir,
		ProbeSecs:  DefaultProbeSecs,
		Partitions: DefaultPartitions(),
	}
}

// DefaultPartitions returns a fresh copy of the default partition layout.
func DefaultPartitions() *Partitions {
	return &Partitions{
		ESP:        DefaultESPSize,
		Rootfs:     DefaultRootfsSize,
		Etc:        DefaultEtcSize,
		Var:        DefaultVarSize,
		Filesystem: DefaultFilesystem,
	}
}

// normalize fills any blank field with its default so callers never see an
// empty value regardless of what the file on disk contains.
func (s *Settings) normalize() {
	if s.Tool == "" {
		s.Tool = DefaultTool
	}
	if s.Editor == "" {
		s.Editor = DefaultEditor
	}
	if s.DefaultImg == "" {
		s.DefaultImg = DefaultImagePath
	}
	if s.PreconfDir == "" {
		s.PreconfDir = DefaultPreconfDir
	}
	if s.ProbeSecs <= 0 {
		s.ProbeSecs = DefaultProbeSecs
	}
	if s.Partitions == nil {
		s.Partitions = DefaultPartitions()
		return
	}
	def := DefaultPartitions()
	if s.Partitions.ESP == "" {
		s.Partitions.ESP = def.ESP
	}
	if s.Partitions.Rootfs == "" {
		s.Partitions.Rootfs = def.Rootfs
	}
	if s.Partitions.Etc == "" {
		s.Partitions.Etc = def.Etc
	}
	if s.Partitions.Var == "" {
		s.Partitions.Var = def.Var
	}
	if s.Partitions.Filesystem == "" {
		s.Partitions.Filesystem = def.Filesystem
	}
}
