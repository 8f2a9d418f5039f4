// Package config provides user configuration management for the wizard.
//
// This package manages a YAML-based configuration file that stores overrides
// for the provisioning tool binary, the editor used for generated image
// configs, the image search locations, and the default partition layout. The
// configuration follows OS-specific conventions for storage location:
//   - Linux: $XDG_CONFIG_HOME/obsidian-wizard/config.yaml or
//     $HOME/.config/obsidian-wizard/config.yaml
//   - macOS: $HOME/.config/obsidian-wizard/config.yaml
//   - Windows: %LOCALAPPDATA%\obsidian-wizard\config.yaml
//
// The file is optional. A missing file yields built-in defaults, and blank
// fields in an existing file are filled with those same defaults, so callers
// never see an empty value.
//
// # Thread Safety
//
// Load uses sync.Once for safe initialization; file writes are serialized by
// a mutex and performed atomically via a temp-file rename.
package config
