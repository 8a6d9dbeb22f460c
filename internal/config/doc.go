// Package config provides user configuration management for the wordfinder client.
//
// Settings live in a YAML file in the platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/wordfinder/config.yaml or $HOME/.config/wordfinder/config.yaml
//   - macOS: $HOME/.config/wordfinder/config.yaml
//   - Windows: %LOCALAPPDATA%\wordfinder\config.yaml
//
// # Precedence
//
// Resolve combines every source, highest first:
//
//  1. command-line flags (Overrides)
//  2. WORDFINDER_* environment variables, including those loaded from .env
//  3. the config file
//  4. built-in defaults
//
// # Usage Example
//
//	settings, err := config.Resolve("", config.Overrides{Endpoint: flagEndpoint})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := generator.NewClient(settings.Endpoint)
//	client.SetTimeout(settings.Timeout())
//
// # Thread Safety
//
// File operations are protected by a mutex and Save writes atomically.
package config
