// Package config defines the format-agnostic environment-descriptor model,
// along with the Loader interface implemented by format-specific loaders.
//
// The `config.Descriptor` is the single source of truth for the resolver
// and runner packages. Concrete loaders, such as for HCL and YAML, are
// provided in separate packages.
package config
