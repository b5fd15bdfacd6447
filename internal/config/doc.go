// Package config defines the application's configuration structure and
// loading. Configuration is constructed once at startup and passed into
// components at construction time; it is never mutated afterwards.
package config
