// Package config defines the YAML configuration of the inspection tooling
// and helpers to load and validate it.
package config
