// Package infra contains technical adapters: event stores, metrics
// exporters, error monitoring and logging. These packages depend only on
// the interfaces defined in the core packages.
package infra
