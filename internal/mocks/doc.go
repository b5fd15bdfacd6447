// Package mocks provides hand-written test doubles for the store and
// auth interfaces. Each mock exposes function fields for per-test
// behavior overrides and a small in-memory default implementation.
package mocks
