// Package catalog models the external package source the resolver queries.
//
// A Source hands out immutable point-in-time Snapshots of its contents, so
// every step of one resolution observes a single consistent view even while
// the backing catalog is being refreshed. Backends (in-memory, local file,
// HTTP) are registered per URI scheme in a Registry.
package catalog
