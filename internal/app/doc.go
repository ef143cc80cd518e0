// Package app wires the application together: it loads the environment
// descriptor, opens the catalog backend, fans resolution out across the
// target platforms, and renders the aggregate report.
package app
