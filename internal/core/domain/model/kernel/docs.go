// Package kernel contains the shared value objects used by every aggregate:
// identifiers and the identity of the acting party. Kernel types are immutable
// and carry their own validation so aggregates can rely on them blindly.
package kernel
