// Package core holds the small abstractions shared across packages,
// most notably the filesystem seam used to read versions files.
package core
