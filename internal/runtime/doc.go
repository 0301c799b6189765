// Package runtime provides the execution context for a git-pull-requests run.
//
// It encapsulates the setup sequence shared by every run: locating the
// repository and loading its configured defaults.
package runtime
