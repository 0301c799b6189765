// Package config holds the presentation options for a run.
//
// It handles:
//   - The output format enumeration, usable directly as a command line flag
//   - Repository defaults stored in the [pull-requests] section of .git/config
package config
