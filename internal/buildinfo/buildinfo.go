// Package buildinfo is filled in at link time with -ldflags "-X ...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("starfield %s (commit=%s, date=%s)", Version, Commit, Date)
}
