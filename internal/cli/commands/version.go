package commands

import (
	"fmt"
)

// Version is set via ldflags at build time.
var Version = "dev"

// versionTemplate renders --version output.
func versionTemplate() string {
	return fmt.Sprintf("diagcompare %s\n", Version)
}
