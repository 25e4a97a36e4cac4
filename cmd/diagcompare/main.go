// diagcompare - Playback Latency Comparison Tool
//
// diagcompare reads two diagnostics captures, a baseline and a candidate,
// and prints the average playback latency per operation side by side.
package main

import (
	"os"

	"github.com/lunara-app/diagcompare/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
