// Command sbbviewer plots channels of SBB sensor-log files in the terminal.
//
// Usage:
//
//	sbbviewer [flags] [file.sbb]
//	sbbviewer info [flags] file.sbb
//
// The channel layout and filter parameters come from settings.json in the
// working directory unless --config names another file.
//
// Examples:
//
//	sbbviewer run42.sbb
//	sbbviewer --config rig.yaml --log-file viewer.log
//	sbbviewer info --filtered run42.sbb
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
