//go:build !windows

package buffer

// LineSeparator joins lines in Save.
const LineSeparator = "\n"
