package app

import (
	"fmt"

	"github.com/iw2rmb/vegetor"
)

const welcomeBanner = `vegetor %s

a small terminal text editor

any key   start editing
ctrl+s    save
ctrl+q    quit`

// DefaultWelcome returns the banner shown when no welcome file is configured.
func DefaultWelcome() string {
	return fmt.Sprintf(welcomeBanner, vegetor.VersionTag())
}
