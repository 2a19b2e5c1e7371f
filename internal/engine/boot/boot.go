// Released under an MIT license. See LICENSE.

// Package boot provides the prelude that is linked before pita programs.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.pita
var script string //nolint:gochecknoglobals

// Name is the source name reported for errors in the prelude.
const Name = "boot.pita"

// Script returns the prelude source.
func Script() string {
	return script
}
