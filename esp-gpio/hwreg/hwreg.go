// Package hwreg provides the 4-byte register cell the gpio core is built on.
// On microcontroller builds the cell wraps a volatile hardware register; on
// hosted builds it is plain memory, so register programming logic can run
// under go test against RAM-backed register files.
package hwreg
