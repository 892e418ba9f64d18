//go:build compilefail

package gpio

// Never built by default. Building with the tag must fail, reporting
// exactly the error quoted on each line; a clean `go test -tags
// compilefail` means the capability gates are gone.

func compilefailCapabilityGates() {
	p := Pin[InputOnlyAnalog, Unconfigured]{}
	IntoPushPullOutput(p) // InputOnlyAnalog does not satisfy OutputCapable (InputOnlyAnalog missing in InputOutput | InputOutputAnalog)
	Output(p)             // InputOnlyAnalog does not satisfy OutputCapable (InputOnlyAnalog missing in InputOutput | InputOutputAnalog)

	q := Pin[InputOutput, Unconfigured]{}
	IntoAnalog(q) // InputOutput does not satisfy AnalogCapable (InputOutput missing in InputOutputAnalog | InputOnlyAnalog)
}
