package domain

// Phase is a state of the single-target build state machine.
type Phase string

const (
	// PhaseInit is the state before anything has been read or written.
	PhaseInit Phase = "init"
	// PhaseManifestRead means the crate's package name is known.
	PhaseManifestRead Phase = "manifest-read"
	// PhaseConfigWritten means metadata and vendor configuration are in place.
	PhaseConfigWritten Phase = "config-written"
	// PhaseBuilding is the main toolchain invocation.
	PhaseBuilding Phase = "building"
	// PhaseSucceeded means the main build passed and its depfile was normalized.
	PhaseSucceeded Phase = "succeeded"
	// PhaseFailed means the main build exited non-zero.
	PhaseFailed Phase = "failed"
	// PhaseTestBuilding is the no-run test build invocation.
	PhaseTestBuilding Phase = "test-building"
	// PhaseTestSucceeded means the test binary was located and linked.
	PhaseTestSucceeded Phase = "test-succeeded"
	// PhaseTestFailed means the test build exited non-zero.
	PhaseTestFailed Phase = "test-failed"
)

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// IsFailure reports whether the phase is one of the failed end states.
func (p Phase) IsFailure() bool {
	switch p {
	case PhaseFailed, PhaseTestFailed:
		return true
	default:
		return false
	}
}

// Next returns the phase that follows p when the step for p succeeds.
// Terminal and failure phases return themselves.
func (p Phase) Next(withTests bool) Phase {
	switch p {
	case PhaseInit:
		return PhaseManifestRead
	case PhaseManifestRead:
		return PhaseConfigWritten
	case PhaseConfigWritten:
		return PhaseBuilding
	case PhaseBuilding:
		return PhaseSucceeded
	case PhaseSucceeded:
		if withTests {
			return PhaseTestBuilding
		}
		return PhaseSucceeded
	case PhaseTestBuilding:
		return PhaseTestSucceeded
	default:
		return p
	}
}

// Fail returns the failure state reached when the step for p exits non-zero.
func (p Phase) Fail() Phase {
	switch p {
	case PhaseBuilding:
		return PhaseFailed
	case PhaseTestBuilding:
		return PhaseTestFailed
	default:
		return p
	}
}
