package diag

// Severity ranks a Diagnostic's importance.
type Severity uint8

const (
	// SevInfo is informational only.
	SevInfo Severity = iota
	// SevWarning does not by itself fail compilation.
	SevWarning
	// SevError fails compilation once the pipeline notices it.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}
