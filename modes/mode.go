package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// ModeDevelopment is used by tests: no config files are read from the host.
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}
