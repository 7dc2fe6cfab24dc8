package suggestion

// Tag is the one-byte discriminator written at the head of every encoded
// suggestion.
type Tag uint8

const (
	TagNetwork  Tag = 1
	TagGNSS     Tag = 2
	TagExternal Tag = 3
)

// Kind identifies a concrete suggestion type at compile time. Implementations
// are empty marker structs; Helper reads their methods off the zero value.
type Kind interface {
	Tag() Tag
	// TypeName names the concrete type in String output and errors.
	TypeName() string
	// Label names the source in usage text.
	Label() string
}

// Network marks suggestions from a network time source such as NTP.
type Network struct{}

func (Network) Tag() Tag         { return TagNetwork }
func (Network) TypeName() string { return "NetworkTimeSuggestion" }
func (Network) Label() string    { return "Network" }

// GNSS marks suggestions from a satellite navigation receiver.
type GNSS struct{}

func (GNSS) Tag() Tag         { return TagGNSS }
func (GNSS) TypeName() string { return "GnssTimeSuggestion" }
func (GNSS) Label() string    { return "GNSS" }

// External marks suggestions pushed by an external time authority.
type External struct{}

func (External) Tag() Tag         { return TagExternal }
func (External) TypeName() string { return "ExternalTimeSuggestion" }
func (External) Label() string    { return "External" }

func kindOf[K Kind]() K {
	var k K
	return k
}
