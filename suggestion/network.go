package suggestion

import "io"

var _ Suggestion = (*NetworkTimeSuggestion)(nil)

// NetworkTimeSuggestion is a time signal from a network time source like NTP.
//
// The zero value is only usable as an UnmarshalBinary target; String and
// Hash tolerate it, everything else needs a constructed suggestion.
type NetworkTimeSuggestion struct {
	helper *Helper[Network]
}

// NewNetworkTimeSuggestion fails with ErrInvalidArgument when unixEpochTime is absent.
func NewNetworkTimeSuggestion(unixEpochTime TimestampedValue[int64]) (*NetworkTimeSuggestion, error) {
	h, err := NewHelper[Network](unixEpochTime)
	if err != nil {
		return nil, err
	}
	return &NetworkTimeSuggestion{helper: h}, nil
}

func (s *NetworkTimeSuggestion) Tag() Tag { return TagNetwork }

func (s *NetworkTimeSuggestion) UnixEpochTime() TimestampedValue[int64] {
	return s.helper.UnixEpochTime()
}

func (s *NetworkTimeSuggestion) DebugInfo() []string {
	return s.helper.DebugInfo()
}

// AddDebugInfo associates information with the suggestion that is useful for
// logging. It shows up in String but not in Equal or Hash.
func (s *NetworkTimeSuggestion) AddDebugInfo(infos ...string) {
	s.helper.AddDebugInfo(infos...)
}

func (s *NetworkTimeSuggestion) Equal(other *NetworkTimeSuggestion) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.helper.Equal(other.helper)
}

func (s *NetworkTimeSuggestion) Hash() uint64 {
	if s.helper == nil {
		return 0
	}
	return s.helper.Hash()
}

func (s *NetworkTimeSuggestion) String() string {
	if s.helper == nil {
		return Network{}.TypeName() + "{}"
	}
	return s.helper.String()
}

func (s *NetworkTimeSuggestion) MarshalBinary() ([]byte, error) {
	return s.helper.MarshalBinary()
}

// UnmarshalBinary replaces s with the suggestion encoded in data.
func (s *NetworkTimeSuggestion) UnmarshalBinary(data []byte) error {
	h, err := UnmarshalHelper[Network](data)
	if err != nil {
		return err
	}
	s.helper = h
	return nil
}

func (s *NetworkTimeSuggestion) WriteTo(w io.Writer) (int64, error) {
	return s.helper.WriteTo(w)
}

func ReadNetworkTimeSuggestion(r io.Reader) (*NetworkTimeSuggestion, error) {
	h, err := ReadHelper[Network](r)
	if err != nil {
		return nil, err
	}
	return &NetworkTimeSuggestion{helper: h}, nil
}

// ParseNetworkTimeSuggestion builds a suggestion from command-line tokens, see ParseArgs.
func ParseNetworkTimeSuggestion(clk ReferenceClock, args []string) (*NetworkTimeSuggestion, error) {
	h, err := ParseArgs[Network](clk, args)
	if err != nil {
		return nil, err
	}
	return &NetworkTimeSuggestion{helper: h}, nil
}

func PrintNetworkTimeSuggestionUsage(w io.Writer) error {
	return PrintUsage[Network](w)
}
