package suggestion

import "io"

var _ Suggestion = (*GNSSTimeSuggestion)(nil)

// GNSSTimeSuggestion is a time signal from a GNSS receiver.
//
// The zero value is only usable as an UnmarshalBinary target; String and
// Hash tolerate it, everything else needs a constructed suggestion.
type GNSSTimeSuggestion struct {
	helper *Helper[GNSS]
}

// NewGNSSTimeSuggestion fails with ErrInvalidArgument when unixEpochTime is absent.
func NewGNSSTimeSuggestion(unixEpochTime TimestampedValue[int64]) (*GNSSTimeSuggestion, error) {
	h, err := NewHelper[GNSS](unixEpochTime)
	if err != nil {
		return nil, err
	}
	return &GNSSTimeSuggestion{helper: h}, nil
}

func (s *GNSSTimeSuggestion) Tag() Tag { return TagGNSS }

func (s *GNSSTimeSuggestion) UnixEpochTime() TimestampedValue[int64] {
	return s.helper.UnixEpochTime()
}

func (s *GNSSTimeSuggestion) DebugInfo() []string {
	return s.helper.DebugInfo()
}

// AddDebugInfo associates information with the suggestion that is useful for
// logging. It shows up in String but not in Equal or Hash.
func (s *GNSSTimeSuggestion) AddDebugInfo(infos ...string) {
	s.helper.AddDebugInfo(infos...)
}

func (s *GNSSTimeSuggestion) Equal(other *GNSSTimeSuggestion) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.helper.Equal(other.helper)
}

func (s *GNSSTimeSuggestion) Hash() uint64 {
	if s.helper == nil {
		return 0
	}
	return s.helper.Hash()
}

func (s *GNSSTimeSuggestion) String() string {
	if s.helper == nil {
		return GNSS{}.TypeName() + "{}"
	}
	return s.helper.String()
}

func (s *GNSSTimeSuggestion) MarshalBinary() ([]byte, error) {
	return s.helper.MarshalBinary()
}

// UnmarshalBinary replaces s with the suggestion encoded in data.
func (s *GNSSTimeSuggestion) UnmarshalBinary(data []byte) error {
	h, err := UnmarshalHelper[GNSS](data)
	if err != nil {
		return err
	}
	s.helper = h
	return nil
}

func (s *GNSSTimeSuggestion) WriteTo(w io.Writer) (int64, error) {
	return s.helper.WriteTo(w)
}

func ReadGNSSTimeSuggestion(r io.Reader) (*GNSSTimeSuggestion, error) {
	h, err := ReadHelper[GNSS](r)
	if err != nil {
		return nil, err
	}
	return &GNSSTimeSuggestion{helper: h}, nil
}

func ParseGNSSTimeSuggestion(clk ReferenceClock, args []string) (*GNSSTimeSuggestion, error) {
	h, err := ParseArgs[GNSS](clk, args)
	if err != nil {
		return nil, err
	}
	return &GNSSTimeSuggestion{helper: h}, nil
}

func PrintGNSSTimeSuggestionUsage(w io.Writer) error {
	return PrintUsage[GNSS](w)
}
