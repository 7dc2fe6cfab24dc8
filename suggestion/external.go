package suggestion

import "io"

var _ Suggestion = (*ExternalTimeSuggestion)(nil)

// ExternalTimeSuggestion is a time signal pushed by a trusted external
// authority, for example a companion device or a vehicle head unit.
//
// The zero value is only usable as an UnmarshalBinary target; String and
// Hash tolerate it, everything else needs a constructed suggestion.
type ExternalTimeSuggestion struct {
	helper *Helper[External]
}

// NewExternalTimeSuggestion fails with ErrInvalidArgument when unixEpochTime is absent.
func NewExternalTimeSuggestion(unixEpochTime TimestampedValue[int64]) (*ExternalTimeSuggestion, error) {
	h, err := NewHelper[External](unixEpochTime)
	if err != nil {
		return nil, err
	}
	return &ExternalTimeSuggestion{helper: h}, nil
}

func (s *ExternalTimeSuggestion) Tag() Tag { return TagExternal }

func (s *ExternalTimeSuggestion) UnixEpochTime() TimestampedValue[int64] {
	return s.helper.UnixEpochTime()
}

func (s *ExternalTimeSuggestion) DebugInfo() []string {
	return s.helper.DebugInfo()
}

func (s *ExternalTimeSuggestion) AddDebugInfo(infos ...string) {
	s.helper.AddDebugInfo(infos...)
}

func (s *ExternalTimeSuggestion) Equal(other *ExternalTimeSuggestion) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.helper.Equal(other.helper)
}

func (s *ExternalTimeSuggestion) Hash() uint64 {
	if s.helper == nil {
		return 0
	}
	return s.helper.Hash()
}

func (s *ExternalTimeSuggestion) String() string {
	if s.helper == nil {
		return External{}.TypeName() + "{}"
	}
	return s.helper.String()
}

func (s *ExternalTimeSuggestion) MarshalBinary() ([]byte, error) {
	return s.helper.MarshalBinary()
}

// UnmarshalBinary replaces s with the suggestion encoded in data.
func (s *ExternalTimeSuggestion) UnmarshalBinary(data []byte) error {
	h, err := UnmarshalHelper[External](data)
	if err != nil {
		return err
	}
	s.helper = h
	return nil
}

func (s *ExternalTimeSuggestion) WriteTo(w io.Writer) (int64, error) {
	return s.helper.WriteTo(w)
}

func ReadExternalTimeSuggestion(r io.Reader) (*ExternalTimeSuggestion, error) {
	h, err := ReadHelper[External](r)
	if err != nil {
		return nil, err
	}
	return &ExternalTimeSuggestion{helper: h}, nil
}

// ParseExternalTimeSuggestion builds a suggestion from command-line tokens, see ParseArgs.
func ParseExternalTimeSuggestion(clk ReferenceClock, args []string) (*ExternalTimeSuggestion, error) {
	h, err := ParseArgs[External](clk, args)
	if err != nil {
		return nil, err
	}
	return &ExternalTimeSuggestion{helper: h}, nil
}

func PrintExternalTimeSuggestionUsage(w io.Writer) error {
	return PrintUsage[External](w)
}
