// Package suggestion models time suggestions: candidate Unix epoch times,
// each anchored to a monotonic reference reading, reported by one time source
// to whatever arbitrates the system clock.
//
// Every concrete suggestion type is a thin shell around Helper, which fixes
// the semantics all of them share. Equality and hashing consider the
// timestamped value only; debug info is carried along for logs.
package suggestion

import (
	"fmt"
	"io"
)

// Suggestion is satisfied by every concrete suggestion type.
type Suggestion interface {
	Tag() Tag
	UnixEpochTime() TimestampedValue[int64]
	DebugInfo() []string
	AddDebugInfo(infos ...string)
	Hash() uint64
	String() string
	MarshalBinary() ([]byte, error)
	WriteTo(w io.Writer) (int64, error)
}

// Decode reads the kind tag of data and decodes it into the matching
// concrete suggestion type.
func Decode(data []byte) (Suggestion, error) {
	tag, err := PeekTag(data)
	if err != nil {
		return nil, err
	}

	switch tag {
	case TagNetwork:
		var s NetworkTimeSuggestion
		if err := s.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return &s, nil
	case TagGNSS:
		var s GNSSTimeSuggestion
		if err := s.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return &s, nil
	case TagExternal:
		var s ExternalTimeSuggestion
		if err := s.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: unknown tag %d", ErrTypeMismatch, tag)
	}
}

// Parse builds a suggestion of the kind named by label ("network", "gnss" or
// "external") from command-line tokens.
func Parse(label string, clk ReferenceClock, args []string) (Suggestion, error) {
	var (
		s   Suggestion
		err error
	)
	switch label {
	case "network":
		s, err = ParseNetworkTimeSuggestion(clk, args)
	case "gnss":
		s, err = ParseGNSSTimeSuggestion(clk, args)
	case "external":
		s, err = ParseExternalTimeSuggestion(clk, args)
	default:
		return nil, fmt.Errorf("%w: unknown suggestion type %q", ErrInvalidArgument, label)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// PrintUsageFor writes the command-line options of the suggestion kind named
// by label.
func PrintUsageFor(label string, w io.Writer) error {
	switch label {
	case "network":
		return PrintNetworkTimeSuggestionUsage(w)
	case "gnss":
		return PrintGNSSTimeSuggestionUsage(w)
	case "external":
		return PrintExternalTimeSuggestionUsage(w)
	default:
		return fmt.Errorf("%w: unknown suggestion type %q", ErrInvalidArgument, label)
	}
}

// Labels lists the suggestion kinds accepted by Parse and PrintUsageFor.
func Labels() []string {
	return []string{"network", "gnss", "external"}
}
