package suggestion

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

const (
	flagUnixEpochTime = "unix_epoch_time"
	flagReferenceTime = "reference_time"
)

// millisValue is a pflag.Value that only accepts base-10 integers, so a
// leading zero never switches to octal and prefixes like 0x are rejected.
type millisValue int64

func (v *millisValue) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*v = millisValue(n)
	return nil
}

func (v *millisValue) String() string { return strconv.FormatInt(int64(*v), 10) }

func (v *millisValue) Type() string { return "int64" }

func newFlagSet[K Kind](unixEpochMillis, referenceMillis *int64) *pflag.FlagSet {
	fs := pflag.NewFlagSet(kindOf[K]().TypeName(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.Var((*millisValue)(unixEpochMillis), flagUnixEpochTime,
		"the Unix epoch time in `millis`")
	fs.Var((*millisValue)(referenceMillis), flagReferenceTime,
		"the reference clock reading in `millis` when the Unix epoch time was read (default: time of parsing)")
	return fs
}

// ParseArgs builds a Helper from command-line tokens. --unix_epoch_time is
// required; unless --reference_time is given the reference time is read from
// clk once parsing has succeeded. Any unknown option, missing or malformed
// value, or leftover token fails with ErrInvalidArgument.
func ParseArgs[K Kind](clk ReferenceClock, args []string) (*Helper[K], error) {
	name := kindOf[K]().TypeName()

	var unixEpochMillis, referenceMillis int64
	fs := newFlagSet[K](&unixEpochMillis, &referenceMillis)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, name, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s: unexpected argument %q", ErrInvalidArgument, name, fs.Arg(0))
	}
	if !fs.Changed(flagUnixEpochTime) {
		return nil, fmt.Errorf("%w: %s: --%s is required", ErrInvalidArgument, name, flagUnixEpochTime)
	}

	var referenceTime ReferenceTime
	switch {
	case fs.Changed(flagReferenceTime):
		if referenceMillis > math.MaxInt64/int64(time.Millisecond) || referenceMillis < math.MinInt64/int64(time.Millisecond) {
			return nil, fmt.Errorf("%w: %s: --%s %d out of range", ErrInvalidArgument, name, flagReferenceTime, referenceMillis)
		}
		referenceTime = time.Duration(referenceMillis) * time.Millisecond
	case clk == nil:
		return nil, fmt.Errorf("%w: %s: no reference clock", ErrInvalidArgument, name)
	default:
		referenceTime = clk.Elapsed()
	}

	return NewHelper[K](UnixEpochTime(referenceTime, unixEpochMillis))
}

// PrintUsage writes the options understood by ParseArgs for kind K.
func PrintUsage[K Kind](w io.Writer) error {
	k := kindOf[K]()

	var unixEpochMillis, referenceMillis int64
	fs := newFlagSet[K](&unixEpochMillis, &referenceMillis)

	_, err := fmt.Fprintf(w, "%s suggestion options:\n%s\nSee %s for more information.\n",
		k.Label(), fs.FlagUsages(), k.TypeName())
	return err
}
