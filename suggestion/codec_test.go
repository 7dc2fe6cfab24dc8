package suggestion

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMarshalBinary_Layout(t *testing.T) {
	s := mustNetwork(t, time.Duration(0x0102), 0x0a0b)
	s.AddDebugInfo("hi")

	got, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	want := "01" + // tag
		"0000000000000102" + // reference time
		"0000000000000a0b" + // value
		"00000001" + // debug count
		"00000002" + "6869" // "hi"
	if hex.EncodeToString(got) != want {
		t.Fatalf("MarshalBinary() = %x, want %s", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	hundred := make([]string, 100)
	for i := range hundred {
		switch i % 3 {
		case 0:
			hundred[i] = ""
		case 1:
			hundred[i] = fmt.Sprintf("entry %d", i)
		default:
			hundred[i] = fmt.Sprintf("サーバー %d ⏱", i)
		}
	}

	tests := []struct {
		name  string
		trail []string
	}{
		{name: "empty", trail: nil},
		{name: "one", trail: []string{"from ntp-server-1"}},
		{name: "two with empty", trail: []string{"", "stratum 2"}},
		{name: "unicode", trail: []string{"zeit ü", "時刻", "🛰"}},
		{name: "hundred", trail: hundred},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Helper[Network]{
				unixEpochTime: UnixEpochTime(-3*time.Hour, 1_700_000_000_000),
				debugInfo:     tt.trail,
			}
			data, err := h.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}

			got, err := UnmarshalHelper[Network](data)
			if err != nil {
				t.Fatalf("UnmarshalHelper() error = %v", err)
			}
			if got.UnixEpochTime() != h.UnixEpochTime() {
				t.Fatalf("UnixEpochTime() = %v, want %v", got.UnixEpochTime(), h.UnixEpochTime())
			}
			assertTrail(t, got.DebugInfo(), tt.trail)
		})
	}
}

func TestWriteToReadFrom(t *testing.T) {
	first := mustNetwork(t, time.Second, 1)
	first.AddDebugInfo("first")
	second := mustNetwork(t, 2*time.Second, 2)

	var buf bytes.Buffer
	for _, s := range []*NetworkTimeSuggestion{first, second} {
		n, err := s.WriteTo(&buf)
		if err != nil {
			t.Fatalf("WriteTo() error = %v", err)
		}
		if n == 0 {
			t.Fatal("WriteTo() wrote 0 bytes")
		}
	}

	for _, want := range []*NetworkTimeSuggestion{first, second} {
		got, err := ReadNetworkTimeSuggestion(&buf)
		if err != nil {
			t.Fatalf("ReadNetworkTimeSuggestion() error = %v", err)
		}
		if !got.Equal(want) {
			t.Fatalf("read %v, want %v", got, want)
		}
		assertTrail(t, got.DebugInfo(), want.DebugInfo())
	}
	if buf.Len() != 0 {
		t.Fatalf("%d bytes left unread", buf.Len())
	}
}

func TestUnmarshal_Truncated(t *testing.T) {
	s := mustNetwork(t, time.Second, 1000)
	s.AddDebugInfo("from ntp-server-1", "ü")
	data, _ := s.MarshalBinary()

	for i := 0; i < len(data); i++ {
		var got NetworkTimeSuggestion
		err := got.UnmarshalBinary(data[:i])
		if !errors.Is(err, ErrMalformedData) {
			t.Fatalf("UnmarshalBinary(data[:%d]) error = %v, want ErrMalformedData", i, err)
		}

		_, err = ReadNetworkTimeSuggestion(bytes.NewReader(data[:i]))
		if !errors.Is(err, ErrMalformedData) {
			t.Fatalf("ReadNetworkTimeSuggestion(data[:%d]) error = %v, want ErrMalformedData", i, err)
		}
	}
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	g, _ := NewGNSSTimeSuggestion(UnixEpochTime(time.Second, 1000))
	data, _ := g.MarshalBinary()

	var n NetworkTimeSuggestion
	if err := n.UnmarshalBinary(data); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("UnmarshalBinary() error = %v, want ErrTypeMismatch", err)
	}
	if _, err := ReadExternalTimeSuggestion(bytes.NewReader(data)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("ReadExternalTimeSuggestion() error = %v, want ErrTypeMismatch", err)
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	valid, _ := mustNetwork(t, time.Second, 1000).MarshalBinary()

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "trailing bytes",
			data: append(append([]byte{}, valid...), 0x00),
		},
		{
			name: "invalid utf-8",
			data: append(append(valid[:headerSize-4:headerSize-4],
				0, 0, 0, 1), // one entry
				0, 0, 0, 2, 0xff, 0xfe),
		},
		{
			name: "length prefix past end",
			data: append(append(valid[:headerSize-4:headerSize-4],
				0, 0, 0, 1),
				0xff, 0xff, 0xff, 0xff, 'a'),
		},
		{
			name: "count past end",
			data: append(valid[:headerSize-4:headerSize-4], 0, 0, 0, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalHelper[Network](tt.data)
			if !errors.Is(err, ErrMalformedData) {
				t.Fatalf("UnmarshalHelper() error = %v, want ErrMalformedData", err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	network := mustNetwork(t, time.Second, 1)
	gnss, _ := NewGNSSTimeSuggestion(UnixEpochTime(time.Second, 2))
	external, _ := NewExternalTimeSuggestion(UnixEpochTime(time.Second, 3))
	external.AddDebugInfo("from companion")

	for _, want := range []Suggestion{network, gnss, external} {
		data, _ := want.MarshalBinary()
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if got.Tag() != want.Tag() {
			t.Fatalf("Decode() tag = %d, want %d", got.Tag(), want.Tag())
		}
		if got.String() != want.String() {
			t.Fatalf("Decode() = %v, want %v", got, want)
		}
	}

	if _, err := Decode([]byte{0x7f}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Decode(unknown tag) error = %v, want ErrTypeMismatch", err)
	}
	if _, err := Decode(nil); !errors.Is(err, ErrMalformedData) {
		t.Fatalf("Decode(nil) error = %v, want ErrMalformedData", err)
	}
}

func assertTrail(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("debug info has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("debug info[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
