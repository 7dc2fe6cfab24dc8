package suggestion

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Wire layout, big-endian:
//
//	tag            uint8
//	referenceTime  int64   nanoseconds in the reference clock domain
//	value          int64   unix epoch milliseconds
//	debugCount     uint32
//	debugCount x { length uint32, length bytes of UTF-8 }
const (
	headerSize       = 1 + 8 + 8 + 4
	lengthPrefixSize = 4

	// Caps the up-front allocation for the debug list; the list itself may be
	// longer.
	maxDebugPrealloc = 64
)

// AppendBinary appends the wire encoding of h to dst.
func (h *Helper[K]) AppendBinary(dst []byte) []byte {
	trail := h.DebugInfo()

	dst = append(dst, byte(kindOf[K]().Tag()))
	dst = binary.BigEndian.AppendUint64(dst, uint64(h.unixEpochTime.ReferenceTime()))
	dst = binary.BigEndian.AppendUint64(dst, uint64(h.unixEpochTime.Value()))
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(trail)))
	for _, info := range trail {
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(info)))
		dst = append(dst, info...)
	}
	return dst
}

// MarshalBinary returns the wire encoding of h.
func (h *Helper[K]) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, headerSize)), nil
}

// WriteTo writes the wire encoding of h to w in a single Write call.
func (h *Helper[K]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.AppendBinary(nil))
	return int64(n), err
}

// ReadHelper reads one encoded suggestion of kind K from r. Truncated or
// invalid input fails with ErrMalformedData; a tag for another kind fails
// with ErrTypeMismatch.
func ReadHelper[K Kind](r io.Reader) (*Helper[K], error) {
	want := kindOf[K]()

	var head [headerSize]byte
	if _, err := io.ReadFull(r, head[:1]); err != nil {
		return nil, readErr("tag", err)
	}
	if got := Tag(head[0]); got != want.Tag() {
		return nil, fmt.Errorf("%w: want %s (tag %d), got tag %d", ErrTypeMismatch, want.TypeName(), want.Tag(), got)
	}
	if _, err := io.ReadFull(r, head[1:]); err != nil {
		return nil, readErr("header", err)
	}

	referenceTime := ReferenceTime(int64(binary.BigEndian.Uint64(head[1:9])))
	value := int64(binary.BigEndian.Uint64(head[9:17]))
	count := binary.BigEndian.Uint32(head[17:21])

	h := &Helper[K]{unixEpochTime: UnixEpochTime(referenceTime, value)}
	if count == 0 {
		return h, nil
	}

	h.debugInfo = make([]string, 0, min(count, maxDebugPrealloc))
	var buf bytes.Buffer
	for i := uint32(0); i < count; i++ {
		var prefix [lengthPrefixSize]byte
		if _, err := io.ReadFull(r, prefix[:]); err != nil {
			return nil, readErr(fmt.Sprintf("debug info %d length", i), err)
		}
		size := int64(binary.BigEndian.Uint32(prefix[:]))

		buf.Reset()
		n, err := io.CopyN(&buf, r, size)
		if n < size {
			if err == nil || errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: debug info %d truncated at %d of %d bytes", ErrMalformedData, i, n, size)
			}
			return nil, fmt.Errorf("read debug info %d: %w", i, err)
		}
		if !utf8.Valid(buf.Bytes()) {
			return nil, fmt.Errorf("%w: debug info %d is not valid UTF-8", ErrMalformedData, i)
		}
		h.debugInfo = append(h.debugInfo, buf.String())
	}
	return h, nil
}

// UnmarshalHelper decodes data, which must hold exactly one encoded
// suggestion of kind K.
func UnmarshalHelper[K Kind](data []byte) (*Helper[K], error) {
	r := bytes.NewReader(data)
	h, err := ReadHelper[K](r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedData, r.Len())
	}
	return h, nil
}

// PeekTag returns the kind tag at the head of an encoded suggestion.
func PeekTag(data []byte) (Tag, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty buffer", ErrMalformedData)
	}
	return Tag(data[0]), nil
}

func readErr(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated %s", ErrMalformedData, field)
	}
	return fmt.Errorf("read %s: %w", field, err)
}
