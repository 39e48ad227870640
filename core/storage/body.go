package storage

import (
	"fmt"
	"io"

	"bunny-manager/core/utils"
)

// Body is an upload payload that can be materialized into raw bytes.
type Body interface {
	Bytes() ([]byte, error)
}

type bytesBody []byte

func (b bytesBody) Bytes() ([]byte, error) { return b, nil }

// BytesBody wraps a raw byte slice.
func BytesBody(b []byte) Body { return bytesBody(b) }

// StringBody wraps an in-memory string.
func StringBody(s string) Body { return bytesBody(s) }

// ValueBody converts an arbitrary value to its textual representation.
func ValueBody(v any) Body { return bytesBody(utils.ToString(v)) }

type readerBody struct {
	r io.Reader
}

// ReaderBody wraps a stream. Seekable streams are rewound to the start
// before being read, so a reader positioned mid-stream still uploads its
// full content.
func ReaderBody(r io.Reader) Body { return readerBody{r: r} }

func (b readerBody) Bytes() ([]byte, error) {
	if s, ok := b.r.(io.Seeker); ok {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewind upload stream: %w", err)
		}
	}
	data, err := io.ReadAll(b.r)
	if err != nil {
		return nil, fmt.Errorf("read upload stream: %w", err)
	}
	return data, nil
}
