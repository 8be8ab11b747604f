// Package capture manages access to the local video capture device.
//
// Acquisition is user-initiated and scoped: every exit path of the post
// screen must call Stream.Stop, which is idempotent, so the device is
// released no matter how the screen is left.
package capture

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Device grants exclusive access to a capture source.
type Device interface {
	Open(ctx context.Context) (*Stream, error)
}

// Stream is a live capture handle. Stop releases the underlying device and
// may be called any number of times.
type Stream struct {
	src  io.Closer
	once sync.Once
	err  error
}

// NewStream wraps an acquired capture source. Fake devices in tests use it
// directly.
func NewStream(src io.Closer) *Stream {
	return &Stream{src: src}
}

// Stop releases the device. Only the first call closes; later calls return
// the first result.
func (s *Stream) Stop() error {
	s.once.Do(func() {
		s.err = s.src.Close()
	})
	return s.err
}

// VideoDevice opens a V4L2-style device node (front-facing camera on the
// devices this client targets).
type VideoDevice struct {
	Path string
}

// DefaultDevice returns the standard camera device node.
func DefaultDevice() *VideoDevice {
	return &VideoDevice{Path: "/dev/video0"}
}

// Open acquires the device. A permission or missing-device error is returned
// to the caller, which surfaces it as a local alert and continues without
// capture.
func (d *VideoDevice) Open(ctx context.Context) (*Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture device %s: %w", d.Path, err)
	}
	return NewStream(f), nil
}
