package logging

import "context"

// Nop is a Logger that discards everything. Useful in tests.
type Nop struct{}

var _ Logger = Nop{}

func (Nop) Debug(ctx context.Context, msg string, args ...any) {}
func (Nop) Info(ctx context.Context, msg string, args ...any)  {}
func (Nop) Warn(ctx context.Context, msg string, args ...any)  {}
func (Nop) Error(ctx context.Context, msg string, args ...any) {}
func (Nop) With(args ...any) Logger                            { return Nop{} }
