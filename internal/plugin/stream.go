package plugin

import (
    "context"
    "errors"
    "io"
    "iter"
    "sync"
    "sync/atomic"
)

var ErrStreamClosed = errors.New("stream closed")

// NextFunc produces the next message of a stream, or io.EOF once exhausted.
type NextFunc func(ctx context.Context) (Message, error)

// Stream is a pull-based sequence of messages backed by resources that are
// released by Close. Close runs at most once and is triggered automatically
// when the stream is drained, fails, or its context is cancelled. Next must
// not be called concurrently with itself; Close may be called from any
// goroutine.
type Stream struct {
    ctx     context.Context
    next    NextFunc
    release func() error

    closeOnce sync.Once
    closeErr  error
    closed    atomic.Bool
}

// NewStream wraps next and release. release may be nil.
func NewStream(ctx context.Context, next NextFunc, release func() error) *Stream {
    if ctx == nil {
        ctx = context.Background()
    }
    return &Stream{ctx: ctx, next: next, release: release}
}

// Messages returns a stream over a fixed slice of messages.
func Messages(msgs ...Message) *Stream {
    i := 0
    return NewStream(context.Background(), func(context.Context) (Message, error) {
        if i >= len(msgs) {
            return Message{}, io.EOF
        }
        m := msgs[i]
        i++
        return m, nil
    }, nil)
}

// Next returns the next message. At the end of the stream it returns io.EOF,
// or the release error if cleanup failed.
func (s *Stream) Next() (Message, error) {
    if s.closed.Load() {
        return Message{}, ErrStreamClosed
    }
    if err := s.ctx.Err(); err != nil {
        _ = s.Close()
        return Message{}, Processing("invocation cancelled", err)
    }
    msg, err := s.next(s.ctx)
    if errors.Is(err, io.EOF) {
        if cerr := s.Close(); cerr != nil {
            return Message{}, cerr
        }
        return Message{}, io.EOF
    }
    if err != nil {
        _ = s.Close()
        return Message{}, err
    }
    return msg, nil
}

// Close releases the stream's resources. It is safe to call more than once.
func (s *Stream) Close() error {
    s.closeOnce.Do(func() {
        s.closed.Store(true)
        if s.release != nil {
            if err := s.release(); err != nil {
                s.closeErr = Processing("releasing invocation resources", err)
            }
        }
    })
    return s.closeErr
}

// All adapts the stream to a range-over-func loop. Breaking out of the loop
// closes the stream.
func (s *Stream) All() iter.Seq2[Message, error] {
    return func(yield func(Message, error) bool) {
        defer s.Close()
        for {
            msg, err := s.Next()
            if errors.Is(err, io.EOF) {
                return
            }
            if !yield(msg, err) || err != nil {
                return
            }
        }
    }
}

// Collect drains the stream into a slice.
func Collect(s *Stream) ([]Message, error) {
    var out []Message
    for msg, err := range s.All() {
        if err != nil {
            return out, err
        }
        out = append(out, msg)
    }
    return out, nil
}
