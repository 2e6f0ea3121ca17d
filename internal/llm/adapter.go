package llm

import (
	"context"
	"strings"
)

// Adapter is the capability every AI provider exposes.
type Adapter interface {
	// Name returns the provider identifier used in cache keys and metadata
	Name() string
	// Complete returns the full completion for prompt
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
	// StreamComplete returns the completion as a finite sequence of chunks
	StreamComplete(ctx context.Context, prompt string, opts Options) (Stream, error)
}

// Stream is a forward-only, non-restartable sequence of completion chunks.
// Closing it stops consumption; it does not necessarily abort the upstream
// request.
type Stream interface {
	Next() bool
	Current() string
	Err() error
	Close() error
}

// Collect drains s, calling onChunk for each chunk in arrival order, and
// returns the concatenated text. The stream is closed on return.
func Collect(s Stream, onChunk func(chunk string)) (string, error) {
	defer func() { _ = s.Close() }()

	var sb strings.Builder
	for s.Next() {
		chunk := s.Current()
		if onChunk != nil {
			onChunk(chunk)
		}
		sb.WriteString(chunk)
	}
	if err := s.Err(); err != nil {
		return sb.String(), err
	}
	return sb.String(), nil
}

// SliceStream is a Stream over a fixed list of chunks.
type SliceStream struct {
	chunks  []string
	pos     int
	current string
	err     error
	closed  bool
}

// NewSliceStream returns a stream yielding chunks, then failing with err if non-nil.
func NewSliceStream(err error, chunks ...string) *SliceStream {
	return &SliceStream{chunks: chunks, err: err}
}

// Next advances to the next chunk.
func (s *SliceStream) Next() bool {
	if s.closed || s.pos >= len(s.chunks) {
		return false
	}
	s.current = s.chunks[s.pos]
	s.pos++
	return true
}

// Current returns the chunk at the cursor.
func (s *SliceStream) Current() string { return s.current }

// Err returns the terminal error once all chunks are consumed.
func (s *SliceStream) Err() error {
	if s.pos >= len(s.chunks) {
		return s.err
	}
	return nil
}

// Close stops iteration.
func (s *SliceStream) Close() error {
	s.closed = true
	return nil
}
