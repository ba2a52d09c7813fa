package poster

import (
	"context"
	"sync"
)

// Recorder is an in-memory Poster for tests and dry runs.
type Recorder struct {
	mu    sync.Mutex
	posts []string

	// Err, if set, is returned by every PostStatus call after recording.
	Err error
}

// PostStatus records text.
func (r *Recorder) PostStatus(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, text)
	return r.Err
}

// Posts returns a copy of the recorded statuses in call order.
func (r *Recorder) Posts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.posts...)
}
