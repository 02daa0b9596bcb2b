package files

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/tomblancdev/dropbox-go"
)

// errEmptyLongpoll stops a watcher whose longpoll returned no result, which
// would otherwise be reissued at once.
var errEmptyLongpoll = errors.New("files: longpoll returned no result")

// Watcher streams the entries that change in a folder.
//
// It alternates ListFolderLongpoll, which waits on the notify host, with
// ListFolderContinue, which fetches what changed, and honours the backoff the
// server asks for. Use [Watch] to create one, then iterate:
//
//	w, err := files.Watch(ctx, client, "", &files.ListFolderArg{Path: "/Inbox"}, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for w.Next() {
//	    fmt.Println(w.Entry().PathDisplay)
//	}
//
//	if err := w.Err(); err != nil {
//	    log.Fatal(err)
//	}
type Watcher struct {
	client  *dropbox.Client
	token   string
	timeout uint64

	ctx    context.Context
	cancel context.CancelFunc

	cursor  string
	pending []Metadata
	current *Metadata
	err     error
	closed  atomic.Bool
}

// Watch starts watching the folder described by arg from its current state.
// Only changes made after Watch returns are reported.
//
// timeout is the longpoll timeout in seconds; zero selects
// DefaultLongpollTimeout. The watcher stops when ctx ends or Close is called.
func Watch(ctx context.Context, c *dropbox.Client, token string, arg *ListFolderArg, timeout uint64) (*Watcher, error) {
	res, err := ListFolderGetLatestCursor(token, arg).CallSync(ctx, c)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Cursor == "" {
		return nil, fmt.Errorf("files: no cursor returned for %q", arg.Path)
	}
	return WatchCursor(ctx, c, token, res.Cursor, timeout), nil
}

// WatchCursor resumes watching from a cursor obtained earlier, for example
// from [Watcher.Cursor].
func WatchCursor(ctx context.Context, c *dropbox.Client, token, cursor string, timeout uint64) *Watcher {
	if timeout == 0 {
		timeout = DefaultLongpollTimeout
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Watcher{
		client:  c,
		token:   token,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
		cursor:  cursor,
	}
}

// Next blocks until a changed entry is available.
//
// Returns false once the watcher is closed or a call fails. Call
// [Watcher.Err] to check for errors.
func (w *Watcher) Next() bool {
	if w.closed.Load() || w.err != nil {
		return false
	}

	for len(w.pending) == 0 {
		if err := w.poll(); err != nil {
			if !w.closed.Load() {
				w.err = err
			}
			return false
		}
	}

	w.current = &w.pending[0]
	w.pending = w.pending[1:]
	return true
}

// Entry returns the current entry.
//
// Call this after [Watcher.Next] returns true.
func (w *Watcher) Entry() *Metadata {
	return w.current
}

// Err returns the error that stopped the watcher, if any. It is nil after
// Close.
func (w *Watcher) Err() error {
	return w.err
}

// Cursor returns the cursor past the entries fetched so far.
func (w *Watcher) Cursor() string {
	return w.cursor
}

// Close stops the watcher and aborts any call in flight.
//
// Close is safe to call multiple times and is thread-safe.
func (w *Watcher) Close() error {
	if w.closed.Swap(true) {
		return nil
	}
	w.cancel()
	return nil
}

// EventsWithContext returns a channel that yields changed entries.
//
// The channel is closed when the watcher stops or ctx is cancelled. Check
// [Watcher.Err] after the channel closes.
//
//	for entry := range w.EventsWithContext(ctx) {
//	    fmt.Println(entry.PathDisplay)
//	}
func (w *Watcher) EventsWithContext(ctx context.Context) <-chan *Metadata {
	ch := make(chan *Metadata)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				w.err = fmt.Errorf("panic in watcher: %v\n%s", r, debug.Stack())
			}
			close(ch)
		}()

		// Closing the watcher unblocks a pending longpoll.
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				_ = w.Close()
			case <-done:
			}
		}()
		defer close(done)

		for w.Next() {
			entry := *w.current
			select {
			case ch <- &entry:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// poll waits for changes once and buffers them.
func (w *Watcher) poll() error {
	res, err := ListFolderLongpoll(&ListFolderLongpollArg{
		Cursor:  w.cursor,
		Timeout: w.timeout,
	}).CallSync(w.ctx, w.client)
	if err != nil {
		return err
	}
	if res == nil {
		return errEmptyLongpoll
	}

	if res.Changes {
		if err := w.fetch(); err != nil {
			return err
		}
	}
	if res.Backoff != nil {
		return w.sleep(time.Duration(*res.Backoff) * time.Second)
	}
	return nil
}

// fetch reads every page past the cursor.
func (w *Watcher) fetch() error {
	for {
		page, err := ListFolderContinue(w.token, &ListFolderContinueArg{Cursor: w.cursor}).CallSync(w.ctx, w.client)
		if err != nil {
			return err
		}
		if page == nil {
			return nil
		}

		w.pending = append(w.pending, page.Entries...)
		if page.Cursor != "" {
			w.cursor = page.Cursor
		}
		if !page.HasMore {
			return nil
		}
	}
}

func (w *Watcher) sleep(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-w.ctx.Done():
		return w.ctx.Err()
	}
}
