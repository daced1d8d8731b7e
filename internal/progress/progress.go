package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Reporter handles progress reporting while nodes are built. Calls may
// come from many goroutines.
type Reporter interface {
	// SetTotal sets the number of entries discovered by the walk
	SetTotal(entries int)
	// Built marks one entry as turned into a node
	Built(path string)
	// Skipped marks one entry as dropped because of err
	Skipped(path string, err error)
	// Done marks the end of node construction
	Done()
}

// Callback is a function that receives progress updates
type Callback func(update Update)

// Update represents a progress update
type Update struct {
	Type      UpdateType
	Path      string
	Completed int // built and skipped
	Skipped   int
	Total     int
	Elapsed   time.Duration
	Error     error
}

// UpdateType indicates the type of progress update
type UpdateType int

const (
	UpdateTotal UpdateType = iota
	UpdateBuilt
	UpdateSkipped
	UpdateDone
)

// CallbackReporter implements Reporter with a callback function
type CallbackReporter struct {
	callback  Callback
	mu        sync.Mutex
	total     int
	completed int
	skipped   int
	startTime time.Time
}

// NewCallbackReporter creates a new CallbackReporter
func NewCallbackReporter(callback Callback) *CallbackReporter {
	return &CallbackReporter{
		callback:  callback,
		startTime: time.Now(),
	}
}

// SetTotal sets the number of entries to build
func (r *CallbackReporter) SetTotal(entries int) {
	r.emit(func() Update {
		r.total = entries
		return Update{Type: UpdateTotal}
	})
}

// Built marks one entry as built
func (r *CallbackReporter) Built(path string) {
	r.emit(func() Update {
		r.completed++
		return Update{Type: UpdateBuilt, Path: path}
	})
}

// Skipped marks one entry as skipped
func (r *CallbackReporter) Skipped(path string, err error) {
	r.emit(func() Update {
		r.completed++
		r.skipped++
		return Update{Type: UpdateSkipped, Path: path, Error: err}
	})
}

// Done marks the end of node construction
func (r *CallbackReporter) Done() {
	r.emit(func() Update {
		return Update{Type: UpdateDone}
	})
}

// emit applies step under the lock, then calls the callback outside it to
// prevent deadlock
func (r *CallbackReporter) emit(step func() Update) {
	r.mu.Lock()
	update := step()
	update.Completed = r.completed
	update.Skipped = r.skipped
	update.Total = r.total
	update.Elapsed = time.Since(r.startTime)
	callback := r.callback
	r.mu.Unlock()

	if callback != nil {
		callback(update)
	}
}

// NullReporter is a no-op reporter
type NullReporter struct{}

func (NullReporter) SetTotal(entries int)           {}
func (NullReporter) Built(path string)              {}
func (NullReporter) Skipped(path string, err error) {}
func (NullReporter) Done()                          {}

// StatusLine returns a Callback that redraws a single status line on w,
// typically a terminal's stderr, at most once every interval entries. The
// line is cleared when construction is done so it never mixes with the
// listing. The callback is safe to call from several goroutines; writes to
// w are serialized and a redraw older than the last one shown is dropped.
func StatusLine(w io.Writer, interval int) Callback {
	if interval < 1 {
		interval = 1
	}
	var (
		mu    sync.Mutex
		drawn int
	)
	return func(u Update) {
		mu.Lock()
		defer mu.Unlock()

		switch u.Type {
		case UpdateBuilt, UpdateSkipped:
			if u.Completed%interval != 0 || u.Completed <= drawn {
				return
			}
			drawn = u.Completed
			fmt.Fprintf(w, "\r%s %d/%d", FormatProgress(int64(u.Completed), int64(u.Total), 20), u.Completed, u.Total)
		case UpdateDone:
			fmt.Fprint(w, "\r\x1b[K")
		}
	}
}

// FormatProgress returns a progress bar string
func FormatProgress(current, total int64, width int) string {
	if total == 0 {
		return ""
	}

	percent := float64(current) / float64(total)
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}

	bar := make([]byte, width)
	for i := 0; i < width; i++ {
		if i < filled {
			bar[i] = '='
		} else if i == filled {
			bar[i] = '>'
		} else {
			bar[i] = ' '
		}
	}

	return fmt.Sprintf("[%s] %5.1f%%", string(bar), percent*100)
}
