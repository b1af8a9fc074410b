package contador

import "sync"

// AppState is shared by every handler for the lifetime of the process.
// Counter and FileContent have separate locks; code that needs both must
// take counterMu before fileMu.
type AppState struct {
	counterMu sync.Mutex
	count     uint32

	fileMu  sync.Mutex
	content string
}

func NewAppState() *AppState {
	return &AppState{}
}

// WithCounter runs fn with exclusive access to the counter.
func (s *AppState) WithCounter(fn func(count *uint32)) {
	s.counterMu.Lock()
	defer s.counterMu.Unlock()
	fn(&s.count)
}

// WithFileContent runs fn with exclusive access to the cached file content.
func (s *AppState) WithFileContent(fn func(content *string)) {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	fn(&s.content)
}

func (s *AppState) Increment() uint32 {
	var n uint32
	s.WithCounter(func(count *uint32) {
		*count++
		n = *count
	})
	return n
}

func (s *AppState) Count() uint32 {
	var n uint32
	s.WithCounter(func(count *uint32) { n = *count })
	return n
}

func (s *AppState) FileContent() string {
	var c string
	s.WithFileContent(func(content *string) { c = *content })
	return c
}

func (s *AppState) SetFileContent(c string) {
	s.WithFileContent(func(content *string) { *content = c })
}

type Snapshot struct {
	Count       uint32
	FileContent string
}

// Snapshot reads both fields while holding both locks.
func (s *AppState) Snapshot() Snapshot {
	var snap Snapshot
	s.WithCounter(func(count *uint32) {
		s.WithFileContent(func(content *string) {
			snap = Snapshot{Count: *count, FileContent: *content}
		})
	})
	return snap
}
