package lexer

import "sync"

var scannerPool = sync.Pool{
	New: func() any { return NewScanner("") },
}

// GetScanner returns a pooled scanner positioned at the start of source.
func GetScanner(source string) *Scanner {
	s := scannerPool.Get().(*Scanner)
	s.Reset(source)
	return s
}

// PutScanner returns s to the pool. The scanner drops its reference to the
// source so the buffer can be collected.
func PutScanner(s *Scanner) {
	s.Reset("")
	scannerPool.Put(s)
}
