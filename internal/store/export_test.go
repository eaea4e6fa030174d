package store

import "time"

// NewTestDraftFileStore uses cheap KDF parameters and a fixed clock.
func NewTestDraftFileStore(dir string, now time.Time) *DraftFileStore {
	s := NewDraftFileStore(dir)
	s.kdf = kdfParams{N: 1 << 10, R: 8, P: 1}
	s.now = func() time.Time { return now }
	return s
}
