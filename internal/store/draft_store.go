package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"signup/internal/domain"
	"signup/internal/util/memzero"
)

const draftFilename = "draft.json.enc"

// DraftFileStore persists the unfinished registration form to disk, sealed
// under a passphrase.
type DraftFileStore struct {
	dir string
	kdf kdfParams
	now func() time.Time
	mu  sync.Mutex
}

// NewDraftFileStore returns a DraftFileStore rooted at dir.
func NewDraftFileStore(dir string) *DraftFileStore {
	return &DraftFileStore{
		dir: dir,
		kdf: defaultKDFParams(),
		now: time.Now,
	}
}

// Path returns the draft file location.
func (s *DraftFileStore) Path() string {
	return filepath.Join(s.dir, draftFilename)
}

// SaveDraft seals form and replaces any previous draft.
func (s *DraftFileStore) SaveDraft(passphrase string, form domain.RegistrationForm) error {
	if passphrase == "" {
		return fmt.Errorf("save draft: passphrase required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(domain.Draft{Form: form, SavedAt: s.now().UTC()})
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	ct, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return fmt.Errorf("seal draft: %w", err)
	}
	return writeFile(s.Path(), ct, 0o600)
}

// LoadDraft opens the saved draft; ok is false when there is none.
func (s *DraftFileStore) LoadDraft(passphrase string) (domain.Draft, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		return domain.Draft{}, false, err
	}
	if b == nil { // no draft saved
		return domain.Draft{}, false, nil
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return domain.Draft{}, false, err
	}
	defer memzero.Zero(pt)

	var d domain.Draft
	if err := json.Unmarshal(pt, &d); err != nil {
		return domain.Draft{}, false, fmt.Errorf("decode draft: %w", err)
	}
	return d, true, nil
}

// ClearDraft deletes the saved draft, if any.
func (s *DraftFileStore) ClearDraft() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(s.Path())
}

// Compile-time assertion that DraftFileStore implements domain.DraftStore.
var _ domain.DraftStore = (*DraftFileStore)(nil)
