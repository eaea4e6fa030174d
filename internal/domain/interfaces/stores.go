package interfaces

import domaintypes "signup/internal/domain/types"

// DraftStore keeps an unfinished form between runs, sealed under a
// passphrase because it contains the password.
type DraftStore interface {
	SaveDraft(passphrase string, form domaintypes.RegistrationForm) error
	LoadDraft(passphrase string) (domaintypes.Draft, bool, error)
	ClearDraft() error
}
