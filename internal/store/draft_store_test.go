package store_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signup/internal/domain"
	"signup/internal/store"
)

var savedAt = time.Date(2025, 7, 1, 12, 30, 0, 0, time.UTC)

var draftForm = domain.RegistrationForm{
	FirstName:       "John",
	LastName:        "Doe",
	Email:           "john@example.com",
	Password:        "s3cret-pass",
	ConfirmPassword: "s3cret-pass",
}

func TestDraft_SaveLoad_OK(t *testing.T) {
	var drafts domain.DraftStore = store.NewTestDraftFileStore(t.TempDir(), savedAt)

	require.NoError(t, drafts.SaveDraft("pass", draftForm))

	got, ok, err := drafts.LoadDraft("pass")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, draftForm, got.Form)
	assert.True(t, savedAt.Equal(got.SavedAt))
}

func TestDraft_WrongPassphrase_Fails(t *testing.T) {
	drafts := store.NewTestDraftFileStore(t.TempDir(), savedAt)
	require.NoError(t, drafts.SaveDraft("correct", draftForm))

	_, ok, err := drafts.LoadDraft("wrong")
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
	assert.False(t, ok)
}

func TestDraft_Missing_IsNotAnError(t *testing.T) {
	drafts := store.NewTestDraftFileStore(t.TempDir(), savedAt)

	_, ok, err := drafts.LoadDraft("pass")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, drafts.ClearDraft())
}

func TestDraft_Clear(t *testing.T) {
	drafts := store.NewTestDraftFileStore(t.TempDir(), savedAt)
	require.NoError(t, drafts.SaveDraft("pass", draftForm))

	require.NoError(t, drafts.ClearDraft())

	_, ok, err := drafts.LoadDraft("pass")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDraft_FileIsSealedAndPrivate(t *testing.T) {
	drafts := store.NewTestDraftFileStore(t.TempDir(), savedAt)
	require.NoError(t, drafts.SaveDraft("pass", draftForm))

	info, err := os.Stat(drafts.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	b, err := os.ReadFile(drafts.Path())
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(b), "s3cret-pass"))
	assert.False(t, strings.Contains(string(b), "john@example.com"))
}

func TestDraft_EmptyPassphraseRefused(t *testing.T) {
	drafts := store.NewTestDraftFileStore(t.TempDir(), savedAt)
	assert.Error(t, drafts.SaveDraft("", draftForm))
}

func TestDraft_CorruptFile(t *testing.T) {
	drafts := store.NewTestDraftFileStore(t.TempDir(), savedAt)
	require.NoError(t, os.WriteFile(drafts.Path(), []byte("not json"), 0o600))

	_, _, err := drafts.LoadDraft("pass")
	assert.Error(t, err)
}
