package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"signup/internal/domain"
)

func TestCollect_NonFieldErrorBlocksEveryField(t *testing.T) {
	errs := collect(errors.New("validator misconfigured"))

	assert.Equal(t, domain.Fields, errs.Fields())
	assert.Equal(t, "Email Address must be valid", errs[domain.FieldEmail])
}

func TestCollect_NilIsValid(t *testing.T) {
	assert.True(t, collect(nil).Empty())
}
