package domain

import (
	interfaces "signup/internal/domain/interfaces"
	types "signup/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Field               = types.Field
	RegistrationForm    = types.RegistrationForm
	RegistrationRequest = types.RegistrationRequest
	ValidationErrors    = types.ValidationErrors
	RejectedError       = types.RejectedError
	View                = types.View
	OutcomeKind         = types.OutcomeKind
	Outcome             = types.Outcome
	Draft               = types.Draft
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Validator          = interfaces.Validator
	ValidatorFunc      = interfaces.ValidatorFunc
	RegistrationClient = interfaces.RegistrationClient
	DraftStore         = interfaces.DraftStore
)

const (
	FieldFirstName       = types.FieldFirstName
	FieldLastName        = types.FieldLastName
	FieldEmail           = types.FieldEmail
	FieldPassword        = types.FieldPassword
	FieldConfirmPassword = types.FieldConfirmPassword

	ViewRegister = types.ViewRegister
	ViewLogin    = types.ViewLogin

	OutcomeInvalid    = types.OutcomeInvalid
	OutcomeSuppressed = types.OutcomeSuppressed
	OutcomeRegistered = types.OutcomeRegistered
	OutcomeFailed     = types.OutcomeFailed
)

// Fields lists the form inputs in display order.
var Fields = types.Fields
