// Package domain defines the registration form's data model and the
// contracts between the form state holder and its collaborators.
// It contains plain types (wire/state) and interfaces only.
//
// Types live in the types subpackage and interfaces in the interfaces
// subpackage; both are re-exported here through aliases so callers can
// import a single package.
package domain
