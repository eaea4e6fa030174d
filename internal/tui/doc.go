// Package tui renders the registration form as a Bubble Tea program.
//
// The model has two views. The register view shows one text input per form
// field (passwords masked), each field's validation error beneath it, and a
// single notification line for server or network messages. The login view is
// the navigation target after a successful registration; it only shows the
// success notice.
//
// Submitting runs form.Holder.Submit inside a tea.Cmd, so the update loop
// never blocks on the network and the result arrives as a message. While a
// submission is in flight the button reads "Creating Account..." and further
// submits are ignored.
//
// Keys (register view):
//
//	tab, down         next field
//	shift+tab, up     previous field
//	enter             submit
//	ctrl+r            show/hide the focused password
//	ctrl+l            go to the login view (discards the form)
//	esc, ctrl+c       quit
package tui
