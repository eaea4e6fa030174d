// Package store provides file-based persistence for signup's local state.
//
// The only state kept between runs is the draft: the registration form as it
// was when the user last left it without registering. Because the draft holds
// the password, it is sealed with XChaCha20-Poly1305 under a key derived from
// a user passphrase with scrypt, and written atomically (temp file + rename)
// with 0600 permissions under the configured home directory.
//
// All methods are concurrency-safe via internal locking.
package store
