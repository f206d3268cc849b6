// Package user contains the account aggregate and the password reset token.
//
// Privileges are plain boolean flags rather than a role hierarchy, with one
// convention: a super-admin passes every admin check. The aggregate only ever
// handles password hashes; hashing and verification live behind a port.
package user
