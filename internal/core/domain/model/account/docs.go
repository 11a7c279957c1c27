// Package account models who is acting on the system.
//
// A User is created the first time an externally verified identity signs in.
// Its Role is not chosen by the user: it is derived from the ApprovedEmail
// allowlist at every sign-in, so changing an approval record changes the role
// on the next authentication. Actor is the lightweight projection of a User
// that flows through commands, queries and the access gate.
package account
