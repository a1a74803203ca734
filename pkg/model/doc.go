// Package model defines the registration form vocabulary shared by the
// validator set, the form engine and the presentation collaborators: field
// names and types, reason codes, rule outcomes, immutable snapshots of the
// field store, and the finalized submission record. Everything here is plain
// data; behaviour lives in pkg/validation and pkg/form.
package model
