// Package api holds the parts of the micromuu wire contract that are not
// protobuf messages: provider error codes and the sign-in link format.
package api

// Provider error codes carried as the gRPC status message of identity calls.
const (
	CodeInvalidCredential = "auth/invalid-credential"
	CodeUserNotFound      = "auth/user-not-found"
	CodeWrongPassword     = "auth/wrong-password"
	CodeEmailInUse        = "auth/email-already-in-use"
	CodeWeakPassword      = "auth/weak-password"
	CodeInvalidEmail      = "auth/invalid-email"
	CodeTooManyRequests   = "auth/too-many-requests"
	CodeInvalidActionCode = "auth/invalid-action-code"
	CodeArgumentError     = "auth/argument-error"
	CodeInternal          = "auth/internal-error"
)
