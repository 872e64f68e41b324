package services

import (
	"context"

	"github.com/SaloneDigital/business_registry_app/internal/dto"
)

// CodeGenerator produces one-time codes for the business login flow.
// Abstracted so the random source can be swapped without touching the
// verification state machine.
type CodeGenerator interface {
	Generate() (string, error)
}

// AuthSvcFacade implements the registry's two login surfaces: the
// two-step business verification (credentials -> one-time code ->
// session) and the registrar username/password login.
type AuthSvcFacade interface {
	// VerifyCredentials is step 1. It matches the registry code
	// case-insensitively and compares normalized phone suffixes; on
	// success it issues a fresh one-time code bound to the returned
	// challenge token and pushes a simulated SMS. A new successful
	// step 1 for the same entity invalidates any earlier pending code.
	VerifyCredentials(ctx context.Context, registryCode, phoneNumber string) (*dto.BusinessCredentialsResponse, error)

	// VerifyOneTimeCode is step 2. On a code mismatch the challenge
	// stays pending so the caller may retry; on a match the challenge
	// is consumed and a Business session bound to the entity is issued.
	VerifyOneTimeCode(ctx context.Context, challengeToken, code string) (*dto.SessionResponse, error)

	// CancelChallenge abandons a pending attempt; its code is not
	// reusable afterwards.
	CancelChallenge(ctx context.Context, challengeToken string) error

	// LoginRegistrar authenticates a staff account by username and
	// password, yielding an Admin or User session.
	LoginRegistrar(ctx context.Context, username, password string) (*dto.SessionResponse, error)
}
