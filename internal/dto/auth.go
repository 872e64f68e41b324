package dto

import "time"

// BusinessCredentialsRequest is step 1 of the business login flow.
type BusinessCredentialsRequest struct {
	RegistryCode string `json:"registryCode" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
}

// BusinessCredentialsResponse carries the opaque challenge token the
// caller must present together with the one-time code in step 2.
type BusinessCredentialsResponse struct {
	ChallengeToken string `json:"challengeToken"`
	// Masked hint of the number the code was "sent" to, e.g. "...5269".
	PhoneHint string `json:"phoneHint"`
}

// BusinessOTPRequest is step 2 of the business login flow.
type BusinessOTPRequest struct {
	ChallengeToken string `json:"challengeToken" binding:"required"`
	Code           string `json:"code" binding:"required,len=4,numeric"`
}

// CancelChallengeRequest abandons a pending login attempt, discarding
// its one-time code.
type CancelChallengeRequest struct {
	ChallengeToken string `json:"challengeToken" binding:"required"`
}

// LoginRequest is the registrar (staff) username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is returned by every successful login.
type SessionResponse struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Role        string    `json:"role"`
	DisplayName string    `json:"displayName"`
	EntityID    string    `json:"entityID,omitempty"`
}
