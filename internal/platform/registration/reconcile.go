package registration

import (
	"errors"
	"fmt"

	"registrar/internal/auth"
	"registrar/pkg/utils"
)

// ErrUnresolvable means the identity token attests to neither an email
// nor a phone number, so no login method can be established.
var ErrUnresolvable = errors.New("unable to determine login method")

// NeedsMoreInfoError is a continuable outcome: the client must supply
// a syntactically valid value for the named channel and resubmit.
type NeedsMoreInfoError struct {
	Missing string // "email" or "phone"
}

func (e *NeedsMoreInfoError) Error() string {
	return fmt.Sprintf("missing or invalid %s", e.Missing)
}

// ContactInput is the client-asserted contact payload. It is untrusted
// and only fills the channel the identity token omits.
type ContactInput struct {
	Email string `json:"email" validate:"omitempty,max=254"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

// Contact is the reconciled pair of channels. Exactly one side carries
// the issuer's attestation; the other passed syntactic validation only.
type Contact struct {
	EmailEntered   string
	EmailValidated bool
	Phone          string
	PhoneValidated bool
}

// Reconcile decides which contact channel is platform-authoritative.
// An attested email always wins over an attested phone; phone is the
// strong channel only when the token carries no email at all.
func Reconcile(token auth.IdentityToken, input ContactInput) (Contact, error) {
	switch {
	case token.Email != "":
		if !utils.IsValidPhone(input.Phone) {
			return Contact{}, &NeedsMoreInfoError{Missing: "phone"}
		}
		return Contact{
			EmailEntered:   token.Email,
			EmailValidated: token.EmailVerified,
			Phone:          input.Phone,
			PhoneValidated: false,
		}, nil

	case token.Phone != "":
		if !utils.IsValidEmail(input.Email) {
			return Contact{}, &NeedsMoreInfoError{Missing: "email"}
		}
		return Contact{
			EmailEntered:   input.Email,
			EmailValidated: false,
			Phone:          token.Phone,
			PhoneValidated: true,
		}, nil

	default:
		return Contact{}, ErrUnresolvable
	}
}
