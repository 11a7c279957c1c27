package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping destination captured on an order.
type Address struct {
	fullName   string
	street     string
	city       string
	state      string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddress trims every component and requires all of them except state.
func NewAddress(fullName, street, city, state, postalCode, country string) (Address, error) {
	a := Address{
		fullName:   strings.TrimSpace(fullName),
		street:     strings.TrimSpace(street),
		city:       strings.TrimSpace(city),
		state:      strings.TrimSpace(state),
		postalCode: strings.TrimSpace(postalCode),
		country:    strings.TrimSpace(country),
	}

	if err := errors.Join(
		required("shippingAddress.fullName", a.fullName),
		required("shippingAddress.street", a.street),
		required("shippingAddress.city", a.city),
		required("shippingAddress.postalCode", a.postalCode),
		required("shippingAddress.country", a.country),
	); err != nil {
		return Address{}, err
	}

	a.guard = guard.NewConstructorGuard()
	return a, nil
}

func (a Address) FullName() string   { return a.fullName }
func (a Address) Street() string     { return a.street }
func (a Address) City() string       { return a.city }
func (a Address) State() string      { return a.state }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Country() string    { return a.country }

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

var ErrContactInfoIsNotConstructed = errors.New("ContactInfo must be created via NewContactInfo constructor")

// ContactInfo is how the rider or support reaches the recipient.
// At least one of email and phone is present.
type ContactInfo struct {
	email string
	phone string

	guard guard.ConstructorGuard
}

func NewContactInfo(email, phone string) (ContactInfo, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)

	if email == "" && phone == "" {
		return ContactInfo{}, errs.NewValueIsRequiredErrorWithCause(
			"contactInfo", errors.New("email or phone must be provided"))
	}
	if email != "" {
		if err := ValidateEmail(email); err != nil {
			return ContactInfo{}, err
		}
	}

	return ContactInfo{email: email, phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (c ContactInfo) Email() string { return c.email }
func (c ContactInfo) Phone() string { return c.phone }

func (c ContactInfo) Validate() error {
	return c.guard.Validate(ErrContactInfoIsNotConstructed)
}

// NormalizeEmail lower-cases and trims an address for comparison and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail performs the shallow syntax check used across the service.
// Deliverability is the identity provider's concern.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t\n") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	return nil
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
