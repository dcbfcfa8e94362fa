package domain

import (
	"landregistry/pkg/serrors"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	nationalIDPattern = regexp.MustCompile(`^\d{16}$`)         //nolint: gochecknoglobals
	phonePattern      = regexp.MustCompile(`^\+?[0-9]{9,15}$`) //nolint: gochecknoglobals
)

func required(field, value string, maxLen int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return serrors.Invalid(field, "is required")
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return serrors.With(serrors.ErrBadRequest, "%s must be at most %d characters", field, maxLen)
	}

	return nil
}

// cents checks that v has at most two decimals and does not exceed limit.
func cents(field string, v, limit decimal.Decimal) error {
	if !v.Equal(v.Round(2)) {
		return serrors.Invalid(field, "must have at most two decimals")
	}
	if v.GreaterThan(limit) {
		return serrors.With(serrors.ErrBadRequest, "%s must be at most %s", field, limit.String())
	}

	return nil
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks the profile fields and enumerations of the user.
func (u *User) Validate() error {
	if err := required("firstName", u.FirstName, 100); err != nil {
		return err
	}
	if err := required("lastName", u.LastName, 100); err != nil {
		return err
	}
	if err := required("email", u.Email, 255); err != nil {
		return err
	}
	if addr, err := mail.ParseAddress(u.Email); err != nil || addr.Address != strings.TrimSpace(u.Email) {
		return serrors.Invalid("email", "is not a valid address")
	}
	if !phonePattern.MatchString(u.PhoneNumber) {
		return serrors.Invalid("phoneNumber", "must contain 9 to 15 digits")
	}
	if !nationalIDPattern.MatchString(u.NationalID) {
		return serrors.Invalid("nationalId", "must be exactly 16 digits")
	}
	if !u.Role.Valid() {
		return serrors.Invalid("role", "is not a known role")
	}
	if !u.Status.Valid() {
		return serrors.Invalid("status", "is not a known user status")
	}

	return nil
}

// Validate checks the required fields, area and enumerations of the parcel.
func (p *Parcel) Validate() error {
	if err := required("parcelNumber", p.ParcelNumber, 50); err != nil {
		return err
	}
	for _, f := range [...]struct{ name, value string }{
		{"location", p.Location},
		{"district", p.District},
		{"sector", p.Sector},
		{"cell", p.Cell},
	} {
		if err := required(f.name, f.value, 255); err != nil {
			return err
		}
	}
	if !p.AreaSqm.IsPositive() {
		return serrors.Invalid("areaSqm", "must be positive")
	}
	if err := cents("areaSqm", p.AreaSqm, MaxAreaSqm); err != nil {
		return err
	}
	if p.MarketValue != nil {
		if p.MarketValue.IsNegative() {
			return serrors.Invalid("marketValue", "must not be negative")
		}
		if err := cents("marketValue", *p.MarketValue, MaxMarketValue); err != nil {
			return err
		}
	}
	if !p.LandUse.Valid() {
		return serrors.Invalid("landUse", "is not a known land use")
	}
	if !p.Status.Valid() {
		return serrors.Invalid("status", "is not a known land parcel status")
	}

	return nil
}

// Validate checks the share bounds, dates and enumerations of the ownership.
func (o *Ownership) Validate() error {
	if o.UserID.IsZero() {
		return serrors.Invalid("userId", "is required")
	}
	if o.ParcelID.IsZero() {
		return serrors.Invalid("landParcelId", "is required")
	}
	if o.OwnershipPercentage.LessThan(MinOwnershipPercentage) ||
		o.OwnershipPercentage.GreaterThan(MaxOwnershipPercentage) {
		return serrors.Invalid("ownershipPercentage", "must be between 0.01 and 100")
	}
	if !o.OwnershipPercentage.Equal(o.OwnershipPercentage.Round(2)) {
		return serrors.Invalid("ownershipPercentage", "must have at most two decimals")
	}
	if !o.OwnershipType.Valid() {
		return serrors.Invalid("ownershipType", "is not a known ownership type")
	}
	if !o.AcquisitionMethod.Valid() {
		return serrors.Invalid("acquisitionMethod", "is not a known acquisition method")
	}
	if !o.Status.Valid() {
		return serrors.Invalid("status", "is not a known ownership status")
	}
	if o.AcquisitionDate.IsZero() {
		return serrors.Invalid("acquisitionDate", "is required")
	}
	if !o.EndDate.IsZero() && o.EndDate.Before(o.StartDate) {
		return serrors.Invalid("endDate", "must not be before startDate")
	}

	return nil
}

// Validate checks the description and enumerations of the request.
func (r *Request) Validate() error {
	if r.RequesterID.IsZero() {
		return serrors.Invalid("requesterId", "is required")
	}
	if !r.RequestType.Valid() {
		return serrors.Invalid("requestType", "is not a known request type")
	}
	if err := required("description", r.Description, MaxRequestDescription); err != nil {
		return err
	}
	if !r.Priority.Valid() {
		return serrors.Invalid("priority", "is not a known priority")
	}
	if !r.Status.Valid() {
		return serrors.Invalid("status", "is not a known request status")
	}

	return nil
}

// Validate checks the name, size and enumerations of the document.
func (d *Document) Validate() error {
	if err := required("documentName", d.DocumentName, MaxDocumentName); err != nil {
		return err
	}
	if !d.DocumentType.Valid() {
		return serrors.Invalid("documentType", "is not a known document type")
	}
	if !d.Status.Valid() {
		return serrors.Invalid("status", "is not a known document status")
	}
	if d.FileSize < 0 {
		return serrors.Invalid("fileSize", "must not be negative")
	}

	return nil
}
