package postgres

import (
	"database/sql"
	"landregistry/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Row types mirror the tables one to one. Columns generated by the database
// are skipped on insert; identity and creation columns are never updated.

type PgUser struct {
	ID          uuid.UUID      `db:"id"           goqu:"skipinsert,skipupdate"`
	FirstName   string         `db:"first_name"`
	LastName    string         `db:"last_name"`
	Email       string         `db:"email"`
	PhoneNumber string         `db:"phone_number"`
	NationalID  string         `db:"national_id"`
	Address     sql.NullString `db:"address"`
	Role        string         `db:"role"`
	Status      string         `db:"status"`

	EmailVerified    bool           `db:"email_verified"`
	TwoFactorEnabled bool           `db:"two_factor_enabled"`
	TwoFactorSecret  sql.NullString `db:"two_factor_secret"`
	PasswordHash     string         `db:"password_hash"`
	ResetToken       sql.NullString `db:"password_reset_token"`
	ResetExpires     sql.NullTime   `db:"password_reset_expires"`
	PasswordChanged  sql.NullTime   `db:"password_changed_at"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert,skipupdate"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:                   domain.UserID(p.ID),
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		Email:                p.Email,
		PhoneNumber:          p.PhoneNumber,
		NationalID:           p.NationalID,
		Address:              p.Address.String,
		Role:                 domain.Role(p.Role),
		Status:               domain.UserStatus(p.Status),
		EmailVerified:        p.EmailVerified,
		TwoFactorEnabled:     p.TwoFactorEnabled,
		TwoFactorSecret:      p.TwoFactorSecret.String,
		PasswordHash:         p.PasswordHash,
		PasswordResetToken:   p.ResetToken.String,
		PasswordResetExpires: p.ResetExpires.Time,
		PasswordChangedAt:    p.PasswordChanged.Time,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
		DeletedAt:            p.DeletedAt.Time,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:               uuid.UUID(u.ID),
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		PhoneNumber:      u.PhoneNumber,
		NationalID:       u.NationalID,
		Address:          nullString(u.Address),
		Role:             string(u.Role),
		Status:           string(u.Status),
		EmailVerified:    u.EmailVerified,
		TwoFactorEnabled: u.TwoFactorEnabled,
		TwoFactorSecret:  nullString(u.TwoFactorSecret),
		PasswordHash:     u.PasswordHash,
		ResetToken:       nullString(u.PasswordResetToken),
		ResetExpires:     nullTime(u.PasswordResetExpires),
		PasswordChanged:  nullTime(u.PasswordChangedAt),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        nullTime(u.UpdatedAt),
		DeletedAt:        nullTime(u.DeletedAt),
	}
}

type PgParcel struct {
	ID           uuid.UUID           `db:"id"            goqu:"skipinsert,skipupdate"`
	ParcelNumber string              `db:"parcel_number"`
	Location     string              `db:"location"`
	District     string              `db:"district"`
	Sector       string              `db:"sector"`
	Cell         string              `db:"cell"`
	AreaSqm      decimal.Decimal     `db:"area_sqm"`
	LandUse      string              `db:"land_use"`
	Status       string              `db:"status"`
	Description  sql.NullString      `db:"description"`
	Coordinates  sql.NullString      `db:"coordinates"`
	MarketValue  decimal.NullDecimal `db:"market_value"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgParcel) ToDomain() *domain.Parcel {
	parcel := &domain.Parcel{
		ID:           domain.ParcelID(p.ID),
		ParcelNumber: p.ParcelNumber,
		Location:     p.Location,
		District:     p.District,
		Sector:       p.Sector,
		Cell:         p.Cell,
		AreaSqm:      p.AreaSqm,
		LandUse:      domain.LandUse(p.LandUse),
		Status:       domain.ParcelStatus(p.Status),
		Description:  p.Description.String,
		Coordinates:  p.Coordinates.String,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
	if p.MarketValue.Valid {
		v := p.MarketValue.Decimal
		parcel.MarketValue = &v
	}

	return parcel
}

func (p *PgParcel) FromDomain(parcel domain.Parcel) {
	*p = PgParcel{
		ID:           uuid.UUID(parcel.ID),
		ParcelNumber: parcel.ParcelNumber,
		Location:     parcel.Location,
		District:     parcel.District,
		Sector:       parcel.Sector,
		Cell:         parcel.Cell,
		AreaSqm:      parcel.AreaSqm,
		LandUse:      string(parcel.LandUse),
		Status:       string(parcel.Status),
		Description:  nullString(parcel.Description),
		Coordinates:  nullString(parcel.Coordinates),
		CreatedAt:    parcel.CreatedAt,
		UpdatedAt:    nullTime(parcel.UpdatedAt),
	}
	if parcel.MarketValue != nil {
		p.MarketValue = decimal.NullDecimal{Decimal: *parcel.MarketValue, Valid: true}
	}
}

type PgOwnership struct {
	ID                  uuid.UUID       `db:"id"                   goqu:"skipinsert,skipupdate"`
	UserID              uuid.UUID       `db:"user_id"`
	ParcelID            uuid.UUID       `db:"land_parcel_id"`
	OwnershipPercentage decimal.Decimal `db:"ownership_percentage"`
	OwnershipType       string          `db:"ownership_type"`
	AcquisitionDate     time.Time       `db:"acquisition_date"`
	AcquisitionMethod   string          `db:"acquisition_method"`
	TitleDeedNumber     sql.NullString  `db:"title_deed_number"`
	Status              string          `db:"status"`
	StartDate           time.Time       `db:"start_date"`
	EndDate             sql.NullTime    `db:"end_date"`
	Notes               sql.NullString  `db:"notes"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgOwnership) ToDomain() *domain.Ownership {
	return &domain.Ownership{
		ID:                  domain.OwnershipID(p.ID),
		UserID:              domain.UserID(p.UserID),
		ParcelID:            domain.ParcelID(p.ParcelID),
		OwnershipPercentage: p.OwnershipPercentage,
		OwnershipType:       domain.OwnershipType(p.OwnershipType),
		AcquisitionDate:     p.AcquisitionDate,
		AcquisitionMethod:   domain.AcquisitionMethod(p.AcquisitionMethod),
		TitleDeedNumber:     p.TitleDeedNumber.String,
		Status:              domain.OwnershipStatus(p.Status),
		StartDate:           p.StartDate,
		EndDate:             p.EndDate.Time,
		Notes:               p.Notes.String,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt.Time,
	}
}

func (p *PgOwnership) FromDomain(o domain.Ownership) {
	*p = PgOwnership{
		ID:                  uuid.UUID(o.ID),
		UserID:              uuid.UUID(o.UserID),
		ParcelID:            uuid.UUID(o.ParcelID),
		OwnershipPercentage: o.OwnershipPercentage,
		OwnershipType:       string(o.OwnershipType),
		AcquisitionDate:     o.AcquisitionDate,
		AcquisitionMethod:   string(o.AcquisitionMethod),
		TitleDeedNumber:     nullString(o.TitleDeedNumber),
		Status:              string(o.Status),
		StartDate:           o.StartDate,
		EndDate:             nullTime(o.EndDate),
		Notes:               nullString(o.Notes),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           nullTime(o.UpdatedAt),
	}
}

type PgRequest struct {
	ID            uuid.UUID     `db:"id"             goqu:"skipinsert,skipupdate"`
	RequestNumber string        `db:"request_number"`
	RequesterID   uuid.UUID     `db:"requester_id"`
	ParcelID      uuid.NullUUID `db:"land_parcel_id"`
	RequestType   string        `db:"request_type"`
	Description   string        `db:"description"`
	Status        string        `db:"status"`
	Priority      string        `db:"priority"`

	SubmissionDate time.Time    `db:"submission_date"`
	ReviewDate     sql.NullTime `db:"review_date"`
	CompletionDate sql.NullTime `db:"completion_date"`

	AssignedOfficerID uuid.NullUUID  `db:"assigned_officer_id"`
	OfficerNotes      sql.NullString `db:"officer_notes"`
	RejectionReason   sql.NullString `db:"rejection_reason"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRequest) ToDomain() *domain.Request {
	r := &domain.Request{
		ID:              domain.RequestID(p.ID),
		RequestNumber:   p.RequestNumber,
		RequesterID:     domain.UserID(p.RequesterID),
		RequestType:     domain.RequestType(p.RequestType),
		Description:     p.Description,
		Status:          domain.RequestStatus(p.Status),
		Priority:        domain.Priority(p.Priority),
		SubmissionDate:  p.SubmissionDate,
		ReviewDate:      p.ReviewDate.Time,
		CompletionDate:  p.CompletionDate.Time,
		OfficerNotes:    p.OfficerNotes.String,
		RejectionReason: p.RejectionReason.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
	if p.ParcelID.Valid {
		id := domain.ParcelID(p.ParcelID.UUID)
		r.ParcelID = &id
	}
	if p.AssignedOfficerID.Valid {
		id := domain.UserID(p.AssignedOfficerID.UUID)
		r.AssignedOfficerID = &id
	}

	return r
}

func (p *PgRequest) FromDomain(r domain.Request) {
	*p = PgRequest{
		ID:              uuid.UUID(r.ID),
		RequestNumber:   r.RequestNumber,
		RequesterID:     uuid.UUID(r.RequesterID),
		RequestType:     string(r.RequestType),
		Description:     r.Description,
		Status:          string(r.Status),
		Priority:        string(r.Priority),
		SubmissionDate:  r.SubmissionDate,
		ReviewDate:      nullTime(r.ReviewDate),
		CompletionDate:  nullTime(r.CompletionDate),
		OfficerNotes:    nullString(r.OfficerNotes),
		RejectionReason: nullString(r.RejectionReason),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       nullTime(r.UpdatedAt),
	}
	if r.ParcelID != nil {
		p.ParcelID = uuid.NullUUID{UUID: uuid.UUID(*r.ParcelID), Valid: true}
	}
	if r.AssignedOfficerID != nil {
		p.AssignedOfficerID = uuid.NullUUID{UUID: uuid.UUID(*r.AssignedOfficerID), Valid: true}
	}
}

type PgDocument struct {
	ID           uuid.UUID      `db:"id"             goqu:"skipinsert,skipupdate"`
	DocumentName string         `db:"document_name"`
	DocumentType string         `db:"document_type"`
	FilePath     sql.NullString `db:"file_path"`
	FileSize     int64          `db:"file_size"`
	MimeType     sql.NullString `db:"mime_type"`
	Description  sql.NullString `db:"description"`
	ParcelID     uuid.NullUUID  `db:"land_parcel_id"`
	RequestID    uuid.NullUUID  `db:"request_id"`
	UploadedBy   uuid.UUID      `db:"uploaded_by"`
	Status       string         `db:"status"`
	Version      int            `db:"version"`

	IsVerified       bool          `db:"is_verified"`
	VerifiedBy       uuid.NullUUID `db:"verified_by"`
	VerificationDate sql.NullTime  `db:"verification_date"`
	ExpiryDate       sql.NullTime  `db:"expiry_date"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDocument) ToDomain() *domain.Document {
	d := &domain.Document{
		ID:               domain.DocumentID(p.ID),
		DocumentName:     p.DocumentName,
		DocumentType:     domain.DocumentType(p.DocumentType),
		FilePath:         p.FilePath.String,
		FileSize:         p.FileSize,
		MimeType:         p.MimeType.String,
		Description:      p.Description.String,
		UploadedBy:       domain.UserID(p.UploadedBy),
		Status:           domain.DocumentStatus(p.Status),
		Version:          p.Version,
		IsVerified:       p.IsVerified,
		VerificationDate: p.VerificationDate.Time,
		ExpiryDate:       p.ExpiryDate.Time,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
	}
	if p.ParcelID.Valid {
		id := domain.ParcelID(p.ParcelID.UUID)
		d.ParcelID = &id
	}
	if p.RequestID.Valid {
		id := domain.RequestID(p.RequestID.UUID)
		d.RequestID = &id
	}
	if p.VerifiedBy.Valid {
		id := domain.UserID(p.VerifiedBy.UUID)
		d.VerifiedBy = &id
	}

	return d
}

func (p *PgDocument) FromDomain(d domain.Document) {
	*p = PgDocument{
		ID:               uuid.UUID(d.ID),
		DocumentName:     d.DocumentName,
		DocumentType:     string(d.DocumentType),
		FilePath:         nullString(d.FilePath),
		FileSize:         d.FileSize,
		MimeType:         nullString(d.MimeType),
		Description:      nullString(d.Description),
		UploadedBy:       uuid.UUID(d.UploadedBy),
		Status:           string(d.Status),
		Version:          d.Version,
		IsVerified:       d.IsVerified,
		VerificationDate: nullTime(d.VerificationDate),
		ExpiryDate:       nullTime(d.ExpiryDate),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        nullTime(d.UpdatedAt),
	}
	if d.ParcelID != nil {
		p.ParcelID = uuid.NullUUID{UUID: uuid.UUID(*d.ParcelID), Valid: true}
	}
	if d.RequestID != nil {
		p.RequestID = uuid.NullUUID{UUID: uuid.UUID(*d.RequestID), Valid: true}
	}
	if d.VerifiedBy != nil {
		p.VerifiedBy = uuid.NullUUID{UUID: uuid.UUID(*d.VerifiedBy), Valid: true}
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// toDomain converts a slice of rows using conv.
func toDomain[R any, D any](rows []R, conv func(*R) *D) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, *conv(&rows[i]))
	}

	return out
}
