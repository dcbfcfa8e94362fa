package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentID uniquely identifies a document.
type DocumentID uuid.UUID

// String returns the canonical textual form of the id.
func (id DocumentID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id DocumentID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

type DocumentType string

const (
	DocumentTypeTitleDeed            DocumentType = "TITLE_DEED"
	DocumentTypeSurveyPlan           DocumentType = "SURVEY_PLAN"
	DocumentTypeSurveyReport         DocumentType = "SURVEY_REPORT"
	DocumentTypeOwnershipCertificate DocumentType = "OWNERSHIP_CERTIFICATE"
	DocumentTypeIdentityDocument     DocumentType = "IDENTITY_DOCUMENT"
	DocumentTypeApplicationForm      DocumentType = "APPLICATION_FORM"
	DocumentTypeLegalDocument        DocumentType = "LEGAL_DOCUMENT"
	DocumentTypeTaxReceipt           DocumentType = "TAX_RECEIPT"
	DocumentTypeOther                DocumentType = "OTHER"
)

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeTitleDeed, DocumentTypeSurveyPlan, DocumentTypeSurveyReport,
		DocumentTypeOwnershipCertificate, DocumentTypeIdentityDocument, DocumentTypeApplicationForm,
		DocumentTypeLegalDocument, DocumentTypeTaxReceipt, DocumentTypeOther:
		return true
	}

	return false
}

type DocumentStatus string

const (
	DocumentStatusActive              DocumentStatus = "ACTIVE"
	DocumentStatusPendingVerification DocumentStatus = "PENDING_VERIFICATION"
	DocumentStatusArchived            DocumentStatus = "ARCHIVED"
	DocumentStatusRejected            DocumentStatus = "REJECTED"
	DocumentStatusDeleted             DocumentStatus = "DELETED"
)

// Valid reports whether s is a known document status.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusActive, DocumentStatusPendingVerification, DocumentStatusArchived,
		DocumentStatusRejected, DocumentStatusDeleted:
		return true
	}

	return false
}

// MaxDocumentName is the longest accepted document name.
const MaxDocumentName = 255

// Document is the metadata of a file attached to a parcel or a request.
type Document struct {
	ID           DocumentID     `json:"id"`
	DocumentName string         `json:"documentName"`
	DocumentType DocumentType   `json:"documentType"`
	FilePath     string         `json:"filePath,omitempty"`
	FileSize     int64          `json:"fileSize"`
	MimeType     string         `json:"mimeType,omitempty"`
	Description  string         `json:"description,omitempty"`
	ParcelID     *ParcelID      `json:"landParcelId,omitempty"`
	RequestID    *RequestID     `json:"requestId,omitempty"`
	UploadedBy   UserID         `json:"uploadedBy"`
	Status       DocumentStatus `json:"status"`
	Version      int            `json:"version"`

	IsVerified       bool      `json:"isVerified"`
	VerifiedBy       *UserID   `json:"verifiedBy,omitempty"`
	VerificationDate time.Time `json:"verificationDate,omitzero"`
	ExpiryDate       time.Time `json:"expiryDate,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Verify marks the document as verified by verifier at now and activates it.
func (d *Document) Verify(verifier UserID, now time.Time) {
	d.IsVerified = true
	d.VerifiedBy = &verifier
	d.VerificationDate = now
	d.Status = DocumentStatusActive
}

// Expired reports whether the document has an expiry date before now.
func (d *Document) Expired(now time.Time) bool {
	return !d.ExpiryDate.IsZero() && d.ExpiryDate.Before(now)
}
