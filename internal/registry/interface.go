package registry

import (
	"context"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
type Registry interface {
	CreateUser(ctx context.Context, actor domain.Actor, in NewUser) (*domain.User, error)
	User(ctx context.Context, actor domain.Actor, id domain.UserID) (*domain.User, error)
	UserByEmail(ctx context.Context, actor domain.Actor, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, actor domain.Actor, id domain.UserID, patch UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id domain.UserID) error
	ListUsers(ctx context.Context,
		actor domain.Actor,
		filter storage.UserFilter,
		page domain.PageRequest) (*domain.Page[domain.User], error)
	SetUserStatus(ctx context.Context, actor domain.Actor, id domain.UserID, status domain.UserStatus) (*domain.User, error)
	ChangeUserRole(ctx context.Context, actor domain.Actor, id domain.UserID, role domain.Role) (*domain.User, error)
	UserStats(ctx context.Context, actor domain.Actor) (*domain.UserStats, error)

	CreateParcel(ctx context.Context, actor domain.Actor, p domain.Parcel) (*domain.Parcel, error)
	Parcel(ctx context.Context, actor domain.Actor, id domain.ParcelID) (*domain.Parcel, error)
	ParcelByNumber(ctx context.Context, actor domain.Actor, number string) (*domain.Parcel, error)
	UpdateParcel(ctx context.Context, actor domain.Actor, id domain.ParcelID, patch ParcelPatch) (*domain.Parcel, error)
	DeleteParcel(ctx context.Context, actor domain.Actor, id domain.ParcelID) error
	ListParcels(ctx context.Context,
		actor domain.Actor,
		filter storage.ParcelFilter,
		page domain.PageRequest) (*domain.Page[domain.Parcel], error)
	SetParcelStatus(ctx context.Context,
		actor domain.Actor,
		id domain.ParcelID,
		status domain.ParcelStatus) (*domain.Parcel, error)
	ParcelStats(ctx context.Context, actor domain.Actor) (*domain.ParcelStats, error)

	CreateOwnership(ctx context.Context, actor domain.Actor, o domain.Ownership) (*domain.Ownership, error)
	Ownership(ctx context.Context, actor domain.Actor, id domain.OwnershipID) (*domain.Ownership, error)
	UpdateOwnership(ctx context.Context,
		actor domain.Actor,
		id domain.OwnershipID,
		patch OwnershipPatch) (*domain.Ownership, error)
	DeleteOwnership(ctx context.Context, actor domain.Actor, id domain.OwnershipID) error
	ListOwnerships(ctx context.Context,
		actor domain.Actor,
		filter storage.OwnershipFilter,
		page domain.PageRequest) (*domain.Page[domain.Ownership], error)
	TransferOwnership(ctx context.Context,
		actor domain.Actor,
		id domain.OwnershipID,
		newOwner domain.UserID) (*domain.Ownership, error)
	SetOwnershipStatus(ctx context.Context,
		actor domain.Actor,
		id domain.OwnershipID,
		status domain.OwnershipStatus) (*domain.Ownership, error)
	OwnershipStats(ctx context.Context, actor domain.Actor) (*domain.OwnershipStats, error)

	CreateRequest(ctx context.Context, actor domain.Actor, r domain.Request) (*domain.Request, error)
	Request(ctx context.Context, actor domain.Actor, id domain.RequestID) (*domain.Request, error)
	UpdateRequest(ctx context.Context, actor domain.Actor, id domain.RequestID, patch RequestPatch) (*domain.Request, error)
	DeleteRequest(ctx context.Context, actor domain.Actor, id domain.RequestID) error
	ListRequests(ctx context.Context,
		actor domain.Actor,
		filter storage.RequestFilter,
		page domain.PageRequest) (*domain.Page[domain.Request], error)
	ApproveRequest(ctx context.Context, actor domain.Actor, id domain.RequestID, notes string) (*domain.Request, error)
	RejectRequest(ctx context.Context, actor domain.Actor, id domain.RequestID, reason string) (*domain.Request, error)
	CancelRequest(ctx context.Context, actor domain.Actor, id domain.RequestID) (*domain.Request, error)
	SetRequestStatus(ctx context.Context,
		actor domain.Actor,
		id domain.RequestID,
		status domain.RequestStatus) (*domain.Request, error)
	AssignRequest(ctx context.Context,
		actor domain.Actor,
		id domain.RequestID,
		officer *domain.UserID) (*domain.Request, error)
	SetRequestPriority(ctx context.Context,
		actor domain.Actor,
		id domain.RequestID,
		priority domain.Priority) (*domain.Request, error)
	AddRequestNotes(ctx context.Context, actor domain.Actor, id domain.RequestID, notes string) (*domain.Request, error)
	RequestStats(ctx context.Context, actor domain.Actor) (*domain.RequestStats, error)

	CreateDocument(ctx context.Context, actor domain.Actor, d domain.Document) (*domain.Document, error)
	Document(ctx context.Context, actor domain.Actor, id domain.DocumentID) (*domain.Document, error)
	UpdateDocument(ctx context.Context,
		actor domain.Actor,
		id domain.DocumentID,
		patch DocumentPatch) (*domain.Document, error)
	DeleteDocument(ctx context.Context, actor domain.Actor, id domain.DocumentID) error
	ListDocuments(ctx context.Context,
		actor domain.Actor,
		filter storage.DocumentFilter,
		page domain.PageRequest) (*domain.Page[domain.Document], error)
	VerifyDocument(ctx context.Context, actor domain.Actor, id domain.DocumentID) (*domain.Document, error)
	SetDocumentStatus(ctx context.Context,
		actor domain.Actor,
		id domain.DocumentID,
		status domain.DocumentStatus) (*domain.Document, error)
	DocumentStats(ctx context.Context, actor domain.Actor) (*domain.DocumentStats, error)

	Search(ctx context.Context, actor domain.Actor, query string) (*domain.SearchResults, error)
}

// NewUser is an account created by an administrator.
type NewUser struct {
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phoneNumber"`
	NationalID  string            `json:"nationalId"`
	Address     string            `json:"address"`
	Role        domain.Role       `json:"role"`
	Status      domain.UserStatus `json:"status"`
	Password    string            `json:"password"`
}

// UserPatch changes the fields that are set.
type UserPatch struct {
	FirstName   *string            `json:"firstName"`
	LastName    *string            `json:"lastName"`
	Email       *string            `json:"email"`
	PhoneNumber *string            `json:"phoneNumber"`
	NationalID  *string            `json:"nationalId"`
	Address     *string            `json:"address"`
	Role        *domain.Role       `json:"role"`
	Status      *domain.UserStatus `json:"status"`
	Password    *string            `json:"password"`
	// CurrentPassword must accompany Password when users change their own.
	CurrentPassword *string `json:"currentPassword"`
}

// ParcelPatch changes the fields that are set.
type ParcelPatch struct {
	ParcelNumber *string              `json:"parcelNumber"`
	Location     *string              `json:"location"`
	District     *string              `json:"district"`
	Sector       *string              `json:"sector"`
	Cell         *string              `json:"cell"`
	AreaSqm      *decimal.Decimal     `json:"areaSqm"`
	LandUse      *domain.LandUse      `json:"landUse"`
	Status       *domain.ParcelStatus `json:"status"`
	Description  *string              `json:"description"`
	Coordinates  *string              `json:"coordinates"`
	MarketValue  *decimal.Decimal     `json:"marketValue"`
}

// OwnershipPatch changes the fields that are set.
type OwnershipPatch struct {
	OwnershipPercentage *decimal.Decimal          `json:"ownershipPercentage"`
	OwnershipType       *domain.OwnershipType     `json:"ownershipType"`
	AcquisitionMethod   *domain.AcquisitionMethod `json:"acquisitionMethod"`
	TitleDeedNumber     *string                   `json:"titleDeedNumber"`
	Status              *domain.OwnershipStatus   `json:"status"`
	EndDate             *time.Time                `json:"endDate"`
	Notes               *string                   `json:"notes"`
}

// RequestPatch changes the fields that are set. Requesters may only change
// Description and Priority.
type RequestPatch struct {
	Description  *string          `json:"description"`
	Priority     *domain.Priority `json:"priority"`
	OfficerNotes *string          `json:"officerNotes"`
}

// DocumentPatch changes the fields that are set.
type DocumentPatch struct {
	DocumentName *string    `json:"documentName"`
	Description  *string    `json:"description"`
	FilePath     *string    `json:"filePath"`
	FileSize     *int64     `json:"fileSize"`
	MimeType     *string    `json:"mimeType"`
	ExpiryDate   *time.Time `json:"expiryDate"`
}
