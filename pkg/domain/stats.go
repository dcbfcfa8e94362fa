package domain

import "github.com/shopspring/decimal"

type UserStats struct {
	Total  int64          `json:"total"`
	Active int64          `json:"active"`
	ByRole map[Role]int64 `json:"byRole"`
}

type ParcelStats struct {
	Total            int64                  `json:"total"`
	ByStatus         map[ParcelStatus]int64 `json:"byStatus"`
	ByLandUse        map[LandUse]int64      `json:"byLandUse"`
	TotalAreaSqm     decimal.Decimal        `json:"totalAreaSqm"`
	TotalMarketValue decimal.Decimal        `json:"totalMarketValue"`
}

type OwnershipStats struct {
	Total    int64                     `json:"total"`
	ByStatus map[OwnershipStatus]int64 `json:"byStatus"`
	ByType   map[OwnershipType]int64   `json:"byType"`
}

type RequestStats struct {
	Total      int64                   `json:"total"`
	ByStatus   map[RequestStatus]int64 `json:"byStatus"`
	ByType     map[RequestType]int64   `json:"byType"`
	ByPriority map[Priority]int64      `json:"byPriority"`
}

type DocumentStats struct {
	Total               int64                    `json:"total"`
	Verified            int64                    `json:"verified"`
	ByStatus            map[DocumentStatus]int64 `json:"byStatus"`
	ByType              map[DocumentType]int64   `json:"byType"`
	TotalActiveFileSize int64                    `json:"totalActiveFileSize"`
}

// SearchResults groups the hits of a global search by entity kind.
type SearchResults struct {
	Parcels   []Parcel   `json:"landParcels"`
	Requests  []Request  `json:"requests"`
	Documents []Document `json:"documents"`
	Users     []User     `json:"users"`
}
