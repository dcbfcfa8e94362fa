package main

import (
	"context"
	"fmt"
	"landregistry/internal/config"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/password"
	"landregistry/pkg/storage"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const seedPassword = "Password123!"

type seedUsers struct {
	admin, officer, alice, bob *domain.User
}

func seedAccounts(ctx context.Context, st storage.AllStorage, now time.Time) (*seedUsers, error) {
	hash, err := password.Hash(seedPassword)
	if err != nil {
		return nil, fmt.Errorf("could not hash seed password: %w", err)
	}

	create := func(first, last, email, phone, nid string, role domain.Role) (*domain.User, error) {
		u, err := st.CreateUser(ctx, domain.User{
			FirstName:     first,
			LastName:      last,
			Email:         email,
			PhoneNumber:   phone,
			NationalID:    nid,
			Address:       "Kigali, Rwanda",
			Role:          role,
			Status:        domain.UserStatusActive,
			EmailVerified: true,
			PasswordHash:  hash,
			CreatedAt:     now,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create %s: %w", email, err)
		}

		return u, nil
	}

	var users seedUsers
	if users.admin, err = create("System", "Admin", "admin@landsystem.rw",
		"+250788000001", "1199080000000001", domain.RoleAdmin); err != nil {
		return nil, err
	}
	if users.officer, err = create("Jean", "Uwimana", "officer@landsystem.rw",
		"+250788000002", "1198580000000002", domain.RoleLandOfficer); err != nil {
		return nil, err
	}
	if users.alice, err = create("Alice", "Mukamana", "alice@example.rw",
		"+250788000003", "1199270000000003", domain.RoleCitizen); err != nil {
		return nil, err
	}
	if users.bob, err = create("Bob", "Habimana", "bob@example.rw",
		"+250788000004", "1199580000000004", domain.RoleCitizen); err != nil {
		return nil, err
	}

	return &users, nil
}

func seedParcels(ctx context.Context, st storage.AllStorage, now time.Time) ([]*domain.Parcel, error) {
	value := decimal.RequireFromString("45000000")
	parcels := []domain.Parcel{
		{
			ParcelNumber: "KG-GAS-001", Location: "KG 11 Ave, Kimihurura",
			District: "Gasabo", Sector: "Kimihurura", Cell: "Rugando",
			AreaSqm: decimal.RequireFromString("650.50"), LandUse: domain.LandUseResidential,
			Status: domain.ParcelStatusOccupied, MarketValue: &value,
		},
		{
			ParcelNumber: "KG-NYA-014", Location: "KN 3 Rd, Nyarugenge",
			District: "Nyarugenge", Sector: "Nyarugenge", Cell: "Kiyovu",
			AreaSqm: decimal.RequireFromString("1200.00"), LandUse: domain.LandUseCommercial,
			Status: domain.ParcelStatusOccupied,
		},
		{
			ParcelNumber: "EP-RWA-203", Location: "Rwamagana town outskirts",
			District: "Rwamagana", Sector: "Kigabiro", Cell: "Nyagasenyi",
			AreaSqm: decimal.RequireFromString("25000.00"), LandUse: domain.LandUseAgricultural,
			Status: domain.ParcelStatusAvailable,
		},
	}

	out := make([]*domain.Parcel, 0, len(parcels))
	for _, p := range parcels {
		p.CreatedAt = now
		stored, err := st.CreateParcel(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("could not create parcel %s: %w", p.ParcelNumber, err)
		}
		out = append(out, stored)
	}

	return out, nil
}

func seed(ctx context.Context, st storage.AllStorage, now time.Time) error {
	users, err := seedAccounts(ctx, st, now)
	if err != nil {
		return err
	}
	parcels, err := seedParcels(ctx, st, now)
	if err != nil {
		return err
	}

	acquired := now.AddDate(-3, 0, 0)
	for i, owner := range []*domain.User{users.alice, users.bob} {
		if _, err := st.CreateOwnership(ctx, domain.Ownership{
			UserID:              owner.ID,
			ParcelID:            parcels[i].ID,
			OwnershipPercentage: decimal.NewFromInt(100),
			OwnershipType:       domain.OwnershipTypeFull,
			AcquisitionDate:     acquired,
			AcquisitionMethod:   domain.AcquisitionPurchase,
			TitleDeedNumber:     fmt.Sprintf("TD-%d-%04d", acquired.Year(), i+1),
			Status:              domain.OwnershipStatusActive,
			StartDate:           acquired,
			CreatedAt:           now,
		}); err != nil {
			return fmt.Errorf("could not create ownership: %w", err)
		}
	}

	requests := []domain.Request{
		{
			RequesterID: users.alice.ID, ParcelID: &parcels[0].ID,
			RequestType: domain.RequestTypeTitleDeedIssuance,
			Description: "Replacement of a damaged title deed", Priority: domain.PriorityNormal,
		},
		{
			RequesterID: users.bob.ID, ParcelID: &parcels[2].ID,
			RequestType: domain.RequestTypeLandRegistration,
			Description: "First registration of inherited farmland", Priority: domain.PriorityHigh,
			AssignedOfficerID: &users.officer.ID,
		},
	}
	stored := make([]*domain.Request, 0, len(requests))
	for _, r := range requests {
		seq, err := st.NextRequestSequence(ctx)
		if err != nil {
			return fmt.Errorf("could not allocate request number: %w", err)
		}
		r.RequestNumber = domain.FormatRequestNumber(now.Year(), seq)
		r.Status = domain.RequestStatusPending
		r.SubmissionDate = now
		r.CreatedAt = now
		req, err := st.CreateRequest(ctx, r)
		if err != nil {
			return fmt.Errorf("could not create request: %w", err)
		}
		stored = append(stored, req)
	}

	deed := domain.Document{
		DocumentName: "Title deed KG-GAS-001", DocumentType: domain.DocumentTypeTitleDeed,
		FilePath: "/documents/kg-gas-001/title-deed.pdf", FileSize: 245_760, MimeType: "application/pdf",
		ParcelID: &parcels[0].ID, UploadedBy: users.alice.ID,
		Status: domain.DocumentStatusActive, Version: 1,
	}
	deed.Verify(users.officer.ID, now)
	survey := domain.Document{
		DocumentName: "Survey plan EP-RWA-203", DocumentType: domain.DocumentTypeSurveyPlan,
		FilePath: "/documents/ep-rwa-203/survey.pdf", FileSize: 1_048_576, MimeType: "application/pdf",
		ParcelID: &parcels[2].ID, RequestID: &stored[1].ID, UploadedBy: users.bob.ID,
		Status: domain.DocumentStatusPendingVerification, Version: 1,
	}
	for _, d := range []domain.Document{deed, survey} {
		d.CreatedAt = now
		if _, err := st.CreateDocument(ctx, d); err != nil {
			return fmt.Errorf("could not create document %q: %w", d.DocumentName, err)
		}
	}

	return nil
}

// seedCommand loads a small sample registry into an empty database.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fills an empty database with sample users, parcels, ownerships, requests and documents",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stats, err := strg.UserStats(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not count users", zap.Error(err))
			}
			if stats.Total > 0 {
				logger.Info(ctx, "database already has users, skipping seed", zap.Int64("users", stats.Total))

				return
			}

			if err := strg.WithTx(ctx, func(st storage.AllStorage) error {
				return seed(ctx, st, time.Now())
			}); err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}

			logger.Info(ctx, "database seeded", zap.String("password", seedPassword))
		},
	}

	return cmd
}
