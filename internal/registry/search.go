package registry

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SearchLimit is the maximum number of hits returned per entity kind.
const SearchLimit = 10

// Search looks query up across parcels, requests, documents and, for staff,
// users. Citizens only get their own requests and documents back.
func (r *registry) Search(ctx context.Context, actor domain.Actor, query string) (*domain.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, serrors.Invalid("q", "is required")
	}

	page := domain.PageRequest{Size: SearchLimit}.Normalize()
	results := &domain.SearchResults{
		Parcels:   []domain.Parcel{},
		Requests:  []domain.Request{},
		Documents: []domain.Document{},
		Users:     []domain.User{},
	}

	var self *domain.UserID
	if !actor.IsStaff() {
		self = &actor.UserID
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, _, err := r.storage.ListParcels(ctx, storage.ParcelFilter{Search: query}, page)
		if err != nil {
			return fmt.Errorf("could not search land parcels: %w", err)
		}
		results.Parcels = append(results.Parcels, items...)

		return nil
	})
	g.Go(func() error {
		items, _, err := r.storage.ListRequests(ctx, storage.RequestFilter{Search: query, RequesterID: self}, page)
		if err != nil {
			return fmt.Errorf("could not search requests: %w", err)
		}
		results.Requests = append(results.Requests, items...)

		return nil
	})
	g.Go(func() error {
		items, _, err := r.storage.ListDocuments(ctx, storage.DocumentFilter{Search: query, UploadedBy: self}, page)
		if err != nil {
			return fmt.Errorf("could not search documents: %w", err)
		}
		results.Documents = append(results.Documents, items...)

		return nil
	})
	if actor.IsStaff() {
		g.Go(func() error {
			items, _, err := r.storage.ListUsers(ctx, storage.UserFilter{Search: query}, page)
			if err != nil {
				return fmt.Errorf("could not search users: %w", err)
			}
			results.Users = append(results.Users, items...)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return results, nil
}
