package services

import (
	"context"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/pkg/helpers"
)

// ListingService defines the interface for collection listings
type ListingService interface {
	List(ctx context.Context, collection string, params repositories.ListParams) (*dto.ListResponse, error)
}

// listingStore runs descriptor-driven listing queries.
type listingStore interface {
	List(ctx context.Context, name string, params repositories.ListParams) ([]interface{}, int64, error)
}

// listingServiceImpl implements ListingService
type listingServiceImpl struct {
	store    listingStore
	resolver *IdentityResolver
}

// NewListingService creates a new ListingService
func NewListingService(store listingStore, resolver *IdentityResolver) ListingService {
	return &listingServiceImpl{
		store:    store,
		resolver: resolver,
	}
}

// List returns one page of a collection with pagination meta. Rows that
// carry a studentId reference come back with the resolved student summary
// attached; rooms come back with their derived status.
func (s *listingServiceImpl) List(ctx context.Context, collection string, params repositories.ListParams) (*dto.ListResponse, error) {
	items, total, err := s.store.List(ctx, collection, params)
	if err != nil {
		return nil, err
	}

	data := make([]interface{}, 0, len(items))
	for _, item := range items {
		out, err := s.present(ctx, item)
		if err != nil {
			return nil, err
		}
		data = append(data, out)
	}

	return &dto.ListResponse{
		Data: data,
		Meta: helpers.NewPaginationMeta(total, params.Page, params.Limit),
	}, nil
}

// present enriches a listed row for the response. Identity resolution is
// per row; an unresolvable reference leaves the student field null.
func (s *listingServiceImpl) present(ctx context.Context, item interface{}) (interface{}, error) {
	switch v := item.(type) {
	case *models.Leave:
		summary, err := s.resolver.Resolve(ctx, v.StudentID)
		if err != nil {
			return nil, err
		}
		v.Student = summary
		return v, nil
	case *models.Complaint:
		summary, err := s.resolver.Resolve(ctx, v.StudentID)
		if err != nil {
			return nil, err
		}
		v.Student = summary
		return v, nil
	case *models.Room:
		resp := dto.NewRoomResponse(v)
		return resp, nil
	default:
		return item, nil
	}
}
