// Package content exposes one read operation per CMS content type. Each
// operation forwards to the CMS when credentials are configured and serves
// the embedded placeholder data otherwise, in the same response shape.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"care-site-backend/internal/cms"
	"care-site-backend/internal/fallback"
	"care-site-backend/internal/model"
)

// CMS endpoint names.
const (
	EndpointNews           = "news"
	EndpointStaff          = "staff"
	EndpointFaq            = "faq"
	EndpointServices       = "services"
	EndpointRentalCategory = "list-category"
	EndpointSaleItem       = "sale-item"
	EndpointRecruit        = "recruit"
)

var (
	// ErrNotFound is the same value as cms.ErrNotFound, so errors.Is matches
	// both locally raised and remote not-found conditions.
	ErrNotFound = cms.ErrNotFound
	// ErrInvalidArgument is returned for an empty id or slug.
	ErrInvalidArgument = errors.New("content: invalid argument")
	// ErrUnavailable is returned for content that has no placeholder data
	// and therefore needs the CMS.
	ErrUnavailable = errors.New("content: unavailable without CMS credentials")
)

// Service is safe for concurrent use; it holds no mutable state.
type Service struct {
	state cms.State
	local fallback.Provider
}

// NewService creates the accessor layer. A nil provider means the embedded
// datasets.
func NewService(state cms.State, local fallback.Provider) *Service {
	if local == nil {
		local = fallback.Embedded{}
	}
	return &Service{state: state, local: local}
}

// Remote reports whether reads go to the CMS.
func (s *Service) Remote() bool {
	return s.state.IsConfigured()
}

// ListNews lists news posts.
func (s *Service) ListNews(ctx context.Context, q *cms.Queries) (*model.ListResponse[model.News], error) {
	return list(ctx, s, EndpointNews, q, s.local.News)
}

// GetNewsDetail returns a single news post by content id.
func (s *Service) GetNewsDetail(ctx context.Context, contentID string, q *cms.Queries) (*model.News, error) {
	if strings.TrimSpace(contentID) == "" {
		return nil, fmt.Errorf("%w: empty news id", ErrInvalidArgument)
	}
	if api, ok := s.state.Client(); ok {
		return cms.GetListDetail[model.News](ctx, api, EndpointNews, contentID, q)
	}

	news, err := s.local.News()
	if err != nil {
		return nil, err
	}
	for i := range news {
		if news[i].ID == contentID {
			return &news[i], nil
		}
	}
	return nil, fmt.Errorf("%w: news %q", ErrNotFound, contentID)
}

// ListStaff lists staff profiles.
func (s *Service) ListStaff(ctx context.Context, q *cms.Queries) (*model.ListResponse[model.Staff], error) {
	return list(ctx, s, EndpointStaff, q, s.local.Staff)
}

// ListFaq lists FAQ entries. There is no placeholder FAQ data.
func (s *Service) ListFaq(ctx context.Context, q *cms.Queries) (*model.ListResponse[model.Faq], error) {
	return list(ctx, s, EndpointFaq, q, none[model.Faq])
}

// ListServices lists service overview pages.
func (s *Service) ListServices(ctx context.Context, q *cms.Queries) (*model.ListResponse[model.Service], error) {
	return list(ctx, s, EndpointServices, q, none[model.Service])
}

// ListRentalCategory lists rental equipment categories.
func (s *Service) ListRentalCategory(ctx context.Context, q *cms.Queries) (*model.ListResponse[model.RentalCategory], error) {
	return list(ctx, s, EndpointRentalCategory, q, none[model.RentalCategory])
}

// GetRentalCategoryBySlug looks a category up by slug only. An unknown slug
// is ErrNotFound; unlike GetSaleItemBySlug there is no id lookup.
func (s *Service) GetRentalCategoryBySlug(ctx context.Context, slug string) (*model.RentalCategory, error) {
	if err := checkSlug("rental category", slug); err != nil {
		return nil, err
	}
	api, ok := s.state.Client()
	if !ok {
		return nil, fmt.Errorf("%w: rental category %q", ErrNotFound, slug)
	}

	resp, err := cms.GetList[model.RentalCategory](ctx, api, EndpointRentalCategory, slugQuery(slug))
	if err != nil {
		return nil, err
	}
	if len(resp.Contents) == 0 {
		return nil, fmt.Errorf("%w: rental category %q", ErrNotFound, slug)
	}
	return &resp.Contents[0], nil
}

// ListSaleItem lists items for sale.
func (s *Service) ListSaleItem(ctx context.Context, q *cms.Queries) (*model.ListResponse[model.SaleItem], error) {
	return list(ctx, s, EndpointSaleItem, q, none[model.SaleItem])
}

// GetSaleItemBySlug looks an item up by slug and, when no item has that
// slug, treats the argument as a content id. Links to sale items use either
// form.
func (s *Service) GetSaleItemBySlug(ctx context.Context, slug string) (*model.SaleItem, error) {
	if err := checkSlug("sale item", slug); err != nil {
		return nil, err
	}
	api, ok := s.state.Client()
	if !ok {
		return nil, fmt.Errorf("%w: sale item %q", ErrNotFound, slug)
	}

	resp, err := cms.GetList[model.SaleItem](ctx, api, EndpointSaleItem, slugQuery(slug))
	if err != nil {
		return nil, err
	}
	if len(resp.Contents) > 0 {
		return &resp.Contents[0], nil
	}
	return cms.GetListDetail[model.SaleItem](ctx, api, EndpointSaleItem, slug, nil)
}

// GetRecruit returns the recruiting singleton. Without credentials it fails
// with ErrUnavailable; there is no placeholder recruiting content.
func (s *Service) GetRecruit(ctx context.Context) (*model.Recruit, error) {
	api, ok := s.state.Client()
	if !ok {
		return nil, fmt.Errorf("%w: recruit", ErrUnavailable)
	}
	return cms.GetObject[model.Recruit](ctx, api, EndpointRecruit, nil)
}

func list[T any](ctx context.Context, s *Service, endpoint string, q *cms.Queries, local func() ([]T, error)) (*model.ListResponse[T], error) {
	if api, ok := s.state.Client(); ok {
		return cms.GetList[T](ctx, api, endpoint, q)
	}
	records, err := local()
	if err != nil {
		return nil, err
	}
	return model.NewLocalList(records), nil
}

func none[T any]() ([]T, error) {
	return nil, nil
}

// checkSlug rejects empty slugs and slugs carrying filter operator brackets,
// which would otherwise extend the slug[equals] expression.
func checkSlug(kind, slug string) error {
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf("%w: empty %s slug", ErrInvalidArgument, kind)
	}
	if strings.ContainsAny(slug, "[]") {
		return fmt.Errorf("%w: %s slug %q contains filter syntax", ErrInvalidArgument, kind, slug)
	}
	return nil
}

func slugQuery(slug string) *cms.Queries {
	return &cms.Queries{
		Filters: "slug[equals]" + slug,
		Limit:   cms.Int(1),
	}
}
