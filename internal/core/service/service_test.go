package service_test

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memStore evaluates queries over in-memory records the way the
// storage adapter does.
type memStore struct {
	products    []domain.ProductRecord
	users       []domain.UserRecord
	productsErr error
	usersErr    error
	ignoreLimit bool
}

func (s memStore) ReadProducts(
	ctx context.Context, q domain.Query,
) ([]domain.ProductRecord, error) {
	if s.productsErr != nil {
		return nil, s.productsErr
	}

	var out []domain.ProductRecord
	for _, p := range s.products {
		if matchProduct(p, q.Where) {
			out = append(out, p)
		}
	}
	if q.OrderBy != nil && q.OrderBy.Field == domain.FieldCreatedAt {
		slices.SortStableFunc(out, func(a, b domain.ProductRecord) int {
			c := cmp.Compare(a.CreatedAt.Seconds, b.CreatedAt.Seconds)
			if q.OrderBy.Direction == domain.Desc {
				return -c
			}
			return c
		})
	}
	if !s.ignoreLimit && q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s memStore) ReadUsers(
	ctx context.Context, q domain.Query,
) ([]domain.UserRecord, error) {
	if s.usersErr != nil {
		return nil, s.usersErr
	}

	var out []domain.UserRecord
	for _, u := range s.users {
		ok := true
		for _, w := range q.Where {
			if w.Field == domain.FieldRole && w.Value != string(u.Role) {
				ok = false
			}
		}
		if ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func matchProduct(p domain.ProductRecord, where []domain.Predicate) bool {
	for _, w := range where {
		switch w.Field {
		case domain.FieldFeatured:
			if w.Value != p.Featured {
				return false
			}
		case domain.FieldAvailable:
			if w.Value != p.Available {
				return false
			}
		}
	}
	return true
}

type MockRecorder struct {
	mock.Mock
}

func (r *MockRecorder) RecordOutcome(
	ctx context.Context, v domain.QueryOutcome,
) error {
	args := r.Called(v.Region, v.Outcome, v.Count)
	return args.Error(0)
}

func product(id string, day int, featured, available bool) domain.ProductRecord {
	created := time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
	return domain.ProductRecord{
		ID:        id,
		Name:      "name-" + id,
		Slug:      "slug-" + id,
		BasePrice: 100000 * int64(day),
		Featured:  featured,
		Available: available,
		CreatedAt: domain.NewTimestamp(created),
		UpdatedAt: domain.NewTimestamp(created),
	}
}

func catalog() []domain.ProductRecord {
	return []domain.ProductRecord{
		product("f1", 1, true, true),
		product("f2", 2, true, true),
		product("f3", 3, true, false),
		product("f4", 4, true, true),
		product("f5", 5, true, true),
		product("g1", 6, false, true),
		product("g2", 7, false, false),
		product("g3", 8, false, true),
		product("g4", 9, false, true),
		product("g5", 10, false, true),
	}
}

func ids(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestQueries(t *testing.T) {
	f := service.FeaturedQuery()
	assert.Equal(t, domain.ProductsCollection, f.Collection)
	assert.Equal(t, []domain.Predicate{
		domain.Eq(domain.FieldFeatured, true),
		domain.Eq(domain.FieldAvailable, true),
	}, f.Where)
	require.NotNil(t, f.OrderBy)
	assert.Equal(t, domain.Order{Field: domain.FieldCreatedAt, Direction: domain.Desc}, *f.OrderBy)
	assert.Equal(t, 3, f.Limit)

	g := service.GeneralQuery()
	assert.Equal(t, domain.ProductsCollection, g.Collection)
	assert.Equal(t, []domain.Predicate{domain.Eq(domain.FieldAvailable, true)}, g.Where)
	require.NotNil(t, g.OrderBy)
	assert.Equal(t, domain.Desc, g.OrderBy.Direction)
	assert.Equal(t, 6, g.Limit)

	a := service.AdminQuery()
	assert.Equal(t, domain.UsersCollection, a.Collection)
	assert.Equal(t, []domain.Predicate{domain.Eq(domain.FieldRole, "admin")}, a.Where)
	assert.Nil(t, a.OrderBy)
	assert.Zero(t, a.Limit)
}

func TestServiceHomePage(t *testing.T) {
	phone := "+62 812-3456"
	admins := []domain.UserRecord{
		{ID: "c1", Role: domain.RoleCustomer},
		{ID: "a1", Role: domain.RoleAdmin, PhoneNumber: &phone},
	}

	t.Run("LiveSets", func(t *testing.T) {
		store := memStore{products: catalog(), users: admins}
		rec := new(MockRecorder)
		rec.On("RecordOutcome", domain.RegionNewCollection, domain.OutcomeLive, 3).Return(nil).Once()
		rec.On("RecordOutcome", domain.RegionProducts, domain.OutcomeLive, 6).Return(nil).Once()
		rec.On("RecordOutcome", domain.RegionContact, domain.OutcomeLive, 1).Return(nil).Once()

		s := service.New(store, store, service.ContactConfig{}, rec)
		page := s.HomePage(t.Context())

		assert.Equal(t, domain.SourceLive, page.NewCollection.Source)
		assert.Equal(t, []string{"f5", "f4", "f2"}, ids(page.NewCollection.Products))
		for _, p := range page.NewCollection.Products {
			assert.True(t, p.Featured && p.Available)
		}

		assert.Equal(t, domain.SourceLive, page.Products.Source)
		assert.Equal(t,
			[]string{"g5", "g4", "g3", "g1", "f5", "f4"},
			ids(page.Products.Products),
		)
		for _, p := range page.Products.Products {
			assert.True(t, p.Available)
		}

		recs, err := store.ReadProducts(t.Context(), service.FeaturedQuery())
		require.NoError(t, err)
		assert.Equal(t,
			service.SelectDisplaySet(service.NormalizeAll(recs, time.Now()), nil).Items,
			page.NewCollection.Items,
		)

		assert.True(t, page.Contact.Available)
		assert.Equal(t, "628123456", page.Contact.Number)
		assert.Len(t, page.Showcase, 3)

		rec.AssertExpectations(t)
	})

	t.Run("EmptyStore", func(t *testing.T) {
		s := service.New(memStore{}, memStore{}, service.ContactConfig{})
		page := s.HomePage(t.Context())

		assert.Equal(t, domain.SourceFallback, page.NewCollection.Source)
		assert.Equal(t, service.NewCollectionFallback(), page.NewCollection.Items)
		assert.Equal(t, domain.SourceFallback, page.Products.Source)
		assert.Equal(t, service.ProductsFallback(), page.Products.Items)
		assert.False(t, page.Contact.Available)
		assert.Equal(t, service.DefaultContactNotice, page.Contact.Notice)
	})

	t.Run("FailedReads", func(t *testing.T) {
		errUnavailable := errors.New("permission denied")
		store := memStore{
			productsErr: errUnavailable,
			users:       admins,
		}
		rec := new(MockRecorder)
		rec.On("RecordOutcome", domain.RegionNewCollection, domain.OutcomeFailed, 0).Return(nil).Once()
		rec.On("RecordOutcome", domain.RegionProducts, domain.OutcomeFailed, 0).Return(nil).Once()
		rec.On("RecordOutcome", domain.RegionContact, domain.OutcomeLive, 1).
			Return(errors.New("recorder down")).Once()

		s := service.New(store, store, service.ContactConfig{}, rec)
		page := s.HomePage(t.Context())

		assert.Equal(t, service.NewCollectionFallback(), page.NewCollection.Items)
		assert.Equal(t, service.ProductsFallback(), page.Products.Items)
		assert.True(t, page.Contact.Available)

		rec.AssertExpectations(t)
	})

	t.Run("StoreIgnoresLimit", func(t *testing.T) {
		store := memStore{products: catalog(), ignoreLimit: true}
		rec := new(MockRecorder)
		rec.On("RecordOutcome", domain.RegionNewCollection, domain.OutcomeLive, 3).Return(nil).Once()
		rec.On("RecordOutcome", domain.RegionProducts, domain.OutcomeLive, 6).Return(nil).Once()
		rec.On("RecordOutcome", domain.RegionContact, domain.OutcomeEmpty, 0).Return(nil).Once()

		s := service.New(store, store, service.ContactConfig{}, rec)
		page := s.HomePage(t.Context())

		assert.Equal(t, []string{"f5", "f4", "f2"}, ids(page.NewCollection.Products))
		assert.Len(t, page.NewCollection.Items, service.FeaturedLimit)
		assert.Equal(t,
			[]string{"g5", "g4", "g3", "g1", "f5", "f4"}, ids(page.Products.Products),
		)
		assert.Len(t, page.Products.Items, service.GeneralLimit)

		rec.AssertExpectations(t)
	})

	t.Run("FailedAdminRead", func(t *testing.T) {
		store := memStore{
			products: catalog(),
			usersErr: errors.New("network error"),
		}

		s := service.New(store, store, service.ContactConfig{})
		page := s.HomePage(t.Context())

		assert.Equal(t, domain.SourceLive, page.NewCollection.Source)
		assert.Equal(t, domain.SourceLive, page.Products.Source)
		assert.False(t, page.Contact.Available)
		assert.Empty(t, page.Contact.Link)
	})
}

func TestServiceContact(t *testing.T) {
	phone := "+62 812-3456"
	store := memStore{users: []domain.UserRecord{
		{ID: "a1", Role: domain.RoleAdmin, PhoneNumber: &phone},
	}}

	s := service.New(store, store, service.ContactConfig{})
	c := s.Contact(t.Context())

	assert.True(t, c.Available)
	assert.Contains(t, c.Link, "https://wa.me/628123456?text=")
}
