package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"garage/config"
	otelMocks "garage/infras/otel/mocks"
	catalogMocks "garage/internal/domains/catalog/mocks"
	"garage/internal/domains/catalog/model"
	"garage/internal/domains/catalog/model/dto"
	"garage/internal/domains/catalog/service"
	cacheMocks "garage/shared/cache/mocks"
	"garage/shared/constant"
)

type catalogFixture struct {
	repo    *catalogMocks.MockService
	cache   *cacheMocks.MockRedisCache
	service service.Catalog
}

func newCatalogFixture(ctrl *gomock.Controller) *catalogFixture {
	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f := &catalogFixture{
		repo:  catalogMocks.NewMockService(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.service = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func (f *catalogFixture) expectListFlush(t *testing.T) func() {
	t.Helper()

	flushed := make(chan struct{}, 2)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) error {
		flushed <- struct{}{}

		return nil
	}).Times(2)

	return func() {
		t.Helper()

		for i := 0; i < 2; i++ {
			select {
			case <-flushed:
			case <-time.After(time.Second):
				t.Fatal("list caches were not invalidated")
			}
		}
	}
}

func TestCatalogCreate(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	t.Run("inserts an active service by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newCatalogFixture(ctrl)

		f.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, svc model.Service) error {
			assert.NotEmpty(t, svc.ID)
			assert.Equal(t, "Oil Change", svc.Name)
			assert.Equal(t, 45, svc.DurationMinutes)
			assert.True(t, svc.Active)
			assert.Equal(t, "admin-1", svc.CreatedBy)

			return nil
		})

		waitFlush := f.expectListFlush(t)

		err := f.service.Create(ctx, dto.CreateServiceRequest{
			Name:            "Oil Change",
			DurationMinutes: 45,
			Price:           59.90,
		})

		assert.NoError(t, err)

		waitFlush()
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newCatalogFixture(ctrl)

		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("duplicate name"))

		err := f.service.Create(ctx, dto.CreateServiceRequest{Name: "Oil Change", DurationMinutes: 45})

		assert.Error(t, err)
	})
}

func TestCatalogGet(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newCatalogFixture(ctrl)

		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Service{ID: "service-1", Name: "Detailing"}, nil)

		saved := make(chan struct{}, 1)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).DoAndReturn(
			func(context.Context, string, any, int) error {
				saved <- struct{}{}

				return nil
			})

		res, err := f.service.Get(ctx, "service-1")

		assert.NoError(t, err)
		assert.Equal(t, "Detailing", res.Name)

		select {
		case <-saved:
		case <-time.After(time.Second):
			t.Fatal("service was not cached")
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newCatalogFixture(ctrl)

		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Service{}, nil)

		_, err := f.service.Get(ctx, "missing")

		assert.Error(t, err)
	})
}

func TestCatalogUpdate(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	t.Run("empty request is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newCatalogFixture(ctrl)

		err := f.service.Update(ctx, dto.UpdateServiceRequest{}, "service-1")

		assert.Error(t, err)
	})

	t.Run("updates the stored fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newCatalogFixture(ctrl)

		price := 79.90
		f.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				got, ok := fields[model.FieldPrice].(*float64)
				assert.True(t, ok)
				assert.Equal(t, price, *got)

				return nil
			})

		deleted := make(chan struct{}, 1)
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) error {
			deleted <- struct{}{}

			return nil
		})

		waitFlush := f.expectListFlush(t)

		err := f.service.Update(ctx, dto.UpdateServiceRequest{Price: &price}, "service-1")

		assert.NoError(t, err)

		select {
		case <-deleted:
		case <-time.After(time.Second):
			t.Fatal("service cache entry was not dropped")
		}

		waitFlush()
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newCatalogFixture(ctrl)

		f.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := f.service.Update(ctx, dto.UpdateServiceRequest{Name: "New Name"}, "missing")

		assert.Error(t, err)
	})
}

func TestCatalogDelete(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	t.Run("removes the service and its cache entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newCatalogFixture(ctrl)

		f.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(ctx, gomock.Any()).Return(nil)

		deleted := make(chan struct{}, 1)
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) error {
			deleted <- struct{}{}

			return nil
		})

		waitFlush := f.expectListFlush(t)

		err := f.service.Delete(ctx, "service-1")

		assert.NoError(t, err)

		select {
		case <-deleted:
		case <-time.After(time.Second):
			t.Fatal("service cache entry was not dropped")
		}

		waitFlush()
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newCatalogFixture(ctrl)

		f.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := f.service.Delete(ctx, "missing")

		assert.Error(t, err)
	})
}
