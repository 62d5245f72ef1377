package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/dto"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/port/mock"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

const testCategoryID = domain.ID("112233445566778899aabbcc")

func setupCategoryService(t *testing.T) (*CategoryService, *mock.MockCategoryPort, *mock.MockProductPort, *mock.MockCacheVersionPort) {
	ctrl := gomock.NewController(t)
	categoryRepo := mock.NewMockCategoryPort(ctrl)
	productRepo := mock.NewMockProductPort(ctrl)
	versions := mock.NewMockCacheVersionPort(ctrl)
	txManager := mock.NewMockTransactionManager(ctrl)
	txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	productService := NewProductService(productRepo, versions)
	return NewCategoryService(categoryRepo, productService, versions, txManager), categoryRepo, productRepo, versions
}

func TestCategoryService_CreateCategory(t *testing.T) {
	t.Run("defaults to active", func(t *testing.T) {
		svc, categoryRepo, _, versions := setupCategoryService(t)

		categoryRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Category) error {
				c.ID = testCategoryID
				return nil
			})
		versions.EXPECT().Bump(gomock.Any(), ScopeCategories).Return(nil)

		category, err := svc.CreateCategory(context.Background(), &dto.CreateCategoryRequest{
			Name:        "Home Appliances",
			Description: "kitchen and laundry",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !category.IsActive {
			t.Fatal("expected category to default to active")
		}
		if category.Slug != "home-appliances" {
			t.Fatalf("expected slug 'home-appliances', got %q", category.Slug)
		}
	})

	t.Run("explicit inactive", func(t *testing.T) {
		svc, categoryRepo, _, versions := setupCategoryService(t)

		categoryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		versions.EXPECT().Bump(gomock.Any(), ScopeCategories).Return(nil)

		inactive := false
		category, err := svc.CreateCategory(context.Background(), &dto.CreateCategoryRequest{
			Name:     "Legacy",
			IsActive: &inactive,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if category.IsActive {
			t.Fatal("expected category to be inactive")
		}
	})
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	t.Run("renaming regenerates the slug", func(t *testing.T) {
		svc, categoryRepo, _, versions := setupCategoryService(t)

		categoryRepo.EXPECT().GetByID(gomock.Any(), testCategoryID).Return(&domain.Category{
			ID:       testCategoryID,
			Name:     "Home Appliances",
			Slug:     "home-appliances",
			IsActive: true,
		}, nil)
		categoryRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		versions.EXPECT().Bump(gomock.Any(), ScopeCategories).Return(nil)

		category, err := svc.UpdateCategory(context.Background(), testCategoryID, &dto.UpdateCategoryRequest{
			Name: "Small Appliances",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if category.Slug != "small-appliances" {
			t.Fatalf("expected slug 'small-appliances', got %q", category.Slug)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, categoryRepo, _, _ := setupCategoryService(t)

		categoryRepo.EXPECT().
			GetByID(gomock.Any(), testCategoryID).
			Return(nil, serviceerrors.NewNotFoundError("entity not found"))

		_, err := svc.UpdateCategory(context.Background(), testCategoryID, &dto.UpdateCategoryRequest{Name: "x"})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("success when no products reference it", func(t *testing.T) {
		svc, categoryRepo, productRepo, versions := setupCategoryService(t)

		productRepo.EXPECT().CountByCategory(gomock.Any(), testCategoryID).Return(int64(0), nil)
		categoryRepo.EXPECT().Delete(gomock.Any(), testCategoryID).Return(nil)
		versions.EXPECT().Bump(gomock.Any(), ScopeCategories).Return(nil)

		if err := svc.DeleteCategory(context.Background(), testCategoryID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("blocked while products are linked", func(t *testing.T) {
		svc, _, productRepo, _ := setupCategoryService(t)

		productRepo.EXPECT().CountByCategory(gomock.Any(), testCategoryID).Return(int64(3), nil)

		err := svc.DeleteCategory(context.Background(), testCategoryID)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("count error propagates", func(t *testing.T) {
		svc, _, productRepo, _ := setupCategoryService(t)

		productRepo.EXPECT().CountByCategory(gomock.Any(), testCategoryID).Return(int64(0), errors.New("db error"))

		if err := svc.DeleteCategory(context.Background(), testCategoryID); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
