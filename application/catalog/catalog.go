package catalog

import (
	"context"
	stderrors "errors"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	catalogrepo "github.com/dikiindrasaputra/omahjajanwatir/repository/catalog"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/errors"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
}

type catalogAppImpl struct {
	catalogRepo catalogrepo.CatalogRepository
}

func NewCatalogApp(catalogRepo catalogrepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{catalogRepo: catalogRepo}
}

// ListProducts returns the catalog with image URLs. A remote failure still
// yields an empty (non-nil) slice next to the error so the dashboard can
// render with a warning instead of breaking.
func (s *catalogAppImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] err catalogRepo.List", zap.String("error", err.Error()))
		return []model.Product{}, mapRemoteErr(err)
	}
	return products, nil
}

func (s *catalogAppImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if !stderrors.Is(err, supabase.ErrNotFound) {
			logger.Error("[GetProduct] err catalogRepo.GetByID", zap.String("product_id", id), zap.String("error", err.Error()))
		}
		return nil, mapRemoteErr(err)
	}
	return product, nil
}

func mapRemoteErr(err error) error {
	switch {
	case stderrors.Is(err, supabase.ErrNotFound):
		return errors.SetCustomError(constant.ErrNotFound)
	case stderrors.Is(err, supabase.ErrNotConnected):
		return errors.SetCustomError(constant.ErrRemoteUnavailable)
	default:
		return errors.SetCustomError(constant.ErrInternal)
	}
}
