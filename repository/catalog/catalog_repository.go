package catalog

import (
	"context"

	"github.com/dikiindrasaputra/omahjajanwatir/model"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
)

type REST struct {
	client *supabase.Client
}

type CatalogRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

func NewCatalogRepository(client *supabase.Client) CatalogRepository {
	return &REST{client: client}
}

const productColumns = "*, product_images(product_url)"

func (r *REST) List(ctx context.Context) ([]model.Product, error) {
	if r.client == nil {
		return nil, supabase.ErrNotConnected
	}

	products := make([]model.Product, 0)
	err := r.client.From("products").
		Select(productColumns).
		Get(ctx, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *REST) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if r.client == nil {
		return nil, supabase.ErrNotConnected
	}

	var product model.Product
	err := r.client.From("products").
		Select(productColumns).
		Eq("id", id).
		Single().
		Get(ctx, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
