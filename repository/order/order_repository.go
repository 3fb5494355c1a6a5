package order

import (
	"context"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
)

type REST struct {
	client *supabase.Client
}

type OrderRepository interface {
	ResolveCheckoutStatusID(ctx context.Context) (int64, error)
	InsertOrder(ctx context.Context, req *model.NewOrder) (string, error)
	InsertOrderLines(ctx context.Context, lines []model.OrderLine) error
	GetOrderForUser(ctx context.Context, orderID, userID string) (*model.Order, error)
	ListOrderLines(ctx context.Context, orderID string) ([]model.OrderLine, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListLineQuantities(ctx context.Context, orderID string) ([]int64, error)
}

func NewOrderRepository(client *supabase.Client) OrderRepository {
	return &REST{client: client}
}

// ResolveCheckoutStatusID looks up the open-order status row. When several
// rows match, the first wins; no row at all means the status table was
// never seeded and checkout cannot proceed.
func (r *REST) ResolveCheckoutStatusID(ctx context.Context) (int64, error) {
	if r.client == nil {
		return 0, supabase.ErrNotConnected
	}

	var rows []struct {
		ID int64 `json:"id"`
	}
	err := r.client.From("status").
		Select("id").
		Eq("nama", constant.CheckoutStatusName).
		Eq("selesai", constant.CheckoutStatusSelesai).
		Limit(1).
		Get(ctx, &rows)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, supabase.ErrNotFound
	}
	return rows[0].ID, nil
}

func (r *REST) InsertOrder(ctx context.Context, req *model.NewOrder) (string, error) {
	if r.client == nil {
		return "", supabase.ErrNotConnected
	}

	var created []model.Order
	if err := r.client.From("pesanan").Insert(ctx, req, &created); err != nil {
		return "", err
	}
	if len(created) == 0 {
		return "", &supabase.RemoteError{Message: "insert pesanan returned no row"}
	}
	return created[0].ID, nil
}

func (r *REST) InsertOrderLines(ctx context.Context, lines []model.OrderLine) error {
	if r.client == nil {
		return supabase.ErrNotConnected
	}
	return r.client.From("dipesan").Insert(ctx, lines, nil)
}

func (r *REST) GetOrderForUser(ctx context.Context, orderID, userID string) (*model.Order, error) {
	if r.client == nil {
		return nil, supabase.ErrNotConnected
	}

	var ord model.Order
	err := r.client.From("pesanan").
		Select("*, status(nama, selesai)").
		Eq("id", orderID).
		Eq("user_id", userID).
		Single().
		Get(ctx, &ord)
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

func (r *REST) ListOrderLines(ctx context.Context, orderID string) ([]model.OrderLine, error) {
	if r.client == nil {
		return nil, supabase.ErrNotConnected
	}

	lines := make([]model.OrderLine, 0)
	err := r.client.From("dipesan").
		Select("*, products(nama, harga, product_images(product_url))").
		Eq("pesanan_id", orderID).
		Get(ctx, &lines)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *REST) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if r.client == nil {
		return nil, supabase.ErrNotConnected
	}

	orders := make([]model.Order, 0)
	err := r.client.From("pesanan").
		Select("*, status(nama, selesai)").
		Eq("user_id", userID).
		Order("created_at", true).
		Get(ctx, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *REST) ListLineQuantities(ctx context.Context, orderID string) ([]int64, error) {
	if r.client == nil {
		return nil, supabase.ErrNotConnected
	}

	var rows []struct {
		Jumlah int64 `json:"jumlah"`
	}
	err := r.client.From("dipesan").
		Select("jumlah").
		Eq("pesanan_id", orderID).
		Get(ctx, &rows)
	if err != nil {
		return nil, err
	}

	quantities := make([]int64, 0, len(rows))
	for _, row := range rows {
		quantities = append(quantities, row.Jumlah)
	}
	return quantities, nil
}
