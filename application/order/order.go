package order

import (
	"context"
	stderrors "errors"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	orderrepo "github.com/dikiindrasaputra/omahjajanwatir/repository/order"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/errors"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	GetConfirmation(ctx context.Context, orderID, userID string) (*model.OrderConfirmation, error)
	ListMyOrders(ctx context.Context, userID string) ([]model.OrderSummary, error)
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
}

func NewOrderApp(orderRepo orderrepo.OrderRepository) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo}
}

// GetConfirmation loads one order scoped to its owner, with status and
// line items. An order that exists but belongs to someone else is
// indistinguishable from a missing one.
func (s *orderAppImpl) GetConfirmation(ctx context.Context, orderID, userID string) (*model.OrderConfirmation, error) {
	ord, err := s.orderRepo.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		if stderrors.Is(err, supabase.ErrNotFound) {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if stderrors.Is(err, supabase.ErrNotConnected) {
			return nil, errors.SetCustomError(constant.ErrRemoteUnavailable)
		}
		logger.Error("[GetConfirmation] err GetOrderForUser", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := s.orderRepo.ListOrderLines(ctx, orderID)
	if err != nil {
		logger.Error("[GetConfirmation] err ListOrderLines", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderConfirmation{
		Order: *ord,
		Items: items,
	}, nil
}

// ListMyOrders returns the user's orders newest first, each annotated with
// the summed quantity of its lines. One quantities read per order; fine at
// this shop's scale.
func (s *orderAppImpl) ListMyOrders(ctx context.Context, userID string) ([]model.OrderSummary, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		if stderrors.Is(err, supabase.ErrNotConnected) {
			return nil, errors.SetCustomError(constant.ErrRemoteUnavailable)
		}
		logger.Error("[ListMyOrders] err ListByUser", zap.String("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	summaries := make([]model.OrderSummary, 0, len(orders))
	for _, ord := range orders {
		quantities, err := s.orderRepo.ListLineQuantities(ctx, ord.ID)
		if err != nil {
			logger.Error("[ListMyOrders] err ListLineQuantities", zap.String("order_id", ord.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		var totalItems int64
		for _, q := range quantities {
			totalItems += q
		}

		summaries = append(summaries, model.OrderSummary{
			Order:      ord,
			TotalItems: totalItems,
		})
	}

	return summaries, nil
}
