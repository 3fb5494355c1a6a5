package checkout

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	orderrepo "github.com/dikiindrasaputra/omahjajanwatir/repository/order"
	profilerepo "github.com/dikiindrasaputra/omahjajanwatir/repository/profile"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/rabbitmq"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/errors"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/logger"
	"go.uber.org/zap"
)

type CheckoutApp interface {
	Checkout(ctx context.Context, userID string, req *model.CheckoutRequest) (string, error)
}

type checkoutAppImpl struct {
	orderRepo   orderrepo.OrderRepository
	profileRepo profilerepo.ProfileRepository
	publisher   *rabbitmq.Publisher
}

func NewCheckoutApp(orderRepo orderrepo.OrderRepository, profileRepo profilerepo.ProfileRepository, publisher *rabbitmq.Publisher) CheckoutApp {
	return &checkoutAppImpl{
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

// Checkout turns a client-supplied cart into a pesanan row plus its
// dipesan rows and returns the new order id.
//
// The two inserts are separate remote writes with no transaction around
// them. When the line insert fails the order row has already been
// committed and stays behind; that case is logged with the order id.
func (s *checkoutAppImpl) Checkout(ctx context.Context, userID string, req *model.CheckoutRequest) (string, error) {
	if req == nil || len(req.Items) == 0 {
		return "", errors.SetCustomError(constant.ErrEmptyCart)
	}

	statusID, err := s.orderRepo.ResolveCheckoutStatusID(ctx)
	if err != nil {
		if stderrors.Is(err, supabase.ErrNotFound) {
			logger.Error("[Checkout] status 'proses' row missing", zap.String("user_id", userID))
			return "", errors.SetCustomError(constant.ErrMissingStatusConfig)
		}
		if stderrors.Is(err, supabase.ErrNotConnected) {
			return "", errors.SetCustomError(constant.ErrRemoteUnavailable)
		}
		logger.Error("[Checkout] err ResolveCheckoutStatusID", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if stderrors.Is(err, supabase.ErrNotConnected) {
			return "", errors.SetCustomError(constant.ErrRemoteUnavailable)
		}
		logger.Error("[Checkout] err profileRepo.Get", zap.String("user_id", userID), zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	var totalHarga int64
	for _, item := range req.Items {
		totalHarga += item.ProductPrice.Int64() * item.Jumlah.Int64()
	}

	nomor := orderNumber(time.Now(), userID)

	orderID, err := s.orderRepo.InsertOrder(ctx, &model.NewOrder{
		UserID:     userID,
		StatusID:   statusID,
		TotalHarga: totalHarga,
		Catatan:    req.Catatan,
		Nomor:      nomor,
		Pemesan:    profile.NamaLengkap,
	})
	if err != nil {
		logger.Error("[Checkout] err InsertOrder", zap.String("user_id", userID), zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	lines := make([]model.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, model.OrderLine{
			PesananID: orderID,
			ProductID: item.ProductID,
			Jumlah:    item.Jumlah.Int64(),
			Harga:     item.ProductPrice.Int64(),
			UserID:    userID,
		})
	}

	if err := s.orderRepo.InsertOrderLines(ctx, lines); err != nil {
		// The pesanan row above is already committed; nothing rolls it back.
		logger.Error("[Checkout] err InsertOrderLines, order row left without lines",
			zap.String("order_id", orderID),
			zap.String("user_id", userID),
			zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.OrderCreatedMessage{
			OrderID:    orderID,
			UserID:     userID,
			Nomor:      nomor,
			TotalHarga: totalHarga,
			CreatedAt:  time.Now(),
		}
		if err := s.publisher.PublishOrderCreated(msg); err != nil {
			logger.Error("[Checkout] err PublishOrderCreated", zap.String("order_id", orderID), zap.String("error", err.Error()))
		}
	}

	return orderID, nil
}

// orderNumber builds the human-readable identifier
// ORD-<YYYYMMDDHHMMSS>-<first 4 chars of user id>. Two checkouts in the
// same second by users sharing an id prefix produce the same nomor.
func orderNumber(now time.Time, userID string) string {
	prefix := userID
	if len(prefix) > constant.OrderNumberUserIDChars {
		prefix = prefix[:constant.OrderNumberUserIDChars]
	}
	return fmt.Sprintf("%s-%s-%s", constant.OrderNumberPrefix, now.Format(constant.OrderNumberTimeLayout), prefix)
}
