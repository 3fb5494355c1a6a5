package transport

import (
	"encoding/json"
	"net/http"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	utilsContext "github.com/dikiindrasaputra/omahjajanwatir/utils/context"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/errors"
	validatorx "github.com/dikiindrasaputra/omahjajanwatir/utils/validator"
	"github.com/gorilla/mux"
)

// Checkout converts the submitted cart into an order and redirects to the
// confirmation page, or back to the cart with a flash on any failure.
func (rh *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utilsContext.GetIdentity(ctx)

	if err := r.ParseForm(); err != nil {
		rh.redirectWithFlash(w, r, "/keranjang", "error", errors.SetCustomError(constant.ErrInvalidRequest).Error())
		return
	}

	cartJSON := r.PostFormValue("cart_items")
	if cartJSON == "" {
		rh.redirectWithFlash(w, r, "/keranjang", "error", errors.SetCustomError(constant.ErrEmptyCart).Error())
		return
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(cartJSON), &items); err != nil {
		rh.redirectWithFlash(w, r, "/keranjang", "error", errors.SetCustomError(constant.ErrInvalidRequest).Error())
		return
	}
	if len(items) == 0 {
		rh.redirectWithFlash(w, r, "/keranjang", "error", "Pilih produk yang ingin dibeli.")
		return
	}

	req := &model.CheckoutRequest{
		Items:   items,
		Catatan: r.PostFormValue("catatan"),
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		rh.redirectWithFlash(w, r, "/keranjang", "error", errors.SetCustomError(constant.ErrInvalidRequest).Error())
		return
	}

	orderID, err := rh.CheckoutApp.Checkout(ctx, identity.ID, req)
	if err != nil {
		rh.redirectWithFlash(w, r, "/keranjang", "error", err.Error())
		return
	}

	rh.redirectWithFlash(w, r, "/order_confirmation/"+orderID, "success", "Pesanan berhasil dibuat!")
}

// OrderConfirmation renders one order with its line items, scoped to the
// logged-in user
func (rh *RestHandler) OrderConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utilsContext.GetIdentity(ctx)
	orderID := mux.Vars(r)["order_id"]

	confirmation, err := rh.OrderApp.GetConfirmation(ctx, orderID, identity.ID)
	if err != nil {
		rh.render(w, r, "order_confirmation", nil, model.Flash{Category: "error", Message: "Detail pesanan tidak ditemukan"})
		return
	}
	rh.render(w, r, "order_confirmation", confirmation)
}

// PesananSaya lists the user's orders with item counts, newest first
func (rh *RestHandler) PesananSaya(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utilsContext.GetIdentity(ctx)

	orders, err := rh.OrderApp.ListMyOrders(ctx, identity.ID)
	if err != nil {
		rh.render(w, r, "pesanan_saya", []model.OrderSummary{}, model.Flash{Category: "error", Message: "Gagal memuat daftar pesanan Anda: " + err.Error()})
		return
	}
	rh.render(w, r, "pesanan_saya", orders)
}
