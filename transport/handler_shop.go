package transport

import (
	"net/http"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/errors"
	"github.com/gorilla/mux"
)

type productDetailResponse struct {
	Success bool           `json:"success"`
	Product *model.Product `json:"product,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Dashboard lists the catalog. A remote failure degrades to an empty
// catalog with a warning, never an error page.
func (rh *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	products, err := rh.CatalogApp.ListProducts(r.Context())
	if err != nil {
		rh.render(w, r, "dashboard", products, model.Flash{Category: "error", Message: "yahh, nunggu lebih lama: " + err.Error()})
		return
	}
	rh.render(w, r, "dashboard", products)
}

// GetProductDetail returns one product as JSON for the detail modal
func (rh *RestHandler) GetProductDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := rh.CatalogApp.GetProduct(r.Context(), id)
	if err != nil {
		if errors.TypeOf(err) == constant.ErrNotFound {
			writeJSON(w, http.StatusNotFound, productDetailResponse{Success: false, Message: "Produk tidak ditemukan."})
			return
		}
		writeJSON(w, http.StatusInternalServerError, productDetailResponse{Success: false, Message: "Gagal mengambil detail produk: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, productDetailResponse{Success: true, Product: product})
}

// Keranjang renders the cart page; the cart itself lives client-side
func (rh *RestHandler) Keranjang(w http.ResponseWriter, r *http.Request) {
	rh.render(w, r, "keranjang", nil)
}
