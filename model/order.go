package model

import "time"

// Status row classifying an order's fulfillment stage. Lookup table owned
// by the hosted store.
type Status struct {
	ID      int64  `json:"id"`
	Nama    string `json:"nama"`
	Selesai bool   `json:"selesai"`
}

// Order row from the `pesanan` table. Status is populated when the read
// embeds the `status(nama, selesai)` relation.
type Order struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	StatusID   int64     `json:"status_id"`
	TotalHarga int64     `json:"total_harga"`
	Catatan    string    `json:"catatan"`
	Nomor      string    `json:"nomor"`
	Pemesan    string    `json:"pemesan"`
	CreatedAt  time.Time `json:"created_at"`
	Status     *Status   `json:"status,omitempty"`
}

// NewOrder is the insert payload for `pesanan`; the store generates id and
// created_at.
type NewOrder struct {
	UserID     string `json:"user_id"`
	StatusID   int64  `json:"status_id"`
	TotalHarga int64  `json:"total_harga"`
	Catatan    string `json:"catatan"`
	Nomor      string `json:"nomor"`
	Pemesan    string `json:"pemesan"`
}

// OrderLine row from the `dipesan` table. Product is populated when the
// read embeds `products(nama, harga, product_images(product_url))`.
type OrderLine struct {
	PesananID string            `json:"pesanan_id"`
	ProductID string            `json:"products_id"`
	Jumlah    int64             `json:"jumlah"`
	Harga     int64             `json:"harga"`
	UserID    string            `json:"user_id"`
	Product   *OrderLineProduct `json:"products,omitempty"`
}

type OrderLineProduct struct {
	Nama   string         `json:"nama"`
	Harga  int64          `json:"harga"`
	Images []ProductImage `json:"product_images"`
}

// OrderSummary annotates an order with the summed quantity of its lines,
// for the my-orders listing.
type OrderSummary struct {
	Order
	TotalItems int64 `json:"total_items"`
}

// OrderConfirmation is one user-scoped order plus its lines.
type OrderConfirmation struct {
	Order Order
	Items []OrderLine
}
