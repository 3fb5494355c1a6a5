package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrRemoteUnavailable
	ErrMissingStatusConfig
	ErrEmptyCart
	ErrCredentialRejected
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "terjadi kesalahan, coba lagi ya",
	ErrNotFound:            "data tidak ditemukan",
	ErrInvalidRequest:      "permintaan tidak valid",
	ErrUnauthorize:         "login dulu, ya Bestiee",
	ErrRemoteUnavailable:   "koneksi ke server data belum tersambung",
	ErrMissingStatusConfig: "gagal membuat pesanan: status 'proses' tidak ditemukan",
	ErrEmptyCart:           "keranjang kosong, tambahkan produk terlebih dahulu",
	ErrCredentialRejected:  "email atau password tidak valid",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrRemoteUnavailable:   http.StatusInternalServerError,
	ErrMissingStatusConfig: http.StatusInternalServerError,
	ErrEmptyCart:           http.StatusBadRequest,
	ErrCredentialRejected:  http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrRemoteUnavailable:   "0005",
	ErrMissingStatusConfig: "0006",
	ErrEmptyCart:           "0007",
	ErrCredentialRejected:  "0008",
}
