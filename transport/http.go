package transport

import (
	"net/http"

	authapp "github.com/dikiindrasaputra/omahjajanwatir/application/auth"
	catalogapp "github.com/dikiindrasaputra/omahjajanwatir/application/catalog"
	checkoutapp "github.com/dikiindrasaputra/omahjajanwatir/application/checkout"
	orderapp "github.com/dikiindrasaputra/omahjajanwatir/application/order"
	profileapp "github.com/dikiindrasaputra/omahjajanwatir/application/profile"
	"github.com/dikiindrasaputra/omahjajanwatir/cmd/config"
	redisrepo "github.com/dikiindrasaputra/omahjajanwatir/repository/redis"
	"github.com/gorilla/mux"
)

type RestHandler struct {
	Config      *config.Config
	AuthApp     authapp.AuthApp
	ProfileApp  profileapp.ProfileApp
	CatalogApp  catalogapp.CatalogApp
	CheckoutApp checkoutapp.CheckoutApp
	OrderApp    orderapp.OrderApp
	RedisRepo   redisrepo.Repository
}

func NewTransport(cfg *config.Config, authApp authapp.AuthApp, profileApp profileapp.ProfileApp, catalogApp catalogapp.CatalogApp, checkoutApp checkoutapp.CheckoutApp, orderApp orderapp.OrderApp, redisRepo redisrepo.Repository) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Config:      cfg,
		AuthApp:     authApp,
		ProfileApp:  profileApp,
		CatalogApp:  catalogApp,
		CheckoutApp: checkoutApp,
		OrderApp:    orderApp,
		RedisRepo:   redisRepo,
	}

	// Public routes
	mux.HandleFunc("/", rh.Index).Methods(http.MethodGet)
	mux.HandleFunc("/signup", rh.SignupForm).Methods(http.MethodGet)
	mux.HandleFunc("/signup", rh.Signup).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.LoginForm).Methods(http.MethodGet)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodGet)
	mux.HandleFunc("/profile", rh.Profile).Methods(http.MethodGet)
	mux.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPost)
	mux.HandleFunc("/dashboard", rh.Dashboard).Methods(http.MethodGet)
	mux.HandleFunc("/get-product-detail/{id}", rh.GetProductDetail).Methods(http.MethodGet)
	mux.HandleFunc("/keranjang", rh.Keranjang).Methods(http.MethodGet)
	mux.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)
	mux.HandleFunc("/order_confirmation/{order_id}", rh.OrderConfirmation).Methods(http.MethodGet)
	mux.HandleFunc("/pesanan_saya", rh.PesananSaya).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(rh.SessionMiddleware())

	return mux
}

// isPublicPath defines which endpoints are reachable without a session
func isPublicPath(path string) bool {
	switch path {
	case "/", "/signup", "/login":
		return true
	}
	return false
}
