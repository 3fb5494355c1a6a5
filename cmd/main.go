package main

import (
	"net/http"

	authapp "github.com/dikiindrasaputra/omahjajanwatir/application/auth"
	catalogapp "github.com/dikiindrasaputra/omahjajanwatir/application/catalog"
	checkoutapp "github.com/dikiindrasaputra/omahjajanwatir/application/checkout"
	orderapp "github.com/dikiindrasaputra/omahjajanwatir/application/order"
	profileapp "github.com/dikiindrasaputra/omahjajanwatir/application/profile"
	"github.com/dikiindrasaputra/omahjajanwatir/cmd/config"
	redisclient "github.com/dikiindrasaputra/omahjajanwatir/cmd/redis"
	catalogRepo "github.com/dikiindrasaputra/omahjajanwatir/repository/catalog"
	orderRepo "github.com/dikiindrasaputra/omahjajanwatir/repository/order"
	profileRepo "github.com/dikiindrasaputra/omahjajanwatir/repository/profile"
	redisRepo "github.com/dikiindrasaputra/omahjajanwatir/repository/redis"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/rabbitmq"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
	"github.com/dikiindrasaputra/omahjajanwatir/transport"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Construct the hosted-store client. Missing credentials degrade every
	// remote-dependent route instead of refusing to start.
	var supa *supabase.Client
	if cfg.Supabase.URL != "" && cfg.Supabase.Key != "" {
		supa = supabase.New(cfg.Supabase.URL, cfg.Supabase.Key)
		logger.Info("Supabase client configured", zap.String("url", cfg.Supabase.URL))
	} else {
		logger.Warn("SUPABASE_URL or SUPABASE_KEY not set, remote store disabled")
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Optional RabbitMQ publisher for order.created events
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Host != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Warn("err connect rabbitmq, order events disabled", zap.Error(err))
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize repositories
	ProfileRepo := profileRepo.NewProfileRepository(supa)
	CatalogRepo := catalogRepo.NewCatalogRepository(supa)
	OrderRepo := orderRepo.NewOrderRepository(supa)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, supa, ProfileRepo, RedisRepo)
	ProfileApp := profileapp.NewProfileApp(ProfileRepo)
	CatalogApp := catalogapp.NewCatalogApp(CatalogRepo)
	CheckoutApp := checkoutapp.NewCheckoutApp(OrderRepo, ProfileRepo, publisher)
	OrderApp := orderapp.NewOrderApp(OrderRepo)

	httpTransport := transport.NewTransport(cfg, AuthApp, ProfileApp, CatalogApp, CheckoutApp, OrderApp, RedisRepo)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
