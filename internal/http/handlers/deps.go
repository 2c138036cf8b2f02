package handlers

import (
	"log"
	"time"

	"villagestay/internal/checkout"
	intconfig "villagestay/internal/config"
	"villagestay/internal/http/middleware"
	"villagestay/internal/repositories"
	"villagestay/internal/services"
	"villagestay/internal/store"

	"github.com/gin-gonic/gin"
)

// Shared handler state. Sessions live in memory for their short
// lifetime; everything durable goes through the KV store.
var (
	sessions                  = checkout.NewManager()
	kv       store.KV         = &store.SQL{}
	gateway  checkout.Gateway = &services.MockGateway{}
)

// Configure applies environment settings to the handler dependencies.
// Called once from the router constructor.
func Configure(env intconfig.Env) {
	middleware.SetJWTSecret(env.JWTSecret)
	gateway = &services.MockGateway{Delay: time.Duration(env.PaymentDelayMs) * time.Millisecond}
	if intconfig.DB == nil {
		log.Println("[handlers] no database connection, using in-memory store")
		kv = store.NewMemory()
	}
}

func ledger() repositories.BookingLedger {
	return repositories.BookingLedger{Store: kv}
}

func favoritesSet() repositories.FavoritesSet {
	return repositories.FavoritesSet{Store: kv}
}

func checkoutSvc(c *gin.Context) services.CheckoutService {
	return services.CheckoutService{
		Sessions:  sessions,
		Catalog:   repositories.HomestayCatalog{},
		Ledger:    ledger(),
		Gateway:   gateway,
		RequestID: middleware.GetRequestID(c),
	}
}

func bookingSvc(c *gin.Context) services.BookingService {
	return services.BookingService{
		Ledger:    ledger(),
		RequestID: middleware.GetRequestID(c),
	}
}

func docsSvc(c *gin.Context) services.DocsService {
	return services.DocsService{
		Ledger:    ledger(),
		Catalog:   repositories.HomestayCatalog{},
		RequestID: middleware.GetRequestID(c),
	}
}

func hostSvc(c *gin.Context) services.HostService {
	return services.HostService{
		Store:     kv,
		RequestID: middleware.GetRequestID(c),
	}
}
