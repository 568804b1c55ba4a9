package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/rajat8876/VendorIQ2/internal/handler"
	"github.com/rajat8876/VendorIQ2/internal/middleware"
	"github.com/rajat8876/VendorIQ2/pkg/jwtutil"
)

func SetupRoutes(
	r chi.Router,
	signer *jwtutil.Signer,
	authH *handler.AuthHandler,
	catalogH *handler.CatalogHandler,
	requestH *handler.RequestHandler,
	billingH *handler.BillingHandler,
	fileH *handler.FileHandler,
	healthH *handler.HealthHandler,
) chi.Router {
	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthH.Check)

	r.Route("/api/v1", func(r chi.Router) {

		// ---------------- Public ----------------
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", authH.Register)
			r.Post("/auth/login", authH.Login)
			r.Post("/auth/otp/request", authH.RequestOTP)
			r.Post("/auth/otp/verify", authH.VerifyOTP)

			r.Get("/industries", catalogH.ListIndustries)
			r.Get("/industries/{industryID}/categories", catalogH.ListCategories)
			r.Get("/categories/{categoryID}/fields", catalogH.ListFormFields)
		})

		// ---------------- Authenticated ----------------
		r.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireAuth(signer))

			pr.Get("/auth/me", authH.Me)
			pr.Post("/auth/refresh", authH.Refresh)
			pr.Post("/auth/logout", authH.Logout)

			pr.Post("/categories/{categoryID}/requests", requestH.Submit)

			pr.Post("/payments/order", billingH.CreateOrder)
			pr.Post("/payments/verify", billingH.ConfirmPayment)

			pr.Post("/files", fileH.Upload)
			pr.Get("/files/{fileID}", fileH.Download)
		})
	})

	return r
}
