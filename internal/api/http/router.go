package http

import (
	"net/http"

	"rma-portal-backend/internal/config"
	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/security"
	"rma-portal-backend/internal/service"
	"rma-portal-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Services bundles everything the router wires handlers to.
type Services struct {
	Auth          service.AuthService
	RMAs          service.RMAService
	Products      service.ProductService
	Customers     service.CustomerService
	Sales         service.SaleService
	Attachments   service.AttachmentService
	Notifications service.NotificationService
}

// NewRouter builds the full API route tree.
//
// Route layout:
//   - /api/v1/auth/*              public (register, logins)
//   - /api/v1/upload, /download   mock storage, presigned-URL style
//   - everything else             bearer-token authenticated, with
//     staff/admin/super-admin gates per route
func NewRouter(cfg *config.Config, tokens security.TokenManager, svcs Services, mockStorage *storage.MockStorageService) *mux.Router {
	pg := paging{
		defaultSize: int32(cfg.RMA.DefaultPageSize),
		maxSize:     int32(cfg.RMA.MaxPageSize),
	}

	authHandler := NewAuthHandler(svcs.Auth)
	rmaHandler := NewRMAHandler(svcs.RMAs, svcs.Attachments, pg)
	productHandler := NewProductHandler(svcs.Products, pg)
	customerHandler := NewCustomerHandler(svcs.Customers, pg)
	saleHandler := NewSaleHandler(svcs.Sales, pg)
	attachmentHandler := NewAttachmentHandler(svcs.Attachments, mockStorage)
	notificationHandler := NewNotificationHandler(svcs.Notifications)

	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	// Public endpoints
	public := router.PathPrefix("/api/v1").Subrouter()
	public.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	public.HandleFunc("/auth/login", authHandler.CustomerLogin).Methods("POST")
	public.HandleFunc("/auth/staff/login", authHandler.StaffLogin).Methods("POST")
	public.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondOK(w, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Mock storage endpoints; the presigned URL is the authorization
	attachmentHandler.RegisterMockStorageRoutes(router)

	// Authenticated API
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	// RMA lifecycle
	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	api.HandleFunc("/rmas", rmaHandler.Submit).Methods("POST")
	api.HandleFunc("/rmas", rmaHandler.List).Methods("GET")
	api.HandleFunc("/rmas/reasons", rmaHandler.Reasons).Methods("GET")
	api.HandleFunc("/rmas/bulk/status", RequireStaff(rmaHandler.BulkStatus)).Methods("POST")
	api.HandleFunc("/rmas/{id}", rmaHandler.Get).Methods("GET")
	api.HandleFunc("/rmas/{id}/transition", rmaHandler.Transition).Methods("POST")
	api.HandleFunc("/rmas/{id}/review", RequireStaff(rmaHandler.Review)).Methods("POST")
	api.HandleFunc("/rmas/{id}/warranty", RequireStaff(rmaHandler.WarrantyRecommendation)).Methods("GET")
	api.HandleFunc("/rmas/{id}/attachments", rmaHandler.Attachments).Methods("GET")

	// Attachment uploads
	api.HandleFunc("/attachments/upload-url", attachmentHandler.RequestUploadURL).Methods("POST")

	// Product catalog
	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/categories", productHandler.Categories).Methods("GET")
	api.HandleFunc("/products", RequireRole(domain.RoleAdmin, productHandler.Create)).Methods("POST")
	api.HandleFunc("/products/bulk/delete", RequireRole(domain.RoleAdmin, productHandler.BulkDelete)).Methods("POST")
	api.HandleFunc("/products/bulk/active", RequireRole(domain.RoleAdmin, productHandler.BulkSetActive)).Methods("POST")
	api.HandleFunc("/products/{id}", productHandler.Get).Methods("GET")
	api.HandleFunc("/products/{id}", RequireRole(domain.RoleAdmin, productHandler.Update)).Methods("PUT")
	api.HandleFunc("/products/{id}", RequireRole(domain.RoleAdmin, productHandler.Delete)).Methods("DELETE")

	// Customers
	api.HandleFunc("/customers", RequireStaff(customerHandler.List)).Methods("GET")
	api.HandleFunc("/customers/{id}", customerHandler.Get).Methods("GET")
	api.HandleFunc("/customers/{id}", customerHandler.UpdateProfile).Methods("PUT")
	api.HandleFunc("/customers/{id}/active", RequireRole(domain.RoleAdmin, customerHandler.SetActive)).Methods("PUT")

	// Sales records
	api.HandleFunc("/sales", RequireStaff(saleHandler.List)).Methods("GET")
	api.HandleFunc("/sales", RequireStaff(saleHandler.Create)).Methods("POST")
	api.HandleFunc("/sales/import", RequireStaff(saleHandler.Import)).Methods("POST")
	api.HandleFunc("/sales/{id}", RequireStaff(saleHandler.Get)).Methods("GET")
	api.HandleFunc("/sales/{id}", RequireStaff(saleHandler.Update)).Methods("PUT")
	api.HandleFunc("/sales/{id}", RequireStaff(saleHandler.Delete)).Methods("DELETE")

	// Notifications
	api.HandleFunc("/notifications", notificationHandler.List).Methods("GET")
	api.HandleFunc("/notifications/{id}/read", notificationHandler.MarkAsRead).Methods("POST")

	// Staff administration
	api.HandleFunc("/staff", RequireRole(domain.RoleSuperAdmin, authHandler.CreateStaff)).Methods("POST")

	return router
}
