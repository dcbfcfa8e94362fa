package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the router served under /api.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	// the default 405 handler lists the allowed methods, only its body is replaced
	r.Use(withMethodNotAllowed)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/forgot-password", h.ForgotPassword)
		r.Post("/reset-password", h.ResetPassword)
		r.Post("/verify-otp", h.VerifyOTP)
		r.Post("/resend-otp", h.ResendOTP)
		r.With(sec.TwoFactorPending).Post("/2fa/verify", h.VerifyTwoFactor)

		r.Group(func(r chi.Router) {
			r.Use(sec.Authenticated)
			r.Get("/me", h.Me)
			r.Post("/logout", h.Logout)
			r.Post("/2fa/setup", h.SetupTwoFactor)
			r.Post("/2fa/enable", h.EnableTwoFactor)
			r.Post("/2fa/disable", h.DisableTwoFactor)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(sec.Authenticated)

		r.Route("/users", h.userRoutes)
		r.Route("/land-parcels", h.parcelRoutes)
		r.Route("/ownerships", h.ownershipRoutes)
		r.Route("/requests", h.requestRoutes)
		r.Route("/documents", h.documentRoutes)
		r.Get("/search", h.Search)
	})

	return r
}

func (h *Handler) userRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(staffOnly)
		r.Get("/", h.ListUsers)
		r.Get("/active", h.ActiveUsers)
		r.Get("/officers/active", h.ActiveOfficers)
		r.Get("/search", h.SearchUsers)
		r.Get("/stats/total", h.UserStats)
		r.Get("/email/{email}", h.UserByEmail)
		r.Get("/role/{role}", h.UsersByRole)
	})
	r.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Post("/", h.CreateUser)
		r.Delete("/{id}", h.DeleteUser)
		r.Patch("/{id}/activate", h.ActivateUser)
		r.Patch("/{id}/deactivate", h.DeactivateUser)
		r.Patch("/{id}/suspend", h.SuspendUser)
		r.Patch("/{id}/role/{role}", h.ChangeUserRole)
	})
	r.Get("/{id}", h.GetUser)
	r.Put("/{id}", h.UpdateUser)
}

func (h *Handler) parcelRoutes(r chi.Router) {
	r.Get("/", h.ListParcels)
	r.Get("/available", h.AvailableParcels)
	r.Get("/search", h.SearchParcels)
	r.Get("/parcel-number/{parcelNumber}", h.ParcelByNumber)
	r.Get("/district/{district}", h.ParcelsByDistrict)
	r.Get("/owner/{userId}", h.ParcelsByOwner)
	r.Get("/{id}", h.GetParcel)
	r.Group(func(r chi.Router) {
		r.Use(staffOnly)
		r.Post("/", h.CreateParcel)
		r.Put("/{id}", h.UpdateParcel)
		r.Patch("/{id}/status/{status}", h.SetParcelStatus)
		r.Get("/stats/total", h.ParcelStats)
	})
	r.With(adminOnly).Delete("/{id}", h.DeleteParcel)
}

func (h *Handler) ownershipRoutes(r chi.Router) {
	r.Get("/", h.ListOwnerships)
	r.Get("/user/{userId}", h.OwnershipsByUser)
	r.Get("/land-parcel/{landParcelId}", h.OwnershipsByParcel)
	r.Get("/{id}", h.GetOwnership)
	r.Group(func(r chi.Router) {
		r.Use(staffOnly)
		r.Post("/", h.CreateOwnership)
		r.Put("/{id}", h.UpdateOwnership)
		r.Patch("/{id}/transfer/{newUserId}", h.TransferOwnership)
		r.Patch("/{id}/status/{status}", h.SetOwnershipStatus)
		r.Get("/stats/total", h.OwnershipStats)
	})
	r.With(adminOnly).Delete("/{id}", h.DeleteOwnership)
}

func (h *Handler) requestRoutes(r chi.Router) {
	r.Get("/", h.ListRequests)
	r.Post("/", h.CreateRequest)
	r.Get("/user/{userId}", h.RequestsByUser)
	r.Get("/{id}", h.GetRequest)
	r.Put("/{id}", h.UpdateRequest)
	r.Patch("/{id}/cancel", h.CancelRequest)
	r.Group(func(r chi.Router) {
		r.Use(staffOnly)
		r.Get("/pending", h.PendingRequests)
		r.Get("/pending/ordered", h.PendingRequestsOrdered)
		r.Get("/stats/total", h.RequestStats)
		r.Patch("/{id}/approve", h.ApproveRequest)
		r.Patch("/{id}/reject", h.RejectRequest)
		r.Patch("/{id}/assign/{officerId}", h.AssignRequest)
		r.Delete("/{id}/assign", h.UnassignRequest)
		r.Patch("/{id}/priority/{priority}", h.SetRequestPriority)
		r.Patch("/{id}/status/{status}", h.SetRequestStatus)
		r.Patch("/{id}/notes", h.AddRequestNotes)
	})
	r.With(adminOnly).Delete("/{id}", h.DeleteRequest)
}

func (h *Handler) documentRoutes(r chi.Router) {
	r.Get("/", h.ListDocuments)
	r.Post("/", h.CreateDocument)
	r.Get("/land-parcel/{landParcelId}", h.DocumentsByParcel)
	r.Get("/user/{userId}", h.DocumentsByUser)
	r.Get("/{id}", h.GetDocument)
	r.Put("/{id}", h.UpdateDocument)
	r.Delete("/{id}", h.DeleteDocument)
	r.Group(func(r chi.Router) {
		r.Use(staffOnly)
		r.Patch("/{id}/verify", h.VerifyDocument)
		r.Patch("/{id}/verify/{verifierId}", h.VerifyDocument)
		r.Patch("/{id}/status/{status}", h.SetDocumentStatus)
		r.Get("/stats/total", h.DocumentStats)
	})
}
