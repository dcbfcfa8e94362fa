package v1handler

import (
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request, filter storage.UserFilter) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.ListUsers(r.Context(), ActorFromContext(r.Context()), filter, page)
	reply(w, r, res, err)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.listUsers(w, r, storage.UserFilter{
		Search: q.Get("search"),
		Role:   enumQuery[domain.Role](r, "role"),
		Status: enumQuery[domain.UserStatus](r, "status"),
	})
}

func (h *Handler) ActiveUsers(w http.ResponseWriter, r *http.Request) {
	h.listUsers(w, r, storage.UserFilter{Status: domain.UserStatusActive})
}

func (h *Handler) ActiveOfficers(w http.ResponseWriter, r *http.Request) {
	h.listUsers(w, r, storage.UserFilter{Role: domain.RoleLandOfficer, Status: domain.UserStatusActive})
}

func (h *Handler) UsersByRole(w http.ResponseWriter, r *http.Request) {
	h.listUsers(w, r, storage.UserFilter{Role: enumParam[domain.Role](r, "role")})
}

func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, r, serrors.Invalid("name", "is required"))

		return
	}
	h.listUsers(w, r, storage.UserFilter{Name: name})
}

func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Registry.UserStats(r.Context(), ActorFromContext(r.Context()))
	reply(w, r, res, err)
}

func (h *Handler) UserByEmail(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Registry.UserByEmail(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "email"))
	reply(w, r, res, err)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in registry.NewUser
	if err := decode(w, r, &in, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.CreateUser(r.Context(), ActorFromContext(r.Context()), in)
	created(w, r, res, err)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.UserID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.User(r.Context(), ActorFromContext(r.Context()), id)
	reply(w, r, res, err)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.UserID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	var patch registry.UserPatch
	if err := decode(w, r, &patch, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.UpdateUser(r.Context(), ActorFromContext(r.Context()), id, patch)
	reply(w, r, res, err)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.UserID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	noContent(w, r, h.deps.Registry.DeleteUser(r.Context(), ActorFromContext(r.Context()), id))
}

func (h *Handler) setUserStatus(w http.ResponseWriter, r *http.Request, status domain.UserStatus) {
	id, err := pathID[domain.UserID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.SetUserStatus(r.Context(), ActorFromContext(r.Context()), id, status)
	reply(w, r, res, err)
}

func (h *Handler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserStatus(w, r, domain.UserStatusActive)
}

func (h *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserStatus(w, r, domain.UserStatusInactive)
}

func (h *Handler) SuspendUser(w http.ResponseWriter, r *http.Request) {
	h.setUserStatus(w, r, domain.UserStatusSuspended)
}

func (h *Handler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.UserID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.ChangeUserRole(r.Context(),
		ActorFromContext(r.Context()),
		id,
		enumParam[domain.Role](r, "role"))
	reply(w, r, res, err)
}
