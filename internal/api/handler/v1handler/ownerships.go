package v1handler

import (
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"net/http"
)

func (h *Handler) listOwnerships(w http.ResponseWriter, r *http.Request, filter storage.OwnershipFilter) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.ListOwnerships(r.Context(), ActorFromContext(r.Context()), filter, page)
	reply(w, r, res, err)
}

func (h *Handler) ListOwnerships(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID[domain.UserID](r, "userId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	parcelID, err := queryID[domain.ParcelID](r, "landParcelId")
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.listOwnerships(w, r, storage.OwnershipFilter{
		UserID:   userID,
		ParcelID: parcelID,
		Status:   enumQuery[domain.OwnershipStatus](r, "status"),
		Type:     enumQuery[domain.OwnershipType](r, "ownershipType"),
	})
}

func (h *Handler) OwnershipsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID[domain.UserID](r, "userId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	h.listOwnerships(w, r, storage.OwnershipFilter{UserID: &userID})
}

func (h *Handler) OwnershipsByParcel(w http.ResponseWriter, r *http.Request) {
	parcelID, err := pathID[domain.ParcelID](r, "landParcelId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	h.listOwnerships(w, r, storage.OwnershipFilter{ParcelID: &parcelID})
}

func (h *Handler) OwnershipStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Registry.OwnershipStats(r.Context(), ActorFromContext(r.Context()))
	reply(w, r, res, err)
}

func (h *Handler) CreateOwnership(w http.ResponseWriter, r *http.Request) {
	var in domain.Ownership
	if err := decode(w, r, &in, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.CreateOwnership(r.Context(), ActorFromContext(r.Context()), in)
	created(w, r, res, err)
}

func (h *Handler) GetOwnership(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.OwnershipID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.Ownership(r.Context(), ActorFromContext(r.Context()), id)
	reply(w, r, res, err)
}

func (h *Handler) UpdateOwnership(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.OwnershipID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	var patch registry.OwnershipPatch
	if err := decode(w, r, &patch, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.UpdateOwnership(r.Context(), ActorFromContext(r.Context()), id, patch)
	reply(w, r, res, err)
}

func (h *Handler) DeleteOwnership(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.OwnershipID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	noContent(w, r, h.deps.Registry.DeleteOwnership(r.Context(), ActorFromContext(r.Context()), id))
}

func (h *Handler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.OwnershipID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	newOwner, err := pathID[domain.UserID](r, "newUserId")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.TransferOwnership(r.Context(), ActorFromContext(r.Context()), id, newOwner)
	reply(w, r, res, err)
}

func (h *Handler) SetOwnershipStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.OwnershipID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.SetOwnershipStatus(r.Context(),
		ActorFromContext(r.Context()),
		id,
		enumParam[domain.OwnershipStatus](r, "status"))
	reply(w, r, res, err)
}
