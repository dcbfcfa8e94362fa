package v1handler

import (
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"net/http"
)

type approveRequest struct {
	Notes string `json:"notes"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request, filter storage.RequestFilter) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.ListRequests(r.Context(), ActorFromContext(r.Context()), filter, page)
	reply(w, r, res, err)
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requester, err := queryID[domain.UserID](r, "requesterId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	officer, err := queryID[domain.UserID](r, "assignedOfficerId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	parcel, err := queryID[domain.ParcelID](r, "landParcelId")
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.listRequests(w, r, storage.RequestFilter{
		Search:            r.URL.Query().Get("search"),
		Status:            enumQuery[domain.RequestStatus](r, "status"),
		Type:              enumQuery[domain.RequestType](r, "requestType"),
		Priority:          enumQuery[domain.Priority](r, "priority"),
		RequesterID:       requester,
		AssignedOfficerID: officer,
		ParcelID:          parcel,
	})
}

func (h *Handler) RequestsByUser(w http.ResponseWriter, r *http.Request) {
	requester, err := pathID[domain.UserID](r, "userId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	h.listRequests(w, r, storage.RequestFilter{RequesterID: &requester})
}

func (h *Handler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	h.listRequests(w, r, storage.RequestFilter{Status: domain.RequestStatusPending})
}

// PendingRequestsOrdered lists pending requests most urgent first, oldest
// first within a priority.
func (h *Handler) PendingRequestsOrdered(w http.ResponseWriter, r *http.Request) {
	h.listRequests(w, r, storage.RequestFilter{Status: domain.RequestStatusPending, ByPriority: true})
}

func (h *Handler) RequestStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Registry.RequestStats(r.Context(), ActorFromContext(r.Context()))
	reply(w, r, res, err)
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var in domain.Request
	if err := decode(w, r, &in, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.CreateRequest(r.Context(), ActorFromContext(r.Context()), in)
	created(w, r, res, err)
}

func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.Request(r.Context(), ActorFromContext(r.Context()), id)
	reply(w, r, res, err)
}

func (h *Handler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	var patch registry.RequestPatch
	if err := decode(w, r, &patch, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.UpdateRequest(r.Context(), ActorFromContext(r.Context()), id, patch)
	reply(w, r, res, err)
}

func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	noContent(w, r, h.deps.Registry.DeleteRequest(r.Context(), ActorFromContext(r.Context()), id))
}

func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	var body approveRequest
	if err := decode(w, r, &body, true); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.ApproveRequest(r.Context(), ActorFromContext(r.Context()), id, body.Notes)
	reply(w, r, res, err)
}

func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	var body rejectRequest
	if err := decode(w, r, &body, true); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.RejectRequest(r.Context(), ActorFromContext(r.Context()), id, body.Reason)
	reply(w, r, res, err)
}

func (h *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.CancelRequest(r.Context(), ActorFromContext(r.Context()), id)
	reply(w, r, res, err)
}

func (h *Handler) AssignRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	officer, err := pathID[domain.UserID](r, "officerId")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.AssignRequest(r.Context(), ActorFromContext(r.Context()), id, &officer)
	reply(w, r, res, err)
}

func (h *Handler) UnassignRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.AssignRequest(r.Context(), ActorFromContext(r.Context()), id, nil)
	reply(w, r, res, err)
}

func (h *Handler) SetRequestPriority(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.SetRequestPriority(r.Context(),
		ActorFromContext(r.Context()),
		id,
		enumParam[domain.Priority](r, "priority"))
	reply(w, r, res, err)
}

func (h *Handler) SetRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.SetRequestStatus(r.Context(),
		ActorFromContext(r.Context()),
		id,
		enumParam[domain.RequestStatus](r, "status"))
	reply(w, r, res, err)
}

func (h *Handler) AddRequestNotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.RequestID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	var body notesRequest
	if err := decode(w, r, &body, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.AddRequestNotes(r.Context(), ActorFromContext(r.Context()), id, body.Notes)
	reply(w, r, res, err)
}
