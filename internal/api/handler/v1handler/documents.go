package v1handler

import (
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request, filter storage.DocumentFilter) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.ListDocuments(r.Context(), ActorFromContext(r.Context()), filter, page)
	reply(w, r, res, err)
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	verified, err := queryBool(r, "verified")
	if err != nil {
		writeError(w, r, err)

		return
	}
	parcel, err := queryID[domain.ParcelID](r, "landParcelId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	request, err := queryID[domain.RequestID](r, "requestId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	uploader, err := queryID[domain.UserID](r, "uploadedBy")
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.listDocuments(w, r, storage.DocumentFilter{
		Search:     r.URL.Query().Get("search"),
		Type:       enumQuery[domain.DocumentType](r, "documentType"),
		Status:     enumQuery[domain.DocumentStatus](r, "status"),
		Verified:   verified,
		ParcelID:   parcel,
		RequestID:  request,
		UploadedBy: uploader,
	})
}

func (h *Handler) DocumentsByParcel(w http.ResponseWriter, r *http.Request) {
	parcel, err := pathID[domain.ParcelID](r, "landParcelId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	h.listDocuments(w, r, storage.DocumentFilter{ParcelID: &parcel})
}

func (h *Handler) DocumentsByUser(w http.ResponseWriter, r *http.Request) {
	uploader, err := pathID[domain.UserID](r, "userId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	h.listDocuments(w, r, storage.DocumentFilter{UploadedBy: &uploader})
}

func (h *Handler) DocumentStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Registry.DocumentStats(r.Context(), ActorFromContext(r.Context()))
	reply(w, r, res, err)
}

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var in domain.Document
	if err := decode(w, r, &in, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.CreateDocument(r.Context(), ActorFromContext(r.Context()), in)
	created(w, r, res, err)
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.DocumentID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.Document(r.Context(), ActorFromContext(r.Context()), id)
	reply(w, r, res, err)
}

func (h *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.DocumentID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	var patch registry.DocumentPatch
	if err := decode(w, r, &patch, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.UpdateDocument(r.Context(), ActorFromContext(r.Context()), id, patch)
	reply(w, r, res, err)
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.DocumentID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	noContent(w, r, h.deps.Registry.DeleteDocument(r.Context(), ActorFromContext(r.Context()), id))
}

// VerifyDocument records the caller as verifier. When the path names a
// verifier it has to be the caller.
func (h *Handler) VerifyDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.DocumentID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	actor := ActorFromContext(r.Context())
	if chi.URLParam(r, "verifierId") != "" {
		verifier, err := pathID[domain.UserID](r, "verifierId")
		if err != nil {
			writeError(w, r, err)

			return
		}
		if !actor.Is(verifier) {
			writeError(w, r, serrors.With(serrors.ErrForbidden, "documents can only be verified in your own name"))

			return
		}
	}

	res, err := h.deps.Registry.VerifyDocument(r.Context(), actor, id)
	reply(w, r, res, err)
}

func (h *Handler) SetDocumentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.DocumentID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.SetDocumentStatus(r.Context(),
		ActorFromContext(r.Context()),
		id,
		enumParam[domain.DocumentStatus](r, "status"))
	reply(w, r, res, err)
}
