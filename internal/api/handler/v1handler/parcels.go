package v1handler

import (
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listParcels(w http.ResponseWriter, r *http.Request, filter storage.ParcelFilter) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.ListParcels(r.Context(), ActorFromContext(r.Context()), filter, page)
	reply(w, r, res, err)
}

func (h *Handler) ListParcels(w http.ResponseWriter, r *http.Request) {
	minArea, err := queryDecimal(r, "minArea")
	if err != nil {
		writeError(w, r, err)

		return
	}
	maxArea, err := queryDecimal(r, "maxArea")
	if err != nil {
		writeError(w, r, err)

		return
	}

	q := r.URL.Query()
	h.listParcels(w, r, storage.ParcelFilter{
		Search:   q.Get("search"),
		District: q.Get("district"),
		Sector:   q.Get("sector"),
		Cell:     q.Get("cell"),
		Status:   enumQuery[domain.ParcelStatus](r, "status"),
		LandUse:  enumQuery[domain.LandUse](r, "landUse"),
		MinArea:  minArea,
		MaxArea:  maxArea,
	})
}

func (h *Handler) AvailableParcels(w http.ResponseWriter, r *http.Request) {
	h.listParcels(w, r, storage.ParcelFilter{Status: domain.ParcelStatusAvailable})
}

func (h *Handler) ParcelsByDistrict(w http.ResponseWriter, r *http.Request) {
	h.listParcels(w, r, storage.ParcelFilter{District: chi.URLParam(r, "district")})
}

func (h *Handler) ParcelsByOwner(w http.ResponseWriter, r *http.Request) {
	owner, err := pathID[domain.UserID](r, "userId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	h.listParcels(w, r, storage.ParcelFilter{OwnerID: &owner})
}

func (h *Handler) SearchParcels(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		writeError(w, r, serrors.Invalid("location", "is required"))

		return
	}
	h.listParcels(w, r, storage.ParcelFilter{Location: location})
}

func (h *Handler) ParcelStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Registry.ParcelStats(r.Context(), ActorFromContext(r.Context()))
	reply(w, r, res, err)
}

func (h *Handler) ParcelByNumber(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Registry.ParcelByNumber(r.Context(),
		ActorFromContext(r.Context()),
		chi.URLParam(r, "parcelNumber"))
	reply(w, r, res, err)
}

func (h *Handler) CreateParcel(w http.ResponseWriter, r *http.Request) {
	var in domain.Parcel
	if err := decode(w, r, &in, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.CreateParcel(r.Context(), ActorFromContext(r.Context()), in)
	created(w, r, res, err)
}

func (h *Handler) GetParcel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ParcelID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.Parcel(r.Context(), ActorFromContext(r.Context()), id)
	reply(w, r, res, err)
}

func (h *Handler) UpdateParcel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ParcelID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}
	var patch registry.ParcelPatch
	if err := decode(w, r, &patch, false); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.UpdateParcel(r.Context(), ActorFromContext(r.Context()), id, patch)
	reply(w, r, res, err)
}

func (h *Handler) DeleteParcel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ParcelID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	noContent(w, r, h.deps.Registry.DeleteParcel(r.Context(), ActorFromContext(r.Context()), id))
}

func (h *Handler) SetParcelStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ParcelID](r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Registry.SetParcelStatus(r.Context(),
		ActorFromContext(r.Context()),
		id,
		enumParam[domain.ParcelStatus](r, "status"))
	reply(w, r, res, err)
}
