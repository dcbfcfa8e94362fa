package v1handler

import "net/http"

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Registry.Search(r.Context(), ActorFromContext(r.Context()), r.URL.Query().Get("q"))
	reply(w, r, res, err)
}
