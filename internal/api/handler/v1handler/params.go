package v1handler

import (
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// pathID parses the uuid path parameter name into one of the domain id types.
func pathID[T ~[16]byte](r *http.Request, name string) (T, error) {
	var zero T
	u, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return zero, serrors.Invalid(name, "is not a valid id")
	}

	return T(u), nil
}

// queryID parses an optional uuid query parameter.
func queryID[T ~[16]byte](r *http.Request, name string) (*T, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return nil, serrors.Invalid(name, "is not a valid id")
	}
	id := T(u)

	return &id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.Invalid(name, "must be an integer")
	}

	return n, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, serrors.Invalid(name, "must be true or false")
	}

	return &b, nil
}

func queryDecimal(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, serrors.Invalid(name, "must be a number")
	}

	return &d, nil
}

// enumParam reads an upper-snake enumeration value from the path.
func enumParam[T ~string](r *http.Request, name string) T {
	return T(strings.ToUpper(chi.URLParam(r, name)))
}

// enumQuery reads an optional upper-snake enumeration value from the query.
func enumQuery[T ~string](r *http.Request, name string) T {
	return T(strings.ToUpper(r.URL.Query().Get(name)))
}

// pageRequest reads page, size, sortBy and sortDir.
func pageRequest(r *http.Request) (domain.PageRequest, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return domain.PageRequest{}, err
	}
	if page > domain.MaxPage {
		return domain.PageRequest{}, serrors.With(serrors.ErrBadRequest, "page must be at most %d", domain.MaxPage)
	}
	size, err := queryInt(r, "size")
	if err != nil {
		return domain.PageRequest{}, err
	}

	q := r.URL.Query()
	dir := domain.SortDirection(strings.ToLower(q.Get("sortDir")))
	if dir != "" && dir != domain.SortAsc && dir != domain.SortDesc {
		return domain.PageRequest{}, serrors.Invalid("sortDir", "must be asc or desc")
	}

	return domain.PageRequest{
		Page:    page,
		Size:    size,
		SortBy:  q.Get("sortBy"),
		SortDir: dir,
	}, nil
}
