package perfume

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"PerfumeShop/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes serves the catalog relative to its mount point. writeMW wraps
// POST, PUT and DELETE only.
func (s *Server) Routes(writeMW ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/specific", s.listByName)
	r.Get("/{type}", s.listByType)

	r.Group(func(wr chi.Router) {
		wr.Use(writeMW...)
		wr.Post("/", s.create)
		wr.Put("/{name}", s.update)
		wr.Delete("/{name}", s.delete)
	})

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	perfumes, ok := s.Store.List(r.Context())
	if !ok {
		s.writeError(w, r, ErrNoPerfumes)
		return
	}
	kit.WriteJSON(w, http.StatusOK, perfumes)
}

func (s *Server) listByType(w http.ResponseWriter, r *http.Request) {
	typ := pathParam(r, "type")

	perfumes, ok := s.Store.FindByType(r.Context(), typ)
	if !ok {
		s.writeError(w, r, NotFound("type", typ))
		return
	}
	kit.WriteJSON(w, http.StatusOK, perfumes)
}

func (s *Server) listByName(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("name") {
		kit.WriteError(w, r, http.StatusBadRequest, "name query parameter is required", nil)
		return
	}
	name := q.Get("name")

	perfumes, ok := s.Store.FindByName(r.Context(), name)
	if !ok {
		s.writeError(w, r, NotFound("name", name))
		return
	}
	kit.WriteJSON(w, http.StatusOK, perfumes)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decode(w, r)
	if !ok {
		return
	}

	kit.WriteJSON(w, http.StatusCreated, s.Store.Create(r.Context(), p))
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")

	p, ok := s.decode(w, r)
	if !ok {
		return
	}

	updated, found := s.Store.Update(r.Context(), name, p)
	if !found {
		s.writeError(w, r, NotFound("name", name))
		return
	}
	kit.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")

	msg, ok := s.Store.Delete(r.Context(), name)
	if !ok {
		s.writeError(w, r, NotFound("name", name))
		return
	}
	kit.WriteText(w, http.StatusOK, msg)
}

// pathParam returns the matched segment decoded exactly once. chi matches
// on RawPath when the request carried non-default escapes such as %2C and
// on the already decoded Path otherwise.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (Perfume, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var p Perfume
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return Perfume{}, false
	}
	return p, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var rnf *ResourceNotFoundError
	switch {
	case errors.Is(err, ErrNoPerfumes):
		kit.WriteError(w, r, http.StatusNotFound, err.Error(), nil)
	case errors.As(err, &rnf):
		kit.WriteError(w, r, http.StatusNotFound, rnf.Error(), rnf.Details())
	default:
		if s.Log != nil {
			s.Log.Error("perfume request failed", zap.Error(err), zap.String("path", r.URL.Path))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
