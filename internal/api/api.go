// Package api exposes class name generation over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/bemkit/pkg/bem"
	"github.com/dmitrymomot/bemkit/pkg/classnames"
	"github.com/dmitrymomot/bemkit/pkg/logger"
)

const maxBodySize = 1 << 20

// Handler serves the class name API.
type Handler struct {
	log      *slog.Logger
	defaults []bem.Option
}

// New returns a Handler. defaults apply to every request before the
// per-request separators and unique flag.
func New(log *slog.Logger, defaults ...bem.Option) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{log: log.With(logger.Component("api")), defaults: defaults}
}

// Routes returns the API router.
//
//	POST /v1/classnames
//	POST /v1/modifiers/resolve
//	GET  /healthz
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/classnames", h.classNames)
		r.Post("/modifiers/resolve", h.resolve)
	})
	return r
}

type classNamesRequest struct {
	Block             string   `json:"block"`
	Element           string   `json:"element"`
	Modifiers         bem.Spec `json:"modifiers"`
	Class             string   `json:"class"`
	Unique            bool     `json:"unique"`
	ElementSeparator  *string  `json:"element_separator"`
	ModifierSeparator *string  `json:"modifier_separator"`
}

func (req classNamesRequest) options(defaults []bem.Option) []bem.Option {
	opts := append([]bem.Option(nil), defaults...)
	if req.ElementSeparator != nil {
		opts = append(opts, bem.WithElementSeparator(*req.ElementSeparator))
	}
	if req.ModifierSeparator != nil {
		opts = append(opts, bem.WithModifierSeparator(*req.ModifierSeparator))
	}
	if req.Unique {
		opts = append(opts, bem.Unique())
	}
	return opts
}

type classNamesResponse struct {
	Class  string   `json:"class"`
	Tokens []string `json:"tokens"`
}

func (h *Handler) classNames(w http.ResponseWriter, r *http.Request) {
	var req classNamesRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	opts := req.options(h.defaults)

	base := req.Block
	if req.Element != "" {
		var err error
		if base, err = bem.JoinElement(req.Block, req.Element, opts...); err != nil {
			h.fail(w, r, err)
			return
		}
	} else if base == "" {
		h.fail(w, r, bem.ErrMissingBlock)
		return
	}

	tokens := bem.ClassList(base, req.Modifiers.Modifier(), opts...)
	tokens = append(tokens, classnames.Split(req.Class)...)

	h.log.DebugContext(r.Context(), "class names built",
		logger.Block(req.Block),
		logger.Element(req.Element),
		slog.Int("tokens", len(tokens)),
	)
	writeData(w, classNamesResponse{Class: classnames.Join(tokens...), Tokens: tokens})
}

type resolveRequest struct {
	Modifiers bem.Spec `json:"modifiers"`
	Unique    bool     `json:"unique"`
}

type resolveResponse struct {
	Modifiers []string `json:"modifiers"`
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	opts := append([]bem.Option(nil), h.defaults...)
	if req.Unique {
		opts = append(opts, bem.Unique())
	}
	mods := bem.Resolve(req.Modifiers.Modifier(), opts...)

	h.log.DebugContext(r.Context(), "modifiers resolved", logger.Modifiers(mods))
	writeData(w, resolveResponse{Modifiers: mods})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, bem.ErrInvalidSpec) {
			return err
		}
		return errors.Join(errBadRequest, err)
	}
	return nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, bem.ErrInvalidArgument), errors.Is(err, bem.ErrInvalidSpec):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err)
	case errors.Is(err, errBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
