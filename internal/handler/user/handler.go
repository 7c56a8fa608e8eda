package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/user-api/internal/model/user"
	"github.com/zhouzirui/user-api/pkg/utils"
)

const maxBodyBytes = 1 << 20

// Handler serves the /users routes.
type Handler struct {
	users user.Store
}

// New creates a user handler backed by users.
func New(users user.Store) *Handler {
	return &Handler{users: users}
}

// RegisterRoutes mounts the user routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleListUsers)
		r.Post("/", h.handleCreateUser)
		r.Get("/{id}", h.handleGetUser)
		r.Put("/{id}", h.handleReplaceUser)
		r.Delete("/{id}", h.handleDeleteUser)
	})
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.users.List())
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	found, ok := h.users.Find(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, notFound(id))
		return
	}
	utils.RespondJSON(w, http.StatusOK, found)
}

// handleCreateUser stores a new user, generating its id when none is given.
func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeUser(w, r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.users.Insert(payload)
	if err != nil {
		if errors.Is(err, user.ErrConflict) {
			utils.RespondError(w, http.StatusConflict, fmt.Sprintf("ID already exists: %s", payload.ID))
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, created)
}

// handleReplaceUser overwrites the whole record addressed by the path id.
func (h *Handler) handleReplaceUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := decodeUser(w, r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.users.Replace(id, payload)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, notFound(id))
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

// handleDeleteUser removes one user, or every user for the "*" id.
func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	wiped, err := h.users.Delete(id)
	switch {
	case errors.Is(err, user.ErrEmpty):
		utils.RespondError(w, http.StatusNotFound, "No users to delete")
	case errors.Is(err, user.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, notFound(id))
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	case wiped:
		utils.RespondText(w, http.StatusOK, "All users deleted")
	default:
		utils.RespondText(w, http.StatusOK, fmt.Sprintf("ID deleted: %s", id))
	}
}

// pathID returns the decoded {id} segment. chi matches against RawPath when
// the request carried escapes, so the param is still escaped in that case.
func pathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id, nil
	}

	decoded, err := url.PathUnescape(id)
	if err != nil {
		return "", fmt.Errorf("invalid id %q: %w", id, err)
	}
	return decoded, nil
}

// userPayload distinguishes missing fields from empty strings.
type userPayload struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func decodeUser(w http.ResponseWriter, r *http.Request) (user.User, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	var payload userPayload
	if err := dec.Decode(&payload); err != nil {
		return user.User{}, fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return user.User{}, errors.New("invalid request body: unexpected data after JSON object")
	}

	if payload.Name == nil {
		return user.User{}, errors.New("name is required")
	}
	if payload.Email == nil {
		return user.User{}, errors.New("email is required")
	}

	u := user.User{Name: *payload.Name, Email: *payload.Email}
	if payload.ID != nil {
		u.ID = *payload.ID
	}
	return u, nil
}

func notFound(id string) string {
	return fmt.Sprintf("ID not found: %s", id)
}
