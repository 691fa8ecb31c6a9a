package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type RoleHandler struct {
	roles RoleStore
}

func NewRoleHandler(roles RoleStore) *RoleHandler {
	return &RoleHandler{roles: roles}
}

func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.List(r.Context())
	if err != nil {
		respondStoreError(w, err, "Roles not found")
		return
	}

	respondWithJSON(w, http.StatusOK, roles)
}

func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := h.roles.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Role not found")
		return
	}

	respondWithJSON(w, http.StatusOK, role)
}

func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var role models.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if role.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Role name is required")
		return
	}

	role.ID = 0
	if err := h.roles.Create(r.Context(), &role); err != nil {
		respondStoreError(w, err, "Role not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, role)
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.Role
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Role name is required")
		return
	}

	role, err := h.roles.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Role not found")
		return
	}

	role.Name = payload.Name
	if err := h.roles.Update(r.Context(), role); err != nil {
		respondStoreError(w, err, "Role not found")
		return
	}

	respondWithJSON(w, http.StatusOK, role)
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.roles.Delete(r.Context(), id); err != nil {
		respondStoreError(w, err, "Role not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
