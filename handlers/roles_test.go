package handlers

import (
	"net/http"
	"testing"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

func TestRoleCreate(t *testing.T) {
	t.Parallel()

	handler := NewRoleHandler(newFakeRoleStore())

	rec := doJSON(t, handler.Create, http.MethodPost, "/api/roles", models.Role{Name: "Coordinator"}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, handler.Create, http.MethodPost, "/api/roles", models.Role{Name: ""}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty name accepted: status = %d", rec.Code)
	}
}

func TestRoleCreateDuplicateName(t *testing.T) {
	t.Parallel()

	handler := NewRoleHandler(newFakeRoleStore("Leader"))

	rec := doJSON(t, handler.Create, http.MethodPost, "/api/roles", models.Role{Name: "Leader"}, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestRoleUpdate(t *testing.T) {
	t.Parallel()

	handler := NewRoleHandler(newFakeRoleStore("Leader", "Developer"))

	rec := doJSON(t, handler.Update, http.MethodPut, "/api/roles/2", models.Role{Name: "Backend Developer"},
		map[string]string{"id": "2"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	// Taking another role's name conflicts.
	rec = doJSON(t, handler.Update, http.MethodPut, "/api/roles/2", models.Role{Name: "Leader"},
		map[string]string{"id": "2"})
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}

	rec = doJSON(t, handler.Update, http.MethodPut, "/api/roles/9", models.Role{Name: "Tester"},
		map[string]string{"id": "9"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing role: status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRoleDelete(t *testing.T) {
	t.Parallel()

	handler := NewRoleHandler(newFakeRoleStore("Leader"))

	rec := doJSON(t, handler.Delete, http.MethodDelete, "/api/roles/1", nil, map[string]string{"id": "1"})
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete: status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	rec = doJSON(t, handler.Delete, http.MethodDelete, "/api/roles/1", nil, map[string]string{"id": "1"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete missing: status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
