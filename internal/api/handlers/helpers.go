package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"spacex-launch-dashboard/internal/api/dto"
	"spacex-launch-dashboard/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeQueryError answers 400 for malformed queries and 500 for anything else.
func writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	var qe *domain.InvalidQueryError
	if errors.As(err, &qe) {
		writeJSON(w, r, http.StatusBadRequest, dto.QueryErrorResponse{Error: qe.Error(), Field: qe.Field})
		return
	}
	log.Printf("query failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}
