package rest

import (
	"encoding/json"
	"net/http"
)

type statusResponse struct {
	Participants int `json:"participants"`
	Sessions     int `json:"sessions"`
}

func statusHandler(provider statusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := provider.Status(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(statusResponse{
			Participants: counts.Participants,
			Sessions:     counts.Sessions,
		}); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
}
