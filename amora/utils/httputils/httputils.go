package httputils

import (
	"encoding/json"
	"net/http"
)

// PaginationHeader is the paging metadata attached to listing
// responses. It travels in the Pagination header, not the body.
type PaginationHeader struct {
	CurrentPage  int `json:"current_page"`
	ItemsPerPage int `json:"items_per_page"`
	TotalItems   int `json:"total_items"`
	TotalPages   int `json:"total_pages"`
}

// AddPaginationHeader must be called before the body is written.
func AddPaginationHeader(w http.ResponseWriter, h PaginationHeader) {
	data, err := json.Marshal(h)
	if err != nil {
		return
	}
	w.Header().Set("Pagination", string(data))
	w.Header().Set("Access-Control-Expose-Headers", "Pagination")
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
