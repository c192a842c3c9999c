package routes

import (
	"amora/amora/config"
	"amora/amora/controllers"
	"amora/amora/middlewares"
	"amora/amora/types"
	"amora/amora/utils/httputils"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxPhotoUploadBytes caps multipart photo uploads.
const maxPhotoUploadBytes = 10 << 20

func UserRoutes(ctrl *controllers.UsersController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// GET /api/users/{username} : member detail
		gr.Get("/{username}", func(w http.ResponseWriter, r *http.Request) {
			member, err := ctrl.GetMemberByUsername(r.Context(), chi.URLParam(r, "username"))
			if err != nil {
				writeUserError(w, err, "")
				return
			}
			httputils.WriteJSON(w, http.StatusOK, member)
		})

		// GET /api/users/ : paginated member listing
		gr.Get("/", func(w http.ResponseWriter, r *http.Request) {
			username := r.Context().Value(middlewares.UsernameKey).(string)
			page, err := ctrl.GetMembers(r.Context(), username, memberParams(r))
			if err != nil {
				writeUserError(w, err, "")
				return
			}
			httputils.AddPaginationHeader(w, httputils.PaginationHeader{
				CurrentPage:  page.CurrentPage,
				ItemsPerPage: page.PageSize,
				TotalItems:   page.TotalCount,
				TotalPages:   page.TotalPages,
			})
			httputils.WriteJSON(w, http.StatusOK, page.Items)
		})

		// PUT /api/users/ : update own profile
		gr.Put("/", func(w http.ResponseWriter, r *http.Request) {
			username := r.Context().Value(middlewares.UsernameKey).(string)
			var req types.MemberUpdateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if err := ctrl.UpdateUser(r.Context(), username, req); err != nil {
				writeUserError(w, err, "Failed to update user")
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		// POST /api/users/add-photo : multipart upload
		gr.Post("/add-photo", func(w http.ResponseWriter, r *http.Request) {
			username := r.Context().Value(middlewares.UsernameKey).(string)
			r.Body = http.MaxBytesReader(w, r.Body, maxPhotoUploadBytes)
			file, header, err := r.FormFile("file")
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			defer file.Close()

			photo, err := ctrl.AddPhoto(r.Context(), username, file, header.Size,
				header.Filename, header.Header.Get("Content-Type"))
			if err != nil {
				writeUserError(w, err, "Error adding photo")
				return
			}
			w.Header().Set("Location", fmt.Sprintf("/api/users/%s", username))
			httputils.WriteJSON(w, http.StatusCreated, photo)
		})

		// PUT /api/users/set-main-photo/{photoId}
		gr.Put("/set-main-photo/{photoId}", func(w http.ResponseWriter, r *http.Request) {
			username := r.Context().Value(middlewares.UsernameKey).(string)
			photoID, err := strconv.Atoi(chi.URLParam(r, "photoId"))
			if err != nil {
				http.Error(w, "invalid photo id", http.StatusBadRequest)
				return
			}
			if err := ctrl.SetMainPhoto(r.Context(), username, photoID); err != nil {
				writeUserError(w, err, "Error setting the main photo")
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		// DELETE /api/users/delete-photo/{photoId}
		gr.Delete("/delete-photo/{photoId}", func(w http.ResponseWriter, r *http.Request) {
			username := r.Context().Value(middlewares.UsernameKey).(string)
			photoID, err := strconv.Atoi(chi.URLParam(r, "photoId"))
			if err != nil {
				http.Error(w, "invalid photo id", http.StatusBadRequest)
				return
			}
			if err := ctrl.DeletePhoto(r.Context(), username, photoID); err != nil {
				writeUserError(w, err, "Error deleting the main photo")
				return
			}
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

// memberParams reads the listing filter from the query string. Unset
// fields stay zero; the controller applies the defaults.
func memberParams(r *http.Request) types.UserParams {
	q := r.URL.Query()
	params := types.UserParams{
		Gender:  q.Get("gender"),
		OrderBy: q.Get("order_by"),
	}
	params.MinAge, _ = strconv.Atoi(q.Get("min_age"))
	params.MaxAge, _ = strconv.Atoi(q.Get("max_age"))
	params.PageNumber, _ = strconv.Atoi(q.Get("page_number"))
	params.PageSize, _ = strconv.Atoi(q.Get("page_size"))
	return params
}

// writeUserError maps controller errors onto the HTTP contract.
// saveFailedMsg is the fixed per-endpoint message for persistence
// failures; provider errors pass through verbatim.
func writeUserError(w http.ResponseWriter, err error, saveFailedMsg string) {
	switch {
	case errors.Is(err, controllers.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, controllers.ErrAlreadyMain):
		http.Error(w, "This already your main photo", http.StatusBadRequest)
	case errors.Is(err, controllers.ErrMainPhoto):
		http.Error(w, "You can not delete your main photo", http.StatusBadRequest)
	case errors.Is(err, controllers.ErrNothingSaved):
		http.Error(w, saveFailedMsg, http.StatusBadRequest)
	case errors.Is(err, controllers.ErrInternal):
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
