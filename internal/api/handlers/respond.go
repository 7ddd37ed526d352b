package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// RedirectWithMessage sends the browser back to the calendar page with
// a flash message in the query string. 303 turns the POST into a GET.
func RedirectWithMessage(w http.ResponseWriter, r *http.Request, message string) {
	target := "/?message=" + url.QueryEscape(message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// RespondJSON writes a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondInternalError writes a plain 500 response.
func RespondInternalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
