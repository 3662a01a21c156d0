package handler

import (
	"fmt"
	"net/http"
)

// Response renders itself to an http.ResponseWriter. Handlers build a
// Response value for every outcome so status, headers and body shaping stay
// in one place.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type redirectResponse struct {
	url  string
	code int
}

func (resp redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	http.Redirect(w, r, resp.url, resp.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other), the
// standard post-form redirect: the browser follows with a GET and a refresh
// never resubmits the form.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

type textResponse struct {
	code int
	body string
}

func (resp textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(resp.code)
	_, err := fmt.Fprint(w, resp.body)
	return err
}

// Text creates a plain-text response with the given status code.
func Text(code int, body string) Response {
	return textResponse{code: code, body: body}
}

// Error creates the response for a pipeline failure.
func Error(e HTTPError) Response {
	return textResponse{code: e.Code, body: e.Message}
}
