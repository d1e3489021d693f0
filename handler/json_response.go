package handler

import (
	"encoding/json"
	"net/http"
)

// jsonBody is the wire shape of every JSON response:
// {data, count?} on success, {error} on failure.
type jsonBody struct {
	Data  any    `json:"data,omitempty"`
	Count *int   `json:"count,omitempty"`
	Error string `json:"error,omitempty"`
}

type jsonResponse struct {
	body   jsonBody
	status int
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON responds 200 with {data}.
func JSON(data any) Response {
	return JSONWithStatus(data, http.StatusOK)
}

// JSONWithStatus responds with {data} and the given status code.
func JSONWithStatus(data any, status int) Response {
	return jsonResponse{body: jsonBody{Data: data}, status: status}
}

// JSONList responds 200 with {data, count}.
func JSONList(data any, count int) Response {
	return jsonResponse{body: jsonBody{Data: data, Count: &count}, status: http.StatusOK}
}

// Error responds with {error} and the given status code.
func Error(message string, status int) Response {
	return jsonResponse{body: jsonBody{Error: message}, status: status}
}
