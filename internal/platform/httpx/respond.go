// Package httpx concentra los helpers de respuesta que antes vivían
// duplicados en cada módulo de handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde {"error": msg}. Para errores de store el msg debe
// ser genérico: la causa real se loguea, nunca viaja al cliente.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}
