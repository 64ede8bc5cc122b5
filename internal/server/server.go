package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/jiperezh/gosteel/internal/aisc"
	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/section"
)

// VerifyRequest is the JSON payload of a member verification call.
// Either a catalog shape name or explicit section properties must be
// supplied.
type VerifyRequest struct {
	Shape    string              `json:"shape,omitempty"`
	Section  *section.Properties `json:"section,omitempty"`
	Material *section.Material   `json:"material,omitempty"`

	P  float64 `json:"p"`
	Mx float64 `json:"mx"`
	My float64 `json:"my"`

	Lx float64 `json:"lx"`
	Ly float64 `json:"ly"`
	Lz float64 `json:"lz,omitempty"`
	Lb float64 `json:"lb"`
	Kx float64 `json:"kx,omitempty"`
	Ky float64 `json:"ky,omitempty"`
	Kz float64 `json:"kz,omitempty"`
	Cb float64 `json:"cb,omitempty"`
	U  float64 `json:"u,omitempty"`
}

func handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var props section.Properties
	switch {
	case req.Section != nil:
		props = *req.Section
	case req.Shape != "":
		p, ok := section.Lookup(req.Shape)
		if !ok {
			http.Error(w, "Unknown shape "+req.Shape, http.StatusNotFound)
			return
		}
		props = p
	default:
		http.Error(w, "Either shape or section is required", http.StatusBadRequest)
		return
	}

	mat := section.DefaultSteel()
	if req.Material != nil {
		mat = *req.Material
	}

	cfg := member.Config{
		Lx: req.Lx, Ly: req.Ly, Lz: req.Lz, Lb: req.Lb,
		Kx: req.Kx, Ky: req.Ky, Kz: req.Kz,
		Cb: req.Cb, U: req.U,
	}
	demands := member.Demands{P: req.P, Mx: req.Mx, My: req.My}

	rep, err := member.Evaluate(props, mat, cfg, demands)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, aisc.ErrValidation) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

func handleShapes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(section.Names())
}

// NewRouter builds the API route table.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/verify", handleVerify).Methods("POST")
	api.HandleFunc("/shapes", handleShapes).Methods("GET")
	return r
}

// Run starts the verification API. The listen address comes from
// GOSTEEL_ADDR, optionally loaded from a .env file.
func Run() error {
	// A missing .env file is fine; the address just defaults.
	_ = godotenv.Load()

	addr := os.Getenv("GOSTEEL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("gosteel API listening on %s", addr)
	return http.ListenAndServe(addr, NewRouter())
}
