package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// Status is the JSON document served to clients watching a run.
type Status struct {
	State  string `json:"state"`
	Frames int    `json:"frames"`
	Bytes  int    `json:"bytes"`
}

// Api serves the transmitter status over HTTP.
type Api struct {
	addr   string
	status func() Status
}

// NewApi creates an Api on addr; status is called per request for a
// fresh snapshot.
func NewApi(addr string, status func() Status) *Api {
	a := new(Api)
	a.addr = addr
	a.status = status
	return a
}

// Serve blocks, serving GET /status.
func (a *Api) Serve() {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)

	log.Println("Listening...")
	if err := http.ListenAndServe(a.addr, mux); err != nil {
		log.Println(err)
	}
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.status()); err != nil {
		log.Println(err)
	}
}
