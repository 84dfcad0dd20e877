package main

import (
	"log"
	"net/http"

	"github.com/jask/tkdraft/internal/codegen"
	"github.com/jask/tkdraft/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	srv := codegen.NewServer(log.Default())
	log.Printf("tkdraftd listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Handler()); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
