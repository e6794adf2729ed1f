package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"assetbot/server"
)

func main() {
	srv, err := server.ServerInit(context.Background())
	if err != nil {
		log.Fatalf("startup failed: %+v", err)
	}
	go srv.Start()
	srv.Logger.GetLogger().Info("server initialized...")

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done
	srv.Stop()
	log.Println("server stopped...")
}
