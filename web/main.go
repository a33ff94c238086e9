package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-hemisphere-sampler/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)

	log.Printf("Hemisphere Sampler Web Server")
	log.Printf("Fetch http://localhost:%d/api/samples?strategy=cosine&steps=7 to generate samples", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
