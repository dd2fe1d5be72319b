package main

import (
	"log"

	"github.com/finnmprice/caffeine-counter/config"
	"github.com/finnmprice/caffeine-counter/routes"
	"github.com/finnmprice/caffeine-counter/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	if err := r.Run(config.Port()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
