package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("reactor: %v", err)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("reactor: %v", err)
	}
	log.SetLevel(level)

	if err := Run(cfg, os.Stdout); err != nil {
		log.Fatalf("reactor: %v", err)
	}
}
