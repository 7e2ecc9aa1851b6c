package main

import (
	"fmt"
	"os"
	"strings"

	"ml-training-pipeline/internal/adapters/primary/dto"
	"ml-training-pipeline/internal/config"

	log "github.com/sirupsen/logrus"
)

const usage = "usage: artifactcheck <kind> <file.json>...\nkinds: %s\n"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, usage, kindList())
		os.Exit(2)
	}

	kind := dto.ArtifactKind(os.Args[1])
	if !run(kind, os.Args[2:]) {
		os.Exit(1)
	}
}

// run checks every file and reports whether all of them decoded.
func run(kind dto.ArtifactKind, paths []string) bool {
	ok := true
	for _, path := range paths {
		logger := log.WithFields(log.Fields{
			"kind": string(kind),
			"file": path,
		})

		data, err := os.ReadFile(path)
		if err != nil {
			logger.WithError(err).Error("read artifact")
			ok = false
			continue
		}

		artifact, err := dto.Decode(kind, data)
		if err != nil {
			logger.WithError(err).Error("artifact rejected")
			ok = false
			continue
		}

		logger.WithField("artifact", artifact.String()).Info("artifact ok")
	}
	return ok
}

func kindList() string {
	kinds := dto.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
