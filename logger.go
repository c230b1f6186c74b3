package main

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	log     *logrus.Entry
	logFile *os.File
)

func setupLogger(cfg *config, output io.Writer) {
	logger := logrus.New()
	logger.SetOutput(output)

	switch cfg.logFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:   time.RFC3339Nano,
			DisableHTMLEscape: true,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	}

	log = logrus.NewEntry(logger)
	if runID := generateUUID(); runID != "" {
		log = log.WithField("uuid", runID)
	}

	if cfg.logFile != "" {
		f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			log.WithField("file", cfg.logFile).
				WithError(err).
				Warn("cannot open logfile, logging to stderr")
		} else {
			logFile = f
			logger.SetOutput(f)
		}
	}

	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		logger.SetLevel(logrus.DebugLevel)
		log.WithField("given_level", cfg.logLevel).
			Warn("could not parse log level, defaulting to 'debug'")
	} else {
		logger.SetLevel(level)
	}
}

func generateUUID() string {
	uniqueID, err := uuid.NewRandom()
	if err != nil {
		log.WithError(err).
			Error("could not generate UUIDv4")
		return ""
	}

	return uniqueID.String()
}

func closeLogger() {
	if logFile == nil {
		return
	}

	if err := logFile.Close(); err != nil {
		log.WithError(err).Warn("cannot close logfile")
	}
	logFile = nil
}
