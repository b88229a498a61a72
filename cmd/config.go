package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	TokenSecret string
	TokenTTL    time.Duration

	ProcessingDelay    time.Duration
	ProcessorWorkers   int
	ProcessorQueueSize int
	StuckSweepCron     string
}
