package api

import "time"

type Configuration struct {
	Env                 string
	AppName             string
	Port                string
	AllowedOrigins      []string
	RequestLoggingLevel string
	DefaultTimeout      time.Duration
}
