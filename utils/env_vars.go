package utils

import (
	"log"
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable, or the default value
// when it is unset or empty.
func GetEnv[T int | string | bool](name string, defaultValue T) T {
	envValue, ok := os.LookupEnv(name)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[T](name, envValue)
}

// GetRequiredEnv exits the program when the environment variable is missing.
func GetRequiredEnv[T int | string | bool](name string) T {
	envValue, ok := os.LookupEnv(name)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	return parseEnv[T](name, envValue)
}

func parseEnv[T int | string | bool](name, envValue string) T {
	var value T
	switch ptr := any(&value).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' is not an integer", name, envValue)
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' is not a boolean", name, envValue)
		}
		*ptr = boolValue
	}
	return value
}
