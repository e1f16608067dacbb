// Package config loads assistant settings from an optional YAML file, a
// .env file, and environment variables, in increasing order of precedence.
//
// The main entry points are [Load] and [LoadFromReader]; [LoadDotenv]
// hydrates the environment from a .env file first when one exists.
package config
