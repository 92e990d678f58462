// Package config handles YAML configuration loading with environment
// variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation, and a .env file in the working directory is loaded first
// so the Apify token can live outside the config file.
package config
