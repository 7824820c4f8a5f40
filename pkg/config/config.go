// Package config provides application configuration backed by viper.
// Sections are registered lazily via Add and resolved against environment
// variables loaded from .env files.
package config

import (
	"os"

	"github.com/spf13/cast"
	viperlib "github.com/spf13/viper"
)

// viper instance shared by the whole process
var viper *viperlib.Viper

// ConfigFunc produces one configuration section.
type ConfigFunc func() map[string]interface{}

// ConfigFuncs holds all registered sections, loaded by InitConfig.
var ConfigFuncs map[string]ConfigFunc

func init() {
	viper = viperlib.New()
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("appenv")
	viper.AutomaticEnv()

	ConfigFuncs = make(map[string]ConfigFunc)
}

// InitConfig loads the .env file (or .env.{suffix}) and materializes all
// registered sections.
func InitConfig(env string) {
	loadEnv(env)
	loadConfig()
}

func loadConfig() {
	for name, fn := range ConfigFuncs {
		viper.Set(name, fn())
	}
}

func loadEnv(envSuffix string) {
	envPath := ".env"
	if len(envSuffix) > 0 {
		filepath := ".env." + envSuffix
		if _, err := os.Stat(filepath); err == nil {
			envPath = filepath
		}
	}

	viper.SetConfigName(envPath)
	if err := viper.ReadInConfig(); err != nil {
		// a missing .env file is fine, the environment may carry everything
		if _, ok := err.(viperlib.ConfigFileNotFoundError); !ok {
			if _, statErr := os.Stat(envPath); statErr == nil {
				panic(err)
			}
		}
	}

	viper.WatchConfig()
}

// Env reads an environment variable, with an optional default.
func Env(envName string, defaultValue ...interface{}) interface{} {
	if len(defaultValue) > 0 {
		return internalGet(envName, defaultValue[0])
	}
	return internalGet(envName)
}

// Add registers a configuration section.
func Add(name string, configFn ConfigFunc) {
	ConfigFuncs[name] = configFn
}

// Get reads a configuration value, supporting dot-separated paths.
func Get(path string, defaultValue ...interface{}) string {
	return GetString(path, defaultValue...)
}

func internalGet(path string, defaultValue ...interface{}) interface{} {
	if !viper.IsSet(path) || isEmpty(viper.Get(path)) {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return nil
	}
	return viper.Get(path)
}

func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}

// GetString reads a string value from configuration.
func GetString(path string, defaultValue ...interface{}) string {
	return cast.ToString(internalGet(path, defaultValue...))
}

// GetInt reads an int value from configuration.
func GetInt(path string, defaultValue ...interface{}) int {
	return cast.ToInt(internalGet(path, defaultValue...))
}

// GetInt64 reads an int64 value from configuration.
func GetInt64(path string, defaultValue ...interface{}) int64 {
	return cast.ToInt64(internalGet(path, defaultValue...))
}

// GetUint reads a uint value from configuration.
func GetUint(path string, defaultValue ...interface{}) uint {
	return cast.ToUint(internalGet(path, defaultValue...))
}

// GetBool reads a bool value from configuration.
func GetBool(path string, defaultValue ...interface{}) bool {
	return cast.ToBool(internalGet(path, defaultValue...))
}

// GetStringMapString reads a map value from configuration.
func GetStringMapString(path string) map[string]string {
	return viper.GetStringMapString(path)
}
