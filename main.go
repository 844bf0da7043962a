// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"directory-building-block/core"
	"directory-building-block/core/query"
	"directory-building-block/driven/geocoder"
	"directory-building-block/driven/storage"
	"directory-building-block/driver/web"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/envloader"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "directory"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)

	//the env files are optional, the process environment wins
	loadEnvFiles(logger, "config/config.env", ".env")
	envLoader := envloader.NewEnvLoader(Version, logger)

	level := envLoader.GetAndLogEnvVar("DIRECTORY_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	env := envLoader.GetAndLogEnvVar("DIRECTORY_ENVIRONMENT", true, false) //local, dev, staging, prod
	port := envLoader.GetAndLogEnvVar("DIRECTORY_PORT", false, false)
	//Default port of 80
	if port == "" {
		port = "80"
	}

	host := envLoader.GetAndLogEnvVar("DIRECTORY_HOST", true, false)

	// mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("DIRECTORY_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("DIRECTORY_MONGO_DATABASE", true, false)
	mongoTimeout := envLoader.GetAndLogEnvVar("DIRECTORY_MONGO_TIMEOUT", false, false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	// geocoder adapter
	geocoderHost := envLoader.GetAndLogEnvVar("DIRECTORY_GEOCODER_HOST", true, false)
	geocoderAPIKey := envLoader.GetAndLogEnvVar("DIRECTORY_GEOCODER_API_KEY", true, true)
	geocoderAdapter := geocoder.NewGeocoderAdapter(geocoderHost, geocoderAPIKey, logger)

	// list defaults
	listDefaults := query.Defaults{
		Limit:    intEnvVar(envLoader, logger, "DIRECTORY_DEFAULT_LIMIT", query.DefaultLimit),
		MaxLimit: intEnvVar(envLoader, logger, "DIRECTORY_MAX_LIMIT", query.DefaultMaxLimit),
	}

	// application
	application := core.NewCoreAPIs(env, Version, Build, storageAdapter, geocoderAdapter, listDefaults, logger)
	application.Start()

	// web adapter
	jwtSecret := envLoader.GetAndLogEnvVar("DIRECTORY_JWT_SECRET", true, true)
	auth := web.NewAuth(jwtSecret, logger)

	rateLimitRequests := intEnvVar(envLoader, logger, "DIRECTORY_RATE_LIMIT_REQUESTS", 100)
	rateLimitWindow := time.Duration(intEnvVar(envLoader, logger, "DIRECTORY_RATE_LIMIT_WINDOW", 600)) * time.Second

	webAdapter := web.NewWebAdapter(host, port, application, auth, rateLimitRequests, rateLimitWindow, logger)
	webAdapter.Start()
}

// loadEnvFiles loads every env file which exists, a missing file does not skip the next ones
func loadEnvFiles(logger *logs.Logger, files ...string) []string {
	loaded := []string{}
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil {
			logger.Infof("Env file %s not loaded: %v", file, err)
			continue
		}
		loaded = append(loaded, file)
	}
	return loaded
}

func intEnvVar(envLoader envloader.EnvLoader, logger *logs.Logger, name string, defaultValue int) int {
	raw := envLoader.GetAndLogEnvVar(name, false, false)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.Infof("Error parsing %s, applying default %d: %v", name, defaultValue, err)
		return defaultValue
	}
	return value
}
