// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

/*
Package main is the entry point for the Pickrec server.

Pickrec loads every "liked" restaurant from MongoDB, builds a TF-IDF
similarity matrix over "category priceLevel" and answers POST /recommend
with the restaurants most similar to a guest's preferred category.

# Startup

 1. Configuration: Koanf v2 (defaults, optional YAML, environment)
 2. Logging: zerolog configured from LOG_LEVEL / LOG_FORMAT / LOG_CALLER
 3. Store: connect and ping MongoDB; failure is fatal
 4. Index: fetch the catalog, build the matrix, publish it; failure is fatal
 5. Supervisor tree: HTTP server, plus the reload service when
    RECOMMEND_RELOAD_INTERVAL is positive

The HTTP server is only added after the first index is published, so no
request can observe a half-built snapshot.

# Supervision

	RootSupervisor ("pickrec")
	├── DataSupervisor ("data-layer")
	│   └── ReloadService (optional)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Environment

	PORT                       listening port (default 8000)
	MONGO_URI                  connection string (default mongodb://localhost:27017)
	MONGO_DATABASE             database (default recommend)
	MONGO_COLLECTION           collection (default like)
	RECOMMEND_TOP_K            items per response (default 5)
	RECOMMEND_RELOAD_INTERVAL  periodic reload, 0 disables (default 0)
	CORS_ORIGINS               comma separated origins (default *)
	LOG_LEVEL, LOG_FORMAT      info, json

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT, then the Mongo client
is disconnected.

# Example

	export MONGO_URI=mongodb://mongo:27017
	export LOG_FORMAT=console
	./pickrec

	curl -s -XPOST localhost:8000/recommend \
	  -d '{"guestId": "guest-1", "preferences": "korean"}'
*/
package main
