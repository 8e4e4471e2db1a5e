// Crisismap - Disaster Response Coordination and Geographic Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crisismap

/*
Package main is the entry point for the crisismap server.

crisismap coordinates disaster response: it stores disaster records and relief
resources, aggregates geocoding, social media, official updates and image
verification behind a cache with mock fallbacks, and pushes changes to
WebSocket clients subscribed to a disaster.

# Application Architecture

	RootSupervisor ("crisismap")
	├── DataSupervisor ("data-layer")
	│   └── Cache sweeper
	├── MessagingSupervisor ("messaging-layer")
	│   ├── Embedded NATS (optional)
	│   ├── WebSocket hub
	│   └── Broadcast relay
	└── APISupervisor ("api-layer")
	    └── HTTP server

Component initialization order:

 1. Configuration: koanf v2 with defaults, config.yaml, .env and environment
 2. Database: DuckDB for disasters, resources, reports, updates and verifications
 3. Cache: memory, Badger, DuckDB table or none
 4. Authorization: Casbin enforcer over the static user directory
 5. Broadcast: watermill over go channels or NATS
 6. Aggregation: geocode, social, updates and verification services
 7. HTTP server: chi router with rate limiting and Swagger UI

# Configuration

Common environment variables:

	PORT=5000
	DUCKDB_PATH=/data/crisismap.duckdb
	CACHE_BACKEND=badger
	OPENAI_API_KEY=sk-...
	GOOGLE_MAPS_API_KEY=...
	BROADCAST_BACKEND=nats
	AUTH_USERS=netrunnerX:admin,citizen1:contributor

Without API keys every aggregation endpoint still answers, using mock data
marked with the X-Data-Degraded header.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests within SHUTDOWN_TIMEOUT, then the transport, cache and
database are closed.
*/
package main
