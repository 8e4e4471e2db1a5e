// Crisismap - Disaster Response Coordination and Geographic Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crisismap

// @title Crisismap API
// @version 1.0
// @description Disaster response coordination: disaster records, relief resources,
// @description geocoding, social media monitoring, official updates and image verification.
// @description
// @description ## Authentication
// @description
// @description Mutating endpoints identify the caller with the `X-User-ID` header.
// @description Roles come from the static user directory (AUTH_USERS).
// @description
// @description ## Degraded Data
// @description
// @description Aggregation endpoints fall back to mock data when every upstream source fails.
// @description Such responses carry the `X-Data-Degraded: true` header and items with `source: "mock"`.
// @description
// @description ## Rate Limiting
// @description
// @description Per-IP fixed windows: 100 requests/min overall, 30/min for geocoding,
// @description 10/min for image verification and 30/min for writes. Exceeding a limit returns 429 with Retry-After.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/crisismap/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
//
// @tag.name Disasters
// @tag.description Disaster records with ownership and audit trail
//
// @tag.name Resources
// @tag.description Relief resources and proximity search
//
// @tag.name Geocoding
// @tag.description Forward, reverse and batch geocoding with LLM location extraction
//
// @tag.name Social
// @tag.description Social media reports classified by priority
//
// @tag.name Updates
// @tag.description Official bulletins from feeds and scraped pages
//
// @tag.name Verification
// @tag.description LLM-assisted image authenticity checks
package main
