// Package feed defines the [Service] interface for fetching grouped section
// JSON from the Tadka portal REST backend and implements it over HTTP.
//
// # Service Interface
//
// Sections are served pre-shaped by the backend; the client performs no
// regrouping or sorting, only decoding through [models.ParseGroup].
//
// # HTTP Implementation
//
// [HTTPService] issues GET requests against /api/sections/{slug} with
// context propagation. An optional bearer token (via oauth2's static token
// source) authenticates against gated portal endpoints, and an optional
// rate limiter caps outbound request rate.
//
// # Caching
//
// [CachingService] decorates any Service with a snapshot store. Fresh cache
// hits skip the network entirely; when the upstream fetch fails and a stale
// snapshot exists, the stale payload is served rather than surfacing the
// error, matching the portal client's degrade-gracefully policy.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrSectionNotFound] : unknown section slug (HTTP 404)
//   - [shared.ErrAPIRequest] : any other failed HTTP request
package feed
