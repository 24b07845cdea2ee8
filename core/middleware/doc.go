// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header or the api_key query
//     parameter. An empty configured key leaves the API open.
//   - rayid: tags every request with a ray id, kept from the incoming header when
//     present, exposed in the response and in the context for logger.WithRayID.
//
// Register rayid first so every later log line carries the id.
package middleware
