// Package files exposes the storage operations over HTTP.
//
// It is a thin gateway in front of the Bunny Storage client: every route
// resolves a (zone, name) pair from the path and delegates to the client.
// The service layer implements the gateway's error policy: downloads and
// cache purges log backend failures and degrade (404 / status "unknown"),
// while uploads and deletes propagate the failure to the response.
//
// # HTTP Endpoints
//
//   - GET    /files/:zone/:name          : download the object body
//   - GET    /files/:zone/:name/exists   : existence check
//   - PUT    /files/:zone/:name          : upload the request body
//   - DELETE /files/:zone/:name          : delete the object
//   - POST   /files/:zone/:name/purge    : purge the CDN cache for the object
package files
