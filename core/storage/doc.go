// Package storage provides the client for the Bunny Storage HTTP API and the
// Bunny CDN cache-purge endpoint.
//
// It issues plain HTTP requests (GET/PUT/DELETE against the storage endpoint,
// POST against the purge endpoint) authenticated with the AccessKey header.
// Storage operations use the storage access key; cache purges use the
// separate account API key.
//
// # Client Interface
//
// The Client interface abstracts the remote service, making it easy to mock
// storage interactions for unit testing (see core/storage/mocks).
//
// # Target Resolution
//
// Every operation targets a (zone, file) pair. A call can name the pair
// explicitly with WithZone/WithFile options; otherwise the client falls back
// to the target remembered by a previous Select call, and for the zone to
// the configured default. Select returns a derived client instead of
// mutating the receiver, so selected views can be shared across goroutines.
//
// # Error Policy
//
// Operations return a value or an error, nothing is swallowed here. A
// non-success status surfaces as *RemoteError carrying the status code and
// response body; transport failures surface wrapped. Exists is the one
// exception: any status other than 200 reads as "absent" without an error.
//
// # Usage
//
//	client := storage.NewClient(cfg, logger)
//	doc := client.Select("config.json", "my-zone")
//	data, err := doc.Download(ctx)
package storage
