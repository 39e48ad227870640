package files

import (
	"context"
	"io"

	"bunny-manager/core/storage"

	"go.uber.org/zap"
)

// Service wraps the storage client with the gateway's error policy:
// reads and purges log failures and report absence, writes and deletes
// log and propagate.
type Service struct {
	client storage.Client
	logger *zap.Logger
}

// NewService creates a new files service.
func NewService(client storage.Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Fetch returns an object's bytes. Remote and transport failures are logged
// and collapse into found=false, so callers cannot distinguish a missing
// object from a broken backend without consulting the logs.
func (s *Service) Fetch(ctx context.Context, zone, name string) (data []byte, found bool) {
	data, err := s.client.Download(ctx, storage.WithZone(zone), storage.WithFile(name))
	if err != nil {
		s.logger.Error("download failed",
			zap.String("zone", zone),
			zap.String("file", name),
			zap.Error(err),
		)
		return nil, false
	}
	return data, true
}

// Exists reports whether an object exists.
func (s *Service) Exists(ctx context.Context, zone, name string) (bool, error) {
	return s.client.Exists(ctx, storage.WithZone(zone), storage.WithFile(name))
}

// Store uploads an object from a stream. Failures are logged and returned.
func (s *Service) Store(ctx context.Context, zone, name string, body io.Reader) error {
	err := s.client.Upload(ctx, storage.ReaderBody(body), storage.WithZone(zone), storage.WithFile(name))
	if err != nil {
		s.logger.Error("upload failed",
			zap.String("zone", zone),
			zap.String("file", name),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Remove deletes an object. Failures are logged and returned; the storage
// client already treats the API's not-found responses as success.
func (s *Service) Remove(ctx context.Context, zone, name string) error {
	err := s.client.Delete(ctx, storage.WithZone(zone), storage.WithFile(name))
	if err != nil {
		s.logger.Error("delete failed",
			zap.String("zone", zone),
			zap.String("file", name),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Purge evicts the CDN-cached copy of an object. Failures are logged and
// collapse into an empty status.
func (s *Service) Purge(ctx context.Context, zone, name string) string {
	status, err := s.client.PurgeCache(ctx, storage.WithZone(zone), storage.WithFile(name))
	if err != nil {
		s.logger.Error("cache purge failed",
			zap.String("zone", zone),
			zap.String("file", name),
			zap.Error(err),
		)
		return ""
	}
	return status
}
