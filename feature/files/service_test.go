package files

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bunny-manager/core/storage"
	"bunny-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedService(client storage.Client) (*Service, *observer.ObservedLogs) {
	core, logs := observer.New(zap.ErrorLevel)
	return NewService(client, zap.New(core)), logs
}

func TestService_Fetch(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, zap.NewNop())

		mockClient.On("Download", mock.Anything, mock.Anything).Return([]byte("hello"), nil)

		data, found := svc.Fetch(context.Background(), "z1", "a.txt")
		assert.True(t, found)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("RemoteFailureSwallowedAndLogged", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc, logs := observedService(mockClient)

		mockClient.On("Download", mock.Anything, mock.Anything).
			Return(nil, &storage.RemoteError{StatusCode: 500, Body: []byte("boom")})

		data, found := svc.Fetch(context.Background(), "z1", "a.txt")
		assert.False(t, found)
		assert.Nil(t, data)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "download failed", logs.All()[0].Message)
	})
}

func TestService_Store(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, zap.NewNop())

		mockClient.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		err := svc.Store(context.Background(), "z1", "a.txt", strings.NewReader("payload"))
		assert.NoError(t, err)
	})

	t.Run("FailurePropagatesAfterLogging", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc, logs := observedService(mockClient)

		remote := &storage.RemoteError{StatusCode: 403}
		mockClient.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(remote)

		err := svc.Store(context.Background(), "z1", "a.txt", strings.NewReader("payload"))
		assert.ErrorIs(t, err, remote)
		assert.Equal(t, 1, logs.Len())
	})
}

func TestService_Remove(t *testing.T) {
	mockClient := new(mocks.Client)
	svc, logs := observedService(mockClient)

	remote := &storage.RemoteError{StatusCode: 503}
	mockClient.On("Delete", mock.Anything, mock.Anything).Return(remote)

	err := svc.Remove(context.Background(), "z1", "a.txt")
	assert.ErrorIs(t, err, remote)
	assert.Equal(t, 1, logs.Len())
}

func TestService_Purge(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, zap.NewNop())

		mockClient.On("PurgeCache", mock.Anything, mock.Anything).Return("200", nil)

		assert.Equal(t, "200", svc.Purge(context.Background(), "z1", "a.txt"))
	})

	t.Run("FailureSwallowedAndLogged", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc, logs := observedService(mockClient)

		mockClient.On("PurgeCache", mock.Anything, mock.Anything).
			Return("", &storage.RemoteError{StatusCode: 503})

		assert.Empty(t, svc.Purge(context.Background(), "z1", "a.txt"))
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "cache purge failed", logs.All()[0].Message)
	})
}

// TestService_EndToEnd drives the service through a real storage client
// against a stub backend.
func TestService_EndToEnd(t *testing.T) {
	var deleted bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/purge":
			w.WriteHeader(http.StatusServiceUnavailable)
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNotFound)
		default:
			w.Write([]byte("hello"))
		}
	}))
	defer srv.Close()

	client := storage.NewClient(storage.Config{
		AccessKey:     "ak",
		ApiKey:        "pk",
		Zone:          "z1",
		Endpoint:      srv.URL,
		PurgeEndpoint: srv.URL + "/purge",
	}, zap.NewNop())

	svc, logs := observedService(client)
	ctx := context.Background()

	require.NoError(t, svc.Store(ctx, "z1", "a.txt", strings.NewReader("hello")))

	data, found := svc.Fetch(ctx, "z1", "a.txt")
	assert.True(t, found)
	assert.Equal(t, []byte("hello"), data)

	// 404 on delete counts as success.
	assert.NoError(t, svc.Remove(ctx, "z1", "a.txt"))
	assert.True(t, deleted)

	// 503 on purge degrades to an empty status, observable only in the logs.
	assert.Empty(t, svc.Purge(ctx, "z1", "a.txt"))
	assert.Equal(t, 1, logs.Len())
}
