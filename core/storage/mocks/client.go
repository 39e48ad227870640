package mocks

import (
	"context"
	"os"

	"bunny-manager/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) Select(file string, zone ...string) storage.Client {
	args := m.Called(file, zone)
	if c, ok := args.Get(0).(storage.Client); ok {
		return c
	}
	return m
}

func (m *Client) Download(ctx context.Context, opts ...storage.TargetOption) ([]byte, error) {
	args := m.Called(ctx, opts)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DownloadFile(ctx context.Context, opts ...storage.TargetOption) (*os.File, error) {
	args := m.Called(ctx, opts)
	if f, ok := args.Get(0).(*os.File); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Exists(ctx context.Context, opts ...storage.TargetOption) (bool, error) {
	args := m.Called(ctx, opts)
	return args.Bool(0), args.Error(1)
}

func (m *Client) Upload(ctx context.Context, body storage.Body, opts ...storage.TargetOption) error {
	args := m.Called(ctx, body, opts)
	return args.Error(0)
}

func (m *Client) Delete(ctx context.Context, opts ...storage.TargetOption) error {
	args := m.Called(ctx, opts)
	return args.Error(0)
}

func (m *Client) PurgeCache(ctx context.Context, opts ...storage.TargetOption) (string, error) {
	args := m.Called(ctx, opts)
	return args.String(0), args.Error(1)
}
