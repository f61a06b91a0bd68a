package memcache

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamemcache/go-memcache/internal/testutils"
	"github.com/yamemcache/go-memcache/meta"
)

func newTestConnection(responses ...string) (*Connection, *testutils.ConnectionMock) {
	mock := testutils.NewConnectionMock(responses...)
	return newConnection(mock, "test:11211", zerolog.Nop()), mock
}

func TestConnectionGet(t *testing.T) {
	conn, mock := newTestConnection("VA 4 f33\r\nabcd\r\n")

	value, err := conn.Get(context.Background(), "testkey1")

	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, []byte("abcd"), value.Data)
	assert.Equal(t, uint32(33), value.Flags)
	assert.Equal(t, "mg testkey1 f v\r\n", mock.GetWrittenRequest())
	assert.False(t, conn.IsClosed())
}

func TestConnectionGetMiss(t *testing.T) {
	conn, _ := newTestConnection("EN\r\n")

	value, err := conn.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestConnectionSet(t *testing.T) {
	conn, mock := newTestConnection("HD\r\n")

	err := conn.Set(context.Background(), "testkey1", meta.Value{Data: []byte{0, 1, 2, 3}, Flags: 33})

	require.NoError(t, err)
	assert.Equal(t, "ms testkey1 S4 T0 F33\r\n\x00\x01\x02\x03\r\n", mock.GetWrittenRequest())
}

func TestConnectionGetMany(t *testing.T) {
	conn, mock := newTestConnection("VALUE testkey1 33 4\r\nabcd\r\nEND\r\n")

	values, err := conn.GetMany(context.Background(), []string{"testkey1", "testkey2"})

	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "testkey1", values[0].Key)
	assert.Equal(t, "get testkey1 testkey2\r\n", mock.GetWrittenRequest())
}

func TestConnectionDelete(t *testing.T) {
	conn, mock := newTestConnection("DELETED\r\n")

	found, err := conn.Delete(context.Background(), "testkey1")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "delete testkey1\r\n", mock.GetWrittenRequest())
}

func TestConnectionVersion(t *testing.T) {
	conn, mock := newTestConnection("VERSION 1.6.21\r\n")

	version, err := conn.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.6.21", version)
	assert.Equal(t, "version\r\n", mock.GetWrittenRequest())
}

func TestConnectionClosesOnProtocolDesync(t *testing.T) {
	conn, mock := newTestConnection("GARBAGE\r\n")

	_, err := conn.Get(context.Background(), "testkey1")

	var respErr *meta.ServerResponseError
	require.ErrorAs(t, err, &respErr)
	assert.True(t, conn.IsClosed())
	assert.True(t, mock.Closed())

	// Further use is refused.
	_, err = conn.Get(context.Background(), "testkey1")
	assert.ErrorIs(t, err, ErrConnectionClosed)
}

func TestConnectionSurvivesInvalidKey(t *testing.T) {
	conn, mock := newTestConnection("EN\r\n")

	_, err := conn.Get(context.Background(), "bad key")

	var keyErr *meta.InvalidKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.False(t, conn.IsClosed())
	assert.Empty(t, mock.GetWrittenRequest())

	// The canned response is still in place for a valid follow-up call.
	value, err := conn.Get(context.Background(), "goodkey")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestConnectionContextAlreadyCancelled(t *testing.T) {
	conn, mock := newTestConnection()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conn.Get(ctx, "testkey1")

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, mock.GetWrittenRequest())
}
