package util

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/persistence/blob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "iso date", input: "2021-01-05", expected: "05 Jan 2021"},
		{name: "timestamp", input: "2021-03-14T10:20:30.123Z", expected: "14 Mar 2021"},
		{name: "garbage", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatDateString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.50", FormatPrice(12.5, nil))
	assert.Equal(t, "$12.50 NZD", FormatPrice(12.5, &entity.Currency{Code: "NZD", Symbol: "$"}))
	assert.Equal(t, "€3.00", FormatPrice(3, &entity.Currency{Symbol: "€"}))
}

func newTestJar(t *testing.T) *CookieJar {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewCookieJar(blob.NewKeyValueRepository(bucket), 0)
}

func TestCookieJar(t *testing.T) {
	ctx := context.Background()
	jar := newTestJar(t)

	got, err := jar.GetCookie(ctx, CookieUser)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, jar.SetCookie(ctx, CookieUser, "100"))

	for range 2 {
		got, err = jar.GetCookie(ctx, CookieUser)
		require.NoError(t, err)
		assert.Contains(t, got, "user=100")
	}

	value, found, err := jar.CookieValue(ctx, CookieUser)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "100", value)

	require.NoError(t, jar.DeleteCookie(ctx, CookieUser))
	got, err = jar.GetCookie(ctx, CookieUser)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCookieJar_Expiry(t *testing.T) {
	ctx := context.Background()
	jar := newTestJar(t)
	jar.ttl = time.Millisecond
	jar.now = func() time.Time { return time.Now().Add(-time.Hour) }

	require.NoError(t, jar.SetCookie(ctx, CookieRole, `{"type":"user","id":1}`))

	_, found, err := jar.CookieValue(ctx, CookieRole)
	require.NoError(t, err)
	assert.False(t, found)
}
