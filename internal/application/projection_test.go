package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionCodecRoundTrip(t *testing.T) {
	p := &UserProjection{ID: "42", Name: "alice", Email: "alice@example.com"}
	raw, err := encodeProjection(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1,"id":"42","name":"alice","email":"alice@example.com"}`, string(raw))

	got, err := decodeProjection(raw)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDecodeProjectionRejectsCorruptEntries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not-a-dto"},
		{"wrong version", `{"v":2,"id":"42","name":"a","email":"a@example.com"}`},
		{"missing version", `{"id":"42","name":"a","email":"a@example.com"}`},
		{"empty id", `{"v":1,"id":"","name":"a","email":"a@example.com"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeProjection([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrCorruptCache)
		})
	}
}
