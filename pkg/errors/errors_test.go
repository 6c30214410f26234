package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	req := require.New(t)

	req.Equal(http.StatusBadRequest, HTTPStatus(New(KindInvalid, "bad")))
	req.Equal(http.StatusBadRequest, HTTPStatus(New(KindConflict, "dup")))
	req.Equal(http.StatusUnauthorized, HTTPStatus(New(KindUnauthorized, "no")))
	req.Equal(http.StatusForbidden, HTTPStatus(New(KindForbidden, "nope")))
	req.Equal(http.StatusNotFound, HTTPStatus(New(KindNotFound, "gone")))
	req.Equal(http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestClientMessage(t *testing.T) {
	req := require.New(t)

	req.Equal("Chat not found", ClientMessage(New(KindNotFound, "Chat not found")))
	req.NotContains(ClientMessage(errors.New("pq: connection refused")), "pq:")
}

func TestWrapPreservesCause(t *testing.T) {
	req := require.New(t)

	cause := ErrNotFound
	wrapped := Wrap(KindNotFound, cause, "Chat does not exist")

	req.True(errors.Is(wrapped, ErrNotFound))
	req.Equal(KindNotFound, KindOf(wrapped))
	req.Equal("Chat does not exist", ClientMessage(wrapped))

	again := fmt.Errorf("outer: %w", wrapped)
	req.True(errors.Is(again, ErrNotFound))
	req.Equal(KindNotFound, KindOf(again))
}
