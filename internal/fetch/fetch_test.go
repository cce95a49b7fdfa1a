package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwd-temp/Winapp2/pkg/types"
)

func TestRuleset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[App *]\r\nDefault=False\r\n"))
	}))
	defer srv.Close()

	buf, err := Ruleset(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "[App *]")
}

func TestRulesetBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Ruleset(context.Background(), srv.Client(), srv.URL)
	assert.Error(t, err)
}

func TestRulesetUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := Ruleset(context.Background(), nil, url)
	assert.ErrorIs(t, err, types.ErrOffline)
}

func TestOnline(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	assert.True(t, Online(context.Background(), srv.Client(), srv.URL),
		"any HTTP response means reachable")

	url := srv.URL
	srv.Close()
	assert.False(t, Online(context.Background(), nil, url))
}
