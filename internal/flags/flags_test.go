package flags

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const houseAdvantageKey = "casino.house-advantage"

func TestEnvKey(t *testing.T) {
	if got := envKey(houseAdvantageKey); got != "FLAG_CASINO_HOUSE_ADVANTAGE" {
		t.Fatalf("envKey wrong: %s", got)
	}
	if got := envKey("dice.pass-line"); got != "FLAG_DICE_PASS_LINE" {
		t.Fatalf("envKey wrong: %s", got)
	}
}

func TestEnvOverrideBeatsFlagd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("flagd should not be consulted when the env var is set")
	}))
	defer srv.Close()

	c := New(srv.URL)
	cases := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"no", false},
		{"0", false},
		{"", false}, // set-but-empty counts as an explicit off
	}
	for _, tc := range cases {
		t.Setenv("FLAG_CASINO_HOUSE_ADVANTAGE", tc.value)
		if got := c.Bool(context.Background(), houseAdvantageKey, !tc.want); got != tc.want {
			t.Fatalf("env %q: got %v, want %v", tc.value, got, tc.want)
		}
	}
}

func flagdStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/schema/v1/flags/"+houseAdvantageKey {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestFlagdEnabledVariants(t *testing.T) {
	cases := []struct {
		body string
		def  bool
		want bool
	}{
		{`{"state":"ENABLED","defaultVariant":"true"}`, false, true},
		{`{"state":"ENABLED","defaultVariant":"false"}`, true, false},
		{`{"state":"ENABLED","defaultVariant":"True"}`, false, true},
		{`{"state":"ENABLED","defaultVariant":"on"}`, false, false}, // unparseable variant keeps the default
		{`{"state":"DISABLED","defaultVariant":"true"}`, false, false},
	}
	for _, tc := range cases {
		srv := flagdStub(t, http.StatusOK, tc.body)
		got := New(srv.URL).Bool(context.Background(), houseAdvantageKey, tc.def)
		srv.Close()
		if got != tc.want {
			t.Fatalf("body %s def %v: got %v, want %v", tc.body, tc.def, got, tc.want)
		}
	}
}

func TestFlagdFailuresFallBack(t *testing.T) {
	srv := flagdStub(t, http.StatusNotFound, `{"error":"flag not found"}`)
	if got := New(srv.URL).Bool(context.Background(), houseAdvantageKey, true); !got {
		t.Fatalf("non-200 should keep the default")
	}
	srv.Close()

	srv = flagdStub(t, http.StatusOK, `{not json`)
	if got := New(srv.URL).Bool(context.Background(), houseAdvantageKey, true); !got {
		t.Fatalf("bad json should keep the default")
	}
	srv.Close()

	// server already closed: connection refused
	if got := New(srv.URL).Bool(context.Background(), houseAdvantageKey, true); !got {
		t.Fatalf("unreachable flagd should keep the default")
	}
}

func TestNilClientUsesDefault(t *testing.T) {
	var c *Client
	if got := c.Bool(context.Background(), houseAdvantageKey, true); !got {
		t.Fatalf("nil client should keep the default")
	}
	if got := c.Bool(context.Background(), houseAdvantageKey, false); got {
		t.Fatalf("nil client should keep the default")
	}
}
