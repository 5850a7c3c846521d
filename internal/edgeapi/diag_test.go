package edgeapi

import (
	"context"
	"testing"

	"github.com/edgetools/akaget/pkg/httpclient/httpclienttest"
)

func TestURLDebug_PassesURLParameter(t *testing.T) {
	fake := httpclienttest.NewFakeDoer(t, httpclienttest.NewStringResponse(200, `{"urlDebug": {}}`))
	c, _ := newTestClient(fake, "", nil)

	if _, err := c.URLDebug(context.Background(), "https://www.example.com/index.html"); err != nil {
		t.Fatalf("URLDebug: %v", err)
	}
	req := fake.Requests()[0]
	if req.URL.Path != "/diagnostic-tools/v2/url-debug" {
		t.Fatalf("path got %s", req.URL.Path)
	}
	if got := req.URL.Query().Get("url"); got != "https://www.example.com/index.html" {
		t.Fatalf("url parameter got %q", got)
	}
}

func TestTranslateReference_UsesFragmentAfterHash(t *testing.T) {
	cases := []struct {
		name      string
		reference string
		wantPath  string
	}{
		{
			"plain code",
			"9.6f64d440.1622793418.1a0b52",
			"/diagnostic-tools/v2/errors/9.6f64d440.1622793418.1a0b52/translated-error",
		},
		{
			"hash fragment",
			"Error#E_CONNECT_TIMEOUT",
			"/diagnostic-tools/v2/errors/E_CONNECT_TIMEOUT/translated-error",
		},
		{
			"html escaped hash",
			"Reference&#35;9.6f64d440",
			"/diagnostic-tools/v2/errors/9.6f64d440/translated-error",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := httpclienttest.NewFakeDoer(t, httpclienttest.NewStringResponse(200, `{"translatedError": {}}`))
			c, _ := newTestClient(fake, "", nil)
			if _, err := c.TranslateReference(context.Background(), tc.reference); err != nil {
				t.Fatalf("TranslateReference: %v", err)
			}
			if got := fake.Requests()[0].URL.Path; got != tc.wantPath {
				t.Fatalf("path got %s, want %s", got, tc.wantPath)
			}
		})
	}
}

func TestEStatsAndCPStats_Paths(t *testing.T) {
	fake := httpclienttest.NewFakeDoer(t,
		httpclienttest.NewStringResponse(200, `{}`),
		httpclienttest.NewStringResponse(200, `{}`),
	)
	c, _ := newTestClient(fake, "", nil)

	ctx := context.Background()
	if _, err := c.EStats(ctx, "https://www.example.com/"); err != nil {
		t.Fatalf("EStats: %v", err)
	}
	if _, err := c.CPStats(ctx, "12345"); err != nil {
		t.Fatalf("CPStats: %v", err)
	}
	reqs := fake.Requests()
	if reqs[0].URL.Path != "/diagnostic-tools/v2/estat" {
		t.Fatalf("estat path got %s", reqs[0].URL.Path)
	}
	if reqs[1].URL.Path != "/diagnostic-tools/v2/cpcodes/12345/estats" {
		t.Fatalf("cpstats path got %s", reqs[1].URL.Path)
	}
}
