package builder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"

	"go.llib.dev/patternkit/builder"
)

var rnd = random.New(random.CryptoSeed{})

func TestBuilder(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		url = testcase.Let(s, func(t *testcase.T) string {
			return "https://api.example.com/" + t.Random.StringNC(8, random.CharsetAlpha())
		})
	)

	s.Then("defaults are applied for the optional attributes", func(t *testcase.T) {
		req, err := builder.New().WithURL(url.Get(t)).Build()
		t.Must.NoError(err)
		t.Must.Equal("GET", req.Method())
		t.Must.Equal(30*time.Second, req.Timeout())
		t.Must.Empty(req.Body())
	})

	s.Then("a missing URL fails the build fast", func(t *testcase.T) {
		_, err := builder.New().WithMethod("GET").Build()
		t.Must.ErrorIs(builder.ErrURLMissing, err)
	})

	s.Then("the call order makes no difference", func(t *testcase.T) {
		body := t.Random.String()

		a, err := builder.New().
			WithURL(url.Get(t)).
			WithMethod("POST").
			WithBody(body).
			WithTimeout(5 * time.Second).
			Build()
		t.Must.NoError(err)

		b, err := builder.New().
			WithTimeout(5 * time.Second).
			WithBody(body).
			WithMethod("POST").
			WithURL(url.Get(t)).
			Build()
		t.Must.NoError(err)

		t.Must.Equal(a, b)
	})

	s.Then("the built request is shielded from later header mutation", func(t *testcase.T) {
		b := builder.New().WithURL(url.Get(t)).WithHeader("X-Trace", "1")
		req, err := b.Build()
		t.Must.NoError(err)

		b.WithHeader("X-Trace", "2")
		b.WithHeader("X-Other", "3")

		v, ok := req.Header("X-Trace")
		t.Must.True(ok)
		t.Must.Equal("1", v)
		_, ok = req.Header("X-Other")
		t.Must.False(ok)

		hs := req.Headers()
		hs["X-Trace"] = "tampered"
		v, _ = req.Header("X-Trace")
		t.Must.Equal("1", v)
	})
}

func TestDirector(t *testing.T) {
	var d builder.Director

	t.Run("SimpleGet", func(t *testing.T) {
		req, err := d.SimpleGet("https://api.example.com/users")
		require.NoError(t, err)
		require.Equal(t, "GET", req.Method())
		require.Equal(t, "https://api.example.com/users", req.URL())
	})

	t.Run("JSONPost", func(t *testing.T) {
		req, err := d.JSONPost("https://api.example.com/users", `{"id": 1}`)
		require.NoError(t, err)
		require.Equal(t, "POST", req.Method())
		ct, ok := req.Header("Content-Type")
		require.True(t, ok)
		require.Equal(t, "application/json", ct)
		require.Equal(t, `{"id": 1}`, req.Body())
	})

	t.Run("Authenticated", func(t *testing.T) {
		token := rnd.StringNC(16, random.CharsetAlpha())
		req, err := d.Authenticated("https://api.example.com/me", token)
		require.NoError(t, err)
		auth, ok := req.Header("Authorization")
		require.True(t, ok)
		require.Equal(t, "Bearer "+token, auth)
	})
}

func TestDemo(t *testing.T) {
	rr := &cli.ResponseRecorder{}
	cli.ServeCLI(builder.Demo{}, rr, &cli.Request{})

	require.Equal(t, 0, rr.Code)
	out := rr.Out.String()
	require.Contains(t, out, "===== WITHOUT BUILDER =====")
	require.Contains(t, out, "===== WITH BUILDER =====")
	require.Contains(t, out, "https://evil.com")
	require.Contains(t, out, "caught: "+builder.ErrURLMissing.Error())
}
