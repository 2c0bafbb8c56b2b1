package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Keep-alive transport goroutines outlive individual tests.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

type recordingNotifier struct {
	calls []string
}

func (n *recordingNotifier) Notify(severity Severity, message string) {
	n.calls = append(n.calls, string(severity)+": "+message)
}

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens("t1"), nil)
	_, err := c.Restaurants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer t1", gotAuth)
}

func TestRequestOmitsAuthorizationWithoutToken(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens(""), nil)
	_, err := c.Restaurants(context.Background())
	require.NoError(t, err)
	assert.False(t, sawAuth, "Authorization header must be absent without a token")
}

func TestRequestErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not found"}`))
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	c := NewClient(srv.URL, nil, notifier)
	_, err := c.Restaurants(context.Background())

	var rerr *RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, http.StatusNotFound, rerr.Status)
	assert.Equal(t, "Not found", rerr.Message)
	require.Len(t, notifier.calls, 1, "exactly one user-facing notification per failure")
	assert.Equal(t, "error: Not found", notifier.calls[0])
}

func TestRequestErrorGenericMessageWhenBodyHasNone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	_, err := c.Restaurants(context.Background())

	var rerr *RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "HTTP 500", rerr.Message)
}

func TestNetworkErrorOnUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	notifier := &recordingNotifier{}
	c := NewClient(srv.URL, nil, notifier)
	_, err := c.Restaurants(context.Background())

	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "Cannot reach the server, try again later", nerr.UserMessage())
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "error: Cannot reach the server, try again later", notifier.calls[0])
}

func TestLoginPostsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"token":"t1","data":{"username":"u"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	resp, err := c.Login(context.Background(), "u", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, "u", resp.Data.Username)
}

func TestUploadAvatarUsesMultipartContentType(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "me.png", header.Filename)
		_, _ = w.Write([]byte(`{"message":"ok","data":{"username":"u","avatar":"me.png"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens("t1"), nil)
	resp, err := c.UploadAvatar(context.Background(), "me.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "me.png", resp.Data.Avatar)
	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data; boundary="),
		"multipart boundary header must come from the writer, got %q", gotContentType)
}

func TestUpdateProfileSendsOnlySetFields(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		body = string(buf)
		_, _ = w.Write([]byte(`{"data":{"username":"u","favouriteRestaurant":"r1"}}`))
	}))
	defer srv.Close()

	fav := "r1"
	c := NewClient(srv.URL, staticTokens("t1"), nil)
	resp, err := c.UpdateProfile(context.Background(), ProfileUpdate{FavouriteRestaurant: &fav})
	require.NoError(t, err)
	assert.Equal(t, "r1", resp.Data.FavouriteRestaurant)
	assert.JSONEq(t, `{"favouriteRestaurant":"r1"}`, body)
}

func TestInvalidJSONOnSuccessIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	c := NewClient(srv.URL, nil, notifier)
	_, err := c.Restaurants(context.Background())
	require.Error(t, err)
	var rerr *RequestError
	assert.False(t, errors.As(err, &rerr), "malformed body on 2xx is not a RequestError")
	require.Len(t, notifier.calls, 1)
}
