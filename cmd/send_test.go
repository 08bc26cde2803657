package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-site/pkg/models"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSendDelivers(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	out, err := runRoot(t, "send",
		"--endpoint", server.URL,
		"--log-level", "error",
		"--name", "Jane",
		"--email", "jane@x.com",
		"--project-type", "fullstack",
		"--message", "hello",
	)
	require.NoError(t, err)
	assert.Contains(t, out, models.SuccessMessage)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSendReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	out, err := runRoot(t, "send",
		"--endpoint", server.URL,
		"--log-level", "error",
		"--name", "Jane",
		"--email", "jane@x.com",
		"--project-type", "",
		"--message", "hello",
	)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Contains(t, out, models.ErrorMessage)
}

func TestSendRejectsInvalidEmail(t *testing.T) {
	_, err := runRoot(t, "send",
		"--endpoint", "http://127.0.0.1:1",
		"--log-level", "error",
		"--name", "Jane",
		"--email", "jane",
		"--project-type", "",
		"--message", "hello",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid fields: email")
}
