package suite

import (
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/mock-bank-api/internal/apiclient"
)

// ExpectJSON requires the given status and a JSON object body, and returns the object.
func ExpectJSON(t *Context, res *apiclient.Response, status int) map[string]any {
	require.Equal(t, status, res.Status, "unexpected status")
	obj, err := res.Object()
	require.NoError(t, err, "response should be JSON object")
	return obj
}

// ExpectStatus requires the given status.
func ExpectStatus(t *Context, res *apiclient.Response, status int) {
	require.Equal(t, status, res.Status, "unexpected status (body: %s)", res.Body)
}

func idOf(t *Context, obj map[string]any) string {
	id, ok := obj["id"].(string)
	require.True(t, ok, "response has no string id: %v", obj)
	return id
}
