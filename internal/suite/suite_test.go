package suite

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/mock-bank-api/internal/apiclient"
	"github.com/spec-kit/mock-bank-api/internal/config"
	"github.com/spec-kit/mock-bank-api/internal/factory"
	"github.com/spec-kit/mock-bank-api/internal/server"
)

type recordingLogger struct {
	started  []string
	skipped  []string
	finished map[string]bool
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{finished: map[string]bool{}}
}

func (r *recordingLogger) TestStarted(id TestID) {
	r.started = append(r.started, id.String())
}

func (r *recordingLogger) TestError(TestID, error) {}

func (r *recordingLogger) TestFinished(id TestID, failed bool, _ []string) {
	r.finished[id.String()] = failed
}

func (r *recordingLogger) TestSkipped(id TestID, _ string) {
	r.skipped = append(r.skipped, id.String())
}

func withMockAPI(t *testing.T, strategy string, action func(deps Dependencies)) {
	t.Helper()
	srv := server.New(config.AppConfig{IDStrategy: strategy}, zap.NewNop())
	httphelpers.WithServer(adaptor.FiberApp(srv.App), func(ts *httptest.Server) {
		action(Dependencies{
			Client:        apiclient.New(apiclient.Options{BaseURL: ts.URL, Token: "dummy-token"}),
			Factory:       factory.New(11),
			ResetAttempts: 2,
			ResetPause:    10 * time.Millisecond,
		})
	})
}

func TestSuitePassesAgainstMockAPI(t *testing.T) {
	for _, strategy := range []string{config.IDStrategyUUID, config.IDStrategySequence} {
		t.Run(strategy, func(t *testing.T) {
			withMockAPI(t, strategy, func(deps Dependencies) {
				results := RunSuite(context.Background(), deps, nil, nil)
				for _, f := range results.Failures {
					t.Errorf("%s: %v", f.TestID, f.Errors)
				}
				assert.True(t, results.OK())
				assert.Equal(t, 16, results.Passed())
			})
		})
	}
}

func TestSuiteFilters(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("validation"))
	require.NoError(t, filters.MustNotMatch.Set("unknown user"))

	withMockAPI(t, config.IDStrategySequence, func(deps Dependencies) {
		logger := newRecordingLogger()
		results := RunSuite(context.Background(), deps, filters.AsFilter, logger)

		assert.True(t, results.OK())
		assert.Equal(t, 5, results.Passed())
		assert.Contains(t, logger.skipped, "Users API/create and fetch user")
		assert.Contains(t, logger.skipped, "Users API validation/unknown user")
		assert.Contains(t, logger.finished, "Transactions API validation/invalid type")
	})
}

func TestSuiteReportsUnreachableServer(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(http.StatusServiceUnavailable), func(ts *httptest.Server) {
		deps := Dependencies{
			Client:        apiclient.New(apiclient.Options{BaseURL: ts.URL, Token: "dummy-token"}),
			ResetAttempts: 1,
			ResetPause:    time.Millisecond,
		}
		var filters RegexFilters
		require.NoError(t, filters.MustMatch.Set("^Lifecycle/"))

		results := RunSuite(context.Background(), deps, filters.AsFilter, nil)

		require.Len(t, results.Failures, 2)
		assert.Equal(t, "Lifecycle/reset clears users", results.Failures[0].TestID.String())
		require.NotEmpty(t, results.Failures[0].Errors)
		assert.Contains(t, results.Failures[0].Errors[0].Error(), "reset returned status 503")
	})
}

func TestContextRecoversUnexpectedPanic(t *testing.T) {
	results := Run(context.Background(), Dependencies{}, nil, nil, func(t *Context) {
		t.Run("group", func(t *Context) {
			t.Run("boom", func(*Context) { panic("boom") })
			t.Run("fine", func(*Context) {})
		})
	})

	require.Len(t, results.Failures, 1)
	assert.Equal(t, "group/boom", results.Failures[0].TestID.String())
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: boom")
	assert.Equal(t, 1, results.Passed())
}

func TestConsoleLoggerAndSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
	id := TestID{Path: []string{"Users API", "bad email"}}

	logger.TestStarted(id)
	logger.TestFinished(id, true, []string{"POST /api/users -> 201 {}"})
	PrintResults(&buf, Results{
		Tests:    []TestResult{{TestID: id}},
		Failures: []TestResult{{TestID: id}},
	})

	out := buf.String()
	assert.Contains(t, out, "[Users API/bad email]")
	assert.Contains(t, out, "FAILED: Users API/bad email")
	assert.Contains(t, out, "DEBUG POST /api/users -> 201 {}")
	assert.Contains(t, out, "FAILED TESTS (1 of 1)")
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("Lifecycle"))
	PrintFilterDescription(&buf, filters)
	assert.Contains(t, buf.String(), `skip any matching "Lifecycle"`)

	assert.Error(t, filters.MustMatch.Set("("))
}
