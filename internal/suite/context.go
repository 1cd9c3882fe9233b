package suite

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/spec-kit/mock-bank-api/internal/apiclient"
	"github.com/spec-kit/mock-bank-api/internal/factory"
)

// Dependencies are shared by every scenario in a run.
type Dependencies struct {
	Client        *apiclient.Client
	Factory       *factory.Factory
	ResetAttempts int
	ResetPause    time.Duration
}

type environment struct {
	ctx        context.Context
	deps       Dependencies
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the per-scenario handle. It satisfies the testify TestingT interfaces, so
// assert and require can be used against it directly.
type Context struct {
	env      *environment
	id       TestID
	failed   bool
	skipped  bool
	children int
	errors   []error
	debug    []string
}

// Run executes action as the root of a scenario tree and returns the collected results.
func Run(ctx context.Context, deps Dependencies, filter Filter, testLogger TestLogger, action func(*Context)) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	if deps.ResetAttempts <= 0 {
		deps.ResetAttempts = 10
	}
	if deps.ResetPause <= 0 {
		deps.ResetPause = 500 * time.Millisecond
	}
	if deps.Factory == nil {
		deps.Factory = factory.New(0)
	}
	env := &environment{ctx: ctx, deps: deps, filter: filter, testLogger: testLogger}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		if c.children > 0 && !c.failed {
			return
		}
		result := TestResult{TestID: c.id, Errors: c.errors}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run starts a child scenario. Children run sequentially because they share one server.
func (c *Context) Run(name string, action func(*Context)) {
	c.children++
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && len(id.Path) > 1 && !c.env.filter(id) {
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Skipped: true})
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{id: id, env: c.env}
	c1.run(action)
	c.env.testLogger.TestFinished(id, c1.failed, c1.debug)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Helper() {}

// Debug records a line that is printed if the scenario fails and debug output is enabled.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debug = append(c.debug, fmt.Sprintf(message, args...))
}

func (c *Context) Factory() *factory.Factory {
	return c.env.deps.Factory
}

// Reset clears server state, retrying while the server comes up.
func (c *Context) Reset() {
	err := c.env.deps.Client.WaitForReset(c.env.ctx, c.env.deps.ResetAttempts, c.env.deps.ResetPause)
	if err != nil {
		c.Errorf("%s", err)
		c.FailNow()
	}
}

// Call sends an authorized request. A transport failure fails the scenario.
func (c *Context) Call(method, path string, body any) *apiclient.Response {
	return c.call(c.env.deps.Client, method, path, body)
}

// CallAnonymous sends a request without credentials.
func (c *Context) CallAnonymous(method, path string, body any) *apiclient.Response {
	return c.call(c.env.deps.Client.Anonymous(), method, path, body)
}

func (c *Context) call(client *apiclient.Client, method, path string, body any) *apiclient.Response {
	res, err := client.Do(c.env.ctx, method, path, body)
	if err != nil {
		c.Errorf("%s %s: %s", method, path, err)
		c.FailNow()
	}
	c.Debug("%s %s -> %d %s", method, path, res.Status, res.Body)
	return res
}
