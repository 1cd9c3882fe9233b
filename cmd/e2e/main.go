package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spec-kit/mock-bank-api/internal/apiclient"
	"github.com/spec-kit/mock-bank-api/internal/config"
	"github.com/spec-kit/mock-bank-api/internal/factory"
	"github.com/spec-kit/mock-bank-api/internal/suite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}

	var params commandParams
	if !params.Read(os.Args, cfg.Client.BaseURL) {
		os.Exit(1)
	}
	cfg.Client.BaseURL = params.baseURL

	client, closeLog, err := apiclient.NewFromConfig(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %s\n", err)
		os.Exit(1)
	}
	defer closeLog()

	fmt.Println()
	suite.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Printf("Running test suite against %s\n", client.BaseURL())

	testLogger := suite.ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug,
	}
	deps := suite.Dependencies{
		Client:  client,
		Factory: factory.New(params.seed),
	}

	results := suite.RunSuite(context.Background(), deps, params.filters.AsFilter, testLogger)

	fmt.Println()
	suite.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("Rerun the failed tests with:")
		fmt.Printf("  %s\n", params.rerunCommand(results.Failures))
		closeLog()
		os.Exit(1)
	}
}
