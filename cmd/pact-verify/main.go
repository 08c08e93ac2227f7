// Command pact-verify reads one or more test-case JSON files and checks
// each against its declared verdict, printing a colorized unified diff for
// any that disagree.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v3/ffcli"
	sglog "github.com/sourcegraph/log"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/contract-kit/pactcore"
)

const version = "0.1.0"

// testCase is the {comment, match, actual, expected} shape a test-case file
// carries: match records the expected verdict as a JSON boolean so the CLI
// can flag a case whose actual diff result disagrees with what the file
// author believed it would be.
type testCase struct {
	Comment  string `json:"comment"`
	Match    bool   `json:"match"`
	Actual   any    `json:"actual"`
	Expected any    `json:"expected"`
}

func main() {
	liblog := sglog.Init(sglog.Resource{Name: "pact-verify", Version: version})
	defer liblog.Sync()
	_, _ = maxprocs.Set()

	logger := sglog.Scoped("pact-verify", "")

	root := &ffcli.Command{
		Name:       "pact-verify",
		ShortUsage: "pact-verify <file> [<file>...]",
		ShortHelp:  "compare recorded actual/expected documents against their declared verdict",
		FlagSet:    flag.NewFlagSet("pact-verify", flag.ExitOnError),
		Exec: func(ctx context.Context, args []string) error {
			return run(args, logger)
		},
	}

	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		logger.Error("run failed", sglog.Error(err))
		os.Exit(1)
	}
}

func run(files []string, logger sglog.Logger) error {
	if len(files) == 0 {
		return fmt.Errorf("usage: pact-verify <file> [<file>...]")
	}

	failed := false
	for _, path := range files {
		ok, err := runOne(path, logger)
		if err != nil {
			fmt.Printf("%s: ERROR %v\n", path, err)
			failed = true
			continue
		}
		if !ok {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

func runOne(path string, logger sglog.Logger) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	var tc testCase
	if err := json.Unmarshal(raw, &tc); err != nil {
		return false, err
	}

	actual := pactcore.FromAny(tc.Actual)
	expected := pactcore.FromAny(tc.Expected)

	diff, err := compareByKind(actual, expected, logger)
	if err != nil {
		return false, err
	}

	agrees := tc.Match == (len(diff) == 0)
	if agrees {
		fmt.Printf("%s: OK — %s\n", path, tc.Comment)
		return true, nil
	}

	fmt.Printf("%s: Failed — %s\n", path, tc.Comment)
	for _, line := range diff {
		fmt.Print(line)
	}
	return false, nil
}

// compareByKind dispatches to CompareRequests or CompareResponses based on
// whether the document shape looks like a request (method/path) or a
// response (status).
func compareByKind(actual, expected pactcore.Value, logger sglog.Logger) ([]string, error) {
	if _, ok := expected.Get("method"); ok {
		return pactcore.CompareRequests(actual, expected, logger)
	}
	if _, ok := expected.Get("path"); ok {
		return pactcore.CompareRequests(actual, expected, logger)
	}
	return pactcore.CompareResponses(actual, expected, logger)
}
