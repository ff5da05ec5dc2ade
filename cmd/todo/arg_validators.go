package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ParseError reports user input that should have been a number.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("not a valid number: %q", e.Input)
}

func parseIndex(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	index, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Input: value}
	}
	return index, nil
}

func requireAtLeastArgs(min int, message string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < min {
			return errors.New(message)
		}
		return nil
	}
}

func requireExactlyArgs(count int, message string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != count {
			return errors.New(message)
		}
		return nil
	}
}

func requireIndex(cmd *cobra.Command, args []string) error {
	return requireExactlyArgs(1, "task number is required")(cmd, args)
}
