package main

import (
	"github.com/bastiangx/suggestlog/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// inputTypeFlag validates --input-type while flags are parsed, so a bad value
// is reported like any other flag error.
type inputTypeFlag struct {
	value pipeline.InputType
}

var _ pflag.Value = (*inputTypeFlag)(nil)

func (f *inputTypeFlag) String() string {
	return string(f.value)
}

func (f *inputTypeFlag) Set(s string) error {
	t, err := pipeline.ParseInputType(s)
	if err != nil {
		return err
	}
	f.value = t
	return nil
}

func (f *inputTypeFlag) Type() string {
	return "csv|text"
}

// usageError marks errors caused by how the command was invoked. They are
// reported together with the usage of cmd.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}
