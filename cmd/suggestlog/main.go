// Copyright 2025 The Suggestlog Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the suggestlog command.

suggestlog harvests what a spelling oracle would offer a user typing a
sentence: completions of the last word, spelling guesses for it, an
auto-correction and the completions of the corrected word. Every harvest is
flattened into one CSV row so the output can be loaded into a spreadsheet
or a dataframe and compared across dictionaries.

# Usage

Harvest one suggestion row per sentence of a CSV file:

	suggestlog -i sentences.csv -o out.csv -t csv -s text

Simulate typing every sentence of a text file, one row per character:

	suggestlog -i notes.txt -o out.csv

Probe the oracle interactively:

	suggestlog probe

Compile a word list into a msgpack snapshot for faster loading:

	suggestlog compile -i words.txt -o data/en/words.msgpack

# Input types

In csv mode every row is one sentence and gives exactly one output row. When
--sentence-column is set the input must have a header, every input column
is copied through and the named column is harvested. Without it the first
column is harvested and the input has no header.

In text mode every line is split on '.' into sentences and every prefix of
every sentence, from the empty one to the full sentence, gives a row. Rows
carry the sentence number, the prefix length in characters, and the word the
cursor sits in.

# Configuration

The TOML config defaults to ~/.config/suggestlog/config.toml and is created
with defaults if it doesn't exist:

	[oracle]
	language = ""
	dictionary_dir = "data"
	alphabet = "abcdefghijklmnopqrstuvwxyz'"
	max_errors = 2
	max_correction_distance = 2
	cache_size = 4096
	min_frequency = 0

	[progress]
	enabled = true
	every = 1

An empty language is resolved from SUGGESTLOG_LANGUAGE, LC_ALL, LC_MESSAGES
and LANG, in that order. The dictionary is read from <dictionary_dir>/<lang>,
which may be a single file or a directory of .txt, dict_NNNN.bin and
.msgpack files. A missing dictionary is not fatal: every harvest is then
empty.

SUGGESTLOG_DICTIONARY_DIR and SUGGESTLOG_CACHE_SIZE override the file.

# Exit codes

0 on success or --help, 1 on a usage error (printed with the usage) and 1
on any failure while harvesting.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	Version = "0.3.0"
	AppName = "suggestlog"
	gh      = "https://github.com/bastiangx/suggestlog"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(1)
	}()
}

// main only manages the flow; the commands live in root.go.
func main() {
	sigHandler()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCommand(stderr)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return exitCode(cmd.Execute(), stderr)
}
