package main

import (
	"errors"
	"flag"
	"testing"
)

func TestParseArgs(t *testing.T) {
	type testRow struct {
		name  string
		args  []string
		path  string
		debug bool
	}
	testData := [...]testRow{
		{"compress", []string{"compress", "a.txt"}, "a.txt", false},
		{"decompress", []string{"decompress", "a.txt.pkz"}, "a.txt.pkz", false},
		{"debug-short", []string{"-d", "compress", "b"}, "b", true},
		{"debug-long", []string{"-debug", "decompress", "b.pkz"}, "b.pkz", true},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			inv, err := parseArgs(row.args)
			if err != nil {
				t.Fatalf("parseArgs failed: %v", err)
			}
			if inv.path != row.path {
				t.Errorf("expected path %q, got %q", row.path, inv.path)
			}
			if inv.debug != row.debug {
				t.Errorf("expected debug %v, got %v", row.debug, inv.debug)
			}
			if inv.command == nil {
				t.Fatalf("expected a command")
			}
		})
	}
}

func TestParseArgs_Usage(t *testing.T) {
	type testRow struct {
		name string
		args []string
	}
	testData := [...]testRow{
		{"no-args", nil},
		{"bad-subcommand", []string{"shrink", "a"}},
		{"missing-file", []string{"compress"}},
		{"too-many", []string{"compress", "a", "b"}},
		{"bad-flag", []string{"-x", "compress", "a"}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := parseArgs(row.args)
			var uerr usageError
			if !errors.As(err, &uerr) {
				t.Errorf("expected a usage error, got %v", err)
			}
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	if _, err := parseArgs([]string{"-h"}); err != flag.ErrHelp {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}
