package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "prog.bf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"no file", []string{"brainfetch"}, 1},
		{"missing file", []string{"brainfetch", filepath.Join(t.TempDir(), "none.bf")}, 1},
		{"ok", []string{"brainfetch", writeSource(t, "+>+<[-]")}, 0},
		{"unmatched close", []string{"brainfetch", writeSource(t, "]")}, 1},
		{"unmatched open", []string{"brainfetch", writeSource(t, "[")}, 1},
		{"underflow", []string{"brainfetch", writeSource(t, "<")}, 1},
		{"breakpoint", []string{"brainfetch", writeSource(t, "+*<"), "-d"}, 0},
		{"breakpoint ignored", []string{"brainfetch", writeSource(t, "+*<"), "x"}, 1},
		{"second argument skipped", []string{"brainfetch", writeSource(t, "+*"), "x"}, 0},
		{"unknown option", []string{"brainfetch", writeSource(t, "+"), "-d", "-nope"}, 1},
		{"bad option after file", []string{"brainfetch", writeSource(t, "+"), "-eof", "never"}, 1},
		{"bad option after word", []string{"brainfetch", writeSource(t, "+"), "x", "-eof", "never"}, 1},
		{"option after file", []string{"brainfetch", writeSource(t, ">"), "-tape-size", "1"}, 1},
		{"option", []string{"brainfetch", writeSource(t, ">"), "-d", "-tape-size", "1"}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if code := run(c.args, io.Discard, io.Discard); code != c.code {
				t.Fatalf("got %d, want %d", code, c.code)
			}
		})
	}
}

func TestSplitArgs(t *testing.T) {
	cases := []struct {
		args    []string
		debug   bool
		options string
	}{
		{nil, false, "[]"},
		{[]string{"-d"}, true, "[]"},
		{[]string{"-d", "-trace"}, true, "[-trace]"},
		{[]string{"-unsigned"}, false, "[-unsigned]"},
		{[]string{"x", "-trace"}, false, "[-trace]"},
		{[]string{"x"}, false, "[]"},
	}
	for _, c := range cases {
		debug, options := splitArgs(c.args)
		if debug != c.debug {
			t.Fatalf("%v: got %v", c.args, debug)
		}
		if str := strings.Join(options, " "); "["+str+"]" != c.options {
			t.Fatalf("%v: got %v", c.args, options)
		}
	}
}

func TestOpenErrorMessages(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	stderr := new(bytes.Buffer)
	missing := filepath.Join(t.TempDir(), "none.bf")
	if code := run([]string{"brainfetch", missing}, io.Discard, stderr); code != 1 {
		t.Fatalf("got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), missing+": no such file\n") {
		t.Fatalf("got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Fatalf("got %q", stderr.String())
	}

	stderr.Reset()
	url := server.URL + "/none.bf"
	if code := run([]string{"brainfetch", url}, io.Discard, stderr); code != 1 {
		t.Fatalf("got %d", code)
	}
	if strings.Contains(stderr.String(), "no such file") {
		t.Fatalf("got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "404 Not Found") {
		t.Fatalf("got %q", stderr.String())
	}
}
