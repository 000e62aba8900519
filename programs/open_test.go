package programs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/brainfetch/configs"
	"github.com/reusee/brainfetch/modes"
	"github.com/reusee/dscope"
)

func TestOpenSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hello.bf" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "++.")
	}))
	defer server.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.bf")
	if err := os.WriteFile(path, []byte("+-"), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		open OpenSource,
	) {
		ctx := context.Background()

		read := func(path string) string {
			r, err := open(ctx, path)
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()
			content, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			return string(content)
		}

		if str := read(path); str != "+-" {
			t.Fatalf("got %q", str)
		}
		if str := read(server.URL + "/hello.bf"); str != "++." {
			t.Fatalf("got %q", str)
		}

		_, err := open(ctx, filepath.Join(dir, "missing.bf"))
		if !errors.Is(err, ErrOpenSource) {
			t.Fatalf("got %v", err)
		}
		_, err = open(ctx, server.URL+"/missing.bf")
		if !errors.Is(err, ErrOpenSource) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestOpenSourceSearchPaths(t *testing.T) {
	libA := t.TempDir()
	libB := t.TempDir()
	if err := os.WriteFile(filepath.Join(libB, "lib.bf"), []byte("+++"), 0644); err != nil {
		t.Fatal(err)
	}

	configDir := t.TempDir()
	first := filepath.Join(configDir, "first.cue")
	if err := os.WriteFile(first, []byte(fmt.Sprintf("search_paths: [%q]\n", libA)), 0644); err != nil {
		t.Fatal(err)
	}
	second := filepath.Join(configDir, "second.cue")
	if err := os.WriteFile(second, []byte(fmt.Sprintf("search_paths: [%q, %q]\n", libA, libB)), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{first, second}, "")),
	).Call(func(
		searchPaths SearchPaths,
		open OpenSource,
	) {
		if str := fmt.Sprintf("%v", searchPaths); str != fmt.Sprintf("[%s %s]", libA, libB) {
			t.Fatalf("got %s", str)
		}

		ctx := context.Background()
		r, err := open(ctx, "lib.bf")
		if err != nil {
			t.Fatal(err)
		}
		defer r.Close()
		content, err := io.ReadAll(r)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "+++" {
			t.Fatalf("got %q", content)
		}

		_, err = open(ctx, "none.bf")
		if !errors.Is(err, ErrOpenSource) {
			t.Fatalf("got %v", err)
		}
		_, err = open(ctx, filepath.Join(t.TempDir(), "lib.bf"))
		if !errors.Is(err, ErrOpenSource) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestIsURL(t *testing.T) {
	for path, want := range map[string]bool{
		"http://example.com/a.bf":  true,
		"https://example.com/a.bf": true,
		"a.bf":                     false,
		"/tmp/http.bf":             false,
	} {
		if got := IsURL(path); got != want {
			t.Fatalf("%s: got %v", path, got)
		}
	}
}
