package main

import (
	"os"
	"testing"
)

func TestPromptSecretReadsPipedInput(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })

	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = old })

	go func() {
		w.WriteString("hunter22secret\n")
		w.Close()
	}()

	got, err := promptSecret("Password: ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hunter22secret" {
		t.Fatalf("piped secret: %q", got)
	}
}
