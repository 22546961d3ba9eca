package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("abys\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Breed id?", &out)
	if err != nil || got != "abys" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Breed id?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetAPIKey(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("live_secret"), nil
	}
	var out bytes.Buffer
	key, err := GetAPIKey(&out)
	if err != nil || string(key) != "live_secret" {
		t.Fatalf("got %q, err=%v", key, err)
	}
	if !strings.Contains(out.String(), "Enter API key") {
		t.Fatalf("prompt missing: %q", out.String())
	}
}

func TestGetAPIKey_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	if _, err := GetAPIKey(&out); err == nil {
		t.Fatal("expected error")
	}
}
