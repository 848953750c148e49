package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewStateRemovesLoaders(t *testing.T) {
	var out bytes.Buffer
	s := NewState(WithOutput(&out))
	defer s.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "io", "os"} {
		out.Reset()
		if err := s.DoString(fmt.Sprintf("print(type(%s))", name)); err != nil {
			t.Fatal(err)
		}
		if got := out.String(); got != "nil\n" {
			t.Errorf("type(%s) = %q, want nil", name, got)
		}
	}

	out.Reset()
	if err := s.DoString(`print(type(string))`); err != nil {
		t.Fatal(err)
	}
	if out.String() != "table\n" {
		t.Error("string library should be available")
	}
}

func TestPrintRedirect(t *testing.T) {
	var out bytes.Buffer
	s := NewState(WithOutput(&out))
	defer s.Close()

	if err := s.DoString(`print("a", 1, true)`); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "a\t1\ttrue\n" {
		t.Errorf("print output = %q", got)
	}
}

func TestDoStringError(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.DoString(`error("boom")`); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v, want boom", err)
	}
	if err := s.DoString(`this is not lua`); err == nil {
		t.Error("expected syntax error")
	}
}

func TestDoFile(t *testing.T) {
	var out bytes.Buffer
	s := NewState(WithOutput(&out))
	defer s.Close()

	path := filepath.Join(t.TempDir(), "hello.lua")
	if err := os.WriteFile(path, []byte(`print("hello from file")`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.DoFile(path); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "hello from file") {
		t.Errorf("output = %q", out.String())
	}

	if err := s.DoFile(filepath.Join(t.TempDir(), "missing.lua")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestExecutionTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	err := s.DoString(`while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Fatalf("error = %v, want ErrExecutionTimeout", err)
	}
	if err := s.DoString(`x = 1`); err != nil {
		t.Errorf("state should be usable after a timeout: %v", err)
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.DoString(`x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString after Close = %v", err)
	}
	if err := s.Register(NewVectorModule(&Context{})); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Register after Close = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}
