package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_SingletonIgnoresLaterOptions(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	first := Init(Options{Level: "debug", Output: &buf})
	second := Init(Options{Level: "error"})

	first.Debug().Msg("first message")
	second.Debug().Msg("second message")

	out := buf.String()
	if !strings.Contains(out, "first message") || !strings.Contains(out, "second message") {
		t.Fatalf("both writes must land on the first writer, got: %s", out)
	}
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "verbose", Output: &buf})

	log.Debug().Msg("hidden")
	log.Info().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug must be filtered at info level, got: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("info must pass at info level, got: %s", out)
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Get()
}
