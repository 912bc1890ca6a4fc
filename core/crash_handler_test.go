package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeScreen struct {
	finis int
}

func (f *fakeScreen) Fini() { f.finis++ }

// syncBuffer guards the crash output written from another goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureCrash(t *testing.T) (*syncBuffer, chan int) {
	t.Helper()
	out := &syncBuffer{}
	codes := make(chan int, 1)
	prevOut, prevExit := crashOut, crashExit
	crashOut = out
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		RegisterScreen(nil)
	})
	return out, codes
}

func TestHandleCrash_FinalizesScreen(t *testing.T) {
	out, codes := captureCrash(t)
	scr := &fakeScreen{}
	RegisterScreen(scr)

	HandleCrash("boom")

	if scr.finis != 1 {
		t.Errorf("Fini calls = %d, want 1", scr.finis)
	}
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Errorf("output missing crash line: %q", out.String())
	}

	// Screen is released after the first crash
	HandleCrash("again")
	<-codes
	if scr.finis != 1 {
		t.Errorf("Fini calls after second crash = %d, want 1", scr.finis)
	}
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	_, codes := captureCrash(t)
	HandleCrash(nil)
	select {
	case <-codes:
		t.Error("nil panic value must not exit")
	default:
	}
}

func TestGo_RecoversPanic(t *testing.T) {
	out, codes := captureCrash(t)

	Go(func() { panic("worker failed") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("panic in Go was not handled")
	}
	if !strings.Contains(out.String(), "worker failed") {
		t.Errorf("output missing panic value: %q", out.String())
	}
}
