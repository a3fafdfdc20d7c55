package ui

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_OnlyLatestTriggerFires(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var fired atomic.Int32
	var got atomic.Value

	for _, q := range []string{"A", "AA", "AAP", "AAPL"} {
		q := q
		d.Trigger(func() {
			fired.Add(1)
			got.Store(q)
		})
	}

	time.Sleep(100 * time.Millisecond)

	if fired.Load() != 1 {
		t.Fatalf("fired %d times, want 1", fired.Load())
	}
	if got.Load() != "AAPL" {
		t.Errorf("fired with %v, want AAPL", got.Load())
	}
}

func TestDebouncer_CancelDropsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() != 0 {
		t.Errorf("cancelled trigger fired %d times", fired.Load())
	}
}

func TestDebouncer_FlushFiresImmediately(t *testing.T) {
	d := NewDebouncer(time.Hour)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Flush()

	if fired.Load() != 1 {
		t.Fatalf("flush fired %d times, want 1", fired.Load())
	}

	// a second flush has nothing left to run
	d.Flush()
	if fired.Load() != 1 {
		t.Errorf("second flush re-fired, count %d", fired.Load())
	}
}

func TestModalController_OpenClose(t *testing.T) {
	m := NewModalController(ModalAddAsset, ModalAddTransaction, ModalCSVUpload)

	m.Open(ModalAddTransaction, "AAPL")
	if !m.IsOpen(ModalAddTransaction) {
		t.Fatal("modal should be open")
	}
	if ctx, _ := m.Context(ModalAddTransaction); ctx != "AAPL" {
		t.Errorf("bound context = %q, want AAPL", ctx)
	}

	m.Close(ModalAddTransaction)
	if m.IsOpen(ModalAddTransaction) {
		t.Error("modal should be closed")
	}
}

func TestModalController_UnknownIDNoOp(t *testing.T) {
	m := NewModalController(ModalAddAsset)

	m.Open("mystery-modal", "")
	if m.IsOpen("mystery-modal") {
		t.Error("unknown modal must not open")
	}
	m.Close("mystery-modal") // must not panic
}

func TestModalController_CloseAll(t *testing.T) {
	m := NewModalController(ModalAddAsset, ModalCSVUpload)
	m.Open(ModalAddAsset, "")
	m.Open(ModalCSVUpload, "GLD")

	m.CloseAll()
	if m.IsOpen(ModalAddAsset) || m.IsOpen(ModalCSVUpload) {
		t.Error("CloseAll left a modal open")
	}
}

func TestModalController_WithOpen(t *testing.T) {
	m := NewModalController(ModalAddTransaction)

	var bound string
	err := m.WithOpen(ModalAddTransaction, "AAPL", func(symbol string) error {
		bound = symbol
		if !m.IsOpen(ModalAddTransaction) {
			t.Error("modal should be open during the submission")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithOpen: %v", err)
	}
	if bound != "AAPL" {
		t.Errorf("bound context = %q, want AAPL", bound)
	}
	if m.IsOpen(ModalAddTransaction) {
		t.Error("modal should be closed after the submission")
	}
}

func TestModalController_WithOpenUnknownIDStillInvokes(t *testing.T) {
	m := NewModalController(ModalAddAsset)

	var bound string
	err := m.WithOpen("mystery-modal", "GLD", func(symbol string) error {
		bound = symbol
		return nil
	})
	if err != nil {
		t.Fatalf("WithOpen: %v", err)
	}
	if bound != "GLD" {
		t.Errorf("bound context = %q, want GLD", bound)
	}
}

func TestConfirm(t *testing.T) {
	var out strings.Builder
	if !Confirm(strings.NewReader("y\n"), &out, "Delete AAPL?") {
		t.Error("y should confirm")
	}
	if !strings.Contains(out.String(), "Delete AAPL?") {
		t.Error("prompt not written")
	}
	if Confirm(strings.NewReader("\n"), &out, "Delete?") {
		t.Error("empty answer should decline")
	}
	if Confirm(strings.NewReader("nope\n"), &out, "Delete?") {
		t.Error("nope should decline")
	}
	if !Confirm(strings.NewReader("YES\n"), &out, "Delete?") {
		t.Error("YES should confirm")
	}
}
