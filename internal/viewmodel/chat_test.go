package viewmodel

import (
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, time.January, 21, 10, 0, 0, 0, time.UTC)
}

func TestSendBlankIsNoOp(t *testing.T) {
	t.Parallel()
	vm := NewChatViewModel(fixedClock)
	vm.Send("")
	vm.Send("   \t\n")
	if n := len(vm.Messages()); n != 0 {
		t.Fatalf("history length = %d, want 0", n)
	}
}

func TestSendAppendsUserThenAssistant(t *testing.T) {
	t.Parallel()
	vm := NewChatViewModel(fixedClock)
	vm.Send("hello")

	msgs := vm.Messages()
	if len(msgs) != 2 {
		t.Fatalf("history length = %d, want 2", len(msgs))
	}
	if msgs[0].ID != 1 || msgs[0].Author != AuthorUser || msgs[0].Text != "hello" {
		t.Fatalf("first message = %+v", msgs[0])
	}
	if msgs[1].ID != 2 || msgs[1].Author != AuthorAssistant {
		t.Fatalf("second message = %+v", msgs[1])
	}
}

func TestSendIDsAreMonotonic(t *testing.T) {
	t.Parallel()
	vm := NewSeededChatViewModel(fixedClock)
	if n := len(vm.Messages()); n != 4 {
		t.Fatalf("seed length = %d, want 4", n)
	}

	vm.Send("one more question")
	msgs := vm.Messages()
	if len(msgs) != 6 {
		t.Fatalf("history length = %d, want 6", len(msgs))
	}
	for i, m := range msgs {
		if m.ID != i+1 {
			t.Fatalf("message %d has id %d, want %d", i, m.ID, i+1)
		}
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	t.Parallel()
	vm := NewChatViewModel(fixedClock)
	vm.Send("hello")
	msgs := vm.Messages()
	msgs[0].Text = "mutated"
	if vm.Messages()[0].Text != "hello" {
		t.Fatal("mutation of returned slice leaked into the view-model")
	}
}
