package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/tasks/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"done 1", TypeDone},
		{"undo #2", TypeUndo},
		{"DELETE 3", TypeDelete},
		{"/clear", TypeClear},
		{"toggle", TypeToggle},
		{"show completed", TypeShow},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddKeepsTitleAndAllowsEmpty(t *testing.T) {
	cmd, err := Parse("/add   pay  the bills ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Title != "  pay  the bills " {
		t.Fatalf("unexpected title: %q", cmd.Add.Title)
	}

	cmd, err = Parse("add")
	if err != nil {
		t.Fatalf("empty add must parse: %v", err)
	}
	if cmd.Add.Title != "" {
		t.Fatalf("expected empty title, got %q", cmd.Add.Title)
	}
}

func TestParseAddStripsOnlyVerbSeparator(t *testing.T) {
	cases := map[string]string{
		"add   padded  ": "  padded  ",
		"  ADD x":         "x",
		"add	indented ": "indented ",
		"/add ":           "",
	}
	for in, want := range cases {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		if cmd.Add.Title != want {
			t.Fatalf("parse %q title = %q, want %q", in, cmd.Add.Title, want)
		}
	}
}

func TestParseTargetIDs(t *testing.T) {
	cmd, err := Parse("undo #7")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Target.ID != 7 {
		t.Fatalf("unexpected id: %d", cmd.Target.ID)
	}

	for _, in := range []string{"done", "done x", "delete 1 2"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseShow(t *testing.T) {
	cmd, err := Parse("show Todo")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Show.Status != model.StatusTodo {
		t.Fatalf("unexpected status: %q", cmd.Show.Status)
	}

	_, err = Parse("show all")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	for _, in := range []string{"", "   ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input error, got %v", in, err)
		}
	}

	_, err := Parse("/unknown do x")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}

	_, err = Parse("clear now")
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument for clear with args, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/done 4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Done: func(a TargetArgs) (Result, error) {
			called = true
			if a.ID != 4 {
				t.Fatalf("unexpected id: %d", a.ID)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("toggle")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
