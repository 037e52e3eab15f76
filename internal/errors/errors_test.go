package errors

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "precondition error",
			code:    "E104",
			wantMsg: "Child already attached",
			wantCat: CategoryPrecondition,
		},
		{
			name:    "structure error",
			code:    "E110",
			wantMsg: "Child kind not allowed",
			wantCat: CategoryStructure,
		},
		{
			name:    "layout error",
			code:    "E131",
			wantMsg: "Unknown element type",
			wantCat: CategoryLayout,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "index.yaml")
	if err.Message != `file "index.yaml" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
	if err.Error() != err.Message {
		t.Errorf("Error() = %q, want %q", err.Error(), err.Message)
	}
}

func TestErrorString(t *testing.T) {
	err := New("E132").WithPath("body[1]").WithDetail("ul accepts li, got tr")
	want := "E132: body[1]: Child kind not allowed (ul accepts li, got tr)"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := New("E130").Wrap(cause)

	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is should find the wrapped error")
	}
	if !strings.HasSuffix(err.Error(), cause.Error()) {
		t.Errorf("Error() = %q, should end with the cause", err.Error())
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New("E104").WithDetail("p")
	if !stderrors.Is(err, New("E104")) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(err, New("E105")) {
		t.Error("errors with different codes should not match")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E120") != nil {
		t.Error("FromError(nil) should be nil")
	}

	original := New("E121")
	if got := FromError(original, "E120"); got != original {
		t.Error("FromError should return an *Error unchanged")
	}

	wrapped := FromError(io.EOF, "E120")
	if wrapped.Code != "E120" || wrapped.Wrapped != io.EOF {
		t.Errorf("FromError = %+v", wrapped)
	}
}

func TestHasCode(t *testing.T) {
	inner := New("E131").WithPath("body[0]")
	outer := New("E130").Wrap(inner)

	if !HasCode(outer, "E130") {
		t.Error("HasCode should match the outer code")
	}
	if !HasCode(outer, "E131") {
		t.Error("HasCode should match a wrapped code")
	}
	if HasCode(outer, "E150") {
		t.Error("HasCode should not match an absent code")
	}
	if HasCode(io.EOF, "E130") {
		t.Error("HasCode should be false for plain errors")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E132").
		WithPath("body[2].children[0]").
		WithDetail("table accepts tr, got td").
		WithSuggestion("Wrap the cell in a row")

	out := err.Format()
	for _, want := range []string{
		"ERROR E132: Child kind not allowed",
		"body[2].children[0]",
		"table accepts tr, got td",
		"Hint: Wrap the cell in a row",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E131").WithPath("head[0]")
	if got, want := err.FormatCompact(), "head[0]: E131: Unknown element type"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFprintPlainError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, io.EOF)
	if !strings.Contains(buf.String(), "ERROR: EOF") {
		t.Errorf("got %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 30), 20)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d lines", len(lines))
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should produce no lines")
	}
}
