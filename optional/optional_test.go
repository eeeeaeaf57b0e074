package optional_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-lazy-collections/optional"
)

func TestSomeIsPresent(t *testing.T) {
	o := optional.Some(42)
	if !o.IsPresent() || o.IsAbsent() {
		t.Fatal("Some should be present")
	}
	if v, ok := o.Get(); !ok || v != 42 {
		t.Fatalf("Get = %v, %v; want 42, true", v, ok)
	}
}

func TestNoneIsAbsent(t *testing.T) {
	o := optional.None[int]()
	if o.IsPresent() || !o.IsAbsent() {
		t.Fatal("None should be absent")
	}
	if _, ok := o.Get(); ok {
		t.Fatal("Get on None should report false")
	}
}

func TestZeroValueIsAbsent(t *testing.T) {
	var o optional.Optional[string]
	if o.IsPresent() {
		t.Fatal("the zero Optional must be absent")
	}
}

func TestMustGet(t *testing.T) {
	if got := optional.Some("x").MustGet(); got != "x" {
		t.Fatalf("MustGet = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("MustGet on None should panic")
		}
	}()
	optional.None[string]().MustGet()
}

func TestOrElse(t *testing.T) {
	if got := optional.Some(1).OrElse(9); got != 1 {
		t.Fatalf("OrElse on present = %d, want 1", got)
	}
	if got := optional.None[int]().OrElse(9); got != 9 {
		t.Fatalf("OrElse on absent = %d, want 9", got)
	}
}

func TestString(t *testing.T) {
	if got := optional.Some(3).String(); got != "Some(3)" {
		t.Fatalf("String = %q", got)
	}
	if got := optional.None[int]().String(); got != "None" {
		t.Fatalf("String = %q", got)
	}
}

func TestMap(t *testing.T) {
	got := optional.Map(optional.Some(7), strconv.Itoa)
	if v, ok := got.Get(); !ok || v != "7" {
		t.Fatalf("Map on present = %v, %v", v, ok)
	}
	called := false
	absent := optional.Map(optional.None[int](), func(n int) string {
		called = true
		return strconv.Itoa(n)
	})
	if absent.IsPresent() || called {
		t.Fatal("Map on absent must not call fn and must stay absent")
	}
}
