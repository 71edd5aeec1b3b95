package browser

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
	"time"
)

func TestCommandPerPlatform(t *testing.T) {
	url := "https://example.com/x"
	cases := []struct {
		goos string
		name string
		args []string
	}{
		{"darwin", "open", []string{url}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", url}},
		{"linux", "xdg-open", []string{url}},
		{"freebsd", "xdg-open", []string{url}},
	}
	for _, tc := range cases {
		name, args := Command(tc.goos, url)
		if name != tc.name {
			t.Fatalf("%s: expected %q, got %q", tc.goos, tc.name, name)
		}
		if !reflect.DeepEqual(args, tc.args) {
			t.Fatalf("%s: expected args %v, got %v", tc.goos, tc.args, args)
		}
	}
}

func TestSystemOpenStartsCommand(t *testing.T) {
	var started []*exec.Cmd
	s := &System{goos: "linux", start: func(cmd *exec.Cmd) error {
		started = append(started, cmd)
		return nil
	}}
	s.Open("https://example.com/x")
	if len(started) != 1 {
		t.Fatalf("expected one start, got %d", len(started))
	}
	want := []string{"xdg-open", "https://example.com/x"}
	if !reflect.DeepEqual(started[0].Args, want) {
		t.Fatalf("expected args %v, got %v", want, started[0].Args)
	}
}

func TestCommandKeepsURLOneArgument(t *testing.T) {
	url := "https://example.com/a&calc.exe"
	for _, goos := range []string{"windows", "darwin", "linux"} {
		name, args := Command(goos, url)
		if name == "cmd" || name == "sh" {
			t.Fatalf("%s: url must not go through a shell, got %q", goos, name)
		}
		if args[len(args)-1] != url {
			t.Fatalf("%s: expected url passed verbatim as last argument, got %v", goos, args)
		}
	}
}

func TestSystemOpenRefusesNonHTTPURLs(t *testing.T) {
	s := &System{goos: "linux", start: func(cmd *exec.Cmd) error {
		t.Fatalf("start should not be called for %v", cmd.Args)
		return nil
	}}
	for _, url := range []string{"file:///etc/passwd", "javascript:alert(1)", "smb://host/share", "https://"} {
		if err := CheckURL(url); err == nil {
			t.Fatalf("expected %q to be refused", url)
		}
		s.Open(url)
	}
	if err := CheckURL("http://example.com/x?a=1&b=2"); err != nil {
		t.Fatalf("expected http url accepted, got %v", err)
	}
}

func TestSystemOpenSwallowsErrors(t *testing.T) {
	calls := 0
	s := &System{goos: "darwin", start: func(*exec.Cmd) error {
		calls++
		return errors.New("no such binary")
	}}
	s.Open("https://example.com/x")
	if calls != 1 {
		t.Fatalf("expected start to be attempted once, got %d", calls)
	}
}

func TestSystemOpenIgnoresBlankURL(t *testing.T) {
	s := &System{goos: "linux", start: func(*exec.Cmd) error {
		t.Fatalf("start should not be called for a blank url")
		return nil
	}}
	s.Open("   ")
}

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder
	r.Open("a")
	r.Open("b")
	got := r.URLs()
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected urls %v", got)
	}
	got[0] = "mutated"
	if r.URLs()[0] != "a" {
		t.Fatalf("expected URLs to return a copy")
	}
}

var _ Launcher = (*System)(nil)
var _ Launcher = Nop{}
var _ Launcher = (*Recorder)(nil)

func TestThrottleDropsRepeatsWithinInterval(t *testing.T) {
	rec := &Recorder{}
	clock := time.Unix(0, 0)
	l := Throttle(rec, time.Second).(*Throttled)
	l.now = func() time.Time { return clock }

	for i := 0; i < 30; i++ {
		l.Open("https://example.com/a")
		clock = clock.Add(33 * time.Millisecond)
	}
	if got := rec.URLs(); !reflect.DeepEqual(got, []string{"https://example.com/a"}) {
		t.Fatalf("expected a held key to open once, got %v", got)
	}

	clock = clock.Add(time.Second)
	l.Open("https://example.com/b")
	if got := len(rec.URLs()); got != 2 {
		t.Fatalf("expected a launch once the interval passed, got %d", got)
	}
}

func TestThrottleZeroIntervalReturnsLauncher(t *testing.T) {
	rec := &Recorder{}
	if got := Throttle(rec, 0); got != Launcher(rec) {
		t.Fatalf("expected launcher unchanged, got %T", got)
	}
}
