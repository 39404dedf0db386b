package services

import "time"

// Entitlement reports whether premium content may be shown.
// *SessionManager implements it.
type Entitlement interface {
	IsPremium() bool
}

type freeOnly struct{}

func (freeOnly) IsPremium() bool { return false }

// Advice is generated guidance as the current session may see it.
//
// Basic is shown to everyone. Premium is filled only for entitled sessions;
// when Locked is set the session is not entitled and renderers show the
// upgrade prompt in its place. An empty Premium with Locked unset means
// there simply are no premium items.
type Advice struct {
	Basic   []string
	Premium []string
	Locked  bool
}

func gateAdvice(basic, premium []string, entitled bool) Advice {
	a := Advice{Basic: append([]string(nil), basic...), Locked: !entitled}
	if entitled {
		a.Premium = append([]string(nil), premium...)
	}
	return a
}

// latency simulates the round trip of a remote generator. The wait is not
// cancellable.
type latency struct {
	delay time.Duration
	sleep func(time.Duration)
}

func newLatency(d time.Duration) latency {
	return latency{delay: d, sleep: time.Sleep}
}

func (l latency) wait() {
	if l.delay > 0 {
		l.sleep(l.delay)
	}
}
