package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGateAdvice(t *testing.T) {
	basic := []string{"b"}
	premium := []string{"p"}

	free := gateAdvice(basic, premium, false)
	assert.Equal(t, Advice{Basic: []string{"b"}, Locked: true}, free)

	paid := gateAdvice(basic, premium, true)
	assert.Equal(t, Advice{Basic: []string{"b"}, Premium: []string{"p"}}, paid)

	paid.Basic[0] = "changed"
	assert.Equal(t, "b", basic[0])
}

func TestLatency(t *testing.T) {
	var slept []time.Duration
	l := newLatency(2 * time.Second)
	l.sleep = func(d time.Duration) { slept = append(slept, d) }
	l.wait()
	assert.Equal(t, []time.Duration{2 * time.Second}, slept)

	l = newLatency(0)
	l.sleep = func(time.Duration) { t.Fatal("zero delay must not sleep") }
	l.wait()
}

func TestSessionManagerIsEntitlement(t *testing.T) {
	var _ Entitlement = (*SessionManager)(nil)
	assert.False(t, freeOnly{}.IsPremium())
}
