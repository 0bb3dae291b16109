package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyNotifierFiresOncePerStreak(t *testing.T) {
	var n EmptyNotifier

	assert.True(t, n.Observe("red", 0))
	// further keystrokes in the same empty streak stay silent
	assert.False(t, n.Observe("redd", 0))
	assert.False(t, n.Observe("reddd", 0))

	// results coming back re-arms the notifier
	assert.False(t, n.Observe("re", 3))
	assert.True(t, n.Observe("zzz", 0))
}

func TestEmptyNotifierIgnoresEmptySearch(t *testing.T) {
	var n EmptyNotifier
	assert.False(t, n.Observe("", 0))
	assert.False(t, n.Observe("   ", 0))
}
