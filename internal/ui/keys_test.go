package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortcuts(t *testing.T) {
	s := NewShortcuts("q", "quit").
		Add("r", "reload").
		AddIf(false, "x", "hidden").
		AddIf(true, "y", "copy")

	assert.Len(t, *s, 3)

	rendered := s.Render(DarkTheme)
	assert.Contains(t, rendered, "q")
	assert.Contains(t, rendered, "reload")
	assert.NotContains(t, rendered, "hidden")
}

func TestShortcutsMustBePairs(t *testing.T) {
	assert.Panics(t, func() { NewShortcuts("q") })
}

func TestThemeByName(t *testing.T) {
	_, ok := ThemeByName("dark")
	assert.True(t, ok)
	_, ok = ThemeByName("light")
	assert.True(t, ok)
	_, ok = ThemeByName("neon")
	assert.False(t, ok)
}

func TestUILoggerKeepsUnreadCounts(t *testing.T) {
	l := NewUILogger()
	l.Infof("test", "hello %s", "world")
	l.Warningf("test", "careful")
	l.Errorf("test", "broken")

	info, warn, errs := l.peekUnread(true)
	assert.Equal(t, 1, info)
	assert.Equal(t, 1, warn)
	assert.Equal(t, 1, errs)

	info, warn, errs = l.peekUnread(false)
	assert.Zero(t, info+warn+errs)

	msgs := l.Messages()
	if assert.Len(t, msgs, 3) {
		assert.Equal(t, "hello world", msgs[0].Text)
		assert.Equal(t, LogLevelError, msgs[2].Level)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "user 3", truncate("user 3", 10))
	assert.Equal(t, "use…", truncate("user 3", 4))
	assert.Equal(t, "", truncate("user 3", 0))
}
