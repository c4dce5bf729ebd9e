package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type ctxKey string

func TestSetup_Levels(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	cases := map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"bogus": logrus.InfoLevel,
		"":      logrus.InfoLevel,
	}
	for name, want := range cases {
		Setup(name)
		assert.Equal(t, want, logrus.GetLevel(), "level %q", name)
	}
}

func TestWithContext(t *testing.T) {
	t.Run("anonymous when no username", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "anonymous", l.Data["user"])
	})

	t.Run("nil context", func(t *testing.T) {
		//nolint:staticcheck
		l := WithContext(nil)
		_, ok := l.Data["user"]
		assert.False(t, ok)
	})

	t.Run("string keys are picked up", func(t *testing.T) {
		//nolint:staticcheck
		ctx := context.WithValue(context.Background(), "username", "alice")
		//nolint:staticcheck
		ctx = context.WithValue(ctx, "request_id", "req-1")
		l := WithContext(ctx)
		assert.Equal(t, "alice", l.Data["user"])
		assert.Equal(t, "req-1", l.Data["request_id"])
	})

	t.Run("typed keys are ignored", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ctxKey("username"), "mallory")
		l := WithContext(ctx)
		assert.Equal(t, "anonymous", l.Data["user"])
	})
}

func TestWithFields(t *testing.T) {
	l := New().WithField("a", 1).WithFields(map[string]interface{}{"b": 2})
	assert.Equal(t, 1, l.Data["a"])
	assert.Equal(t, 2, l.Data["b"])
}
