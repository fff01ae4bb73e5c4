package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meetspace/meetspace/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("user id", func(t *testing.T) {
		t.Parallel()
		attr := logger.UserID("user-42")
		assert.Equal(t, "user_id", attr.Key)
		assert.Equal(t, "user-42", attr.Value.String())
		assert.Equal(t, slog.Attr{}, logger.UserID(""))
	})

	t.Run("module and policy", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "module", logger.Module("meetings").Key)
		assert.Equal(t, "policy", logger.Policy("MeetingsCreate").Key)
		assert.Equal(t, "permission", logger.Permission("meetings.create").Key)
	})
}
