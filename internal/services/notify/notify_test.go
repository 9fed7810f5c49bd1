package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, Notification) error {
	return errors.New("display unavailable")
}

func TestLogNotifier(t *testing.T) {
	logger, hook := test.NewNullLogger()

	n := NewLogNotifier(logger)
	require.NoError(t, n.Notify(context.Background(), Notification{Title: "Drink Water!", Message: "Time for a cup."}))

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Time for a cup.", entry.Message)
	assert.Equal(t, "Drink Water!", entry.Data["title"])
}

func TestWriterNotifier(t *testing.T) {
	_, err := NewWriterNotifier(nil)
	assert.Error(t, err)

	var buf bytes.Buffer
	n, err := NewWriterNotifier(&buf)
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), Notification{Title: "Session Failed!", Message: "The monster escaped!"}))
	assert.Equal(t, "[Session Failed!] The monster escaped!\n", buf.String())
}

func TestMulti(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriterNotifier(&buf)
	require.NoError(t, err)

	m := Multi{failingNotifier{}, w}
	err = m.Notify(context.Background(), Notification{Title: "t", Message: "m"})
	assert.Error(t, err)
	assert.Equal(t, "[t] m\n", buf.String())
}
