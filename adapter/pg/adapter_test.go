package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandOf(t *testing.T) {
	require.Equal(t, "SELECT", commandOf("SELECT 5"))
	require.Equal(t, "INSERT", commandOf("INSERT 0 1"))
	require.Equal(t, "LOCK", commandOf("LOCK TABLE"))
	require.Equal(t, "BEGIN", commandOf("BEGIN"))
	require.Equal(t, "", commandOf(""))
}

func TestNewAppliesDefaults(t *testing.T) {
	driver := New(Config{Host: "localhost"})
	require.NotNil(t, driver)

	impl, ok := driver.(*pgxDriver)
	require.True(t, ok)
	require.Equal(t, DefaultPort, impl.cfg.Port)
	require.Equal(t, DefaultUser, impl.cfg.User)
}

func TestConnectValidatesConfig(t *testing.T) {
	driver := New(Config{})

	err := driver.Connect(context.Background())
	require.Error(t, err)
}

func TestCloseBeforeConnect(t *testing.T) {
	driver := New(Config{Host: "localhost"})
	require.NoError(t, driver.Close(context.Background()))
}

func TestNotifyChannelStartsEmpty(t *testing.T) {
	driver := New(Config{Host: "localhost"})

	select {
	case err := <-driver.Notify():
		t.Fatalf("unexpected notification: %v", err)
	default:
	}
}
