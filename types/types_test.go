package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnStateString(t *testing.T) {
	require.Equal(t, "disconnected", StateDisconnected.String())
	require.Equal(t, "connecting", StateConnecting.String())
	require.Equal(t, "connected", StateConnected.String())
	require.Equal(t, "transaction", StateTransactionOpen.String())
	require.Equal(t, "ended", StateEnded.String())
	require.Equal(t, "killed", StateKilled.String())
	require.Equal(t, "unknown", ConnState(99).String())
}

func TestConnStateTerminal(t *testing.T) {
	require.True(t, StateEnded.Terminal())
	require.True(t, StateKilled.Terminal())
	require.False(t, StateConnected.Terminal())
	require.False(t, StateTransactionOpen.Terminal())
	require.False(t, StateDisconnected.Terminal())
}

func TestLockModePhrase(t *testing.T) {
	phrase, ok := LockWrite.Phrase()
	require.True(t, ok)
	require.Equal(t, "SHARE ROW EXCLUSIVE", phrase)

	phrase, ok = LockExclusive.Phrase()
	require.True(t, ok)
	require.Equal(t, "ACCESS EXCLUSIVE", phrase)

	phrase, ok = LockMode(42).Phrase()
	require.False(t, ok)
	require.Empty(t, phrase)
}

func TestTranslatedError(t *testing.T) {
	cause := errors.New("server says no")
	err := &TranslatedError{Kind: ErrInvalidCredentials, Cause: cause}

	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "invalid credentials")
	require.Contains(t, err.Error(), "server says no")
}
