package main

import (
	"codeberg.org/miketth/keymapshift/pkg/config"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"context"
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"path/filepath"
	"testing"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "no selection",
			err:  fmt.Errorf("shift selection: %w", keymapshift.ErrNoSelection),
			want: "Nothing is selected.",
		},
		{
			name: "undetermined",
			err:  keymapshift.ErrLayoutUndetermined,
			want: "Could not tell which layout the selected text was typed in.",
		},
		{
			name: "no next layout",
			err:  keymapshift.ErrNoNextLayout,
			want: "There is no layout to shift the text to.",
		},
		{
			name: "injection",
			err:  fmt.Errorf("shift selection: %w", &keymapshift.InjectionError{Reason: "wtype: exit status 1"}),
			want: "Could not replace the selected text: wtype: exit status 1",
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "Shifting failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}

func TestShowHistoryRejectsNonPositiveCount(t *testing.T) {
	cfg := config.Default()
	cfg.History = true
	cfg.HistoryPath = filepath.Join(t.TempDir(), "history.db")
	a := &app{cfg: cfg, log: zap.NewNop().Sugar()}

	for _, n := range []string{"0", "-1"} {
		err := a.showHistory(context.Background(), []string{"-n", n})
		assert.ErrorIs(t, err, errInvalidCount)
	}
	assert.NoFileExists(t, cfg.HistoryPath)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))

	log, err = newLogger(true)
	require.NoError(t, err)
	assert.True(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
}
