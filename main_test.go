package main

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pix-xip/sshcode/editor"
	"github.com/pix-xip/sshcode/ssh"
)

type fakeLauncher struct {
	calls []string
	err   error
}

func (f *fakeLauncher) Launch(alias string) error {
	f.calls = append(f.calls, alias)
	return f.err
}

func TestLaunch(t *testing.T) {
	t.Run("cancel launches nothing", func(t *testing.T) {
		l := &fakeLauncher{}
		require.NoError(t, launch(l, nil))
		assert.Empty(t, l.calls)
	})

	t.Run("selected host launches once", func(t *testing.T) {
		l := &fakeLauncher{}
		require.NoError(t, launch(l, &ssh.Host{Alias: "beta"}))
		assert.Equal(t, []string{"beta"}, l.calls)
	})

	t.Run("launch error is returned", func(t *testing.T) {
		l := &fakeLauncher{err: errors.New("boom")}
		err := launch(l, &ssh.Host{Alias: "beta"})
		require.Error(t, err)
		assert.Len(t, l.calls, 1)
	})
}

func TestDefaultEditor(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(editorEnv, "/opt/code")
		assert.Equal(t, "/opt/code", defaultEditor())
	})

	t.Run("platform default", func(t *testing.T) {
		t.Setenv(editorEnv, "")
		assert.Equal(t, editor.DefaultPath(runtime.GOOS), defaultEditor())
	})
}

var _ launcher = (*editor.Editor)(nil)
