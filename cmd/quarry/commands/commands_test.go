package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/quarrydev/quarry/cmd/quarry/commands"
	"github.com/quarrydev/quarry/internal/adapters/logger"
	"github.com/quarrydev/quarry/internal/app"
	"github.com/quarrydev/quarry/internal/core/domain"
	"github.com/quarrydev/quarry/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	checkFunc  func(ctx context.Context, opts app.Options, dependency string) error
	recordFunc func(ctx context.Context, opts app.Options, dependency string, platforms []string) error
	showFunc   func(ctx context.Context, opts app.Options, dependency string) (domain.VersionRecord, error)
}

func (m *mockApp) Check(ctx context.Context, opts app.Options, dependency string) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts, dependency)
	}
	return nil
}

func (m *mockApp) Record(ctx context.Context, opts app.Options, dependency string, platforms []string) error {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, opts, dependency, platforms)
	}
	return nil
}

func (m *mockApp) Show(ctx context.Context, opts app.Options, dependency string) (domain.VersionRecord, error) {
	if m.showFunc != nil {
		return m.showFunc(ctx, opts, dependency)
	}
	return domain.VersionRecord{}, nil
}

func discardLogger(t *testing.T) ports.Logger {
	t.Helper()

	lg, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("logger.New did not return *logger.Logger")
	}
	lg.SetOutput(io.Discard)
	return lg
}

func TestCommands_Check(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.Options
		var capturedDep string

		mock := &mockApp{
			checkFunc: func(_ context.Context, opts app.Options, dependency string) error {
				capturedOpts = opts
				capturedDep = dependency
				return nil
			},
		}

		cli := commands.New(mock, discardLogger(t))
		cli.SetArgs([]string{"check", "Foo", "-C", "/work", "--config", "pins.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Foo", capturedDep)
		assert.Equal(t, app.Options{RootDir: "/work", ConfigFile: "pins.yaml"}, capturedOpts)
	})

	t.Run("defaults root and config", func(t *testing.T) {
		var capturedOpts app.Options

		mock := &mockApp{
			checkFunc: func(_ context.Context, opts app.Options, _ string) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock, discardLogger(t))
		cli.SetArgs([]string{"check", "Foo"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.Options{RootDir: ".", ConfigFile: "quarry.yaml"}, capturedOpts)
	})

	t.Run("propagates build required", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ app.Options, _ string) error {
				return domain.ErrBuildRequired
			},
		}

		cli := commands.New(mock, discardLogger(t))
		cli.SetArgs([]string{"check", "Foo"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		assert.ErrorIs(t, err, domain.ErrBuildRequired)
	})

	t.Run("requires a dependency argument", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ app.Options, _ string) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, discardLogger(t))
		cli.SetArgs([]string{"check"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Record(t *testing.T) {
	t.Run("wires platform flags", func(t *testing.T) {
		var capturedPlatforms []string

		mock := &mockApp{
			recordFunc: func(_ context.Context, _ app.Options, _ string, platforms []string) error {
				capturedPlatforms = platforms
				return nil
			},
		}

		cli := commands.New(mock, discardLogger(t))
		cli.SetArgs([]string{"record", "Foo", "-p", "iOS", "-p", "Mac"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"iOS", "Mac"}, capturedPlatforms)
	})

	t.Run("defaults to configured platforms", func(t *testing.T) {
		called := false

		mock := &mockApp{
			recordFunc: func(_ context.Context, _ app.Options, _ string, platforms []string) error {
				called = true
				assert.Empty(t, platforms)
				return nil
			},
		}

		cli := commands.New(mock, discardLogger(t))
		cli.SetArgs([]string{"record", "Foo"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
	})

	t.Run("returns error on record failure", func(t *testing.T) {
		mock := &mockApp{
			recordFunc: func(_ context.Context, _ app.Options, _ string, _ []string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, discardLogger(t))
		cli.SetArgs([]string{"record", "Foo"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Show(t *testing.T) {
	t.Run("renders the record", func(t *testing.T) {
		record := domain.VersionRecord{
			domain.PlatformMac: domain.NewPlatformCache("abc123", []domain.Framework{
				{Name: "Foo", Digest: "d1"},
			}),
			domain.PlatformIOS: domain.NewPlatformCache("abc123", []domain.Framework{
				{Name: "Foo", Digest: "d2"},
				{Name: "FooExtras", Digest: "d3"},
			}),
		}

		mock := &mockApp{
			showFunc: func(_ context.Context, _ app.Options, _ string) (domain.VersionRecord, error) {
				return record, nil
			},
		}

		cli := commands.New(mock, discardLogger(t))
		buf := new(bytes.Buffer)
		cli.SetArgs([]string{"show", "Foo"})
		cli.SetOutput(buf, new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))

		out := buf.String()
		assert.Contains(t, out, "Mac @ abc123")
		assert.Contains(t, out, "iOS @ abc123")
		assert.Contains(t, out, "  d1  Foo\n")
		assert.Contains(t, out, "  d3  FooExtras\n")
		// Platform sections come out in canonical order.
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("Mac @")), bytes.Index(buf.Bytes(), []byte("iOS @")))
	})

	t.Run("surfaces a missing record", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(_ context.Context, _ app.Options, _ string) (domain.VersionRecord, error) {
				return nil, domain.ErrNoVersionRecord
			},
		}

		cli := commands.New(mock, discardLogger(t))
		cli.SetArgs([]string{"show", "Foo"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		assert.ErrorIs(t, err, domain.ErrNoVersionRecord)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}

	cli := commands.New(mock, discardLogger(t))
	buf := new(bytes.Buffer)
	cli.SetArgs([]string{"version"})
	cli.SetOutput(buf, new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "quarry version dev")
}

func TestCommands_Verbose(t *testing.T) {
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	lg.SetOutput(&buf)

	cli := commands.New(&mockApp{}, lg)
	cli.SetArgs([]string{"check", "Foo", "-v"})
	require.NoError(t, cli.Execute(context.Background()))

	lg.Debug("after toggle")
	assert.Contains(t, buf.String(), "after toggle")
}
