package shell_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/nh/internal/adapters/shell"
	"go.trai.ch/nh/internal/adapters/telemetry"
	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("line1"),
		mockLogger.EXPECT().Info("line2"),
	)

	executor := shell.NewExecutor(mockLogger, telemetry.NewNoOp())
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	// Partial writes are buffered until the newline.
	mockLogger.EXPECT().Info("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger, telemetry.NewNoOp())
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "printf part1; sleep 0.1; echo part2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_TrailingPartialLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger, telemetry.NewNoOp())
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "printf 'no newline'"},
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_StderrIsWarned(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Warn("warning: updating lock file").Times(1)

	executor := shell.NewExecutor(mockLogger, telemetry.NewNoOp())
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo 'warning: updating lock file' >&2"},
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	mockLogger.EXPECT().Info(dir).Times(1)

	executor := shell.NewExecutor(mockLogger, telemetry.NewNoOp())
	err = executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "pwd -P"},
		Dir:  dir,
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger, telemetry.NewNoOp())
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"nonexistent-command-xyz123"},
	})
	require.Error(t, err)
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger, telemetry.NewNoOp())
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "exit 42"},
	})
	require.Error(t, err)
	require.ErrorContains(t, err, "command failed")
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger, telemetry.NewNoOp())
	require.NoError(t, executor.Execute(context.Background(), domain.Command{}))
}
