package nix_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nh/internal/adapters/nix"
	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestUpdater_Update_Flake(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	var out bytes.Buffer

	mockExecutor.EXPECT().Execute(gomock.Any(), domain.Command{
		Args: []string{"nix", "flake", "update", "--flake", "/src/project"},
		Dir:  "/src/project",
	}).Return(nil)

	updater := nix.NewUpdater("nix", mockExecutor, &out)
	err := updater.Update(context.Background(), domain.NewFlakeProject("/src/project"), false)
	require.NoError(t, err)

	assert.Equal(t, "$ nix flake update --flake /src/project\n", out.String())
}

func TestUpdater_Update_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	var out bytes.Buffer

	updater := nix.NewUpdater("nix", mockExecutor, &out)
	err := updater.Update(context.Background(), domain.NewFlakeProject("/src/project"), true)
	require.NoError(t, err)

	assert.Equal(t, "$ nix flake update --flake /src/project\n", out.String())
}

func TestUpdater_Update_StandaloneFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	var out bytes.Buffer

	updater := nix.NewUpdater("nix", mockExecutor, &out)
	err := updater.Update(context.Background(), domain.NewStandaloneFile("/src/pkg.nix", true), false)

	require.ErrorIs(t, err, domain.ErrNotUpdatable)
	assert.Empty(t, out.String())
}

func TestUpdater_Update_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	var out bytes.Buffer
	failure := errors.New("exit status 1")

	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(failure)

	updater := nix.NewUpdater("nix", mockExecutor, &out)
	err := updater.Update(context.Background(), domain.NewFlakeProject("/src/project"), false)

	require.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "failed to update flake")
}
