package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nh/internal/app"
	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader     *mocks.MockConfigLoader
	classifier *mocks.MockClassifier
	finder     *mocks.MockFinder
	fetcher    *mocks.MockMetadataFetcher
	updater    *mocks.MockUpdater
	text       *mocks.MockRenderer
	json       *mocks.MockRenderer
	verbosity  *fakeVerbosity
	app        *app.App
}

type fakeVerbosity struct {
	verbose bool
}

func (f *fakeVerbosity) SetVerbose(verbose bool) { f.verbose = verbose }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:     mocks.NewMockConfigLoader(ctrl),
		classifier: mocks.NewMockClassifier(ctrl),
		finder:     mocks.NewMockFinder(ctrl),
		fetcher:    mocks.NewMockMetadataFetcher(ctrl),
		updater:    mocks.NewMockUpdater(ctrl),
		text:       mocks.NewMockRenderer(ctrl),
		json:       mocks.NewMockRenderer(ctrl),
		verbosity:  &fakeVerbosity{},
	}
	f.app = app.New(
		f.loader, f.classifier, f.finder, f.fetcher, f.updater,
		app.Renderers{Text: f.text, JSON: f.json},
		f.verbosity,
	)
	return f
}

func TestApp_Configure(t *testing.T) {
	f := newFixture(t)
	f.app.Configure(app.GlobalOptions{ConfigPath: "custom.yaml", Verbose: true})

	assert.True(t, f.verbosity.verbose)

	f.loader.EXPECT().Load("custom.yaml").Return(domain.DefaultConfig(), nil)
	f.fetcher.EXPECT().FetchAll(gomock.Any(), "nixpkgs", []string{"hello"}).Return(nil)
	f.text.EXPECT().RenderRecords(gomock.Nil()).Return(nil)

	require.NoError(t, f.app.Info(context.Background(), []string{"hello"}, app.InfoOptions{}))
}

func TestApp_Find(t *testing.T) {
	units := []domain.PackageUnit{
		domain.NewStandaloneFile("/src/pkgs/hello.nix", false),
		domain.NewFlakeProject("/src/tools"),
	}

	t.Run("renders all units", func(t *testing.T) {
		f := newFixture(t)
		cfg := domain.Config{Flake: "nixpkgs", Ignore: []string{"result"}}

		f.loader.EXPECT().Load("").Return(cfg, nil)
		f.finder.EXPECT().FindAll(gomock.Any(), "/src", []string{"result"}).Return(units, nil)
		f.text.EXPECT().RenderUnits(units).Return(nil)

		require.NoError(t, f.app.Find(context.Background(), "/src", app.FindOptions{}))
	})

	t.Run("filters and renders json", func(t *testing.T) {
		f := newFixture(t)

		f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
		f.finder.EXPECT().FindAll(gomock.Any(), "/src", gomock.Nil()).Return(units, nil)
		f.json.EXPECT().RenderUnits([]domain.PackageUnit{units[1]}).Return(nil)

		err := f.app.Find(context.Background(), "/src", app.FindOptions{Filter: "tools", JSON: true})
		require.NoError(t, err)
	})

	t.Run("finder error", func(t *testing.T) {
		f := newFixture(t)

		f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
		f.finder.EXPECT().FindAll(gomock.Any(), "/missing", gomock.Any()).
			Return(nil, domain.ErrNotFound)

		err := f.app.Find(context.Background(), "/missing", app.FindOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("config error", func(t *testing.T) {
		f := newFixture(t)

		f.loader.EXPECT().Load(gomock.Any()).Return(domain.Config{}, domain.ErrConfigInvalid)

		err := f.app.Find(context.Background(), "/src", app.FindOptions{})
		assert.True(t, errors.Is(err, domain.ErrConfigInvalid))
	})
}

func TestApp_Inspect(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		unit := domain.NewFlakeProject("/src/tools")

		f.classifier.EXPECT().Classify("/src/tools/flake.nix").Return(unit, nil)
		f.text.EXPECT().RenderUnits([]domain.PackageUnit{unit}).Return(nil)

		require.NoError(t, f.app.Inspect("/src/tools/flake.nix", false))
	})

	t.Run("uninitialized flake", func(t *testing.T) {
		f := newFixture(t)

		f.classifier.EXPECT().Classify("/src/new").Return(domain.PackageUnit{}, domain.ErrFlakeNotInitialized)

		err := f.app.Inspect("/src/new", true)
		assert.True(t, errors.Is(err, domain.ErrFlakeNotInitialized))
	})
}

func TestApp_Info(t *testing.T) {
	t.Run("no packages", func(t *testing.T) {
		f := newFixture(t)

		err := f.app.Info(context.Background(), nil, app.InfoOptions{})
		assert.True(t, errors.Is(err, domain.ErrNoPackagesSpecified))
	})

	t.Run("flag overrides configured flake", func(t *testing.T) {
		f := newFixture(t)
		records := []domain.MetadataRecord{{Name: "hello", Version: "2.12.1"}}

		f.loader.EXPECT().Load(gomock.Any()).Return(domain.Config{Flake: "github:me/pkgs"}, nil)
		f.fetcher.EXPECT().FetchAll(gomock.Any(), "github:NixOS/nixpkgs", []string{"hello"}).Return(records)
		f.json.EXPECT().RenderRecords(records).Return(nil)

		err := f.app.Info(context.Background(), []string{"hello"}, app.InfoOptions{
			Flake: "github:NixOS/nixpkgs",
			JSON:  true,
		})
		require.NoError(t, err)
	})

	t.Run("configured flake", func(t *testing.T) {
		f := newFixture(t)

		f.loader.EXPECT().Load(gomock.Any()).Return(domain.Config{Flake: "github:me/pkgs"}, nil)
		f.fetcher.EXPECT().FetchAll(gomock.Any(), "github:me/pkgs", []string{"a", "b"}).
			Return([]domain.MetadataRecord{{Name: "a"}, {Name: "b"}})
		f.text.EXPECT().RenderRecords(gomock.Len(2)).Return(nil)

		require.NoError(t, f.app.Info(context.Background(), []string{"a", "b"}, app.InfoOptions{}))
	})
}

func TestApp_Update(t *testing.T) {
	flakeA := domain.NewFlakeProject("/src/a")
	flakeB := domain.NewFlakeProject("/src/b")
	file := domain.NewStandaloneFile("/src/pkg.nix", true)

	t.Run("updates flakes only", func(t *testing.T) {
		f := newFixture(t)

		f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
		f.finder.EXPECT().FindAll(gomock.Any(), "/src", gomock.Any()).
			Return([]domain.PackageUnit{flakeA, file, flakeB}, nil)
		gomock.InOrder(
			f.updater.EXPECT().Update(gomock.Any(), flakeA, true).Return(nil),
			f.updater.EXPECT().Update(gomock.Any(), flakeB, true).Return(nil),
		)

		require.NoError(t, f.app.Update(context.Background(), "/src", app.UpdateOptions{DryRun: true}))
	})

	t.Run("first failure aborts", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("exit status 1")

		f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
		f.finder.EXPECT().FindAll(gomock.Any(), "/src", gomock.Any()).
			Return([]domain.PackageUnit{flakeA, flakeB}, nil)
		f.updater.EXPECT().Update(gomock.Any(), flakeA, false).Return(boom)

		err := f.app.Update(context.Background(), "/src", app.UpdateOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, boom))
	})
}
