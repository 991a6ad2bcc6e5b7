package main

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/hooplab/statprep/internal/adapters/provider"
	"github.com/hooplab/statprep/internal/adapters/store"
	app "github.com/hooplab/statprep/internal/app"
	"github.com/hooplab/statprep/internal/config"
	"github.com/hooplab/statprep/internal/fixture"
	"github.com/hooplab/statprep/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainWiring(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("STATPREP_SEASON", "2020-21")
			_ = os.Setenv("STATPREP_DATA_DIR", "out")
			defer func() {
				_ = os.Unsetenv("STATPREP_SEASON")
				_ = os.Unsetenv("STATPREP_DATA_DIR")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Season, convey.ShouldEqual, "2020-21")
				convey.So(cfg.DataDir, convey.ShouldEqual, "out")
			})
		})

		convey.Convey("When wiring the runner the way main does", func() {
			convey.So(logger.Init(), convey.ShouldBeNil)

			srv := httptest.NewServer(fixture.Handler(fixture.New(
				fixture.WithPlayerCount(25),
				fixture.WithSeed(3),
			)))
			defer srv.Close()

			runner := app.New(
				app.WithLogger(logger.Get()),
				app.WithSeason("2023-24"),
				app.WithProvider(provider.New(provider.WithBaseURL(srv.URL))),
				app.WithStore(store.New(store.WithDataDir(t.TempDir()))),
			)

			convey.Convey("Then a full run should complete", func() {
				summary, err := runner.Run(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(summary.FetchedRows, convey.ShouldEqual, 25)
				convey.So(summary.RawPath, convey.ShouldNotBeEmpty)
				convey.So(summary.ProcessedPath, convey.ShouldNotBeEmpty)
			})
		})
	})
}
