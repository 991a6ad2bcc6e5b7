package store_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hooplab/statprep/internal/adapters/store"
	"github.com/hooplab/statprep/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func TestSaveRaw(t *testing.T) {
	Convey("Given a store rooted in a temp dir", t, func() {
		dir := t.TempDir()
		s := store.New(store.WithDataDir(filepath.Join(dir, "data")))

		table := model.RawTable{
			Headers: []string{"PLAYER_ID", "PLAYER_NAME", "GP", "PTS"},
			Rows: [][]string{
				{"1", "Keeps Playing", "70", "20.1"},
				{"2", "Barely Played", "5", "3.2"},
			},
		}

		Convey("When saving the raw table", func() {
			path, err := s.SaveRaw(context.Background(), table)

			Convey("Then the dump should be verbatim, header plus all rows", func() {
				So(err, ShouldBeNil)
				So(filepath.Base(path), ShouldEqual, store.RawFileName)

				records := readCSV(t, path)
				So(len(records), ShouldEqual, 3)
				So(records[0], ShouldResemble, table.Headers)
				So(records[1], ShouldResemble, table.Rows[0])
				// low-games rows are still present in the raw dump
				So(records[2], ShouldResemble, table.Rows[1])
			})

			Convey("And the data directory should have been created", func() {
				So(err, ShouldBeNil)
				info, statErr := os.Stat(filepath.Join(dir, "data"))
				So(statErr, ShouldBeNil)
				So(info.IsDir(), ShouldBeTrue)
			})
		})
	})
}

func TestSaveProcessed(t *testing.T) {
	Convey("Given a store rooted in a temp dir", t, func() {
		dir := t.TempDir()
		s := store.New(store.WithDataDir(dir))

		players := []model.ProcessedPlayer{
			{Name: "Star Guard", HeightM: 2.0, WeightKG: 100.0, Scoring: 0.91, Playmaking: 0.85, Discipline: 0.2, LuckFactor: 0.95, Tier: model.TierStar},
			{Name: "Bench Big", HeightM: 2.0, WeightKG: 100.0, Scoring: 0.05, Playmaking: 0.1, Discipline: 0.9, LuckFactor: 0.0, Tier: model.TierBust},
		}

		Convey("When saving the processed table", func() {
			path, err := s.SaveProcessed(context.Background(), players)

			Convey("Then the header should be exactly the output contract", func() {
				So(err, ShouldBeNil)
				records := readCSV(t, path)
				So(records[0], ShouldResemble, []string{
					"player_name", "height_m", "weight_kg", "scoring",
					"playmaking", "discipline", "luck_factor", "tier",
				})
			})

			Convey("And rows should carry names, numbers and tiers", func() {
				So(err, ShouldBeNil)
				records := readCSV(t, path)
				So(len(records), ShouldEqual, 3)
				So(records[1][0], ShouldEqual, "Star Guard")
				So(records[1][1], ShouldEqual, "2")
				So(records[1][2], ShouldEqual, "100")
				So(records[1][3], ShouldEqual, "0.91")
				So(records[1][7], ShouldEqual, "star")
				So(records[2][7], ShouldEqual, "bust")
			})
		})

		Convey("When saving zero players", func() {
			path, err := s.SaveProcessed(context.Background(), nil)

			Convey("Then only the header row should be written", func() {
				So(err, ShouldBeNil)
				records := readCSV(t, path)
				So(len(records), ShouldEqual, 1)
			})
		})

		Convey("When saving twice", func() {
			_, err := s.SaveProcessed(context.Background(), players)
			So(err, ShouldBeNil)
			path, err := s.SaveProcessed(context.Background(), players[:1])

			Convey("Then the file should be truncated, not appended", func() {
				So(err, ShouldBeNil)
				records := readCSV(t, path)
				So(len(records), ShouldEqual, 2)
			})
		})
	})
}

func TestSaveFailures(t *testing.T) {
	Convey("Given hostile filesystem conditions", t, func() {
		Convey("When the data dir path is occupied by a file", func() {
			dir := t.TempDir()
			blocked := filepath.Join(dir, "data")
			So(os.WriteFile(blocked, []byte("not a dir"), 0o600), ShouldBeNil)

			s := store.New(store.WithDataDir(blocked))
			_, err := s.SaveRaw(context.Background(), model.RawTable{Headers: []string{"A"}})

			Convey("Then saving should fail with ErrWrite", func() {
				So(errors.Is(err, store.ErrWrite), ShouldBeTrue)
			})
		})

		Convey("When the context is already cancelled", func() {
			s := store.New(store.WithDataDir(t.TempDir()))
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := s.SaveRaw(ctx, model.RawTable{Headers: []string{"A"}})

			Convey("Then saving should fail with ErrWrite", func() {
				So(errors.Is(err, store.ErrWrite), ShouldBeTrue)
			})
		})
	})
}
