package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/gassehat-backend/config"
	"github.com/c14220110/gassehat-backend/internal/common/errs"
	"github.com/c14220110/gassehat-backend/internal/dokter/models"
	"github.com/c14220110/gassehat-backend/pkg/storage/database"
	"github.com/c14220110/gassehat-backend/pkg/storage/database/dbtest"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []interface{}
}

func (p *recordingPublisher) Publish(v interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, v)
}

func newJadwalService(t *testing.T) (*JadwalService, *recordingPublisher, int64) {
	db, d := dbtest.New(t)
	pub := &recordingPublisher{}
	id := dbtest.InsertDokter(t, db, "dr. Sari", "Umum")
	return NewJadwalService(db, d, pub), pub, id
}

func countJadwal(t *testing.T, s *JadwalService, dokterID int64) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB.QueryRow("SELECT COUNT(*) FROM jadwal_dokter WHERE dokter_id = ?", dokterID).Scan(&n))
	return n
}

func TestSetSchedule_IdempotentPerDay(t *testing.T) {
	s, _, id := newJadwalService(t)
	ctx := context.Background()

	require.NoError(t, s.SetSchedule(ctx, id, "Monday", "AM"))
	require.NoError(t, s.SetSchedule(ctx, id, "Monday", "AM"))

	list, err := s.ListByDoctor(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []models.Jadwal{{Hari: "Monday", Shift: "AM"}}, list)
}

func TestSetSchedule_Overwrites(t *testing.T) {
	s, _, id := newJadwalService(t)
	ctx := context.Background()

	require.NoError(t, s.SetSchedule(ctx, id, "Monday", "AM"))
	require.NoError(t, s.SetSchedule(ctx, id, "Monday", "PM"))

	list, err := s.ListByDoctor(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []models.Jadwal{{Hari: "Monday", Shift: "PM"}}, list)
}

func TestSetSchedule_DistinctDays(t *testing.T) {
	s, _, id := newJadwalService(t)
	ctx := context.Background()

	require.NoError(t, s.SetSchedule(ctx, id, "Monday", "AM"))
	require.NoError(t, s.SetSchedule(ctx, id, "Tuesday", "PM"))

	list, err := s.ListByDoctor(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.Jadwal{{Hari: "Monday", Shift: "AM"}, {Hari: "Tuesday", Shift: "PM"}}, list)
}

func TestSetSchedule_Validation(t *testing.T) {
	s, pub, id := newJadwalService(t)
	ctx := context.Background()

	cases := []struct {
		name        string
		id          int64
		hari, shift string
	}{
		{"empty hari", id, "", "AM"},
		{"blank hari", id, "   ", "AM"},
		{"empty shift", id, "Monday", ""},
		{"bad id", 0, "Monday", "AM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.SetSchedule(ctx, tc.id, tc.hari, tc.shift)
			var ve *errs.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
	assert.Equal(t, 0, countJadwal(t, s, id))
	assert.Empty(t, pub.events)
}

func TestSetSchedule_UnknownDoctor(t *testing.T) {
	s, _, _ := newJadwalService(t)

	err := s.SetSchedule(context.Background(), 999, "Monday", "AM")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, 0, countJadwal(t, s, 999))
}

func TestSetSchedule_PublishesEvent(t *testing.T) {
	s, pub, id := newJadwalService(t)

	require.NoError(t, s.SetSchedule(context.Background(), id, " Senin ", " Pagi "))

	require.Len(t, pub.events, 1)
	assert.Equal(t, models.JadwalEvent{Type: models.EventJadwalUpdated, DokterID: id, Hari: "Senin", Shift: "Pagi"}, pub.events[0])
}

func TestListGrouped(t *testing.T) {
	s, _, sari := newJadwalService(t)
	ctx := context.Background()
	budi := dbtest.InsertDokter(t, s.DB, "dr. Budi", "Gigi")

	require.NoError(t, s.SetSchedule(ctx, sari, "Selasa", "Sore"))
	require.NoError(t, s.SetSchedule(ctx, budi, "Rabu", "Pagi"))
	require.NoError(t, s.SetSchedule(ctx, sari, "Kamis", "Pagi"))

	got, err := s.ListGrouped(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.DokterJadwal{
		{Nama: "dr. Sari", Poli: "Umum", Jadwal: []models.Jadwal{{Hari: "Kamis", Shift: "Pagi"}, {Hari: "Selasa", Shift: "Sore"}}},
		{Nama: "dr. Budi", Poli: "Gigi", Jadwal: []models.Jadwal{{Hari: "Rabu", Shift: "Pagi"}}},
	}, got)
}

func TestListGrouped_Empty(t *testing.T) {
	s, _, _ := newJadwalService(t)

	got, err := s.ListGrouped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.DokterJadwal{}, got)
}

func TestSetSchedule_ConcurrentSameDay(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{DBDriver: "sqlite3", DBPath: filepath.Join(t.TempDir(), "jadwal.db")}
	db, d, err := database.Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(ctx, db, d))

	id := dbtest.InsertDokter(t, db, "dr. Sari", "Umum")
	s := NewJadwalService(db, d, nil)

	const workers = 20
	shifts := make(map[string]bool, workers)
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		shift := fmt.Sprintf("Shift-%d", i)
		shifts[shift] = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- s.SetSchedule(ctx, id, "Senin", shift)
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Equal(t, 1, countJadwal(t, s, id))
	list, err := s.ListByDoctor(ctx, id)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, shifts[list[0].Shift], "shift %q bukan salah satu yang dikirim", list[0].Shift)
}
