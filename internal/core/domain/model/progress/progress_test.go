package progress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/progress"
	"freightflow/internal/pkg/errs"
)

func seedEntry() progress.Entry {
	return progress.Entry{
		Title:       "Booking confirmed",
		Description: "Shipment confirmed at agreed terms",
		At:          time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	}
}

func newProgress(t *testing.T) *progress.Progress {
	t.Helper()
	p, err := progress.NewProgress(kernel.NewUUID(), kernel.NewUUID(), seedEntry())
	require.NoError(t, err)
	return p
}

func TestNewProgress(t *testing.T) {
	t.Run("opens log with seed entry", func(t *testing.T) {
		p := newProgress(t)

		entries := p.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "Booking confirmed", entries[0].Title)

		_, assigned := p.Driver()
		assert.False(t, assigned)
	})

	t.Run("rejects seed entry without title", func(t *testing.T) {
		seed := seedEntry()
		seed.Title = ""

		_, err := progress.NewProgress(kernel.NewUUID(), kernel.NewUUID(), seed)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestProgress_Append(t *testing.T) {
	t.Run("keeps append order", func(t *testing.T) {
		p := newProgress(t)

		require.NoError(t, p.Append(progress.Entry{
			Title: "Loading started",
			At:    time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC),
		}))
		require.NoError(t, p.Append(progress.Entry{
			Title:  "Left pickup location",
			At:     time.Date(2026, 3, 11, 11, 15, 0, 0, time.UTC),
			PdfRef: "docs/lr-4471.pdf",
		}))

		entries := p.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "Loading started", entries[1].Title)
		assert.Equal(t, "Left pickup location", entries[2].Title)
		assert.Equal(t, "docs/lr-4471.pdf", entries[2].PdfRef)
	})

	t.Run("rejects entry without timestamp", func(t *testing.T) {
		p := newProgress(t)

		err := p.Append(progress.Entry{Title: "Loading started"})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, p.Entries(), 1)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		p := newProgress(t)

		entries := p.Entries()
		entries[0].Title = "tampered"

		assert.Equal(t, "Booking confirmed", p.Entries()[0].Title)
	})
}

func TestProgress_AssignDriver(t *testing.T) {
	driver := progress.Driver{
		DriverName:    "Ravi Kumar",
		DriverMobile:  "9876501234",
		VehicleNumber: "KA01AB1234",
		ChassisNumber: "MB1KACHC4JPXX1234",
	}

	t.Run("records descriptor and journey event", func(t *testing.T) {
		p := newProgress(t)

		err := p.AssignDriver(driver, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		got, assigned := p.Driver()
		assert.True(t, assigned)
		assert.Equal(t, driver, got)

		entries := p.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "Driver assigned", entries[1].Title)
		assert.Contains(t, entries[1].Description, "KA01AB1234")
	})

	t.Run("re-assignment overwrites descriptor and keeps both events", func(t *testing.T) {
		p := newProgress(t)
		require.NoError(t, p.AssignDriver(driver, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)))

		replacement := driver
		replacement.DriverName = "Suresh Patil"
		replacement.VehicleNumber = "MH12CD5678"
		require.NoError(t, p.AssignDriver(replacement, time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)))

		got, _ := p.Driver()
		assert.Equal(t, "Suresh Patil", got.DriverName)
		assert.Len(t, p.Entries(), 3)
	})

	t.Run("rejects incomplete descriptor", func(t *testing.T) {
		p := newProgress(t)

		err := p.AssignDriver(progress.Driver{DriverName: "Ravi Kumar"},
			time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		_, assigned := p.Driver()
		assert.False(t, assigned)
	})
}
