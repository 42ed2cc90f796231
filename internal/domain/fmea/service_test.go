package fmea_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/mocks"
)

func newTestService(t *testing.T) (*fmea.Service, *mocks.ItemStore) {
	t.Helper()
	store := new(mocks.ItemStore)
	store.On("SaveItems", mock.Anything, mock.Anything).Return(nil).Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return fmea.NewService(store, fmea.DefaultThresholds(), logger), store
}

func TestCreateComputesRPN(t *testing.T) {
	svc, _ := newTestService(t)

	item := svc.Create(context.Background(), fmea.CreateRequest{
		Component:   "Brake Valve",
		Function:    "Modulate pressure",
		FailureMode: "Sticking",
		Severity:    9,
		Occurrence:  3,
		Detection:   4,
	})

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 108, item.RPN)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Len(t, svc.All(), 1)
}

func TestCreateDefaultsZeroRatingsToOne(t *testing.T) {
	svc, _ := newTestService(t)

	item := svc.Create(context.Background(), fmea.CreateRequest{
		Component:   "ECU",
		Function:    "Control",
		FailureMode: "No output",
	})

	assert.Equal(t, 1, item.Severity)
	assert.Equal(t, 1, item.Occurrence)
	assert.Equal(t, 1, item.Detection)
	assert.Equal(t, 1, item.RPN)
}

func TestUpdateRecomputesRPN(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item := svc.Create(ctx, fmea.CreateRequest{
		Component:   "Brake Valve",
		Function:    "Modulate pressure",
		FailureMode: "Sticking",
		Severity:    9,
		Occurrence:  3,
		Detection:   4,
	})

	occurrence := 5
	updated, err := svc.Update(ctx, item.ID, fmea.ItemPatch{Occurrence: &occurrence})
	require.NoError(t, err)
	assert.Equal(t, 9*5*4, updated.RPN)
	assert.True(t, updated.UpdatedAt.After(item.UpdatedAt) || updated.UpdatedAt.Equal(item.UpdatedAt))

	_, err = svc.Update(ctx, "missing", fmea.ItemPatch{})
	assert.ErrorIs(t, err, fmea.ErrItemNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item := svc.Create(ctx, fmea.CreateRequest{
		Component: "ECU", Function: "Control", FailureMode: "No output",
	})

	removed, err := svc.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, removed.ID)
	assert.Empty(t, svc.All())

	_, err = svc.Delete(ctx, item.ID)
	assert.ErrorIs(t, err, fmea.ErrItemNotFound)
}

func TestByID(t *testing.T) {
	svc, _ := newTestService(t)

	item := svc.Create(context.Background(), fmea.CreateRequest{
		Component: "ECU", Function: "Control", FailureMode: "No output",
	})

	found, err := svc.ByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)

	_, err = svc.ByID("missing")
	assert.ErrorIs(t, err, fmea.ErrItemNotFound)
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.Create(ctx, fmea.CreateRequest{
		Component: "Brake Valve", Function: "Modulate pressure", FailureMode: "Sticking",
		Causes: "contamination in supply air",
	})
	svc.Create(ctx, fmea.CreateRequest{
		Component: "ECU", Function: "Control timing", FailureMode: "No output",
	})

	assert.Len(t, svc.Search("brake"), 1)
	assert.Len(t, svc.Search("CONTAMINATION"), 1)
	assert.Len(t, svc.Search("timing"), 1)
	assert.Empty(t, svc.Search("hydraulic"))

	assert.Len(t, svc.ByComponent("valve"), 1)
	assert.Empty(t, svc.ByComponent("sensor"))
}

func TestHighRiskStrictThreshold(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.Create(ctx, fmea.CreateRequest{
		Component: "A", Function: "f", FailureMode: "m",
		Severity: 10, Occurrence: 5, Detection: 3, // 150
	})
	svc.Create(ctx, fmea.CreateRequest{
		Component: "B", Function: "f", FailureMode: "m",
		Severity: 10, Occurrence: 10, Detection: 1, // 100
	})

	high := svc.HighRisk(0)
	require.Len(t, high, 1)
	assert.Equal(t, "A", high[0].Component)

	assert.Len(t, svc.HighRisk(99), 2)
	assert.Empty(t, svc.HighRisk(150))
}

func TestImportFiltersInvalidRecords(t *testing.T) {
	svc, _ := newTestService(t)

	result := svc.Import(context.Background(), []fmea.Item{
		{Component: "A", Function: "f", FailureMode: "m", Severity: 2, Occurrence: 2, Detection: 2},
		{Component: "B", Function: "f", FailureMode: "m"},
		{Component: "", Function: "f", FailureMode: "m"},
		{Component: "C", Function: "", FailureMode: "m"},
		{Component: "D", Function: "f", FailureMode: "m", ID: "keep-me"},
	})

	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 2, result.Skipped)

	items := svc.All()
	require.Len(t, items, 3)
	assert.Equal(t, 8, items[0].RPN)
	assert.NotEmpty(t, items[1].ID)
	assert.Equal(t, "keep-me", items[2].ID)
}

func TestExportBundle(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Create(context.Background(), fmea.CreateRequest{
		Component: "A", Function: "f", FailureMode: "m",
		Severity: 9, Occurrence: 3, Detection: 4,
	})

	bundle := svc.Export()
	assert.Equal(t, fmea.ExportVersion, bundle.Version)
	assert.False(t, bundle.ExportedAt.IsZero())
	require.Len(t, bundle.Items, 1)
	assert.Equal(t, 1, bundle.Statistics.TotalItems)
}

func TestClearAllPersistsEmptyState(t *testing.T) {
	store := new(mocks.ItemStore)
	store.On("SaveItems", mock.Anything, mock.Anything).Return(nil)
	svc := fmea.NewService(store, fmea.DefaultThresholds(), nil)

	svc.Create(context.Background(), fmea.CreateRequest{
		Component: "A", Function: "f", FailureMode: "m",
	})

	require.NoError(t, svc.ClearAll(context.Background()))
	assert.Empty(t, svc.All())
	store.AssertCalled(t, "SaveItems", mock.Anything, []fmea.Item{})
}

func TestRecalculateAll(t *testing.T) {
	svc, _ := newTestService(t)

	svc.SetItems([]fmea.Item{
		{ID: "i1", Component: "A", Severity: 9, Occurrence: 3, Detection: 4, RPN: 50},
		{ID: "i2", Component: "B", Severity: 2, Occurrence: 2, Detection: 2, RPN: 8},
	})

	changed := svc.RecalculateAll(context.Background())
	assert.Equal(t, 1, changed)

	items := svc.All()
	assert.Equal(t, 108, items[0].RPN)
	assert.Equal(t, 8, items[1].RPN)
}

func TestLoadFromStore(t *testing.T) {
	store := new(mocks.ItemStore)
	store.On("LoadItems", mock.Anything).Return([]fmea.Item{{ID: "i1", Component: "A"}}, nil)
	svc := fmea.NewService(store, fmea.DefaultThresholds(), nil)

	require.NoError(t, svc.LoadFromStore(context.Background()))
	require.Len(t, svc.All(), 1)
	assert.Equal(t, "i1", svc.All()[0].ID)
}

func TestDecodeItemsBothFormats(t *testing.T) {
	bare := `[{"component":"A","function":"f","failureMode":"m"}]`
	items, err := fmea.DecodeItems([]byte(bare))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Component)

	wrapped := `{"items":[{"component":"B","function":"f","failureMode":"m"}],"version":"1.0.0"}`
	items, err = fmea.DecodeItems([]byte(wrapped))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Component)

	_, err = fmea.DecodeItems([]byte(`{"nope":true}`))
	assert.ErrorIs(t, err, fmea.ErrInvalidInput)

	_, err = fmea.DecodeItems([]byte(`not json`))
	assert.ErrorIs(t, err, fmea.ErrInvalidInput)
}

func TestSetAutoSaveWiresStore(t *testing.T) {
	store := new(mocks.ItemStore)
	store.On("StartAutoSave", mock.Anything).Return()
	store.On("StopAutoSave").Return()
	svc := fmea.NewService(store, fmea.DefaultThresholds(), nil)

	svc.SetAutoSave(true)
	store.AssertCalled(t, "StartAutoSave", mock.Anything)

	svc.SetAutoSave(false)
	store.AssertCalled(t, "StopAutoSave")
}
