package fmea

import "context"

// ItemStore mirrors the working copy of items into durable storage.
type ItemStore interface {
	SaveItems(ctx context.Context, items []Item) error
	LoadItems(ctx context.Context) ([]Item, error)
	StartAutoSave(fn func())
	StopAutoSave()
}
