package fulfillment

import (
	"context"
	"fmt"

	"warebell/internal/domain"
	txcontext "warebell/pkg/platform/tx"
)

// SavePickList persists a pick list edit and triggers the update notifier.
// The stored version is captured first so the notifier can diff against a
// true before-image; realtime publishes registered by the notifier run only
// once the save has committed. A failed notification never fails the save.
func (s *Service) SavePickList(ctx context.Context, actor string, pl *domain.PickList) error {
	var before *domain.PickList
	if !pl.IsNew {
		prev, err := s.stores.PickLists.Get(ctx, pl.Name)
		if err == nil {
			before = prev
		}
		// An unavailable before-image is not fatal; the notifier's
		// policy suppresses the notification.
	}

	ctx, hooks := txcontext.WithHooks(ctx)

	var err error
	if pl.IsNew {
		err = s.stores.PickLists.Insert(ctx, pl)
	} else {
		err = s.stores.PickLists.Save(ctx, pl)
	}
	if err != nil {
		hooks.Discard()
		return fmt.Errorf("save pick list %s: %w", pl.Name, err)
	}

	if s.notifier != nil {
		s.notifier.PickListUpdated(ctx, actor, before, pl)
	}

	hooks.Commit()
	return nil
}
