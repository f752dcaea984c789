package fulfillment

import (
	"context"

	"warebell/internal/domain"
)

func (s *ServiceSuite) TestSavePickList() {
	ctx := context.Background()

	s.Run("insert passes no before image and marks the document new", func() {
		pl := &domain.PickList{Owner: "alice", IsNew: true}
		s.Require().NoError(s.svc.SavePickList(ctx, "alice", pl))
		s.NotEmpty(pl.Name)

		s.Require().Len(s.notifier.calls, 1)
		s.Nil(s.notifier.calls[0].before)
		s.True(s.notifier.calls[0].after.IsNew)
	})

	s.Run("update passes the stored version as before image", func() {
		pl := s.seedPickList(&domain.PickList{
			Name:  "PL-SAVE",
			Owner: "alice",
			Locations: []domain.PickListLocation{
				{RowName: "r1", ItemCode: "WIDGET", PickedQty: 1},
			},
		})

		updated := *pl
		updated.Locations = []domain.PickListLocation{
			{RowName: "r1", ItemCode: "WIDGET", PickedQty: 3},
		}
		s.Require().NoError(s.svc.SavePickList(ctx, "bob", &updated))

		call := s.notifier.calls[len(s.notifier.calls)-1]
		s.Equal("bob", call.actor)
		s.Require().NotNil(call.before)
		s.Equal(1.0, call.before.Locations[0].PickedQty)
		s.Equal(3.0, call.after.Locations[0].PickedQty)

		stored, err := s.pickLists.Get(ctx, "PL-SAVE")
		s.Require().NoError(err)
		s.Equal(3.0, stored.Locations[0].PickedQty)
	})

	s.Run("unknown document fails the save without notifying", func() {
		calls := len(s.notifier.calls)
		err := s.svc.SavePickList(ctx, "bob", &domain.PickList{Name: "PL-MISSING"})
		s.Error(err)
		s.Len(s.notifier.calls, calls)
	})
}
