//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"
	commandsmock "reservation-service/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRepo      *commandsmock.MockReservationRepository
	mockAllocator *commandsmock.MockAllocatorGateway
	commands      commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockAllocator = commandsmock.NewMockAllocatorGateway(s.mockCtrl)
	s.commands = commands.NewReservationCommands(s.mockRepo, s.mockAllocator)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func strPtr(v string) *string { return &v }

func pendingView(id, name string) *queries.ReservationView {
	return &queries.ReservationView{ID: id, CustomerName: name, Status: "pending"}
}

// ================================================================================
// Create
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("success: stores pending record and requests allocation", func() {
		var storedID string
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *reservation.Reservation) (*queries.ReservationView, error) {
				storedID = rec.ID()
				s.Equal(reservation.StatusPending, rec.Status())
				s.Equal("Alice", rec.CustomerName())
				return pendingView(rec.ID(), rec.CustomerName()), nil
			}).Times(1)
		s.mockAllocator.EXPECT().RequestAllocation(gomock.Any(), "Alice").
			Do(func(id, _ string) {
				s.Equal(storedID, id)
				s.True(strings.HasPrefix(id, reservation.IDPrefix))
			}).Times(1)

		result, err := s.commands.Create(context.Background(), "Alice")
		s.Require().NoError(err)
		s.Equal("pending", result.Reservation.Status)
		s.Equal(storedID, result.Reservation.ID)
	})

	s.Run("empty customer name: no store write, no allocator call", func() {
		_, err := s.commands.Create(context.Background(), "   ")
		s.ErrorIs(err, commands.ErrCustomerNameRequired)
	})

	s.Run("store failure surfaces, allocator never called", func() {
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert failed", errs.New("boom"), infra.KindDBFailure)).Times(1)

		_, err := s.commands.Create(context.Background(), "Alice")
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

// ================================================================================
// ApplyConfirmation
// ================================================================================

func (s *ReservationCommandsTestSuite) TestApplyConfirmationStatusUpdate() {
	ev := commands.ConfirmationEvent{
		Source:        commands.SourceStatusUpdate,
		ReservationID: "reserv-1",
		Status:        "confirmed",
		TableNumber:   strPtr("7"),
	}

	s.Run("success: patches status and table", func() {
		s.mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), "reserv-1", reservation.StatusConfirmed, strPtr("7")).
			Return(&queries.ReservationView{ID: "reserv-1", Status: "confirmed", TableNumber: strPtr("7")}, nil).Times(1)

		view, err := s.commands.ApplyConfirmation(context.Background(), ev)
		s.Require().NoError(err)
		s.Equal("confirmed", view.Status)
	})

	s.Run("invalid status rejected before touching the store", func() {
		bad := ev
		bad.Status = "approved"
		_, err := s.commands.ApplyConfirmation(context.Background(), bad)
		s.ErrorIs(err, commands.ErrInvalidStatus)
	})

	s.Run("unknown id maps to not found", func() {
		s.mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), "reserv-1", reservation.StatusConfirmed, gomock.Any()).
			Return(nil, infra.WrapRepoErr("no row", errs.New("zero rows"), infra.KindNotFound)).Times(1)

		_, err := s.commands.ApplyConfirmation(context.Background(), ev)
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("cancelled record maps to conflict", func() {
		s.mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), "reserv-1", reservation.StatusConfirmed, gomock.Any()).
			Return(nil, infra.WrapRepoErr("cancelled", errs.New("guard"), infra.KindConflict)).Times(1)

		_, err := s.commands.ApplyConfirmation(context.Background(), ev)
		s.ErrorIs(err, commands.ErrReservationCancelled)
	})

	s.Run("confirmed record regressing to pending maps to invalid transition", func() {
		back := ev
		back.Status = "pending"

		s.mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), "reserv-1", reservation.StatusPending, gomock.Any()).
			Return(nil, infra.WrapRepoErr("status update rejected", errs.New("guard"), infra.KindInvalidTransition)).Times(1)

		_, err := s.commands.ApplyConfirmation(context.Background(), back)
		s.ErrorIs(err, commands.ErrInvalidTransition)
		s.NotErrorIs(err, commands.ErrReservationCancelled)
	})
}

func (s *ReservationCommandsTestSuite) TestApplyConfirmationApproval() {
	s.Run("success: confirms onto the given table", func() {
		s.mockRepo.EXPECT().
			Approve(gomock.Any(), "reserv-1", "3").
			Return(&queries.ReservationView{ID: "reserv-1", Status: "confirmed", TableNumber: strPtr("3")}, nil).Times(1)

		view, err := s.commands.ApplyConfirmation(context.Background(), commands.ConfirmationEvent{
			Source:        commands.SourceApproval,
			ReservationID: "reserv-1",
			TableNumber:   strPtr("3"),
		})
		s.Require().NoError(err)
		s.Equal("confirmed", view.Status)
	})

	s.Run("missing table number rejected", func() {
		for _, tn := range []*string{nil, strPtr("")} {
			_, err := s.commands.ApplyConfirmation(context.Background(), commands.ConfirmationEvent{
				Source:        commands.SourceApproval,
				ReservationID: "reserv-1",
				TableNumber:   tn,
			})
			s.ErrorIs(err, commands.ErrTableNumberRequired)
		}
	})

	s.Run("unknown id maps to not found", func() {
		s.mockRepo.EXPECT().
			Approve(gomock.Any(), "reserv-ghost", "3").
			Return(nil, infra.WrapRepoErr("no row", errs.New("zero rows"), infra.KindNotFound)).Times(1)

		_, err := s.commands.ApplyConfirmation(context.Background(), commands.ConfirmationEvent{
			Source:        commands.SourceApproval,
			ReservationID: "reserv-ghost",
			TableNumber:   strPtr("3"),
		})
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}

func (s *ReservationCommandsTestSuite) TestApplyConfirmationNotification() {
	s.Run("success: materializes a foreign reservation as confirmed", func() {
		s.mockRepo.EXPECT().UpsertConfirmed(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *reservation.Reservation) (*queries.ReservationView, error) {
				s.Equal("reserv-ext", rec.ID())
				s.Equal(reservation.StatusConfirmed, rec.Status())
				return &queries.ReservationView{ID: rec.ID(), Status: "confirmed"}, nil
			}).Times(1)

		view, err := s.commands.ApplyConfirmation(context.Background(), commands.ConfirmationEvent{
			Source:        commands.SourceNotification,
			ReservationID: "reserv-ext",
			CustomerName:  "Dave",
			TableNumber:   strPtr("9"),
			TableStatus:   strPtr("reserved"),
		})
		s.Require().NoError(err)
		s.Equal("confirmed", view.Status)
	})

	s.Run("cancelled record is returned as stored without error", func() {
		s.mockRepo.EXPECT().UpsertConfirmed(gomock.Any(), gomock.Any()).
			Return(&queries.ReservationView{ID: "reserv-ext", Status: "cancelled"}, nil).Times(1)

		view, err := s.commands.ApplyConfirmation(context.Background(), commands.ConfirmationEvent{
			Source:        commands.SourceNotification,
			ReservationID: "reserv-ext",
			CustomerName:  "Dave",
		})
		s.Require().NoError(err)
		s.Equal("cancelled", view.Status)
	})

	s.Run("missing customer name rejected", func() {
		_, err := s.commands.ApplyConfirmation(context.Background(), commands.ConfirmationEvent{
			Source:        commands.SourceNotification,
			ReservationID: "reserv-ext",
		})
		s.ErrorIs(err, commands.ErrCustomerNameRequired)
	})
}

// ================================================================================
// Cancel
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCancel() {
	s.Run("success: releases the assigned table", func() {
		s.mockRepo.EXPECT().Cancel(gomock.Any(), "reserv-1").
			Return(&queries.ReservationView{ID: "reserv-1", Status: "cancelled", TableNumber: strPtr("4")}, nil).Times(1)
		s.mockAllocator.EXPECT().ReleaseTable("4").Times(1)

		view, err := s.commands.Cancel(context.Background(), "reserv-1")
		s.Require().NoError(err)
		s.Equal("cancelled", view.Status)
	})

	s.Run("no table assigned: nothing to release", func() {
		s.mockRepo.EXPECT().Cancel(gomock.Any(), "reserv-1").
			Return(&queries.ReservationView{ID: "reserv-1", Status: "cancelled"}, nil).Times(1)

		_, err := s.commands.Cancel(context.Background(), "reserv-1")
		s.NoError(err)
	})

	s.Run("unknown id maps to not found", func() {
		s.mockRepo.EXPECT().Cancel(gomock.Any(), "reserv-ghost").
			Return(nil, infra.WrapRepoErr("no row", errs.New("zero rows"), infra.KindNotFound)).Times(1)

		_, err := s.commands.Cancel(context.Background(), "reserv-ghost")
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("already cancelled maps to conflict, table not released again", func() {
		s.mockRepo.EXPECT().Cancel(gomock.Any(), "reserv-1").
			Return(nil, infra.WrapRepoErr("cancelled", errs.New("guard"), infra.KindConflict)).Times(1)

		_, err := s.commands.Cancel(context.Background(), "reserv-1")
		s.ErrorIs(err, commands.ErrReservationCancelled)
	})
}

// ================================================================================
// Full lifecycle
// ================================================================================

// Walks one reservation through the reference flow: create, allocator
// approves it onto a table, duplicate notification arrives, then cancel.
func (s *ReservationCommandsTestSuite) TestLifecycle() {
	ctx := context.Background()

	var id string
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *reservation.Reservation) (*queries.ReservationView, error) {
			id = rec.ID()
			return pendingView(rec.ID(), rec.CustomerName()), nil
		})
	s.mockAllocator.EXPECT().RequestAllocation(gomock.Any(), "Eve")

	result, err := s.commands.Create(ctx, "Eve")
	s.Require().NoError(err)
	s.Equal("pending", result.Reservation.Status)

	s.mockRepo.EXPECT().Approve(gomock.Any(), id, "2").
		Return(&queries.ReservationView{ID: id, Status: "confirmed", TableNumber: strPtr("2")}, nil)
	view, err := s.commands.ApplyConfirmation(ctx, commands.ConfirmationEvent{
		Source:        commands.SourceApproval,
		ReservationID: id,
		TableNumber:   strPtr("2"),
	})
	s.Require().NoError(err)
	s.Equal("confirmed", view.Status)

	// Duplicate notification for the same confirmation is a no-op upsert.
	s.mockRepo.EXPECT().UpsertConfirmed(gomock.Any(), gomock.Any()).
		Return(&queries.ReservationView{ID: id, Status: "confirmed", TableNumber: strPtr("2")}, nil)
	view, err = s.commands.ApplyConfirmation(ctx, commands.ConfirmationEvent{
		Source:        commands.SourceNotification,
		ReservationID: id,
		CustomerName:  "Eve",
		TableNumber:   strPtr("2"),
	})
	s.Require().NoError(err)
	s.Equal("confirmed", view.Status)

	s.mockRepo.EXPECT().Cancel(gomock.Any(), id).
		Return(&queries.ReservationView{ID: id, Status: "cancelled", TableNumber: strPtr("2")}, nil)
	s.mockAllocator.EXPECT().ReleaseTable("2")
	view, err = s.commands.Cancel(ctx, id)
	s.Require().NoError(err)
	s.Equal("cancelled", view.Status)
}
