//go:build integration
// +build integration

package service_test

import (
	"sync"
	"testing"
	"time"

	"brokerage-rotation-backend/internal/config"
	"brokerage-rotation-backend/internal/database/models"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/repository"
	"brokerage-rotation-backend/internal/service"
	"brokerage-rotation-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RotationServiceTestSuite exercises the rotation engine, the fairness rules
// and the exception layer against a real Postgres schema.
type RotationServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	groupRepo      *repository.RotationGroupRepository
	partRepo       *repository.ParticipantRepository
	queueRepo      *repository.QueuePositionRepository
	assignRepo     *repository.AssignmentRepository
	creditRepo     *repository.FairnessCreditRepository
	forfeitureRepo *repository.ForfeitureRepository
	vacationRepo   *repository.VacationAllocationRepository
	auditRepo      *repository.AuditRepository

	rules      *config.FairnessRules
	fairness   *service.FairnessService
	roster     *service.RosterService
	queue      *service.QueueService
	exceptions *service.ExceptionService
	reconciler *service.ReconcilerService
}

// SetupSuite runs before all tests in the suite
func (suite *RotationServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	suite.groupRepo = repository.NewRotationGroupRepository(db)
	suite.partRepo = repository.NewParticipantRepository(db)
	suite.queueRepo = repository.NewQueuePositionRepository(db)
	suite.assignRepo = repository.NewAssignmentRepository(db)
	suite.creditRepo = repository.NewFairnessCreditRepository(db)
	suite.forfeitureRepo = repository.NewForfeitureRepository(db)
	suite.vacationRepo = repository.NewVacationAllocationRepository(db)
	suite.auditRepo = repository.NewAuditRepository(db)

	rosterRepo := repository.NewRosterEntryRepository(db)
	v := validator.New()
	locks := service.NewGroupLocks()

	suite.rules = config.DefaultFairnessRules()
	suite.fairness = service.NewFairnessService(suite.partRepo, suite.vacationRepo, suite.forfeitureRepo, suite.assignRepo, suite.rules)
	suite.roster = service.NewRosterService(db, suite.groupRepo, suite.partRepo, rosterRepo, suite.queueRepo, locks)
	suite.queue = service.NewQueueService(db, suite.groupRepo, suite.queueRepo, suite.assignRepo, suite.creditRepo, suite.auditRepo, suite.fairness, locks, v)
	suite.exceptions = service.NewExceptionService(db, suite.assignRepo, suite.partRepo, suite.creditRepo, suite.vacationRepo, suite.auditRepo, suite.fairness, v)
	suite.reconciler = service.NewReconcilerService(db, suite.groupRepo, suite.roster, suite.auditRepo, locks)
}

// TearDownSuite runs after all tests in the suite
func (suite *RotationServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RotationServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	*suite.rules = *config.DefaultFairnessRules()
}

// TearDownTest runs after each test
func (suite *RotationServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedGroup creates an active group with n long-tenured members
func (suite *RotationServiceTestSuite) seedGroup(n int) (*models.RotationGroup, []*models.Participant) {
	group := suite.factories.RotationGroup.Create()
	suite.Require().NoError(suite.groupRepo.Create(group))

	participants := make([]*models.Participant, n)
	for i := 0; i < n; i++ {
		participant := suite.factories.Participant.WithHiredAt(time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC))
		suite.Require().NoError(suite.partRepo.Create(participant))
		suite.Require().NoError(suite.roster.AddMember(group.ID, participant.ID))
		participants[i] = participant
	}
	return group, participants
}

// assignNext picks the next eligible member and records the assignment
func (suite *RotationServiceTestSuite) assignNext(groupID uuid.UUID, date time.Time) uuid.UUID {
	pick, err := suite.queue.NextEligible(groupID, nil, date)
	suite.Require().NoError(err)

	_, err = suite.queue.RecordAssignment(&service.RecordAssignmentRequest{
		GroupID:         groupID,
		ParticipantID:   pick.ParticipantID,
		Date:            date,
		Shift:           models.ShiftFullDay,
		ConsumeCreditID: pick.CreditID,
		Actor:           "test",
	})
	suite.Require().NoError(err)
	return pick.ParticipantID
}

// TestRotationNoRepeatBeforeExhaustion runs a full cycle and checks nobody is
// picked twice before everyone else has had a turn.
func (suite *RotationServiceTestSuite) TestRotationNoRepeatBeforeExhaustion() {
	group, participants := suite.seedGroup(4)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 4; i++ {
		picked := suite.assignNext(group.ID, date.AddDate(0, 0, i))
		suite.False(seen[picked], "participant picked twice before exhaustion")
		seen[picked] = true
	}
	suite.Len(seen, 4)

	// The cycle restarts with the first assignee.
	first := participants[0].ID
	again := suite.assignNext(group.ID, date.AddDate(0, 0, 4))
	suite.Equal(first, again)
}

// TestQueueStaysDense checks positions are 0..n-1 after every operation
func (suite *RotationServiceTestSuite) TestQueueStaysDense() {
	group, participants := suite.seedGroup(5)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	suite.assignNext(group.ID, date)
	suite.Require().NoError(suite.roster.RemoveMember(group.ID, participants[2].ID))
	suite.assignNext(group.ID, date.AddDate(0, 0, 1))

	positions, err := suite.queueRepo.GetOrderedByGroup(group.ID)
	suite.NoError(err)
	suite.Len(positions, 4)
	for i, position := range positions {
		suite.Equal(i, position.Position)
	}
}

// TestAssignmentRetryIsIdempotent replays the same assignment and checks the
// queue does not advance a second time.
func (suite *RotationServiceTestSuite) TestAssignmentRetryIsIdempotent() {
	group, participants := suite.seedGroup(3)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	req := &service.RecordAssignmentRequest{
		GroupID:       group.ID,
		ParticipantID: participants[0].ID,
		Date:          date,
		Shift:         models.ShiftMorning,
		Actor:         "test",
	}

	first, err := suite.queue.RecordAssignment(req)
	suite.Require().NoError(err)
	suite.False(first.AlreadyApplied)

	retry, err := suite.queue.RecordAssignment(req)
	suite.Require().NoError(err)
	suite.True(retry.AlreadyApplied)
	suite.Equal(first.ID, retry.ID)

	// The assignee moved to the back exactly once.
	position, err := suite.queueRepo.GetByGroupAndParticipant(group.ID, participants[0].ID)
	suite.NoError(err)
	suite.Equal(2, position.Position)
	suite.Equal(1, position.TimesAssigned)
}

// TestBulkAssignmentsTolerateReplayedItem replays an applied assignment inside
// a bulk batch and checks the rest of the batch still commits. The replayed
// item must not abort the group's transaction.
func (suite *RotationServiceTestSuite) TestBulkAssignmentsTolerateReplayedItem() {
	group, participants := suite.seedGroup(3)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	_, err := suite.queue.RecordAssignment(&service.RecordAssignmentRequest{
		GroupID:       group.ID,
		ParticipantID: participants[0].ID,
		Date:          date,
		Shift:         models.ShiftFullDay,
		Actor:         "test",
	})
	suite.Require().NoError(err)

	items := []service.BulkAssignmentItem{
		{GroupID: group.ID, ParticipantID: participants[0].ID, Date: date, Shift: models.ShiftFullDay},
		{GroupID: group.ID, ParticipantID: participants[1].ID, Date: date.AddDate(0, 0, 1), Shift: models.ShiftFullDay},
	}
	result, err := suite.queue.RecordBulkAssignments(items, "test")
	suite.Require().NoError(err)
	suite.Equal(2, result.Updated)
	suite.Len(result.FailedGroups, 0)

	// The fresh item landed despite the replay ahead of it.
	assignments, err := suite.assignRepo.GetByGroupAndPeriod(group.ID, date, date.AddDate(0, 0, 1))
	suite.NoError(err)
	suite.Len(assignments, 2)

	// The replayed item did not advance the queue a second time.
	position, err := suite.queueRepo.GetByGroupAndParticipant(group.ID, participants[0].ID)
	suite.NoError(err)
	suite.Equal(1, position.TimesAssigned)
}

// TestFairDistributionOffIgnoresQueueOrder turns the fair distribution rule
// off and checks the pick follows roster join order instead of the rotation
// queue, so the member who was just assigned can be picked again.
func (suite *RotationServiceTestSuite) TestFairDistributionOffIgnoresQueueOrder() {
	group, participants := suite.seedGroup(3)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	first := suite.assignNext(group.ID, date)
	suite.Equal(participants[0].ID, first)

	// With rotation on, the assignee is at the back and is not picked.
	pick, err := suite.queue.NextEligible(group.ID, nil, date.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Equal(participants[1].ID, pick.ParticipantID)

	// With rotation off, the earliest joiner wins regardless of the queue.
	suite.rules.FairDistribution = false
	pick, err = suite.queue.NextEligible(group.ID, nil, date.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Equal(participants[0].ID, pick.ParticipantID)
}

// TestReconcileIsIdempotent replays a reconciliation and expects a no-op
func (suite *RotationServiceTestSuite) TestReconcileIsIdempotent() {
	group, participants := suite.seedGroup(3)

	members := []uuid.UUID{participants[0].ID, participants[1].ID, participants[2].ID}
	result, err := suite.reconciler.Reconcile(group.ID, members, "test")
	suite.NoError(err)
	suite.Equal(0, result.Added)
	suite.Equal(0, result.Removed)

	// Drop one, add a new hire: one removal, one append at the back.
	newcomer := suite.factories.Participant.WithHiredAt(time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.partRepo.Create(newcomer))

	result, err = suite.reconciler.Reconcile(group.ID, []uuid.UUID{participants[0].ID, participants[2].ID, newcomer.ID}, "test")
	suite.NoError(err)
	suite.Equal(1, result.Added)
	suite.Equal(1, result.Removed)

	positions, err := suite.queueRepo.GetOrderedByGroup(group.ID)
	suite.NoError(err)
	suite.Len(positions, 3)
	suite.Equal(participants[0].ID, positions[0].ParticipantID)
	suite.Equal(participants[2].ID, positions[1].ParticipantID)
	suite.Equal(newcomer.ID, positions[2].ParticipantID)
}

// TestNextEligibleSkipsShortTenure checks the minimum tenure rule
func (suite *RotationServiceTestSuite) TestNextEligibleSkipsShortTenure() {
	group, participants := suite.seedGroup(2)

	newHire := suite.factories.Participant.WithHiredAt(time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.partRepo.Create(newHire))
	suite.Require().NoError(suite.roster.AddMember(group.ID, newHire.ID))

	// Drain the incumbents so the new hire is at the head of the queue.
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	suite.assignNext(group.ID, date)
	suite.assignNext(group.ID, date.AddDate(0, 0, 1))

	pick, err := suite.queue.NextEligible(group.ID, nil, date.AddDate(0, 0, 2))
	suite.NoError(err)
	suite.NotEqual(newHire.ID, pick.ParticipantID)
	suite.Equal(participants[0].ID, pick.ParticipantID)
}

// TestVacationMajorityBlocksMonth checks the split vacation rule: only the
// month holding the majority of the vacation days blocks the draw.
func (suite *RotationServiceTestSuite) TestVacationMajorityBlocksMonth() {
	group, participants := suite.seedGroup(2)
	onVacation := participants[0]

	// Aug 25 to Sep 3: 7 days in August, 3 in September.
	vacation := suite.factories.VacationAllocation.Create(
		onVacation.ID,
		time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(suite.vacationRepo.Create(vacation))

	august := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	pick, err := suite.queue.NextEligible(group.ID, nil, august)
	suite.NoError(err)
	suite.Equal(participants[1].ID, pick.ParticipantID)

	september := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	pick, err = suite.queue.NextEligible(group.ID, nil, september)
	suite.NoError(err)
	suite.Equal(onVacation.ID, pick.ParticipantID)
}

// TestForfeitureBlocksPeriod checks a recorded forfeiture skips the period
func (suite *RotationServiceTestSuite) TestForfeitureBlocksPeriod() {
	group, participants := suite.seedGroup(2)

	forfeiture := suite.factories.Forfeiture.Create(
		participants[0].ID,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(suite.forfeitureRepo.Create(forfeiture))

	pick, err := suite.queue.NextEligible(group.ID, nil, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)
	suite.Equal(participants[1].ID, pick.ParticipantID)

	// The next period is unaffected.
	pick, err = suite.queue.NextEligible(group.ID, nil, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)
	suite.Equal(participants[0].ID, pick.ParticipantID)
}

// TestNoEligibleCandidate checks the engine reports exhaustion
func (suite *RotationServiceTestSuite) TestNoEligibleCandidate() {
	group, participants := suite.seedGroup(1)

	forfeiture := suite.factories.Forfeiture.Create(
		participants[0].ID,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(suite.forfeitureRepo.Create(forfeiture))

	_, err := suite.queue.NextEligible(group.ID, nil, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	suite.ErrorIs(err, apperrors.ErrNoEligibleCandidate)
}

// TestCreditHolderJumpsAhead checks an owed turn is redeemed before the
// regular order, and a credit cannot be spent twice.
func (suite *RotationServiceTestSuite) TestCreditHolderJumpsAhead() {
	group, participants := suite.seedGroup(3)
	owed := participants[2]

	credit := suite.factories.FairnessCredit.Create(owed.ID, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.creditRepo.Create(credit))

	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	pick, err := suite.queue.NextEligible(group.ID, nil, date)
	suite.NoError(err)
	suite.Equal(owed.ID, pick.ParticipantID)
	suite.Require().NotNil(pick.CreditID)
	suite.Equal(credit.ID, *pick.CreditID)

	_, err = suite.queue.RecordAssignment(&service.RecordAssignmentRequest{
		GroupID:         group.ID,
		ParticipantID:   owed.ID,
		Date:            date,
		Shift:           models.ShiftFullDay,
		ConsumeCreditID: pick.CreditID,
		Actor:           "test",
	})
	suite.Require().NoError(err)

	stored, err := suite.creditRepo.GetByID(credit.ID)
	suite.NoError(err)
	suite.Equal(models.CreditStatusUsed, stored.Status)

	// A spent credit cannot back a second assignment.
	_, err = suite.queue.RecordAssignment(&service.RecordAssignmentRequest{
		GroupID:         group.ID,
		ParticipantID:   participants[0].ID,
		Date:            date.AddDate(0, 0, 1),
		Shift:           models.ShiftFullDay,
		ConsumeCreditID: &credit.ID,
		Actor:           "test",
	})
	suite.ErrorIs(err, apperrors.ErrCreditAlreadyUsed)

	// With the credit gone, the regular order resumes at the head.
	pick, err = suite.queue.NextEligible(group.ID, nil, date.AddDate(0, 0, 2))
	suite.NoError(err)
	suite.Equal(participants[0].ID, pick.ParticipantID)
	suite.Nil(pick.CreditID)
}

// TestMoveAssignmentMovesPairedRelative checks the pairing side-effect of a move
func (suite *RotationServiceTestSuite) TestMoveAssignmentMovesPairedRelative() {
	group, participants := suite.seedGroup(2)
	a, b := participants[0], participants[1]

	a.LinkedParticipantID = &b.ID
	suite.Require().NoError(suite.partRepo.Update(a))

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	assignmentA := suite.factories.Assignment.Create(group.ID, a.ID, date)
	assignmentB := suite.factories.Assignment.Create(group.ID, b.ID, date)
	suite.Require().NoError(suite.assignRepo.Create(assignmentA))
	suite.Require().NoError(suite.assignRepo.Create(assignmentB))

	newDate := time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)
	moved, err := suite.exceptions.MoveAssignment(assignmentA.ID, &service.MoveAssignmentRequest{
		NewDate: newDate,
		Reason:  "branch closure",
		Actor:   "test",
	})
	suite.Require().NoError(err)
	suite.Equal(newDate.Format(models.DateOnly), moved.Date)
	suite.True(moved.IsException)

	// The relative's assignment followed to the same date.
	relative, err := suite.assignRepo.GetByID(assignmentB.ID)
	suite.NoError(err)
	suite.True(relative.Date.Equal(newDate))
	suite.True(relative.IsException)
}

// TestSwapRejectsPairingInconsistency checks the one-sided pairing guard
func (suite *RotationServiceTestSuite) TestSwapRejectsPairingInconsistency() {
	group, participants := suite.seedGroup(3)
	a, b, relative := participants[0], participants[1], participants[2]

	a.LinkedParticipantID = &relative.ID
	suite.Require().NoError(suite.partRepo.Update(a))

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	assignmentA := suite.factories.Assignment.Create(group.ID, a.ID, date)
	assignmentRel := suite.factories.Assignment.Create(group.ID, relative.ID, date)
	assignmentB := suite.factories.Assignment.Create(group.ID, b.ID, date.AddDate(0, 0, 5))
	suite.Require().NoError(suite.assignRepo.Create(assignmentA))
	suite.Require().NoError(suite.assignRepo.Create(assignmentRel))
	suite.Require().NoError(suite.assignRepo.Create(assignmentB))

	err := suite.exceptions.SwapAssignments(assignmentA.ID, assignmentB.ID, "test")
	suite.ErrorIs(err, apperrors.ErrPairingInconsistency)

	// Nothing moved.
	stored, err := suite.assignRepo.GetByID(assignmentA.ID)
	suite.NoError(err)
	suite.True(stored.Date.Equal(date))
}

// TestSwapAssignments checks a plain swap exchanges dates on both sides
func (suite *RotationServiceTestSuite) TestSwapAssignments() {
	group, participants := suite.seedGroup(2)

	dateA := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	dateB := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	assignmentA := suite.factories.Assignment.Create(group.ID, participants[0].ID, dateA)
	assignmentB := suite.factories.Assignment.Create(group.ID, participants[1].ID, dateB)
	suite.Require().NoError(suite.assignRepo.Create(assignmentA))
	suite.Require().NoError(suite.assignRepo.Create(assignmentB))

	suite.Require().NoError(suite.exceptions.SwapAssignments(assignmentA.ID, assignmentB.ID, "test"))

	storedA, err := suite.assignRepo.GetByID(assignmentA.ID)
	suite.NoError(err)
	storedB, err := suite.assignRepo.GetByID(assignmentB.ID)
	suite.NoError(err)
	suite.True(storedA.Date.Equal(dateB))
	suite.True(storedB.Date.Equal(dateA))
	suite.True(storedA.IsException)
	suite.True(storedB.IsException)
}

// TestRemoveAssignmentGrantsCredit checks the one-day compensation path
func (suite *RotationServiceTestSuite) TestRemoveAssignmentGrantsCredit() {
	group, participants := suite.seedGroup(1)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	assignment := suite.factories.Assignment.Create(group.ID, participants[0].ID, date)
	suite.Require().NoError(suite.assignRepo.Create(assignment))

	err := suite.exceptions.RemoveAssignment(assignment.ID, &service.RemoveAssignmentRequest{
		Justification: "assigned in error",
		GrantCredit:   true,
		Actor:         "test",
	})
	suite.Require().NoError(err)

	_, err = suite.assignRepo.GetByID(assignment.ID)
	suite.Error(err)

	credits, err := suite.creditRepo.GetAvailableByParticipant(participants[0].ID)
	suite.NoError(err)
	suite.Require().Len(credits, 1)
	suite.Equal(1, credits[0].Days)
	suite.True(credits[0].OriginDate.Equal(date))

	// Both the removal and the grant are on the audit log.
	records, _, err := suite.auditRepo.GetByEntity("assignment", assignment.ID, 10, 0)
	suite.NoError(err)
	suite.Len(records, 1)
	suite.Equal(models.AuditActionRemoveAssignment, records[0].Action)
}

// TestReduceAllocation checks day conservation on a vacation reduction
func (suite *RotationServiceTestSuite) TestReduceAllocation() {
	_, participants := suite.seedGroup(1)

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC) // 10 days
	allocation := suite.factories.VacationAllocation.Create(participants[0].ID, start, end)
	suite.Require().NoError(suite.vacationRepo.Create(allocation))

	err := suite.exceptions.ReduceAllocation(allocation.ID, &service.ReduceAllocationRequest{
		DaysToRemove:  3,
		Justification: "recalled to cover staffing gap",
		Actor:         "test",
	})
	suite.Require().NoError(err)

	stored, err := suite.vacationRepo.GetByID(allocation.ID)
	suite.NoError(err)
	suite.Equal(7, stored.Days())

	credits, err := suite.creditRepo.GetAvailableByParticipant(participants[0].ID)
	suite.NoError(err)
	suite.Require().Len(credits, 1)
	suite.Equal(3, credits[0].Days)

	// Removing everything that is left is rejected.
	err = suite.exceptions.ReduceAllocation(allocation.ID, &service.ReduceAllocationRequest{
		DaysToRemove:  7,
		Justification: "full cancellation",
		Actor:         "test",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidReduction)
}

// TestBulkAssignmentsFailPerGroup checks a failing group's batch rolls back
// without touching the other groups.
func (suite *RotationServiceTestSuite) TestBulkAssignmentsFailPerGroup() {
	groupA, membersA := suite.seedGroup(2)
	groupB, membersB := suite.seedGroup(2)
	outsider := suite.factories.Participant.WithHiredAt(time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.partRepo.Create(outsider))

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	items := []service.BulkAssignmentItem{
		{GroupID: groupA.ID, ParticipantID: membersA[0].ID, Date: date, Shift: models.ShiftFullDay},
		{GroupID: groupB.ID, ParticipantID: membersB[0].ID, Date: date, Shift: models.ShiftFullDay},
		{GroupID: groupB.ID, ParticipantID: outsider.ID, Date: date.AddDate(0, 0, 1), Shift: models.ShiftFullDay},
	}

	result, err := suite.queue.RecordBulkAssignments(items, "test")
	suite.Require().NoError(err)
	suite.Equal(1, result.Updated)
	suite.Require().Len(result.FailedGroups, 1)
	suite.Equal(groupB.ID, result.FailedGroups[0])

	// Group B rolled back entirely, including the valid first item.
	assignmentsB, err := suite.assignRepo.GetByGroupAndPeriod(groupB.ID, date.AddDate(0, 0, -1), date.AddDate(0, 0, 2))
	suite.NoError(err)
	suite.Len(assignmentsB, 0)

	assignmentsA, err := suite.assignRepo.GetByGroupAndPeriod(groupA.ID, date.AddDate(0, 0, -1), date.AddDate(0, 0, 2))
	suite.NoError(err)
	suite.Len(assignmentsA, 1)
}

// TestConcurrentRosterAndQueueMutations hammers one group with concurrent
// membership changes and assignments and checks the positions come out dense
// and unique. Roster changes, assignments and reconciliations share one lock
// registry, so none of these calls may interleave on the same group.
func (suite *RotationServiceTestSuite) TestConcurrentRosterAndQueueMutations() {
	group, participants := suite.seedGroup(3)

	extraA := suite.factories.Participant.WithHiredAt(time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC))
	extraB := suite.factories.Participant.WithHiredAt(time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.partRepo.Create(extraA))
	suite.Require().NoError(suite.partRepo.Create(extraB))

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	var wg sync.WaitGroup
	run := func(f func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			suite.NoError(f())
		}()
	}

	run(func() error { return suite.roster.AddMember(group.ID, extraA.ID) })
	run(func() error { return suite.roster.AddMember(group.ID, extraB.ID) })
	run(func() error { return suite.roster.RemoveMember(group.ID, participants[2].ID) })
	run(func() error {
		_, err := suite.queue.RecordAssignment(&service.RecordAssignmentRequest{
			GroupID:       group.ID,
			ParticipantID: participants[0].ID,
			Date:          date,
			Shift:         models.ShiftFullDay,
			Actor:         "test",
		})
		return err
	})
	run(func() error {
		_, err := suite.queue.RecordAssignment(&service.RecordAssignmentRequest{
			GroupID:       group.ID,
			ParticipantID: participants[1].ID,
			Date:          date.AddDate(0, 0, 1),
			Shift:         models.ShiftFullDay,
			Actor:         "test",
		})
		return err
	})
	wg.Wait()

	positions, err := suite.queueRepo.GetOrderedByGroup(group.ID)
	suite.NoError(err)
	suite.Require().Len(positions, 4)
	for i, position := range positions {
		suite.Equal(i, position.Position)
	}
}

// TestRotationServiceTestSuite runs the test suite
func TestRotationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RotationServiceTestSuite))
}
