package impl

import (
	"context"
	"strings"
	"testing"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	mockRepo "tiffin/internal/mocks/repository"
	mockSvc "tiffin/internal/mocks/service"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageServiceFixtures struct {
	service     *messageService
	messageRepo *mockRepo.MockMessageRepository
	studentRepo *mockRepo.MockStudentRepository
	vendorRepo  *mockRepo.MockVendorRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	fx := messageServiceFixtures{
		messageRepo: mockRepo.NewMockMessageRepository(t),
		studentRepo: mockRepo.NewMockStudentRepository(t),
		vendorRepo:  mockRepo.NewMockVendorRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewMessageService(MessageServiceParams{
		MessageRepo: fx.messageRepo,
		StudentRepo: fx.studentRepo,
		VendorRepo:  fx.vendorRepo,
		Publisher:   fx.publisher,
	}).(*messageService)
	fx.service.now = fixedClock

	return fx
}

func threadMessage(studentID, vendorID, threadID uuid.UUID, direction entity.MessageDirection) *entity.Message {
	return &entity.Message{
		ID:        uuid.New(),
		ThreadID:  threadID,
		StudentID: studentID,
		VendorID:  vendorID,
		Direction: direction,
		Subject:   "Lunch timing",
		Body:      "Can you deliver at 1?",
		Priority:  entity.PriorityNormal,
		CreatedAt: testNow,
	}
}

func TestMessageService_SendMessage_StartThread(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	student := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}
	vendor := testVendor()

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.messageRepo.EXPECT().CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventMessageReceived &&
				e.RecipientID == vendor.ID.String() &&
				e.Title == "New message: Lunch timing" &&
				e.Important
		})).
		Return(nil)

	message, err := fx.service.SendMessage(ctx, student, usecase.SendMessageInput{
		CounterpartID: vendor.ID,
		Subject:       "Lunch timing",
		Body:          "Can you deliver at 1?",
		Priority:      entity.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.True(t, message.IsThreadStart)
	assert.NotEqual(t, uuid.Nil, message.ThreadID)
	assert.Equal(t, entity.StudentToVendor, message.Direction)
	assert.Equal(t, student.ID, message.StudentID)
	assert.Equal(t, vendor.ID, message.VendorID)
}

func TestMessageService_SendMessage_StartThreadNeedsSubject(t *testing.T) {
	fx := createTestMessageService(t)

	_, err := fx.service.SendMessage(context.Background(), entity.Principal{ID: uuid.New(), Role: entity.RoleVendor}, usecase.SendMessageInput{
		CounterpartID: uuid.New(),
		Body:          "hello",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMessageService_SendMessage_UnknownStudent(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	studentID := uuid.New()

	fx.studentRepo.EXPECT().FindStudentByID(ctx, studentID).Return(nil, errors.WithStack(repository.ErrStudentNotFound))

	_, err := fx.service.SendMessage(ctx, entity.Principal{ID: uuid.New(), Role: entity.RoleVendor}, usecase.SendMessageInput{
		CounterpartID: studentID,
		Subject:       "Bill",
		Body:          "Please pay",
	})
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestMessageService_SendMessage_Reply(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	studentID, vendorID, threadID := uuid.New(), uuid.New(), uuid.New()
	first := threadMessage(studentID, vendorID, threadID, entity.StudentToVendor)
	first.IsThreadStart = true
	vendor := entity.Principal{ID: vendorID, Role: entity.RoleVendor}
	body := strings.Repeat("x", 130)

	fx.messageRepo.EXPECT().FindThreadMessages(ctx, threadID).Return([]*entity.Message{first}, nil)
	fx.messageRepo.EXPECT().CreateMessage(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.RecipientID == studentID.String() && !e.Important && len(e.Message) == 123
		})).
		Return(nil)

	reply, err := fx.service.SendMessage(ctx, vendor, usecase.SendMessageInput{ThreadID: &threadID, Body: body})
	require.NoError(t, err)
	assert.False(t, reply.IsThreadStart)
	assert.Equal(t, "Lunch timing", reply.Subject)
	assert.Equal(t, entity.VendorToStudent, reply.Direction)
	assert.Equal(t, studentID, reply.StudentID)
}

func TestMessageService_SendMessage_ReplyToForeignThread(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	threadID := uuid.New()
	first := threadMessage(uuid.New(), uuid.New(), threadID, entity.StudentToVendor)

	fx.messageRepo.EXPECT().FindThreadMessages(ctx, threadID).Return([]*entity.Message{first}, nil)

	_, err := fx.service.SendMessage(ctx, entity.Principal{ID: uuid.New(), Role: entity.RoleVendor}, usecase.SendMessageInput{
		ThreadID: &threadID,
		Body:     "hi",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMessageService_ListThreads(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	studentID, vendorID := uuid.New(), uuid.New()
	student := entity.Principal{ID: studentID, Role: entity.RoleStudent}
	threadA, threadB := uuid.New(), uuid.New()

	latestA := threadMessage(studentID, vendorID, threadA, entity.VendorToStudent)
	latestA.Subject = ""
	startA := threadMessage(studentID, vendorID, threadA, entity.StudentToVendor)
	startA.IsThreadStart = true
	startA.Subject = "Rice quantity"
	onlyB := threadMessage(studentID, vendorID, threadB, entity.VendorToStudent)
	onlyB.IsRead = true

	fx.messageRepo.EXPECT().
		FindMessagesByParticipant(ctx, student).
		Return([]*entity.Message{latestA, onlyB, startA}, nil)

	threads, err := fx.service.ListThreads(ctx, student)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, threadA, threads[0].ThreadID)
	assert.Equal(t, "Rice quantity", threads[0].Subject)
	assert.Same(t, latestA, threads[0].LastMessage)
	assert.Equal(t, int64(1), threads[0].UnreadCount)
	assert.Zero(t, threads[1].UnreadCount)
}

func TestMessageService_GetThread_MarksIncomingRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	studentID, vendorID, threadID := uuid.New(), uuid.New(), uuid.New()
	outgoing := threadMessage(studentID, vendorID, threadID, entity.StudentToVendor)
	incoming := threadMessage(studentID, vendorID, threadID, entity.VendorToStudent)

	fx.messageRepo.EXPECT().FindThreadMessages(ctx, threadID).Return([]*entity.Message{outgoing, incoming}, nil)
	fx.messageRepo.EXPECT().MarkThreadRead(ctx, threadID, entity.VendorToStudent, testNow).Return(int64(1), nil)

	thread, err := fx.service.GetThread(ctx, entity.Principal{ID: studentID, Role: entity.RoleStudent}, threadID)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.False(t, thread[0].IsRead)
	assert.True(t, thread[1].IsRead)
	assert.Equal(t, testNow, *thread[1].ReadAt)
}

func TestMessageService_GetThread_NotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	threadID := uuid.New()

	fx.messageRepo.EXPECT().FindThreadMessages(ctx, threadID).Return(nil, nil)

	_, err := fx.service.GetThread(ctx, entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}, threadID)
	assert.ErrorIs(t, err, domainerrors.ErrThreadNotFound)
}

func TestMessageService_MarkMessageRead_OnlyRecipient(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	studentID, vendorID := uuid.New(), uuid.New()
	message := threadMessage(studentID, vendorID, uuid.New(), entity.StudentToVendor)

	fx.messageRepo.EXPECT().FindMessageByID(ctx, message.ID).Return(message, nil).Twice()
	fx.messageRepo.EXPECT().MarkMessageRead(ctx, message.ID, testNow).Return(nil).Once()

	err := fx.service.MarkMessageRead(ctx, entity.Principal{ID: studentID, Role: entity.RoleStudent}, message.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.service.MarkMessageRead(ctx, entity.Principal{ID: vendorID, Role: entity.RoleVendor}, message.ID)
	require.NoError(t, err)
}
