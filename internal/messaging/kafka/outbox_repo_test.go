package kafka_test

import (
	"context"
	"testing"

	"github.com/EddieMjiyakho/Vacation-API/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     uuid.NewString(),
		AggregateType: "vacation_request",
		AggregateID:   uuid.NewString(),
		EventType:     "vacation_request_created",
		Topic:         "vacation.request.created.v1",
		Payload:       []byte(`{"total_days":5}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success inside caller transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		event := validEvent()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(
				event.ID, event.RequestID, event.AggregateType,
				event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)

		repo := kafka.NewOutboxRepository(db)
		assert.NoError(t, repo.WithTx(tx).Create(ctx, event))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative malformed event never reaches the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := kafka.NewOutboxRepository(db)

		event := validEvent()
		event.Topic = ""
		assert.Error(t, repo.Create(ctx, event))

		event = validEvent()
		event.Payload = nil
		assert.Error(t, repo.Create(ctx, event))

		event = validEvent()
		event.Status = "queued"
		assert.Error(t, repo.Create(ctx, event))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
