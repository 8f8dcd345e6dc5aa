package messaging_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/messaging"
	"github.com/folio-org/search-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	logger.Initialize(logger.Config{Debug: false})
	os.Exit(m.Run())
}

func TestPublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	js := mocks.NewMockJetStream(ctrl)
	publisher := messaging.NewJetStreamPublisher(js, adapter.NewJSON())

	event := &domain.ChangeEvent{
		ID:           "inst-1",
		Tenant:       "diku",
		ResourceName: domain.ResourceTypeInstance,
		Type:         domain.EventTypeUpdate,
		New:          map[string]interface{}{"title": "A Book"},
	}

	js.EXPECT().
		Publish(gomock.Any(), "search.diku.instance", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			assert.Contains(t, string(data), `"inst-1"`)
			// one option: the dedup message id
			assert.Len(t, opts, 1)
			return &jetstream.PubAck{Stream: "SEARCH", Sequence: 1}, nil
		})

	require.NoError(t, publisher.PublishEvent(context.Background(), "search.diku.instance", event))
}

func TestPublishEvent_MarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)
	jsonAdapter.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("bad payload"))

	publisher := messaging.NewJetStreamPublisher(js, jsonAdapter)

	err := publisher.PublishEvent(context.Background(), "search.diku.instance", &domain.ChangeEvent{ID: "inst-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal event inst-1")
}

func TestPublishEvent_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	js := mocks.NewMockJetStream(ctrl)
	js.EXPECT().
		Publish(gomock.Any(), "search.diku.instance", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("broker unavailable"))

	publisher := messaging.NewJetStreamPublisher(js, adapter.NewJSON())

	err := publisher.PublishEvent(context.Background(), "search.diku.instance", &domain.ChangeEvent{
		ID: "inst-1", Tenant: "diku", ResourceName: domain.ResourceTypeInstance, Type: domain.EventTypeDelete,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event inst-1")
}
