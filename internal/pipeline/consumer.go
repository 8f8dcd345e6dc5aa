package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/messaging"
	"github.com/folio-org/search-indexer/internal/preprocess"
	"github.com/folio-org/search-indexer/internal/topics"
)

// Config holds the configuration for the event consumer
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	FilterSubjects []string
	ConnectionName string
	MaxReconnects  int
	ReconnectWait  time.Duration
	AckWaitTimeout time.Duration
	MaxDeliver     int
	// BatchSize is the number of messages accumulated before a batch is
	// processed; FlushInterval bounds how long a partial batch may wait
	BatchSize     int
	FlushInterval time.Duration
	// TenantWorkers bounds how many tenants of one batch are processed in
	// parallel. Within a tenant processing stays sequential to preserve
	// per-key ordering.
	TenantWorkers int
}

// Consumer defines the interface for the event consumer
type Consumer interface {
	// Run starts consuming until the context is canceled
	Run(ctx context.Context) error
	// Close closes the consumer and cleans up resources
	Close()
}

type consumer struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	json      adapter.JSON
	clock     adapter.Clock
	registry  *preprocess.Registry
	filters   *FilterChain
	stager    *InstanceStager
	publisher messaging.Publisher
	config    Config
}

// NewConsumer connects to the broker and creates the event consumer
func NewConsumer(
	cfg Config,
	natsJS adapter.NatsJetStream,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
	registry *preprocess.Registry,
	filters *FilterChain,
	stager *InstanceStager,
) (Consumer, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &consumer{
		nc:        nc,
		js:        js,
		json:      jsonAdapter,
		clock:     clock,
		registry:  registry,
		filters:   filters,
		stager:    stager,
		publisher: messaging.NewJetStreamPublisher(js, jsonAdapter),
		config:    cfg,
	}, nil
}

// batchItem pairs a broker message with its decoded record so the batch
// pipeline can acknowledge each message individually
type batchItem struct {
	msg    adapter.Message
	record *domain.Record
}

// Run starts consuming until the context is canceled. Messages are collected
// into batches; each batch runs deduplication, filtering and per-tenant
// processing before the next batch starts.
func (c *consumer) Run(ctx context.Context) error {
	logger.Info("Starting event consumer",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName),
	)

	consumerConfig := jetstream.ConsumerConfig{
		Durable:        c.config.ConsumerName,
		AckPolicy:      jetstream.AckExplicitPolicy,
		AckWait:        c.config.AckWaitTimeout,
		MaxDeliver:     c.config.MaxDeliver,
		FilterSubjects: c.config.FilterSubjects,
	}

	cons, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := cons.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, c.config.BatchSize)
	sub, err := cons.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	batch := make([]*batchItem, 0, c.config.BatchSize)
	flush := time.NewTicker(c.config.FlushInterval)
	defer flush.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event consumer")
			return ctx.Err()
		case msg := <-msgChan:
			if item := c.decode(ctx, msg); item != nil {
				batch = append(batch, item)
			}
			if len(batch) >= c.config.BatchSize {
				c.processBatch(ctx, batch)
				batch = make([]*batchItem, 0, c.config.BatchSize)
			}
		case <-flush.C:
			if len(batch) > 0 {
				c.processBatch(ctx, batch)
				batch = make([]*batchItem, 0, c.config.BatchSize)
			}
		}
	}
}

// decode parses one message into a batch item. Unparseable and malformed
// payloads are terminated at the boundary so they are never redelivered.
func (c *consumer) decode(ctx context.Context, msg adapter.Message) *batchItem {
	var event domain.ChangeEvent
	if err := c.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"), zap.String("subject", msg.Subject()))
		c.term(msg)
		return nil
	}
	if !event.Valid() {
		logger.WarnCtx(ctx, "Dropping event without identity fields", zap.String("subject", msg.Subject()))
		c.term(msg)
		return nil
	}

	// The topic alone decides the resource type; the payload's resourceName
	// is never trusted. Republished sub-events inherit their source's
	// resourceName, so a payload fallback would feed derived events back
	// through their own preprocessor. Unknown topics route as inert rather
	// than being dropped.
	event.ResourceName = topics.Resolve(msg.Subject())

	timestamp := c.clock.Now().UnixMilli()
	if md, err := msg.Metadata(); err == nil {
		timestamp = md.Timestamp.UnixMilli()
	}

	return &batchItem{
		msg: msg,
		record: &domain.Record{
			Topic:     msg.Subject(),
			Key:       event.ID,
			Timestamp: timestamp,
			Event:     &event,
		},
	}
}

// processBatch runs one batch through deduplication, the filter chain, and
// per-tenant processing. Tenants are isolated, so the batch's tenant groups
// run in parallel on a bounded pool.
func (c *consumer) processBatch(ctx context.Context, batch []*batchItem) {
	records := make([]*domain.Record, len(batch))
	for i, item := range batch {
		records[i] = item.record
	}
	kept := make(map[*domain.Record]struct{})
	for _, rec := range Deduplicate(records) {
		kept[rec] = struct{}{}
	}

	byTenant := make(map[string][]*batchItem)
	for _, item := range batch {
		if _, ok := kept[item.record]; !ok {
			// superseded by a newer record for the same key
			c.ack(item.msg)
			continue
		}

		filtered, err := c.filters.Filtered(ctx, item.record)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Record filter failed"), zap.String("key", item.record.Key))
			c.nak(item.msg)
			continue
		}
		if filtered {
			c.ack(item.msg)
			continue
		}

		tenant := item.record.Event.Tenant
		byTenant[tenant] = append(byTenant[tenant], item)
	}

	if len(byTenant) == 0 {
		return
	}

	pool := pond.NewPool(c.config.TenantWorkers, pond.WithContext(ctx))
	for tenant, items := range byTenant {
		pool.Submit(func() {
			c.processTenant(ctx, tenant, items)
		})
	}
	pool.StopAndWait()
}

// processTenant processes one tenant's records sequentially in batch order
func (c *consumer) processTenant(ctx context.Context, tenant string, items []*batchItem) {
	var instanceEvents []*domain.ChangeEvent
	var instanceItems []*batchItem

	for _, item := range items {
		ev := item.record.Event
		if ev.ResourceName == domain.ResourceTypeUnknown {
			logger.DebugCtx(ctx, "Skipping record from unknown topic", zap.String("topic", item.record.Topic))
			c.ack(item.msg)
			continue
		}

		subs, err := c.registry.PrepareEvents(ctx, ev)
		if err != nil {
			if domain.IsTenantNotInitialized(err) {
				logger.WarnCtx(ctx, "Tenant not initialized, redelivering",
					zap.String("tenant", tenant), zap.String("key", item.record.Key))
			} else {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to prepare events"),
					zap.String("tenant", tenant), zap.String("key", item.record.Key))
			}
			c.nak(item.msg)
			continue
		}

		if err := c.publishSubEvents(ctx, ev, subs); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to publish sub-events"),
				zap.String("tenant", tenant), zap.String("key", item.record.Key))
			c.nak(item.msg)
			continue
		}

		if ev.ResourceName == domain.ResourceTypeInstance {
			// acknowledged after the tenant's staging write below
			instanceEvents = append(instanceEvents, ev)
			instanceItems = append(instanceItems, item)
			continue
		}
		c.ack(item.msg)
	}

	if len(instanceEvents) == 0 {
		return
	}
	if err := c.stager.Stage(ctx, tenant, instanceEvents); err != nil {
		if domain.IsTenantNotInitialized(err) {
			logger.WarnCtx(ctx, "Tenant not initialized, redelivering", zap.String("tenant", tenant))
		} else {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to stage instances"), zap.String("tenant", tenant))
		}
		for _, item := range instanceItems {
			c.nak(item.msg)
		}
		return
	}
	for _, item := range instanceItems {
		c.ack(item.msg)
	}
}

// publishSubEvents republishes derived sub-events onto the search subjects so
// downstream indexing consumes them independently of the source event
func (c *consumer) publishSubEvents(ctx context.Context, source *domain.ChangeEvent, subs []*domain.ChangeEvent) error {
	for _, sub := range subs {
		if sub.ID == source.ID {
			continue
		}
		subject := "search." + string(source.ResourceName)
		if err := c.publisher.PublishEvent(ctx, subject, sub); err != nil {
			return err
		}
	}
	return nil
}

func (c *consumer) ack(msg adapter.Message) {
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ack message"))
	}
}

func (c *consumer) nak(msg adapter.Message) {
	if err := msg.Nak(); err != nil {
		logger.Error(err, zap.String("message", "Failed to nak message"))
	}
}

func (c *consumer) term(msg adapter.Message) {
	if err := msg.Term(); err != nil {
		logger.Error(err, zap.String("message", "Failed to terminate message"))
	}
}

// Close closes the consumer and cleans up resources
func (c *consumer) Close() {
	c.nc.Close()
}
