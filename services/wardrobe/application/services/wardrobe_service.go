package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/logger"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
	domainevents "github.com/ghuser/wardrobe/services/wardrobe/domain/events"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/repositories"
	domainsvcs "github.com/ghuser/wardrobe/services/wardrobe/domain/services"
)

const eventVersion = 1

// Publisher is the subset of events.EventBus the wardrobe publishes through.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// WardrobeService owns the wardrobe collection persisted in a single slot.
// Every mutation rewrites the whole collection. mu serializes calls within
// this process only; concurrent writers in other processes still race and
// the last write wins.
type WardrobeService struct {
	mu    sync.Mutex
	slot  repositories.Slot
	bus   Publisher
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

// Option customizes a WardrobeService.
type Option func(*WardrobeService)

// WithClock overrides the creation-time source.
func WithClock(now func() time.Time) Option {
	return func(s *WardrobeService) { s.now = now }
}

// WithIDGenerator overrides the item ID source.
func WithIDGenerator(newID func() string) Option {
	return func(s *WardrobeService) { s.newID = newID }
}

// WithPublisher publishes a WardrobeChangedEvent after each persisted mutation.
func WithPublisher(bus Publisher) Option {
	return func(s *WardrobeService) { s.bus = bus }
}

// NewWardrobeService returns a WardrobeService over slot.
func NewWardrobeService(slot repositories.Slot, log logger.Logger, opts ...Option) *WardrobeService {
	s := &WardrobeService{
		slot:  slot,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAll returns every stored item in persisted order. An empty or
// malformed slot yields an empty collection.
func (s *WardrobeService) GetAll(ctx context.Context) ([]models.ClothingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add stores a new item built from d with a fresh ID and creation time.
func (s *WardrobeService) Add(ctx context.Context, d models.ItemDraft) (models.ClothingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.NewClothingItem(d, s.newID(), s.now())
	if err := domainsvcs.ValidateItem(item); err != nil {
		return models.ClothingItem{}, fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidClothingItem, err)
	}

	items, err := s.load(ctx)
	if err != nil {
		return models.ClothingItem{}, err
	}
	if err := s.save(ctx, append(items, item)); err != nil {
		return models.ClothingItem{}, err
	}

	s.publish(ctx, domainevents.KindAdded, item)
	return item, nil
}

// Update merges patch into the item with the given id. Returns
// ErrItemNotFound, leaving the slot untouched, when no such item exists.
// An empty patch returns the stored item without rewriting the slot.
func (s *WardrobeService) Update(ctx context.Context, id string, patch models.ItemPatch) (models.ClothingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return models.ClothingItem{}, err
	}
	i := slices.IndexFunc(items, func(it models.ClothingItem) bool { return it.ID == id })
	if i < 0 {
		return models.ClothingItem{}, wardrobedomain.ErrItemNotFound
	}
	if patch.IsEmpty() {
		return items[i], nil
	}

	merged := patch.Apply(items[i])
	if err := domainsvcs.ValidateItem(merged); err != nil {
		return models.ClothingItem{}, fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidClothingItem, err)
	}
	items[i] = merged
	if err := s.save(ctx, items); err != nil {
		return models.ClothingItem{}, err
	}

	s.publish(ctx, domainevents.KindUpdated, merged)
	return merged, nil
}

// Delete removes the item with the given id and reports whether one was
// removed. The slot is only rewritten on removal.
func (s *WardrobeService) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	i := slices.IndexFunc(items, func(it models.ClothingItem) bool { return it.ID == id })
	if i < 0 {
		return false, nil
	}
	removed := items[i]
	if err := s.save(ctx, slices.Delete(items, i, i+1)); err != nil {
		return false, err
	}

	s.publish(ctx, domainevents.KindDeleted, removed)
	return true, nil
}

// load must be called with mu held.
func (s *WardrobeService) load(ctx context.Context) ([]models.ClothingItem, error) {
	data, err := s.slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load wardrobe: %w", err)
	}
	items := []models.ClothingItem{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.WarnContext(ctx, "wardrobe: slot is not a valid item list, treating as empty", "error", err)
		return []models.ClothingItem{}, nil
	}
	if items == nil {
		// A literal "null" payload.
		items = []models.ClothingItem{}
	}
	return items, nil
}

// save must be called with mu held.
func (s *WardrobeService) save(ctx context.Context, items []models.ClothingItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode wardrobe: %w", err)
	}
	if err := s.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("save wardrobe: %w", err)
	}
	return nil
}

// publish runs after the slot write has succeeded, so a failure is logged
// and never undoes the mutation.
func (s *WardrobeService) publish(ctx context.Context, kind domainevents.ChangeKind, item models.ClothingItem) {
	if s.bus == nil {
		return
	}
	event := domainevents.WardrobeChangedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		Kind:       kind,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Type:       string(item.Type),
		Season:     string(item.Season),
		OccurredAt: s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "wardrobe: marshal event", "error", err, "item_id", item.ID)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", strconv.Itoa(eventVersion))
	if err := s.bus.Publish(ctx, kind.Topic(), msg); err != nil {
		s.log.ErrorContext(ctx, "wardrobe: publish event", "error", err, "topic", kind.Topic(), "item_id", item.ID)
	}
}
