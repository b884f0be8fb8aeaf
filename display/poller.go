package display

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/menuly/restaurant-admin/models"
)

// Fetcher is the slice of the API client the display screen reads
// through. All endpoints are public; no token is involved.
type Fetcher interface {
	PublicProducts(ctx context.Context, restaurantID string) ([]models.Product, error)
	PublicCategories(ctx context.Context, restaurantID string) ([]models.Category, error)
	PublicOffers(ctx context.Context, restaurantID string) ([]models.Offer, error)
	PublicDiscounts(ctx context.Context, restaurantID string) ([]models.Discount, error)
	PublicRestaurant(ctx context.Context, restaurantID string) (models.RestaurantInfo, error)
}

// Snapshot is the latest successfully fetched state of all four
// collections plus the restaurant header. A failed refetch never
// clears a previously good collection.
type Snapshot struct {
	Restaurant models.RestaurantInfo
	Products   []models.Product
	Categories []models.Category
	Offers     []models.Offer
	Discounts  []models.Discount
	Language   string
	UpdatedAt  time.Time
}

const (
	collectionInterval = 30 * time.Second
	sweepInterval      = 60 * time.Second
)

type pollEvent int

const (
	eventRestaurantChanged pollEvent = iota
	eventLanguageChanged
	eventReconnected
)

// Poller keeps the display screen's four collections fresh on a fixed
// schedule with event-triggered refetches layered on top. There is no
// debounce between triggers: redundant concurrent fetches are accepted
// and absorbed by the cache's request coalescing underneath the
// Fetcher.
type Poller struct {
	fetcher Fetcher
	clock   Clock

	mu           sync.RWMutex
	snap         Snapshot
	restaurantID string
	language     string

	events chan pollEvent
	cancel context.CancelFunc

	// set when a restaurant-change event is dropped from a full queue;
	// drained with the next event so the detail refetch is not lost
	pendingRestaurant bool

	// cancels the in-flight restaurant enrichment fetch when the
	// restaurant changes or the poller stops
	detailCancel context.CancelFunc
}

// NewPoller creates a stopped Poller. Call Start to begin polling.
func NewPoller(fetcher Fetcher, clock Clock, restaurantID, language string) *Poller {
	if clock == nil {
		clock = SystemClock
	}
	return &Poller{
		fetcher:      fetcher,
		clock:        clock,
		restaurantID: restaurantID,
		language:     language,
		events:       make(chan pollEvent, 16),
	}
}

// Start launches the polling loop. It returns immediately.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	go p.run(ctx)
}

// Stop tears the poller down, aborting any in-flight enrichment fetch.
func (p *Poller) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
}

// Snapshot returns the latest good state.
func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

// SetRestaurant switches the screen to another restaurant and triggers
// an immediate refetch of everything.
func (p *Poller) SetRestaurant(id string) {
	p.mu.Lock()
	changed := p.restaurantID != id
	p.restaurantID = id
	p.mu.Unlock()
	if changed {
		p.notify(eventRestaurantChanged)
	}
}

// SetLanguage switches the display language and triggers a refetch so
// localized fields re-resolve.
func (p *Poller) SetLanguage(lang string) {
	p.mu.Lock()
	changed := p.language != lang
	p.language = lang
	p.mu.Unlock()
	if changed {
		p.notify(eventLanguageChanged)
	}
}

// NotifyReconnected signals that network connectivity came back.
func (p *Poller) NotifyReconnected() {
	p.notify(eventReconnected)
}

func (p *Poller) notify(ev pollEvent) {
	select {
	case p.events <- ev:
	default:
		// a full queue already guarantees a collection refetch is
		// coming, but only a restaurant-change event performs the
		// detail fetch, so that one must not be lost
		if ev == eventRestaurantChanged {
			p.mu.Lock()
			p.pendingRestaurant = true
			p.mu.Unlock()
		}
	}
}

func (p *Poller) takePendingRestaurant() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	pending := p.pendingRestaurant
	p.pendingRestaurant = false
	return pending
}

func (p *Poller) run(ctx context.Context) {
	products := p.clock.NewTicker(collectionInterval)
	categories := p.clock.NewTicker(collectionInterval)
	offers := p.clock.NewTicker(collectionInterval)
	discounts := p.clock.NewTicker(collectionInterval)
	sweep := p.clock.NewTicker(sweepInterval)
	defer products.Stop()
	defer categories.Stop()
	defer offers.Stop()
	defer discounts.Stop()
	defer sweep.Stop()

	p.refreshAll(ctx)
	p.refreshRestaurant(ctx)

	for {
		select {
		case <-ctx.Done():
			p.mu.Lock()
			if p.detailCancel != nil {
				p.detailCancel()
			}
			p.mu.Unlock()
			return
		case <-products.C():
			go p.refreshProducts(ctx)
		case <-categories.C():
			go p.refreshCategories(ctx)
		case <-offers.C():
			go p.refreshOffers(ctx)
		case <-discounts.C():
			go p.refreshDiscounts(ctx)
		case <-sweep.C():
			go p.refreshAll(ctx)
		case ev := <-p.events:
			pending := p.takePendingRestaurant()
			go p.refreshAll(ctx)
			if ev == eventRestaurantChanged || pending {
				go p.refreshRestaurant(ctx)
			}
		}
	}
}

func (p *Poller) refreshAll(ctx context.Context) {
	p.refreshProducts(ctx)
	p.refreshCategories(ctx)
	p.refreshOffers(ctx)
	p.refreshDiscounts(ctx)
}

func (p *Poller) target() (string, string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.restaurantID, p.language
}

func (p *Poller) refreshProducts(ctx context.Context) {
	id, _ := p.target()
	items, err := p.fetcher.PublicProducts(ctx, id)
	if err != nil {
		log.Printf("display: products refetch failed: %v", err)
		return
	}
	p.update(func(s *Snapshot) { s.Products = items })
}

func (p *Poller) refreshCategories(ctx context.Context) {
	id, _ := p.target()
	items, err := p.fetcher.PublicCategories(ctx, id)
	if err != nil {
		log.Printf("display: categories refetch failed: %v", err)
		return
	}
	p.update(func(s *Snapshot) { s.Categories = items })
}

func (p *Poller) refreshOffers(ctx context.Context) {
	id, _ := p.target()
	items, err := p.fetcher.PublicOffers(ctx, id)
	if err != nil {
		log.Printf("display: offers refetch failed: %v", err)
		return
	}
	p.update(func(s *Snapshot) { s.Offers = items })
}

func (p *Poller) refreshDiscounts(ctx context.Context) {
	id, _ := p.target()
	items, err := p.fetcher.PublicDiscounts(ctx, id)
	if err != nil {
		log.Printf("display: discounts refetch failed: %v", err)
		return
	}
	p.update(func(s *Snapshot) { s.Discounts = items })
}

// refreshRestaurant runs the header enrichment fetch under its own
// cancelable context, replacing any previous in-flight one.
func (p *Poller) refreshRestaurant(ctx context.Context) {
	p.mu.Lock()
	if p.detailCancel != nil {
		p.detailCancel()
	}
	detailCtx, cancel := context.WithCancel(ctx)
	p.detailCancel = cancel
	id := p.restaurantID
	p.mu.Unlock()

	info, err := p.fetcher.PublicRestaurant(detailCtx, id)
	if err != nil {
		log.Printf("display: restaurant detail fetch failed: %v", err)
		return
	}
	p.update(func(s *Snapshot) { s.Restaurant = info })
}

func (p *Poller) update(apply func(*Snapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	apply(&p.snap)
	p.snap.Language = p.language
	p.snap.UpdatedAt = p.clock.Now()
}
